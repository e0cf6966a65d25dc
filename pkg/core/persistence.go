package core

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

func SaveDataset(path string, ds *Dataset) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	return WriteDataset(file, ds, true)
}

func LoadDataset(path string) (*Dataset, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return ReadDataset(file)
}

// WriteDataset encodes ds in the header-prefixed interchange form.
func WriteDataset(w io.Writer, ds *Dataset, pretty bool) error {
	encoder := json.NewEncoder(w)
	if pretty {
		encoder.SetIndent("", "  ")
	}
	return encoder.Encode(ds)
}

// ReadDataset decodes and validates an interchange document.
func ReadDataset(r io.Reader) (*Dataset, error) {
	var ds Dataset
	if err := json.NewDecoder(r).Decode(&ds); err != nil {
		return nil, fmt.Errorf("decode dataset: %w", err)
	}
	if ds.Types == nil {
		ds.Types = make(map[string]SeriesType)
	}
	if err := ds.Validate(); err != nil {
		return nil, fmt.Errorf("invalid dataset: %w", err)
	}
	return &ds, nil
}

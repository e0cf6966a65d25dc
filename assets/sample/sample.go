package sample

import (
	"bytes"
	_ "embed"

	"tgchart/pkg/core"
)

//go:embed chart_data.json
var chartDataJSON []byte

// JSON returns the raw interchange form of the bundled dataset.
func JSON() []byte {
	return chartDataJSON
}

// Dataset decodes the bundled two-series dataset (y0, y1 over 112 days).
func Dataset() (*core.Dataset, error) {
	return core.ReadDataset(bytes.NewReader(chartDataJSON))
}

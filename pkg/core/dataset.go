package core

import (
	"encoding/json"
	"errors"
	"fmt"
	"image/color"
	"math"
)

// SeriesType is the role a column plays in a Dataset.
type SeriesType string

const (
	SeriesX    SeriesType = "x"
	SeriesLine SeriesType = "line"
)

var (
	ErrEmptyHeader     = errors.New("column has no identifier")
	ErrUnknownType     = errors.New("unknown series type")
	ErrNoXSeries       = errors.New("dataset has no x series")
	ErrMultipleXSeries = errors.New("dataset has more than one x series")
	ErrNoLineSeries    = errors.New("dataset has no line series")
	ErrTooFewPoints    = errors.New("x series needs at least two points")
	ErrLengthMismatch  = errors.New("line series length differs from x series")
	ErrNotIncreasing   = errors.New("x series is not strictly increasing")
	ErrBadColor        = errors.New("invalid color")
	ErrNonFinite       = errors.New("series has a non-finite value")
)

// Column is one series. On the wire it is header-prefixed, ["y0", 37, 20, ...];
// the header becomes ID and Values holds only the data.
type Column struct {
	ID     string
	Values []float64
}

func (c *Column) UnmarshalJSON(data []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if len(raw) == 0 {
		return ErrEmptyHeader
	}
	var id string
	if err := json.Unmarshal(raw[0], &id); err != nil {
		return fmt.Errorf("%w: %v", ErrEmptyHeader, err)
	}
	if id == "" {
		return ErrEmptyHeader
	}
	values := make([]float64, 0, len(raw)-1)
	for i, r := range raw[1:] {
		var v float64
		if err := json.Unmarshal(r, &v); err != nil {
			return fmt.Errorf("column %q value %d: %w", id, i, err)
		}
		values = append(values, v)
	}
	c.ID = id
	c.Values = values
	return nil
}

func (c Column) MarshalJSON() ([]byte, error) {
	out := make([]interface{}, 0, len(c.Values)+1)
	out = append(out, c.ID)
	for _, v := range c.Values {
		out = append(out, v)
	}
	return json.Marshal(out)
}

// Dataset is the chart-data interchange shape: columns plus per-series
// type, name and color lookups. It is never mutated once a chart holds it.
type Dataset struct {
	Columns []Column              `json:"columns"`
	Types   map[string]SeriesType `json:"types"`
	Names   map[string]string     `json:"names,omitempty"`
	Colors  map[string]string     `json:"colors,omitempty"`
}

// XColumn returns the timestamp series.
func (d *Dataset) XColumn() (Column, bool) {
	for _, c := range d.Columns {
		if d.Types[c.ID] == SeriesX {
			return c, true
		}
	}
	return Column{}, false
}

// LineColumns returns the plotted series in column order.
func (d *Dataset) LineColumns() []Column {
	var lines []Column
	for _, c := range d.Columns {
		if d.Types[c.ID] == SeriesLine {
			lines = append(lines, c)
		}
	}
	return lines
}

// Points is the number of data points on the x axis.
func (d *Dataset) Points() int {
	x, ok := d.XColumn()
	if !ok {
		return 0
	}
	return len(x.Values)
}

// Name returns the display label for a series, falling back to its ID.
func (d *Dataset) Name(id string) string {
	if n, ok := d.Names[id]; ok && n != "" {
		return n
	}
	return id
}

// Color resolves the series color. Series without a configured color take
// one from the default palette by their position among the line series.
func (d *Dataset) Color(id string) color.Color {
	if s, ok := d.Colors[id]; ok {
		if c, err := ParseHexColor(s); err == nil {
			return c
		}
	}
	for i, c := range d.LineColumns() {
		if c.ID == id {
			return Palette[i%len(Palette)]
		}
	}
	return Palette[0]
}

// Validate checks the invariants a chart relies on: one strictly increasing
// x series with at least two points and line series of the same length.
func (d *Dataset) Validate() error {
	var (
		x      *Column
		xCount int
		lines  int
	)
	for i := range d.Columns {
		c := &d.Columns[i]
		if c.ID == "" {
			return fmt.Errorf("column %d: %w", i, ErrEmptyHeader)
		}
		switch d.Types[c.ID] {
		case SeriesX:
			xCount++
			x = c
		case SeriesLine:
			lines++
		default:
			return fmt.Errorf("%w: column %q has type %q", ErrUnknownType, c.ID, d.Types[c.ID])
		}
	}
	switch {
	case xCount == 0:
		return ErrNoXSeries
	case xCount > 1:
		return ErrMultipleXSeries
	case lines == 0:
		return ErrNoLineSeries
	case len(x.Values) < 2:
		return fmt.Errorf("%w: got %d", ErrTooFewPoints, len(x.Values))
	}

	if err := checkFinite(x); err != nil {
		return err
	}
	for i := 1; i < len(x.Values); i++ {
		if x.Values[i] <= x.Values[i-1] {
			return fmt.Errorf("%w: index %d", ErrNotIncreasing, i)
		}
	}

	for _, c := range d.LineColumns() {
		if len(c.Values) != len(x.Values) {
			return fmt.Errorf("%w: %q has %d values, x has %d", ErrLengthMismatch, c.ID, len(c.Values), len(x.Values))
		}
		if err := checkFinite(&c); err != nil {
			return err
		}
		if s, ok := d.Colors[c.ID]; ok {
			if _, err := ParseHexColor(s); err != nil {
				return fmt.Errorf("series %q: %w", c.ID, err)
			}
		}
	}
	return nil
}

// checkFinite rejects NaN and infinities, which would break the value scale.
func checkFinite(c *Column) error {
	for i, v := range c.Values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: %q index %d is %v", ErrNonFinite, c.ID, i, v)
		}
	}
	return nil
}

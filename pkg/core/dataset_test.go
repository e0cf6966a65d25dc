package core

import (
	"bytes"
	"image/color"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const smallDataset = `{
	"columns": [
		["x", 1542412800000, 1542499200000, 1542585600000],
		["y0", 37, 20, 32],
		["y1", 22, 12, 30]
	],
	"types": {"x": "x", "y0": "line", "y1": "line"},
	"names": {"y0": "#0", "y1": "#1"},
	"colors": {"y0": "#3DC23F", "y1": "#F34C44"}
}`

func TestReadDataset_StripsHeaders(t *testing.T) {
	ds, err := ReadDataset(strings.NewReader(smallDataset))
	require.NoError(t, err)

	x, ok := ds.XColumn()
	require.True(t, ok)
	assert.Equal(t, "x", x.ID)
	assert.Equal(t, []float64{1542412800000, 1542499200000, 1542585600000}, x.Values)

	lines := ds.LineColumns()
	require.Len(t, lines, 2)
	assert.Equal(t, "y0", lines[0].ID)
	assert.Equal(t, []float64{37, 20, 32}, lines[0].Values)
	assert.Equal(t, "y1", lines[1].ID)
	assert.Equal(t, 3, ds.Points())
}

func TestWriteDataset_HeaderPrefixed(t *testing.T) {
	ds, err := ReadDataset(strings.NewReader(smallDataset))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteDataset(&buf, ds, false))
	assert.Contains(t, buf.String(), `["y0",37,20,32]`)
	assert.Contains(t, buf.String(), `["x",1542412800000,1542499200000,1542585600000]`)

	again, err := ReadDataset(&buf)
	require.NoError(t, err)
	assert.Equal(t, ds, again)
}

func TestDataset_NameAndColor(t *testing.T) {
	ds, err := ReadDataset(strings.NewReader(smallDataset))
	require.NoError(t, err)

	assert.Equal(t, "#0", ds.Name("y0"))
	assert.Equal(t, "x", ds.Name("x"))
	assert.Equal(t, color.NRGBA{R: 0xF3, G: 0x4C, B: 0x44, A: 0xFF}, ds.Color("y1"))

	delete(ds.Colors, "y1")
	assert.Equal(t, Palette[1], ds.Color("y1"))
}

func TestDataset_Validate(t *testing.T) {
	types := map[string]SeriesType{"x": SeriesX, "y0": SeriesLine}
	tests := []struct {
		name string
		ds   Dataset
		want error
	}{
		{
			name: "no x series",
			ds: Dataset{
				Columns: []Column{{ID: "y0", Values: []float64{1, 2}}},
				Types:   types,
			},
			want: ErrNoXSeries,
		},
		{
			name: "no line series",
			ds: Dataset{
				Columns: []Column{{ID: "x", Values: []float64{1, 2}}},
				Types:   types,
			},
			want: ErrNoLineSeries,
		},
		{
			name: "two x series",
			ds: Dataset{
				Columns: []Column{{ID: "x", Values: []float64{1, 2}}, {ID: "x2", Values: []float64{1, 2}}},
				Types:   map[string]SeriesType{"x": SeriesX, "x2": SeriesX},
			},
			want: ErrMultipleXSeries,
		},
		{
			name: "unknown type",
			ds: Dataset{
				Columns: []Column{{ID: "x", Values: []float64{1, 2}}, {ID: "b", Values: []float64{1, 2}}},
				Types:   map[string]SeriesType{"x": SeriesX, "b": "bar"},
			},
			want: ErrUnknownType,
		},
		{
			name: "single point",
			ds: Dataset{
				Columns: []Column{{ID: "x", Values: []float64{1}}, {ID: "y0", Values: []float64{1}}},
				Types:   types,
			},
			want: ErrTooFewPoints,
		},
		{
			name: "length mismatch",
			ds: Dataset{
				Columns: []Column{{ID: "x", Values: []float64{1, 2, 3}}, {ID: "y0", Values: []float64{1, 2}}},
				Types:   types,
			},
			want: ErrLengthMismatch,
		},
		{
			name: "timestamps go back",
			ds: Dataset{
				Columns: []Column{{ID: "x", Values: []float64{1, 3, 2}}, {ID: "y0", Values: []float64{1, 2, 3}}},
				Types:   types,
			},
			want: ErrNotIncreasing,
		},
		{
			name: "NaN value",
			ds: Dataset{
				Columns: []Column{{ID: "x", Values: []float64{1, 2, 3}}, {ID: "y0", Values: []float64{1, math.NaN(), 3}}},
				Types:   types,
			},
			want: ErrNonFinite,
		},
		{
			name: "infinite value",
			ds: Dataset{
				Columns: []Column{{ID: "x", Values: []float64{1, 2}}, {ID: "y0", Values: []float64{math.Inf(-1), 2}}},
				Types:   types,
			},
			want: ErrNonFinite,
		},
		{
			name: "NaN timestamp",
			ds: Dataset{
				Columns: []Column{{ID: "x", Values: []float64{1, math.NaN()}}, {ID: "y0", Values: []float64{1, 2}}},
				Types:   types,
			},
			want: ErrNonFinite,
		},
		{
			name: "bad color",
			ds: Dataset{
				Columns: []Column{{ID: "x", Values: []float64{1, 2}}, {ID: "y0", Values: []float64{1, 2}}},
				Types:   types,
				Colors:  map[string]string{"y0": "green"},
			},
			want: ErrBadColor,
		},
		{
			name: "valid",
			ds: Dataset{
				Columns: []Column{{ID: "x", Values: []float64{1, 2}}, {ID: "y0", Values: []float64{5, 5}}},
				Types:   types,
				Colors:  map[string]string{"y0": "#abc"},
			},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			err := test.ds.Validate()
			if test.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, test.want)
		})
	}
}

func TestColumn_UnmarshalRejectsMissingHeader(t *testing.T) {
	_, err := ReadDataset(strings.NewReader(`{"columns": [[]], "types": {}}`))
	assert.ErrorIs(t, err, ErrEmptyHeader)

	_, err = ReadDataset(strings.NewReader(`{"columns": [[1, 2]], "types": {}}`))
	assert.ErrorIs(t, err, ErrEmptyHeader)
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		input string
		want  color.NRGBA
		ok    bool
	}{
		{"#3DC23F", color.NRGBA{R: 0x3D, G: 0xC2, B: 0x3F, A: 0xFF}, true},
		{"#bbb", color.NRGBA{R: 0xBB, G: 0xBB, B: 0xBB, A: 0xFF}, true},
		{"96a2aa", color.NRGBA{R: 0x96, G: 0xA2, B: 0xAA, A: 0xFF}, true},
		{" #3dc23f ", color.NRGBA{R: 0x3D, G: 0xC2, B: 0x3F, A: 0xFF}, true},
		{"#12345", color.NRGBA{}, false},
		{"#1234567", color.NRGBA{}, false},
		{"#zzzzzz", color.NRGBA{}, false},
		{"", color.NRGBA{}, false},
	}
	for _, test := range tests {
		got, err := ParseHexColor(test.input)
		if !test.ok {
			assert.ErrorIs(t, err, ErrBadColor, test.input)
			continue
		}
		require.NoError(t, err, test.input)
		assert.Equal(t, test.want, got, test.input)
	}
	assert.Equal(t, "#3DC23F", HexColor(Palette[0]))
	for _, c := range Palette {
		got, err := ParseHexColor(HexColor(c))
		require.NoError(t, err)
		assert.Equal(t, c, got)
	}
}

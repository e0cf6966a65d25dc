package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"tgchart/pkg/core"
)

const (
	DefaultChartConfigPath = "config/chart.json"
	defaultWidth           = 600
	defaultHeight          = 200
	defaultPixelRatio      = 2
	defaultPadding         = 40
	defaultRows            = 5
	defaultLabelColumns    = 6
	defaultCircleRadius    = 8
	defaultLineWidth       = 4
	defaultFrameRate       = 60
)

// ChartConfig sizes the chart. Width and Height are logical pixels; every
// other length is in device pixels, Width*PixelRatio wide.
type ChartConfig struct {
	Width        int     `json:"width"`
	Height       int     `json:"height"`
	PixelRatio   float64 `json:"pixel_ratio"`
	Padding      float64 `json:"padding"`
	Rows         int     `json:"rows"`
	LabelColumns int     `json:"label_columns"`
	CircleRadius float64 `json:"circle_radius"`
	LineWidth    float64 `json:"line_width"`
	FrameRate    int     `json:"frame_rate"`
}

func DefaultChartConfig() ChartConfig {
	return ChartConfig{
		Width:        defaultWidth,
		Height:       defaultHeight,
		PixelRatio:   defaultPixelRatio,
		Padding:      defaultPadding,
		Rows:         defaultRows,
		LabelColumns: defaultLabelColumns,
		CircleRadius: defaultCircleRadius,
		LineWidth:    defaultLineWidth,
		FrameRate:    defaultFrameRate,
	}
}

func ResolveChartConfigPath() string {
	if fromEnv := os.Getenv("TGCHART_CONFIG"); fromEnv != "" {
		return fromEnv
	}
	return DefaultChartConfigPath
}

// LoadChartConfig reads path; a missing file yields the defaults.
func LoadChartConfig(path string) (ChartConfig, error) {
	cfg := DefaultChartConfig()

	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, err
	}
	defer file.Close()

	decoder := json.NewDecoder(file)
	if err := decoder.Decode(&cfg); err != nil {
		return DefaultChartConfig(), err
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}

	return cfg, nil
}

func (c *ChartConfig) applyDefaults() {
	if c.Width == 0 {
		c.Width = defaultWidth
	}
	if c.Height == 0 {
		c.Height = defaultHeight
	}
	if c.PixelRatio == 0 {
		c.PixelRatio = defaultPixelRatio
	}
	if c.Rows == 0 {
		c.Rows = defaultRows
	}
	if c.LabelColumns == 0 {
		c.LabelColumns = defaultLabelColumns
	}
	if c.CircleRadius == 0 {
		c.CircleRadius = defaultCircleRadius
	}
	if c.LineWidth == 0 {
		c.LineWidth = defaultLineWidth
	}
	if c.FrameRate == 0 {
		c.FrameRate = defaultFrameRate
	}
}

func (c ChartConfig) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("invalid size: %dx%d", c.Width, c.Height)
	}
	if c.PixelRatio <= 0 {
		return fmt.Errorf("pixel_ratio must be > 0")
	}
	if c.Padding < 0 || c.Padding*2 >= c.DeviceHeight() {
		return fmt.Errorf("padding %v leaves no drawable height", c.Padding)
	}
	if c.Rows <= 0 {
		return fmt.Errorf("rows must be > 0")
	}
	if c.LabelColumns <= 0 {
		return fmt.Errorf("label_columns must be > 0")
	}
	if c.FrameRate <= 0 {
		return fmt.Errorf("frame_rate must be > 0")
	}
	return nil
}

func (c ChartConfig) DeviceWidth() float64 {
	return float64(c.Width) * c.PixelRatio
}

func (c ChartConfig) DeviceHeight() float64 {
	return float64(c.Height) * c.PixelRatio
}

// View is the device-pixel layout handed to the geometry code.
func (c ChartConfig) View() core.View {
	return core.View{
		Width:   c.DeviceWidth(),
		Height:  c.DeviceHeight(),
		Padding: c.Padding,
	}
}

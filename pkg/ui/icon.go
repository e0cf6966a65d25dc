package ui

import (
	"bytes"
	"fmt"
	"image/color"

	"fyne.io/fyne/v2"

	"tgchart/pkg/config"
	"tgchart/pkg/core"
	"tgchart/pkg/render"
)

const iconSize = 64

// ChartIcon paints a label-free thumbnail of ds for use as the app icon.
func ChartIcon(ds *core.Dataset) (fyne.Resource, error) {
	cfg := config.DefaultChartConfig()
	cfg.Width = iconSize
	cfg.Height = iconSize
	cfg.PixelRatio = 1
	cfg.Padding = 6
	cfg.LineWidth = 3

	p := render.NewPainter(ds, cfg)
	p.SetStyle(render.Style{
		GridColor:  color.NRGBA{R: 0xE5, G: 0xE7, B: 0xEB, A: 0xFF},
		LabelColor: color.Transparent,
		PointFill:  color.White,
		GridWidth:  1,
		FontSize:   1,
	})

	s := render.NewGGSurface(iconSize, iconSize)
	s.Background = color.White
	p.Paint(s, core.PointerState{})

	var buf bytes.Buffer
	if err := s.EncodePNG(&buf); err != nil {
		return nil, fmt.Errorf("encode icon: %w", err)
	}
	return fyne.NewStaticResource("tgchart.png", buf.Bytes()), nil
}

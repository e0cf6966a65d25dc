package render

import (
	"image/color"
	"math"
	"strconv"

	"tgchart/pkg/config"
	"tgchart/pkg/core"
)

// Style holds the fixed colors and font of the axes and hover markers.
type Style struct {
	GridColor  color.Color
	LabelColor color.Color
	PointFill  color.Color
	GridWidth  float64
	FontSize   float64
	// LabelOffset lifts text above the line or edge it belongs to.
	LabelOffset float64
}

var DefaultStyle = Style{
	GridColor:   color.NRGBA{R: 0xBB, G: 0xBB, B: 0xBB, A: 0xFF},
	LabelColor:  color.NRGBA{R: 0x96, G: 0xA2, B: 0xAA, A: 0xFF},
	PointFill:   color.White,
	GridWidth:   1,
	FontSize:    20,
	LabelOffset: 10,
}

// Hover is one highlighted data point.
type Hover struct {
	SeriesID string
	Index    int
	Point    core.Point
}

// Frame describes what one Paint call drew.
type Frame struct {
	Geometry core.ViewGeometry
	// Guide is the hovered column, -1 when no guide line was drawn.
	Guide   int
	Hovered []Hover
}

// Painter draws a full chart frame for a dataset.
type Painter struct {
	ds    *core.Dataset
	cfg   config.ChartConfig
	style Style
}

func NewPainter(ds *core.Dataset, cfg config.ChartConfig) *Painter {
	return &Painter{ds: ds, cfg: cfg, style: DefaultStyle}
}

func (p *Painter) SetStyle(style Style) {
	p.style = style
}

// Paint clears the surface and redraws everything from scratch.
func (p *Painter) Paint(s Surface, pointer core.PointerState) Frame {
	view := p.cfg.View()
	s.ClearRect(0, 0, view.Width, view.Height)

	g := core.NewViewGeometry(p.ds, view)
	frame := Frame{Geometry: g, Guide: -1}

	p.drawYAxis(s, view, g)
	if x, ok := p.ds.XColumn(); ok {
		frame.Guide = p.drawXAxis(s, view, x.Values, g.XRatio, pointer)
	}

	toCoords := core.ToCoordinates(g.XRatio, g.YRatio, view)
	for _, c := range p.ds.LineColumns() {
		coords := toCoords(c.Values)
		col := p.ds.Color(c.ID)
		p.drawLine(s, coords, col)
		for i, pt := range coords {
			if core.IsOver(pointer, pt.X, len(coords), view.Width) {
				p.drawCircle(s, pt, col)
				frame.Hovered = append(frame.Hovered, Hover{SeriesID: c.ID, Index: i, Point: pt})
			}
		}
	}
	return frame
}

func (p *Painter) drawYAxis(s Surface, view core.View, g core.ViewGeometry) {
	rows := p.cfg.Rows
	rowHeight := view.DrawableHeight() / float64(rows)
	textStep := (g.Max - g.Min) / float64(rows)

	s.Save()
	defer s.Restore()
	s.BeginPath()
	s.SetLineWidth(p.style.GridWidth)
	s.SetStrokeColor(p.style.GridColor)
	s.SetFontSize(p.style.FontSize)
	s.SetFillColor(p.style.LabelColor)
	for i := 1; i <= rows; i++ {
		y := rowHeight*float64(i) + view.Padding
		label := roundHalfUp(g.Max - textStep*float64(i))
		s.FillText(strconv.FormatFloat(label, 'f', -1, 64), 0, y-p.style.LabelOffset)
		s.MoveTo(0, y)
		s.LineTo(view.Width, y)
	}
	s.Stroke()
	s.ClosePath()
}

// drawXAxis labels every step-th column and strokes the hover guide. It
// returns the guided column or -1.
func (p *Painter) drawXAxis(s Surface, view core.View, xs []float64, xRatio float64, pointer core.PointerState) int {
	step := core.LabelStep(len(xs), p.cfg.LabelColumns)
	guide := -1

	s.Save()
	defer s.Restore()
	s.BeginPath()
	s.SetLineWidth(p.style.GridWidth)
	s.SetStrokeColor(p.style.GridColor)
	s.SetFontSize(p.style.FontSize)
	s.SetFillColor(p.style.LabelColor)
	for j, ts := range xs {
		// Same floor(j*xRatio) as ToCoordinates, so the guide lands on the hovered circles.
		x := math.Floor(float64(j) * xRatio)
		if j%step == 0 {
			s.FillText(core.FormatDate(ts), x, view.Height-p.style.LabelOffset)
		}
		if core.IsOver(pointer, x, len(xs), view.Width) {
			s.MoveTo(x, view.Padding/2)
			s.LineTo(x, view.Height-view.Padding)
			guide = j
		}
	}
	s.Stroke()
	s.ClosePath()
	return guide
}

func (p *Painter) drawLine(s Surface, coords []core.Point, c color.Color) {
	s.BeginPath()
	s.SetLineWidth(p.cfg.LineWidth)
	s.SetStrokeColor(c)
	for _, pt := range coords {
		s.LineTo(pt.X, pt.Y)
	}
	s.Stroke()
	s.ClosePath()
}

func (p *Painter) drawCircle(s Surface, pt core.Point, c color.Color) {
	s.BeginPath()
	s.SetLineWidth(p.cfg.LineWidth)
	s.SetStrokeColor(c)
	s.SetFillColor(p.style.PointFill)
	s.Arc(pt.X, pt.Y, p.cfg.CircleRadius, 0, math.Pi*2)
	s.Fill()
	s.Stroke()
	s.ClosePath()
}

func roundHalfUp(v float64) float64 {
	return math.Floor(v + 0.5)
}

package render

import "image/color"

// Surface is a 2D immediate-mode drawing context. Path state is not part of
// Save/Restore; colors, line width and font size are.
type Surface interface {
	ClearRect(x, y, w, h float64)
	BeginPath()
	ClosePath()
	MoveTo(x, y float64)
	LineTo(x, y float64)
	Arc(x, y, r, angle1, angle2 float64)
	SetLineWidth(w float64)
	SetStrokeColor(c color.Color)
	SetFillColor(c color.Color)
	SetFontSize(px float64)
	Stroke()
	Fill()
	FillText(text string, x, y float64)
	Save()
	Restore()
}

package render

import (
	"image"
	"image/color"
	"image/draw"
	"io"
	"math"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
)

var (
	regularOnce sync.Once
	regular     *truetype.Font
)

func regularFont() *truetype.Font {
	regularOnce.Do(func() {
		f, err := truetype.Parse(goregular.TTF)
		if err != nil {
			log.Warn("falling back to bitmap font", "error", err)
			return
		}
		regular = f
	})
	return regular
}

type drawState struct {
	stroke    color.Color
	fill      color.Color
	lineWidth float64
	fontSize  float64
}

// GGSurface rasterizes Surface calls into an RGBA image with fogleman/gg.
type GGSurface struct {
	dc *gg.Context
	// Background is what ClearRect leaves behind; transparent by default.
	Background color.Color

	state drawState
	stack []drawState
	faces map[float64]font.Face
}

var _ Surface = (*GGSurface)(nil)

func NewGGSurface(width, height int) *GGSurface {
	return &GGSurface{
		dc:         gg.NewContext(width, height),
		Background: color.Transparent,
		state: drawState{
			stroke:    color.Black,
			fill:      color.Black,
			lineWidth: 1,
			fontSize:  10,
		},
		faces: make(map[float64]font.Face),
	}
}

func (s *GGSurface) Image() image.Image {
	return s.dc.Image()
}

func (s *GGSurface) EncodePNG(w io.Writer) error {
	return s.dc.EncodePNG(w)
}

func (s *GGSurface) ClearRect(x, y, w, h float64) {
	img, ok := s.dc.Image().(draw.Image)
	if !ok {
		return
	}
	r := image.Rect(int(math.Floor(x)), int(math.Floor(y)), int(math.Ceil(x+w)), int(math.Ceil(y+h)))
	draw.Draw(img, r, image.NewUniform(s.Background), image.Point{}, draw.Src)
}

func (s *GGSurface) BeginPath() {
	s.dc.ClearPath()
}

func (s *GGSurface) ClosePath() {
	s.dc.ClosePath()
}

func (s *GGSurface) MoveTo(x, y float64) {
	s.dc.MoveTo(x, y)
}

func (s *GGSurface) LineTo(x, y float64) {
	s.dc.LineTo(x, y)
}

func (s *GGSurface) Arc(x, y, r, angle1, angle2 float64) {
	s.dc.DrawArc(x, y, r, angle1, angle2)
}

func (s *GGSurface) SetLineWidth(w float64) {
	s.state.lineWidth = w
}

func (s *GGSurface) SetStrokeColor(c color.Color) {
	s.state.stroke = c
}

func (s *GGSurface) SetFillColor(c color.Color) {
	s.state.fill = c
}

func (s *GGSurface) SetFontSize(px float64) {
	s.state.fontSize = px
}

// Stroke and Fill keep the path so a shape can be filled then outlined.
func (s *GGSurface) Stroke() {
	s.dc.SetColor(s.state.stroke)
	s.dc.SetLineWidth(s.state.lineWidth)
	s.dc.StrokePreserve()
}

func (s *GGSurface) Fill() {
	s.dc.SetColor(s.state.fill)
	s.dc.FillPreserve()
}

func (s *GGSurface) FillText(text string, x, y float64) {
	s.dc.SetFontFace(s.face(s.state.fontSize))
	s.dc.SetColor(s.state.fill)
	s.dc.DrawString(text, x, y)
}

func (s *GGSurface) Save() {
	s.stack = append(s.stack, s.state)
}

func (s *GGSurface) Restore() {
	if len(s.stack) == 0 {
		return
	}
	s.state = s.stack[len(s.stack)-1]
	s.stack = s.stack[:len(s.stack)-1]
}

func (s *GGSurface) face(size float64) font.Face {
	if f, ok := s.faces[size]; ok {
		return f
	}
	var f font.Face = basicfont.Face7x13
	if tt := regularFont(); tt != nil {
		f = truetype.NewFace(tt, &truetype.Options{Size: size})
	}
	s.faces[size] = f
	return f
}

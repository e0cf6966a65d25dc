package core

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Palette colors series that carry no color of their own.
var Palette = []color.NRGBA{
	{R: 0x3D, G: 0xC2, B: 0x3F, A: 0xFF},
	{R: 0xF3, G: 0x4C, B: 0x44, A: 0xFF},
	{R: 0x3B, G: 0x82, B: 0xF6, A: 0xFF},
	{R: 0xF5, G: 0x9E, B: 0x0B, A: 0xFF},
	{R: 0x7C, G: 0x3A, B: 0xED, A: 0xFF},
	{R: 0x14, G: 0xB8, B: 0xA6, A: 0xFF},
}

// ParseHexColor parses "#RGB" or "#RRGGBB". The leading '#' is optional.
func ParseHexColor(s string) (color.NRGBA, error) {
	hex := strings.TrimSpace(s)
	if !strings.HasPrefix(hex, "#") {
		hex = "#" + hex
	}
	// colorful.Hex reads any other length as #RRGGBB and accepts short input.
	if len(hex) != 4 && len(hex) != 7 {
		return color.NRGBA{}, fmt.Errorf("%w: %q", ErrBadColor, s)
	}
	c, err := colorful.Hex(hex)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("%w: %q", ErrBadColor, s)
	}
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 0xFF}, nil
}

// HexColor formats c as "#RRGGBB", ignoring alpha.
func HexColor(c color.NRGBA) string {
	cf := colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
	return strings.ToUpper(cf.Hex())
}

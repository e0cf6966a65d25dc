package core

import "math"

// PointerState is the hover position in device pixels, or absent.
type PointerState struct {
	X       float64
	Present bool
}

func PointerAt(x float64) PointerState {
	return PointerState{X: x, Present: true}
}

// IsOver reports whether the pointer is within half a column of x, where a
// column is width/length pixels wide.
func IsOver(p PointerState, x float64, length int, width float64) bool {
	if !p.Present || length <= 0 {
		return false
	}
	column := width / float64(length)
	return math.Abs(x-p.X) < column/2
}

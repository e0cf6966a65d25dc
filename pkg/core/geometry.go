package core

import (
	"math"
	"time"
)

// Point is a mapped pixel position in device coordinates.
type Point struct {
	X, Y float64
}

// View is the device-pixel canvas a chart is laid out on. Padding is
// reserved above and below the drawable area for labels.
type View struct {
	Width   float64
	Height  float64
	Padding float64
}

func (v View) DrawableWidth() float64 {
	return v.Width
}

func (v View) DrawableHeight() float64 {
	return v.Height - v.Padding*2
}

// ViewGeometry is derived from the dataset and the view on every repaint.
type ViewGeometry struct {
	Min    float64
	Max    float64
	XRatio float64
	YRatio float64
}

// ComputeBoundaries returns the global min and max over every line series.
// Without any line values both results are NaN.
func ComputeBoundaries(ds *Dataset) (min, max float64) {
	min, max = math.NaN(), math.NaN()
	seen := false
	for _, c := range ds.LineColumns() {
		for _, v := range c.Values {
			if !seen {
				min, max = v, v
				seen = true
				continue
			}
			if v < min {
				min = v
			}
			if v > max {
				max = v
			}
		}
	}
	return min, max
}

func NewViewGeometry(ds *Dataset, v View) ViewGeometry {
	min, max := ComputeBoundaries(ds)
	span := max - min
	if span == 0 {
		span = 1
	}
	return ViewGeometry{
		Min:    min,
		Max:    max,
		XRatio: v.DrawableWidth() / float64(ds.Points()-1),
		YRatio: v.DrawableHeight() / span,
	}
}

// ToCoordinates returns a mapper from series values to pixel positions.
// The j-th value lands at x = floor(j*xRatio); y is inverted so larger
// values plot higher.
func ToCoordinates(xRatio, yRatio float64, v View) func(values []float64) []Point {
	return func(values []float64) []Point {
		points := make([]Point, len(values))
		for j, value := range values {
			points[j] = Point{
				X: math.Floor(float64(j) * xRatio),
				Y: math.Floor(v.Height - v.Padding - value*yRatio),
			}
		}
		return points
	}
}

// LabelStep is the column interval between x-axis labels.
func LabelStep(points, labelColumns int) int {
	if labelColumns <= 0 {
		return 1
	}
	step := int(math.Round(float64(points) / float64(labelColumns)))
	if step < 1 {
		return 1
	}
	return step
}

// FormatDate renders a millisecond timestamp as a short axis label, "Nov 17".
func FormatDate(ms float64) string {
	return time.UnixMilli(int64(ms)).UTC().Format("Jan 2")
}

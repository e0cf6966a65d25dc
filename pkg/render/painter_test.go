package render_test

import (
	"image/color"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tgchart/assets/sample"
	"tgchart/pkg/config"
	"tgchart/pkg/core"
	"tgchart/pkg/render"
	"tgchart/pkg/render/rendertest"
)

func samplePainter(t *testing.T) *render.Painter {
	t.Helper()
	ds, err := sample.Dataset()
	require.NoError(t, err)
	return render.NewPainter(ds, config.DefaultChartConfig())
}

func TestPaint_ClearsFullSurfaceFirst(t *testing.T) {
	p := samplePainter(t)
	rec := &rendertest.Recorder{}

	for _, pointer := range []core.PointerState{{}, core.PointerAt(300), {}} {
		rec.Reset()
		p.Paint(rec, pointer)

		calls := rec.Calls()
		require.NotEmpty(t, calls)
		assert.Equal(t, "ClearRect", calls[0].Op)
		assert.Equal(t, []float64{0, 0, 1200, 400}, calls[0].Args)
		assert.Equal(t, 1, rec.Count("ClearRect"))
	}
}

func TestPaint_AxisLabels(t *testing.T) {
	p := samplePainter(t)
	rec := &rendertest.Recorder{}
	p.Paint(rec, core.PointerState{})

	assert.Equal(t, []string{
		"225", "172", "118", "65", "12",
		"Nov 17", "Dec 6", "Dec 25", "Jan 13", "Feb 1", "Feb 20",
	}, rec.Texts())
}

func TestPaint_GridlinesShareOnePath(t *testing.T) {
	p := samplePainter(t)
	rec := &rendertest.Recorder{}
	p.Paint(rec, core.PointerState{})

	var moves [][]float64
	for _, c := range rec.Calls() {
		if c.Op == "Stroke" {
			break
		}
		if c.Op == "MoveTo" {
			moves = append(moves, c.Args)
		}
	}
	assert.Equal(t, [][]float64{{0, 104}, {0, 168}, {0, 232}, {0, 296}, {0, 360}}, moves)
}

func TestPaint_NoPointerNoHover(t *testing.T) {
	p := samplePainter(t)
	rec := &rendertest.Recorder{}
	frame := p.Paint(rec, core.PointerState{})

	assert.Empty(t, frame.Hovered)
	assert.Equal(t, -1, frame.Guide)
	assert.Zero(t, rec.Count("Arc"))
	// y-axis gridlines only
	assert.Equal(t, 5, rec.Count("MoveTo"))
}

func TestPaint_HoverMarksExactlyOneColumn(t *testing.T) {
	p := samplePainter(t)
	rec := &rendertest.Recorder{}
	xRatio := 1200.0 / 111.0

	for k := 0; k < 112; k++ {
		rec.Reset()
		frame := p.Paint(rec, core.PointerAt(math.Floor(float64(k)*xRatio)))

		require.Len(t, frame.Hovered, 2, "column %d", k)
		assert.Equal(t, "y0", frame.Hovered[0].SeriesID)
		assert.Equal(t, "y1", frame.Hovered[1].SeriesID)
		for _, h := range frame.Hovered {
			assert.Equal(t, k, h.Index, "column %d", k)
		}
		assert.Equal(t, k, frame.Guide)
		assert.Equal(t, 2, rec.Count("Arc"))
	}
}

func TestPaint_HoverCircleStyle(t *testing.T) {
	p := samplePainter(t)
	rec := &rendertest.Recorder{}
	frame := p.Paint(rec, core.PointerAt(0))
	require.Len(t, frame.Hovered, 2)

	calls := rec.Calls()
	for i, c := range calls {
		if c.Op != "Arc" {
			continue
		}
		assert.Equal(t, 8.0, c.Args[2])
		assert.InDelta(t, 2*math.Pi, c.Args[4], 1e-9)
		assert.Equal(t, "Fill", calls[i+1].Op)
		assert.Equal(t, "Stroke", calls[i+2].Op)
	}
	assert.Equal(t, core.Point{X: 0, Y: 315}, frame.Hovered[0].Point)
}

func TestPaint_GuideLineSpan(t *testing.T) {
	p := samplePainter(t)
	rec := &rendertest.Recorder{}
	xRatio := 1200.0 / 111.0
	x := math.Floor(10 * xRatio)
	p.Paint(rec, core.PointerAt(x+2))

	calls := rec.Calls()
	found := false
	for i, c := range calls {
		if c.Op == "MoveTo" && c.Args[0] == x && c.Args[1] == 20 {
			require.Equal(t, "LineTo", calls[i+1].Op)
			assert.Equal(t, []float64{x, 360}, calls[i+1].Args)
			found = true
		}
	}
	assert.True(t, found)
}

func TestPaint_GuideAlignsWithHoverCircles(t *testing.T) {
	p := samplePainter(t)
	rec := &rendertest.Recorder{}
	xRatio := 1200.0 / 111.0

	for k := 0; k < 112; k++ {
		rec.Reset()
		frame := p.Paint(rec, core.PointerAt(math.Floor(float64(k)*xRatio)))
		require.Len(t, frame.Hovered, 2, "column %d", k)

		guideX := math.NaN()
		for _, c := range rec.Calls() {
			if c.Op == "MoveTo" && c.Args[1] == 20 {
				guideX = c.Args[0]
			}
		}
		for _, c := range rec.Calls() {
			if c.Op == "Arc" {
				assert.Equal(t, guideX, c.Args[0], "column %d", k)
			}
		}
		for _, h := range frame.Hovered {
			assert.Equal(t, guideX, h.Point.X, "column %d", k)
		}
	}
}

func TestPaint_PointerOutsideSurface(t *testing.T) {
	p := samplePainter(t)
	rec := &rendertest.Recorder{}
	frame := p.Paint(rec, core.PointerAt(-500))
	assert.Empty(t, frame.Hovered)
	assert.Equal(t, -1, frame.Guide)
}

func TestPaint_LineColors(t *testing.T) {
	ds, err := sample.Dataset()
	require.NoError(t, err)
	p := render.NewPainter(ds, config.DefaultChartConfig())
	rec := &rendertest.Recorder{}
	p.Paint(rec, core.PointerState{})

	var strokes []string
	for _, c := range rec.Calls() {
		if c.Op == "SetStrokeColor" && (c.Color == ds.Color("y0") || c.Color == ds.Color("y1")) {
			strokes = append(strokes, core.HexColor(c.Color.(color.NRGBA)))
		}
	}
	assert.Equal(t, []string{"#3DC23F", "#F34C44"}, strokes)
	assert.Equal(t, 2*112, rec.Count("LineTo")-5)
}

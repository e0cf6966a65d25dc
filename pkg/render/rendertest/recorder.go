// Package rendertest provides a Surface that records calls instead of
// drawing, for assertions on what a painter did.
package rendertest

import (
	"image/color"
	"sync"

	"tgchart/pkg/render"
)

// Call is one recorded Surface method invocation.
type Call struct {
	Op    string
	Args  []float64
	Text  string
	Color color.Color
}

type Recorder struct {
	mu    sync.Mutex
	calls []Call
}

var _ render.Surface = (*Recorder)(nil)

func (r *Recorder) record(c Call) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, c)
}

// Calls returns a copy of everything recorded so far.
func (r *Recorder) Calls() []Call {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Call, len(r.calls))
	copy(out, r.calls)
	return out
}

// Count returns how many calls of op were recorded.
func (r *Recorder) Count(op string) int {
	n := 0
	for _, c := range r.Calls() {
		if c.Op == op {
			n++
		}
	}
	return n
}

// Texts returns the FillText strings in call order.
func (r *Recorder) Texts() []string {
	var out []string
	for _, c := range r.Calls() {
		if c.Op == "FillText" {
			out = append(out, c.Text)
		}
	}
	return out
}

func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = nil
}

func (r *Recorder) ClearRect(x, y, w, h float64) {
	r.record(Call{Op: "ClearRect", Args: []float64{x, y, w, h}})
}

func (r *Recorder) BeginPath() { r.record(Call{Op: "BeginPath"}) }
func (r *Recorder) ClosePath() { r.record(Call{Op: "ClosePath"}) }

func (r *Recorder) MoveTo(x, y float64) {
	r.record(Call{Op: "MoveTo", Args: []float64{x, y}})
}

func (r *Recorder) LineTo(x, y float64) {
	r.record(Call{Op: "LineTo", Args: []float64{x, y}})
}

func (r *Recorder) Arc(x, y, radius, angle1, angle2 float64) {
	r.record(Call{Op: "Arc", Args: []float64{x, y, radius, angle1, angle2}})
}

func (r *Recorder) SetLineWidth(w float64) {
	r.record(Call{Op: "SetLineWidth", Args: []float64{w}})
}

func (r *Recorder) SetStrokeColor(c color.Color) {
	r.record(Call{Op: "SetStrokeColor", Color: c})
}

func (r *Recorder) SetFillColor(c color.Color) {
	r.record(Call{Op: "SetFillColor", Color: c})
}

func (r *Recorder) SetFontSize(px float64) {
	r.record(Call{Op: "SetFontSize", Args: []float64{px}})
}

func (r *Recorder) Stroke() { r.record(Call{Op: "Stroke"}) }
func (r *Recorder) Fill()   { r.record(Call{Op: "Fill"}) }

func (r *Recorder) FillText(text string, x, y float64) {
	r.record(Call{Op: "FillText", Text: text, Args: []float64{x, y}})
}

func (r *Recorder) Save()    { r.record(Call{Op: "Save"}) }
func (r *Recorder) Restore() { r.record(Call{Op: "Restore"}) }

package chart

import (
	"errors"
	"fmt"
	"sync"

	"github.com/charmbracelet/log"

	"tgchart/pkg/config"
	"tgchart/pkg/core"
	"tgchart/pkg/render"
)

// State is the chart lifecycle stage. Active -> Destroyed is one-way.
type State int

const (
	Active State = iota
	Destroyed
)

func (s State) String() string {
	switch s {
	case Active:
		return "active"
	case Destroyed:
		return "destroyed"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

var ErrNilSurface = errors.New("chart needs a drawing surface")

type Option func(*Chart)

// WithOnFrame registers a callback run after every completed paint. It runs
// without the chart lock held, so it may call Paints, State or Destroy.
func WithOnFrame(fn func(render.Frame)) Option {
	return func(c *Chart) { c.onFrame = fn }
}

func WithLogger(l *log.Logger) Option {
	return func(c *Chart) { c.logger = l }
}

func WithStyle(style render.Style) Option {
	return func(c *Chart) { c.painter.SetStyle(style) }
}

// Chart binds a dataset, a surface and a pointer source. Pointer writes go
// through a PointerStore whose only subscriber is the repaint scheduler.
type Chart struct {
	mu        sync.Mutex
	state     State
	surface   render.Surface
	source    EventSource
	cfg       config.ChartConfig
	ds        *core.Dataset
	painter   *render.Painter
	pointer   *PointerStore
	scheduler *RepaintScheduler
	listener  *pointerListener
	onFrame   func(render.Frame)
	logger    *log.Logger
	lastGuide int
	paints    int
}

// New validates ds and cfg and attaches to source. The first paint happens
// in Init.
func New(surface render.Surface, source EventSource, ds *core.Dataset, cfg config.ChartConfig, frames FrameRequester, opts ...Option) (*Chart, error) {
	if surface == nil {
		return nil, ErrNilSurface
	}
	if err := ds.Validate(); err != nil {
		return nil, fmt.Errorf("invalid dataset: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid chart config: %w", err)
	}

	c := &Chart{
		surface:   surface,
		source:    source,
		cfg:       cfg,
		ds:        ds,
		painter:   render.NewPainter(ds, cfg),
		logger:    log.Default(),
		lastGuide: -1,
	}
	c.scheduler = NewRepaintScheduler(frames, c.paint)
	c.pointer = NewPointerStore(func(core.PointerState) { c.scheduler.Request() })
	c.listener = &pointerListener{c: c}
	for _, opt := range opts {
		opt(c)
	}

	if source != nil {
		source.AddPointerListener(c.listener)
	}
	return c, nil
}

// Init performs the first paint.
func (c *Chart) Init() {
	c.paint()
}

// Destroy detaches from the event source and cancels the pending repaint.
// Calling it again does nothing.
func (c *Chart) Destroy() {
	c.mu.Lock()
	if c.state == Destroyed {
		c.mu.Unlock()
		return
	}
	c.state = Destroyed
	paints := c.paints
	c.mu.Unlock()

	c.scheduler.Stop()
	if c.source != nil {
		c.source.RemovePointerListener(c.listener)
	}
	c.logger.Debug("chart destroyed", "paints", paints)
}

func (c *Chart) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Pointer returns the current hover state in device pixels.
func (c *Chart) Pointer() core.PointerState {
	return c.pointer.Get()
}

// Paints counts completed paints.
func (c *Chart) Paints() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.paints
}

func (c *Chart) paint() {
	c.mu.Lock()
	if c.state == Destroyed {
		c.mu.Unlock()
		return
	}

	frame := c.painter.Paint(c.surface, c.pointer.Get())
	c.paints++
	if frame.Guide != c.lastGuide {
		c.lastGuide = frame.Guide
		if frame.Guide >= 0 {
			x, _ := c.ds.XColumn()
			c.logger.Debug("hover column", "index", frame.Guide, "date", core.FormatDate(x.Values[frame.Guide]), "points", len(frame.Hovered))
		}
	}
	onFrame := c.onFrame
	c.mu.Unlock()

	// onFrame may call back into the chart.
	if onFrame != nil {
		onFrame(frame)
	}
}

func (c *Chart) active() bool {
	return c.State() == Active
}

// pointerMoved maps a client x into device pixels relative to the surface.
func (c *Chart) pointerMoved(clientX float64) {
	if !c.active() {
		return
	}
	left := 0.0
	if c.source != nil {
		left = c.source.Left()
	}
	c.pointer.Set(core.PointerAt((clientX - left) * c.cfg.PixelRatio))
}

func (c *Chart) pointerLeft() {
	if !c.active() {
		return
	}
	c.pointer.Clear()
}

type pointerListener struct {
	c *Chart
}

func (l *pointerListener) PointerMoved(clientX, _ float64) { l.c.pointerMoved(clientX) }
func (l *pointerListener) PointerLeft()                    { l.c.pointerLeft() }

package chart

import "sync"

// PointerListener receives pointer events in client coordinates.
type PointerListener interface {
	PointerMoved(clientX, clientY float64)
	PointerLeft()
}

// EventSource is the host element a chart listens on. Left is the client x
// of the element's left edge.
type EventSource interface {
	AddPointerListener(l PointerListener)
	RemovePointerListener(l PointerListener)
	Left() float64
}

// Dispatcher is an EventSource driven by explicit Move and Leave calls.
type Dispatcher struct {
	mu        sync.RWMutex
	listeners []PointerListener
	left      float64
}

var _ EventSource = (*Dispatcher)(nil)

func (d *Dispatcher) AddPointerListener(l PointerListener) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.listeners = append(d.listeners, l)
}

func (d *Dispatcher) RemovePointerListener(l PointerListener) {
	d.mu.Lock()
	defer d.mu.Unlock()
	for i, existing := range d.listeners {
		if existing == l {
			d.listeners = append(d.listeners[:i], d.listeners[i+1:]...)
			return
		}
	}
}

func (d *Dispatcher) Left() float64 {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.left
}

func (d *Dispatcher) SetLeft(left float64) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.left = left
}

func (d *Dispatcher) Listeners() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.listeners)
}

func (d *Dispatcher) Move(clientX, clientY float64) {
	for _, l := range d.snapshot() {
		l.PointerMoved(clientX, clientY)
	}
}

func (d *Dispatcher) Leave() {
	for _, l := range d.snapshot() {
		l.PointerLeft()
	}
}

func (d *Dispatcher) snapshot() []PointerListener {
	d.mu.RLock()
	defer d.mu.RUnlock()
	out := make([]PointerListener, len(d.listeners))
	copy(out, d.listeners)
	return out
}

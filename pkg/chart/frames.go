package chart

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// FrameHandle identifies one requested frame callback.
type FrameHandle uint64

// FrameRequester is the host's frame-callback primitive.
type FrameRequester interface {
	RequestFrame(fn func()) FrameHandle
	CancelFrame(h FrameHandle)
}

type pendingFrame struct {
	timer       *time.Timer
	reservation *rate.Reservation
}

// RateFrames paces callbacks to at most rate frames per second. Each request
// reserves the next slot on a limiter and fires after the reservation delay
// through dispatch, which moves the call onto the UI thread.
type RateFrames struct {
	mu       sync.Mutex
	limiter  *rate.Limiter
	dispatch func(func())
	next     FrameHandle
	pending  map[FrameHandle]pendingFrame
}

var _ FrameRequester = (*RateFrames)(nil)

// NewRateFrames creates a requester for fps frames per second. A nil
// dispatch runs callbacks on the timer goroutine.
func NewRateFrames(fps int, dispatch func(func())) *RateFrames {
	if dispatch == nil {
		dispatch = func(fn func()) { fn() }
	}
	return &RateFrames{
		limiter:  rate.NewLimiter(rate.Limit(fps), 1),
		dispatch: dispatch,
		pending:  make(map[FrameHandle]pendingFrame),
	}
}

func (f *RateFrames) RequestFrame(fn func()) FrameHandle {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.next++
	h := f.next
	r := f.limiter.Reserve()
	timer := time.AfterFunc(r.Delay(), func() {
		f.mu.Lock()
		_, live := f.pending[h]
		delete(f.pending, h)
		f.mu.Unlock()
		if live {
			f.dispatch(fn)
		}
	})
	f.pending[h] = pendingFrame{timer: timer, reservation: r}
	return h
}

func (f *RateFrames) CancelFrame(h FrameHandle) {
	f.mu.Lock()
	p, ok := f.pending[h]
	delete(f.pending, h)
	f.mu.Unlock()

	if !ok {
		return
	}
	if p.timer.Stop() {
		p.reservation.Cancel()
	}
}

// ManualFrames queues callbacks until Flush. Headless rendering and tests
// use it to decide exactly when a frame fires.
type ManualFrames struct {
	mu      sync.Mutex
	next    FrameHandle
	order   []FrameHandle
	pending map[FrameHandle]func()
}

var _ FrameRequester = (*ManualFrames)(nil)

func NewManualFrames() *ManualFrames {
	return &ManualFrames{pending: make(map[FrameHandle]func())}
}

func (f *ManualFrames) RequestFrame(fn func()) FrameHandle {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.next++
	f.pending[f.next] = fn
	f.order = append(f.order, f.next)
	return f.next
}

func (f *ManualFrames) CancelFrame(h FrameHandle) {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.pending, h)
}

// Pending is the number of callbacks waiting for Flush.
func (f *ManualFrames) Pending() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.pending)
}

// Flush runs every queued callback in request order and returns how many ran.
// Callbacks requested during Flush wait for the next one.
func (f *ManualFrames) Flush() int {
	f.mu.Lock()
	order := f.order
	f.order = nil
	var fns []func()
	for _, h := range order {
		if fn, ok := f.pending[h]; ok {
			fns = append(fns, fn)
			delete(f.pending, h)
		}
	}
	f.mu.Unlock()

	for _, fn := range fns {
		fn()
	}
	return len(fns)
}

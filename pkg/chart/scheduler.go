package chart

import "sync"

// RepaintScheduler keeps at most one repaint pending. Requests made while a
// frame is pending are dropped: that frame reads the latest state when it
// fires. Cancel invalidates the pending frame even if its callback was
// already dispatched.
type RepaintScheduler struct {
	mu      sync.Mutex
	frames  FrameRequester
	paint   func()
	pending bool
	handle  FrameHandle
	gen     uint64
	stopped bool
}

// NewRepaintScheduler wires paint to frames. frames must not run the
// callback synchronously from RequestFrame.
func NewRepaintScheduler(frames FrameRequester, paint func()) *RepaintScheduler {
	return &RepaintScheduler{frames: frames, paint: paint}
}

// Request schedules a repaint and reports whether a new frame was requested.
func (s *RepaintScheduler) Request() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stopped || s.pending {
		return false
	}
	s.gen++
	gen := s.gen
	s.pending = true
	s.handle = s.frames.RequestFrame(func() { s.fire(gen) })
	return true
}

func (s *RepaintScheduler) fire(gen uint64) {
	s.mu.Lock()
	if s.stopped || !s.pending || gen != s.gen {
		s.mu.Unlock()
		return
	}
	s.pending = false
	s.mu.Unlock()

	s.paint()
}

func (s *RepaintScheduler) Pending() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pending
}

// Cancel drops the pending repaint, if any.
func (s *RepaintScheduler) Cancel() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cancelLocked()
}

// Stop cancels the pending repaint and refuses later requests.
func (s *RepaintScheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cancelLocked()
	s.stopped = true
}

func (s *RepaintScheduler) cancelLocked() {
	if s.pending {
		s.frames.CancelFrame(s.handle)
		s.pending = false
	}
	s.gen++
}

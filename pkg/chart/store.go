package chart

import (
	"sync"

	"tgchart/pkg/core"
)

// PointerStore holds the current hover position and notifies a single
// subscriber on every write.
type PointerStore struct {
	mu       sync.RWMutex
	state    core.PointerState
	onChange func(core.PointerState)
}

func NewPointerStore(onChange func(core.PointerState)) *PointerStore {
	return &PointerStore{onChange: onChange}
}

func (s *PointerStore) Get() core.PointerState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Set stores state and calls the subscriber outside the lock.
func (s *PointerStore) Set(state core.PointerState) {
	s.mu.Lock()
	s.state = state
	notify := s.onChange
	s.mu.Unlock()

	if notify != nil {
		notify(state)
	}
}

func (s *PointerStore) Clear() {
	s.Set(core.PointerState{})
}

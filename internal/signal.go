package internal

import "sync"

type Signal struct {
	mu sync.Mutex

	value any
	subs  []*Effect
}

func (r *Runtime) NewSignal(initial any) *Signal {
	return &Signal{
		value: initial,
	}
}

// Read returns the current value, tracking the dependency
// if called within a running effect.
func (s *Signal) Read() any {
	GetRuntime().tracker.Track(s)

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.value
}

// Peek returns the current value without tracking.
func (s *Signal) Peek() any {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.value
}

// Write stores a new value and reruns subscribed effects.
// Writing an equal value is a no-op.
func (s *Signal) Write(v any) {
	s.mu.Lock()
	if isEqual(s.value, v) {
		s.mu.Unlock()
		return
	}

	s.value = v
	subs := make([]*Effect, len(s.subs))
	copy(subs, s.subs)
	s.mu.Unlock()

	// run outside the lock, effects may read this signal again
	for _, e := range subs {
		e.run()
	}
}

func (s *Signal) subscribe(e *Effect) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, sub := range s.subs {
		if sub == e {
			return
		}
	}

	s.subs = append(s.subs, e)
}

func (s *Signal) unsubscribe(e *Effect) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, sub := range s.subs {
		if sub == e {
			s.subs = append(s.subs[:i], s.subs[i+1:]...)
			return
		}
	}
}

func isEqual(a, b any) bool {
	return a == b
}

// Package hostsignal models the browser's prefers-color-scheme value on the
// server side.
package hostsignal

import (
	"sync"

	"github.com/ziadkadry99/serviqo/internal/theme"
)

// Signal holds the host's current "prefers dark" value and the listeners
// registered for changes. It satisfies theme.HostSignal.
type Signal struct {
	// dispatch serializes Set so each change is fully delivered before the
	// next one starts. It is never held together with mu.
	dispatch sync.Mutex

	mu          sync.RWMutex
	prefersDark bool
	nextID      uint64
	listeners   []listener
}

type listener struct {
	id uint64
	fn func(bool)
}

// New returns a Signal seeded with the given value.
func New(prefersDark bool) *Signal {
	return &Signal{prefersDark: prefersDark}
}

// PrefersDark reports the current value.
func (s *Signal) PrefersDark() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.prefersDark
}

// Subscribe registers fn for change notifications.
func (s *Signal) Subscribe(fn func(prefersDark bool)) theme.Subscription {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID
	s.nextID++
	s.listeners = append(s.listeners, listener{id: id, fn: fn})
	return &subscription{signal: s, id: id}
}

// Set updates the value and, when it changed, calls every listener in
// registration order. Listeners run on the caller's goroutine.
func (s *Signal) Set(prefersDark bool) {
	s.dispatch.Lock()
	defer s.dispatch.Unlock()

	s.mu.Lock()
	if s.prefersDark == prefersDark {
		s.mu.Unlock()
		return
	}
	s.prefersDark = prefersDark
	targets := make([]listener, len(s.listeners))
	copy(targets, s.listeners)
	s.mu.Unlock()

	for _, l := range targets {
		l.fn(prefersDark)
	}
}

// Listeners returns the number of live registrations.
func (s *Signal) Listeners() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.listeners)
}

func (s *Signal) remove(id uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, l := range s.listeners {
		if l.id == id {
			s.listeners = append(s.listeners[:i], s.listeners[i+1:]...)
			return
		}
	}
}

type subscription struct {
	once   sync.Once
	signal *Signal
	id     uint64
}

func (sub *subscription) Release() {
	sub.once.Do(func() { sub.signal.remove(sub.id) })
}

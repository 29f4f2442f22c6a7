// Package charlock serializes mutating operations against a single
// character. Every engine operation reads current state and writes a
// derived next state, so two concurrent operations on the same character
// must not interleave; operations on different characters run in parallel.
package charlock

import "sync"

// Locker hands out one mutex per character ID.
type Locker struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// New creates an empty Locker
func New() *Locker {
	return &Locker{
		locks: make(map[string]*sync.Mutex),
	}
}

// Lock acquires the lock for the given character ID, creating it on first
// use. Returns the unlock function.
//
// Entries are never evicted; one mutex per character seen by this process
// is an acceptable footprint for a request-scoped engine.
func (l *Locker) Lock(characterID string) func() {
	l.mu.Lock()
	m, ok := l.locks[characterID]
	if !ok {
		m = &sync.Mutex{}
		l.locks[characterID] = m
	}
	l.mu.Unlock()

	m.Lock()
	return m.Unlock
}

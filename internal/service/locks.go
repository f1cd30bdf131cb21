package service

import "sync"

// keyedMutex provides one mutex per key so that operations on
// different aggregates (rooms, showtimes) never contend with each
// other.  Locks are created on first use and kept for the process
// lifetime; the key space is bounded by the number of aggregates.
type keyedMutex struct {
	mu    sync.Mutex
	locks map[uint64]*sync.Mutex
}

func newKeyedMutex() *keyedMutex {
	return &keyedMutex{locks: make(map[uint64]*sync.Mutex)}
}

// Lock acquires the mutex for key, creating it if needed, and returns
// the unlock function.
func (k *keyedMutex) Lock(key uint64) func() {
	k.mu.Lock()
	m, ok := k.locks[key]
	if !ok {
		m = &sync.Mutex{}
		k.locks[key] = m
	}
	k.mu.Unlock()
	m.Lock()
	return m.Unlock
}

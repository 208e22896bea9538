package concurrency

import (
	"sync"
)

// LockSet mutual exclusion by key. the borrow path locks the account
// key around its check-then-commit section; operations on different
// accounts do not contend.
type LockSet struct {
	mu    sync.Mutex
	locks map[string]*entry
}

type entry struct {
	mu   sync.Mutex
	refs int
}

// NewLockSet new lock set
func NewLockSet() *LockSet {
	return &LockSet{
		locks: make(map[string]*entry),
	}
}

// Lock acquires the lock for key, blocking while another holder owns it
func (s *LockSet) Lock(key string) {
	s.mu.Lock()
	e, ok := s.locks[key]
	if !ok {
		e = &entry{}
		s.locks[key] = e
	}
	e.refs++
	s.mu.Unlock()

	e.mu.Lock()
}

// Unlock releases the lock for key
func (s *LockSet) Unlock(key string) {
	s.mu.Lock()
	e, ok := s.locks[key]
	if ok {
		e.refs--
		if e.refs <= 0 {
			delete(s.locks, key)
		}
	}
	s.mu.Unlock()

	if ok {
		e.mu.Unlock()
	}
}

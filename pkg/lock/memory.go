package lock

import (
	"context"
	"sync"
)

// MemoryLocker is an in-process Locker keyed by account number. It gives the
// same per-key exclusion guarantee within a single process and is used in
// tests and single-instance local runs where no Redis is available.
type MemoryLocker struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// NewMemoryLocker creates an empty MemoryLocker.
func NewMemoryLocker() *MemoryLocker {
	return &MemoryLocker{locks: make(map[string]*sync.Mutex)}
}

// Make sure we conform to the interface
var _ Locker = (*MemoryLocker)(nil)

// WithLock runs fn while holding the in-process mutex for key.
func (l *MemoryLocker) WithLock(ctx context.Context, key string, fn func(context.Context) error) error {
	l.mu.Lock()
	m, ok := l.locks[key]
	if !ok {
		m = &sync.Mutex{}
		l.locks[key] = m
	}
	l.mu.Unlock()

	m.Lock()
	defer m.Unlock()

	return fn(ctx)
}

// Package lock provides scoped mutual exclusion for check-then-act sequences
// such as "import a jurisdiction only if it is empty" and "demote every other
// featured person". Memory serves a single process; Redis serves a fleet.
package lock

import (
	"context"
	"sync"
)

// Memory is an in-process keyed lock.
type Memory struct {
	mu    sync.Mutex
	slots map[string]chan struct{}
}

// NewMemory returns an empty in-process locker.
func NewMemory() *Memory {
	return &Memory{slots: make(map[string]chan struct{})}
}

// Acquire blocks until key is free or ctx is done. The returned release func
// must be called exactly once.
func (m *Memory) Acquire(ctx context.Context, key string) (func(context.Context) error, error) {
	slot := m.slot(key)
	select {
	case slot <- struct{}{}:
	case <-ctx.Done():
		return nil, ctx.Err()
	}
	var once sync.Once
	return func(context.Context) error {
		once.Do(func() { <-slot })
		return nil
	}, nil
}

func (m *Memory) slot(key string) chan struct{} {
	m.mu.Lock()
	defer m.mu.Unlock()
	slot, ok := m.slots[key]
	if !ok {
		slot = make(chan struct{}, 1)
		m.slots[key] = slot
	}
	return slot
}

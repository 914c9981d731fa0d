package store

import (
	"context"
	"sync"
)

// Manager hands out one Store per session key, rehydrating from the
// persister on first access.
type Manager struct {
	mu        sync.RWMutex
	stores    map[string]*Store
	persister Persister
	listener  Listener
}

func NewManager(p Persister, l Listener) *Manager {
	return &Manager{
		stores:    make(map[string]*Store),
		persister: p,
		listener:  l,
	}
}

func (m *Manager) Get(ctx context.Context, session string) (*Store, error) {
	m.mu.RLock()
	st, ok := m.stores[session]
	m.mu.RUnlock()
	if ok {
		return st, nil
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if st, ok := m.stores[session]; ok {
		return st, nil
	}

	st, err := New(ctx, session, m.persister, m.listener)
	if err != nil {
		return nil, err
	}
	m.stores[session] = st
	return st, nil
}

// Drop evicts the cached store and deletes its persisted snapshot.
func (m *Manager) Drop(ctx context.Context, session string) error {
	m.mu.Lock()
	delete(m.stores, session)
	m.mu.Unlock()
	return m.persister.Delete(ctx, session)
}

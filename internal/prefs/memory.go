package prefs

import (
	"context"
	"maps"
	"sync"
)

// MemoryBackend keeps preferences in process memory. Values survive for
// the lifetime of the backend, which is enough for tests and for
// single-process deployments that do not need restarts to keep state.
type MemoryBackend struct {
	mu      sync.RWMutex
	clients map[string]map[string]string
}

// NewMemoryBackend returns an empty MemoryBackend.
func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{clients: make(map[string]map[string]string)}
}

func (m *MemoryBackend) Get(_ context.Context, clientID, key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.clients[clientID][key]
	return v, ok, nil
}

func (m *MemoryBackend) Set(_ context.Context, clientID, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	entries, ok := m.clients[clientID]
	if !ok {
		entries = make(map[string]string)
		m.clients[clientID] = entries
	}
	entries[key] = value
	return nil
}

func (m *MemoryBackend) Remove(_ context.Context, clientID, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.clients[clientID], key)
	return nil
}

func (m *MemoryBackend) List(_ context.Context, clientID string) (map[string]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make(map[string]string, len(m.clients[clientID]))
	maps.Copy(out, m.clients[clientID])
	return out, nil
}

func (m *MemoryBackend) Clear(_ context.Context, clientID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.clients, clientID)
	return nil
}

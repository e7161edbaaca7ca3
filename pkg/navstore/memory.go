package navstore

import (
	"context"
	"sync"
)

// MemoryStorage keeps the encoded path in process memory.
// Useful for tests and for demos that should forget their state on exit.
type MemoryStorage struct {
	mu   sync.RWMutex
	data []byte
	ok   bool
}

// NewMemoryStorage creates empty in-memory storage.
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{}
}

// Load returns the stored blob, if any.
func (m *MemoryStorage) Load(ctx context.Context) ([]byte, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if !m.ok {
		return nil, false, nil
	}
	out := make([]byte, len(m.data))
	copy(out, m.data)
	return out, true, nil
}

// Save replaces the stored blob.
func (m *MemoryStorage) Save(ctx context.Context, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data = make([]byte, len(data))
	copy(m.data, data)
	m.ok = true
	return nil
}

// Clear drops the stored blob.
func (m *MemoryStorage) Clear(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data = nil
	m.ok = false
	return nil
}

// Close does nothing for memory storage.
func (m *MemoryStorage) Close() error {
	return nil
}

// Ensure MemoryStorage implements Storage.
var _ Storage = (*MemoryStorage)(nil)

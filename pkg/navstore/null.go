package navstore

import "context"

// NullStorage is a no-op backend that never stores anything.
// Useful for testing or when persistence should be disabled.
type NullStorage struct{}

// NewNullStorage creates a null storage backend.
func NewNullStorage() Storage {
	return &NullStorage{}
}

// Load always reports absent state.
func (n *NullStorage) Load(ctx context.Context) ([]byte, bool, error) {
	return nil, false, nil
}

// Save does nothing.
func (n *NullStorage) Save(ctx context.Context, data []byte) error {
	return nil
}

// Clear does nothing.
func (n *NullStorage) Clear(ctx context.Context) error {
	return nil
}

// Close does nothing.
func (n *NullStorage) Close() error {
	return nil
}

// Ensure NullStorage implements Storage.
var _ Storage = (*NullStorage)(nil)

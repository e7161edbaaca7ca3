package navstore

import (
	"context"
	"testing"
)

func TestMemoryStorage(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryStorage()

	// Fresh storage has no state.
	_, ok, err := m.Load(ctx)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if ok {
		t.Error("fresh storage should report absent state")
	}

	if err := m.Save(ctx, []byte("[]")); err != nil {
		t.Fatalf("Save error: %v", err)
	}
	data, ok, _ := m.Load(ctx)
	if !ok || string(data) != "[]" {
		t.Errorf("Load = %s, %v", data, ok)
	}

	if err := m.Clear(ctx); err != nil {
		t.Fatalf("Clear error: %v", err)
	}
	if _, ok, _ := m.Load(ctx); ok {
		t.Error("state should be absent after Clear")
	}
}

func TestMemoryStorageReturnsCopies(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryStorage()

	original := []byte("[1]")
	if err := m.Save(ctx, original); err != nil {
		t.Fatalf("Save error: %v", err)
	}
	original[1] = 'X'

	data, _, _ := m.Load(ctx)
	if string(data) != "[1]" {
		t.Errorf("stored blob aliased caller slice: %s", data)
	}

	data[0] = 'Y'
	again, _, _ := m.Load(ctx)
	if string(again) != "[1]" {
		t.Errorf("loaded blob aliased internal state: %s", again)
	}
}

func TestNullStorage(t *testing.T) {
	ctx := context.Background()
	n := NewNullStorage()
	defer n.Close()

	if err := n.Save(ctx, []byte("[]")); err != nil {
		t.Errorf("Save error: %v", err)
	}

	// Still absent after Save.
	_, ok, err := n.Load(ctx)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if ok {
		t.Error("NullStorage should never store data")
	}

	if err := n.Clear(ctx); err != nil {
		t.Errorf("Clear error: %v", err)
	}
}

// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation without adding hard
// dependencies on specific observability backends. Consumers can register
// hooks at startup to receive events about path store loads, mutations,
// and saves.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define a hook interface for store events
//   - Provide a no-op default implementation
//   - Allow registration of a custom implementation at startup
//
// This approach:
//   - Avoids import cycles (hooks are registered by main, not by libraries)
//   - Keeps the core library dependency-free from observability frameworks
//   - Allows different backends (OpenTelemetry, Prometheus, DataDog, etc.)
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetStoreHooks(&myStoreHooks{})
//	    // ... run application
//	}
//
// The store calls hooks to emit events:
//
//	observability.Store().OnMutate(ctx, path.Len())
package observability

import (
	"context"
	"sync"
	"time"
)

// StoreHooks receives events from path store operations.
type StoreHooks interface {
	// OnLoad records the startup load. restored is false when the store
	// fell back to the empty path (missing or corrupt persisted state).
	OnLoad(ctx context.Context, entries int, restored bool, err error)

	// OnMutate records an in-memory path replacement.
	OnMutate(ctx context.Context, entries int)

	// OnSave records a persistence attempt following a mutation.
	OnSave(ctx context.Context, bytes int, duration time.Duration, err error)
}

// noopStoreHooks is the default no-op implementation.
type noopStoreHooks struct{}

func (noopStoreHooks) OnLoad(ctx context.Context, entries int, restored bool, err error) {}
func (noopStoreHooks) OnMutate(ctx context.Context, entries int)                         {}
func (noopStoreHooks) OnSave(ctx context.Context, bytes int, duration time.Duration, err error) {
}

var (
	mu         sync.RWMutex
	storeHooks StoreHooks = noopStoreHooks{}
)

// SetStoreHooks registers a custom StoreHooks implementation.
// Pass nil to restore the no-op default.
// This should be called once at startup, before the store is created.
func SetStoreHooks(h StoreHooks) {
	mu.Lock()
	defer mu.Unlock()
	if h == nil {
		storeHooks = noopStoreHooks{}
		return
	}
	storeHooks = h
}

// Store returns the registered StoreHooks implementation.
// Always returns a non-nil value.
func Store() StoreHooks {
	mu.RLock()
	defer mu.RUnlock()
	return storeHooks
}

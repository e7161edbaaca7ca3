// Package navstore persists navigation paths across application launches.
//
// This package defines the Storage interface for encoded path blobs, with
// implementations for different backends:
//   - memory: In-memory storage for development/testing
//   - file: Single-file JSON storage for desktop and CLI applications
//   - redis: Redis-backed storage for shared deployments
//   - mongo: MongoDB-backed storage for shared deployments
//   - null: No-op storage that disables persistence
//
// # Architecture
//
// PathStore owns the in-memory navigation path and keeps the persisted copy
// in sync. It is deliberately forgiving:
//   - A failed load (missing file, corrupt bytes, unreachable backend)
//     silently yields the empty path. No error reaches the caller.
//   - A failed save is logged and otherwise swallowed. The in-memory path
//     keeps the new value and may diverge from the backend until the next
//     successful save.
//   - Nothing is retried and nothing is fatal.
//
// Subscribers registered with Subscribe are notified after every in-memory
// mutation, before persistence is attempted; the rendering layer observes
// mutations regardless of backend health.
//
// # Usage
//
//	storage, err := navstore.NewFileStorage("")  // Uses the XDG data dir
//	if err != nil {
//	    return err
//	}
//	store := navstore.New(ctx, storage)
//
//	store.Push(ctx, navpath.Int(556), navpath.String("Hello"))
//	store.Pop(ctx)
//	current := store.Path()
package navstore

// Package pkg provides the core libraries for the navstack navigation tutorial.
//
// # Overview
//
// Navstack demonstrates stack-based navigation whose state survives process
// relaunches: the current position in a screen hierarchy is an ordered path
// of entries, persisted on every change and restored at startup. The pkg
// directory is organized into three main areas:
//
//  1. [navpath] - The path value type (entries, encoding, stack operations)
//  2. [navstore] - The persisted store (storage backends, change notification)
//  3. [errors], [buildinfo], [observability] - Shared infrastructure
//
// # Architecture
//
// The typical data flow through navstack:
//
//	User gesture (select, back, reset)
//	         ↓
//	    [navpath] package (immutable path values)
//	         ↓
//	    [navstore] package (store + persistence on every mutation)
//	         ↓
//	    file / redis / mongo backend
//
// On the way back up, the store restores whatever the last run persisted,
// silently starting from the empty path when nothing usable is found.
//
// # Quick Start
//
// Open a store over a file backend and navigate:
//
//	import (
//	    "context"
//	    "github.com/jfdoradotr/navstack/pkg/navpath"
//	    "github.com/jfdoradotr/navstack/pkg/navstore"
//	)
//
//	// 1. Open storage (restores the previous path if one exists)
//	storage, _ := navstore.NewFileStorage("")
//	store := navstore.New(context.Background(), storage)
//	defer store.Close()
//
//	// 2. Navigate
//	store.Push(ctx, navpath.Int(556))
//	store.Push(ctx, navpath.String("Hello"))
//
//	// 3. Go back one screen, or all the way to root
//	store.Pop(ctx)
//	store.Reset(ctx)
//
// Every mutation is written through to storage before the call returns; a
// failed write is logged and the in-memory path keeps the new value.
//
// # Main Packages
//
// [navpath] - The path value type. A path is an ordered sequence of entries,
// each holding either an integer or a string. Paths are immutable: Push and
// Pop return new values. Encode and Decode define the persisted JSON shape,
// including the explicit empty sequence for the root.
//
// [navstore] - The persisted store wrapping a path with write-through
// persistence and subscriber notification. Storage is an interface with five
// implementations: file (default), memory, redis, mongo, and null.
//
// [errors] - Structured errors with stable codes, used across the store and
// CLI for classification without string matching.
//
// [observability] - Hook points fired on load, mutation, and save. The
// default hooks do nothing; tests and metrics layers install their own.
//
// [buildinfo] - Version metadata injected at build time via ldflags.
//
// # Common Workflows
//
// Watch the path change:
//
//	store.Subscribe(func(p navpath.Path) {
//	    fmt.Println("now at:", p)
//	})
//
// Use an alternate backend:
//
//	storage, err := navstore.NewRedisStorage(ctx, navstore.RedisConfig{
//	    Addr: "localhost:6379",
//	})
//
// Inspect the persisted wire format:
//
//	data, _ := navpath.Encode(navpath.Path{navpath.Int(556), navpath.String("Hello")})
//	// [{"kind":"int","value":556},{"kind":"string","value":"Hello"}]
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...           # All tests
//	go test ./pkg/navstore/...  # Specific package
//	go test -run Example        # Examples only
//
// [navpath]: https://pkg.go.dev/github.com/jfdoradotr/navstack/pkg/navpath
// [navstore]: https://pkg.go.dev/github.com/jfdoradotr/navstack/pkg/navstore
// [errors]: https://pkg.go.dev/github.com/jfdoradotr/navstack/pkg/errors
// [observability]: https://pkg.go.dev/github.com/jfdoradotr/navstack/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/jfdoradotr/navstack/pkg/buildinfo
package pkg

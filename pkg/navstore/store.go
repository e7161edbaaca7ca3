package navstore

import (
	"context"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/jfdoradotr/navstack/pkg/navpath"
	"github.com/jfdoradotr/navstack/pkg/observability"
)

// Storage persists an encoded navigation path.
// Implementations store one blob: the whole path is overwritten on each save.
type Storage interface {
	// Load returns the encoded path.
	// ok is false when nothing has been saved yet.
	Load(ctx context.Context) (data []byte, ok bool, err error)

	// Save overwrites the stored path wholesale.
	Save(ctx context.Context, data []byte) error

	// Clear removes the stored path. Clearing absent state is not an error.
	Clear(ctx context.Context) error

	// Close releases backend resources.
	Close() error
}

// Subscriber observes in-memory path mutations.
// The path passed to the subscriber is a copy; holding onto it is safe.
type Subscriber func(navpath.Path)

// PathStore owns the current navigation path and keeps a persisted copy in
// sync. Every mutation notifies subscribers and then attempts a save.
//
// The store is safe for concurrent use, though typical usage drives it from
// a single event loop.
type PathStore struct {
	storage Storage
	logger  *log.Logger

	mu   sync.RWMutex
	path navpath.Path
	subs []Subscriber
}

// Option configures a PathStore.
type Option func(*PathStore)

// WithLogger sets the logger used for load/save diagnostics.
func WithLogger(l *log.Logger) Option {
	return func(s *PathStore) {
		if l != nil {
			s.logger = l
		}
	}
}

// New creates a PathStore backed by storage and restores the persisted path.
// Restoration is best-effort: a missing, corrupt, or unreadable persisted
// path yields the empty path and is reported at debug level only.
func New(ctx context.Context, storage Storage, opts ...Option) *PathStore {
	s := &PathStore{
		storage: storage,
		logger:  log.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.path = s.restore(ctx)
	return s
}

// restore loads and decodes the persisted path, falling back to empty.
func (s *PathStore) restore(ctx context.Context) navpath.Path {
	data, ok, err := s.storage.Load(ctx)
	if err != nil {
		s.logger.Debug("restore navigation path failed, starting at root", "err", err)
		observability.Store().OnLoad(ctx, 0, false, err)
		return nil
	}
	if !ok {
		observability.Store().OnLoad(ctx, 0, false, nil)
		return nil
	}

	p, err := navpath.Decode(data)
	if err != nil {
		s.logger.Debug("decode navigation path failed, starting at root", "err", err)
		observability.Store().OnLoad(ctx, 0, false, err)
		return nil
	}

	s.logger.Debug("restored navigation path", "entries", p.Len())
	observability.Store().OnLoad(ctx, p.Len(), true, nil)
	return p
}

// Set replaces the navigation path, notifies subscribers, and persists the
// new value. Persistence failure is logged and swallowed; the in-memory path
// keeps the new value.
func (s *PathStore) Set(ctx context.Context, p navpath.Path) {
	p = p.Clone()

	s.mu.Lock()
	s.path = p
	subs := make([]Subscriber, len(s.subs))
	copy(subs, s.subs)
	s.mu.Unlock()

	observability.Store().OnMutate(ctx, p.Len())
	for _, fn := range subs {
		fn(p.Clone())
	}

	s.persist(ctx, p)
}

// persist encodes and saves the path, reducing every failure to a warning.
func (s *PathStore) persist(ctx context.Context, p navpath.Path) {
	start := time.Now()

	data, err := navpath.Encode(p)
	if err != nil {
		s.logger.Warn("encode navigation path", "err", err)
		observability.Store().OnSave(ctx, 0, time.Since(start), err)
		return
	}

	if err := s.storage.Save(ctx, data); err != nil {
		s.logger.Warn("persist navigation path", "err", err, "entries", p.Len())
		observability.Store().OnSave(ctx, len(data), time.Since(start), err)
		return
	}

	observability.Store().OnSave(ctx, len(data), time.Since(start), nil)
}

// Push appends entries to the tail of the path.
func (s *PathStore) Push(ctx context.Context, entries ...navpath.Entry) {
	s.Set(ctx, s.Path().Push(entries...))
}

// Pop removes the tail entry. Popping at the root is a no-op mutation.
func (s *PathStore) Pop(ctx context.Context) {
	s.Set(ctx, s.Path().Pop())
}

// Reset returns to the root screen by clearing the path.
// The persisted copy is overwritten with an explicit empty sequence.
func (s *PathStore) Reset(ctx context.Context) {
	s.Set(ctx, nil)
}

// Path returns a copy of the current navigation path.
func (s *PathStore) Path() navpath.Path {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.path.Clone()
}

// Len returns the current path depth.
func (s *PathStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.path.Len()
}

// Subscribe registers fn to be called after every in-memory mutation.
// Subscribers are invoked in registration order, before persistence.
func (s *PathStore) Subscribe(fn Subscriber) {
	if fn == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subs = append(s.subs, fn)
}

// Close closes the underlying storage.
func (s *PathStore) Close() error {
	return s.storage.Close()
}

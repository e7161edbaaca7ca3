package observability

import (
	"context"
	"testing"
	"time"
)

type recordingHooks struct {
	loads   int
	mutates int
	saves   int
}

func (r *recordingHooks) OnLoad(ctx context.Context, entries int, restored bool, err error) {
	r.loads++
}

func (r *recordingHooks) OnMutate(ctx context.Context, entries int) {
	r.mutates++
}

func (r *recordingHooks) OnSave(ctx context.Context, bytes int, duration time.Duration, err error) {
	r.saves++
}

func TestDefaultIsNoop(t *testing.T) {
	SetStoreHooks(nil)

	h := Store()
	if h == nil {
		t.Fatal("Store() should never return nil")
	}

	// No-op hooks must not panic.
	ctx := context.Background()
	h.OnLoad(ctx, 0, false, nil)
	h.OnMutate(ctx, 3)
	h.OnSave(ctx, 42, time.Millisecond, nil)
}

func TestSetStoreHooks(t *testing.T) {
	rec := &recordingHooks{}
	SetStoreHooks(rec)
	defer SetStoreHooks(nil)

	ctx := context.Background()
	Store().OnLoad(ctx, 2, true, nil)
	Store().OnMutate(ctx, 3)
	Store().OnMutate(ctx, 0)
	Store().OnSave(ctx, 10, time.Millisecond, nil)

	if rec.loads != 1 || rec.mutates != 2 || rec.saves != 1 {
		t.Errorf("recorded loads=%d mutates=%d saves=%d", rec.loads, rec.mutates, rec.saves)
	}
}

func TestSetNilRestoresNoop(t *testing.T) {
	rec := &recordingHooks{}
	SetStoreHooks(rec)
	SetStoreHooks(nil)

	Store().OnMutate(context.Background(), 1)
	if rec.mutates != 0 {
		t.Error("nil registration should restore the no-op implementation")
	}
}

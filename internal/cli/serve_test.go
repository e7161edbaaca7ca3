package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/jfdoradotr/navstack/pkg/navpath"
	"github.com/jfdoradotr/navstack/pkg/navstore"
)

// newTestHandler builds a handler over an in-memory store.
func newTestHandler(t *testing.T) (*pathHandler, *navstore.PathStore) {
	t.Helper()
	store := navstore.New(context.Background(), navstore.NewMemoryStorage(),
		navstore.WithLogger(log.New(io.Discard)))
	t.Cleanup(func() { store.Close() })
	return newPathHandler(store), store
}

// do runs a request against the handler's router and decodes the body into out.
func do(t *testing.T, h *pathHandler, method, target string, body any, out any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal request body: %v", err)
		}
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, target, reader)
	rec := httptest.NewRecorder()
	h.routes().ServeHTTP(rec, req)

	if out != nil {
		if err := json.Unmarshal(rec.Body.Bytes(), out); err != nil {
			t.Fatalf("decode response %q: %v", rec.Body.String(), err)
		}
	}
	return rec
}

func TestGetPathEmpty(t *testing.T) {
	h, _ := newTestHandler(t)

	var resp pathResponse
	rec := do(t, h, http.MethodGet, "/path", nil, &resp)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if resp.Entries == nil || len(resp.Entries) != 0 {
		t.Errorf("entries = %v, want empty non-nil slice", resp.Entries)
	}
	if resp.Revision == "" {
		t.Error("revision should not be empty")
	}
	if !strings.Contains(rec.Body.String(), `"entries":[]`) {
		t.Errorf("body should carry an explicit empty array, got %q", rec.Body.String())
	}
}

func TestPutPathReplaces(t *testing.T) {
	h, store := newTestHandler(t)
	store.Push(context.Background(), navpath.String("old"))

	req := pathRequest{Entries: []navpath.Entry{navpath.Int(556), navpath.String("Hello")}}
	var resp pathResponse
	rec := do(t, h, http.MethodPut, "/path", req, &resp)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	want := navpath.Path{navpath.Int(556), navpath.String("Hello")}
	if !navpath.Path(resp.Entries).Equal(want) {
		t.Errorf("entries = %v, want %v", resp.Entries, want)
	}
	if !store.Path().Equal(want) {
		t.Errorf("store path = %v, want %v", store.Path(), want)
	}
}

func TestPushEntriesAppends(t *testing.T) {
	h, store := newTestHandler(t)
	store.Push(context.Background(), navpath.Int(1))

	req := pathRequest{Entries: []navpath.Entry{navpath.String("two")}}
	var resp pathResponse
	do(t, h, http.MethodPost, "/path/entries", req, &resp)

	want := navpath.Path{navpath.Int(1), navpath.String("two")}
	if !store.Path().Equal(want) {
		t.Errorf("store path = %v, want %v", store.Path(), want)
	}
}

func TestPushEntriesRejectsEmpty(t *testing.T) {
	h, _ := newTestHandler(t)

	var resp errorResponse
	rec := do(t, h, http.MethodPost, "/path/entries", pathRequest{}, &resp)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
	if resp.Error.Code == "" {
		t.Error("error response should carry a code")
	}
}

func TestPutPathRejectsMalformedBody(t *testing.T) {
	h, _ := newTestHandler(t)

	req := httptest.NewRequest(http.MethodPut, "/path", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()
	h.routes().ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

func TestDeletePathResets(t *testing.T) {
	h, store := newTestHandler(t)
	store.Push(context.Background(), navpath.Int(1), navpath.Int(2))

	var resp pathResponse
	do(t, h, http.MethodDelete, "/path", nil, &resp)

	if len(resp.Entries) != 0 {
		t.Errorf("entries = %v, want empty", resp.Entries)
	}
	if !store.Path().IsEmpty() {
		t.Errorf("store path = %v, want empty", store.Path())
	}
}

func TestMutationsBumpRevision(t *testing.T) {
	h, _ := newTestHandler(t)

	var before pathResponse
	do(t, h, http.MethodGet, "/path", nil, &before)

	var after pathResponse
	do(t, h, http.MethodPost, "/path/entries", pathRequest{Entries: []navpath.Entry{navpath.Int(9)}}, &after)

	if before.Revision == after.Revision {
		t.Error("mutation should produce a new revision")
	}

	var again pathResponse
	do(t, h, http.MethodGet, "/path", nil, &again)
	if again.Revision != after.Revision {
		t.Error("reads should not change the revision")
	}
}

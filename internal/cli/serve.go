package cli

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	naverrors "github.com/jfdoradotr/navstack/pkg/errors"
	"github.com/jfdoradotr/navstack/pkg/navpath"
	"github.com/jfdoradotr/navstack/pkg/navstore"
)

// =============================================================================
// Serve Command
// =============================================================================

// serveCommand creates the HTTP server command.
// The server is the boundary between the store and external rendering
// collaborators: they read the path to decide which screens to show and
// write it back in response to user gestures.
func (c *CLI) serveCommand() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the navigation path over HTTP",
		Long: `Serve the navigation path store over HTTP.

Routes:
  GET    /path          current path and revision
  PUT    /path          replace the path wholesale
  POST   /path/entries  push entries onto the tail
  DELETE /path          reset to root

Every mutation gets a fresh revision id, returned in responses. The
revision lives in memory only; the persisted blob stays a plain entry
array.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			store, err := c.newStore(ctx, cfg)
			if err != nil {
				return err
			}
			defer store.Close()

			handler := newPathHandler(store)
			srv := &http.Server{
				Addr:              addr,
				Handler:           handler.routes(),
				ReadHeaderTimeout: 5 * time.Second,
			}

			errc := make(chan error, 1)
			go func() {
				c.Logger.Info("serving navigation path", "addr", addr, "backend", cfg.Backend)
				errc <- srv.ListenAndServe()
			}()

			select {
			case <-ctx.Done():
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				_ = srv.Shutdown(shutdownCtx)
				return ctx.Err()
			case err := <-errc:
				if errors.Is(err, http.ErrServerClosed) {
					return nil
				}
				return err
			}
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	return cmd
}

// =============================================================================
// HTTP Handler
// =============================================================================

// pathHandler exposes a PathStore over HTTP.
type pathHandler struct {
	store *navstore.PathStore

	mu       sync.Mutex
	revision string
}

// newPathHandler creates a handler with an initial revision.
func newPathHandler(store *navstore.PathStore) *pathHandler {
	return &pathHandler{
		store:    store,
		revision: uuid.NewString(),
	}
}

// routes builds the chi router for the handler.
func (h *pathHandler) routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/path", h.getPath)
	r.Put("/path", h.putPath)
	r.Post("/path/entries", h.pushEntries)
	r.Delete("/path", h.resetPath)

	return r
}

// pathResponse is the JSON shape for path reads and mutation results.
type pathResponse struct {
	Entries  []navpath.Entry `json:"entries"`
	Revision string          `json:"revision"`
}

// pathRequest is the JSON shape for path writes.
type pathRequest struct {
	Entries []navpath.Entry `json:"entries"`
}

// errorResponse is the JSON shape for failures.
type errorResponse struct {
	Error errorBody `json:"error"`
}

type errorBody struct {
	Code    naverrors.Code `json:"code"`
	Message string         `json:"message"`
}

// bump replaces the revision and returns the new value.
func (h *pathHandler) bump() string {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.revision = uuid.NewString()
	return h.revision
}

// current returns the revision without changing it.
func (h *pathHandler) current() string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.revision
}

func (h *pathHandler) getPath(w http.ResponseWriter, r *http.Request) {
	h.respond(w, http.StatusOK, h.store.Path(), h.current())
}

func (h *pathHandler) putPath(w http.ResponseWriter, r *http.Request) {
	var req pathRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, naverrors.New(naverrors.ErrCodeDecode, "invalid path payload: %v", err))
		return
	}

	h.store.Set(r.Context(), navpath.Path(req.Entries))
	h.respond(w, http.StatusOK, h.store.Path(), h.bump())
}

func (h *pathHandler) pushEntries(w http.ResponseWriter, r *http.Request) {
	var req pathRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, naverrors.New(naverrors.ErrCodeDecode, "invalid entries payload: %v", err))
		return
	}
	if len(req.Entries) == 0 {
		h.respondError(w, http.StatusBadRequest, naverrors.New(naverrors.ErrCodeInvalidEntry, "no entries to push"))
		return
	}

	h.store.Push(r.Context(), req.Entries...)
	h.respond(w, http.StatusOK, h.store.Path(), h.bump())
}

func (h *pathHandler) resetPath(w http.ResponseWriter, r *http.Request) {
	h.store.Reset(r.Context())
	h.respond(w, http.StatusOK, h.store.Path(), h.bump())
}

// respond writes a pathResponse. Entries are never null in the payload.
func (h *pathHandler) respond(w http.ResponseWriter, status int, p navpath.Path, revision string) {
	entries := []navpath.Entry(p)
	if entries == nil {
		entries = []navpath.Entry{}
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(pathResponse{Entries: entries, Revision: revision})
}

// respondError writes a structured error payload.
func (h *pathHandler) respondError(w http.ResponseWriter, status int, err error) {
	resp := errorResponse{Error: errorBody{
		Code:    naverrors.GetCode(err),
		Message: naverrors.UserMessage(err),
	}}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(resp)
}

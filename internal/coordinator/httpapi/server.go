// Package httpapi exposes the coordinator over HTTP: a public home
// endpoint and an internal subtree gated on bearer tokens that the
// users service vouches for.
package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/joshradin/federeddit/internal/auth"
	"github.com/joshradin/federeddit/internal/logging"
)

const (
	appName    = "federeddit-coordinator"
	appVersion = "0.1.0"
)

type Server struct {
	address string
	guard   *auth.Guard
	logger  logging.Logger
}

func NewServer(address string, guard *auth.Guard, logger logging.Logger) *Server {
	return &Server{
		address: address,
		guard:   guard,
		logger:  logger.With("module", "http_server"),
	}
}

// Handler builds the route table. Exposed for tests.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handleHome)
	mux.Handle("GET /internal/ping", s.requireAuth(http.HandlerFunc(s.handlePing)))
	return mux
}

// Run serves until ctx is canceled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{Addr: s.address, Handler: s.Handler()}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

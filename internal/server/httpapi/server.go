// Package httpapi exposes the users service over HTTP: account
// creation, the Basic-credential login exchange, and bearer token
// validation.
package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/joshradin/federeddit/internal/logging"
	"github.com/joshradin/federeddit/internal/server/services"
)

type Server struct {
	address string
	users   *services.UserService
	logger  logging.Logger
}

func NewServer(address string, logger logging.Logger, us *services.UserService) *Server {
	return &Server{
		address: address,
		users:   us,
		logger:  logger.With("module", "http_server"),
	}
}

// Handler builds the route table. Exposed for tests.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handleValidateToken)
	mux.HandleFunc("POST /user/create", s.handleCreateUser)
	mux.HandleFunc("POST /user/login", s.handleLogin)
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

package httpapi

import (
	"net/http"

	"github.com/joshradin/federeddit/internal/auth"
)

type homeResponse struct {
	App     string `json:"app"`
	Version string `json:"version"`
}

// handleHome identifies the service. No authentication required.
func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, homeResponse{App: appName, Version: appVersion})
}

func (s *Server) handlePing(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// requireAuth gates next behind a bearer token check. The response to
// a rejected request carries no detail about why the token failed.
func (s *Server) requireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, err := auth.ParseAuthorizationHeader(r.Header.Get("Authorization"))
		if err != nil {
			s.logger.Info(r.Context(), "missing or malformed authorization header")
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		if !s.guard.Check(r.Context(), token) {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, r)
	})
}

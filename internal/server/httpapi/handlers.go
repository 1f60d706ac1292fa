package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/joshradin/federeddit/internal/auth"
	"github.com/joshradin/federeddit/internal/common"
)

type createUserRequest struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password"`
}

type userInfoResponse struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}

// handleValidateToken checks the presented bearer token and responds
// with its expiration timestamp. Any failure mode — unparseable,
// tampered, or expired — is a plain 401 to the caller.
func (s *Server) handleValidateToken(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	token, err := auth.ParseAuthorizationHeader(r.Header.Get("Authorization"))
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	expires, err := s.users.Authenticator().Verify(token)
	if err != nil {
		s.logger.Info(ctx, "token validation failed", "error", err)
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	writeJSON(w, http.StatusOK, expires)
}

func (s *Server) handleCreateUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req createUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if strings.Contains(req.Username, "@") {
		http.Error(w, "username can not contain @", http.StatusNotAcceptable)
		return
	}
	if req.Email == "" || req.Username == "" || req.Password == "" {
		http.Error(w, "email, username and password are required", http.StatusBadRequest)
		return
	}

	if _, err := s.users.Create(ctx, req.Email, req.Username, req.Password); err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			http.Error(w, "user already exists", http.StatusConflict)
			return
		}
		s.logger.Error(ctx, "user creation failed", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	s.logger.Info(ctx, "user registered", "username", req.Username)
	w.WriteHeader(http.StatusOK)
}

// handleLogin performs the Basic-credential login exchange. On success
// the issued bearer token travels back in the Authorization response
// header alongside a {username, email} body.
func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	header := r.Header.Get("Authorization")
	if header == "" {
		http.Error(w, "no authorization header", http.StatusNotAcceptable)
		return
	}
	if strings.HasPrefix(header, "Bearer ") {
		// Logging in with an already-held token is not supported.
		http.Error(w, "invalid authorization scheme", http.StatusNotAcceptable)
		return
	}

	identifier, password, err := auth.ParseBasicCredentials(header)
	if err != nil {
		http.Error(w, "invalid authorization scheme", http.StatusNotAcceptable)
		return
	}

	user, token, err := s.users.Login(ctx, identifier, password)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrorUnauthorized):
			http.Error(w, "invalid credentials", http.StatusUnauthorized)
		case errors.Is(err, auth.ErrInvalidPasswordHash):
			http.Error(w, "internal error", http.StatusInternalServerError)
		default:
			http.Error(w, "internal error", http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Authorization", token.String())
	writeJSON(w, http.StatusOK, userInfoResponse{Username: user.Username, Email: user.Email})
}

// Package services contains server-side business logic for the users
// service: account creation, credential verification, and bearer token
// issuance.
package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/joshradin/federeddit/internal/auth"
	"github.com/joshradin/federeddit/internal/common"
	"github.com/joshradin/federeddit/internal/logging"
	"github.com/joshradin/federeddit/internal/server/config"
	"github.com/joshradin/federeddit/internal/server/models"
	"github.com/joshradin/federeddit/internal/server/repositories/users"
)

// UserService handles user accounts and the login exchange. Login
// failures caused by an unknown identifier and by a wrong password are
// both reported as common.ErrorUnauthorized so callers cannot probe
// for account existence; the log retains the distinction.
type UserService struct {
	repo      users.Repository
	passwords *auth.PasswordHasher
	tokens    *auth.Authenticator
	tokenTTL  time.Duration
	logger    logging.Logger
}

// NewUserService constructs a UserService from the repository and
// server config. The signing secret comes from cfg, never a constant.
func NewUserService(repo users.Repository, cfg *config.Config, logger logging.Logger) *UserService {
	return &UserService{
		repo:      repo,
		passwords: auth.NewPasswordHasher(),
		tokens:    auth.NewAuthenticator([]byte(cfg.SecretKey)),
		tokenTTL:  cfg.TokenValidityDuration,
		logger:    logger.With("module", "user_service"),
	}
}

// Authenticator exposes the token authority for in-process validation.
func (s *UserService) Authenticator() *auth.Authenticator {
	return s.tokens
}

// Create hashes the password and stores a new user record.
func (s *UserService) Create(ctx context.Context, email, username, password string) (*models.User, error) {
	hash, err := s.passwords.Hash([]byte(password))
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	user := &models.User{
		ID:           uuid.NewString(),
		Email:        email,
		Username:     username,
		PasswordHash: hash,
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	s.logger.Info(ctx, "user created", "user_id", created.ID)
	return created, nil
}

// Login verifies the credentials and, on success, issues a bearer
// token for the user's email with the configured TTL.
func (s *UserService) Login(ctx context.Context, email, password string) (*models.User, auth.BearerToken, error) {
	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			s.logger.Info(ctx, "login attempt for unknown identifier")
			return nil, "", common.ErrorUnauthorized
		}
		s.logger.Error(ctx, "user lookup failed", "error", err)
		return nil, "", common.ErrorInternal
	}

	if user.PasswordHash == "" {
		s.logger.Warn(ctx, "user has no stored password hash", "user_id", user.ID)
		return nil, "", common.ErrorUnauthorized
	}

	if err := s.passwords.Verify([]byte(password), user.PasswordHash); err != nil {
		if errors.Is(err, auth.ErrInvalidPasswordHash) {
			// Storage integrity defect, not a user error.
			s.logger.Error(ctx, "stored password hash is malformed", "user_id", user.ID)
			return nil, "", err
		}
		s.logger.Info(ctx, "incorrect password", "user_id", user.ID)
		return nil, "", common.ErrorUnauthorized
	}

	token, err := s.tokens.Issue(user.Email, s.tokenTTL)
	if err != nil {
		s.logger.Error(ctx, "token issuance failed", "error", err)
		return nil, "", common.ErrorInternal
	}

	return user, token, nil
}

// Find returns the user with the given email.
func (s *UserService) Find(ctx context.Context, email string) (*models.User, error) {
	return s.repo.GetByEmail(ctx, email)
}

// Delete removes the user with the given email.
func (s *UserService) Delete(ctx context.Context, email string) error {
	return s.repo.Delete(ctx, email)
}

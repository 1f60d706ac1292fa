// Package client implements the HTTP client of the users service. It
// covers the login exchange, account creation, and remote bearer-token
// validation; the latter satisfies auth.TokenValidator, so a guard in
// another process can defer to the users service as its authority.
package client

import (
	"context"
	"errors"
	"time"

	"github.com/joshradin/federeddit/internal/auth"
)

var (
	ErrUnauthorized  = errors.New("unauthorized")
	ErrAlreadyExists = errors.New("user already exists")
	ErrRejected      = errors.New("request rejected")
)

// AuthenticatedUser is the outcome of a successful login: the public
// user info plus the bearer token to present on subsequent requests.
type AuthenticatedUser struct {
	Username string
	Email    string
	Bearer   auth.BearerToken
}

// Client is the users-service API surface used by other components.
type Client interface {
	// LogIn exchanges Basic credentials for a bearer token.
	LogIn(ctx context.Context, identifier string, password []byte) (*AuthenticatedUser, error)

	// CreateUser registers a new account.
	CreateUser(ctx context.Context, email, username string, password []byte) error

	// ValidateToken asks the authority whether token is currently valid
	// and returns its expiration time.
	ValidateToken(ctx context.Context, token auth.BearerToken) (time.Time, error)
}

package auth

import (
	"errors"
	"fmt"
	"time"
)

// Sentinel errors for the authentication core. Match with errors.Is.
var (
	// ErrTokenParse: the token string is not structurally decodable.
	ErrTokenParse = errors.New("token could not be parsed")

	// ErrVerification: the signature does not match the payload
	// (tampering, wrong key, corruption in transit).
	ErrVerification = errors.New("token could not be verified")

	// Credential errors. Handlers flatten all of these into one generic
	// "invalid credentials" response so that account existence is never
	// revealed; logs keep the distinction.
	ErrNoUserFound       = errors.New("no user found")
	ErrNoPasswordFound   = errors.New("no password found")
	ErrIncorrectPassword = errors.New("incorrect password")

	// ErrInvalidPasswordHash: a stored hash record is not parseable.
	// This is a storage-integrity defect, not a user error, and maps to
	// an internal-server-error class response.
	ErrInvalidPasswordHash = errors.New("invalid password hash")

	// ErrInvalidAuthHeader: the Authorization header is missing or not
	// in a supported scheme. A client error.
	ErrInvalidAuthHeader = errors.New("invalid authorization header")

	// ErrAuthorityUnavailable: a remote token authority could not be
	// reached (timeout, transport failure). The guard treats it as
	// unauthorized but logs it apart from genuine bad tokens.
	ErrAuthorityUnavailable = errors.New("token authority unavailable")
)

// TokenExpiredError reports a token whose signature checked out but
// whose validity window has elapsed. Non-retryable; the client has to
// log in again.
type TokenExpiredError struct {
	At time.Time
}

func (e *TokenExpiredError) Error() string {
	return fmt.Sprintf("token expired at %s", e.At.Format(time.RFC3339))
}

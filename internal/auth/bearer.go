// Package auth implements the token-based authentication core: opaque
// bearer tokens, argon2id password hashing, signed token issuance and
// verification, and the shared validation cache that gates protected
// routes.
package auth

import (
	"encoding/base64"
	"strings"
)

const (
	bearerScheme = "Bearer "
	basicScheme  = "Basic "
)

// BearerToken is an opaque credential: it grants access to whoever
// presents it. The string base gives byte-for-byte equality, so a
// BearerToken can be used directly as a map key. Tokens are created
// once at issuance and never mutated.
type BearerToken string

// NewBearerToken wraps raw token bytes.
func NewBearerToken(b []byte) BearerToken { return BearerToken(b) }

// Bytes returns the raw token content.
func (t BearerToken) Bytes() []byte { return []byte(t) }

// String renders the token in Authorization-header form: "Bearer <content>".
func (t BearerToken) String() string { return bearerScheme + string(t) }

// ParseAuthorizationHeader extracts a bearer token from an Authorization
// header value. The literal "Bearer " prefix is required; anything else,
// including an empty remainder, is ErrTokenParse.
func ParseAuthorizationHeader(value string) (BearerToken, error) {
	raw, ok := strings.CutPrefix(value, bearerScheme)
	if !ok || raw == "" {
		return "", ErrTokenParse
	}
	return BearerToken(raw), nil
}

// ParseBasicCredentials decodes a "Basic <base64(identifier:password)>"
// header value. It is used once, during the login exchange; bearer
// tokens take over afterwards.
func ParseBasicCredentials(value string) (identifier, password string, err error) {
	raw, ok := strings.CutPrefix(value, basicScheme)
	if !ok {
		return "", "", ErrInvalidAuthHeader
	}
	decoded, err := base64.StdEncoding.DecodeString(raw)
	if err != nil {
		return "", "", ErrInvalidAuthHeader
	}
	identifier, password, ok = strings.Cut(string(decoded), ":")
	if !ok {
		return "", "", ErrInvalidAuthHeader
	}
	return identifier, password, nil
}

package auth

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is the signed token payload: the subject identifier plus the
// registered expiration claim.
type Claims struct {
	jwt.RegisteredClaims
}

// Authenticator owns the symmetric signing key and turns subjects into
// signed bearer tokens and back. Tokens are HMAC-SHA384 JWTs. It also
// implements TokenValidator, so a guard running in the same process as
// the authority needs no network hop.
type Authenticator struct {
	key []byte
}

// NewAuthenticator constructs an Authenticator around the given signing
// key. The key arrives via configuration; it is never a compile-time
// constant.
func NewAuthenticator(key []byte) *Authenticator {
	return &Authenticator{key: key}
}

// Issue signs a {subject, now+ttl} payload into a bearer token.
func (a *Authenticator) Issue(subject string, ttl time.Duration) (BearerToken, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS384, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
		},
	})
	signed, err := token.SignedString(a.key)
	if err != nil {
		return "", err
	}
	return BearerToken(signed), nil
}

// Verify checks the token signature and, only once the signature holds,
// its expiration. No claim is trusted before the signature check, so a
// forged token can never be treated as valid even transiently. Returns
// the token's expiration time on success.
//
// Error mapping: undecodable input is ErrTokenParse, a signature
// mismatch is ErrVerification, and an elapsed validity window is a
// *TokenExpiredError carrying the expiration instant.
func (a *Authenticator) Verify(token BearerToken) (time.Time, error) {
	claims := &Claims{}
	_, err := jwt.ParseWithClaims(string(token), claims,
		func(t *jwt.Token) (any, error) { return a.key, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS384.Alg()}),
	)
	switch {
	case err == nil:
	case errors.Is(err, jwt.ErrTokenMalformed):
		return time.Time{}, ErrTokenParse
	case errors.Is(err, jwt.ErrTokenExpired):
		// The signature already checked out; report when the window closed.
		if claims.ExpiresAt == nil {
			return time.Time{}, ErrTokenParse
		}
		return time.Time{}, &TokenExpiredError{At: claims.ExpiresAt.Time}
	default:
		return time.Time{}, ErrVerification
	}

	if claims.ExpiresAt == nil {
		return time.Time{}, ErrVerification
	}
	return claims.ExpiresAt.Time, nil
}

// ValidateToken implements TokenValidator in-process.
func (a *Authenticator) ValidateToken(_ context.Context, token BearerToken) (time.Time, error) {
	return a.Verify(token)
}

var _ TokenValidator = (*Authenticator)(nil)

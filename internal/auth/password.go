package auth

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"
)

// argon2id cost parameters. Hash records are self-describing, so these
// can be raised later without invalidating records already in storage.
const (
	argonTime    = 1
	argonMemory  = 64 * 1024
	argonThreads = 4
	argonKeyLen  = 32
	saltLen      = 16
)

// PasswordHasher produces and verifies salted argon2id password hashes
// in the standard self-describing record form:
//
//	$argon2id$v=19$m=65536,t=1,p=4$<b64 salt>$<b64 digest>
//
// Every Hash call draws a fresh salt from crypto/rand. There is
// deliberately no way to pin a shared salt across credentials.
type PasswordHasher struct{}

func NewPasswordHasher() *PasswordHasher { return &PasswordHasher{} }

// Hash hashes password with a fresh random salt and returns the
// canonical record string.
func (h *PasswordHasher) Hash(password []byte) (string, error) {
	salt := make([]byte, saltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("salt generation: %w", err)
	}
	digest := argon2.IDKey(password, salt, argonTime, argonMemory, argonThreads, argonKeyLen)

	record := fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version, argonMemory, argonTime, argonThreads,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(digest))
	return record, nil
}

// Verify recomputes the digest of password with the salt and cost
// parameters embedded in record and compares in constant time.
// Returns nil on match, ErrIncorrectPassword on mismatch, and
// ErrInvalidPasswordHash when the record is not parseable.
func (h *PasswordHasher) Verify(password []byte, record string) error {
	salt, digest, params, err := parseHashRecord(record)
	if err != nil {
		return err
	}
	candidate := argon2.IDKey(password, salt, params.time, params.memory, params.threads, uint32(len(digest)))
	if subtle.ConstantTimeCompare(candidate, digest) != 1 {
		return ErrIncorrectPassword
	}
	return nil
}

type hashParams struct {
	memory  uint32
	time    uint32
	threads uint8
}

func parseHashRecord(record string) (salt, digest []byte, params hashParams, err error) {
	parts := strings.Split(record, "$")
	if len(parts) != 6 || parts[0] != "" || parts[1] != "argon2id" {
		return nil, nil, params, fmt.Errorf("%w: bad structure", ErrInvalidPasswordHash)
	}

	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil || version != argon2.Version {
		return nil, nil, params, fmt.Errorf("%w: unsupported version", ErrInvalidPasswordHash)
	}
	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &params.memory, &params.time, &params.threads); err != nil {
		return nil, nil, params, fmt.Errorf("%w: bad cost parameters", ErrInvalidPasswordHash)
	}
	if params.memory == 0 || params.time == 0 || params.threads == 0 {
		return nil, nil, params, fmt.Errorf("%w: zero cost parameter", ErrInvalidPasswordHash)
	}

	salt, err = base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return nil, nil, params, fmt.Errorf("%w: bad salt encoding", ErrInvalidPasswordHash)
	}
	digest, err = base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil || len(digest) == 0 {
		return nil, nil, params, fmt.Errorf("%w: bad digest encoding", ErrInvalidPasswordHash)
	}
	return salt, digest, params, nil
}

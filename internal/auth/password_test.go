package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordHasher_RoundTrip(t *testing.T) {
	t.Parallel()

	h := NewPasswordHasher()

	record, err := h.Hash([]byte("correct horse battery staple"))
	require.NoError(t, err)

	require.NoError(t, h.Verify([]byte("correct horse battery staple"), record))

	err = h.Verify([]byte("correct horse battery stapl"), record)
	require.ErrorIs(t, err, ErrIncorrectPassword)
}

func TestPasswordHasher_RecordIsSelfDescribing(t *testing.T) {
	t.Parallel()

	h := NewPasswordHasher()
	record, err := h.Hash([]byte("pw"))
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(record, "$argon2id$v=19$m=65536,t=1,p=4$"), "record: %s", record)
	assert.Len(t, strings.Split(record, "$"), 6)
}

func TestPasswordHasher_SaltUniqueness(t *testing.T) {
	t.Parallel()

	h := NewPasswordHasher()

	r1, err := h.Hash([]byte("same password"))
	require.NoError(t, err)
	r2, err := h.Hash([]byte("same password"))
	require.NoError(t, err)

	// Independent hashes of the same password must differ in both salt
	// and digest.
	require.NotEqual(t, r1, r2)
	assert.NotEqual(t, strings.Split(r1, "$")[4], strings.Split(r2, "$")[4], "salts must differ")
	assert.NotEqual(t, strings.Split(r1, "$")[5], strings.Split(r2, "$")[5], "digests must differ")

	// Both still verify.
	require.NoError(t, h.Verify([]byte("same password"), r1))
	require.NoError(t, h.Verify([]byte("same password"), r2))
}

func TestPasswordHasher_VerifyMalformedRecord(t *testing.T) {
	t.Parallel()

	h := NewPasswordHasher()

	tests := []struct {
		name   string
		record string
	}{
		{name: "empty", record: ""},
		{name: "garbage", record: "not-a-hash"},
		{name: "wrong algorithm", record: "$bcrypt$v=19$m=65536,t=1,p=4$c2FsdA$ZGlnZXN0"},
		{name: "wrong version", record: "$argon2id$v=18$m=65536,t=1,p=4$c2FsdA$ZGlnZXN0"},
		{name: "bad params", record: "$argon2id$v=19$m=banana$c2FsdA$ZGlnZXN0"},
		{name: "zero params", record: "$argon2id$v=19$m=0,t=0,p=0$c2FsdA$ZGlnZXN0"},
		{name: "bad salt b64", record: "$argon2id$v=19$m=65536,t=1,p=4$%%$ZGlnZXN0"},
		{name: "bad digest b64", record: "$argon2id$v=19$m=65536,t=1,p=4$c2FsdA$%%"},
		{name: "truncated", record: "$argon2id$v=19$m=65536,t=1,p=4$c2FsdA"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := h.Verify([]byte("pw"), tt.record)
			require.ErrorIs(t, err, ErrInvalidPasswordHash)
		})
	}
}

func TestPasswordHasher_VerifyHonorsEmbeddedParams(t *testing.T) {
	t.Parallel()

	h := NewPasswordHasher()
	record, err := h.Hash([]byte("pw"))
	require.NoError(t, err)

	// Bump the time cost in the record; the recomputed digest must no
	// longer match, proving the embedded parameters are what verification
	// actually uses.
	tampered := strings.Replace(record, "t=1", "t=2", 1)
	require.NotEqual(t, record, tampered)
	require.ErrorIs(t, h.Verify([]byte("pw"), tampered), ErrIncorrectPassword)
}

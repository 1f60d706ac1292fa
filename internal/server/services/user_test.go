package services

import (
	"context"
	"testing"
	"time"

	"github.com/joshradin/federeddit/internal/auth"
	"github.com/joshradin/federeddit/internal/common"
	"github.com/joshradin/federeddit/internal/logging"
	"github.com/joshradin/federeddit/internal/server/config"
	"github.com/joshradin/federeddit/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Info(context.Context, string, ...any)  {}
func (nopLogger) Warn(context.Context, string, ...any)  {}
func (nopLogger) Error(context.Context, string, ...any) {}
func (nopLogger) With(...any) logging.Logger            { return nopLogger{} }

// fakeRepo is an in-memory users.Repository.
type fakeRepo struct {
	users map[string]*models.User
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{users: make(map[string]*models.User)}
}

func (f *fakeRepo) Create(_ context.Context, user *models.User) (*models.User, error) {
	if _, ok := f.users[user.Email]; ok {
		return nil, common.ErrorAlreadyExists
	}
	f.users[user.Email] = user
	return user, nil
}

func (f *fakeRepo) GetByEmail(_ context.Context, email string) (*models.User, error) {
	user, ok := f.users[email]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return user, nil
}

func (f *fakeRepo) Delete(_ context.Context, email string) error {
	if _, ok := f.users[email]; !ok {
		return common.ErrorNotFound
	}
	delete(f.users, email)
	return nil
}

func newService(repo *fakeRepo) *UserService {
	cfg := &config.Config{
		SecretKey:             "test-secret",
		TokenValidityDuration: 720 * time.Hour,
	}
	return NewUserService(repo, cfg, nopLogger{})
}

func TestUserService_CreateAndLogin(t *testing.T) {
	t.Parallel()

	repo := newFakeRepo()
	svc := newService(repo)
	ctx := context.Background()

	created, err := svc.Create(ctx, "alice@example.com", "alice", "s3cret")
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)
	assert.NotEqual(t, "s3cret", created.PasswordHash, "password must be stored hashed")

	user, token, err := svc.Login(ctx, "alice@example.com", "s3cret")
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)

	// The issued token verifies against the service's own authority and
	// expires roughly TTL from now.
	expires, err := svc.Authenticator().Verify(token)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(720*time.Hour), expires, 5*time.Second)
}

func TestUserService_Login_EnumerationResistance(t *testing.T) {
	t.Parallel()

	repo := newFakeRepo()
	svc := newService(repo)
	ctx := context.Background()

	_, err := svc.Create(ctx, "alice@example.com", "alice", "s3cret")
	require.NoError(t, err)

	// Unknown identifier and wrong password must be indistinguishable to
	// the caller.
	_, _, errUnknown := svc.Login(ctx, "nobody@example.com", "whatever")
	_, _, errWrongPass := svc.Login(ctx, "alice@example.com", "not-the-password")

	require.ErrorIs(t, errUnknown, common.ErrorUnauthorized)
	require.ErrorIs(t, errWrongPass, common.ErrorUnauthorized)
	assert.Equal(t, errUnknown.Error(), errWrongPass.Error())
}

func TestUserService_Login_MalformedStoredHash(t *testing.T) {
	t.Parallel()

	repo := newFakeRepo()
	svc := newService(repo)
	ctx := context.Background()

	repo.users["broken@example.com"] = &models.User{
		ID:           "u1",
		Email:        "broken@example.com",
		Username:     "broken",
		PasswordHash: "not-a-hash-record",
	}

	_, _, err := svc.Login(ctx, "broken@example.com", "anything")
	require.ErrorIs(t, err, auth.ErrInvalidPasswordHash)
	require.NotErrorIs(t, err, common.ErrorUnauthorized)
}

func TestUserService_Login_MissingPasswordHash(t *testing.T) {
	t.Parallel()

	repo := newFakeRepo()
	svc := newService(repo)
	ctx := context.Background()

	repo.users["empty@example.com"] = &models.User{
		ID:       "u2",
		Email:    "empty@example.com",
		Username: "empty",
	}

	_, _, err := svc.Login(ctx, "empty@example.com", "anything")
	require.ErrorIs(t, err, common.ErrorUnauthorized)
}

func TestUserService_Create_Duplicate(t *testing.T) {
	t.Parallel()

	repo := newFakeRepo()
	svc := newService(repo)
	ctx := context.Background()

	_, err := svc.Create(ctx, "bob@example.com", "bob", "pw")
	require.NoError(t, err)

	_, err = svc.Create(ctx, "bob@example.com", "bobby", "pw")
	require.ErrorIs(t, err, common.ErrorAlreadyExists)
}

func TestUserService_FindAndDelete(t *testing.T) {
	t.Parallel()

	repo := newFakeRepo()
	svc := newService(repo)
	ctx := context.Background()

	_, err := svc.Create(ctx, "carol@example.com", "carol", "pw")
	require.NoError(t, err)

	found, err := svc.Find(ctx, "carol@example.com")
	require.NoError(t, err)
	assert.Equal(t, "carol", found.Username)

	require.NoError(t, svc.Delete(ctx, "carol@example.com"))
	_, err = svc.Find(ctx, "carol@example.com")
	require.ErrorIs(t, err, common.ErrorNotFound)
}

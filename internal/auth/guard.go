package auth

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/joshradin/federeddit/internal/logging"
)

// TokenCache is a shared map of already-validated tokens to their
// expiration times. Entries exist only for tokens the validator
// accepted at least once; stale entries are evicted lazily on lookup.
// The cache is a pure optimization, never a source of rejection: a
// miss always falls through to the validator.
//
// Safe for concurrent use. Each entry is independent, so a single
// reader/writer lock over the map is sufficient.
type TokenCache struct {
	mu     sync.RWMutex
	tokens map[BearerToken]time.Time
}

func NewTokenCache() *TokenCache {
	return &TokenCache{tokens: make(map[BearerToken]time.Time)}
}

func (c *TokenCache) get(token BearerToken) (time.Time, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	expires, ok := c.tokens[token]
	return expires, ok
}

func (c *TokenCache) put(token BearerToken, expires time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.tokens[token] = expires
}

func (c *TokenCache) remove(token BearerToken) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.tokens, token)
}

// Len reports the number of cached entries.
func (c *TokenCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.tokens)
}

// Guard makes the binary authorization decision for incoming requests.
// Several Guards may share one TokenCache; the cache is passed in
// explicitly so its lifetime and locking discipline are visible at the
// construction site.
type Guard struct {
	cache     *TokenCache
	validator TokenValidator
	logger    logging.Logger
	now       func() time.Time
}

func NewGuard(cache *TokenCache, validator TokenValidator, logger logging.Logger) *Guard {
	return &Guard{
		cache:     cache,
		validator: validator,
		logger:    logger.With("module", "auth_guard"),
		now:       time.Now,
	}
}

// Check reports whether a request bearing token is authorized.
//
// A cache hit with a future expiration authorizes without consulting
// the validator: the signature was already verified once, and it is
// trusted for the remainder of the token's stated window. A stale hit
// is evicted and handled as a miss. On a miss the validator decides,
// and only successful validations are memoized.
//
// Two concurrent checks of the same token may both reach the validator
// and both insert the same entry; validation is idempotent, so the
// last writer wins. An aborted validation (ctx canceled) leaves the
// cache untouched.
func (g *Guard) Check(ctx context.Context, token BearerToken) bool {
	if expires, ok := g.cache.get(token); ok {
		if g.now().Before(expires) {
			return true
		}
		g.cache.remove(token)
	}

	expires, err := g.validator.ValidateToken(ctx, token)
	if err != nil {
		if errors.Is(err, ErrAuthorityUnavailable) {
			g.logger.Error(ctx, "token authority unreachable", "error", err)
		} else {
			g.logger.Info(ctx, "token rejected", "error", err)
		}
		return false
	}

	g.cache.put(token, expires)
	return true
}

package auth

import (
	"context"
	"time"
)

// TokenValidator is the capability the Guard depends on: confirm a
// bearer token and report its expiration time. The coordinator and the
// users service are separate deployable units, so implementations may
// validate locally (*Authenticator) or forward to a remote authority
// over the network (client.HTTPClient). Remote implementations must
// bound their calls with a timeout and honor ctx cancellation.
type TokenValidator interface {
	ValidateToken(ctx context.Context, token BearerToken) (time.Time, error)
}

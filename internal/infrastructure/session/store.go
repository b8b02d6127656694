package session

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Store maps opaque session tokens to user ids. Tokens are single-purpose:
// login/registration mints a fresh one, logout deletes it. A token that the
// store does not know is simply an anonymous request, never an error.
type Store interface {
	// Create mints a new token bound to userID, valid for ttl.
	Create(ctx context.Context, userID uuid.UUID, ttl time.Duration) (string, error)
	// Get resolves a token to the bound user id. The second return is false
	// when the token is unknown or expired.
	Get(ctx context.Context, token string) (uuid.UUID, bool, error)
	Delete(ctx context.Context, token string) error
}

func newToken() string {
	return uuid.NewString()
}

package ports

import (
	"context"
	"time"

	"github.com/mockleague/league-api/internal/core/domain"
)

// SessionStore is the key-value store backing server-side sessions. Entries
// expire after the TTL passed to Set; expiry is fixed at establishment and
// never silently extended.
type SessionStore interface {
	// Get returns the session for the given id, or domain.ErrNoSession when
	// it does not exist or has expired.
	Get(ctx context.Context, sid string) (*domain.Session, error)

	// Set stores the session under sid with the given TTL.
	Set(ctx context.Context, sid string, sess *domain.Session, ttl time.Duration) error

	// Delete removes the session. Deleting an absent session is not an error.
	Delete(ctx context.Context, sid string) error
}

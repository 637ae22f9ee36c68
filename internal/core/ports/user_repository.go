package ports

import (
	"context"

	"github.com/mockleague/league-api/internal/core/domain"
)

// UserRepository defines persistence operations for user accounts.
type UserRepository interface {
	// Create inserts a new user and returns it with the generated id.
	// Returns domain.ErrUserExists when the email is already registered.
	Create(ctx context.Context, user *domain.User) (*domain.User, error)

	// FindByEmail retrieves a user by normalised email.
	FindByEmail(ctx context.Context, email string) (*domain.User, error)

	// FindByID retrieves a user by id. Used by the token guard to cross-check
	// the stored access-key against the one embedded in the bearer token.
	FindByID(ctx context.Context, id string) (*domain.User, error)

	// SetAccessToken stores a freshly rotated access-key for the user.
	SetAccessToken(ctx context.Context, id, accessToken string) error

	// UpdateRole atomically applies a role toggle: the update only matches
	// while the user still holds fromRole and fromAccessToken, so two
	// concurrent toggles cannot both win. Returns the updated user, or
	// domain.ErrConcurrentUpdate when the compare-and-swap missed.
	UpdateRole(ctx context.Context, email string, fromRole domain.Role, fromAccessToken string, toRole domain.Role, newAccessToken string) (*domain.User, error)
}

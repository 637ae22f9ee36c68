package ports

import (
	"context"

	"github.com/mockleague/league-api/internal/core/domain"
)

// TeamRepository defines persistence operations for teams.
type TeamRepository interface {
	// Create inserts a new team. Returns domain.ErrTeamExists when a team
	// with the same acronym already exists.
	Create(ctx context.Context, team *domain.Team) (*domain.Team, error)
	FindByID(ctx context.Context, id string) (*domain.Team, error)
	// Update persists the mutable fields of the team.
	Update(ctx context.Context, team *domain.Team) (*domain.Team, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]domain.Team, error)
}

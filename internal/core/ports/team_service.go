package ports

import (
	"context"

	"github.com/mockleague/league-api/internal/core/domain"
)

// CreateTeamInput carries the data to create a team.
type CreateTeamInput struct {
	Name    string
	Acronym string
}

// UpdateTeamInput carries a partial team update; empty fields are left
// untouched.
type UpdateTeamInput struct {
	Name    string
	Acronym string
}

// TeamService defines use-case operations for teams.
type TeamService interface {
	Create(ctx context.Context, in CreateTeamInput) (*domain.Team, error)
	Update(ctx context.Context, id string, in UpdateTeamInput) (*domain.Team, error)
	// Delete removes a team; fails with domain.ErrTeamHasFixtures when any
	// fixture still references it.
	Delete(ctx context.Context, id string) (*domain.Team, error)
	List(ctx context.Context) ([]domain.Team, error)
}

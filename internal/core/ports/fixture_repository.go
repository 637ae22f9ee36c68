package ports

import (
	"context"

	"github.com/mockleague/league-api/internal/core/domain"
)

// FixtureRepository defines persistence operations for fixtures.
type FixtureRepository interface {
	Create(ctx context.Context, fixture *domain.Fixture) (*domain.Fixture, error)
	FindByID(ctx context.Context, id string) (*domain.Fixture, error)
	// FindByTeams retrieves the fixture scheduled between the given pair of
	// teams, if any.
	FindByTeams(ctx context.Context, homeTeam, awayTeam string) (*domain.Fixture, error)
	// FindByKey retrieves a fixture by its opaque link key.
	FindByKey(ctx context.Context, key string) (*domain.Fixture, error)
	Update(ctx context.Context, fixture *domain.Fixture) (*domain.Fixture, error)
	Delete(ctx context.Context, id string) error
	// List returns all fixtures, optionally filtered by status.
	List(ctx context.Context, status domain.FixtureStatus) ([]domain.Fixture, error)
	// CountByTeam counts fixtures where the team plays home or away. Used to
	// block deleting teams that still have fixtures.
	CountByTeam(ctx context.Context, teamID string) (int64, error)
}

package ports

import (
	"context"
	"time"

	"github.com/mockleague/league-api/internal/core/domain"
)

// CreateFixtureInput carries the data to schedule a fixture.
type CreateFixtureInput struct {
	HomeTeam string
	AwayTeam string
	GameWeek int
	MatchDay time.Time
}

// UpdateFixtureInput carries a partial fixture update; zero-value fields are
// left untouched.
type UpdateFixtureInput struct {
	Status   string
	GameWeek int
	MatchDay time.Time
}

// FixtureService defines use-case operations for fixtures.
type FixtureService interface {
	Create(ctx context.Context, in CreateFixtureInput) (*domain.Fixture, error)
	Update(ctx context.Context, id string, in UpdateFixtureInput) (*domain.Fixture, error)
	// Delete removes a fixture; fails with domain.ErrFixturePassed when the
	// match day is already in the past.
	Delete(ctx context.Context, id string) (*domain.Fixture, error)
	List(ctx context.Context, status string) ([]domain.Fixture, error)
	// GetByKey resolves a shareable link key to its fixture.
	GetByKey(ctx context.Context, key string) (*domain.Fixture, error)
	// GenerateLink rotates the fixture's opaque key and returns the fixture
	// together with the new shareable link.
	GenerateLink(ctx context.Context, id string) (*domain.Fixture, string, error)
}

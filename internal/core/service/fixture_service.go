package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/mockleague/league-api/internal/core/domain"
	"github.com/mockleague/league-api/internal/core/ports"
)

// FixtureService implements fixture CRUD and link generation.
type FixtureService struct {
	fixtures ports.FixtureRepository
	teams    ports.TeamRepository
	baseURL  string
	log      zerolog.Logger
}

func NewFixtureService(fixtures ports.FixtureRepository, teams ports.TeamRepository, baseURL string, log zerolog.Logger) *FixtureService {
	return &FixtureService{fixtures: fixtures, teams: teams, baseURL: baseURL, log: log}
}

// Create schedules a fixture between two teams. Only one fixture may exist
// per (home, away) pair; both teams must exist.
func (s *FixtureService) Create(ctx context.Context, in ports.CreateFixtureInput) (*domain.Fixture, error) {
	if _, err := s.teams.FindByID(ctx, in.HomeTeam); err != nil {
		return nil, err
	}
	if _, err := s.teams.FindByID(ctx, in.AwayTeam); err != nil {
		return nil, err
	}

	if _, err := s.fixtures.FindByTeams(ctx, in.HomeTeam, in.AwayTeam); err == nil {
		return nil, domain.ErrFixtureExists
	} else if !errors.Is(err, domain.ErrFixtureNotFound) {
		return nil, fmt.Errorf("create fixture: lookup pair: %w", err)
	}

	now := time.Now().UTC()
	fixture := &domain.Fixture{
		Key:      uuid.NewString(),
		HomeTeam: in.HomeTeam,
		AwayTeam: in.AwayTeam,
		Status:   domain.FixturePending,
		Schedule: domain.Schedule{
			GameWeek: in.GameWeek,
			MatchDay: in.MatchDay,
		},
		CreatedAt: now,
		UpdatedAt: now,
	}

	created, err := s.fixtures.Create(ctx, fixture)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("fixture_id", created.ID).Msg("fixture created")
	return created, nil
}

// Update applies a partial update. A status outside the closed enumeration
// is rejected before anything is written.
func (s *FixtureService) Update(ctx context.Context, id string, in ports.UpdateFixtureInput) (*domain.Fixture, error) {
	fixture, err := s.fixtures.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Status != "" {
		status, ok := domain.ParseFixtureStatus(in.Status)
		if !ok {
			return nil, domain.ErrInvalidStatus
		}
		fixture.Status = status
	}
	if in.GameWeek > 0 {
		fixture.Schedule.GameWeek = in.GameWeek
	}
	if !in.MatchDay.IsZero() {
		fixture.Schedule.MatchDay = in.MatchDay
	}
	fixture.UpdatedAt = time.Now().UTC()

	return s.fixtures.Update(ctx, fixture)
}

// Delete removes a fixture unless its match day has already passed.
func (s *FixtureService) Delete(ctx context.Context, id string) (*domain.Fixture, error) {
	fixture, err := s.fixtures.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !fixture.Schedule.MatchDay.IsZero() && fixture.Schedule.MatchDay.Before(time.Now().UTC()) {
		return nil, domain.ErrFixturePassed
	}

	if err := s.fixtures.Delete(ctx, id); err != nil {
		return nil, err
	}

	s.log.Info().Str("fixture_id", id).Msg("fixture deleted")
	return fixture, nil
}

// List returns fixtures, optionally filtered by status. An unknown status
// filter is ignored rather than rejected, matching the read path's lenient
// behaviour.
func (s *FixtureService) List(ctx context.Context, status string) ([]domain.Fixture, error) {
	var filter domain.FixtureStatus
	if parsed, ok := domain.ParseFixtureStatus(status); ok {
		filter = parsed
	}
	return s.fixtures.List(ctx, filter)
}

// GetByKey resolves a shareable link key to its fixture.
func (s *FixtureService) GetByKey(ctx context.Context, key string) (*domain.Fixture, error) {
	return s.fixtures.FindByKey(ctx, key)
}

// GenerateLink rotates the fixture's key and returns the new shareable link.
// Old links stop resolving once the key changes.
func (s *FixtureService) GenerateLink(ctx context.Context, id string) (*domain.Fixture, string, error) {
	fixture, err := s.fixtures.FindByID(ctx, id)
	if err != nil {
		return nil, "", err
	}

	fixture.Key = uuid.NewString()
	fixture.UpdatedAt = time.Now().UTC()

	updated, err := s.fixtures.Update(ctx, fixture)
	if err != nil {
		return nil, "", err
	}

	link := fmt.Sprintf("%s/api/v1/fixtures?key=%s", s.baseURL, updated.Key)
	return updated, link, nil
}

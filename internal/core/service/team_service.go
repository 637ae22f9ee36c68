package service

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/mockleague/league-api/internal/core/domain"
	"github.com/mockleague/league-api/internal/core/ports"
)

// TeamService implements team CRUD.
type TeamService struct {
	teams    ports.TeamRepository
	fixtures ports.FixtureRepository
	log      zerolog.Logger
}

func NewTeamService(teams ports.TeamRepository, fixtures ports.FixtureRepository, log zerolog.Logger) *TeamService {
	return &TeamService{teams: teams, fixtures: fixtures, log: log}
}

// Create registers a new team. Acronyms are stored uppercased; uniqueness is
// enforced by the repository.
func (s *TeamService) Create(ctx context.Context, in ports.CreateTeamInput) (*domain.Team, error) {
	now := time.Now().UTC()
	team := &domain.Team{
		Name:      strings.TrimSpace(in.Name),
		Acronym:   strings.ToUpper(strings.TrimSpace(in.Acronym)),
		CreatedAt: now,
		UpdatedAt: now,
	}

	created, err := s.teams.Create(ctx, team)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("team_id", created.ID).Str("acronym", created.Acronym).Msg("team created")
	return created, nil
}

// Update applies a partial update to an existing team.
func (s *TeamService) Update(ctx context.Context, id string, in ports.UpdateTeamInput) (*domain.Team, error) {
	team, err := s.teams.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Name != "" {
		team.Name = strings.TrimSpace(in.Name)
	}
	if in.Acronym != "" {
		team.Acronym = strings.ToUpper(strings.TrimSpace(in.Acronym))
	}
	team.UpdatedAt = time.Now().UTC()

	return s.teams.Update(ctx, team)
}

// Delete removes a team unless any fixture still references it.
func (s *TeamService) Delete(ctx context.Context, id string) (*domain.Team, error) {
	team, err := s.teams.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	n, err := s.fixtures.CountByTeam(ctx, id)
	if err != nil {
		return nil, err
	}
	if n > 0 {
		return nil, domain.ErrTeamHasFixtures
	}

	if err := s.teams.Delete(ctx, id); err != nil {
		return nil, err
	}

	s.log.Info().Str("team_id", id).Msg("team deleted")
	return team, nil
}

// List returns all teams.
func (s *TeamService) List(ctx context.Context) ([]domain.Team, error) {
	return s.teams.List(ctx)
}

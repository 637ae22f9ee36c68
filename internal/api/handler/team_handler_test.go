package handler

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/mockleague/league-api/internal/core/domain"
	"github.com/mockleague/league-api/internal/core/ports"
)

type stubTeamService struct {
	createFn func(ctx context.Context, in ports.CreateTeamInput) (*domain.Team, error)
	deleteFn func(ctx context.Context, id string) (*domain.Team, error)
	listFn   func(ctx context.Context) ([]domain.Team, error)
}

func (s *stubTeamService) Create(ctx context.Context, in ports.CreateTeamInput) (*domain.Team, error) {
	return s.createFn(ctx, in)
}

func (s *stubTeamService) Update(context.Context, string, ports.UpdateTeamInput) (*domain.Team, error) {
	return nil, errors.New("not implemented")
}

func (s *stubTeamService) Delete(ctx context.Context, id string) (*domain.Team, error) {
	return s.deleteFn(ctx, id)
}

func (s *stubTeamService) List(ctx context.Context) ([]domain.Team, error) {
	return s.listFn(ctx)
}

func TestTeamHandler_Create_Success(t *testing.T) {
	stub := &stubTeamService{
		createFn: func(_ context.Context, in ports.CreateTeamInput) (*domain.Team, error) {
			return &domain.Team{ID: "team-1", Name: in.Name, Acronym: "ARS"}, nil
		},
	}
	h := NewTeamHandler(stub)

	c, rec := newHandlerContext(t, http.MethodPost, "/teams", `{"name":"Arsenal","acronym":"ars"}`)

	if err := h.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	resp := decodeEnvelope(t, rec)
	payload, _ := resp["payload"].(map[string]any)
	team, _ := payload["team"].(map[string]any)
	if team["acronym"] != "ARS" {
		t.Fatalf("unexpected team payload: %+v", payload)
	}
}

func TestTeamHandler_Create_AcronymLength(t *testing.T) {
	stub := &stubTeamService{
		createFn: func(context.Context, ports.CreateTeamInput) (*domain.Team, error) {
			t.Fatalf("service should not be called")
			return nil, nil
		},
	}
	h := NewTeamHandler(stub)

	c, _ := newHandlerContext(t, http.MethodPost, "/teams", `{"name":"Arsenal","acronym":"ARSE"}`)

	err := h.Create(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 HTTPError, got %v", err)
	}
}

func TestTeamHandler_Delete_BlockedPropagates(t *testing.T) {
	stub := &stubTeamService{
		deleteFn: func(context.Context, string) (*domain.Team, error) {
			return nil, domain.ErrTeamHasFixtures
		},
	}
	h := NewTeamHandler(stub)

	c, _ := newHandlerContext(t, http.MethodDelete, "/teams/team-1", "")
	c.SetParamNames("id")
	c.SetParamValues("team-1")

	if err := h.Delete(c); !errors.Is(err, domain.ErrTeamHasFixtures) {
		t.Fatalf("expected ErrTeamHasFixtures, got %v", err)
	}
}

func TestTeamHandler_List(t *testing.T) {
	stub := &stubTeamService{
		listFn: func(context.Context) ([]domain.Team, error) {
			return []domain.Team{{ID: "team-1", Name: "Arsenal", Acronym: "ARS"}}, nil
		},
	}
	h := NewTeamHandler(stub)

	c, rec := newHandlerContext(t, http.MethodGet, "/teams", "")

	if err := h.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	resp := decodeEnvelope(t, rec)
	payload, _ := resp["payload"].(map[string]any)
	teams, _ := payload["teams"].([]any)
	if len(teams) != 1 {
		t.Fatalf("expected 1 team, got %+v", payload)
	}
}

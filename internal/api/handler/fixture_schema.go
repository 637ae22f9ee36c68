package handler

import "github.com/mockleague/league-api/internal/core/domain"

// matchDayLayout is the wire format for match days.
const matchDayLayout = "2006-01-02"

type createFixtureRequest struct {
	HomeTeam string `json:"home_team" validate:"required"`
	AwayTeam string `json:"away_team" validate:"required"`
	GameWeek int    `json:"game_week" validate:"required,gt=0"`
	MatchDay string `json:"match_day" validate:"required,datetime=2006-01-02"`
}

type updateFixtureRequest struct {
	Status   string `json:"status"`
	GameWeek int    `json:"game_week"`
	MatchDay string `json:"match_day" validate:"omitempty,datetime=2006-01-02"`
}

type fixturePayload struct {
	Message string          `json:"message"`
	Fixture *domain.Fixture `json:"fixture"`
}

type fixtureLinkPayload struct {
	Message string          `json:"message"`
	Fixture *domain.Fixture `json:"fixture"`
	Link    string          `json:"link"`
}

type fixtureListPayload struct {
	Fixtures []domain.Fixture `json:"fixtures"`
}

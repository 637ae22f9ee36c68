package domain

import "time"

// FixtureStatus represents the lifecycle state of a fixture.
type FixtureStatus string

const (
	FixturePending   FixtureStatus = "pending"
	FixtureOngoing   FixtureStatus = "ongoing"
	FixtureCompleted FixtureStatus = "completed"
)

// ParseFixtureStatus normalises a raw status string, reporting whether it is
// one of the allowed fixture states.
func ParseFixtureStatus(s string) (FixtureStatus, bool) {
	switch FixtureStatus(s) {
	case FixturePending, FixtureOngoing, FixtureCompleted:
		return FixtureStatus(s), true
	}
	return "", false
}

// Schedule holds when a fixture is played.
type Schedule struct {
	GameWeek int       `json:"game_week" bson:"game_week"`
	MatchDay time.Time `json:"match_day" bson:"match_day"`
}

// Fixture is a scheduled match between two teams. Key is an opaque value
// used to build shareable links; regenerating it invalidates old links.
type Fixture struct {
	ID        string        `json:"id" bson:"_id,omitempty"`
	Key       string        `json:"key" bson:"key"`
	HomeTeam  string        `json:"home_team" bson:"home_team"`
	AwayTeam  string        `json:"away_team" bson:"away_team"`
	Status    FixtureStatus `json:"status" bson:"status"`
	Schedule  Schedule      `json:"schedule" bson:"schedule"`
	CreatedAt time.Time     `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time     `json:"updated_at" bson:"updated_at"`
}

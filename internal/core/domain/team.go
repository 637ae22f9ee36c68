package domain

import "time"

// Team is a club that can appear in fixtures. Acronym is a unique
// three-letter code, stored uppercased.
type Team struct {
	ID        string    `json:"id" bson:"_id,omitempty"`
	Name      string    `json:"name" bson:"name"`
	Acronym   string    `json:"acronym" bson:"acronym"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time `json:"updated_at" bson:"updated_at"`
}

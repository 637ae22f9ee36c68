package handler

import "github.com/mockleague/league-api/internal/core/domain"

type createTeamRequest struct {
	Name    string `json:"name" validate:"required"`
	Acronym string `json:"acronym" validate:"required,len=3"`
}

type updateTeamRequest struct {
	Name    string `json:"name"`
	Acronym string `json:"acronym" validate:"omitempty,len=3"`
}

type teamPayload struct {
	Message string       `json:"message"`
	Team    *domain.Team `json:"team"`
}

type teamListPayload struct {
	Teams []domain.Team `json:"teams"`
}

package handler

import (
	"github.com/mockleague/league-api/internal/core/domain"
)

type signupRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type toggleRoleRequest struct {
	Email string `json:"email" validate:"required,email"`
	Role  string `json:"role" validate:"required"`
}

// authPayload is returned on successful signup and login.
type authPayload struct {
	Message string               `json:"message"`
	User    domain.PublicProfile `json:"user"`
	Token   string               `json:"token"`
}

// togglePayload is returned by the role toggle endpoint.
type togglePayload struct {
	Message string               `json:"message"`
	User    domain.PublicProfile `json:"user"`
}

type messagePayload struct {
	Message string `json:"message"`
}

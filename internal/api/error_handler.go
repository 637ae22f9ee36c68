package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/mockleague/league-api/internal/core/domain"
)

// errorResponse is the canonical error envelope for all API errors.
type errorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their appropriate HTTP status codes.
//   - Logs unexpected errors internally without leaking details to the client.
//   - Renders a consistent JSON envelope: {"success": false, "message": "…"}.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg := resolveError(err, log, c)
		_ = c.JSON(code, errorResponse{Success: false, Message: msg})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	// Echo's own errors, including guard rejections and bind failures.
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	// Known domain errors map to deterministic HTTP codes. Some carry a
	// client-facing message that differs from the sentinel text.
	switch {
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, err.Error()
	case errors.Is(err, domain.ErrNoSession):
		return http.StatusUnauthorized, "Your session has expired, please log in again"
	case errors.Is(err, domain.ErrMissingToken):
		return http.StatusUnauthorized, "you have to be logged in first"
	case errors.Is(err, domain.ErrInvalidToken):
		return http.StatusUnauthorized, "invalid auth token"
	case errors.Is(err, domain.ErrMalformedToken):
		return http.StatusForbidden, "token has no id"
	case errors.Is(err, domain.ErrStaleCredential):
		return http.StatusUnauthorized, "invalid or expired session and token"
	case errors.Is(err, domain.ErrUserExists):
		return http.StatusConflict, "user already exists"
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound, "user not found"
	case errors.Is(err, domain.ErrInvalidRole):
		return http.StatusForbidden, err.Error()
	case errors.Is(err, domain.ErrProtectedAccount):
		return http.StatusForbidden, err.Error()
	case errors.Is(err, domain.ErrInsufficientPrivilege):
		return http.StatusForbidden, err.Error()
	case errors.Is(err, domain.ErrConcurrentUpdate):
		return http.StatusConflict, err.Error()
	case errors.Is(err, domain.ErrTeamExists):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, domain.ErrTeamNotFound):
		return http.StatusNotFound, err.Error()
	case errors.Is(err, domain.ErrTeamHasFixtures):
		return http.StatusForbidden, err.Error()
	case errors.Is(err, domain.ErrFixtureExists):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, domain.ErrFixtureNotFound):
		return http.StatusNotFound, err.Error()
	case errors.Is(err, domain.ErrFixturePassed):
		return http.StatusForbidden, err.Error()
	case errors.Is(err, domain.ErrInvalidStatus):
		return http.StatusForbidden, err.Error()
	case errors.Is(err, domain.ErrSessionDestroy):
		return http.StatusInternalServerError, err.Error()
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "internal server error"
}

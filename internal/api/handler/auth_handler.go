package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mockleague/league-api/internal/api/metrics"
	"github.com/mockleague/league-api/internal/api/middleware"
	"github.com/mockleague/league-api/internal/core/domain"
	"github.com/mockleague/league-api/internal/core/ports"
)

// SessionManager is the slice of the cookie session manager the auth
// handler needs.
type SessionManager interface {
	Establish(c echo.Context, accessToken string, role domain.Role) error
	Destroy(c echo.Context) error
}

type AuthHandler struct {
	auth     ports.AuthService
	sessions SessionManager
}

func NewAuthHandler(auth ports.AuthService, sessions SessionManager) *AuthHandler {
	return &AuthHandler{auth: auth, sessions: sessions}
}

// Signup registers a new account with the default customer role.
//
// @Summary      Sign up
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      signupRequest  true  "Account details"
// @Success      201   {object}  successResponse
// @Failure      400   {object}  map[string]any
// @Failure      409   {object}  map[string]any
// @Router       /auth/signup [post]
func (h *AuthHandler) Signup(c echo.Context) error {
	var req signupRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	res, err := h.auth.Signup(c.Request().Context(), ports.SignupInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return err
	}

	if err := h.sessions.Establish(c, res.AccessToken, res.Role); err != nil {
		return err
	}

	metrics.SignupsTotal.Inc()
	return respond(c, http.StatusCreated, authPayload{
		Message: "user created successfully",
		User:    res.User,
		Token:   res.Token,
	})
}

// Login authenticates a user, establishes a session and returns a token.
//
// @Summary      Log in
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Credentials"
// @Success      200   {object}  successResponse
// @Failure      400   {object}  map[string]any
// @Failure      401   {object}  map[string]any
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	res, err := h.auth.Login(c.Request().Context(), ports.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return err
	}

	if err := h.sessions.Establish(c, res.AccessToken, res.Role); err != nil {
		return err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	return respond(c, http.StatusOK, authPayload{
		Message: "login successful",
		User:    res.User,
		Token:   res.Token,
	})
}

// Logout destroys the caller's session and clears the cookie.
//
// @Summary      Log out
// @Tags         auth
// @Produce      json
// @Success      200  {object}  successResponse
// @Failure      401  {object}  map[string]any
// @Router       /auth/logout [put]
func (h *AuthHandler) Logout(c echo.Context) error {
	if err := h.sessions.Destroy(c); err != nil {
		return err
	}
	return respond(c, http.StatusOK, messagePayload{Message: "user logged out"})
}

// ToggleRole flips the target account between customer and admin, applying
// the privilege rules and rotating the target's access-key on change.
//
// @Summary      Toggle a user's role
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      toggleRoleRequest  true  "Target email and role"
// @Success      200   {object}  successResponse
// @Failure      401   {object}  map[string]any
// @Failure      403   {object}  map[string]any
// @Failure      404   {object}  map[string]any
// @Router       /auth/toggle/role [put]
func (h *AuthHandler) ToggleRole(c echo.Context) error {
	var req toggleRoleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	claims, ok := middleware.ClaimsFrom(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}

	res, err := h.auth.ToggleRole(c.Request().Context(), ports.ToggleRoleInput{
		ActorRole: claims.Role,
		Email:     req.Email,
		Role:      req.Role,
	})
	if err != nil {
		metrics.RoleTogglesTotal.WithLabelValues(toggleOutcome(err)).Inc()
		return err
	}

	msg := "no changes made to user role"
	result := "noop"
	if res.Changed {
		msg = "user role updated successfully"
		result = "changed"
	}
	metrics.RoleTogglesTotal.WithLabelValues(result).Inc()

	return respond(c, http.StatusOK, togglePayload{Message: msg, User: res.User})
}

// toggleOutcome maps a toggle failure to its metric label. Only policy
// refusals count as "denied"; lost races and store failures are "error".
func toggleOutcome(err error) string {
	switch {
	case errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrInvalidRole),
		errors.Is(err, domain.ErrProtectedAccount),
		errors.Is(err, domain.ErrInsufficientPrivilege):
		return "denied"
	}
	return "error"
}

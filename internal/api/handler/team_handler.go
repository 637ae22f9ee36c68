package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mockleague/league-api/internal/core/ports"
)

type TeamHandler struct {
	teams ports.TeamService
}

func NewTeamHandler(teams ports.TeamService) *TeamHandler {
	return &TeamHandler{teams: teams}
}

// Create registers a team.
//
// @Summary      Create a team
// @Tags         teams
// @Accept       json
// @Produce      json
// @Param        body  body      createTeamRequest  true  "Team details"
// @Success      201   {object}  successResponse
// @Failure      400   {object}  map[string]any
// @Router       /teams [post]
func (h *TeamHandler) Create(c echo.Context) error {
	var req createTeamRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	team, err := h.teams.Create(c.Request().Context(), ports.CreateTeamInput{
		Name:    req.Name,
		Acronym: req.Acronym,
	})
	if err != nil {
		return err
	}

	return respond(c, http.StatusCreated, teamPayload{Message: "team created successfully", Team: team})
}

// Update applies a partial update to a team.
//
// @Summary      Update a team
// @Tags         teams
// @Accept       json
// @Produce      json
// @Param        id    path      string             true  "Team id"
// @Param        body  body      updateTeamRequest  true  "Fields to update"
// @Success      200   {object}  successResponse
// @Failure      404   {object}  map[string]any
// @Router       /teams/{id} [put]
func (h *TeamHandler) Update(c echo.Context) error {
	var req updateTeamRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	team, err := h.teams.Update(c.Request().Context(), c.Param("id"), ports.UpdateTeamInput{
		Name:    req.Name,
		Acronym: req.Acronym,
	})
	if err != nil {
		return err
	}

	return respond(c, http.StatusOK, teamPayload{Message: "team updated successfully", Team: team})
}

// Delete removes a team that has no fixtures.
//
// @Summary      Delete a team
// @Tags         teams
// @Produce      json
// @Param        id  path      string  true  "Team id"
// @Success      200  {object}  successResponse
// @Failure      403  {object}  map[string]any
// @Failure      404  {object}  map[string]any
// @Router       /teams/{id} [delete]
func (h *TeamHandler) Delete(c echo.Context) error {
	team, err := h.teams.Delete(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, teamPayload{Message: "team deleted successfully", Team: team})
}

// List returns all teams.
//
// @Summary      List teams
// @Tags         teams
// @Produce      json
// @Success      200  {object}  successResponse
// @Router       /teams [get]
func (h *TeamHandler) List(c echo.Context) error {
	teams, err := h.teams.List(c.Request().Context())
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, teamListPayload{Teams: teams})
}

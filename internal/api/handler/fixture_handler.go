package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/mockleague/league-api/internal/core/ports"
)

type FixtureHandler struct {
	fixtures ports.FixtureService
}

func NewFixtureHandler(fixtures ports.FixtureService) *FixtureHandler {
	return &FixtureHandler{fixtures: fixtures}
}

// Create schedules a fixture between two teams.
//
// @Summary      Create a fixture
// @Tags         fixtures
// @Accept       json
// @Produce      json
// @Param        body  body      createFixtureRequest  true  "Fixture details"
// @Success      201   {object}  successResponse
// @Failure      400   {object}  map[string]any
// @Failure      404   {object}  map[string]any
// @Router       /fixtures [post]
func (h *FixtureHandler) Create(c echo.Context) error {
	var req createFixtureRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	matchDay, err := time.Parse(matchDayLayout, req.MatchDay)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "match_day must be a date in the form 2006-01-02")
	}

	fixture, err := h.fixtures.Create(c.Request().Context(), ports.CreateFixtureInput{
		HomeTeam: req.HomeTeam,
		AwayTeam: req.AwayTeam,
		GameWeek: req.GameWeek,
		MatchDay: matchDay,
	})
	if err != nil {
		return err
	}

	return respond(c, http.StatusCreated, fixturePayload{Message: "fixture created successfully", Fixture: fixture})
}

// Update applies a partial update to a fixture.
//
// @Summary      Update a fixture
// @Tags         fixtures
// @Accept       json
// @Produce      json
// @Param        id    path      string                true  "Fixture id"
// @Param        body  body      updateFixtureRequest  true  "Fields to update"
// @Success      200   {object}  successResponse
// @Failure      403   {object}  map[string]any
// @Failure      404   {object}  map[string]any
// @Router       /fixtures/{id} [put]
func (h *FixtureHandler) Update(c echo.Context) error {
	var req updateFixtureRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	in := ports.UpdateFixtureInput{
		Status:   req.Status,
		GameWeek: req.GameWeek,
	}
	if req.MatchDay != "" {
		matchDay, err := time.Parse(matchDayLayout, req.MatchDay)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "match_day must be a date in the form 2006-01-02")
		}
		in.MatchDay = matchDay
	}

	fixture, err := h.fixtures.Update(c.Request().Context(), c.Param("id"), in)
	if err != nil {
		return err
	}

	return respond(c, http.StatusOK, fixturePayload{Message: "fixture updated successfully", Fixture: fixture})
}

// Delete removes a fixture whose match day has not passed.
//
// @Summary      Delete a fixture
// @Tags         fixtures
// @Produce      json
// @Param        id  path      string  true  "Fixture id"
// @Success      200  {object}  successResponse
// @Failure      403  {object}  map[string]any
// @Failure      404  {object}  map[string]any
// @Router       /fixtures/{id} [delete]
func (h *FixtureHandler) Delete(c echo.Context) error {
	fixture, err := h.fixtures.Delete(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, fixturePayload{Message: "fixture deleted successfully", Fixture: fixture})
}

// List returns fixtures, optionally filtered by status. When a key query
// parameter is present the shareable link is resolved instead and a single
// fixture is returned.
//
// @Summary      List fixtures
// @Tags         fixtures
// @Produce      json
// @Param        status  query     string  false  "Filter by status"
// @Param        key     query     string  false  "Resolve a shareable link key"
// @Success      200     {object}  successResponse
// @Failure      404     {object}  map[string]any
// @Router       /fixtures [get]
func (h *FixtureHandler) List(c echo.Context) error {
	if key := c.QueryParam("key"); key != "" {
		fixture, err := h.fixtures.GetByKey(c.Request().Context(), key)
		if err != nil {
			return err
		}
		return respond(c, http.StatusOK, fixturePayload{Message: "fixture found", Fixture: fixture})
	}

	fixtures, err := h.fixtures.List(c.Request().Context(), c.QueryParam("status"))
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, fixtureListPayload{Fixtures: fixtures})
}

// GenerateLink rotates the fixture's link key and returns the new link.
//
// @Summary      Generate a shareable fixture link
// @Tags         fixtures
// @Produce      json
// @Param        id  path      string  true  "Fixture id"
// @Success      200  {object}  successResponse
// @Failure      404  {object}  map[string]any
// @Router       /fixtures/{id}/link/generate [post]
func (h *FixtureHandler) GenerateLink(c echo.Context) error {
	fixture, link, err := h.fixtures.GenerateLink(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, fixtureLinkPayload{
		Message: "fixture link generated",
		Fixture: fixture,
		Link:    link,
	})
}

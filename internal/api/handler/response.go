package handler

import "github.com/labstack/echo/v4"

// successResponse is the canonical success envelope for all API responses.
type successResponse struct {
	Success bool `json:"success"`
	Payload any  `json:"payload"`
}

// respond renders the success envelope with the given status code.
func respond(c echo.Context, code int, payload any) error {
	return c.JSON(code, successResponse{Success: true, Payload: payload})
}

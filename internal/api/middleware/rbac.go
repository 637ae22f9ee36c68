package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// RequireAdmin rejects callers whose verified token role does not carry
// admin privileges. Must run after RequireValidToken.
func RequireAdmin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, ok := ClaimsFrom(c)
			if !ok || !claims.Role.IsAdmin() {
				return echo.NewHTTPError(http.StatusUnauthorized, "only an admin can perform this operation")
			}
			return next(c)
		}
	}
}

// Package middleware holds the request guards: the session guard, the token
// guard and the admin guard. They are separate middlewares composed in route
// registration so each step of the chain is testable on its own.
package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mockleague/league-api/internal/core/domain"
)

const sessionContextKey = "session"

// SessionLoader resolves the session referenced by the request cookie.
type SessionLoader interface {
	Load(c echo.Context) (*domain.Session, error)
}

// RequireActiveSession rejects requests that carry no live session with an
// access-key. On success the session is attached to the request context for
// the token guard to cross-check against.
func RequireActiveSession(sessions SessionLoader) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			sess, err := sessions.Load(c)
			if err != nil || sess.AccessToken == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "Your session has expired, please log in again")
			}

			c.Set(sessionContextKey, sess)
			return next(c)
		}
	}
}

// SessionFrom returns the session attached by RequireActiveSession.
func SessionFrom(c echo.Context) (*domain.Session, bool) {
	sess, ok := c.Get(sessionContextKey).(*domain.Session)
	return sess, ok
}

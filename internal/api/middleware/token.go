package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/mockleague/league-api/internal/api/metrics"
	"github.com/mockleague/league-api/internal/core/domain"
	"github.com/mockleague/league-api/internal/core/service"
)

const claimsContextKey = "claims"

// TokenVerifier checks a bearer token's signature and expiry.
type TokenVerifier interface {
	Verify(token string) (*service.Claims, error)
}

// UserLookup resolves the account a token claims to belong to.
type UserLookup interface {
	FindByID(ctx context.Context, id string) (*domain.User, error)
}

// RequireValidToken is the token guard. It runs after RequireActiveSession
// and evaluates, in order:
//
//  1. a token must be present (Authorization bearer or x-access-token)
//  2. its signature and expiry must verify
//  3. its claims must carry a user id
//  4. that user must still exist
//  5. the access-key in the claims must equal both the live session's key
//     and the key currently stored on the user
//
// A key rotated by a role toggle fails step 5 everywhere at once, which is
// what revokes all outstanding sessions and tokens for the user.
func RequireValidToken(tokens TokenVerifier, users UserLookup) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw := extractToken(c)
			if raw == "" {
				metrics.TokenRejectionsTotal.WithLabelValues("missing").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "you have to be logged in first")
			}

			claims, err := tokens.Verify(raw)
			if err != nil {
				metrics.TokenRejectionsTotal.WithLabelValues("invalid").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid auth token")
			}

			if claims.UserID == "" {
				metrics.TokenRejectionsTotal.WithLabelValues("no_id").Inc()
				return echo.NewHTTPError(http.StatusForbidden, "token has no id")
			}

			user, err := users.FindByID(c.Request().Context(), claims.UserID)
			if err != nil {
				metrics.TokenRejectionsTotal.WithLabelValues("user_not_found").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "user not found or has been removed")
			}

			sess, ok := SessionFrom(c)
			if !ok || user.AccessToken == "" ||
				sess.AccessToken != claims.AuthKey ||
				user.AccessToken != claims.AuthKey {
				metrics.TokenRejectionsTotal.WithLabelValues("stale").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid or expired session and token")
			}

			c.Set(claimsContextKey, claims)
			return next(c)
		}
	}
}

// extractToken pulls the token from the Authorization header, falling back
// to the x-access-token header. A Bearer prefix is stripped when present;
// a bare header value is used as-is.
func extractToken(c echo.Context) string {
	if auth := c.Request().Header.Get("Authorization"); auth != "" {
		if len(auth) > 7 && strings.EqualFold(auth[:7], "bearer ") {
			return auth[7:]
		}
		return auth
	}
	return c.Request().Header.Get("x-access-token")
}

// ClaimsFrom returns the verified claims attached by RequireValidToken.
func ClaimsFrom(c echo.Context) (*service.Claims, bool) {
	claims, ok := c.Get(claimsContextKey).(*service.Claims)
	return claims, ok
}

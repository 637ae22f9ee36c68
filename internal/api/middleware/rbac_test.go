package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/mockleague/league-api/internal/core/domain"
	"github.com/mockleague/league-api/internal/core/service"
)

func rbacContext(t *testing.T, role domain.Role) echo.Context {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPut, "/", nil)
	c := e.NewContext(req, httptest.NewRecorder())
	if role != "" {
		c.Set(claimsContextKey, &service.Claims{UserID: "user-1", Role: role})
	}
	return c
}

func TestRequireAdmin_MissingClaims(t *testing.T) {
	c := rbacContext(t, "")
	err := RequireAdmin()(failNext(t))(c)
	mustHTTPError(t, err, http.StatusUnauthorized, "only an admin can perform this operation")
}

func TestRequireAdmin_CustomerRejected(t *testing.T) {
	c := rbacContext(t, domain.RoleCustomer)
	err := RequireAdmin()(failNext(t))(c)
	mustHTTPError(t, err, http.StatusUnauthorized, "only an admin can perform this operation")
}

func TestRequireAdmin_AdminRoles(t *testing.T) {
	for _, role := range []domain.Role{domain.RoleAdmin, domain.RoleSuperAdmin} {
		c := rbacContext(t, role)

		called := false
		err := RequireAdmin()(func(c echo.Context) error {
			called = true
			return c.NoContent(http.StatusOK)
		})(c)

		if err != nil {
			t.Fatalf("role %s: handler error: %v", role, err)
		}
		if !called {
			t.Fatalf("role %s: next not called", role)
		}
	}
}

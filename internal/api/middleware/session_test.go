package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/mockleague/league-api/internal/core/domain"
)

type stubSessionLoader struct {
	sess *domain.Session
	err  error
}

func (s *stubSessionLoader) Load(echo.Context) (*domain.Session, error) {
	return s.sess, s.err
}

func newGuardContext(t *testing.T) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestRequireActiveSession_NoSession(t *testing.T) {
	c, _ := newGuardContext(t)
	mw := RequireActiveSession(&stubSessionLoader{err: domain.ErrNoSession})

	err := mw(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})(c)

	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 HTTPError, got %v", err)
	}
}

func TestRequireActiveSession_EmptyAccessKey(t *testing.T) {
	c, _ := newGuardContext(t)
	mw := RequireActiveSession(&stubSessionLoader{sess: &domain.Session{Role: domain.RoleCustomer}})

	err := mw(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})(c)

	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 HTTPError, got %v", err)
	}
}

func TestRequireActiveSession_AttachesSession(t *testing.T) {
	c, rec := newGuardContext(t)
	sess := &domain.Session{AccessToken: "key-1", Role: domain.RoleAdmin}
	mw := RequireActiveSession(&stubSessionLoader{sess: sess})

	called := false
	err := mw(func(c echo.Context) error {
		called = true
		got, ok := SessionFrom(c)
		if !ok || got.AccessToken != "key-1" {
			t.Fatalf("session not attached, got %+v ok=%v", got, ok)
		}
		return c.NoContent(http.StatusOK)
	})(c)

	if err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

// Package session manages the cookie-backed server-side session. The cookie
// carries only an opaque session id; the session record itself lives in the
// store with a TTL matching the cookie expiry.
package session

import (
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/mockleague/league-api/internal/core/domain"
	"github.com/mockleague/league-api/internal/core/ports"
)

// CookieName is the session cookie set on login and signup.
const CookieName = "user_sid"

// Manager establishes, loads and destroys cookie sessions.
type Manager struct {
	store   ports.SessionStore
	timeout time.Duration
	secure  bool
}

// NewManager builds a session manager. secure controls the Secure flag on
// the cookie and should be true in production only.
func NewManager(store ports.SessionStore, timeout time.Duration, secure bool) *Manager {
	return &Manager{store: store, timeout: timeout, secure: secure}
}

// Establish mints a new session id, persists the session record and sets the
// cookie. The cookie expiry is fixed at establishment and never extended.
func (m *Manager) Establish(c echo.Context, accessToken string, role domain.Role) error {
	sid := uuid.NewString()
	sess := &domain.Session{AccessToken: accessToken, Role: role}

	if err := m.store.Set(c.Request().Context(), sid, sess, m.timeout); err != nil {
		return err
	}

	c.SetCookie(&http.Cookie{
		Name:     CookieName,
		Value:    sid,
		Path:     "/",
		Expires:  time.Now().Add(m.timeout),
		MaxAge:   int(m.timeout.Seconds()),
		HttpOnly: true,
		Secure:   m.secure,
	})
	return nil
}

// Load returns the session referenced by the request cookie, or
// domain.ErrNoSession when the cookie is absent or the record has expired.
func (m *Manager) Load(c echo.Context) (*domain.Session, error) {
	cookie, err := c.Cookie(CookieName)
	if err != nil || cookie.Value == "" {
		return nil, domain.ErrNoSession
	}
	return m.store.Get(c.Request().Context(), cookie.Value)
}

// Destroy removes the session record and expires the cookie. A request with
// no session cookie is a no-op.
func (m *Manager) Destroy(c echo.Context) error {
	cookie, err := c.Cookie(CookieName)
	if err != nil || cookie.Value == "" {
		return nil
	}

	if err := m.store.Delete(c.Request().Context(), cookie.Value); err != nil && !errors.Is(err, domain.ErrNoSession) {
		return domain.ErrSessionDestroy
	}

	c.SetCookie(&http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   m.secure,
	})
	return nil
}

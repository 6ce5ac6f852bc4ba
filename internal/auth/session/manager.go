package session

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// DefaultCookieName is the session cookie issued on login.
const DefaultCookieName = "_sid"

type Config struct {
	CookieName string
	Secure     bool
}

// Manager reads and writes the opaque session cookie. The raw token is only
// ever stored client-side; the backend keeps a sha256 hash.
type Manager struct {
	cookieName string
	secure     bool
}

func NewManager(cfg Config) *Manager {
	name := cfg.CookieName
	if name == "" {
		name = DefaultCookieName
	}
	return &Manager{cookieName: name, secure: cfg.Secure}
}

func (m *Manager) CookieName() string {
	return m.cookieName
}

// ReadToken returns the raw session token from the request, or "" when the
// cookie is absent.
func (m *Manager) ReadToken(c *gin.Context) string {
	token, err := c.Cookie(m.cookieName)
	if err != nil {
		return ""
	}
	return token
}

func (m *Manager) Set(c *gin.Context, rawToken string, expiresAt time.Time) {
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     m.cookieName,
		Value:    rawToken,
		Path:     "/",
		Expires:  expiresAt,
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	})
}

func (m *Manager) Clear(c *gin.Context) {
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     m.cookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	})
}

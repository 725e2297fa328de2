// Package sessioncookie centralizes web session cookie behavior.
package sessioncookie

import (
	"net/http"
	"strings"
	"time"

	"github.com/arenahq/arena/internal/services/web/platform/requestmeta"
)

// Name is the canonical web session cookie name.
const Name = "arena_session"

// Cookies writes session cookies under one scheme policy and lifetime.
type Cookies struct {
	Policy requestmeta.SchemePolicy
	TTL    time.Duration
}

// Read returns the trimmed session cookie value when present.
func Read(r *http.Request) (string, bool) {
	if r == nil {
		return "", false
	}
	cookie, err := r.Cookie(Name)
	if err != nil {
		return "", false
	}
	value := strings.TrimSpace(cookie.Value)
	if value == "" {
		return "", false
	}
	return value, true
}

// Write sets the session cookie for the current request context.
func (c Cookies) Write(w http.ResponseWriter, r *http.Request, sessionID string) {
	if w == nil {
		return
	}
	cookie := &http.Cookie{
		Name:     Name,
		Value:    strings.TrimSpace(sessionID),
		Path:     "/",
		HttpOnly: true,
		Secure:   requestmeta.IsHTTPSWithPolicy(r, c.Policy),
		SameSite: http.SameSiteLaxMode,
	}
	if c.TTL > 0 {
		cookie.MaxAge = int(c.TTL / time.Second)
	}
	http.SetCookie(w, cookie)
}

// Clear expires the session cookie for the current request context.
func (c Cookies) Clear(w http.ResponseWriter, r *http.Request) {
	if w == nil {
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     Name,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Secure:   requestmeta.IsHTTPSWithPolicy(r, c.Policy),
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	})
}

package handlers

import (
	"net/http"
	"time"

	"github.com/sbilibin2017/jobboard/internal/jwt"
)

// SessionCookie writes and clears the session cookie.
type SessionCookie struct {
	Secure bool
	TTL    time.Duration
}

// NewSessionCookie returns cookie settings for the given environment.
// Cookies are marked secure in production and preview.
func NewSessionCookie(env string, ttl time.Duration) SessionCookie {
	if ttl <= 0 {
		ttl = jwt.DefaultExpiration
	}
	return SessionCookie{
		Secure: env == "production" || env == "preview",
		TTL:    ttl,
	}
}

// Set stores token in the session cookie.
func (c SessionCookie) Set(w http.ResponseWriter, token string) {
	http.SetCookie(w, c.cookie(token, int(c.TTL.Seconds())))
}

// Clear expires the session cookie immediately.
func (c SessionCookie) Clear(w http.ResponseWriter) {
	// negative MaxAge is sent as Max-Age=0
	http.SetCookie(w, c.cookie("", -1))
}

func (c SessionCookie) cookie(value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     jwt.CookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   c.Secure,
		SameSite: http.SameSiteLaxMode,
	}
}

package session

import (
	"net/http"
	"time"
)

const (
	// CookieName carries the refresh credential. The value is opaque;
	// the server is the only party able to resolve it.
	CookieName = "refreshToken"
)

// CookieOptions defines how the refresh-token cookie is issued.
type CookieOptions struct {
	Path       string
	Production bool // Secure + SameSite=Strict when true, Lax otherwise
}

// normalize applies safe defaults without breaking callers
func (o CookieOptions) normalize() CookieOptions {
	if o.Path == "" {
		o.Path = "/"
	}
	return o
}

func (o CookieOptions) sameSite() http.SameSite {
	if o.Production {
		return http.SameSiteStrictMode
	}
	return http.SameSiteLaxMode
}

// SetCookie issues the refresh-token cookie to the client.
func SetCookie(
	w http.ResponseWriter,
	refreshToken string,
	maxAge time.Duration,
	opts CookieOptions,
) {
	opts = opts.normalize()

	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    refreshToken,
		Path:     opts.Path,
		MaxAge:   int(maxAge.Seconds()),
		HttpOnly: true,
		Secure:   opts.Production,
		SameSite: opts.sameSite(),
	})
}

// ClearCookie removes the refresh-token cookie from the client.
func ClearCookie(w http.ResponseWriter, opts CookieOptions) {
	opts = opts.normalize()

	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     opts.Path,
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   opts.Production,
		SameSite: opts.sameSite(),
	})
}

package http

import (
	"net/http"
	"time"
)

const sessionCookieName = "token"

// cookieAttributes returns the attributes of the session cookie. Production
// deployments serve the browser client from another site, which needs
// SameSite=None and therefore Secure.
func cookieAttributes(isProduction bool, maxAge time.Duration) http.Cookie {
	sameSite := http.SameSiteLaxMode
	if isProduction {
		sameSite = http.SameSiteNoneMode
	}

	return http.Cookie{
		Path:     "/",
		HttpOnly: true,
		Secure:   isProduction,
		SameSite: sameSite,
		MaxAge:   int(maxAge / time.Second),
	}
}

func (h *Handler) setSessionCookie(w http.ResponseWriter, token string) {
	cookie := cookieAttributes(h.isProduction, h.tokenDuration)
	cookie.Name = sessionCookieName
	cookie.Value = token
	cookie.Expires = time.Now().Add(h.tokenDuration)

	http.SetCookie(w, &cookie)
}

// clearSessionCookie expires the session cookie in the browser.
func (h *Handler) clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Secure:   h.isProduction,
		SameSite: http.SameSiteStrictMode,
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
	})
}

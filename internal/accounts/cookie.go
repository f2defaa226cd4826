package accounts

import "net/http"

const SessionCookieName = "session_id"

// sessionCookie builds the session cookie. Production deployments are
// cross-site (Secure, SameSite=None); local dev runs over plain HTTP and
// needs Lax instead.
func sessionCookie(value string, production bool) *http.Cookie {
	cookie := &http.Cookie{
		Name:     SessionCookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   int(SessionTTL.Seconds()),
		HttpOnly: true,
		Secure:   production,
		SameSite: http.SameSiteLaxMode,
	}
	if production {
		cookie.SameSite = http.SameSiteNoneMode
	}
	return cookie
}

// clearedSessionCookie instructs the client to discard the session cookie.
// Attributes must match the original cookie for browsers to drop it.
func clearedSessionCookie(production bool) *http.Cookie {
	cookie := sessionCookie("", production)
	cookie.MaxAge = -1
	return cookie
}

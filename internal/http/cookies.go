package httpx

import (
	"net/http"
	"strings"
	"time"
)

const (
	sessionCookieName = "portal_session"
	authCookieName    = "auth_token"
)

// authTokenMaxAge matches the lifetime of the remote API's bearer
// credential.
const authTokenMaxAge = 7 * 24 * time.Hour

func setSessionCookie(w http.ResponseWriter, r *http.Request, id, domain string, ttl time.Duration) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    id,
		Path:     "/",
		Domain:   domain,
		HttpOnly: true,
		Secure:   isRequestSecure(r),
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(ttl.Seconds()),
	})
}

// setAuthCookie stores the bearer credential issued by the remote API.
func setAuthCookie(w http.ResponseWriter, r *http.Request, token, domain string) {
	http.SetCookie(w, &http.Cookie{
		Name:     authCookieName,
		Value:    token,
		Path:     "/",
		Domain:   domain,
		HttpOnly: true,
		Secure:   isRequestSecure(r),
		SameSite: http.SameSiteStrictMode,
		MaxAge:   int(authTokenMaxAge.Seconds()),
	})
}

// clearAuthCookie drops the bearer credential on logout.
func clearAuthCookie(w http.ResponseWriter, r *http.Request, domain string) {
	http.SetCookie(w, &http.Cookie{
		Name:     authCookieName,
		Value:    "",
		Path:     "/",
		Domain:   domain,
		HttpOnly: true,
		Secure:   isRequestSecure(r),
		SameSite: http.SameSiteStrictMode,
		MaxAge:   -1,
	})
}

// authToken returns the bearer credential from the auth cookie, or ""
// when the cookie is absent. Callers treat "" as the missing-credential
// case and short-circuit to a 401 alert without a network call.
func authToken(r *http.Request) string {
	cookie, err := r.Cookie(authCookieName)
	if err != nil {
		return ""
	}
	return cookie.Value
}

// isRequestSecure reports whether the request arrived over HTTPS,
// accounting for proxies.
func isRequestSecure(r *http.Request) bool {
	if r.TLS != nil {
		return true
	}
	for _, proto := range strings.Split(r.Header.Get("X-Forwarded-Proto"), ",") {
		if strings.EqualFold(strings.TrimSpace(proto), "https") {
			return true
		}
	}
	return false
}

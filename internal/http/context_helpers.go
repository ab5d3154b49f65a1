package httpx

import (
	"context"

	domainauth "github.com/moness/staff-portal/internal/domain/auth"
)

// sessionKey is an unexported context key type to avoid collisions
// across packages.
type sessionKey struct{}

// SetSessionInContext returns a child context carrying the session.
func SetSessionInContext(ctx context.Context, session domainauth.Session) context.Context {
	return context.WithValue(ctx, sessionKey{}, session)
}

// SessionFromContext returns the browser session placed by the session
// middleware. A zero session (anonymous, Pending) is returned when the
// middleware did not run.
func SessionFromContext(ctx context.Context) domainauth.Session {
	if s, ok := ctx.Value(sessionKey{}).(domainauth.Session); ok {
		return s
	}
	return domainauth.Session{Role: domainauth.RolePending}
}

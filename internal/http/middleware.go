package httpx

import (
	"log/slog"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/google/uuid"

	domainauth "github.com/moness/staff-portal/internal/domain/auth"
	"github.com/moness/staff-portal/internal/ports"
)

// Logging returns a middleware that logs HTTP requests and responses.
func Logging(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			const defaultHTTPStatus = 200
			ww := &respWriter{ResponseWriter: w, status: defaultHTTPStatus}
			next.ServeHTTP(ww, r)
			logger.Info("http",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", ww.status),
				slog.Duration("duration", time.Since(start)),
			)
		})
	}
}

type respWriter struct {
	http.ResponseWriter
	status int
}

func (w *respWriter) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}

// Recover returns a middleware that recovers from panics and logs them.
func Recover(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if err := recover(); err != nil {
					logger.Error("panic",
						slog.Any("error", err),
						slog.String("path", r.URL.Path),
						slog.String("method", r.Method),
						slog.String("stack", string(debug.Stack())))
					http.Error(w, "Internal Server Error", http.StatusInternalServerError)
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

// SessionConfig holds dependencies for the session middleware.
type SessionConfig struct {
	Store        ports.SessionStore // Required: session persistence
	CookieDomain string
	TTL          time.Duration
	Logger       *slog.Logger
}

// Session returns a middleware that guarantees every request carries a
// browser session. A missing or unknown portal_session cookie yields a
// fresh anonymous session (navigation hidden, role Pending), which is
// persisted so later flows can mutate it.
func Session(cfg SessionConfig) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sess, fresh := loadOrCreateSession(r, cfg)
			if fresh {
				setSessionCookie(w, r, sess.ID, cfg.CookieDomain, cfg.TTL)
				if err := cfg.Store.Save(r.Context(), sess); err != nil && cfg.Logger != nil {
					cfg.Logger.Warn("save fresh session failed", slog.Any("error", err))
				}
			}
			next.ServeHTTP(w, r.WithContext(SetSessionInContext(r.Context(), sess)))
		})
	}
}

func loadOrCreateSession(r *http.Request, cfg SessionConfig) (domainauth.Session, bool) {
	if cookie, err := r.Cookie(sessionCookieName); err == nil && cookie.Value != "" {
		sess, getErr := cfg.Store.Get(r.Context(), cookie.Value)
		if getErr == nil {
			return sess, false
		}
		// Unknown or expired ID: reuse it for a fresh anonymous session
		// so the browser keeps a stable cookie.
		return newAnonymousSession(cookie.Value, cfg.TTL), true
	}
	return newAnonymousSession(uuid.NewString(), cfg.TTL), true
}

func newAnonymousSession(id string, ttl time.Duration) domainauth.Session {
	return domainauth.Session{
		ID:        id,
		Role:      domainauth.RolePending,
		ExpiresAt: time.Now().Add(ttl),
	}
}

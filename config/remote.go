package config

import "time"

// RemoteConfig contains the remote restaurant API configuration.
type RemoteConfig struct {
	// BaseURL is the root of the restaurant API, without a trailing
	// slash (e.g., "https://api.moness.example/api/v1").
	BaseURL string `env:"API_BASE_URL" envDefault:"http://localhost:3000/api/v1"`

	// Timeout bounds each remote call.
	Timeout time.Duration `env:"API_TIMEOUT" envDefault:"15s"`
}

// SessionConfig contains browser session settings.
type SessionConfig struct {
	// TTL is how long an idle browser session survives in Redis.
	TTL time.Duration `env:"SESSION_TTL" envDefault:"168h"`
}

// Sanitize applies guardrails to session configuration values.
func (s *SessionConfig) Sanitize() {
	if s.TTL <= 0 {
		s.TTL = 168 * time.Hour
	}
}

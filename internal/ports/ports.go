package ports

// Package ports defines interfaces (hexagonal ports) for session, alert,
// and audit behavior. Implementations live in internal/adapters and
// internal/data; orchestration in internal/service.

import (
	"context"
	"time"

	domainauth "github.com/moness/staff-portal/internal/domain/auth"
	"github.com/moness/staff-portal/internal/domain/model"
)

// SessionStore persists and retrieves browser sessions.
type SessionStore interface {
	Save(ctx context.Context, sess domainauth.Session) error
	Get(ctx context.Context, id string) (domainauth.Session, error)
	Delete(ctx context.Context, id string) error
}

// AlertStore is the one-shot alert register. Each browser session holds
// at most one pending payload; Set replaces it whole and the last write
// wins. Take consumes the payload, so a reload of the alert screen sees
// an empty register. Producers serialize their own mutating actions, so
// Set is never raced for a given session.
type AlertStore interface {
	Set(ctx context.Context, sessionID string, payload model.AlertPayload) error
	Take(ctx context.Context, sessionID string) (model.AlertPayload, error)
}

// AuditEntry records a mutating portal action for the audit trail.
type AuditEntry struct {
	Actor      string
	Action     string
	EntityKind string
	EntityID   string
	Outcome    string
	Detail     string
	OccurredAt time.Time
}

// AuditRecorder persists audit entries. Implementations are best-effort:
// callers log recording failures and never surface them to users.
type AuditRecorder interface {
	Record(ctx context.Context, entry AuditEntry) error
}

package service

// Package service orchestrates portal flows: it drives the remote API
// client, keeps session state, and records the audit trail. Alert
// wording stays in the HTTP layer; services report outcomes as errors.

import (
	"context"
	"log/slog"

	"github.com/moness/staff-portal/internal/ports"
)

const (
	outcomeSuccess = "success"
	outcomeFailure = "failure"
)

// recordAudit writes one audit entry, best-effort. Recording failures
// are logged and never returned to callers.
func recordAudit(ctx context.Context, audit ports.AuditRecorder, logger *slog.Logger, entry ports.AuditEntry) {
	if audit == nil {
		return
	}
	if err := audit.Record(ctx, entry); err != nil && logger != nil {
		logger.WarnContext(ctx, "audit record failed",
			"action", entry.Action, "entity_kind", entry.EntityKind, "error", err)
	}
}

func outcomeOf(err error) string {
	if err != nil {
		return outcomeFailure
	}
	return outcomeSuccess
}

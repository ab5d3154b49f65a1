package data

import (
	"context"

	"github.com/moness/staff-portal/internal/ports"
)

// NopAuditRecorder discards entries. Used when no database is
// configured; the portal runs fine without an audit trail.
type NopAuditRecorder struct{}

func (NopAuditRecorder) Record(context.Context, ports.AuditEntry) error { return nil }

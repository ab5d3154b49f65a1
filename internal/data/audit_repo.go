package data

// Package data holds the Postgres-backed audit trail. The portal itself
// owns no business data; the remote API does. The audit trail records
// which staff member triggered which mutating action, best-effort.

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/moness/staff-portal/internal/ports"
)

// ErrDuplicateAuditEntry is returned when an entry with the same ID is
// recorded twice.
var ErrDuplicateAuditEntry = errors.New("duplicate audit entry")

// AuditRepo persists audit entries.
type AuditRepo struct {
	DB   *sql.DB
	Time TimeProvider
}

// NewAuditRepo creates a new AuditRepo.
func NewAuditRepo(db *sql.DB) *AuditRepo {
	return &AuditRepo{DB: db, Time: RealTimeProvider{}}
}

// EnsureSchema creates the audit table when it does not exist yet.
func (r *AuditRepo) EnsureSchema(ctx context.Context) error {
	const ddl = `
CREATE TABLE IF NOT EXISTS portal_audit (
    id          UUID PRIMARY KEY,
    actor       TEXT NOT NULL,
    action      TEXT NOT NULL,
    entity_kind TEXT NOT NULL,
    entity_id   TEXT NOT NULL DEFAULT '',
    outcome     TEXT NOT NULL,
    detail      TEXT NOT NULL DEFAULT '',
    occurred_at TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS portal_audit_occurred_at_idx ON portal_audit (occurred_at DESC);`
	if _, err := r.DB.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("ensure audit schema: %w", err)
	}
	return nil
}

// Record inserts one audit entry. An unset OccurredAt is filled from the
// repo's clock.
func (r *AuditRepo) Record(ctx context.Context, entry ports.AuditEntry) error {
	occurred := entry.OccurredAt
	if occurred.IsZero() {
		occurred = r.Time.Now()
	}

	const q = `
INSERT INTO portal_audit (id, actor, action, entity_kind, entity_id, outcome, detail, occurred_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.DB.ExecContext(ctx, q,
		uuid.NewString(), entry.Actor, entry.Action, entry.EntityKind,
		entry.EntityID, entry.Outcome, entry.Detail, occurred)
	if err != nil {
		return r.mapWriteErr(err)
	}
	return nil
}

// Recent returns the newest entries, most recent first.
func (r *AuditRepo) Recent(ctx context.Context, limit int) ([]ports.AuditEntry, error) {
	if limit <= 0 {
		limit = 50
	}

	const q = `
SELECT actor, action, entity_kind, entity_id, outcome, detail, occurred_at
FROM portal_audit
ORDER BY occurred_at DESC
LIMIT $1`
	rows, err := r.DB.QueryContext(ctx, q, limit)
	if err != nil {
		return nil, fmt.Errorf("query audit entries: %w", err)
	}
	defer rows.Close()

	var entries []ports.AuditEntry
	for rows.Next() {
		var e ports.AuditEntry
		if scanErr := rows.Scan(&e.Actor, &e.Action, &e.EntityKind, &e.EntityID,
			&e.Outcome, &e.Detail, &e.OccurredAt); scanErr != nil {
			return nil, fmt.Errorf("scan audit entry: %w", scanErr)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate audit entries: %w", err)
	}
	return entries, nil
}

func (r *AuditRepo) mapWriteErr(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
		return ErrDuplicateAuditEntry
	}
	return fmt.Errorf("insert audit entry: %w", err)
}

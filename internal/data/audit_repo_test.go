package data

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moness/staff-portal/internal/ports"
)

// setupAuditDB connects to the database named by TEST_DATABASE_URL and
// returns a repo over a clean portal_audit table. Tests that need it
// skip when the variable is unset.
func setupAuditDB(t *testing.T) *AuditRepo {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set, skipping database test")
	}

	db, err := sql.Open("pgx", dsn)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	repo := NewAuditRepo(db)
	require.NoError(t, repo.EnsureSchema(context.Background()))

	_, err = db.ExecContext(context.Background(), "DELETE FROM portal_audit")
	require.NoError(t, err)

	return repo
}

func TestAuditRepoRecordAndRecent(t *testing.T) {
	repo := setupAuditDB(t)

	clock := NewFixedTimeProvider(time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC))
	repo.Time = clock

	err := repo.Record(context.Background(), ports.AuditEntry{
		Actor:      "manager@moness.example",
		Action:     "delete",
		EntityKind: "booking",
		EntityID:   "b1",
		Outcome:    "failure",
		Detail:     "remote refused",
	})
	require.NoError(t, err)

	clock.SetTime(time.Date(2026, 9, 1, 12, 5, 0, 0, time.UTC))
	err = repo.Record(context.Background(), ports.AuditEntry{
		Actor:      "manager@moness.example",
		Action:     "create",
		EntityKind: "booking",
		EntityID:   "b2",
		Outcome:    "success",
	})
	require.NoError(t, err)

	entries, err := repo.Recent(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	// Newest first, with the unset timestamps filled from the clock.
	assert.Equal(t, "create", entries[0].Action)
	assert.True(t, entries[0].OccurredAt.Equal(time.Date(2026, 9, 1, 12, 5, 0, 0, time.UTC)))
	assert.Equal(t, "delete", entries[1].Action)
	assert.Equal(t, "remote refused", entries[1].Detail)
	assert.True(t, entries[1].OccurredAt.Equal(time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)))
}

func TestAuditRepoRecordKeepsExplicitTimestamp(t *testing.T) {
	repo := setupAuditDB(t)
	repo.Time = NewFixedTimeProvider(time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC))

	explicit := time.Date(2026, 8, 30, 9, 30, 0, 0, time.UTC)
	err := repo.Record(context.Background(), ports.AuditEntry{
		Actor:      "manager@moness.example",
		Action:     "prune",
		EntityKind: "booking",
		Outcome:    "success",
		OccurredAt: explicit,
	})
	require.NoError(t, err)

	entries, err := repo.Recent(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.True(t, entries[0].OccurredAt.Equal(explicit))
}

func TestRecentDefaultsLimit(t *testing.T) {
	repo := setupAuditDB(t)

	_, err := repo.Recent(context.Background(), 0)
	assert.NoError(t, err)
}

func TestMapWriteErrClassifiesUniqueViolation(t *testing.T) {
	repo := &AuditRepo{}

	err := repo.mapWriteErr(&pgconn.PgError{Code: pgerrcode.UniqueViolation})
	assert.ErrorIs(t, err, ErrDuplicateAuditEntry)

	plain := errors.New("connection reset")
	err = repo.mapWriteErr(plain)
	assert.NotErrorIs(t, err, ErrDuplicateAuditEntry)
	assert.ErrorIs(t, err, plain)
}

func TestNopAuditRecorderDiscards(t *testing.T) {
	var rec NopAuditRecorder
	assert.NoError(t, rec.Record(context.Background(), ports.AuditEntry{Action: "create"}))
}

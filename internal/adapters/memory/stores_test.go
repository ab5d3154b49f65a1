package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	redisadapter "github.com/moness/staff-portal/internal/adapters/redis"
	domainauth "github.com/moness/staff-portal/internal/domain/auth"
	"github.com/moness/staff-portal/internal/domain/model"
)

func TestSessionStoreRoundTrip(t *testing.T) {
	store := NewSessionStore()
	ctx := context.Background()

	sess := domainauth.Session{
		ID:        "s1",
		Token:     "tok",
		Role:      domainauth.RoleAllowed,
		ExpiresAt: time.Now().Add(time.Hour),
	}
	require.NoError(t, store.Save(ctx, sess))

	got, err := store.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, sess, got)

	require.NoError(t, store.Delete(ctx, "s1"))
	_, err = store.Get(ctx, "s1")
	assert.ErrorIs(t, err, redisadapter.ErrNotFound)
}

func TestSessionStoreDropsExpired(t *testing.T) {
	store := NewSessionStore()
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, domainauth.Session{
		ID:        "old",
		ExpiresAt: time.Now().Add(-time.Minute),
	}))

	_, err := store.Get(ctx, "old")
	assert.ErrorIs(t, err, redisadapter.ErrNotFound)
}

func TestAlertStoreLastWriteWins(t *testing.T) {
	store := NewAlertStore()
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "s1", model.AlertPayload{Heading: "First"}))
	require.NoError(t, store.Set(ctx, "s1", model.AlertPayload{Heading: "Second"}))

	got, err := store.Take(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, "Second", got.Heading)

	_, err = store.Take(ctx, "other")
	assert.ErrorIs(t, err, redisadapter.ErrNotFound)
}

func TestAlertStoreTakeConsumes(t *testing.T) {
	store := NewAlertStore()
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "s1", model.AlertPayload{Heading: "Once"}))

	_, err := store.Take(ctx, "s1")
	require.NoError(t, err)

	_, err = store.Take(ctx, "s1")
	assert.ErrorIs(t, err, redisadapter.ErrNotFound)
}

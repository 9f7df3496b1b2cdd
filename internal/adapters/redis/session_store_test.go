package redis

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainauth "github.com/hireloop/hrms-ui-api/internal/domain/auth"
	"github.com/hireloop/hrms-ui-api/internal/ports"
	"github.com/hireloop/hrms-ui-api/internal/testutil"
)

func testSession(id string) *domainauth.Session {
	return &domainauth.Session{
		ID:    id,
		Token: "backend-token",
		User: domainauth.UserSnapshot{
			ID:          "u1",
			Name:        "Priya Nair",
			Email:       "priya@hireloop.in",
			Role:        domainauth.RoleHR,
			Permissions: []domainauth.Permission{domainauth.PermCandidateView},
		},
		ExpiresAt: time.Now().Add(time.Hour),
	}
}

func TestSessionStoreRoundTrip(t *testing.T) {
	client := testutil.SetupTestRedis(t)
	store := NewSessionStore(client)
	ctx := context.Background()

	sess := testSession("s1")
	require.NoError(t, store.Save(ctx, sess))

	got, err := store.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, sess.Token, got.Token)
	assert.Equal(t, sess.User, got.User)
	assert.WithinDuration(t, sess.ExpiresAt, got.ExpiresAt, time.Second)

	require.NoError(t, store.Delete(ctx, "s1"))
	_, err = store.Get(ctx, "s1")
	assert.ErrorIs(t, err, ports.ErrNotFound)
}

func TestSessionStoreRejectsExpired(t *testing.T) {
	client := testutil.SetupTestRedis(t)
	store := NewSessionStore(client)

	sess := testSession("s2")
	sess.ExpiresAt = time.Now().Add(-time.Minute)
	assert.Error(t, store.Save(context.Background(), sess))
}

func TestSessionStoreMissingID(t *testing.T) {
	client := testutil.SetupTestRedis(t)
	store := NewSessionStore(client)
	ctx := context.Background()

	assert.Error(t, store.Save(ctx, &domainauth.Session{}))
	_, err := store.Get(ctx, "")
	assert.ErrorIs(t, err, ports.ErrNotFound)
	assert.NoError(t, store.Delete(ctx, ""))
}

func TestStatePersisterRoundTrip(t *testing.T) {
	client := testutil.SetupTestRedis(t)
	p := NewStatePersister(client, "")
	ctx := context.Background()

	require.NoError(t, p.Save(ctx, "theme", []byte(`"dark"`)))
	require.NoError(t, p.Save(ctx, "sidebarCollapsed", []byte(`true`)))

	got, err := p.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, []byte(`"dark"`), got["theme"])
	assert.Equal(t, []byte(`true`), got["sidebarCollapsed"])

	require.NoError(t, p.Clear(ctx))
	got, err = p.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestCacheRepoTTL(t *testing.T) {
	client := testutil.SetupTestRedis(t)
	repo := NewCacheRepo(client, "")
	ctx := context.Background()

	_, err := repo.Get(ctx, "stats")
	assert.ErrorIs(t, err, ports.ErrNotFound)

	require.NoError(t, repo.Set(ctx, "stats", []byte(`{"open":3}`), time.Minute))
	got, err := repo.Get(ctx, "stats")
	require.NoError(t, err)
	assert.Equal(t, []byte(`{"open":3}`), got)

	require.NoError(t, repo.Delete(ctx, "stats"))
	_, err = repo.Get(ctx, "stats")
	assert.ErrorIs(t, err, ports.ErrNotFound)
}

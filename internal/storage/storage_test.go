package storage

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *KVRepo {
	t.Helper()
	db, err := Open(context.Background(), filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewKVRepo(db)
}

func TestKVRepoRoundTrip(t *testing.T) {
	ctx := context.Background()
	kv := openTestDB(t)

	_, ok, err := kv.Get(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, kv.Set(ctx, "k", `{"a":1}`))
	require.NoError(t, kv.Set(ctx, "k", `{"a":2}`))

	v, ok, err := kv.Get(ctx, "k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `{"a":2}`, v)

	require.NoError(t, kv.Remove(ctx, "k"))
	_, ok, err = kv.Get(ctx, "k")
	require.NoError(t, err)
	assert.False(t, ok)

	// Removing an absent key is not an error.
	require.NoError(t, kv.Remove(ctx, "k"))
}

func TestMigrateIsIdempotent(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "twice.db")

	db, err := Open(ctx, path)
	require.NoError(t, err)
	require.NoError(t, NewKVRepo(db).Set(ctx, "k", "v"))
	require.NoError(t, db.Close())

	db, err = Open(ctx, path)
	require.NoError(t, err)
	defer db.Close()

	v, ok, err := NewKVRepo(db).Get(ctx, "k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "v", v)
}

func TestCompletionRepoListRecent(t *testing.T) {
	ctx := context.Background()
	db, err := Open(ctx, filepath.Join(t.TempDir(), "journal.db"))
	require.NoError(t, err)
	defer db.Close()

	repo := NewCompletionRepo(db)
	base := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		require.NoError(t, repo.RecordCompletion(ctx, 5*(i+1), base.Add(time.Duration(i)*time.Hour)))
	}

	recent, err := repo.ListRecent(ctx, 3)
	require.NoError(t, err)
	require.Len(t, recent, 3)
	assert.Equal(t, 25, recent[0].Points)
	assert.Equal(t, 15, recent[2].Points)

	n, err := repo.CountSince(ctx, base.Add(2*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	require.NoError(t, repo.Clear(ctx))
	recent, err = repo.ListRecent(ctx, 10)
	require.NoError(t, err)
	assert.Empty(t, recent)
}

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	require.NoError(t, m.Set(ctx, "a", "1"))
	v, ok, err := m.Get(ctx, "a")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "1", v)

	require.NoError(t, m.Remove(ctx, "a"))
	_, ok, _ = m.Get(ctx, "a")
	assert.False(t, ok)
}

func TestResolveDBPath(t *testing.T) {
	p, err := ResolveDBPath("/tmp/x.db")
	require.NoError(t, err)
	assert.Equal(t, "/tmp/x.db", p)

	def, err := ResolveDBPath("  ")
	require.NoError(t, err)
	assert.Equal(t, ".pookie4u.db", filepath.Base(def))

	home, err := ResolveDBPath("~/p.db")
	require.NoError(t, err)
	assert.Equal(t, "p.db", filepath.Base(home))
	assert.NotContains(t, home, "~")
}

func TestConnectRedisRejectsEmptyURL(t *testing.T) {
	_, err := ConnectRedis(context.Background(), " ", "pookie:")
	assert.Error(t, err)
}

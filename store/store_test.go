// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"path/filepath"
	"testing"

	mr "github.com/alicebob/miniredis/v2"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"github.com/danielhkuo/food-selector/metrics"
)

// runContract exercises the behaviour every backend must share.
func runContract(t *testing.T, s Store) {
	t.Helper()
	ctx := context.Background()

	_, err := s.Get(ctx, "missing")
	require.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, s.Set(ctx, "doc", []byte(`{"a":1}`)))
	got, err := s.Get(ctx, "doc")
	require.NoError(t, err)
	assert.JSONEq(t, `{"a":1}`, string(got))

	// Replace, not merge
	require.NoError(t, s.Set(ctx, "doc", []byte(`{"b":2}`)))
	got, err = s.Get(ctx, "doc")
	require.NoError(t, err)
	assert.JSONEq(t, `{"b":2}`, string(got))

	// Keys are independent
	require.NoError(t, s.Set(ctx, "other", []byte(`[]`)))
	got, err = s.Get(ctx, "doc")
	require.NoError(t, err)
	assert.JSONEq(t, `{"b":2}`, string(got))
}

func TestMemoryStore(t *testing.T) {
	s := NewMemoryStore()
	defer s.Close()
	runContract(t, s)
}

func TestMemoryStore_CopiesValues(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	value := []byte(`{"a":1}`)
	require.NoError(t, s.Set(ctx, "doc", value))
	value[2] = 'z'

	got, err := s.Get(ctx, "doc")
	require.NoError(t, err)
	assert.Equal(t, `{"a":1}`, string(got))

	got[2] = 'y'
	again, err := s.Get(ctx, "doc")
	require.NoError(t, err)
	assert.Equal(t, `{"a":1}`, string(again))
}

func TestFileStore(t *testing.T) {
	s, err := NewFileStore(filepath.Join(t.TempDir(), "data"))
	require.NoError(t, err)
	defer s.Close()
	runContract(t, s)
}

func TestFileStore_WritesIndentedJSON(t *testing.T) {
	dir := t.TempDir()
	s, err := NewFileStore(dir)
	require.NoError(t, err)

	require.NoError(t, s.Set(context.Background(), "votes", []byte(`{"notes":{}}`)))

	raw, err := os.ReadFile(filepath.Join(dir, "votes.json"))
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"notes\": {}\n}", string(raw))

	// No temp files left behind
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestFileStore_RequiresDir(t *testing.T) {
	_, err := NewFileStore("")
	require.Error(t, err)
}

func TestSQLStore_SQLite(t *testing.T) {
	db, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	db.SetMaxOpenConns(1)

	require.NoError(t, CreateSchema(db))
	// Idempotent
	require.NoError(t, CreateSchema(db))

	s := NewSQLStore(db)
	defer s.Close()
	runContract(t, s)

	var rows int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM kv_document`).Scan(&rows))
	assert.Equal(t, 2, rows)
}

func TestRedisStore(t *testing.T) {
	m, err := mr.Run()
	require.NoError(t, err)
	defer m.Close()

	client := redis.NewClient(&redis.Options{Addr: m.Addr()})
	s := NewRedisStore(client, "test:")
	defer s.Close()
	runContract(t, s)

	assert.True(t, m.Exists("test:doc"))
	assert.Equal(t, 0.0, m.TTL("test:doc").Seconds())
}

func TestRedisStore_DefaultPrefix(t *testing.T) {
	m, err := mr.Run()
	require.NoError(t, err)
	defer m.Close()

	client := redis.NewClient(&redis.Options{Addr: m.Addr()})
	s := NewRedisStore(client, "")
	require.NoError(t, s.Set(context.Background(), "doc", []byte(`{}`)))
	assert.True(t, m.Exists("food-selector:doc"))
}

func TestRedisStore_ConnectionError(t *testing.T) {
	m, err := mr.Run()
	require.NoError(t, err)
	client := redis.NewClient(&redis.Options{Addr: m.Addr(), MaxRetries: -1})
	s := NewRedisStore(client, "")
	m.Close()

	_, err = s.Get(context.Background(), "doc")
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrNotFound))
}

func TestNewMinIOStore_RequiresConfig(t *testing.T) {
	_, err := NewMinIOStore(context.Background(), MinIOConfig{})
	require.Error(t, err)

	_, err = NewMinIOStore(context.Background(), MinIOConfig{Endpoint: "localhost:9000"})
	require.Error(t, err)
}

type failingStore struct {
	*MemoryStore
}

func (f *failingStore) Set(ctx context.Context, key string, value []byte) error {
	return errors.New("disk full")
}

func TestInstrumented_CountsOutcomes(t *testing.T) {
	ctx := context.Background()
	getOK := testutil.ToFloat64(metrics.StoreOperations.WithLabelValues("get", metrics.OutcomeOK))
	getMissing := testutil.ToFloat64(metrics.StoreOperations.WithLabelValues("get", metrics.OutcomeNotFound))
	setErr := testutil.ToFloat64(metrics.StoreOperations.WithLabelValues("set", metrics.OutcomeError))

	mem := NewMemoryStore()
	s := NewInstrumented(mem)
	_, _ = s.Get(ctx, "doc")
	require.NoError(t, s.Set(ctx, "doc", []byte(`{}`)))
	_, err := s.Get(ctx, "doc")
	require.NoError(t, err)

	failing := NewInstrumented(&failingStore{MemoryStore: NewMemoryStore()})
	require.Error(t, failing.Set(ctx, "doc", []byte(`{}`)))

	assert.Equal(t, getOK+1, testutil.ToFloat64(metrics.StoreOperations.WithLabelValues("get", metrics.OutcomeOK)))
	assert.Equal(t, getMissing+1, testutil.ToFloat64(metrics.StoreOperations.WithLabelValues("get", metrics.OutcomeNotFound)))
	assert.Equal(t, setErr+1, testutil.ToFloat64(metrics.StoreOperations.WithLabelValues("set", metrics.OutcomeError)))
}

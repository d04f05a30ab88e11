// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package selector

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danielhkuo/food-selector/models"
	"github.com/danielhkuo/food-selector/store"
)

// flakyStore lets tests inject Get and Set failures.
type flakyStore struct {
	*store.MemoryStore
	getErr error
	setErr error
	sets   int
}

func (f *flakyStore) Get(ctx context.Context, key string) ([]byte, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.MemoryStore.Get(ctx, key)
}

func (f *flakyStore) Set(ctx context.Context, key string, value []byte) error {
	if f.setErr != nil {
		return f.setErr
	}
	f.sets++
	return f.MemoryStore.Set(ctx, key, value)
}

func newFlaky() *flakyStore {
	return &flakyStore{MemoryStore: store.NewMemoryStore()}
}

func storedDocument(t *testing.T, s store.Store) *models.Document {
	t.Helper()
	b, err := s.Get(context.Background(), DocumentKey)
	require.NoError(t, err)
	var doc models.Document
	require.NoError(t, json.Unmarshal(b, &doc))
	return &doc
}

func TestDocument_InitializesDefaults(t *testing.T) {
	st := newFlaky()
	svc := NewService(st)

	doc, err := svc.Document(context.Background())
	require.NoError(t, err)

	require.Len(t, doc.Restaurants, 7)
	for _, r := range doc.Restaurants {
		assert.True(t, r.IsDefault, r.ID)
		require.NotNil(t, r.Cuisine, r.ID)
		assert.Empty(t, r.SuggestedBy)
	}
	assert.Equal(t, "bishop-quigley", doc.Restaurants[0].ID)
	assert.Equal(t, "oak-hart-bbq", doc.Restaurants[6].ID)
	assert.Empty(t, doc.Votes)
	assert.Empty(t, doc.Notes)

	// Persisted immediately
	assert.Equal(t, 1, st.sets)
	stored := storedDocument(t, st)
	assert.Equal(t, doc.Restaurants, stored.Restaurants)
}

func TestDocument_Idempotent(t *testing.T) {
	st := newFlaky()
	svc := NewService(st)
	ctx := context.Background()

	first, err := svc.Document(ctx)
	require.NoError(t, err)
	second, err := svc.Document(ctx)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, st.sets, "second load must not rewrite the document")
}

func TestDocument_PersistedFieldNames(t *testing.T) {
	st := newFlaky()
	svc := NewService(st)
	ctx := context.Background()
	require.NoError(t, svc.Vote(ctx, "Alice", "chengdu", models.VoteUp))

	b, err := st.Get(ctx, DocumentKey)
	require.NoError(t, err)

	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(b, &raw))
	assert.Len(t, raw, 3)
	assert.Contains(t, raw, "restaurants")
	assert.Contains(t, raw, "votes")
	assert.Contains(t, raw, "notes")

	var restaurants []map[string]any
	require.NoError(t, json.Unmarshal(raw["restaurants"], &restaurants))
	assert.Equal(t, map[string]any{
		"id": "chengdu", "name": "Chengdu", "cuisine": "Sichuan Chinese", "isDefault": true,
	}, restaurants[4])
	assert.JSONEq(t, `{"Alice":{"chengdu":"up"}}`, string(raw["votes"]))
}

func TestDocument_MigratesLegacyShape(t *testing.T) {
	st := newFlaky()
	ctx := context.Background()
	legacy := `{
		"restaurants": [
			{"id": "chengdu", "name": "Chengdu", "isDefault": true},
			{"id": "pho-king", "name": "Pho King", "cuisine": null, "isDefault": false, "suggestedBy": "Bob", "suggestedAt": "2024-05-01T12:00:00.000Z"}
		],
		"votes": {"Bob": {"pho-king": "up", "chengdu": "sideways"}, "Eve": {"chengdu": ""}}
	}`
	require.NoError(t, st.MemoryStore.Set(ctx, DocumentKey, []byte(legacy)))

	svc := NewService(st)
	doc, err := svc.Document(ctx)
	require.NoError(t, err)

	require.NotNil(t, doc.Notes)
	assert.Empty(t, doc.Notes)
	require.NotNil(t, doc.Restaurants[0].Cuisine)
	assert.Equal(t, "Sichuan Chinese", *doc.Restaurants[0].Cuisine)
	assert.Nil(t, doc.Restaurants[1].Cuisine)
	assert.Equal(t, map[models.VisitorID]map[string]models.VoteType{
		"Bob": {"pho-king": models.VoteUp},
	}, doc.Votes)

	// Not written back on read
	assert.Equal(t, 0, st.sets)
	raw, err := st.Get(ctx, DocumentKey)
	require.NoError(t, err)
	assert.Equal(t, legacy, string(raw))

	// The next mutation persists the migrated shape
	require.NoError(t, svc.SetNote(ctx, "Bob", "pho-king", "great broth"))
	stored := storedDocument(t, st)
	assert.Equal(t, "Sichuan Chinese", *stored.Restaurants[0].Cuisine)
	assert.Equal(t, map[models.VisitorID]map[string]string{"Bob": {"pho-king": "great broth"}}, stored.Notes)
}

func TestDocument_ReinitializesOnUnreadableData(t *testing.T) {
	st := newFlaky()
	ctx := context.Background()
	require.NoError(t, st.MemoryStore.Set(ctx, DocumentKey, []byte(`{not json`)))

	doc, err := NewService(st).Document(ctx)
	require.NoError(t, err)
	assert.Len(t, doc.Restaurants, 7)
	assert.Equal(t, 1, st.sets)
}

func TestDocument_ReinitializesOnLoadError(t *testing.T) {
	st := newFlaky()
	st.getErr = errors.New("connection reset")

	doc, err := NewService(st).Document(context.Background())
	require.NoError(t, err)
	assert.Len(t, doc.Restaurants, 7)
	assert.Equal(t, 1, st.sets)
}

func TestDocument_InitSaveFailure(t *testing.T) {
	st := newFlaky()
	st.setErr = errors.New("read-only")

	_, err := NewService(st).Document(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrStoreFailure)
}

func TestWithKey(t *testing.T) {
	st := newFlaky()
	ctx := context.Background()
	_, err := NewService(st, WithKey("other-doc")).Document(ctx)
	require.NoError(t, err)

	_, err = st.Get(ctx, "other-doc")
	require.NoError(t, err)
	_, err = st.Get(ctx, DocumentKey)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestDefaultRestaurants_ReturnsCopy(t *testing.T) {
	a := DefaultRestaurants()
	a[0].Name = "changed"
	*a[1].Cuisine = "changed"

	b := DefaultRestaurants()
	assert.Equal(t, "Bishop Quigley", b[0].Name)
	assert.Equal(t, "Polish", *b[1].Cuisine)
}

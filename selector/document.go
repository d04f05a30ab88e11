// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package selector

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/danielhkuo/food-selector/models"
	"github.com/danielhkuo/food-selector/store"
)

// DocumentKey is the single storage key holding all state.
const DocumentKey = "food-selector-data"

// Service runs the read-modify-write operations against one document.
// It holds no lock: concurrent mutations race and the last save wins.
type Service struct {
	store store.Store
	key   string
	now   func() time.Time
}

type Option func(*Service)

// WithKey overrides DocumentKey.
func WithKey(key string) Option {
	return func(s *Service) { s.key = key }
}

// WithClock overrides time.Now for suggestedAt timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

func NewService(st store.Store, opts ...Option) *Service {
	s := &Service{store: st, key: DocumentKey, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func strPtr(s string) *string { return &s }

// DefaultRestaurants returns a fresh copy of the built-in set.
func DefaultRestaurants() []models.Restaurant {
	return []models.Restaurant{
		{ID: "bishop-quigley", Name: "Bishop Quigley", Cuisine: strPtr("Gastropub"), IsDefault: true},
		{ID: "taste-of-poland", Name: "Taste of Poland", Cuisine: strPtr("Polish"), IsDefault: true},
		{ID: "notes-of-marrakesh", Name: "Notes of Marrakesh", Cuisine: strPtr("Moroccan"), IsDefault: true},
		{ID: "arepa-bar", Name: "Arepa Bar", Cuisine: strPtr("Venezuelan"), IsDefault: true},
		{ID: "chengdu", Name: "Chengdu", Cuisine: strPtr("Sichuan Chinese"), IsDefault: true},
		{ID: "wildflower-cafe", Name: "Wildflower Cafe", Cuisine: strPtr("Cafe"), IsDefault: true},
		{ID: "oak-hart-bbq", Name: "Oak Hart BBQ", Cuisine: strPtr("BBQ"), IsDefault: true},
	}
}

// NewDocument returns the document a fresh store starts with.
func NewDocument() *models.Document {
	return &models.Document{
		Restaurants: DefaultRestaurants(),
		Votes:       map[models.VisitorID]map[string]models.VoteType{},
		Notes:       map[models.VisitorID]map[string]string{},
	}
}

// DecodeDocument parses a stored document and normalizes older shapes.
func DecodeDocument(data []byte) (*models.Document, error) {
	var doc models.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	Normalize(&doc)
	return &doc, nil
}

// Normalize brings a decoded document up to the current shape:
//   - missing votes/notes/restaurants become empty
//   - built-in restaurants missing a cuisine get it back
//   - votes other than up/down and blank notes are dropped
func Normalize(doc *models.Document) {
	if doc.Restaurants == nil {
		doc.Restaurants = []models.Restaurant{}
	}
	if doc.Votes == nil {
		doc.Votes = map[models.VisitorID]map[string]models.VoteType{}
	}
	if doc.Notes == nil {
		doc.Notes = map[models.VisitorID]map[string]string{}
	}

	defaults := make(map[string]models.Restaurant)
	for _, r := range DefaultRestaurants() {
		defaults[r.ID] = r
	}
	for i := range doc.Restaurants {
		r := &doc.Restaurants[i]
		if d, ok := defaults[r.ID]; ok && (r.Cuisine == nil || *r.Cuisine == "") {
			r.Cuisine = d.Cuisine
		}
	}

	for visitor, votes := range doc.Votes {
		for id, v := range votes {
			if v != models.VoteUp && v != models.VoteDown {
				delete(votes, id)
			}
		}
		if len(votes) == 0 {
			delete(doc.Votes, visitor)
		}
	}
	for visitor, notes := range doc.Notes {
		for id, text := range notes {
			if strings.TrimSpace(text) == "" {
				delete(notes, id)
			}
		}
		if len(notes) == 0 {
			delete(doc.Notes, visitor)
		}
	}
}

// Document loads the shared document, creating and saving the default one
// when nothing usable is stored. A read error or an undecodable value is
// treated the same as a missing key.
//
// Normalization happens in memory only; the migrated shape reaches storage
// with the next mutation that saves.
func (s *Service) Document(ctx context.Context) (*models.Document, error) {
	data, err := s.store.Get(ctx, s.key)
	switch {
	case err == nil:
		doc, derr := DecodeDocument(data)
		if derr == nil {
			return doc, nil
		}
		slog.Warn("stored document unreadable, reinitializing", "key", s.key, "error", derr)
	case errors.Is(err, store.ErrNotFound):
	default:
		slog.Warn("document load failed, reinitializing", "key", s.key, "error", err)
	}

	doc := NewDocument()
	if err := s.save(ctx, doc); err != nil {
		return nil, err
	}
	slog.Info("document initialized", "key", s.key, "restaurants", len(doc.Restaurants))
	return doc, nil
}

func (s *Service) save(ctx context.Context, doc *models.Document) error {
	b, err := json.Marshal(doc)
	if err != nil {
		return storeError("Failed to encode data", err)
	}
	if err := s.store.Set(ctx, s.key, b); err != nil {
		slog.Error("failed to save document", "key", s.key, "error", err)
		return storeError("Failed to save data", err)
	}
	slog.Debug("document saved", "key", s.key, "size", humanize.Bytes(uint64(len(b))))
	return nil
}

func findRestaurant(doc *models.Document, id string) *models.Restaurant {
	for i := range doc.Restaurants {
		if doc.Restaurants[i].ID == id {
			return &doc.Restaurants[i]
		}
	}
	return nil
}

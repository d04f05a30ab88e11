// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package selector

import (
	"context"
	"log/slog"
	"regexp"
	"strings"

	"github.com/danielhkuo/food-selector/models"
)

// suggestedAt uses the same layout as JavaScript's Date.toISOString.
const timestampLayout = "2006-01-02T15:04:05.000Z07:00"

var nonSlug = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify derives a restaurant id from its name:
// "Joe's Diner" -> "joe-s-diner".
func Slugify(name string) string {
	return nonSlug.ReplaceAllString(strings.ToLower(strings.TrimSpace(name)), "-")
}

// Identify validates newName and, when a different oldName is given, moves
// everything recorded under oldName to the trimmed newName. Entries already
// stored under newName are overwritten per restaurant.
// The document is only written when a rename happens.
func (s *Service) Identify(ctx context.Context, oldName models.VisitorID, newName string) (models.VisitorID, error) {
	name := models.VisitorID(strings.TrimSpace(newName))
	if name == "" {
		return "", errNameRequired
	}
	if oldName == "" || oldName == name {
		return name, nil
	}

	doc, err := s.Document(ctx)
	if err != nil {
		return "", err
	}

	if votes, ok := doc.Votes[oldName]; ok {
		merged := doc.Votes[name]
		if merged == nil {
			merged = make(map[string]models.VoteType, len(votes))
		}
		for id, v := range votes {
			merged[id] = v
		}
		doc.Votes[name] = merged
		delete(doc.Votes, oldName)
	}
	if notes, ok := doc.Notes[oldName]; ok {
		merged := doc.Notes[name]
		if merged == nil {
			merged = make(map[string]string, len(notes))
		}
		for id, text := range notes {
			merged[id] = text
		}
		doc.Notes[name] = merged
		delete(doc.Notes, oldName)
	}
	for i := range doc.Restaurants {
		if doc.Restaurants[i].SuggestedBy == oldName {
			doc.Restaurants[i].SuggestedBy = name
		}
	}

	if err := s.save(ctx, doc); err != nil {
		return "", err
	}
	slog.Info("visitor renamed", "from", oldName, "to", name)
	return name, nil
}

// Vote sets or clears visitor's vote on a restaurant. VoteNone clears.
func (s *Service) Vote(ctx context.Context, visitor models.VisitorID, restaurantID string, voteType models.VoteType) error {
	if visitor == "" {
		return errNoVisitor
	}
	if voteType != models.VoteUp && voteType != models.VoteDown && voteType != models.VoteNone {
		return errInvalidVoteType
	}

	doc, err := s.Document(ctx)
	if err != nil {
		return err
	}
	if findRestaurant(doc, restaurantID) == nil {
		return errNoRestaurant
	}

	if voteType == models.VoteNone {
		if votes, ok := doc.Votes[visitor]; ok {
			delete(votes, restaurantID)
			if len(votes) == 0 {
				delete(doc.Votes, visitor)
			}
		}
	} else {
		if doc.Votes[visitor] == nil {
			doc.Votes[visitor] = make(map[string]models.VoteType)
		}
		doc.Votes[visitor][restaurantID] = voteType
	}

	return s.save(ctx, doc)
}

// SetNote stores visitor's trimmed note on a restaurant; blank text removes it.
func (s *Service) SetNote(ctx context.Context, visitor models.VisitorID, restaurantID, text string) error {
	if visitor == "" {
		return errNoVisitor
	}

	doc, err := s.Document(ctx)
	if err != nil {
		return err
	}
	if findRestaurant(doc, restaurantID) == nil {
		return errNoRestaurant
	}

	text = strings.TrimSpace(text)
	if text == "" {
		if notes, ok := doc.Notes[visitor]; ok {
			delete(notes, restaurantID)
			if len(notes) == 0 {
				delete(doc.Notes, visitor)
			}
		}
	} else {
		if doc.Notes[visitor] == nil {
			doc.Notes[visitor] = make(map[string]string)
		}
		doc.Notes[visitor][restaurantID] = text
	}

	return s.save(ctx, doc)
}

// Suggest appends a new restaurant and upvotes it on behalf of the suggester.
// cuisine may be nil; a blank cuisine is stored as null.
func (s *Service) Suggest(ctx context.Context, visitor models.VisitorID, name string, cuisine *string) (*models.Restaurant, error) {
	if visitor == "" {
		return nil, errNoVisitor
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errSuggestName
	}

	doc, err := s.Document(ctx)
	if err != nil {
		return nil, err
	}

	id := Slugify(name)
	if findRestaurant(doc, id) != nil {
		return nil, errDuplicate
	}

	r := models.Restaurant{
		ID:          id,
		Name:        name,
		IsDefault:   false,
		SuggestedBy: visitor,
		SuggestedAt: s.now().UTC().Format(timestampLayout),
	}
	if cuisine != nil {
		if c := strings.TrimSpace(*cuisine); c != "" {
			r.Cuisine = &c
		}
	}

	doc.Restaurants = append(doc.Restaurants, r)
	if doc.Votes[visitor] == nil {
		doc.Votes[visitor] = make(map[string]models.VoteType)
	}
	doc.Votes[visitor][id] = models.VoteUp

	if err := s.save(ctx, doc); err != nil {
		return nil, err
	}
	slog.Info("restaurant suggested", "id", id, "by", visitor)
	return &r, nil
}

// Reset removes all of visitor's votes and notes. Restaurants they suggested stay.
func (s *Service) Reset(ctx context.Context, visitor models.VisitorID) error {
	if visitor == "" {
		return errNoVisitor
	}

	doc, err := s.Document(ctx)
	if err != nil {
		return err
	}

	changed := false
	if _, ok := doc.Votes[visitor]; ok {
		delete(doc.Votes, visitor)
		changed = true
	}
	if _, ok := doc.Notes[visitor]; ok {
		delete(doc.Notes, visitor)
		changed = true
	}
	if !changed {
		return nil
	}
	return s.save(ctx, doc)
}

// Restaurants loads the document and projects it for viewer.
func (s *Service) Restaurants(ctx context.Context, viewer models.VisitorID) ([]models.RestaurantView, error) {
	doc, err := s.Document(ctx)
	if err != nil {
		return nil, err
	}
	return Project(doc, viewer), nil
}

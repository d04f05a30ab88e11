// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package selector

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/danielhkuo/food-selector/models"
)

// Project computes the per-restaurant view of doc for viewer (may be empty).
//
// Tallies are always recomputed from doc.Votes. Voter and note lists are
// ordered by visitor name. Results are sorted by net score, highest first,
// then by name using English collation.
func Project(doc *models.Document, viewer models.VisitorID) []models.RestaurantView {
	visitors := sortedKeys(doc.Votes)
	authors := sortedKeys(doc.Notes)

	views := make([]models.RestaurantView, 0, len(doc.Restaurants))
	for _, r := range doc.Restaurants {
		v := models.RestaurantView{
			Restaurant: r,
			Upvoters:   []models.VisitorID{},
			Downvoters: []models.VisitorID{},
			Notes:      []models.NoteView{},
		}

		for _, visitor := range visitors {
			switch doc.Votes[visitor][r.ID] {
			case models.VoteUp:
				v.Upvoters = append(v.Upvoters, visitor)
			case models.VoteDown:
				v.Downvoters = append(v.Downvoters, visitor)
			}
		}
		for _, author := range authors {
			if text := doc.Notes[author][r.ID]; text != "" {
				v.Notes = append(v.Notes, models.NoteView{Author: author, Text: text})
			}
		}

		v.Upvotes = len(v.Upvoters)
		v.Downvotes = len(v.Downvoters)
		v.NetScore = v.Upvotes - v.Downvotes

		if viewer != "" {
			if vote, ok := doc.Votes[viewer][r.ID]; ok {
				v.UserVote = &vote
			}
			if note, ok := doc.Notes[viewer][r.ID]; ok {
				v.UserNote = &note
			}
		}

		views = append(views, v)
	}

	// A Collator is not safe for concurrent use; one per call.
	c := collate.New(language.English)
	sort.SliceStable(views, func(i, j int) bool {
		if views[i].NetScore != views[j].NetScore {
			return views[i].NetScore > views[j].NetScore
		}
		return c.CompareString(views[i].Name, views[j].Name) < 0
	})
	return views
}

func sortedKeys[V any](m map[models.VisitorID]V) []models.VisitorID {
	keys := make([]models.VisitorID, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

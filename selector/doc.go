// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package selector holds the shared-document logic: loading and migrating the
document, the five mutations, and the per-visitor projection.

# Service

	svc := selector.NewService(store.NewMemoryStore())

	name, err := svc.Identify(ctx, "", "Alice")
	err = svc.Vote(ctx, name, "chengdu", models.VoteUp)
	err = svc.SetNote(ctx, name, "chengdu", "spicy")
	r, err := svc.Suggest(ctx, name, "Joe's Diner", nil)
	err = svc.Reset(ctx, name)

	views, err := svc.Restaurants(ctx, name)

Each mutation loads the whole document, changes one thing, and saves the
whole document back. There is no locking: two concurrent mutations can both
load the same version, and the one that saves last silently discards the
other's change. That is acceptable for a handful of people picking lunch.

# Loading

Document returns the stored document after Normalize, or creates and saves
the seven built-in restaurants when nothing usable is stored. Normalize
fills in fields older documents lack; the result is written back by the next
mutation, not on read.

# Errors

Operations return *Error values whose Kind is one of ErrUnauthorized,
ErrInvalidInput, ErrNotFound, ErrConflict or ErrStoreFailure:

	if errors.Is(err, selector.ErrNotFound) { ... }

# Projection

Project derives tallies, voter lists, notes, and the viewer's own vote and
note for every restaurant, sorted by net score then name.
*/
package selector

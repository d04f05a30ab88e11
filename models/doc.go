// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines the persisted document, the projected views, and the
request/response types for the API.

# Document

The whole application state is one JSON document:

	{
	  "restaurants": [{"id": "chengdu", "name": "Chengdu", "cuisine": "Sichuan Chinese", "isDefault": true}],
	  "votes": {"Alice": {"chengdu": "up"}},
	  "notes": {"Alice": {"chengdu": "get the dry-fried green beans"}}
	}

Field names are part of the storage format and must not change.

# Domain Types

  - Document: restaurants, votes, notes
  - Restaurant: id, name, cuisine, isDefault, suggestedBy, suggestedAt
  - VisitorID: self-chosen display name
  - VoteType: up, down (none clears a vote)

# Projection Types

  - RestaurantView: Restaurant plus tallies, voter lists, notes, and the
    viewer's own vote and note
  - NoteView: author, text

# Request Types

  - SetUserRequest: name
  - VoteRequest: restaurantId, voteType
  - NoteRequest: restaurantId, note
  - SuggestRequest: name, cuisine

# Response Types

  - RestaurantsResponse: restaurants, currentUser
  - SuccessResponse: success
  - SetUserResponse: success, name
  - SuggestResponse: success, restaurant
  - ErrorResponse: error
*/
package models

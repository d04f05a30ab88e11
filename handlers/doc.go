// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the food selector API.

# Handler Types

RestaurantHandler wraps a selector.Service and the server config:

	h := handlers.NewRestaurantHandler(svc, cfg)

# Endpoints

	GET  /api/restaurants → ListRestaurants ({restaurants, currentUser})
	POST /api/set-user    → SetUser (sets the visitorId cookie)
	POST /api/vote        → Vote
	POST /api/note        → Note
	POST /api/suggest     → Suggest
	POST /api/reset       → Reset

The visitor is read from the visitorId cookie (package session). Mutations
without one fail with 401 "Please set your name first".

# Errors

Every failure body is {"error": message}. Selector error kinds map to status
codes in one place (statusFor):

	ErrUnauthorized → 401
	ErrInvalidInput → 400
	ErrConflict     → 400
	ErrNotFound     → 404
	anything else   → 500

Malformed request bodies get 400 "Invalid JSON".
*/
package handlers

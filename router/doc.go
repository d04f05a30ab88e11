// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the food selector API.

# Route Registration

NewRouter returns the complete handler, with CORS and panic recovery around
a Go 1.22+ method-pattern ServeMux:

	handler := router.NewRouter(svc, cfg, registry)

Wrong methods on known paths get 405 from the mux.

# Endpoints

Health and metrics:

	GET /health  - "OK"
	GET /metrics - Prometheus exposition (when a gatherer is given)

API (JSON):

	GET  /api/restaurants - Restaurants with tallies for the current visitor
	POST /api/set-user    - Pick or change the visitor name
	POST /api/vote        - Vote up, down or none
	POST /api/note        - Set or clear a note
	POST /api/suggest     - Add a restaurant
	POST /api/reset       - Remove the visitor's votes and notes

POST routes share a per-IP rate limiter (see middleware.RateLimiter).

Root:

	GET / - Static frontend from cfg.StaticDir, or a version banner
*/
package router

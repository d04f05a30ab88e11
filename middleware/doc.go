// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and helper functions.

# Request Logging

Wrap handlers with request logging:

	mux.HandleFunc("GET /api/restaurants", middleware.WithLogging(handler))

Logs request start and completion with a request id (X-Request-ID, generated
with a UUID when the client does not send one) and records the request
latency histogram.

# CORS and Panics

	handler := middleware.Recover(middleware.CORS(mux))

CORS reflects the request Origin (or "*"), allows GET, POST and OPTIONS with
the Content-Type header, and answers preflight requests with an empty 200.
Recover turns a handler panic into a 500 {"error": ...} response.

# Rate Limiting

	rl := middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)
	mux.HandleFunc("POST /api/vote", middleware.WithLogging(rl.Limit(h.Vote)))

One token bucket per client IP. A nil limiter (rps <= 0) passes everything.

# JSON Helpers

	middleware.JSONResponse(w, http.StatusOK, data)
	middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")

	var req models.VoteRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

# Client IP Extraction

	ip := middleware.GetClientIP(r)

Checks X-Forwarded-For, X-Real-IP, then RemoteAddr.
*/
package middleware

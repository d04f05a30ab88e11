// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the food selector API server.

The food selector helps a small group decide where to eat: visitors pick a
display name, vote restaurants up or down, leave notes and suggest new places.
All state lives in one JSON document under the key "food-selector-data".

# Starting the Server

With no configuration the server listens on :3000 and keeps the document in
./data/food-selector-data.json:

	go run .

Other backends:

	go run . -s memory
	go run . -s sqlite -d food.db
	go run . -s postgres -d "postgres://..."
	go run . -s redis -redis-addr localhost:6379
	go run . -s minio -minio-endpoint localhost:9000

A .env file in the working directory is loaded before flags are parsed. See
package cliparse for every flag and environment variable.

# Architecture

  - handlers: HTTP request handlers
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, rate limiting, panic recovery, JSON helpers
  - selector: Document lifecycle, mutations and the ranked projection
  - session: visitorId cookie encoding
  - store: Document store backends
  - metrics: Prometheus collectors
  - models: Document, request and response types
  - cliparse: Configuration parsing

Every mutation loads the whole document, changes it and saves it back without
locking, so concurrent writers can lose updates (last write wins).
*/
package main

// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package store provides whole-value key/value backends for the shared document.

# Contract

Every backend implements Store:

	b, err := s.Get(ctx, "food-selector-data") // ErrNotFound when absent
	err = s.Set(ctx, "food-selector-data", b)  // atomic whole-value replace

There are no transactions and no compare-and-swap. Two writers that read the
same value and both call Set race; the later Set wins.

# Backends

  - MemoryStore: in-process map
  - FileStore: <dir>/<key>.json, replaced via temp file + rename
  - SQLStore: kv_document table on SQLite (modernc.org/sqlite) or PostgreSQL (lib/pq)
  - RedisStore: one string key per document
  - MinIOStore: one object per document

# Schema Creation

SQLStore needs its table before first use:

	if err := store.CreateSchema(conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS.

# Metrics

Wrap any backend to count calls by operation and outcome:

	s = store.NewInstrumented(s)
*/
package store

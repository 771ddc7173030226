// Brewfinder - Coffee Shop Discovery and Scene Suitability Scoring
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/brewfinder

/*
Package database provides the DuckDB-backed persistence layer.

The package owns the full catalog schema and every query that touches it:

  - shops: the moderated coffee shop catalog with per-shop features
  - favorites: (shop, user) pairs, unique per pair
  - visits: append-only visit log
  - reviews: one structured review per (shop, user) pair
  - submissions: user-proposed shops awaiting moderation
  - reports: abuse reports against reviews, shops, or users

Aggregate shop ratings are derived data: RefreshShopRating and
RefreshAllShopRatings recompute them as the mean of each review's
six-attribute average (busyness excluded). Callers never write the
rating column directly.

Connection Management:

New opens a single DuckDB file (or ":memory:") with a tuned connection
string (thread count, memory cap) and configures the database/sql pool
for DuckDB's in-process model. Every query path goes through
ensureContext, which applies a 30-second timeout when the caller's
context has no deadline.

Error Semantics:

Lookup misses return ErrNotFound and uniqueness violations return
ErrDuplicate, both wrapped with operation context. Callers branch with
errors.Is and map the sentinels to HTTP 404/409.

Thread Safety:

All methods are safe for concurrent use; database/sql serializes access
to the underlying DuckDB connection pool.
*/
package database

// Brewfinder - Coffee Shop Discovery and Scene Suitability Scoring
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/brewfinder

/*
Package recommend produces personalized, scene-grouped coffee shop
recommendations.

The engine derives a preference profile from shops the user has favorited,
scores every approved shop the user has not yet favorited or visited
against that profile, and groups the top candidates into one bucket per
scene (Study, Remote Work, Date, Meeting). Each bucket is capped, and thin
buckets are backfilled with the shops most suitable for that scene so every
scene has something to show.

Data access goes through the DataProvider interface so the database package
can implement it without a circular import. Responses are cached per user
in an LRU cache with a bounded TTL; favorite and visit mutations are not
eagerly invalidated, so staleness is bounded by the TTL.

The ranking itself is deterministic: the same favorites, visits, and
catalog always produce the same response.
*/
package recommend

// Brewfinder - Coffee Shop Discovery and Scene Suitability Scoring
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/brewfinder

/*
Package models defines data structures for the Brewfinder application.

This package contains all data models used throughout the application:
database schemas, API request/response structures, and internal data
transfer objects. It serves as the single source of truth for data
structure definitions.

Key Components:

  - Shop: Core catalog model with six rated features and aggregate rating
  - Scene: Closed enum of usage scenarios (Study, Remote Work, Date, Meeting)
  - SuitabilityScore: Weighted 0-100 scene fit with component breakdown
  - Review, Favorite, Visit: Per-user activity models
  - Submission, Report: Moderation queue models
  - APIResponse: Standardized API response wrapper

Model Categories:

1. Catalog Models:
  - Shop: Approved coffee shop listings
  - ShopFeatures: The six 1-5 rated attributes (noise, outlets, wifi,
    seating, lighting, privacy)

2. Activity Models:
  - Review: One structured review per (shop, user), seven 1-5 ratings
  - Favorite: Unique per (shop, user)
  - Visit: Append-only visit log

3. Moderation Models:
  - Submission: User-proposed listings with a pending/approved/rejected
    lifecycle
  - Report: Abuse reports against reviews, shops, or users

4. API Models:
  - APIResponse, APIError, Metadata, PaginationInfo

All models use snake_case JSON tags; list-valued fields persist as JSON
columns in DuckDB.
*/
package models

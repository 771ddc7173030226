// Brewfinder - Coffee Shop Discovery and Scene Suitability Scoring
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/brewfinder

/*
Package supervisor provides Suture-based process supervision for
Brewfinder.

The tree has two layers under the root:

  - data: background jobs against the store (rating refresh)
  - api: the HTTP server

The split gives failure isolation: a crashing background job is
restarted by its layer supervisor without disturbing the API layer.
Supervisor events are logged through sutureslog into the zerolog
pipeline via the logging package's slog adapter.
*/
package supervisor

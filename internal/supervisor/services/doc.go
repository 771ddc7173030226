// Brewfinder - Coffee Shop Discovery and Scene Suitability Scoring
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/brewfinder

// Package services provides Suture service wrappers for application
// components: the HTTP server and the rating refresh job. Each wrapper
// translates its component's lifecycle into suture's context-aware
// Serve pattern.
package services

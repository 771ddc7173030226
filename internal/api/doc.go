// Brewfinder - Coffee Shop Discovery and Scene Suitability Scoring
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/brewfinder

/*
Package api provides the HTTP layer: routing, handlers, and the
middleware wiring that fronts them.

Routing uses Chi with ecosystem middleware (go-chi/cors for CORS,
go-chi/httprate for rate limiting) plus the in-house request ID,
compression, and Prometheus middleware from internal/middleware.

Every response uses the APIResponse envelope:

	{
	  "status": "success" | "error",
	  "data": ...,
	  "metadata": {"timestamp": ..., "query_time_ms": ...},
	  "error": {"code": ..., "message": ...}
	}

Identity:

The API trusts a fronting proxy to authenticate users and forward
identity as headers: X-User-ID carries the user identifier and
X-User-Role carries "user" or "admin". Endpoints that need identity
return 401 UNAUTHORIZED without X-User-ID; admin endpoints return
403 FORBIDDEN for non-admin roles.

Error Codes:

	VALIDATION_ERROR  400  invalid input
	UNAUTHORIZED      401  missing identity
	FORBIDDEN         403  insufficient role
	NOT_FOUND         404  resource does not exist
	CONFLICT          409  duplicate favorite/review/submission
	DATABASE_ERROR    500  query failure
	INTERNAL_ERROR    500  anything else

Handlers depend on the Store interface rather than the concrete
database type, so tests run against an in-memory fake.
*/
package api

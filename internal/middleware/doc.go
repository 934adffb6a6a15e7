// Tableside - Restaurant Table Ordering Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tableside

/*
Package middleware provides HTTP middleware shared by every Tableside route.

Key Components:

  - Request ID: UUID-based request tracking, propagated into log lines
  - Prometheus Metrics: per-route request counts, latencies and in-flight gauge

Both are written against http.HandlerFunc and adapted to chi's
func(http.Handler) http.Handler form by the api package:

	r.Use(chiMiddleware(middleware.RequestID))
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(chiMiddleware(middleware.PrometheusMetrics))

Metrics are labelled with the chi route pattern, so /table/{table_id} is one
series regardless of how many tables exist.

Thread Safety:

All middleware is safe for concurrent use; per-request state lives on the
request context or in a per-request response writer wrapper.
*/
package middleware

// Tableside - Restaurant Table Ordering Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tableside

// Package main provides the Tableside HTTP server
//
// @title Tableside API
// @version 1.0
// @description Table registration, menu listing, order placement and per-table QR codes for a restaurant.
// @description
// @description ## Error Responses
// @description
// @description Successful resource calls return the document itself. Errors share one envelope:
// @description ```json
// @description {
// @description   "success": false,
// @description   "error": {
// @description     "code": "NOT_FOUND",
// @description     "message": "Table not found",
// @description     "request_id": "5f0c..."
// @description   }
// @description }
// @description ```
// @description
// @description ## Rate Limiting
// @description
// @description Default rate limit: 1000 requests per minute per IP address on ordering endpoints.
//
// @contact.name GitHub Repository
// @contact.url https://github.com/tomtom215/tableside/issues
//
// @license.name AGPL-3.0-or-later
// @license.url https://www.gnu.org/licenses/agpl-3.0.html
//
// @host localhost:8000
// @BasePath /
// @schemes http https
//
// @tag.name Tables
// @tag.description Table registration, lookup and printable QR codes
//
// @tag.name Orders
// @tag.description Order placement and lookup
//
// @tag.name Menu
// @tag.description Menu listing
//
// @tag.name Health
// @tag.description Liveness and readiness probes
package main

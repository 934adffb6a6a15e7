// Tableside - Restaurant Table Ordering Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tableside

/*
Package api exposes the Tableside HTTP interface.

Routes:

	POST /table                   register a table
	GET  /table/{table_id}        fetch a table
	POST /order                   place an order against a table
	GET  /order/{order_id}        fetch an order
	GET  /menu                    list the menu (capped by api.menu_limit)
	GET  /generate_qr/{table_id}  PNG code linking to the table's ordering page
	GET  /health, /health/live, /health/ready
	GET  /metrics                 Prometheus exposition
	GET  /swagger/*               API documentation

Resource endpoints return their documents directly. Failures use one
envelope across all routes:

	{"success": false, "error": {"code": "NOT_FOUND", "message": "Table not found", "request_id": "..."}}

A malformed identifier is a 400 and is rejected before the store is
touched. Store failures are logged with the operation and identifier and
reported as a generic 500.
*/
package api

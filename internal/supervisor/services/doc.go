// Tableside - Restaurant Table Ordering Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tableside

/*
Package services adapts Tableside components to suture's Serve(ctx) error
lifecycle.

HTTPServerService runs an *http.Server and drains it with Shutdown when
the supervisor stops it.

StoreMonitorService pings the document store on an interval and publishes
mongodb_up. It logs when the store goes away and when it comes back.

Every service implements fmt.Stringer so supervisor events name it.
*/
package services

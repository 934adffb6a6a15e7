// Tableside - Restaurant Table Ordering Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tableside

// Package testinfra provides container-backed infrastructure for integration tests.
//
// Everything here is behind the integration build tag:
//
//	go test -tags integration ./...
//
// # MongoDB Container
//
// MongoContainer runs a real mongod so the store is exercised against the
// actual driver and server instead of a fake:
//
//	func TestStore(t *testing.T) {
//	    testinfra.SkipIfNoDocker(t)
//	    ctx := context.Background()
//	    mongo, err := testinfra.NewMongoContainer(ctx)
//	    if err != nil {
//	        t.Fatal(err)
//	    }
//	    testinfra.CleanupContainer(t, mongo)
//	    // connect to mongo.URI
//	}
//
// Tests skip when no Docker daemon is reachable. The first run pulls the image.
package testinfra

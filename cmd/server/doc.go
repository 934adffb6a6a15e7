// Tableside - Restaurant Table Ordering Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tableside

/*
Package main is the entry point for the Tableside server.

Tableside backs a table-side ordering flow: staff register tables and print
a QR code for each, diners scan it, browse the menu and place orders
against their table.

# Application Architecture

	RootSupervisor ("tableside")
	├── DataSupervisor ("data-layer")
	│   └── Store monitor (mongodb_up gauge)
	└── APISupervisor ("api-layer")
	    └── HTTP Server (chi router)

Startup order:

 1. Configuration: koanf v2 (defaults, optional YAML file, environment)
 2. Logging: zerolog, JSON or console
 3. Document store: MongoDB connect and ping, optional menu seeding
 4. QR generator
 5. Router and middleware
 6. Supervisor tree, until SIGINT or SIGTERM

# Configuration

Two settings have no default and must be provided:

	MONGODB_URI=mongodb://localhost:27017
	QR_BASE_URL=https://order.example.com

Everything else is optional; see package config for the full list.

# Running

	MONGODB_URI=mongodb://localhost:27017 \
	QR_BASE_URL=http://localhost:3000 \
	SEED_MENU=true \
	./tableside

The server listens on port 8000 by default.
*/
package main

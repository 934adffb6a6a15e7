// Tableside - Restaurant Table Ordering Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tableside

/*
Package config provides centralized configuration management for Tableside.

Configuration is loaded in layers with koanf, each layer overriding the
previous one:

 1. Built-in defaults (defaultConfig)
 2. An optional YAML file (CONFIG_PATH, then config.yaml, then /etc/tableside/config.yaml)
 3. Environment variables, through an explicit name mapping

# Environment Variables

Server:
  - HTTP_HOST: Bind address (default: 0.0.0.0)
  - HTTP_PORT: Listen port (default: 8000)
  - SERVER_TIMEOUT: Read/write timeout (default: 30s)
  - SHUTDOWN_TIMEOUT: Graceful shutdown budget (default: 10s)
  - ENVIRONMENT: development, staging or production

Document store:
  - MONGODB_URI: Connection string (required)
  - MONGODB_DATABASE: Logical database (default: restaurant_db)
  - MONGODB_MENU_COLLECTION, MONGODB_ORDERS_COLLECTION, MONGODB_TABLES_COLLECTION
  - MONGODB_MAX_POOL_SIZE, MONGODB_MIN_POOL_SIZE
  - MONGODB_CONNECT_TIMEOUT, MONGODB_OPERATION_TIMEOUT, MONGODB_HEALTH_INTERVAL
  - SEED_MENU: Insert the starter menu when the menu collection is empty

API:
  - MENU_LIMIT: Maximum items returned by GET /menu (default: 100)
  - MAX_BODY_BYTES: Request body limit (default: 1 MiB)

QR codes:
  - QR_BASE_URL: Ordering page base URL encoded into table codes (required)
  - QR_RECOVERY_LEVEL: low, medium, high or highest (default: medium)
  - QR_MODULE_SIZE: Pixels per module (default: 10)
  - QR_CACHE_SIZE: Rendered images kept in memory, 0 disables (default: 1024)
  - QR_CACHE_TTL: How long a rendered image is reused (default: 1h)

Security:
  - CORS_ORIGINS: Comma-separated allowed origins (default: *)
  - RATE_LIMIT_REQUESTS, RATE_LIMIT_WINDOW, DISABLE_RATE_LIMIT (default: 1000 per 1m per client IP)

Logging:
  - LOG_LEVEL, LOG_FORMAT, LOG_CALLER

# Usage

	cfg, err := config.Load()
	if err != nil {
	    logging.Fatal().Err(err).Msg("Failed to load configuration")
	}
*/
package config

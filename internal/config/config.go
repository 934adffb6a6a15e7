// Tableside - Restaurant Table Ordering Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tableside

package config

import (
	"fmt"
	"time"
)

// Config holds all application configuration.
type Config struct {
	Server   ServerConfig   `koanf:"server"`
	Database DatabaseConfig `koanf:"database"`
	API      APIConfig      `koanf:"api"`
	QR       QRConfig       `koanf:"qr"`
	Security SecurityConfig `koanf:"security"`
	Logging  LoggingConfig  `koanf:"logging"`
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Port            int           `koanf:"port"`
	Host            string        `koanf:"host"`
	Timeout         time.Duration `koanf:"timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
	Environment     string        `koanf:"environment"` // "development", "staging", "production"
}

// DatabaseConfig holds the document store connection settings.
type DatabaseConfig struct {
	// URI is the MongoDB connection string. It has no default and must be
	// supplied through the config file or MONGODB_URI.
	URI string `koanf:"uri"`

	// Name is the logical database holding the three collections.
	Name string `koanf:"name"`

	MenuCollection   string `koanf:"menu_collection"`
	OrdersCollection string `koanf:"orders_collection"`
	TablesCollection string `koanf:"tables_collection"`

	MaxPoolSize uint64 `koanf:"max_pool_size"`
	MinPoolSize uint64 `koanf:"min_pool_size"`

	// ConnectTimeout bounds the initial connect and ping at startup.
	ConnectTimeout time.Duration `koanf:"connect_timeout"`

	// OperationTimeout bounds every individual store call made on behalf of
	// a request.
	OperationTimeout time.Duration `koanf:"operation_timeout"`

	// HealthInterval is how often the background monitor pings the store.
	HealthInterval time.Duration `koanf:"health_interval"`

	// SeedMenu inserts the starter menu when the menu collection is empty.
	SeedMenu bool `koanf:"seed_menu"`
}

// APIConfig holds API response settings
type APIConfig struct {
	// MenuLimit caps the number of items returned by GET /menu.
	MenuLimit int `koanf:"menu_limit"`

	// MaxBodyBytes caps JSON request bodies.
	MaxBodyBytes int64 `koanf:"max_body_bytes"`
}

// QRConfig holds table code image settings
type QRConfig struct {
	// BaseURL is the ordering frontend; codes encode <BaseURL>/table/<table_id>.
	BaseURL string `koanf:"base_url"`

	// RecoveryLevel is the error correction level: low, medium, high, highest.
	RecoveryLevel string `koanf:"recovery_level"`

	// ModuleSize is the width in pixels of a single QR module.
	ModuleSize int `koanf:"module_size"`

	// CacheSize is how many rendered images are kept in memory. Zero
	// disables the cache.
	CacheSize int `koanf:"cache_size"`

	// CacheTTL bounds how long a rendered image is reused.
	CacheTTL time.Duration `koanf:"cache_ttl"`
}

// SecurityConfig holds cross-origin and rate limit settings
type SecurityConfig struct {
	CORSOrigins       []string      `koanf:"cors_origins"`
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	// Level is the minimum log level: trace, debug, info, warn, error.
	Level string `koanf:"level"`

	// Format is the output format: json or console.
	Format string `koanf:"format"`

	// Caller includes caller file and line number in logs.
	Caller bool `koanf:"caller"`
}

// Load reads configuration from defaults, an optional config file and the
// environment, then validates it.
func Load() (*Config, error) {
	return LoadWithKoanf()
}

// IsDevelopment reports whether the server runs in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Server.Environment == "" || c.Server.Environment == "development"
}

// Addr returns the host:port the HTTP server listens on.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

// Tableside - Restaurant Table Ordering Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tableside

package config

import (
	"fmt"
	"strings"
)

var validLogLevels = map[string]bool{
	"trace": true,
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

var validLogFormats = map[string]bool{
	"json":    true,
	"console": true,
}

var validRecoveryLevels = map[string]bool{
	"low":     true,
	"medium":  true,
	"high":    true,
	"highest": true,
}

var validEnvironments = map[string]bool{
	"development": true,
	"staging":     true,
	"production":  true,
}

// Validate checks that required configuration is present and valid
func (c *Config) Validate() error {
	if err := c.validateServer(); err != nil {
		return err
	}

	if err := c.validateDatabase(); err != nil {
		return err
	}

	if err := c.validateAPI(); err != nil {
		return err
	}

	if err := c.validateQR(); err != nil {
		return err
	}

	if err := c.validateSecurity(); err != nil {
		return err
	}

	return c.validateLogging()
}

func (c *Config) validateServer() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("HTTP_PORT must be between 1 and 65535")
	}
	if c.Server.Timeout <= 0 {
		return fmt.Errorf("SERVER_TIMEOUT must be positive")
	}
	if c.Server.ShutdownTimeout <= 0 {
		return fmt.Errorf("SHUTDOWN_TIMEOUT must be positive")
	}
	if c.Server.Environment != "" && !validEnvironments[c.Server.Environment] {
		return fmt.Errorf("ENVIRONMENT must be one of: development, staging, production")
	}
	return nil
}

// validateDatabase validates the document store connection settings
func (c *Config) validateDatabase() error {
	if c.Database.URI == "" {
		return fmt.Errorf("MONGODB_URI is required")
	}
	if err := validateMongoURI(c.Database.URI); err != nil {
		return fmt.Errorf("MONGODB_URI is invalid: %w", err)
	}
	if strings.TrimSpace(c.Database.Name) == "" {
		return fmt.Errorf("MONGODB_DATABASE must not be empty")
	}

	collections := map[string]string{
		"MONGODB_MENU_COLLECTION":   c.Database.MenuCollection,
		"MONGODB_ORDERS_COLLECTION": c.Database.OrdersCollection,
		"MONGODB_TABLES_COLLECTION": c.Database.TablesCollection,
	}
	for name, value := range collections {
		if strings.TrimSpace(value) == "" {
			return fmt.Errorf("%s must not be empty", name)
		}
	}

	if c.Database.MinPoolSize > c.Database.MaxPoolSize {
		return fmt.Errorf("MONGODB_MIN_POOL_SIZE (%d) must not exceed MONGODB_MAX_POOL_SIZE (%d)",
			c.Database.MinPoolSize, c.Database.MaxPoolSize)
	}
	if c.Database.ConnectTimeout <= 0 {
		return fmt.Errorf("MONGODB_CONNECT_TIMEOUT must be positive")
	}
	if c.Database.OperationTimeout <= 0 {
		return fmt.Errorf("MONGODB_OPERATION_TIMEOUT must be positive")
	}
	if c.Database.HealthInterval <= 0 {
		return fmt.Errorf("MONGODB_HEALTH_INTERVAL must be positive")
	}
	return nil
}

func (c *Config) validateAPI() error {
	if c.API.MenuLimit < 1 {
		return fmt.Errorf("MENU_LIMIT must be at least 1, got %d", c.API.MenuLimit)
	}
	if c.API.MaxBodyBytes < 1 {
		return fmt.Errorf("MAX_BODY_BYTES must be at least 1, got %d", c.API.MaxBodyBytes)
	}
	return nil
}

// validateQR validates the table code settings
func (c *Config) validateQR() error {
	if c.QR.BaseURL == "" {
		return fmt.Errorf("QR_BASE_URL is required")
	}
	if err := validateBaseURL(c.QR.BaseURL, "QR_BASE_URL"); err != nil {
		return err
	}
	if !validRecoveryLevels[strings.ToLower(c.QR.RecoveryLevel)] {
		return fmt.Errorf("QR_RECOVERY_LEVEL must be one of: low, medium, high, highest")
	}
	if c.QR.ModuleSize < 1 || c.QR.ModuleSize > 100 {
		return fmt.Errorf("QR_MODULE_SIZE must be between 1 and 100, got %d", c.QR.ModuleSize)
	}
	if c.QR.CacheSize < 0 {
		return fmt.Errorf("QR_CACHE_SIZE must not be negative, got %d", c.QR.CacheSize)
	}
	if c.QR.CacheSize > 0 && c.QR.CacheTTL <= 0 {
		return fmt.Errorf("QR_CACHE_TTL must be positive when the cache is enabled")
	}
	return nil
}

func (c *Config) validateSecurity() error {
	if len(c.Security.CORSOrigins) == 0 {
		return fmt.Errorf("CORS_ORIGINS must list at least one origin (use * for any)")
	}
	if c.Security.RateLimitDisabled {
		return nil
	}
	if c.Security.RateLimitReqs < 1 {
		return fmt.Errorf("RATE_LIMIT_REQUESTS must be at least 1 when rate limiting is enabled")
	}
	if c.Security.RateLimitWindow <= 0 {
		return fmt.Errorf("RATE_LIMIT_WINDOW must be positive when rate limiting is enabled")
	}
	return nil
}

func (c *Config) validateLogging() error {
	if !validLogLevels[c.Logging.Level] {
		return fmt.Errorf("LOG_LEVEL must be one of: trace, debug, info, warn, error")
	}
	if c.Logging.Format != "" && !validLogFormats[c.Logging.Format] {
		return fmt.Errorf("LOG_FORMAT must be one of: json, console")
	}
	return nil
}

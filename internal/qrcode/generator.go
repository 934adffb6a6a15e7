// Tableside - Restaurant Table Ordering Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tableside

// Package qrcode renders the scannable code printed on each table. The code
// links diners to the ordering page for that table.
package qrcode

import (
	"fmt"
	"strings"

	goqrcode "github.com/skip2/go-qrcode"

	"github.com/tomtom215/tableside/internal/cache"
	"github.com/tomtom215/tableside/internal/config"
	"github.com/tomtom215/tableside/internal/metrics"
	"github.com/tomtom215/tableside/internal/models"
)

// DefaultPixelsPerModule is used when a Generator has no module size set.
const DefaultPixelsPerModule = 10

// Generator encodes table links as PNG images. It is safe for concurrent
// use.
type Generator struct {
	// BaseURL is the ordering frontend root, e.g. https://order.example.com.
	BaseURL string
	// Level is the error correction level.
	Level goqrcode.RecoveryLevel
	// PixelsPerModule is the edge length of one module in the output image.
	PixelsPerModule int
	// Cache holds rendered images by table ID. Nil disables caching.
	Cache *cache.LRU
}

// NewGenerator builds a Generator from the qr configuration section.
func NewGenerator(cfg *config.QRConfig) (*Generator, error) {
	level, err := ParseRecoveryLevel(cfg.RecoveryLevel)
	if err != nil {
		return nil, err
	}
	g := &Generator{
		BaseURL:         cfg.BaseURL,
		Level:           level,
		PixelsPerModule: cfg.ModuleSize,
	}
	if cfg.CacheSize > 0 {
		g.Cache = cache.NewLRU(cfg.CacheSize, cfg.CacheTTL)
	}
	return g, nil
}

// ParseRecoveryLevel maps a configured level name to the encoder constant.
func ParseRecoveryLevel(name string) (goqrcode.RecoveryLevel, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "low":
		return goqrcode.Low, nil
	case "", "medium":
		return goqrcode.Medium, nil
	case "high":
		return goqrcode.High, nil
	case "highest":
		return goqrcode.Highest, nil
	default:
		return goqrcode.Medium, fmt.Errorf("unknown QR recovery level %q", name)
	}
}

// URL returns the link encoded for the table: <base>/table/<id>.
func (g *Generator) URL(tableID models.ID) string {
	return strings.TrimRight(g.BaseURL, "/") + "/table/" + tableID.String()
}

// PNG encodes the table link. The image keeps the standard four-module
// quiet zone, and identical input always yields identical bytes. The
// returned slice may be shared with the cache and must not be modified.
func (g *Generator) PNG(tableID models.ID) ([]byte, error) {
	if g.Cache == nil {
		return g.render(tableID)
	}

	key := tableID.String()
	if png, ok := g.Cache.Get(key); ok {
		metrics.QRCacheLookups.WithLabelValues("hit").Inc()
		return png, nil
	}
	metrics.QRCacheLookups.WithLabelValues("miss").Inc()

	png, err := g.render(tableID)
	if err != nil {
		return nil, err
	}
	g.Cache.Add(key, png)
	return png, nil
}

func (g *Generator) render(tableID models.ID) ([]byte, error) {
	q, err := goqrcode.New(g.URL(tableID), g.Level)
	if err != nil {
		return nil, fmt.Errorf("encode table %s: %w", tableID, err)
	}

	size := g.PixelsPerModule
	if size <= 0 {
		size = DefaultPixelsPerModule
	}

	// A negative size asks the encoder for a fixed number of pixels per module.
	png, err := q.PNG(-size)
	if err != nil {
		return nil, fmt.Errorf("render table %s: %w", tableID, err)
	}
	return png, nil
}

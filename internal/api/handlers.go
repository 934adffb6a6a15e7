// Tableside - Restaurant Table Ordering Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tableside

package api

import (
	"context"
	"time"

	"github.com/tomtom215/tableside/internal/config"
	"github.com/tomtom215/tableside/internal/models"
	"github.com/tomtom215/tableside/internal/qrcode"
)

// Store is the persistence the handlers depend on. *database.Store
// satisfies it; tests substitute an in-memory implementation.
type Store interface {
	CreateTable(ctx context.Context, table models.Table) (models.ID, error)
	GetTable(ctx context.Context, id models.ID) (*models.Table, error)
	ListMenu(ctx context.Context, limit int) ([]models.MenuItem, error)
	PlaceOrder(ctx context.Context, order models.Order) (models.ID, error)
	GetOrder(ctx context.Context, id models.ID) (*models.Order, error)
	Ping(ctx context.Context) error
}

// Handler contains dependencies for API handlers
//
// Handler methods are split across files by resource:
//   - handlers_tables.go: table registration and lookup
//   - handlers_orders.go: order placement and lookup
//   - handlers_menu.go: menu listing
//   - handlers_qr.go: table code images
//   - handlers_health.go: liveness and readiness probes
type Handler struct {
	store        Store
	qr           *qrcode.Generator
	menuLimit    int
	maxBodyBytes int64
	version      string
	startTime    time.Time
}

// NewHandler creates a new API handler.
//
// Example:
//
//	handler := api.NewHandler(store, generator, &cfg.API, version)
//	router := api.NewRouter(handler, api.NewChiMiddlewareFromConfig(&cfg.Security))
//	http.ListenAndServe(cfg.Addr(), router.SetupChi())
func NewHandler(store Store, qr *qrcode.Generator, cfg *config.APIConfig, version string) *Handler {
	return &Handler{
		store:        store,
		qr:           qr,
		menuLimit:    cfg.MenuLimit,
		maxBodyBytes: cfg.MaxBodyBytes,
		version:      version,
		startTime:    time.Now(),
	}
}

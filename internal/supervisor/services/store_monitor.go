// Tableside - Restaurant Table Ordering Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tableside

package services

import (
	"context"
	"time"

	"github.com/tomtom215/tableside/internal/logging"
	"github.com/tomtom215/tableside/internal/metrics"
)

// DefaultStoreMonitorInterval is used when no interval is configured.
const DefaultStoreMonitorInterval = 30 * time.Second

// Pinger is satisfied by *database.Store.
type Pinger interface {
	Ping(ctx context.Context) error
}

// StoreMonitorService pings the document store on a fixed interval and
// publishes the result as the mongodb_up gauge. State changes are logged
// once, not on every tick.
type StoreMonitorService struct {
	store    Pinger
	interval time.Duration
	name     string

	// up is nil until the first ping completes.
	up *bool
}

// NewStoreMonitorService creates a monitor for store.
func NewStoreMonitorService(store Pinger, interval time.Duration) *StoreMonitorService {
	if interval <= 0 {
		interval = DefaultStoreMonitorInterval
	}
	return &StoreMonitorService{
		store:    store,
		interval: interval,
		name:     "store-monitor",
	}
}

// Serve implements suture.Service. Ping failures are reported, never
// returned, so the monitor is not restarted because the store is down.
func (m *StoreMonitorService) Serve(ctx context.Context) error {
	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	m.check(ctx)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			m.check(ctx)
		}
	}
}

func (m *StoreMonitorService) check(ctx context.Context) {
	pingCtx, cancel := context.WithTimeout(ctx, m.interval)
	defer cancel()

	err := m.store.Ping(pingCtx)
	if ctx.Err() != nil {
		return
	}
	up := err == nil

	if up {
		metrics.DBUp.Set(1)
	} else {
		metrics.DBUp.Set(0)
	}

	switch {
	case m.up == nil && !up:
		logging.Warn().Err(err).Msg("Document store unreachable")
	case m.up != nil && *m.up && !up:
		logging.Warn().Err(err).Msg("Document store became unreachable")
	case m.up != nil && !*m.up && up:
		logging.Info().Msg("Document store reachable again")
	}
	m.up = &up
}

// String identifies the service in supervisor events.
func (m *StoreMonitorService) String() string {
	return m.name
}

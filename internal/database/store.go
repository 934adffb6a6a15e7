// Tableside - Restaurant Table Ordering Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tableside

/*
Package database is the MongoDB-backed store for tables, orders and the menu.

A Store owns one *mongo.Client, which pools connections internally and is
safe for concurrent use. It is opened once at startup, injected into the
HTTP handlers and disconnected at shutdown.

Every operation:
  - runs under its own deadline (database.operation_timeout) derived from
    the caller's context
  - passes through the "mongodb" circuit breaker
  - is observed in mongodb_operation_duration_seconds

Errors wrap the package sentinels (ErrNotFound, ErrInternal) so callers can
classify them with Kind or errors.Is without inspecting driver errors.
*/
package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/tomtom215/tableside/internal/config"
	"github.com/tomtom215/tableside/internal/logging"
	"github.com/tomtom215/tableside/internal/metrics"
)

// defaultOperationTimeout applies when the configuration leaves it unset.
const defaultOperationTimeout = 5 * time.Second

// Store provides data access to the restaurant collections.
type Store struct {
	client  *mongo.Client
	tables  *mongo.Collection
	orders  *mongo.Collection
	menu    *mongo.Collection
	breaker *storeBreaker

	dbName    string
	opTimeout time.Duration
}

// New connects to MongoDB and verifies the connection with a ping against
// the primary. The connect and ping share database.connect_timeout.
func New(ctx context.Context, cfg *config.DatabaseConfig) (*Store, error) {
	opts := options.Client().
		ApplyURI(cfg.URI).
		SetAppName("tableside").
		SetConnectTimeout(cfg.ConnectTimeout).
		SetServerSelectionTimeout(cfg.ConnectTimeout)
	if cfg.MaxPoolSize > 0 {
		opts.SetMaxPoolSize(cfg.MaxPoolSize)
	}
	if cfg.MinPoolSize > 0 {
		opts.SetMinPoolSize(cfg.MinPoolSize)
	}

	connectCtx, cancel := context.WithTimeout(ctx, cfg.ConnectTimeout)
	defer cancel()

	client, err := mongo.Connect(connectCtx, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	if err := client.Ping(connectCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background()) // Best-effort cleanup after failed ping
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	store := newStore(client, cfg)

	logging.Info().
		Str("database", cfg.Name).
		Str("tables", cfg.TablesCollection).
		Str("orders", cfg.OrdersCollection).
		Str("menu", cfg.MenuCollection).
		Uint64("max_pool_size", cfg.MaxPoolSize).
		Msg("Connected to MongoDB")

	return store, nil
}

func newStore(client *mongo.Client, cfg *config.DatabaseConfig) *Store {
	opTimeout := cfg.OperationTimeout
	if opTimeout <= 0 {
		opTimeout = defaultOperationTimeout
	}

	db := client.Database(cfg.Name)
	return &Store{
		client:    client,
		tables:    db.Collection(cfg.TablesCollection),
		orders:    db.Collection(cfg.OrdersCollection),
		menu:      db.Collection(cfg.MenuCollection),
		breaker:   newStoreBreaker(breakerName),
		dbName:    cfg.Name,
		opTimeout: opTimeout,
	}
}

// Close disconnects the client, waiting for in-flight operations until ctx is done.
func (s *Store) Close(ctx context.Context) error {
	if s.client == nil {
		return nil
	}
	if err := s.client.Disconnect(ctx); err != nil {
		return fmt.Errorf("failed to disconnect from MongoDB: %w", err)
	}
	logging.Info().Str("database", s.dbName).Msg("Disconnected from MongoDB")
	return nil
}

// Ping checks that the primary is reachable.
func (s *Store) Ping(ctx context.Context) error {
	return s.run(ctx, "ping", "admin", func(ctx context.Context) error {
		if err := s.client.Ping(ctx, readpref.Primary()); err != nil {
			return internalError("ping", err)
		}
		return nil
	})
}

// BreakerState reports the store circuit breaker state for health output.
func (s *Store) BreakerState() string {
	return s.breaker.State()
}

// run executes fn with the per-operation deadline under the circuit breaker
// and records the outcome.
func (s *Store) run(ctx context.Context, operation, collection string, fn func(ctx context.Context) error) error {
	opCtx, cancel := context.WithTimeout(ctx, s.opTimeout)
	defer cancel()

	start := time.Now()
	err := s.breaker.execute(func() error {
		err := fn(opCtx)
		if err != nil && ctx.Err() != nil {
			return abortedError(err)
		}
		return err
	})
	metrics.RecordDBQuery(operation, collection, time.Since(start), outcome(err))
	return err
}

func outcome(err error) string {
	switch {
	case err == nil:
		return metrics.OutcomeOK
	case errors.Is(err, ErrNotFound):
		return metrics.OutcomeNotFound
	case errors.Is(err, ErrStoreUnavailable):
		return metrics.OutcomeRejected
	case isCallerAbort(err):
		return metrics.OutcomeAborted
	default:
		return metrics.OutcomeError
	}
}

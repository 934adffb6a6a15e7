// Tableside - Restaurant Table Ordering Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tableside

package api

import (
	"context"
	"fmt"
	"sync"

	"github.com/tomtom215/tableside/internal/database"
	"github.com/tomtom215/tableside/internal/models"
)

// fakeStore is an in-memory Store with the same error contract as
// database.Store.
type fakeStore struct {
	mu     sync.Mutex
	tables map[models.ID]models.Table
	orders map[models.ID]models.Order
	menu   []models.MenuItem

	// err, when set, is returned by every data operation.
	err     error
	pingErr error

	storeCalls   int
	orderInserts int
	lastMenuCap  int
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		tables: make(map[models.ID]models.Table),
		orders: make(map[models.ID]models.Order),
	}
}

func (s *fakeStore) CreateTable(_ context.Context, table models.Table) (models.ID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.storeCalls++
	if s.err != nil {
		return models.ID{}, s.err
	}
	table.ID = models.NewID()
	s.tables[table.ID] = table
	return table.ID, nil
}

func (s *fakeStore) GetTable(_ context.Context, id models.ID) (*models.Table, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.storeCalls++
	return s.getTableLocked(id)
}

func (s *fakeStore) getTableLocked(id models.ID) (*models.Table, error) {
	if s.err != nil {
		return nil, s.err
	}
	table, ok := s.tables[id]
	if !ok {
		return nil, fmt.Errorf("get table %s: %w", id, database.ErrNotFound)
	}
	return &table, nil
}

func (s *fakeStore) ListMenu(_ context.Context, limit int) ([]models.MenuItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.storeCalls++
	s.lastMenuCap = limit
	if s.err != nil {
		return nil, s.err
	}
	items := []models.MenuItem{}
	for i, item := range s.menu {
		if i >= limit {
			break
		}
		items = append(items, item)
	}
	return items, nil
}

func (s *fakeStore) PlaceOrder(_ context.Context, order models.Order) (models.ID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.storeCalls++
	if _, err := s.getTableLocked(order.TableID); err != nil {
		return models.ID{}, fmt.Errorf("place order: %w", err)
	}
	order.ID = models.NewID()
	if order.Items == nil {
		order.Items = []models.OrderItem{}
	}
	if order.Status == "" {
		order.Status = models.OrderStatusPending
	}
	s.orders[order.ID] = order
	s.orderInserts++
	return order.ID, nil
}

func (s *fakeStore) GetOrder(_ context.Context, id models.ID) (*models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.storeCalls++
	if s.err != nil {
		return nil, s.err
	}
	order, ok := s.orders[id]
	if !ok {
		return nil, fmt.Errorf("get order %s: %w", id, database.ErrNotFound)
	}
	return &order, nil
}

func (s *fakeStore) Ping(context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pingErr
}

func (s *fakeStore) calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.storeCalls
}

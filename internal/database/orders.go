// Tableside - Restaurant Table Ordering Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tableside

package database

import (
	"context"
	"fmt"

	"github.com/tomtom215/tableside/internal/models"
)

// PlaceOrder stores order against an existing table and returns the new
// order ID.
//
// The table is looked up first. If it does not exist the returned error
// wraps ErrNotFound and nothing is written. A nil item list is stored as an
// empty array and an empty status becomes "pending".
//
// The existence check and the insert are separate round trips, so a table
// could in principle disappear between them. Tables are never deleted
// through this service.
func (s *Store) PlaceOrder(ctx context.Context, order models.Order) (models.ID, error) {
	if _, err := s.GetTable(ctx, order.TableID); err != nil {
		return models.ID{}, fmt.Errorf("place order: %w", err)
	}

	order.ID = models.NewID()
	if order.Items == nil {
		order.Items = []models.OrderItem{}
	}
	if order.Status == "" {
		order.Status = models.OrderStatusPending
	}

	err := s.run(ctx, "insert_order", s.orders.Name(), func(ctx context.Context) error {
		if _, err := s.orders.InsertOne(ctx, order); err != nil {
			return internalError("insert order", err)
		}
		return nil
	})
	if err != nil {
		return models.ID{}, err
	}
	return order.ID, nil
}

// GetOrder returns the order with the given ID, or an error wrapping
// ErrNotFound when none exists.
func (s *Store) GetOrder(ctx context.Context, id models.ID) (*models.Order, error) {
	var order models.Order
	err := s.run(ctx, "find_order", s.orders.Name(), func(ctx context.Context) error {
		return findByID(ctx, s.orders, id, &order)
	})
	if err != nil {
		return nil, fmt.Errorf("get order %s: %w", id, err)
	}
	if order.Items == nil {
		order.Items = []models.OrderItem{}
	}
	return &order, nil
}

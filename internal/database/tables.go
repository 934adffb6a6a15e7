// Tableside - Restaurant Table Ordering Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tableside

package database

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/tomtom215/tableside/internal/models"
)

// CreateTable inserts table and returns its new ID. Any ID already set on
// table is replaced.
func (s *Store) CreateTable(ctx context.Context, table models.Table) (models.ID, error) {
	table.ID = models.NewID()

	err := s.run(ctx, "insert_table", s.tables.Name(), func(ctx context.Context) error {
		if _, err := s.tables.InsertOne(ctx, table); err != nil {
			return internalError("insert table", err)
		}
		return nil
	})
	if err != nil {
		return models.ID{}, err
	}
	return table.ID, nil
}

// GetTable returns the table with the given ID, or an error wrapping
// ErrNotFound when none exists.
func (s *Store) GetTable(ctx context.Context, id models.ID) (*models.Table, error) {
	var table models.Table
	err := s.run(ctx, "find_table", s.tables.Name(), func(ctx context.Context) error {
		return findByID(ctx, s.tables, id, &table)
	})
	if err != nil {
		return nil, fmt.Errorf("get table %s: %w", id, err)
	}
	return &table, nil
}

// findByID decodes the document with _id equal to id into out.
func findByID(ctx context.Context, coll *mongo.Collection, id models.ID, out interface{}) error {
	err := coll.FindOne(ctx, bson.M{"_id": id}).Decode(out)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, mongo.ErrNoDocuments):
		return ErrNotFound
	default:
		return internalError("find "+coll.Name(), err)
	}
}

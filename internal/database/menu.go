// Tableside - Restaurant Table Ordering Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tableside

package database

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/tomtom215/tableside/internal/logging"
	"github.com/tomtom215/tableside/internal/models"
)

// ListMenu returns at most limit menu items in natural order. The result is
// never nil. A non-positive limit yields an empty menu without a query,
// since MongoDB treats a zero limit as unbounded.
func (s *Store) ListMenu(ctx context.Context, limit int) ([]models.MenuItem, error) {
	items := []models.MenuItem{}
	if limit <= 0 {
		return items, nil
	}

	err := s.run(ctx, "find_menu", s.menu.Name(), func(ctx context.Context) error {
		cursor, err := s.menu.Find(ctx, bson.M{}, options.Find().SetLimit(int64(limit)))
		if err != nil {
			return internalError("find menu", err)
		}
		if err := cursor.All(ctx, &items); err != nil {
			return internalError("decode menu", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []models.MenuItem{}
	}
	return items, nil
}

// SeedMenu inserts items when the menu collection is empty and returns how
// many were written. A collection that already holds any document is left
// untouched.
func (s *Store) SeedMenu(ctx context.Context, items []models.MenuItem) (int, error) {
	if len(items) == 0 {
		return 0, nil
	}

	var inserted int
	err := s.run(ctx, "seed_menu", s.menu.Name(), func(ctx context.Context) error {
		existing, err := s.menu.CountDocuments(ctx, bson.M{}, options.Count().SetLimit(1))
		if err != nil {
			return internalError("count menu", err)
		}
		if existing > 0 {
			return nil
		}

		docs := make([]interface{}, 0, len(items))
		for _, item := range items {
			item.ID = models.NewID()
			docs = append(docs, item)
		}
		result, err := s.menu.InsertMany(ctx, docs)
		if err != nil {
			return internalError("insert menu", err)
		}
		inserted = len(result.InsertedIDs)
		return nil
	})
	if err != nil {
		return 0, err
	}

	if inserted > 0 {
		logging.Info().Int("items", inserted).Str("collection", s.menu.Name()).Msg("Seeded empty menu")
	}
	return inserted, nil
}

// DefaultMenu is the starter menu written by SeedMenu when
// database.seed_menu is enabled.
func DefaultMenu() []models.MenuItem {
	return []models.MenuItem{
		{Name: "Margherita Pizza", Description: "Tomato, mozzarella and fresh basil", Price: 11.50, Category: "Mains"},
		{Name: "Spaghetti Carbonara", Description: "Guanciale, egg yolk, pecorino and black pepper", Price: 13.00, Category: "Mains"},
		{Name: "Grilled Chicken Salad", Description: "Romaine, parmesan and lemon dressing", Price: 10.25, Category: "Mains"},
		{Name: "Garlic Bread", Description: "Toasted baguette with garlic butter", Price: 4.50, Category: "Starters"},
		{Name: "Tomato Soup", Description: "Slow-roasted tomatoes with cream", Price: 5.75, Category: "Starters"},
		{Name: "Tiramisu", Description: "Espresso-soaked ladyfingers and mascarpone", Price: 6.50, Category: "Desserts"},
		{Name: "Lemonade", Description: "Freshly squeezed", Price: 3.00, Category: "Drinks"},
		{Name: "Espresso", Description: "Single shot", Price: 2.25, Category: "Drinks"},
	}
}

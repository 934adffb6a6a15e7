// Tableside - Restaurant Table Ordering Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tableside

// Package models defines the records Tableside stores and serves.
//
// Every record is write-once: tables and orders are created through the API
// and only read afterwards, and menu items are seeded directly into the store.
// The same structs shape both the stored documents (bson tags) and the JSON
// bodies returned to clients (json tags), with identifiers rendered as strings.
package models

// OrderStatusPending is the status given to orders placed without one.
const OrderStatusPending = "pending"

// Table is a physical seating unit that orders are placed against.
// TableNumber is not enforced unique.
type Table struct {
	ID          ID  `bson:"_id,omitempty" json:"_id"`
	TableNumber int `bson:"table_number" json:"table_number"`
	Seats       int `bson:"seats" json:"seats"`
}

// MenuItem is a purchasable dish. It is read-only through the API.
type MenuItem struct {
	ID          ID      `bson:"_id,omitempty" json:"_id"`
	Name        string  `bson:"name" json:"name"`
	Description string  `bson:"description" json:"description"`
	Price       float64 `bson:"price" json:"price"`
	Category    string  `bson:"category" json:"category"`
}

// OrderItem is a quantity of one menu item inside an order.
// MenuItemID is carried as given and not checked against the menu.
type OrderItem struct {
	MenuItemID string `bson:"menu_item_id" json:"menu_item_id"`
	Quantity   int    `bson:"quantity" json:"quantity"`
}

// Order is a set of items placed against one table.
type Order struct {
	ID      ID          `bson:"_id,omitempty" json:"_id"`
	TableID ID          `bson:"table_id" json:"table_id"`
	Items   []OrderItem `bson:"items" json:"items"`
	Status  string      `bson:"status" json:"status"`
}

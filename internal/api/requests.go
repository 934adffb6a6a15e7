// Tableside - Restaurant Table Ordering Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tableside

package api

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/goccy/go-json"

	"github.com/tomtom215/tableside/internal/models"
	"github.com/tomtom215/tableside/internal/validation"
)

// CreateTableRequest is the body of POST /table.
type CreateTableRequest struct {
	TableNumber int `json:"table_number" validate:"gte=0"`
	Seats       int `json:"seats" validate:"gte=1"`
}

// OrderItemRequest is one line of a PlaceOrderRequest.
type OrderItemRequest struct {
	MenuItemID string `json:"menu_item_id"`
	Quantity   int    `json:"quantity" validate:"gte=1"`
}

// PlaceOrderRequest is the body of POST /order. TableID stays a string so a
// malformed value can be reported as such rather than as a decode failure.
// An empty item list is accepted.
type PlaceOrderRequest struct {
	TableID string             `json:"table_id" validate:"required"`
	Items   []OrderItemRequest `json:"items" validate:"dive"`
	Status  string             `json:"status,omitempty" validate:"omitempty,max=64"`
}

// toOrder converts the request once TableID has been parsed.
func (req *PlaceOrderRequest) toOrder(tableID models.ID) models.Order {
	items := make([]models.OrderItem, len(req.Items))
	for i, item := range req.Items {
		items[i] = models.OrderItem{MenuItemID: item.MenuItemID, Quantity: item.Quantity}
	}
	return models.Order{
		TableID: tableID,
		Items:   items,
		Status:  req.Status,
	}
}

var (
	errEmptyBody    = errors.New("request body is empty")
	errBodyTooLarge = errors.New("request body too large")
)

// decodeJSON reads a single JSON value of at most limit bytes into dst.
// Unknown fields are ignored.
func decodeJSON(w http.ResponseWriter, r *http.Request, limit int64, dst interface{}) error {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, limit))
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return errBodyTooLarge
		}
		return fmt.Errorf("read body: %w", err)
	}
	if len(bytes.TrimSpace(body)) == 0 {
		return errEmptyBody
	}
	if err := json.Unmarshal(body, dst); err != nil {
		return fmt.Errorf("malformed JSON: %w", err)
	}
	return nil
}

// decodeAndValidate decodes the body into dst and runs struct validation,
// writing the 400 response itself. It reports whether the handler should
// continue.
func (h *Handler) decodeAndValidate(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	if err := decodeJSON(w, r, h.maxBodyBytes, dst); err != nil {
		if errors.Is(err, errBodyTooLarge) {
			WriteError(w, r, http.StatusRequestEntityTooLarge, ErrCodePayloadTooLarge, "Request body too large")
			return false
		}
		WriteBadRequest(w, r, "Invalid request body: "+err.Error())
		return false
	}

	if verr := validation.ValidateStruct(dst); verr != nil {
		apiErr := verr.ToAPIError()
		NewResponseWriter(w, r).ValidationError(apiErr.Message, apiErr.Details)
		return false
	}
	return true
}

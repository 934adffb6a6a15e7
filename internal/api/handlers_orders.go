// Tableside - Restaurant Table Ordering Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tableside

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/tomtom215/tableside/internal/logging"
	"github.com/tomtom215/tableside/internal/metrics"
)

// PlaceOrderResponse is returned by POST /order.
type PlaceOrderResponse struct {
	Message string `json:"message" example:"Order placed successfully"`
	OrderID string `json:"order_id" example:"65a1f0c2e4b0a1b2c3d4e5f7"`
}

// PlaceOrder places an order against an existing table
//
// @Summary Place an order
// @Description Stores an order for the given table. The table must exist. Menu item identifiers are stored as given. Status defaults to "pending".
// @Tags Orders
// @Accept json
// @Produce json
// @Param order body PlaceOrderRequest true "Order to place"
// @Success 200 {object} PlaceOrderResponse "Order placed"
// @Failure 400 {object} APIResponse "Malformed table_id or invalid body"
// @Failure 404 {object} APIResponse "Table not found"
// @Failure 500 {object} APIResponse "Store error"
// @Router /order [post]
func (h *Handler) PlaceOrder(w http.ResponseWriter, r *http.Request) {
	var req PlaceOrderRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	tableID, ok := parseIDParam(w, r, req.TableID, "table_id", msgInvalidTableID)
	if !ok {
		return
	}

	order := req.toOrder(tableID)
	id, err := h.store.PlaceOrder(r.Context(), order)
	if err != nil {
		respondStoreError(w, r, err, "place_order", "table_id", req.TableID, msgTableNotFound)
		return
	}

	metrics.RecordOrderPlaced(len(order.Items))
	logging.Ctx(r.Context()).Info().
		Str("order_id", id.String()).
		Str("table_id", req.TableID).
		Int("items", len(order.Items)).
		Msg("Order placed")

	writeJSON(w, http.StatusOK, PlaceOrderResponse{
		Message: msgOrderPlaced,
		OrderID: id.String(),
	})
}

// GetOrder returns one order
//
// @Summary Get an order
// @Description Returns the stored order document, with its identifiers as strings.
// @Tags Orders
// @Produce json
// @Param order_id path string true "Order identifier (24 hex characters)"
// @Success 200 {object} models.Order "Order found"
// @Failure 400 {object} APIResponse "Malformed order_id"
// @Failure 404 {object} APIResponse "Order not found"
// @Failure 500 {object} APIResponse "Store error"
// @Router /order/{order_id} [get]
func (h *Handler) GetOrder(w http.ResponseWriter, r *http.Request) {
	raw := chi.URLParam(r, "order_id")
	id, ok := parseIDParam(w, r, raw, "order_id", msgInvalidOrderID)
	if !ok {
		return
	}

	order, err := h.store.GetOrder(r.Context(), id)
	if err != nil {
		respondStoreError(w, r, err, "get_order", "order_id", raw, msgOrderNotFound)
		return
	}

	writeJSON(w, http.StatusOK, order)
}

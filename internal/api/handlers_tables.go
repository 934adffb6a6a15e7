// Tableside - Restaurant Table Ordering Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tableside

package api

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/tomtom215/tableside/internal/logging"
	"github.com/tomtom215/tableside/internal/metrics"
	"github.com/tomtom215/tableside/internal/models"
)

// CreateTableResponse is returned by POST /table.
type CreateTableResponse struct {
	Message string `json:"message" example:"Table created successfully"`
	TableID string `json:"table_id" example:"65a1f0c2e4b0a1b2c3d4e5f6"`
}

// CreateTable registers a new table
//
// @Summary Register a table
// @Description Creates a table with the given number and seat count and returns its identifier. Table numbers are not required to be unique.
// @Tags Tables
// @Accept json
// @Produce json
// @Param table body CreateTableRequest true "Table to create"
// @Success 200 {object} CreateTableResponse "Table created"
// @Failure 400 {object} APIResponse "Malformed or invalid body"
// @Failure 500 {object} APIResponse "Store error"
// @Router /table [post]
func (h *Handler) CreateTable(w http.ResponseWriter, r *http.Request) {
	var req CreateTableRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	id, err := h.store.CreateTable(r.Context(), models.Table{
		TableNumber: req.TableNumber,
		Seats:       req.Seats,
	})
	if err != nil {
		respondStoreError(w, r, err, "create_table", "table_number", strconv.Itoa(req.TableNumber), msgInternal)
		return
	}

	metrics.TablesCreated.Inc()
	logging.Ctx(r.Context()).Info().
		Str("table_id", id.String()).
		Int("table_number", req.TableNumber).
		Int("seats", req.Seats).
		Msg("Table created")

	writeJSON(w, http.StatusOK, CreateTableResponse{
		Message: msgTableCreated,
		TableID: id.String(),
	})
}

// GetTable returns one table
//
// @Summary Get a table
// @Description Returns the stored table document, with its identifier as a string.
// @Tags Tables
// @Produce json
// @Param table_id path string true "Table identifier (24 hex characters)"
// @Success 200 {object} models.Table "Table found"
// @Failure 400 {object} APIResponse "Malformed table_id"
// @Failure 404 {object} APIResponse "Table not found"
// @Failure 500 {object} APIResponse "Store error"
// @Router /table/{table_id} [get]
func (h *Handler) GetTable(w http.ResponseWriter, r *http.Request) {
	raw := chi.URLParam(r, "table_id")
	id, ok := parseIDParam(w, r, raw, "table_id", msgInvalidTableID)
	if !ok {
		return
	}

	table, err := h.store.GetTable(r.Context(), id)
	if err != nil {
		respondStoreError(w, r, err, "get_table", "table_id", raw, msgTableNotFound)
		return
	}

	writeJSON(w, http.StatusOK, table)
}

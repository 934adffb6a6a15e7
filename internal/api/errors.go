// Tableside - Restaurant Table Ordering Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tableside

package api

import (
	"errors"
	"net/http"

	"github.com/tomtom215/tableside/internal/database"
	"github.com/tomtom215/tableside/internal/logging"
	"github.com/tomtom215/tableside/internal/models"
)

// Client-facing messages.
const (
	msgTableNotFound      = "Table not found"
	msgOrderNotFound      = "Order not found"
	msgInvalidTableID     = "Invalid table_id format."
	msgInvalidOrderID     = "Invalid order_id format."
	msgInvalidID          = "Invalid identifier format."
	msgInternal           = "Internal server error"
	msgStoreNotReady      = "Document store is not reachable"
	msgTableCreated       = "Table created successfully"
	msgOrderPlaced        = "Order placed successfully"
	msgQRGenerationFailed = "Failed to generate QR code"
)

// parseIDParam parses a path or body identifier, writing a 400 with message
// when it is malformed.
func parseIDParam(w http.ResponseWriter, r *http.Request, raw, field, message string) (models.ID, bool) {
	id, err := models.ParseID(raw)
	if err != nil {
		logging.Ctx(r.Context()).Debug().Str(field, raw).Msg("Rejected malformed identifier")
		WriteBadRequest(w, r, message)
		return models.ID{}, false
	}
	return id, true
}

// respondStoreError maps a store error onto the response envelope and logs
// it with the operation and identifier involved. Internal failures are
// reported to the client with a generic message only.
func respondStoreError(w http.ResponseWriter, r *http.Request, err error, operation, idField, id, notFoundMessage string) {
	log := logging.Ctx(r.Context())

	switch database.Kind(err) {
	case database.KindInvalidID:
		log.Info().Str("operation", operation).Str(idField, id).Err(err).Msg("Invalid identifier")
		WriteBadRequest(w, r, msgInvalidID)
	case database.KindNotFound:
		log.Info().Str("operation", operation).Str(idField, id).Msg(notFoundMessage)
		WriteNotFound(w, r, notFoundMessage)
	default:
		if errors.Is(err, database.ErrCallerAborted) {
			log.Debug().Str("operation", operation).Str(idField, id).Err(err).Msg("Store operation abandoned by caller")
		} else {
			log.Error().Str("operation", operation).Str(idField, id).Err(err).Msg("Store operation failed")
		}
		WriteInternalError(w, r, msgInternal)
	}
}

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
)

// GenerateQR renders the code printed on a table
//
// @Summary Generate a table QR code
// @Description Returns a PNG QR code linking to <base-url>/table/{table_id}. The table is not looked up, so any well-formed identifier yields an image.
// @Tags Tables
// @Produce png
// @Param table_id path string true "Table identifier (24 hex characters)"
// @Success 200 {file} binary "PNG image"
// @Failure 400 {object} APIResponse "Malformed table_id"
// @Failure 500 {object} APIResponse "Encoding error"
// @Router /generate_qr/{table_id} [get]
func (h *Handler) GenerateQR(w http.ResponseWriter, r *http.Request) {
	raw := chi.URLParam(r, "table_id")
	id, ok := parseIDParam(w, r, raw, "table_id", msgInvalidTableID)
	if !ok {
		return
	}

	png, err := h.qr.PNG(id)
	if err != nil {
		logging.Ctx(r.Context()).Error().Str("operation", "generate_qr").Str("table_id", raw).Err(err).Msg("QR encoding failed")
		WriteInternalError(w, r, msgQRGenerationFailed)
		return
	}

	metrics.QRCodesGenerated.Inc()

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Length", strconv.Itoa(len(png)))
	w.Header().Set("Cache-Control", "public, max-age=86400")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(png); err != nil {
		logging.Ctx(r.Context()).Warn().Err(err).Msg("Failed to write QR image")
	}
}

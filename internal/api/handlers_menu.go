// Tableside - Restaurant Table Ordering Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tableside

package api

import (
	"net/http"
	"strconv"
)

// ListMenu returns the menu
//
// @Summary List the menu
// @Description Returns menu items in store order, capped at the configured menu limit.
// @Tags Menu
// @Produce json
// @Success 200 {array} models.MenuItem "Menu items"
// @Failure 500 {object} APIResponse "Store error"
// @Router /menu [get]
func (h *Handler) ListMenu(w http.ResponseWriter, r *http.Request) {
	items, err := h.store.ListMenu(r.Context(), h.menuLimit)
	if err != nil {
		respondStoreError(w, r, err, "list_menu", "limit", strconv.Itoa(h.menuLimit), msgInternal)
		return
	}

	writeJSON(w, http.StatusOK, items)
}

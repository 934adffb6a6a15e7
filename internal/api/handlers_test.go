// Tableside - Restaurant Table Ordering Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tableside

package api

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image/png"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/goccy/go-json"

	"github.com/tomtom215/tableside/internal/config"
	"github.com/tomtom215/tableside/internal/database"
	"github.com/tomtom215/tableside/internal/models"
	"github.com/tomtom215/tableside/internal/qrcode"
)

const testBaseURL = "https://order.example.com"

func newTestHandler(t *testing.T, store Store) *Handler {
	t.Helper()
	gen, err := qrcode.NewGenerator(&config.QRConfig{BaseURL: testBaseURL, ModuleSize: 4})
	if err != nil {
		t.Fatalf("NewGenerator: %v", err)
	}
	return NewHandler(store, gen, &config.APIConfig{MenuLimit: 3, MaxBodyBytes: 1 << 10}, "test")
}

// newTestServer builds the full router with rate limiting disabled.
func newTestServer(t *testing.T, store Store) http.Handler {
	t.Helper()
	cfg := DefaultChiMiddlewareConfig()
	cfg.RateLimitDisabled = true
	return NewRouter(newTestHandler(t, store), NewChiMiddleware(cfg)).SetupChi()
}

func doRequest(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, dst interface{}) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), dst); err != nil {
		t.Fatalf("decode %q: %v", w.Body.String(), err)
	}
}

func assertError(t *testing.T, w *httptest.ResponseRecorder, status int, code, message string) {
	t.Helper()
	if w.Code != status {
		t.Fatalf("status = %d, want %d (body %s)", w.Code, status, w.Body.String())
	}
	var resp APIResponse
	decodeBody(t, w, &resp)
	if resp.Success {
		t.Error("success = true on an error response")
	}
	if resp.Error == nil {
		t.Fatal("error object missing")
	}
	if resp.Error.Code != code {
		t.Errorf("code = %q, want %q", resp.Error.Code, code)
	}
	if message != "" && resp.Error.Message != message {
		t.Errorf("message = %q, want %q", resp.Error.Message, message)
	}
}

func createTable(t *testing.T, h http.Handler, number, seats int) string {
	t.Helper()
	w := doRequest(t, h, http.MethodPost, "/table", fmt.Sprintf(`{"table_number":%d,"seats":%d}`, number, seats))
	if w.Code != http.StatusOK {
		t.Fatalf("create table status = %d: %s", w.Code, w.Body.String())
	}
	var resp CreateTableResponse
	decodeBody(t, w, &resp)
	if resp.Message != msgTableCreated {
		t.Errorf("message = %q, want %q", resp.Message, msgTableCreated)
	}
	return resp.TableID
}

func TestCreateAndGetTable(t *testing.T) {
	store := newFakeStore()
	srv := newTestServer(t, store)

	id := createTable(t, srv, 5, 4)
	if _, err := models.ParseID(id); err != nil {
		t.Fatalf("table_id %q does not parse: %v", id, err)
	}

	w := doRequest(t, srv, http.MethodGet, "/table/"+id, "")
	if w.Code != http.StatusOK {
		t.Fatalf("get status = %d: %s", w.Code, w.Body.String())
	}
	if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, "application/json") {
		t.Errorf("Content-Type = %q", ct)
	}

	var table models.Table
	decodeBody(t, w, &table)
	if table.ID.String() != id || table.TableNumber != 5 || table.Seats != 4 {
		t.Errorf("table = %+v, want id %s number 5 seats 4", table, id)
	}
}

func TestCreateTable_DuplicateNumbersAllowed(t *testing.T) {
	srv := newTestServer(t, newFakeStore())
	first := createTable(t, srv, 7, 2)
	second := createTable(t, srv, 7, 2)
	if first == second {
		t.Errorf("both tables got id %s", first)
	}
}

func TestCreateTable_RejectsBadBodies(t *testing.T) {
	tests := []struct {
		name   string
		body   string
		status int
		code   string
	}{
		{"empty body", "", http.StatusBadRequest, ErrCodeBadRequest},
		{"malformed JSON", `{"table_number":`, http.StatusBadRequest, ErrCodeBadRequest},
		{"wrong type", `{"table_number":"five","seats":4}`, http.StatusBadRequest, ErrCodeBadRequest},
		{"zero seats", `{"table_number":1,"seats":0}`, http.StatusBadRequest, ErrCodeValidationError},
		{"negative number", `{"table_number":-1,"seats":2}`, http.StatusBadRequest, ErrCodeValidationError},
		{"too large", `{"table_number":1,"seats":2,"pad":"` + strings.Repeat("x", 2048) + `"}`, http.StatusRequestEntityTooLarge, ErrCodePayloadTooLarge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newFakeStore()
			srv := newTestServer(t, store)

			w := doRequest(t, srv, http.MethodPost, "/table", tt.body)
			assertError(t, w, tt.status, tt.code, "")
			if store.calls() != 0 {
				t.Errorf("store called %d times", store.calls())
			}
		})
	}
}

func TestGetTable_Errors(t *testing.T) {
	store := newFakeStore()
	srv := newTestServer(t, store)

	t.Run("malformed id", func(t *testing.T) {
		w := doRequest(t, srv, http.MethodGet, "/table/not-an-id", "")
		assertError(t, w, http.StatusBadRequest, ErrCodeBadRequest, msgInvalidTableID)
		if store.calls() != 0 {
			t.Errorf("store called %d times for a malformed id", store.calls())
		}
	})

	t.Run("never issued", func(t *testing.T) {
		w := doRequest(t, srv, http.MethodGet, "/table/"+models.NewID().String(), "")
		assertError(t, w, http.StatusNotFound, ErrCodeNotFound, msgTableNotFound)
	})
}

func TestPlaceOrder(t *testing.T) {
	store := newFakeStore()
	srv := newTestServer(t, store)
	tableID := createTable(t, srv, 3, 4)

	body := fmt.Sprintf(`{"table_id":%q,"items":[{"menu_item_id":"m1","quantity":2},{"menu_item_id":"m2","quantity":1}]}`, tableID)
	w := doRequest(t, srv, http.MethodPost, "/order", body)
	if w.Code != http.StatusOK {
		t.Fatalf("place status = %d: %s", w.Code, w.Body.String())
	}
	var placed PlaceOrderResponse
	decodeBody(t, w, &placed)
	if placed.Message != msgOrderPlaced {
		t.Errorf("message = %q", placed.Message)
	}

	w = doRequest(t, srv, http.MethodGet, "/order/"+placed.OrderID, "")
	if w.Code != http.StatusOK {
		t.Fatalf("get status = %d: %s", w.Code, w.Body.String())
	}
	var order models.Order
	decodeBody(t, w, &order)
	if order.ID.String() != placed.OrderID {
		t.Errorf("_id = %s, want %s", order.ID, placed.OrderID)
	}
	if order.TableID.String() != tableID {
		t.Errorf("table_id = %s, want %s", order.TableID, tableID)
	}
	if order.Status != models.OrderStatusPending {
		t.Errorf("status = %q, want %q", order.Status, models.OrderStatusPending)
	}
	want := []models.OrderItem{{MenuItemID: "m1", Quantity: 2}, {MenuItemID: "m2", Quantity: 1}}
	if len(order.Items) != len(want) {
		t.Fatalf("items = %+v, want %+v", order.Items, want)
	}
	for i := range want {
		if order.Items[i] != want[i] {
			t.Errorf("items[%d] = %+v, want %+v", i, order.Items[i], want[i])
		}
	}
}

func TestPlaceOrder_EmptyItemsAndCustomStatus(t *testing.T) {
	srv := newTestServer(t, newFakeStore())
	tableID := createTable(t, srv, 1, 2)

	w := doRequest(t, srv, http.MethodPost, "/order", fmt.Sprintf(`{"table_id":%q,"items":[],"status":"served"}`, tableID))
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", w.Code, w.Body.String())
	}
	var placed PlaceOrderResponse
	decodeBody(t, w, &placed)

	w = doRequest(t, srv, http.MethodGet, "/order/"+placed.OrderID, "")
	if w.Code != http.StatusOK {
		t.Fatalf("get status = %d", w.Code)
	}
	if !bytes.Contains(w.Body.Bytes(), []byte(`"items":[]`)) {
		t.Errorf("items should serialize as an empty array: %s", w.Body.String())
	}
	var order models.Order
	decodeBody(t, w, &order)
	if order.Status != "served" {
		t.Errorf("status = %q, want served", order.Status)
	}
}

func TestPlaceOrder_Errors(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		status  int
		code    string
		message string
	}{
		{
			name:    "malformed table_id",
			body:    `{"table_id":"not-an-id","items":[]}`,
			status:  http.StatusBadRequest,
			code:    ErrCodeBadRequest,
			message: msgInvalidTableID,
		},
		{
			name:    "unknown table",
			body:    fmt.Sprintf(`{"table_id":%q,"items":[{"menu_item_id":"m1","quantity":1}]}`, models.NewID()),
			status:  http.StatusNotFound,
			code:    ErrCodeNotFound,
			message: msgTableNotFound,
		},
		{
			name:   "missing table_id",
			body:   `{"items":[]}`,
			status: http.StatusBadRequest,
			code:   ErrCodeValidationError,
		},
		{
			name:   "zero quantity",
			body:   fmt.Sprintf(`{"table_id":%q,"items":[{"menu_item_id":"m1","quantity":0}]}`, models.NewID()),
			status: http.StatusBadRequest,
			code:   ErrCodeValidationError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newFakeStore()
			srv := newTestServer(t, store)

			w := doRequest(t, srv, http.MethodPost, "/order", tt.body)
			assertError(t, w, tt.status, tt.code, tt.message)
			if store.orderInserts != 0 {
				t.Errorf("%d orders inserted", store.orderInserts)
			}
		})
	}
}

func TestGetOrder_Errors(t *testing.T) {
	store := newFakeStore()
	srv := newTestServer(t, store)

	w := doRequest(t, srv, http.MethodGet, "/order/xyz", "")
	assertError(t, w, http.StatusBadRequest, ErrCodeBadRequest, msgInvalidOrderID)
	if store.calls() != 0 {
		t.Errorf("store called %d times for a malformed id", store.calls())
	}

	w = doRequest(t, srv, http.MethodGet, "/order/"+models.NewID().String(), "")
	assertError(t, w, http.StatusNotFound, ErrCodeNotFound, msgOrderNotFound)
}

func TestListMenu(t *testing.T) {
	tests := []struct {
		name  string
		items int
		want  int
	}{
		{"empty", 0, 0},
		{"under cap", 2, 2},
		{"at cap", 3, 3},
		{"over cap", 10, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newFakeStore()
			for i := 0; i < tt.items; i++ {
				store.menu = append(store.menu, models.MenuItem{
					ID:    models.NewID(),
					Name:  fmt.Sprintf("Dish %d", i),
					Price: 9.5,
				})
			}
			srv := newTestServer(t, store)

			w := doRequest(t, srv, http.MethodGet, "/menu", "")
			if w.Code != http.StatusOK {
				t.Fatalf("status = %d: %s", w.Code, w.Body.String())
			}
			var items []models.MenuItem
			decodeBody(t, w, &items)
			if items == nil {
				t.Fatal("menu decoded as null, want an array")
			}
			if len(items) != tt.want {
				t.Errorf("len = %d, want %d", len(items), tt.want)
			}
			if store.lastMenuCap != 3 {
				t.Errorf("store asked for %d items, want 3", store.lastMenuCap)
			}
		})
	}
}

func TestGenerateQR(t *testing.T) {
	store := newFakeStore()
	srv := newTestServer(t, store)

	// Tables are not looked up, so a never-issued id still gets an image.
	id := models.NewID().String()
	w := doRequest(t, srv, http.MethodGet, "/generate_qr/"+id, "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", w.Code, w.Body.String())
	}
	if ct := w.Header().Get("Content-Type"); ct != "image/png" {
		t.Errorf("Content-Type = %q, want image/png", ct)
	}
	if w.Body.Len() == 0 {
		t.Fatal("empty image")
	}
	if _, err := png.Decode(bytes.NewReader(w.Body.Bytes())); err != nil {
		t.Errorf("body is not a PNG: %v", err)
	}
	if store.calls() != 0 {
		t.Errorf("store called %d times", store.calls())
	}

	again := doRequest(t, srv, http.MethodGet, "/generate_qr/"+id, "")
	if !bytes.Equal(w.Body.Bytes(), again.Body.Bytes()) {
		t.Error("same table produced different images")
	}

	bad := doRequest(t, srv, http.MethodGet, "/generate_qr/not-an-id", "")
	assertError(t, bad, http.StatusBadRequest, ErrCodeBadRequest, msgInvalidTableID)
}

func TestStoreFailuresAreGeneric(t *testing.T) {
	store := newFakeStore()
	store.err = fmt.Errorf("find tables: %w: %w", database.ErrInternal, errors.New("connection reset by 10.0.0.3"))
	srv := newTestServer(t, store)

	requests := []struct {
		method, path, body string
	}{
		{http.MethodPost, "/table", `{"table_number":1,"seats":2}`},
		{http.MethodGet, "/table/" + models.NewID().String(), ""},
		{http.MethodPost, "/order", fmt.Sprintf(`{"table_id":%q,"items":[]}`, models.NewID())},
		{http.MethodGet, "/order/" + models.NewID().String(), ""},
		{http.MethodGet, "/menu", ""},
	}

	for _, req := range requests {
		t.Run(req.method+" "+req.path, func(t *testing.T) {
			w := doRequest(t, srv, req.method, req.path, req.body)
			assertError(t, w, http.StatusInternalServerError, ErrCodeInternalError, msgInternal)
			if strings.Contains(w.Body.String(), "10.0.0.3") {
				t.Errorf("internal detail leaked: %s", w.Body.String())
			}
		})
	}
}

func TestCorruptStoredDocumentIsInternal(t *testing.T) {
	store := newFakeStore()
	decodeErr := fmt.Errorf("error decoding key table_id: %w: %q", models.ErrInvalidID, "legacy-bad")
	store.err = fmt.Errorf("find orders: %w: %w", database.ErrInternal, decodeErr)
	srv := newTestServer(t, store)

	w := doRequest(t, srv, http.MethodGet, "/order/"+models.NewID().String(), "")
	assertError(t, w, http.StatusInternalServerError, ErrCodeInternalError, msgInternal)
	if strings.Contains(w.Body.String(), "legacy-bad") {
		t.Errorf("stored value leaked: %s", w.Body.String())
	}
}

func TestAbortedStoreCallIsGeneric(t *testing.T) {
	store := newFakeStore()
	store.err = fmt.Errorf("%w: %w", database.ErrCallerAborted, context.Canceled)
	srv := newTestServer(t, store)

	w := doRequest(t, srv, http.MethodGet, "/menu", "")
	assertError(t, w, http.StatusInternalServerError, ErrCodeInternalError, msgInternal)
}

func TestHealthEndpoints(t *testing.T) {
	t.Run("ready", func(t *testing.T) {
		srv := newTestServer(t, newFakeStore())
		for _, path := range []string{"/health", "/health/live", "/health/ready"} {
			w := doRequest(t, srv, http.MethodGet, path, "")
			if w.Code != http.StatusOK {
				t.Errorf("%s status = %d", path, w.Code)
			}
		}
	})

	t.Run("store down", func(t *testing.T) {
		store := newFakeStore()
		store.pingErr = database.ErrStoreUnavailable
		srv := newTestServer(t, store)

		w := doRequest(t, srv, http.MethodGet, "/health", "")
		if w.Code != http.StatusOK {
			t.Fatalf("/health status = %d, want 200", w.Code)
		}
		var resp struct {
			Data HealthStatus `json:"data"`
		}
		decodeBody(t, w, &resp)
		if resp.Data.Status != "degraded" || resp.Data.DatabaseConnected {
			t.Errorf("health = %+v, want degraded and disconnected", resp.Data)
		}

		w = doRequest(t, srv, http.MethodGet, "/health/live", "")
		if w.Code != http.StatusOK {
			t.Errorf("/health/live status = %d, want 200", w.Code)
		}

		w = doRequest(t, srv, http.MethodGet, "/health/ready", "")
		assertError(t, w, http.StatusServiceUnavailable, ErrCodeServiceUnavailable, msgStoreNotReady)
	})
}

func TestUnknownRouteAndMethod(t *testing.T) {
	srv := newTestServer(t, newFakeStore())

	w := doRequest(t, srv, http.MethodGet, "/tables", "")
	assertError(t, w, http.StatusNotFound, ErrCodeNotFound, "")

	w = doRequest(t, srv, http.MethodDelete, "/menu", "")
	assertError(t, w, http.StatusMethodNotAllowed, ErrCodeMethodNotAllowed, "")
}

func TestErrorResponsesCarryRequestID(t *testing.T) {
	srv := newTestServer(t, newFakeStore())

	req := httptest.NewRequest(http.MethodGet, "/table/bogus", nil)
	req.Header.Set("X-Request-ID", "req-42")
	w := httptest.NewRecorder()
	srv.ServeHTTP(w, req)

	if got := w.Header().Get("X-Request-ID"); got != "req-42" {
		t.Errorf("X-Request-ID header = %q", got)
	}
	var resp APIResponse
	decodeBody(t, w, &resp)
	if resp.Error == nil || resp.Error.RequestID != "req-42" {
		t.Errorf("error = %+v, want request_id req-42", resp.Error)
	}
}

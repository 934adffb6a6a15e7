// Tableside - Restaurant Table Ordering Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tableside

package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	io_prometheus_client "github.com/prometheus/client_model/go"
)

// getHistogramCount extracts the sample count from a Prometheus histogram
func getHistogramCount(t *testing.T, o prometheus.Observer) uint64 {
	t.Helper()
	m, ok := o.(prometheus.Metric)
	if !ok {
		t.Fatalf("observer %T is not a metric", o)
	}
	var pb io_prometheus_client.Metric
	if err := m.Write(&pb); err != nil {
		t.Fatalf("failed to write metric: %v", err)
	}
	return pb.GetHistogram().GetSampleCount()
}

func TestRecordDBQuery(t *testing.T) {
	tests := []struct {
		name       string
		operation  string
		collection string
		outcome    string
		wantErrInc float64
	}{
		{"successful insert", "insert_table", "tables", OutcomeOK, 0},
		{"missing order", "find_order", "orders", OutcomeNotFound, 1},
		{"store failure", "find_menu", "menu_collection", OutcomeError, 1},
		{"breaker open", "find_table", "tables", OutcomeRejected, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errCounter := DBQueryErrors.WithLabelValues(tt.operation, tt.collection, tt.outcome)
			beforeErr := testutil.ToFloat64(errCounter)
			beforeObs := getHistogramCount(t, DBQueryDuration.WithLabelValues(tt.operation, tt.collection))

			RecordDBQuery(tt.operation, tt.collection, 3*time.Millisecond, tt.outcome)

			if got := testutil.ToFloat64(errCounter) - beforeErr; got != tt.wantErrInc {
				t.Errorf("error counter delta = %v, want %v", got, tt.wantErrInc)
			}
			if got := getHistogramCount(t, DBQueryDuration.WithLabelValues(tt.operation, tt.collection)) - beforeObs; got != 1 {
				t.Errorf("duration observations delta = %d, want 1", got)
			}
		})
	}
}

func TestRecordAPIRequest(t *testing.T) {
	counter := APIRequestsTotal.WithLabelValues("POST", "/order", "200")
	before := testutil.ToFloat64(counter)

	RecordAPIRequest("POST", "/order", "200", 12*time.Millisecond)
	RecordAPIRequest("POST", "/order", "200", 8*time.Millisecond)

	if got := testutil.ToFloat64(counter) - before; got != 2 {
		t.Errorf("api_requests_total delta = %v, want 2", got)
	}
}

func TestTrackActiveRequest(t *testing.T) {
	before := testutil.ToFloat64(APIActiveRequests)

	TrackActiveRequest(true)
	TrackActiveRequest(true)
	if got := testutil.ToFloat64(APIActiveRequests) - before; got != 2 {
		t.Errorf("active delta after inc = %v, want 2", got)
	}

	TrackActiveRequest(false)
	TrackActiveRequest(false)
	if got := testutil.ToFloat64(APIActiveRequests) - before; got != 0 {
		t.Errorf("active delta after dec = %v, want 0", got)
	}
}

func TestRecordOrderPlaced(t *testing.T) {
	before := testutil.ToFloat64(OrdersPlaced)
	beforeObs := getHistogramCount(t, OrderItemsPlaced)

	RecordOrderPlaced(3)

	if got := testutil.ToFloat64(OrdersPlaced) - before; got != 1 {
		t.Errorf("orders_placed_total delta = %v, want 1", got)
	}
	if got := getHistogramCount(t, OrderItemsPlaced) - beforeObs; got != 1 {
		t.Errorf("order_items_per_order observations delta = %d, want 1", got)
	}
}

// TestMetricGathering tests that metrics can be gathered using testutil
func TestMetricGathering(t *testing.T) {
	RecordDBQuery("ping", "admin", time.Millisecond, OutcomeOK)
	RecordAPIRequest("GET", "/menu", "200", time.Millisecond)
	QRCodesGenerated.Inc()
	TablesCreated.Inc()

	problems, err := testutil.GatherAndLint(prometheus.DefaultGatherer)
	if err != nil {
		t.Fatalf("GatherAndLint() error: %v", err)
	}
	for _, p := range problems {
		t.Errorf("metric lint problem in %s: %s", p.Metric, p.Text)
	}
}

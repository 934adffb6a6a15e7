// Tableside - Restaurant Table Ordering Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tableside

// Package metrics holds the Prometheus instruments exported on /metrics:
// document store latency and failures, HTTP throughput and latency, the
// store circuit breaker, and a few business counters.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Store outcome labels for RecordDBQuery.
const (
	OutcomeOK       = "ok"
	OutcomeNotFound = "not_found"
	OutcomeError    = "error"
	OutcomeRejected = "rejected"
	OutcomeAborted  = "aborted"
)

var (
	// Document store metrics
	DBQueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "mongodb_operation_duration_seconds",
			Help:    "Duration of MongoDB operations in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation", "collection"},
	)

	DBQueryErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mongodb_operation_errors_total",
			Help: "Total number of MongoDB operations that did not succeed, by outcome",
		},
		[]string{"operation", "collection", "outcome"},
	)

	DBUp = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "mongodb_up",
			Help: "Whether the last background ping of MongoDB succeeded (1 = up, 0 = down)",
		},
	)

	// API metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Current number of active API requests",
		},
	)

	// Circuit breaker metrics
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	CircuitBreakerRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_requests_total",
			Help: "Total number of requests through circuit breaker",
		},
		[]string{"name", "result"}, // result: "success", "failure", "rejected"
	)

	CircuitBreakerConsecutiveFailures = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_consecutive_failures",
			Help: "Current number of consecutive failures",
		},
		[]string{"name"},
	)

	CircuitBreakerTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_state_transitions_total",
			Help: "Total number of circuit breaker state transitions",
		},
		[]string{"name", "from_state", "to_state"},
	)

	// Business metrics
	TablesCreated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "tables_created_total",
			Help: "Total number of tables registered",
		},
	)

	OrdersPlaced = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "orders_placed_total",
			Help: "Total number of orders placed",
		},
	)

	OrderItemsPlaced = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "order_items_per_order",
			Help:    "Number of line items per placed order",
			Buckets: []float64{0, 1, 2, 3, 5, 8, 13, 21},
		},
	)

	QRCodesGenerated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "qr_codes_generated_total",
			Help: "Total number of table QR codes rendered",
		},
	)

	QRCacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "qr_cache_lookups_total",
			Help: "Rendered QR image cache lookups by result (hit, miss)",
		},
		[]string{"result"},
	)
)

// RecordDBQuery records one store operation. Any outcome other than
// OutcomeOK is also counted in DBQueryErrors.
func RecordDBQuery(operation, collection string, duration time.Duration, outcome string) {
	DBQueryDuration.WithLabelValues(operation, collection).Observe(duration.Seconds())
	if outcome != OutcomeOK {
		DBQueryErrors.WithLabelValues(operation, collection, outcome).Inc()
	}
}

// RecordAPIRequest records an API request metric
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest tracks active API requests
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordOrderPlaced counts an order and its line item count.
func RecordOrderPlaced(items int) {
	OrdersPlaced.Inc()
	OrderItemsPlaced.Observe(float64(items))
}

// Tableside - Restaurant Table Ordering Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tableside

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/tableside/internal/logging"
)

// breakerReporter is implemented by stores that expose circuit breaker state.
type breakerReporter interface {
	BreakerState() string
}

// HealthStatus is the body of GET /health.
type HealthStatus struct {
	Status            string  `json:"status" example:"healthy"`
	Version           string  `json:"version" example:"1.0.0"`
	DatabaseConnected bool    `json:"database_connected"`
	CircuitBreaker    string  `json:"circuit_breaker,omitempty" example:"closed"`
	Uptime            float64 `json:"uptime_seconds"`
}

// Health handles health check requests
//
// @Summary Get service health
// @Description Reports document store connectivity, circuit breaker state and uptime. Always returns 200; use /health/ready for gating traffic.
// @Tags Health
// @Produce json
// @Success 200 {object} APIResponse{data=HealthStatus} "Health status"
// @Router /health [get]
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	dbConnected := h.store.Ping(r.Context()) == nil

	status := "healthy"
	if !dbConnected {
		status = "degraded"
	}

	health := HealthStatus{
		Status:            status,
		Version:           h.version,
		DatabaseConnected: dbConnected,
		Uptime:            time.Since(h.startTime).Seconds(),
	}
	if br, ok := h.store.(breakerReporter); ok {
		health.CircuitBreaker = br.BreakerState()
	}

	NewResponseWriter(w, r).Success(health)
}

// HealthLive handles liveness probe requests (Kubernetes-style)
// Returns 200 OK if the process is alive, regardless of dependencies
//
// @Summary Liveness probe
// @Description Returns 200 while the process is serving HTTP, regardless of the document store.
// @Tags Health
// @Produce json
// @Success 200 {object} APIResponse "Service is alive"
// @Router /health/live [get]
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	NewResponseWriter(w, r).Success(map[string]interface{}{
		"alive":          true,
		"uptime_seconds": time.Since(h.startTime).Seconds(),
	})
}

// HealthReady handles readiness probe requests (Kubernetes-style)
// Returns 200 OK only if the document store answers a ping
//
// @Summary Readiness probe
// @Description Returns 200 when the document store answers a ping and 503 otherwise.
// @Tags Health
// @Produce json
// @Success 200 {object} APIResponse "Service is ready"
// @Failure 503 {object} APIResponse "Service is not ready"
// @Router /health/ready [get]
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	if err := h.store.Ping(r.Context()); err != nil {
		logging.Ctx(r.Context()).Warn().Err(err).Str("operation", "ping").Msg("Readiness check failed")
		NewResponseWriter(w, r).ServiceUnavailable(msgStoreNotReady)
		return
	}

	NewResponseWriter(w, r).Success(map[string]interface{}{
		"database_connected": true,
		"ready_to_serve":     true,
	})
}

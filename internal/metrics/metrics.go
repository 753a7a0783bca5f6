// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package metrics registers the Prometheus collectors of the sync client and
// exposes small helpers so callers never touch label plumbing directly.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	rpcCallsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "note_sync_rpc_calls_total",
		Help: "RPC calls by method and outcome",
	}, []string{"method", "outcome"})

	rpcDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "note_sync_rpc_duration_seconds",
		Help:    "RPC round trip duration in seconds",
		Buckets: []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10, 30},
	}, []string{"method"})

	retriesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "note_sync_retries_total",
		Help: "Retried operations by operation name and error kind",
	}, []string{"operation", "kind"})

	reconnectsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "note_sync_reconnects_total",
		Help: "Reconnects performed by the retry policy",
	}, []string{"outcome"})

	imagesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "note_sync_images_total",
		Help: "Assembled images by kind and outcome",
	}, []string{"kind", "outcome"})

	chunksTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "note_sync_chunks_total",
		Help: "Completed sync chunk fetches by store",
	}, []string{"store"})

	lastSyncUSN = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "note_sync_last_usn",
		Help: "High-water mark reached by the last sync pass",
	})
)

// ObserveRPC records one RPC round trip.
func ObserveRPC(method, outcome string, took time.Duration) {
	rpcCallsTotal.WithLabelValues(method, outcome).Inc()
	rpcDuration.WithLabelValues(method).Observe(took.Seconds())
}

func RecordRetry(operation, kind string) {
	retriesTotal.WithLabelValues(operation, kind).Inc()
}

func RecordReconnect(ok bool) {
	outcome := "ok"
	if !ok {
		outcome = "failed"
	}
	reconnectsTotal.WithLabelValues(outcome).Inc()
}

func RecordImage(kind string, ok bool) {
	outcome := "ok"
	if !ok {
		outcome = "failed"
	}
	imagesTotal.WithLabelValues(kind, outcome).Inc()
}

func RecordChunk(store string) {
	chunksTotal.WithLabelValues(store).Inc()
}

func SetLastUSN(usn int32) {
	lastSyncUSN.Set(float64(usn))
}

// Handler serves the default registry in the Prometheus text format.
func Handler() http.Handler {
	return promhttp.Handler()
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http serves the local status endpoint of the sync client: a
// liveness probe, the outcome of the last sync pass, build information and
// the Prometheus metrics. Every request gets a trace id and an access log
// line.
package http

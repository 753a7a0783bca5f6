// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging)

	router.Get("/healthz", h.health)
	router.Get("/api/version", h.getVersion)
	router.Get("/api/sync/status", h.getSyncStatus)
	router.Method(http.MethodGet, "/metrics", h.metrics)

	router.MethodNotAllowed(methodNotAllowed)

	return router
}

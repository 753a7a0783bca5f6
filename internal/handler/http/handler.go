// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-note-sync/internal/logger"
	"github.com/MKhiriev/go-note-sync/internal/metrics"
	"github.com/MKhiriev/go-note-sync/internal/service"
	"github.com/MKhiriev/go-note-sync/models"
)

type Handler struct {
	status    service.StatusProvider
	buildInfo models.AppBuildInfo
	metrics   http.Handler

	logger *logger.Logger
}

func NewHandler(status service.StatusProvider, buildInfo models.AppBuildInfo, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		status:    status,
		buildInfo: buildInfo,
		metrics:   metrics.Handler(),
		logger:    logger,
	}
}

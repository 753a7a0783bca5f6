// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-note-sync/internal/logger"
	"github.com/MKhiriev/go-note-sync/internal/utils"
	"github.com/MKhiriev/go-note-sync/models"
)

// syncStatusResponse reports the last finished pass. Healthy is false before
// the first pass and after a failed one.
type syncStatusResponse struct {
	Healthy  bool                `json:"healthy"`
	LastPass *models.PassSummary `json:"lastPass,omitempty"`
}

func (h *Handler) getSyncStatus(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	summary, ok := h.status.LastPass()
	resp := syncStatusResponse{Healthy: ok && summary.Error == ""}
	if ok {
		resp.LastPass = &summary
	}

	if _, err := utils.WriteJSON(w, resp, http.StatusOK); err != nil {
		log.Err(err).Str("func", "*Handler.getSyncStatus").Msg("error writing sync status")
	}
}

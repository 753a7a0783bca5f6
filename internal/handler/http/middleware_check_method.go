// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-note-sync/internal/logger"
)

// methodNotAllowed is registered as the router's MethodNotAllowed handler. A
// path served under another method answers 404 instead of chi's 405, so the
// status endpoint does not advertise which routes exist.
func methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	logger.FromRequest(r).Debug().
		Str("func", "methodNotAllowed").
		Str("method", r.Method).
		Str("path", r.URL.Path).
		Msg("route exists under another method")

	w.WriteHeader(http.StatusNotFound)
}

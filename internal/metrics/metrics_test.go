// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandler_ExposesRecordedSeries(t *testing.T) {
	ObserveRPC("getSyncState", "ok", 20*time.Millisecond)
	RecordRetry("getFilteredSyncChunk", "transport")
	RecordReconnect(true)
	RecordImage("ink", false)
	RecordChunk("primary")
	SetLastUSN(42)

	rec := httptest.NewRecorder()
	Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)

	for _, want := range []string{
		`note_sync_rpc_calls_total{method="getSyncState",outcome="ok"}`,
		`note_sync_retries_total{kind="transport",operation="getFilteredSyncChunk"}`,
		`note_sync_reconnects_total{outcome="ok"}`,
		`note_sync_images_total{kind="ink",outcome="failed"}`,
		`note_sync_chunks_total{store="primary"}`,
		`note_sync_last_usn 42`,
	} {
		assert.Contains(t, string(body), want)
	}
}

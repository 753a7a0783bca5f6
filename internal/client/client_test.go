// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-note-sync/internal/config"
	"github.com/MKhiriev/go-note-sync/internal/logger"
	"github.com/MKhiriev/go-note-sync/internal/mock"
	"github.com/MKhiriev/go-note-sync/internal/service"
	"github.com/MKhiriev/go-note-sync/internal/store"
	"github.com/MKhiriev/go-note-sync/models"
)

// ── ErrorBanner ─────────────────────────────────────────────────────────────

func TestErrorBanner_Nil(t *testing.T) {
	assert.Empty(t, ErrorBanner(nil))
}

func TestErrorBanner_PlainError(t *testing.T) {
	out := ErrorBanner(errors.New("disk full"))

	assert.Contains(t, out, "Error")
	assert.Contains(t, out, "disk full")
}

func TestErrorBanner_CommunicationError(t *testing.T) {
	err := &service.CommunicationError{
		Kind:              service.KindRateLimited,
		Op:                "getSyncChunk",
		RetryAfterMinutes: 2,
		Err:               errors.New("rate limited"),
	}

	out := ErrorBanner(err)

	assert.Contains(t, out, "API rate limit exceeded.  Please try again in 2 minutes.")
	assert.Contains(t, out, "operation getSyncChunk, rate_limited error")
	assert.NotContains(t, out, "retries")
}

func TestErrorBanner_ExhaustedShowsRetries(t *testing.T) {
	err := &service.CommunicationError{
		Kind:      service.KindTransport,
		Op:        "getNote",
		Attempts:  3,
		Exhausted: true,
		Err:       errors.New("connection reset"),
	}

	out := ErrorBanner(err)

	assert.Contains(t, out, "Gave up after 3 retries")
	assert.Contains(t, out, "3 retries")
}

// ── render ──────────────────────────────────────────────────────────────────

func TestRenderSummary(t *testing.T) {
	start := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	out := renderSummary(models.PassSummary{
		StartedAt:       start,
		FinishedAt:      start.Add(1500 * time.Millisecond),
		FullSync:        true,
		HighUSN:         120,
		UpdateCount:     130,
		Chunks:          2,
		Notes:           7,
		LinkedFailures:  []string{"ln-1"},
		LinkedNotebooks: 1,
	})

	assert.Contains(t, out, "Sync pass (full)")
	assert.Contains(t, out, "120 / 130")
	assert.Contains(t, out, "1.5s")
	assert.Contains(t, out, "linked notebook ln-1 failed")
}

func TestRenderSummary_Incremental(t *testing.T) {
	out := renderSummary(models.PassSummary{})

	assert.Contains(t, out, "Sync pass (incremental)")
	assert.NotContains(t, out, "took")
}

func TestRenderState(t *testing.T) {
	out := renderState(models.SyncState{UpdateCount: 50, FullSyncBefore: 1_700_000_000_000}, 45)

	assert.Contains(t, out, "update count")
	assert.Contains(t, out, "pending")
	assert.Contains(t, out, "5\n")
	assert.Contains(t, out, "2023-11-14T22:13:20Z")
}

func TestRenderState_AheadIsNotNegative(t *testing.T) {
	out := renderState(models.SyncState{UpdateCount: 10}, 12)

	assert.NotContains(t, out, "-2")
}

func TestRenderNotebooks(t *testing.T) {
	out := renderNotebooks([]models.Notebook{
		{GUID: "nb-1", Name: "Inbox", DefaultNotebook: true},
		{GUID: "nb-2", Name: "Recipes", Stack: "Home"},
	})

	assert.Contains(t, out, "Inbox (default)")
	assert.Contains(t, out, "Recipes")
	assert.Contains(t, out, "Home")
}

func TestRenderNotebooks_Empty(t *testing.T) {
	assert.Contains(t, renderNotebooks(nil), "no notebooks")
}

func TestRenderTags(t *testing.T) {
	out := renderTags([]models.Tag{{GUID: "t-1", Name: "work"}, {GUID: "t-2", Name: "urgent", ParentGUID: "t-1"}})

	assert.Contains(t, out, "work")
	assert.Contains(t, out, "urgent")
	assert.Contains(t, renderTags(nil), "no tags")
}

// ── wiring helpers ──────────────────────────────────────────────────────────

func TestServiceBaseURL(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.ClientService
		want string
	}{
		{"default port", config.ClientService{Host: "www.evernote.com", TLSPort: 443}, "https://www.evernote.com"},
		{"unset port", config.ClientService{Host: "www.evernote.com"}, "https://www.evernote.com"},
		{"custom port", config.ClientService{Host: "sandbox.test", TLSPort: 8443}, "https://sandbox.test:8443"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, serviceBaseURL(tt.cfg))
		})
	}
}

func TestTokenSource_PrefersInlineToken(t *testing.T) {
	src := tokenSource(config.ClientService{Token: "S=s1:U=1:E=1:C=x", TokenFile: "/does/not/exist"})

	token, err := src.Token(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "S=s1:U=1:E=1:C=x", token)
}

func TestTokenSource_FallsBackToFile(t *testing.T) {
	src := tokenSource(config.ClientService{TokenFile: "/does/not/exist"})

	_, err := src.Token(context.Background())

	assert.Error(t, err)
}

// ── App ─────────────────────────────────────────────────────────────────────

func TestApp_Ink_ResourceNotSynced(t *testing.T) {
	ctrl := gomock.NewController(t)
	local := mock.NewMockLocalStorage(ctrl)
	local.EXPECT().GetResource(gomock.Any(), "r-1").Return(models.Resource{}, store.ErrResourceNotFound)

	var out bytes.Buffer
	app := &App{local: local, out: &out, logger: logger.Nop()}

	err := app.Ink(context.Background(), "r-1", "")

	require.Error(t, err)
	assert.ErrorIs(t, err, store.ErrResourceNotFound)
	assert.Contains(t, err.Error(), "not synced yet")
	assert.Empty(t, out.String())
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-note-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// LocalLookup is the part of the local store the chunk fetcher reads while
// hydrating.
type LocalLookup interface {
	// TagName resolves a tag guid. ok is false for unknown tags.
	TagName(ctx context.Context, guid string) (name string, ok bool, err error)

	NoteExists(ctx context.Context, guid string) (bool, error)
}

// PassRunner runs one sync pass.
type PassRunner interface {
	Run(ctx context.Context) (models.PassSummary, error)
}

// StatusProvider exposes the outcome of the most recent sync pass.
type StatusProvider interface {
	// LastPass returns the last finished pass. ok is false before the first
	// pass completes.
	LastPass() (summary models.PassSummary, ok bool)
}

// SyncJob runs sync passes in the background.
type SyncJob interface {
	// Start launches the background goroutine. It syncs every interval,
	// defaulting to 5 minutes if interval is zero or negative. Any
	// previously running job is stopped before the new one begins.
	Start(ctx context.Context, interval time.Duration)

	// Stop signals the background goroutine to exit and blocks until it
	// has fully terminated.
	Stop()
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/go-note-sync/internal/logger"
	"github.com/MKhiriev/go-note-sync/internal/metrics"
	"github.com/MKhiriev/go-note-sync/internal/store"
	"github.com/MKhiriev/go-note-sync/models"
)

// primaryScope is the sync state scope of the account's own shard.
const primaryScope = ""

// SyncOptions controls what a pass asks for.
type SyncOptions struct {
	ChunkSize int
	Selection models.ChunkSelection
	// FullSync forces a full pass; a pass also runs full when nothing was
	// synced yet.
	FullSync bool
}

// Syncer pulls every change since the stored high-water mark into the local
// store: first the account's own shard, then every known linked notebook.
type Syncer struct {
	sessions *SessionManager
	state    *StateService
	fetcher  *ChunkFetcher
	local    store.LocalStorage
	opts     SyncOptions
	logger   *logger.Logger

	mu   sync.Mutex
	last *models.PassSummary
}

func NewSyncer(sessions *SessionManager, state *StateService, fetcher *ChunkFetcher, local store.LocalStorage, opts SyncOptions, log *logger.Logger) *Syncer {
	if opts.ChunkSize <= 0 {
		opts.ChunkSize = 100
	}
	if opts.Selection == 0 {
		opts.Selection = models.SyncChunkAll
	}
	return &Syncer{
		sessions: sessions,
		state:    state,
		fetcher:  fetcher,
		local:    local,
		opts:     opts,
		logger:   log,
	}
}

// Run implements PassRunner. A linked notebook that fails to sync is
// recorded in the summary and does not fail the pass.
func (s *Syncer) Run(ctx context.Context) (models.PassSummary, error) {
	summary := models.PassSummary{StartedAt: time.Now()}

	err := s.run(ctx, &summary)
	summary.FinishedAt = time.Now()
	if err != nil {
		summary.Error = err.Error()
	}

	s.mu.Lock()
	s.last = &summary
	s.mu.Unlock()

	return summary, err
}

// LastPass implements StatusProvider.
func (s *Syncer) LastPass() (models.PassSummary, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.last == nil {
		return models.PassSummary{}, false
	}
	return *s.last, true
}

func (s *Syncer) run(ctx context.Context, summary *models.PassSummary) error {
	if err := s.sessions.Connect(ctx); err != nil {
		return err
	}
	if user, ok := s.sessions.User(); ok {
		if err := s.local.UpsertUser(ctx, user); err != nil {
			return fmt.Errorf("store user: %w", err)
		}
	}

	state, err := s.state.GetSyncState(ctx)
	if err != nil {
		return err
	}

	after, err := s.local.GetHighUSN(ctx, primaryScope)
	if err != nil {
		return fmt.Errorf("read high-water mark: %w", err)
	}
	summary.FullSync = s.opts.FullSync || after == 0
	summary.UpdateCount = state.UpdateCount

	high, err := s.pull(ctx, summary, primaryScope, after, state.UpdateCount, func(ctx context.Context, req ChunkRequest) (ChunkResult, error) {
		return s.fetcher.Fetch(ctx, req)
	})
	summary.HighUSN = high
	metrics.SetLastUSN(high)
	if err != nil {
		return err
	}

	if !s.opts.Selection.Has(models.SyncChunkLinkedNotebooks) {
		return nil
	}
	linked, err := s.local.ListLinkedNotebooks(ctx)
	if err != nil {
		return fmt.Errorf("list linked notebooks: %w", err)
	}
	for _, ln := range linked {
		if err := s.syncLinked(ctx, summary, ln); err != nil {
			if ctx.Err() != nil {
				return err
			}
			s.logger.Err(err).Str("func", "Syncer.syncLinked").Str("notebook", ln.GUID).Msg("linked notebook sync failed")
			summary.LinkedFailures = append(summary.LinkedFailures, ln.GUID)
			continue
		}
		summary.LinkedNotebooks++
	}

	return nil
}

func (s *Syncer) syncLinked(ctx context.Context, summary *models.PassSummary, ln models.LinkedNotebook) error {
	if err := s.sessions.AuthenticateLinked(ctx, ln); err != nil {
		return err
	}

	state, err := s.state.GetLinkedNotebookSyncState(ctx, ln)
	if err != nil {
		return err
	}
	after, err := s.local.GetHighUSN(ctx, ln.GUID)
	if err != nil {
		return fmt.Errorf("read linked high-water mark: %w", err)
	}

	_, err = s.pull(ctx, summary, ln.GUID, after, state.UpdateCount, func(ctx context.Context, req ChunkRequest) (ChunkResult, error) {
		return s.fetcher.FetchLinked(ctx, ln, req)
	})
	return err
}

// pull fetches chunks from after up to target and applies them. It stops
// as soon as a chunk makes no forward progress and returns the last stored
// high-water mark.
func (s *Syncer) pull(ctx context.Context, summary *models.PassSummary, scope string, after, target int32,
	fetch func(context.Context, ChunkRequest) (ChunkResult, error)) (int32, error) {
	for after < target {
		res, err := fetch(ctx, ChunkRequest{
			AfterUSN:   after,
			MaxEntries: s.opts.ChunkSize,
			Selection:  s.opts.Selection,
			FullSync:   summary.FullSync,
		})
		if err != nil {
			return after, err
		}

		if err = s.apply(ctx, res); err != nil {
			return after, err
		}
		summary.Chunks++
		summary.Notes += len(res.Chunk.Notes)
		summary.Resources += len(res.Chunk.Resources)
		summary.Images += len(res.Images)
		summary.Expunged += expungedCount(res.Chunk)

		high := res.Chunk.ChunkHighUSN
		if high <= after {
			s.logger.Warn().Str("func", "Syncer.pull").Str("scope", scope).Int32("usn", after).Msg("chunk made no progress")
			break
		}
		if err = s.local.SetHighUSN(ctx, scope, high); err != nil {
			return after, fmt.Errorf("store high-water mark: %w", err)
		}
		after = high
	}
	return after, nil
}

func (s *Syncer) apply(ctx context.Context, res ChunkResult) error {
	if err := s.local.ApplyChunk(ctx, res.Chunk); err != nil {
		return fmt.Errorf("apply chunk: %w", err)
	}

	var errs []error
	for _, img := range res.Images {
		stored, err := EncodeImage(img)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if err = s.local.SaveImage(ctx, stored); err != nil {
			errs = append(errs, fmt.Errorf("save %s %s: %w", img.Kind, img.GUID, err))
		}
	}
	if len(errs) > 0 {
		s.logger.Warn().Err(errors.Join(errs...)).Str("func", "Syncer.apply").Msg("some images were not stored")
	}
	return nil
}

func expungedCount(c models.SyncChunk) int {
	return len(c.ExpungedNotes) + len(c.ExpungedNotebooks) + len(c.ExpungedTags) +
		len(c.ExpungedSearches) + len(c.ExpungedLinkedNotebooks)
}

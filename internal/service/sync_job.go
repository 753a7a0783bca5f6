// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-note-sync/internal/logger"
)

const defaultSyncInterval = 5 * time.Minute

type syncJob struct {
	runner PassRunner
	logger *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewSyncJob creates a SyncJob that calls runner.Run on a ticker. The job is
// idle until Start is called.
func NewSyncJob(runner PassRunner, log *logger.Logger) SyncJob {
	return &syncJob{runner: runner, logger: log}
}

// Start implements SyncJob. A first pass runs immediately, then one per
// interval. Passes never overlap: a tick that fires while a pass is running
// is dropped by the ticker.
func (j *syncJob) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = defaultSyncInterval
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		j.runOnce(jobCtx)
		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				j.runOnce(jobCtx)
			}
		}
	}()
}

func (j *syncJob) runOnce(ctx context.Context) {
	if ctx.Err() != nil {
		return
	}
	summary, err := j.runner.Run(ctx)
	if err != nil {
		j.logger.Err(err).Str("func", "syncJob.runOnce").Msg("sync pass failed")
		return
	}
	j.logger.Info().Str("func", "syncJob.runOnce").Int32("usn", summary.HighUSN).
		Int("chunks", summary.Chunks).Msg("sync pass finished")
}

// Stop implements SyncJob. Safe to call when the job is not running.
func (j *syncJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}

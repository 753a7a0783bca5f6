// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/MKhiriev/go-note-sync/internal/logger"
	"github.com/MKhiriev/go-note-sync/internal/service"
)

type namedWorker struct {
	name   string
	worker Worker
}

type Workers struct {
	workers []namedWorker
	logger  *logger.Logger
}

func NewWorkers(logger *logger.Logger) *Workers {
	return &Workers{logger: logger}
}

// Add registers worker under name. Nil workers are skipped so optional
// workers can be added unconditionally.
func (w *Workers) Add(name string, worker Worker) *Workers {
	if worker != nil {
		w.workers = append(w.workers, namedWorker{name: name, worker: worker})
	}
	return w
}

func (w *Workers) Len() int {
	return len(w.workers)
}

// Run starts every worker and waits for all of them. The first error cancels
// the shared context and is returned wrapped with the worker name.
func (w *Workers) Run(ctx context.Context) error {
	g, gCtx := errgroup.WithContext(ctx)

	for _, nw := range w.workers {
		g.Go(func() error {
			w.logger.Info().Str("func", "Workers.Run").Str("worker", nw.name).Msg("worker started")
			if err := nw.worker.Run(gCtx); err != nil {
				w.logger.Err(err).Str("func", "Workers.Run").Str("worker", nw.name).Msg("worker failed")
				return fmt.Errorf("%s: %w", nw.name, err)
			}
			w.logger.Info().Str("func", "Workers.Run").Str("worker", nw.name).Msg("worker stopped")
			return nil
		})
	}

	return g.Wait()
}

// SyncJobWorker runs job every interval for as long as the worker context
// lives.
func SyncJobWorker(job service.SyncJob, interval time.Duration) Worker {
	return WorkerFunc(func(ctx context.Context) error {
		job.Start(ctx, interval)
		<-ctx.Done()
		job.Stop()
		return nil
	})
}

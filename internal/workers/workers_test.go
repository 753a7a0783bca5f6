// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-note-sync/internal/logger"
	"github.com/MKhiriev/go-note-sync/internal/mock"
)

// countingWorker records how many times Run was called and blocks until
// its context is cancelled.
type countingWorker struct {
	runCount atomic.Int32
}

func (c *countingWorker) Run(ctx context.Context) error {
	c.runCount.Add(1)
	<-ctx.Done()
	return nil
}

// ── Run ─────────────────────────────────────────────────────────────────────

func TestWorkers_Run_AllWorkersAreCalled(t *testing.T) {
	w1, w2, w3 := &countingWorker{}, &countingWorker{}, &countingWorker{}
	ws := NewWorkers(logger.Nop()).Add("one", w1).Add("two", w2).Add("three", w3)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- ws.Run(ctx) }()

	require.Eventually(t, func() bool {
		return w1.runCount.Load() == 1 && w2.runCount.Load() == 1 && w3.runCount.Load() == 1
	}, time.Second, 5*time.Millisecond)

	cancel()
	assert.NoError(t, <-done)
}

func TestWorkers_Run_Empty(t *testing.T) {
	ws := NewWorkers(logger.Nop())

	assert.NoError(t, ws.Run(context.Background()))
	assert.Equal(t, 0, ws.Len())
}

func TestWorkers_Add_SkipsNil(t *testing.T) {
	ws := NewWorkers(logger.Nop()).Add("nil", nil).Add("one", &countingWorker{})

	assert.Equal(t, 1, ws.Len())
}

func TestWorkers_Run_FirstErrorCancelsOthers(t *testing.T) {
	boom := errors.New("boom")
	blocked := &countingWorker{}

	ws := NewWorkers(logger.Nop()).
		Add("blocked", blocked).
		Add("failing", WorkerFunc(func(context.Context) error { return boom }))

	err := ws.Run(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "failing")
	assert.Equal(t, int32(1), blocked.runCount.Load())
}

func TestWorkers_Run_WorkerFinishesEarly(t *testing.T) {
	finished := false
	ws := NewWorkers(logger.Nop()).Add("short", WorkerFunc(func(context.Context) error {
		finished = true
		return nil
	}))

	assert.NoError(t, ws.Run(context.Background()))
	assert.True(t, finished)
}

// ── SyncJobWorker ───────────────────────────────────────────────────────────

func TestSyncJobWorker_StartsAndStops(t *testing.T) {
	ctrl := gomock.NewController(t)
	job := mock.NewMockSyncJob(ctrl)

	started := make(chan struct{})
	gomock.InOrder(
		job.EXPECT().Start(gomock.Any(), time.Minute).Do(func(context.Context, time.Duration) { close(started) }),
		job.EXPECT().Stop(),
	)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- SyncJobWorker(job, time.Minute).Run(ctx) }()

	<-started
	cancel()
	assert.NoError(t, <-done)
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package workers runs the background workers of the watch command as one
// group: the periodic sync job, the trusted-bundle watcher and the status
// server.
//
// Workers share a context. The first worker to fail cancels the others and
// its error is returned from [Workers.Run].
package workers

import "context"

// Worker is a long-running background task.
//
// Run blocks until ctx is cancelled or the worker cannot continue. A worker
// stopped by cancellation returns nil.
type Worker interface {
	Run(ctx context.Context) error
}

// WorkerFunc adapts a plain function to [Worker].
type WorkerFunc func(ctx context.Context) error

func (f WorkerFunc) Run(ctx context.Context) error {
	return f(ctx)
}

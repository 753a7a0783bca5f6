// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-note-sync/internal/logger"
	"github.com/MKhiriev/go-note-sync/internal/metrics"
)

// MaxRetries bounds the reconnect-and-reissue cycles of one logical call. A
// call is therefore issued at most MaxRetries+1 times.
const MaxRetries = 3

// retryPolicy re-issues a call after rebuilding the sessions it depends on.
type retryPolicy struct {
	max int
	// reconnect rebuilds the primary session, and the linked session for
	// linked operations.
	reconnect func(ctx context.Context) error
	logger    *logger.Logger
}

// retry runs call until it succeeds, fails with a terminal error or has been
// retried p.max times. Every failure is returned as a *CommunicationError.
func retry[T any](ctx context.Context, p retryPolicy, op string, call func(ctx context.Context) (T, error)) (T, error) {
	var zero T

	for attempt := 0; ; attempt++ {
		res, err := call(ctx)
		if err == nil {
			return res, nil
		}

		kind := Classify(err)
		if !kind.Retryable() || ctx.Err() != nil {
			p.logger.Err(err).Str("func", "retry").Str("op", op).Str("kind", kind.String()).Msg("call failed")
			return zero, newCommunicationError(op, err, attempt)
		}

		if attempt >= p.max {
			metrics.RecordRetry(op, "exhausted")
			p.logger.Err(err).Str("func", "retry").Str("op", op).Int("attempts", attempt).Msg("retries exhausted")

			return zero, &CommunicationError{Kind: kind, Op: op, Attempts: attempt, Exhausted: true, Err: err}
		}

		metrics.RecordRetry(op, kind.String())
		p.logger.Warn().Err(err).Str("func", "retry").Str("op", op).Int("attempt", attempt+1).Msg("retrying after reconnect")

		// A failed reconnect surfaces through the re-issued call.
		rerr := p.reconnect(ctx)
		metrics.RecordReconnect(rerr == nil)
		if rerr != nil {
			p.logger.Err(rerr).Str("func", "retry").Str("op", op).Msg("reconnect failed")
		}
	}
}

// retryErr is retry for calls without a result.
func retryErr(ctx context.Context, p retryPolicy, op string, call func(ctx context.Context) error) error {
	_, err := retry(ctx, p, op, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, call(ctx)
	})
	return err
}

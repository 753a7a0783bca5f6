// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-note-sync/internal/adapter"
	"github.com/MKhiriev/go-note-sync/internal/logger"
	"github.com/MKhiriev/go-note-sync/internal/transport"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countingPolicy returns a policy whose reconnects are counted in *n.
func countingPolicy(n *int, reconnectErr error) retryPolicy {
	return retryPolicy{
		max: MaxRetries,
		reconnect: func(context.Context) error {
			*n++
			return reconnectErr
		},
		logger: logger.Nop(),
	}
}

// ── retry ────────────────────────────────────────────────────────────────────

func TestRetry_SucceedsFirstTry(t *testing.T) {
	var reconnects, calls int
	got, err := retry(context.Background(), countingPolicy(&reconnects, nil), "getSyncState",
		func(context.Context) (int, error) {
			calls++
			return 7, nil
		})

	require.NoError(t, err)
	assert.Equal(t, 7, got)
	assert.Equal(t, 1, calls)
	assert.Zero(t, reconnects)
}

func TestRetry_TransportErrorIsBounded(t *testing.T) {
	var reconnects, calls int
	terr := &transport.Error{Op: "getSyncChunk", Err: errors.New("connection reset")}

	_, err := retry(context.Background(), countingPolicy(&reconnects, nil), "getSyncChunk",
		func(context.Context) (struct{}, error) {
			calls++
			return struct{}{}, terr
		})

	require.Error(t, err)
	assert.Equal(t, MaxRetries+1, calls)
	assert.Equal(t, MaxRetries, reconnects)

	var ce *CommunicationError
	require.ErrorAs(t, err, &ce)
	assert.True(t, ce.Exhausted)
	assert.Equal(t, KindTransport, ce.Kind)
	assert.Equal(t, MaxRetries, ce.Attempts)
	assert.Equal(t, "getSyncChunk", ce.Op)
	assert.ErrorIs(t, err, terr)
}

func TestRetry_RecoversAfterReconnect(t *testing.T) {
	var reconnects, calls int
	got, err := retry(context.Background(), countingPolicy(&reconnects, nil), "getNote",
		func(context.Context) (string, error) {
			calls++
			if calls < 3 {
				return "", errors.New("stream desynced")
			}
			return "ok", nil
		})

	require.NoError(t, err)
	assert.Equal(t, "ok", got)
	assert.Equal(t, 3, calls)
	assert.Equal(t, 2, reconnects)
}

func TestRetry_TerminalErrorsAreNotRetried(t *testing.T) {
	tests := []struct {
		name string
		err  error
		kind ErrorKind
	}{
		{"user", &adapter.UserException{Code: adapter.ErrorCodeBadDataFormat}, KindUser},
		{"not found", &adapter.NotFoundException{Identifier: "Note.guid", Key: "n1"}, KindNotFound},
		{"system", &adapter.SystemException{Code: adapter.ErrorCodeInternalError}, KindSystem},
		{"rate limited", &adapter.SystemException{Code: adapter.ErrorCodeRateLimitReached, RateLimitDuration: 120}, KindRateLimited},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var reconnects, calls int
			err := retryErr(context.Background(), countingPolicy(&reconnects, nil), "updateNote",
				func(context.Context) error {
					calls++
					return tt.err
				})

			var ce *CommunicationError
			require.ErrorAs(t, err, &ce)
			assert.Equal(t, tt.kind, ce.Kind)
			assert.False(t, ce.Exhausted)
			assert.Equal(t, 1, calls)
			assert.Zero(t, reconnects)
		})
	}
}

func TestRetry_CanceledContextStops(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	var reconnects, calls int

	err := retryErr(ctx, countingPolicy(&reconnects, nil), "getSyncChunk", func(context.Context) error {
		calls++
		cancel()
		return errors.New("read: connection reset")
	})

	require.Error(t, err)
	assert.Equal(t, 1, calls)
	assert.Zero(t, reconnects)
}

func TestRetry_FailedReconnectStillRetries(t *testing.T) {
	var reconnects, calls int
	_, err := retry(context.Background(), countingPolicy(&reconnects, errors.New("dial refused")), "listTags",
		func(context.Context) ([]string, error) {
			calls++
			return nil, ErrNotConnected
		})

	var ce *CommunicationError
	require.ErrorAs(t, err, &ce)
	assert.True(t, ce.Exhausted)
	assert.Equal(t, MaxRetries+1, calls)
	assert.Equal(t, MaxRetries, reconnects)
	assert.ErrorIs(t, err, ErrNotConnected)
}

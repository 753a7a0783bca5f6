// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils provides small helpers shared across the client: type-safe
// context keys and identifier generation.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

func (c contextKey) String() string {
	return string(c)
}

// PassIDCtxKey stores the identifier of the running sync pass so that every
// log line and RPC envelope of the pass can be correlated.
var PassIDCtxKey = contextKey("syncPassID")

// WithPassID returns a copy of ctx carrying id.
func WithPassID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, PassIDCtxKey, id)
}

// PassIDFromContext returns the sync pass id stored in ctx. ok is false when
// no id is present.
func PassIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(PassIDCtxKey).(string)
	return id, ok && id != ""
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package transport

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/transport_mock.go -package=mock

// Caller issues one RPC and decodes its result into result. result may be nil
// for void methods.
type Caller interface {
	Call(ctx context.Context, method string, params, result any) error
}

// Conn is an open RPC channel bound to one endpoint.
type Conn interface {
	Caller

	// Endpoint returns the endpoint the channel was opened against.
	Endpoint() Endpoint

	// Close releases the channel. It never fails in a way callers can act
	// on; the returned error is for logging only.
	Close() error
}

// Opener opens RPC channels. The session manager and the linked notebook
// authenticator depend on it rather than on [Factory] so tests can hand out
// fake channels.
type Opener interface {
	Open(ctx context.Context, endpoint Endpoint) (Conn, error)
}

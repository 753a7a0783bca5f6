// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package transport

import (
	"errors"
	"fmt"
)

var (
	// ErrSessionClosed is returned by Call after Close.
	ErrSessionClosed = errors.New("session is closed")

	// ErrNoCertificates is returned when a trusted bundle directory holds no
	// usable PEM certificate.
	ErrNoCertificates = errors.New("no certificates found")

	// ErrMalformedReply is returned when the reply envelope cannot be decoded.
	ErrMalformedReply = errors.New("malformed reply")
)

// Error is a transport-level failure: the call may or may not have reached
// the remote side and did not produce a decodable reply.
type Error struct {
	// Op is the RPC method or the lifecycle step ("open", "close").
	Op string
	// URL of the endpoint.
	URL string
	// StatusCode is set when the remote answered with a non-2xx status.
	StatusCode int
	Err        error
}

func (e *Error) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("transport %s %s: http %d: %v", e.Op, e.URL, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("transport %s %s: %v", e.Op, e.URL, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// RemoteException is an exception raised by the remote service and carried
// in the reply envelope.
type RemoteException struct {
	// Type is one of "user", "system", "notFound". Anything else is
	// treated as unclassified by callers.
	Type              string `json:"type"`
	ErrorCode         int    `json:"errorCode,omitempty"`
	Message           string `json:"message,omitempty"`
	Parameter         string `json:"parameter,omitempty"`
	Identifier        string `json:"identifier,omitempty"`
	Key               string `json:"key,omitempty"`
	RateLimitDuration int32  `json:"rateLimitDuration,omitempty"`
}

func (e *RemoteException) Error() string {
	return fmt.Sprintf("remote %s exception (code %d): %s", e.Type, e.ErrorCode, e.Message)
}

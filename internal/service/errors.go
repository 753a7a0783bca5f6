// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"net"

	"github.com/MKhiriev/go-note-sync/internal/adapter"
	"github.com/MKhiriev/go-note-sync/internal/transport"
)

var (
	ErrVersionMismatch = errors.New("protocol version not accepted by the service")
	ErrNotConnected    = errors.New("session manager is not connected")
	ErrNoToken         = errors.New("no authentication token configured")
	ErrInvalidToken    = errors.New("malformed authentication token")
	ErrNoLinkedSession = errors.New("no linked notebook session")

	ErrInvalidImageSize = errors.New("invalid image size")
	ErrEmptySlice       = errors.New("empty or undecodable image slice")
)

// ErrorKind is the closed set of failure classes.
type ErrorKind int

const (
	KindUser ErrorKind = iota + 1
	KindNotFound
	KindRateLimited
	KindSystem
	KindTransport
	KindUnclassified
)

func (k ErrorKind) String() string {
	switch k {
	case KindUser:
		return "user"
	case KindNotFound:
		return "not_found"
	case KindRateLimited:
		return "rate_limited"
	case KindSystem:
		return "system"
	case KindTransport:
		return "transport"
	case KindUnclassified:
		return "unclassified"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Retryable reports whether a failure of this kind is retried with a
// reconnect.
func (k ErrorKind) Retryable() bool {
	return k == KindTransport || k == KindUnclassified
}

// CommunicationError is the typed failure of every remote operation.
type CommunicationError struct {
	Kind ErrorKind
	// Op names the logical operation, e.g. "getSyncChunk".
	Op string
	// Code is the service error code of user and system exceptions, zero
	// otherwise.
	Code adapter.ErrorCode
	// RetryAfterMinutes is set for KindRateLimited.
	RetryAfterMinutes int
	// Attempts is the number of retries spent before giving up.
	Attempts int
	// Exhausted is set when the call failed with a retryable error on every
	// attempt.
	Exhausted bool

	Err error
}

func (e *CommunicationError) Error() string {
	if e.Exhausted {
		return fmt.Sprintf("%s: giving up after %d retries: %v", e.Op, e.Attempts, e.Err)
	}
	return fmt.Sprintf("%s: %s error: %v", e.Op, e.Kind, e.Err)
}

func (e *CommunicationError) Unwrap() error {
	return e.Err
}

// Message is the text shown to the user.
func (e *CommunicationError) Message() string {
	switch {
	case e.Kind == KindRateLimited:
		unit := "minutes"
		if e.RetryAfterMinutes == 1 {
			unit = "minute"
		}
		return fmt.Sprintf("API rate limit exceeded.  Please try again in %d %s.", e.RetryAfterMinutes, unit)
	case e.Exhausted:
		return fmt.Sprintf("Network error during %s. Gave up after %d retries.", e.Op, e.Attempts)
	case e.Kind == KindUser:
		return fmt.Sprintf("The service rejected %s: %s.", e.Op, e.Code)
	case e.Kind == KindNotFound:
		return fmt.Sprintf("Error during %s: %v.", e.Op, e.Err)
	case e.Kind == KindTransport:
		return fmt.Sprintf("Transport error during %s: %v", e.Op, e.Err)
	case e.Kind == KindSystem:
		return fmt.Sprintf("Service error during %s: %v", e.Op, e.Err)
	default:
		return fmt.Sprintf("Unknown error during %s", e.Op)
	}
}

// RateLimitMinutes converts a suggested wait in seconds into whole minutes,
// always rounding up to at least one.
func RateLimitMinutes(seconds int32) int {
	if seconds < 0 {
		seconds = 0
	}
	return int(seconds)/60 + 1
}

// Classify maps err onto an [ErrorKind]. nil has no kind and returns 0.
func Classify(err error) ErrorKind {
	if err == nil {
		return 0
	}

	var (
		comm   *CommunicationError
		user   *adapter.UserException
		system *adapter.SystemException
		nf     *adapter.NotFoundException
		terr   *transport.Error
		nerr   net.Error
	)
	switch {
	case errors.As(err, &comm):
		return comm.Kind
	case errors.As(err, &user):
		return KindUser
	case errors.As(err, &nf):
		return KindNotFound
	case errors.As(err, &system):
		if system.RateLimited() {
			return KindRateLimited
		}
		return KindSystem
	case errors.Is(err, ErrVersionMismatch), errors.Is(err, ErrNoToken), errors.Is(err, ErrInvalidToken):
		return KindSystem
	case errors.Is(err, ErrNotConnected), errors.Is(err, ErrNoLinkedSession):
		return KindTransport
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return KindTransport
	case errors.As(err, &terr), errors.As(err, &nerr):
		return KindTransport
	default:
		return KindUnclassified
	}
}

// newCommunicationError wraps err for op. An err that already is a
// CommunicationError is returned as is.
func newCommunicationError(op string, err error, attempts int) *CommunicationError {
	var comm *CommunicationError
	if errors.As(err, &comm) {
		return comm
	}

	ce := &CommunicationError{Kind: Classify(err), Op: op, Attempts: attempts, Err: err}

	var (
		user   *adapter.UserException
		system *adapter.SystemException
	)
	switch {
	case errors.As(err, &user):
		ce.Code = user.Code
	case errors.As(err, &system):
		ce.Code = system.Code
		if system.RateLimited() {
			ce.RetryAfterMinutes = RateLimitMinutes(system.RateLimitDuration)
		}
	}

	return ce
}

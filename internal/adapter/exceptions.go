// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import "fmt"

// ErrorCode is the numeric error code carried by user and system exceptions.
type ErrorCode int

const (
	ErrorCodeUnknown ErrorCode = iota + 1
	ErrorCodeBadDataFormat
	ErrorCodePermissionDenied
	ErrorCodeInternalError
	ErrorCodeDataRequired
	ErrorCodeLimitReached
	ErrorCodeQuotaReached
	ErrorCodeInvalidAuth
	ErrorCodeAuthExpired
	ErrorCodeDataConflict
	ErrorCodeENMLValidation
	ErrorCodeShardUnavailable
	ErrorCodeLenTooShort
	ErrorCodeLenTooLong
	ErrorCodeTooFew
	ErrorCodeTooMany
	ErrorCodeUnsupportedOperation
	ErrorCodeTakenDown
	ErrorCodeRateLimitReached
)

var errorCodeNames = map[ErrorCode]string{
	ErrorCodeUnknown:              "UNKNOWN",
	ErrorCodeBadDataFormat:        "BAD_DATA_FORMAT",
	ErrorCodePermissionDenied:     "PERMISSION_DENIED",
	ErrorCodeInternalError:        "INTERNAL_ERROR",
	ErrorCodeDataRequired:         "DATA_REQUIRED",
	ErrorCodeLimitReached:         "LIMIT_REACHED",
	ErrorCodeQuotaReached:         "QUOTA_REACHED",
	ErrorCodeInvalidAuth:          "INVALID_AUTH",
	ErrorCodeAuthExpired:          "AUTH_EXPIRED",
	ErrorCodeDataConflict:         "DATA_CONFLICT",
	ErrorCodeENMLValidation:       "ENML_VALIDATION",
	ErrorCodeShardUnavailable:     "SHARD_UNAVAILABLE",
	ErrorCodeLenTooShort:          "LEN_TOO_SHORT",
	ErrorCodeLenTooLong:           "LEN_TOO_LONG",
	ErrorCodeTooFew:               "TOO_FEW",
	ErrorCodeTooMany:              "TOO_MANY",
	ErrorCodeUnsupportedOperation: "UNSUPPORTED_OPERATION",
	ErrorCodeTakenDown:            "TAKEN_DOWN",
	ErrorCodeRateLimitReached:     "RATE_LIMIT_REACHED",
}

func (c ErrorCode) String() string {
	if name, ok := errorCodeNames[c]; ok {
		return name
	}
	return fmt.Sprintf("ErrorCode(%d)", int(c))
}

// UserException reports a request the service rejected because of the
// caller's input or permissions.
type UserException struct {
	Code      ErrorCode
	Parameter string
}

func (e *UserException) Error() string {
	if e.Parameter == "" {
		return fmt.Sprintf("user exception: %s", e.Code)
	}
	return fmt.Sprintf("user exception: %s (%s)", e.Code, e.Parameter)
}

// SystemException reports a failure on the service side. RateLimitDuration
// is the suggested wait in seconds and is only set with
// [ErrorCodeRateLimitReached].
type SystemException struct {
	Code              ErrorCode
	Message           string
	RateLimitDuration int32
}

func (e *SystemException) Error() string {
	if e.Code == ErrorCodeRateLimitReached {
		return fmt.Sprintf("system exception: %s (retry after %ds)", e.Code, e.RateLimitDuration)
	}
	if e.Message == "" {
		return fmt.Sprintf("system exception: %s", e.Code)
	}
	return fmt.Sprintf("system exception: %s: %s", e.Code, e.Message)
}

// RateLimited reports whether the exception is a rate limit rejection.
func (e *SystemException) RateLimited() bool {
	return e.Code == ErrorCodeRateLimitReached
}

// NotFoundException reports that the object named by Identifier (for
// example "Note.guid") with value Key does not exist.
type NotFoundException struct {
	Identifier string
	Key        string
}

func (e *NotFoundException) Error() string {
	return fmt.Sprintf("not found: %s=%s", e.Identifier, e.Key)
}

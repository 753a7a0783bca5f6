// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Validation errors returned by [ClientConfig.Validate] when a configuration
// group is incomplete or invalid. The underlying ozzo-validation error is
// wrapped alongside.
var (
	// ErrInvalidAppConfigs indicates invalid client identity or log settings.
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidServiceConfigs indicates an unusable remote endpoint
	// (for example, empty host or a store path without a leading slash).
	ErrInvalidServiceConfigs = errors.New("invalid service configuration")
	// ErrInvalidTransportConfigs indicates missing keep-alive or timeout
	// values.
	ErrInvalidTransportConfigs = errors.New("invalid transport configuration")
	// ErrInvalidStorageConfigs indicates invalid client storage settings
	// (for example, empty DSN or unsupported in-memory DSN).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidSyncConfigs indicates a bad chunk size or entity selection.
	ErrInvalidSyncConfigs = errors.New("invalid sync configuration")
	// ErrInvalidWorkerConfigs indicates invalid background worker settings
	// (for example, zero sync interval).
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
)

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Lookups of unknown rows.
var (
	ErrTagNotFound      = errors.New("tag was not found")
	ErrResourceNotFound = errors.New("resource was not found")
	// ErrImageNotFound means no image of the requested kind is stored for
	// the guid.
	ErrImageNotFound = errors.New("image was not found")
	ErrUserNotFound  = errors.New("user was not found")

	ErrUnsupportedDSN = errors.New("unsupported database dsn")
)

// SQL-level failures. Repositories wrap the driver error with one of these.
var (
	ErrBuildingSQLQuery     = errors.New("error building sql query")
	ErrExecutingQuery       = errors.New("error executing sql query")
	ErrBeginningTransaction = errors.New("failed to begin transaction")
	// ErrCommitingTransaction leaves the transaction rolled back.
	ErrCommitingTransaction = errors.New("failed to commit transaction")
	ErrExecutingStatement   = errors.New("failed to execute statement")
	ErrScanningRow          = errors.New("failed to scan row")
	ErrScanningRows         = errors.New("failed to scan rows")
)

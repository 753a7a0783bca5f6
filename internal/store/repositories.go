// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-note-sync/internal/logger"
)

const (
	maxTxAttempts = 3
	txRetryDelay  = 50 * time.Millisecond
)

// repository is the state every table repository shares. q is the database
// itself or, inside [DB.withTx], the open transaction.
type repository struct {
	db *DB
	q  queryer
	b  sq.StatementBuilderType
}

func newRepository(db *DB) repository {
	return repository{db: db, q: db.DB, b: db.builder()}
}

// inTx returns a copy of r bound to tx.
func (r repository) inTx(tx *sql.Tx) repository {
	r.q = tx
	return r
}

func (r repository) isTx() bool {
	_, ok := r.q.(*sql.Tx)
	return ok
}

// exec runs a statement built by one of the build*Query helpers. An empty
// query is a no-op.
func (r repository) exec(ctx context.Context, fn, query string, args []any, buildErr error) error {
	log := logger.FromContext(ctx)

	if buildErr != nil {
		log.Err(buildErr).Str("func", fn).Msg("error building sql query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, buildErr)
	}
	if query == "" {
		return nil
	}

	if _, err := r.q.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", fn).Str("pg_code", postgresError(err)).Msg("failed to execute statement")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}

// withTx runs fn in a transaction. A failure the dialect's classifier marks
// retryable (busy database, serialization failure, lost connection) reruns
// the whole transaction, up to maxTxAttempts times.
func (db *DB) withTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	log := logger.FromContext(ctx)

	var err error
	for attempt := 1; attempt <= maxTxAttempts; attempt++ {
		err = db.runTx(ctx, fn)
		if err == nil || ctx.Err() != nil || db.errorClassificator.Classify(err) != Retryable {
			return err
		}

		log.Warn().Err(err).
			Str("func", "DB.withTx").
			Int("attempt", attempt).
			Msg("retryable transaction failure")

		select {
		case <-ctx.Done():
			return err
		case <-time.After(txRetryDelay * time.Duration(attempt)):
		}
	}
	return err
}

func (db *DB) runTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	log := logger.FromContext(ctx)

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "DB.runTx").Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	if err = fn(tx); err != nil {
		return err
	}

	if commitErr := tx.Commit(); commitErr != nil {
		log.Err(commitErr).Str("func", "DB.runTx").Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, commitErr)
	}
	return nil
}

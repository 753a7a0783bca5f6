// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/MKhiriev/go-note-sync/internal/logger"
)

const (
	postgresMaxOpenConns = 10
	postgresMaxIdleConns = 4
)

// NewConnectPostgres opens a pgx-backed pool for a postgres:// DSN. The
// local store is shared by the sync job and the status server only, so the
// pool stays small.
func NewConnectPostgres(ctx context.Context, dsn string, log *logger.Logger) (*DB, error) {
	conn, err := sql.Open("pgx", dsn)
	if err != nil {
		log.Err(err).Str("func", "NewConnectPostgres").Msg("error opening postgres local store")
		return nil, fmt.Errorf("open postgres local store: %w", err)
	}

	conn.SetMaxOpenConns(postgresMaxOpenConns)
	conn.SetMaxIdleConns(postgresMaxIdleConns)

	if err = conn.PingContext(ctx); err != nil {
		log.Err(err).Str("func", "NewConnectPostgres").Str("pg_code", postgresError(err)).Msg("error pinging postgres local store")
		conn.Close()
		return nil, fmt.Errorf("ping postgres local store: %w", err)
	}
	log.Info().Str("func", "NewConnectPostgres").Msg("connected to postgres local store")

	return &DB{
		DB:                 conn,
		dialect:            DialectPostgres,
		logger:             log,
		errorClassificator: NewPostgresErrorClassifier(),
	}, nil
}

// postgresError returns the SQLSTATE of err, empty for non-server errors.
func postgresError(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

// retryablePgCodes are the SQLSTATEs a chunk transaction is replayed for:
// lost connections, serialization conflicts and a server still starting up.
var retryablePgCodes = map[string]bool{
	pgerrcode.ConnectionException:    true,
	pgerrcode.ConnectionDoesNotExist: true,
	pgerrcode.ConnectionFailure:      true,
	pgerrcode.TransactionRollback:    true,
	pgerrcode.SerializationFailure:   true,
	pgerrcode.DeadlockDetected:       true,
	pgerrcode.CannotConnectNow:       true,
}

// PostgresErrorClassifier implements [ErrorClassificator] for PostgreSQL.
type PostgresErrorClassifier struct{}

func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

// Classify treats the codes in retryablePgCodes, broken pool connections and
// errors pgconn marks safe to retry as retryable. Cancellation never is.
func (c *PostgresErrorClassifier) Classify(err error) ErrorClassification {
	switch {
	case err == nil, errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return NonRetryable
	case errors.Is(err, driver.ErrBadConn), pgconn.SafeToRetry(err):
		return Retryable
	}

	if retryablePgCodes[postgresError(err)] {
		return Retryable
	}
	return NonRetryable
}

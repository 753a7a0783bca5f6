// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-note-sync/internal/logger"
)

type syncStateRepository struct {
	repository
}

func NewSyncStateRepository(db *DB, logger *logger.Logger) SyncStateRepository {
	logger.Debug().Msg("creating sync state repository")
	return &syncStateRepository{repository: newRepository(db)}
}

// GetHighUSN returns 0 for a scope that was never synced.
func (r *syncStateRepository) GetHighUSN(ctx context.Context, scope string) (int32, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectHighUSNQuery(r.b, scope)
	if err != nil {
		log.Err(err).Str("func", "syncStateRepository.GetHighUSN").Msg("error building sql query")
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var usn int32
	err = r.q.QueryRowContext(ctx, query, args...).Scan(&usn)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		log.Err(err).Str("func", "syncStateRepository.GetHighUSN").Str("scope", scope).Msg("failed to scan row")
		return 0, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return usn, nil
}

func (r *syncStateRepository) SetHighUSN(ctx context.Context, scope string, usn int32) error {
	query, args, err := buildUpsertHighUSNQuery(r.b, scope, usn)
	return r.exec(ctx, "syncStateRepository.SetHighUSN", query, args, err)
}

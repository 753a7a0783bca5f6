// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-note-sync/internal/logger"
	"github.com/MKhiriev/go-note-sync/models"
)

// userRepository stores the account the primary token belongs to, mainly so
// the shard id survives restarts.
type userRepository struct {
	repository
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{repository: newRepository(db)}
}

func (r *userRepository) UpsertUser(ctx context.Context, user models.User) error {
	query, args, err := buildUpsertUserQuery(r.b, user)
	return r.exec(ctx, "userRepository.UpsertUser", query, args, err)
}

// GetUser returns [ErrUserNotFound] when no account with id was stored.
func (r *userRepository) GetUser(ctx context.Context, id int32) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectUserQuery(r.b, id)
	if err != nil {
		log.Err(err).Str("func", "userRepository.GetUser").Msg("error building sql query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var user models.User
	err = r.q.QueryRowContext(ctx, query, args...).Scan(&user.ID, &user.Username, &user.Name, &user.Email, &user.ShardID)
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, ErrUserNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "userRepository.GetUser").Int32("id", id).Msg("error: scanning error")
		return models.User{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return user, nil
}

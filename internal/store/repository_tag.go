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

type tagRepository struct {
	repository
}

func NewTagRepository(db *DB, logger *logger.Logger) TagRepository {
	logger.Debug().Msg("creating tag repository")
	return &tagRepository{repository: newRepository(db)}
}

func (r *tagRepository) UpsertTags(ctx context.Context, tags ...models.Tag) error {
	if len(tags) == 0 {
		return nil
	}
	query, args, err := buildUpsertTagsQuery(r.b, tags)
	return r.exec(ctx, "tagRepository.UpsertTags", query, args, err)
}

// ExpungeTags removes the tags and detaches them from every note.
func (r *tagRepository) ExpungeTags(ctx context.Context, guids ...string) error {
	if len(guids) == 0 {
		return nil
	}
	query, args, err := buildDeleteByGUIDsQuery(r.b, tableNoteTags, "tag_guid", guids)
	if err = r.exec(ctx, "tagRepository.ExpungeTags", query, args, err); err != nil {
		return err
	}
	query, args, err = buildDeleteByGUIDsQuery(r.b, tableTags, "guid", guids)
	return r.exec(ctx, "tagRepository.ExpungeTags", query, args, err)
}

func (r *tagRepository) GetTag(ctx context.Context, guid string) (models.Tag, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectTagQuery(r.b, guid)
	if err != nil {
		log.Err(err).Str("func", "tagRepository.GetTag").Msg("error building sql query")
		return models.Tag{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var tag models.Tag
	err = r.q.QueryRowContext(ctx, query, args...).Scan(&tag.GUID, &tag.Name, &tag.ParentGUID, &tag.UpdateSequenceNum)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Tag{}, ErrTagNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "tagRepository.GetTag").Str("guid", guid).Msg("failed to scan row")
		return models.Tag{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return tag, nil
}

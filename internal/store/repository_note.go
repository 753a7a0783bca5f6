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

type noteRepository struct {
	repository
}

func NewNoteRepository(db *DB, logger *logger.Logger) NoteRepository {
	logger.Debug().Msg("creating note repository")
	return &noteRepository{repository: newRepository(db)}
}

// UpsertNotes writes the notes, replaces their tag links and stores every
// embedded resource. Outside a transaction it opens one.
func (r *noteRepository) UpsertNotes(ctx context.Context, notes ...models.Note) error {
	if len(notes) == 0 {
		return nil
	}
	if !r.isTx() {
		return r.db.withTx(ctx, func(tx *sql.Tx) error {
			bound := &noteRepository{repository: r.inTx(tx)}
			return bound.UpsertNotes(ctx, notes...)
		})
	}

	query, args, err := buildUpsertNotesQuery(r.b, notes)
	if err = r.exec(ctx, "noteRepository.UpsertNotes", query, args, err); err != nil {
		return err
	}

	guids := make([]string, 0, len(notes))
	var resources []models.Resource
	for _, n := range notes {
		guids = append(guids, n.GUID)
		for _, res := range n.Resources {
			if res.NoteGUID == "" {
				res.NoteGUID = n.GUID
			}
			resources = append(resources, res)
		}
	}

	query, args, err = buildDeleteNoteTagsQuery(r.b, guids)
	if err = r.exec(ctx, "noteRepository.UpsertNotes", query, args, err); err != nil {
		return err
	}
	query, args, err = buildInsertNoteTagsQuery(r.b, notes)
	if err = r.exec(ctx, "noteRepository.UpsertNotes", query, args, err); err != nil {
		return err
	}

	resourceRepo := &resourceRepository{repository: r.repository}
	return resourceRepo.UpsertResources(ctx, lastByGUID(resources, func(res models.Resource) string { return res.GUID })...)
}

// ExpungeNotes removes the notes with their resources. Tag links go with
// the note rows.
func (r *noteRepository) ExpungeNotes(ctx context.Context, guids ...string) error {
	if len(guids) == 0 {
		return nil
	}
	query, args, err := buildDeleteByGUIDsQuery(r.b, tableResources, "note_guid", guids)
	if err = r.exec(ctx, "noteRepository.ExpungeNotes", query, args, err); err != nil {
		return err
	}
	query, args, err = buildDeleteByGUIDsQuery(r.b, tableNotes, "guid", guids)
	return r.exec(ctx, "noteRepository.ExpungeNotes", query, args, err)
}

func (r *noteRepository) NoteExists(ctx context.Context, guid string) (bool, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildNoteExistsQuery(r.b, guid)
	if err != nil {
		log.Err(err).Str("func", "noteRepository.NoteExists").Msg("error building sql query")
		return false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var one int
	err = r.q.QueryRowContext(ctx, query, args...).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		log.Err(err).Str("func", "noteRepository.NoteExists").Str("guid", guid).Msg("failed to scan row")
		return false, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return true, nil
}

type resourceRepository struct {
	repository
}

func NewResourceRepository(db *DB, logger *logger.Logger) ResourceRepository {
	logger.Debug().Msg("creating resource repository")
	return &resourceRepository{repository: newRepository(db)}
}

// UpsertResources keeps a stored body when the incoming resource comes
// without one, so a summary never wipes downloaded data.
func (r *resourceRepository) UpsertResources(ctx context.Context, resources ...models.Resource) error {
	if len(resources) == 0 {
		return nil
	}
	query, args, err := buildUpsertResourcesQuery(r.b, resources)
	return r.exec(ctx, "resourceRepository.UpsertResources", query, args, err)
}

func (r *resourceRepository) GetResource(ctx context.Context, guid string) (models.Resource, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectResourceQuery(r.b, guid)
	if err != nil {
		log.Err(err).Str("func", "resourceRepository.GetResource").Msg("error building sql query")
		return models.Resource{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var (
		res                        models.Resource
		recognition, alternateData []byte
	)
	err = r.q.QueryRowContext(ctx, query, args...).Scan(
		&res.GUID, &res.NoteGUID, &res.Mime, &res.Width, &res.Height, &res.Active,
		&res.Data.Body, &res.Data.BodyHash, &res.Data.Size,
		&recognition, &alternateData, &res.UpdateSequenceNum,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Resource{}, ErrResourceNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "resourceRepository.GetResource").Str("guid", guid).Msg("failed to scan row")
		return models.Resource{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	if recognition != nil {
		res.Recognition = &models.Data{Body: recognition, Size: int32(len(recognition))}
	}
	if alternateData != nil {
		res.AlternateData = &models.Data{Body: alternateData, Size: int32(len(alternateData))}
	}

	return res, nil
}

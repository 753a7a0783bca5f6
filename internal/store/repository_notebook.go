// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-note-sync/internal/logger"
	"github.com/MKhiriev/go-note-sync/models"
)

type notebookRepository struct {
	repository
}

func NewNotebookRepository(db *DB, logger *logger.Logger) NotebookRepository {
	logger.Debug().Msg("creating notebook repository")
	return &notebookRepository{repository: newRepository(db)}
}

func (r *notebookRepository) UpsertNotebooks(ctx context.Context, notebooks ...models.Notebook) error {
	if len(notebooks) == 0 {
		return nil
	}
	query, args, err := buildUpsertNotebooksQuery(r.b, notebooks)
	return r.exec(ctx, "notebookRepository.UpsertNotebooks", query, args, err)
}

func (r *notebookRepository) ExpungeNotebooks(ctx context.Context, guids ...string) error {
	if len(guids) == 0 {
		return nil
	}
	query, args, err := buildDeleteByGUIDsQuery(r.b, tableNotebooks, "guid", guids)
	return r.exec(ctx, "notebookRepository.ExpungeNotebooks", query, args, err)
}

func (r *notebookRepository) ListNotebooks(ctx context.Context) ([]models.Notebook, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListNotebooksQuery(r.b)
	if err != nil {
		log.Err(err).Str("func", "notebookRepository.ListNotebooks").Msg("error building sql query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.q.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "notebookRepository.ListNotebooks").Msg("error executing sql query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var notebooks []models.Notebook
	for rows.Next() {
		var n models.Notebook
		if err = rows.Scan(&n.GUID, &n.Name, &n.Stack, &n.DefaultNotebook, &n.UpdateSequenceNum); err != nil {
			log.Err(err).Str("func", "notebookRepository.ListNotebooks").Msg("failed to scan rows")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		notebooks = append(notebooks, n)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return notebooks, nil
}

type searchRepository struct {
	repository
}

func NewSearchRepository(db *DB, logger *logger.Logger) SearchRepository {
	logger.Debug().Msg("creating saved search repository")
	return &searchRepository{repository: newRepository(db)}
}

func (r *searchRepository) UpsertSearches(ctx context.Context, searches ...models.SavedSearch) error {
	if len(searches) == 0 {
		return nil
	}
	query, args, err := buildUpsertSearchesQuery(r.b, searches)
	return r.exec(ctx, "searchRepository.UpsertSearches", query, args, err)
}

func (r *searchRepository) ExpungeSearches(ctx context.Context, guids ...string) error {
	if len(guids) == 0 {
		return nil
	}
	query, args, err := buildDeleteByGUIDsQuery(r.b, tableSearches, "guid", guids)
	return r.exec(ctx, "searchRepository.ExpungeSearches", query, args, err)
}

type linkedNotebookRepository struct {
	repository
}

func NewLinkedNotebookRepository(db *DB, logger *logger.Logger) LinkedNotebookRepository {
	logger.Debug().Msg("creating linked notebook repository")
	return &linkedNotebookRepository{repository: newRepository(db)}
}

func (r *linkedNotebookRepository) UpsertLinkedNotebooks(ctx context.Context, notebooks ...models.LinkedNotebook) error {
	if len(notebooks) == 0 {
		return nil
	}
	query, args, err := buildUpsertLinkedNotebooksQuery(r.b, notebooks)
	return r.exec(ctx, "linkedNotebookRepository.UpsertLinkedNotebooks", query, args, err)
}

// ExpungeLinkedNotebooks also drops the high-water marks kept for them.
func (r *linkedNotebookRepository) ExpungeLinkedNotebooks(ctx context.Context, guids ...string) error {
	if len(guids) == 0 {
		return nil
	}
	query, args, err := buildDeleteByGUIDsQuery(r.b, tableSyncState, "scope", guids)
	if err = r.exec(ctx, "linkedNotebookRepository.ExpungeLinkedNotebooks", query, args, err); err != nil {
		return err
	}
	query, args, err = buildDeleteByGUIDsQuery(r.b, tableLinkedNotebooks, "guid", guids)
	return r.exec(ctx, "linkedNotebookRepository.ExpungeLinkedNotebooks", query, args, err)
}

func (r *linkedNotebookRepository) ListLinkedNotebooks(ctx context.Context) ([]models.LinkedNotebook, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListLinkedNotebooksQuery(r.b)
	if err != nil {
		log.Err(err).Str("func", "linkedNotebookRepository.ListLinkedNotebooks").Msg("error building sql query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.q.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "linkedNotebookRepository.ListLinkedNotebooks").Msg("error executing sql query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var notebooks []models.LinkedNotebook
	for rows.Next() {
		var l models.LinkedNotebook
		if err = rows.Scan(&l.GUID, &l.ShareName, &l.Username, &l.ShardID, &l.ShareKey, &l.URI, &l.UpdateSequenceNum); err != nil {
			log.Err(err).Str("func", "linkedNotebookRepository.ListLinkedNotebooks").Msg("failed to scan rows")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		notebooks = append(notebooks, l)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return notebooks, nil
}

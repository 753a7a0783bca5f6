// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/MKhiriev/go-note-sync/internal/logger"
	"github.com/MKhiriev/go-note-sync/models"
)

// localStorage aggregates the table repositories behind [LocalStorage].
type localStorage struct {
	TagRepository
	NotebookRepository
	SearchRepository
	LinkedNotebookRepository
	NoteRepository
	ResourceRepository
	ImageRepository
	UserRepository
	SyncStateRepository

	db       *DB
	tagNames *CachedTagLookup
	logger   *logger.Logger
}

// NewLocalStorage opens the database named by dsn, applies pending
// migrations and returns the store on top of it.
func NewLocalStorage(ctx context.Context, dsn string, log *logger.Logger) (LocalStorage, error) {
	db, err := NewDB(ctx, dsn, log)
	if err != nil {
		return nil, err
	}

	if err = db.Migrate(); err != nil {
		log.Err(err).Str("func", "NewLocalStorage").Msg("error applying migrations")
		db.Close()
		return nil, fmt.Errorf("migrate local store: %w", err)
	}

	return NewLocalStorageFromDB(db, log), nil
}

// NewLocalStorageFromDB builds the store on an already migrated database.
func NewLocalStorageFromDB(db *DB, log *logger.Logger) LocalStorage {
	tags := NewTagRepository(db, log)
	return &localStorage{
		TagRepository:            tags,
		NotebookRepository:       NewNotebookRepository(db, log),
		SearchRepository:         NewSearchRepository(db, log),
		LinkedNotebookRepository: NewLinkedNotebookRepository(db, log),
		NoteRepository:           NewNoteRepository(db, log),
		ResourceRepository:       NewResourceRepository(db, log),
		ImageRepository:          NewImageRepository(db, log),
		UserRepository:           NewUserRepository(db, log),
		SyncStateRepository:      NewSyncStateRepository(db, log),

		db:       db,
		tagNames: NewCachedTagLookup(tags, 0),
		logger:   log,
	}
}

func (s *localStorage) TagName(ctx context.Context, guid string) (string, bool, error) {
	return s.tagNames.TagName(ctx, guid)
}

func (s *localStorage) UpsertTags(ctx context.Context, tags ...models.Tag) error {
	defer s.tagNames.Invalidate(tagGUIDs(tags)...)
	return s.TagRepository.UpsertTags(ctx, tags...)
}

func (s *localStorage) ExpungeTags(ctx context.Context, guids ...string) error {
	defer s.tagNames.Invalidate(guids...)
	return s.TagRepository.ExpungeTags(ctx, guids...)
}

// ApplyChunk stores every entity of chunk and then applies its expunges, all
// in one transaction. A chunk listing the same guid twice keeps the last
// occurrence.
func (s *localStorage) ApplyChunk(ctx context.Context, chunk models.SyncChunk) error {
	log := logger.FromContext(ctx)

	notes := lastByGUID(chunk.Notes, func(n models.Note) string { return n.GUID })
	notebooks := lastByGUID(chunk.Notebooks, func(n models.Notebook) string { return n.GUID })
	tags := lastByGUID(chunk.Tags, func(t models.Tag) string { return t.GUID })
	searches := lastByGUID(chunk.Searches, func(s models.SavedSearch) string { return s.GUID })
	linked := lastByGUID(chunk.LinkedNotebooks, func(l models.LinkedNotebook) string { return l.GUID })
	resources := lastByGUID(chunk.Resources, func(r models.Resource) string { return r.GUID })

	defer s.tagNames.Invalidate(append(tagGUIDs(tags), chunk.ExpungedTags...)...)

	err := s.db.withTx(ctx, func(tx *sql.Tx) error {
		r := newRepository(s.db).inTx(tx)
		var (
			notebookRepo = &notebookRepository{repository: r}
			tagRepo      = &tagRepository{repository: r}
			searchRepo   = &searchRepository{repository: r}
			linkedRepo   = &linkedNotebookRepository{repository: r}
			noteRepo     = &noteRepository{repository: r}
			resourceRepo = &resourceRepository{repository: r}
		)

		steps := []struct {
			name string
			run  func() error
		}{
			{"notebooks", func() error { return notebookRepo.UpsertNotebooks(ctx, notebooks...) }},
			{"tags", func() error { return tagRepo.UpsertTags(ctx, tags...) }},
			{"searches", func() error { return searchRepo.UpsertSearches(ctx, searches...) }},
			{"linked notebooks", func() error { return linkedRepo.UpsertLinkedNotebooks(ctx, linked...) }},
			{"notes", func() error { return noteRepo.UpsertNotes(ctx, notes...) }},
			{"resources", func() error { return resourceRepo.UpsertResources(ctx, resources...) }},
			{"expunged notes", func() error { return noteRepo.ExpungeNotes(ctx, chunk.ExpungedNotes...) }},
			{"expunged notebooks", func() error { return notebookRepo.ExpungeNotebooks(ctx, chunk.ExpungedNotebooks...) }},
			{"expunged tags", func() error { return tagRepo.ExpungeTags(ctx, chunk.ExpungedTags...) }},
			{"expunged searches", func() error { return searchRepo.ExpungeSearches(ctx, chunk.ExpungedSearches...) }},
			{"expunged linked notebooks", func() error { return linkedRepo.ExpungeLinkedNotebooks(ctx, chunk.ExpungedLinkedNotebooks...) }},
		}
		for _, step := range steps {
			if err := step.run(); err != nil {
				return fmt.Errorf("%s: %w", step.name, err)
			}
		}
		return nil
	})
	if err != nil {
		log.Err(err).Str("func", "localStorage.ApplyChunk").Int32("chunk_high_usn", chunk.ChunkHighUSN).Msg("failed to apply chunk")
		return err
	}

	log.Debug().
		Str("func", "localStorage.ApplyChunk").
		Int32("chunk_high_usn", chunk.ChunkHighUSN).
		Int("notes", len(notes)).
		Int("resources", len(resources)).
		Msg("chunk applied")
	return nil
}

func (s *localStorage) Close() error {
	return s.db.Close()
}

func tagGUIDs(tags []models.Tag) []string {
	guids := make([]string, 0, len(tags))
	for _, t := range tags {
		guids = append(guids, t.GUID)
	}
	return guids
}

// lastByGUID drops earlier duplicates, keeping first-seen order.
func lastByGUID[T any](items []T, guid func(T) string) []T {
	if len(items) < 2 {
		return items
	}
	index := make(map[string]int, len(items))
	out := make([]T, 0, len(items))
	for _, item := range items {
		key := guid(item)
		if i, ok := index[key]; ok {
			out[i] = item
			continue
		}
		index[key] = len(out)
		out = append(out, item)
	}
	return out
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-note-sync/internal/logger"
	"github.com/MKhiriev/go-note-sync/models"
)

// Mutations uploads and expunges entities. An entity with a positive USN is
// updated, any other is created; the returned entity carries the USN the
// service assigned.
type Mutations struct {
	sessions *SessionManager
	logger   *logger.Logger
}

func NewMutations(sessions *SessionManager, log *logger.Logger) *Mutations {
	return &Mutations{sessions: sessions, logger: log}
}

func (m *Mutations) UploadNotebook(ctx context.Context, nb models.Notebook) (models.Notebook, error) {
	return retry(ctx, m.sessions.primaryPolicy(), "uploadNotebook", func(ctx context.Context) (models.Notebook, error) {
		c, err := m.sessions.primary()
		if err != nil {
			return models.Notebook{}, err
		}
		if nb.UpdateSequenceNum > 0 {
			usn, err := c.store.UpdateNotebook(ctx, c.token, nb)
			if err != nil {
				return models.Notebook{}, err
			}
			nb.UpdateSequenceNum = usn
			return nb, nil
		}
		return c.store.CreateNotebook(ctx, c.token, nb)
	})
}

func (m *Mutations) ExpungeNotebook(ctx context.Context, guid string) (int32, error) {
	return m.expunge(ctx, "expungeNotebook", guid, func(ctx context.Context, c storeClient) (int32, error) {
		return c.store.ExpungeNotebook(ctx, c.token, guid)
	})
}

func (m *Mutations) UploadTag(ctx context.Context, tag models.Tag) (models.Tag, error) {
	return retry(ctx, m.sessions.primaryPolicy(), "uploadTag", func(ctx context.Context) (models.Tag, error) {
		c, err := m.sessions.primary()
		if err != nil {
			return models.Tag{}, err
		}
		if tag.UpdateSequenceNum > 0 {
			usn, err := c.store.UpdateTag(ctx, c.token, tag)
			if err != nil {
				return models.Tag{}, err
			}
			tag.UpdateSequenceNum = usn
			return tag, nil
		}
		return c.store.CreateTag(ctx, c.token, tag)
	})
}

func (m *Mutations) ExpungeTag(ctx context.Context, guid string) (int32, error) {
	return m.expunge(ctx, "expungeTag", guid, func(ctx context.Context, c storeClient) (int32, error) {
		return c.store.ExpungeTag(ctx, c.token, guid)
	})
}

func (m *Mutations) UploadSearch(ctx context.Context, search models.SavedSearch) (models.SavedSearch, error) {
	return retry(ctx, m.sessions.primaryPolicy(), "uploadSearch", func(ctx context.Context) (models.SavedSearch, error) {
		c, err := m.sessions.primary()
		if err != nil {
			return models.SavedSearch{}, err
		}
		if search.UpdateSequenceNum > 0 {
			usn, err := c.store.UpdateSearch(ctx, c.token, search)
			if err != nil {
				return models.SavedSearch{}, err
			}
			search.UpdateSequenceNum = usn
			return search, nil
		}
		return c.store.CreateSearch(ctx, c.token, search)
	})
}

func (m *Mutations) ExpungeSearch(ctx context.Context, guid string) (int32, error) {
	return m.expunge(ctx, "expungeSearch", guid, func(ctx context.Context, c storeClient) (int32, error) {
		return c.store.ExpungeSearch(ctx, c.token, guid)
	})
}

func (m *Mutations) UploadNote(ctx context.Context, note models.Note) (models.Note, error) {
	return retry(ctx, m.sessions.primaryPolicy(), "uploadNote", func(ctx context.Context) (models.Note, error) {
		c, err := m.sessions.primary()
		if err != nil {
			return models.Note{}, err
		}
		return uploadNote(ctx, c, note)
	})
}

// UploadLinkedNote uploads note into the linked notebook ln. Retries
// re-authenticate to the linked shard.
func (m *Mutations) UploadLinkedNote(ctx context.Context, ln models.LinkedNotebook, note models.Note) (models.Note, error) {
	return retry(ctx, m.sessions.linkedPolicy(ln), "uploadLinkedNote", func(ctx context.Context) (models.Note, error) {
		c, err := m.sessions.linkedClient(ln)
		if err != nil {
			return models.Note{}, err
		}
		return uploadNote(ctx, c, note)
	})
}

// DeleteNote moves a note to the trash and returns the new high-water mark.
func (m *Mutations) DeleteNote(ctx context.Context, guid string) (int32, error) {
	return m.expunge(ctx, "deleteNote", guid, func(ctx context.Context, c storeClient) (int32, error) {
		return c.store.DeleteNote(ctx, c.token, guid)
	})
}

func (m *Mutations) ExpungeNote(ctx context.Context, guid string) (int32, error) {
	return m.expunge(ctx, "expungeNote", guid, func(ctx context.Context, c storeClient) (int32, error) {
		return c.store.ExpungeNote(ctx, c.token, guid)
	})
}

func uploadNote(ctx context.Context, c storeClient, note models.Note) (models.Note, error) {
	if note.UpdateSequenceNum > 0 {
		return c.store.UpdateNote(ctx, c.token, note)
	}
	return c.store.CreateNote(ctx, c.token, note)
}

func (m *Mutations) expunge(ctx context.Context, op, guid string, do func(context.Context, storeClient) (int32, error)) (int32, error) {
	usn, err := retry(ctx, m.sessions.primaryPolicy(), op, func(ctx context.Context) (int32, error) {
		c, err := m.sessions.primary()
		if err != nil {
			return 0, err
		}
		return do(ctx, c)
	})
	if err != nil {
		return 0, err
	}

	m.logger.Debug().Str("func", "Mutations."+op).Str("guid", guid).Int32("usn", usn).Msg("removed")
	return usn, nil
}

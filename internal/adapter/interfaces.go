// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"

	"github.com/MKhiriev/go-note-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// UserStore is the account store. It is only used while connecting: the
// version handshake and the shard lookup.
type UserStore interface {
	// CheckVersion reports whether the service accepts the given protocol
	// version for clientName.
	CheckVersion(ctx context.Context, clientName string, major, minor int) (bool, error)

	// GetUser returns the account owning token, including its shard id.
	GetUser(ctx context.Context, token string) (models.User, error)
}

// NoteStore is the per-shard store holding notes, notebooks, tags, saved
// searches and resources. Every method takes the token it authenticates
// with: the primary token for the user's own shard, the linked token for a
// privately shared notebook, or an empty token for a public one.
type NoteStore interface {
	GetSyncState(ctx context.Context, token string) (models.SyncState, error)

	// GetFilteredSyncChunk returns up to maxEntries objects whose USN is
	// greater than afterUSN.
	GetFilteredSyncChunk(ctx context.Context, token string, afterUSN int32, maxEntries int, filter models.SyncChunkFilter) (models.SyncChunk, error)

	GetLinkedNotebookSyncState(ctx context.Context, token string, ln models.LinkedNotebook) (models.SyncState, error)
	GetLinkedNotebookSyncChunk(ctx context.Context, token string, ln models.LinkedNotebook, afterUSN int32, maxEntries int, fullSyncOnly bool) (models.SyncChunk, error)

	GetNote(ctx context.Context, token, guid string, opts models.NoteFetchOptions) (models.Note, error)
	GetResource(ctx context.Context, token, guid string, opts models.ResourceFetchOptions) (models.Resource, error)

	ListNotebooks(ctx context.Context, token string) ([]models.Notebook, error)
	ListTags(ctx context.Context, token string) ([]models.Tag, error)

	CreateNotebook(ctx context.Context, token string, nb models.Notebook) (models.Notebook, error)
	UpdateNotebook(ctx context.Context, token string, nb models.Notebook) (int32, error)
	ExpungeNotebook(ctx context.Context, token, guid string) (int32, error)

	CreateTag(ctx context.Context, token string, tag models.Tag) (models.Tag, error)
	UpdateTag(ctx context.Context, token string, tag models.Tag) (int32, error)
	ExpungeTag(ctx context.Context, token, guid string) (int32, error)

	CreateSearch(ctx context.Context, token string, search models.SavedSearch) (models.SavedSearch, error)
	UpdateSearch(ctx context.Context, token string, search models.SavedSearch) (int32, error)
	ExpungeSearch(ctx context.Context, token, guid string) (int32, error)

	CreateNote(ctx context.Context, token string, note models.Note) (models.Note, error)
	UpdateNote(ctx context.Context, token string, note models.Note) (models.Note, error)
	DeleteNote(ctx context.Context, token, guid string) (int32, error)
	ExpungeNote(ctx context.Context, token, guid string) (int32, error)

	// AuthenticateToSharedNotebook exchanges shareKey and the primary token
	// for a token valid on the notebook's shard.
	AuthenticateToSharedNotebook(ctx context.Context, shareKey, token string) (models.AuthenticationResult, error)
	GetSharedNotebookByAuth(ctx context.Context, token string) (models.SharedNotebook, error)
}

// ResourceDownloader fetches rendered images over the plain HTTP surface.
// Both methods return the raw encoded image (PNG for the service).
type ResourceDownloader interface {
	// InkSlice downloads slice (1-based) of the ink resource guid.
	InkSlice(ctx context.Context, shard, guid string, slice int, token string) ([]byte, error)

	// Thumbnail downloads the thumbnail of the note guid.
	Thumbnail(ctx context.Context, shard, guid, token string) ([]byte, error)
}

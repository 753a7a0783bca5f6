// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"

	"github.com/MKhiriev/go-note-sync/internal/transport"
	"github.com/MKhiriev/go-note-sync/models"
)

type noteStore struct {
	caller transport.Caller
}

// NewNoteStore binds a [NoteStore] client to an open note store channel.
func NewNoteStore(caller transport.Caller) NoteStore {
	return &noteStore{caller: caller}
}

// call issues method and decodes its result into a T. Remote exceptions are
// converted by mapRemoteError.
func call[T any](ctx context.Context, caller transport.Caller, method string, params any) (T, error) {
	var result T
	if err := caller.Call(ctx, method, params, &result); err != nil {
		var zero T
		return zero, mapRemoteError(err)
	}
	return result, nil
}

type tokenParams struct {
	Token string `json:"authenticationToken"`
}

type guidParams struct {
	Token string `json:"authenticationToken"`
	GUID  string `json:"guid"`
}

type syncChunkParams struct {
	Token      string                 `json:"authenticationToken"`
	AfterUSN   int32                  `json:"afterUSN"`
	MaxEntries int                    `json:"maxEntries"`
	Filter     models.SyncChunkFilter `json:"filter"`
}

type linkedStateParams struct {
	Token          string                `json:"authenticationToken"`
	LinkedNotebook models.LinkedNotebook `json:"linkedNotebook"`
}

type linkedChunkParams struct {
	Token          string                `json:"authenticationToken"`
	LinkedNotebook models.LinkedNotebook `json:"linkedNotebook"`
	AfterUSN       int32                 `json:"afterUSN"`
	MaxEntries     int                   `json:"maxEntries"`
	FullSyncOnly   bool                  `json:"fullSyncOnly"`
}

type getNoteParams struct {
	Token string `json:"authenticationToken"`
	GUID  string `json:"guid"`
	models.NoteFetchOptions
}

type getResourceParams struct {
	Token string `json:"authenticationToken"`
	GUID  string `json:"guid"`
	models.ResourceFetchOptions
}

type notebookParams struct {
	Token    string          `json:"authenticationToken"`
	Notebook models.Notebook `json:"notebook"`
}

type tagParams struct {
	Token string     `json:"authenticationToken"`
	Tag   models.Tag `json:"tag"`
}

type searchParams struct {
	Token  string             `json:"authenticationToken"`
	Search models.SavedSearch `json:"search"`
}

type noteParams struct {
	Token string      `json:"authenticationToken"`
	Note  models.Note `json:"note"`
}

type sharedAuthParams struct {
	ShareKey string `json:"shareKeyOrGlobalId"`
	Token    string `json:"authenticationToken"`
}

func (n *noteStore) GetSyncState(ctx context.Context, token string) (models.SyncState, error) {
	return call[models.SyncState](ctx, n.caller, "getSyncState", tokenParams{Token: token})
}

func (n *noteStore) GetFilteredSyncChunk(ctx context.Context, token string, afterUSN int32, maxEntries int, filter models.SyncChunkFilter) (models.SyncChunk, error) {
	return call[models.SyncChunk](ctx, n.caller, "getFilteredSyncChunk", syncChunkParams{
		Token:      token,
		AfterUSN:   afterUSN,
		MaxEntries: maxEntries,
		Filter:     filter,
	})
}

func (n *noteStore) GetLinkedNotebookSyncState(ctx context.Context, token string, ln models.LinkedNotebook) (models.SyncState, error) {
	return call[models.SyncState](ctx, n.caller, "getLinkedNotebookSyncState", linkedStateParams{Token: token, LinkedNotebook: ln})
}

func (n *noteStore) GetLinkedNotebookSyncChunk(ctx context.Context, token string, ln models.LinkedNotebook, afterUSN int32, maxEntries int, fullSyncOnly bool) (models.SyncChunk, error) {
	return call[models.SyncChunk](ctx, n.caller, "getLinkedNotebookSyncChunk", linkedChunkParams{
		Token:          token,
		LinkedNotebook: ln,
		AfterUSN:       afterUSN,
		MaxEntries:     maxEntries,
		FullSyncOnly:   fullSyncOnly,
	})
}

func (n *noteStore) GetNote(ctx context.Context, token, guid string, opts models.NoteFetchOptions) (models.Note, error) {
	return call[models.Note](ctx, n.caller, "getNote", getNoteParams{Token: token, GUID: guid, NoteFetchOptions: opts})
}

func (n *noteStore) GetResource(ctx context.Context, token, guid string, opts models.ResourceFetchOptions) (models.Resource, error) {
	return call[models.Resource](ctx, n.caller, "getResource", getResourceParams{Token: token, GUID: guid, ResourceFetchOptions: opts})
}

func (n *noteStore) ListNotebooks(ctx context.Context, token string) ([]models.Notebook, error) {
	return call[[]models.Notebook](ctx, n.caller, "listNotebooks", tokenParams{Token: token})
}

func (n *noteStore) ListTags(ctx context.Context, token string) ([]models.Tag, error) {
	return call[[]models.Tag](ctx, n.caller, "listTags", tokenParams{Token: token})
}

func (n *noteStore) CreateNotebook(ctx context.Context, token string, nb models.Notebook) (models.Notebook, error) {
	return call[models.Notebook](ctx, n.caller, "createNotebook", notebookParams{Token: token, Notebook: nb})
}

func (n *noteStore) UpdateNotebook(ctx context.Context, token string, nb models.Notebook) (int32, error) {
	return call[int32](ctx, n.caller, "updateNotebook", notebookParams{Token: token, Notebook: nb})
}

func (n *noteStore) ExpungeNotebook(ctx context.Context, token, guid string) (int32, error) {
	return call[int32](ctx, n.caller, "expungeNotebook", guidParams{Token: token, GUID: guid})
}

func (n *noteStore) CreateTag(ctx context.Context, token string, tag models.Tag) (models.Tag, error) {
	return call[models.Tag](ctx, n.caller, "createTag", tagParams{Token: token, Tag: tag})
}

func (n *noteStore) UpdateTag(ctx context.Context, token string, tag models.Tag) (int32, error) {
	return call[int32](ctx, n.caller, "updateTag", tagParams{Token: token, Tag: tag})
}

func (n *noteStore) ExpungeTag(ctx context.Context, token, guid string) (int32, error) {
	return call[int32](ctx, n.caller, "expungeTag", guidParams{Token: token, GUID: guid})
}

func (n *noteStore) CreateSearch(ctx context.Context, token string, search models.SavedSearch) (models.SavedSearch, error) {
	return call[models.SavedSearch](ctx, n.caller, "createSearch", searchParams{Token: token, Search: search})
}

func (n *noteStore) UpdateSearch(ctx context.Context, token string, search models.SavedSearch) (int32, error) {
	return call[int32](ctx, n.caller, "updateSearch", searchParams{Token: token, Search: search})
}

func (n *noteStore) ExpungeSearch(ctx context.Context, token, guid string) (int32, error) {
	return call[int32](ctx, n.caller, "expungeSearch", guidParams{Token: token, GUID: guid})
}

func (n *noteStore) CreateNote(ctx context.Context, token string, note models.Note) (models.Note, error) {
	return call[models.Note](ctx, n.caller, "createNote", noteParams{Token: token, Note: note})
}

func (n *noteStore) UpdateNote(ctx context.Context, token string, note models.Note) (models.Note, error) {
	return call[models.Note](ctx, n.caller, "updateNote", noteParams{Token: token, Note: note})
}

func (n *noteStore) DeleteNote(ctx context.Context, token, guid string) (int32, error) {
	return call[int32](ctx, n.caller, "deleteNote", guidParams{Token: token, GUID: guid})
}

func (n *noteStore) ExpungeNote(ctx context.Context, token, guid string) (int32, error) {
	return call[int32](ctx, n.caller, "expungeNote", guidParams{Token: token, GUID: guid})
}

func (n *noteStore) AuthenticateToSharedNotebook(ctx context.Context, shareKey, token string) (models.AuthenticationResult, error) {
	return call[models.AuthenticationResult](ctx, n.caller, "authenticateToSharedNotebook", sharedAuthParams{ShareKey: shareKey, Token: token})
}

func (n *noteStore) GetSharedNotebookByAuth(ctx context.Context, token string) (models.SharedNotebook, error) {
	return call[models.SharedNotebook](ctx, n.caller, "getSharedNotebookByAuth", tokenParams{Token: token})
}

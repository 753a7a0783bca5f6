// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-note-sync/internal/adapter"
	"github.com/MKhiriev/go-note-sync/internal/logger"
	"github.com/MKhiriev/go-note-sync/internal/transport"
	"github.com/MKhiriev/go-note-sync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestMutations(t *testing.T, ctrl *gomock.Controller) (*Mutations, *sessionFixture) {
	t.Helper()
	fx := newSessionFixture(t, ctrl)
	fx.connect(t)
	return NewMutations(fx.m, logger.Nop()), fx
}

// ── Upload ───────────────────────────────────────────────────────────────────

func TestMutations_UploadNotebook_CreatesNew(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mut, fx := newTestMutations(t, ctrl)
	nb := models.Notebook{Name: "Inbox"}
	fx.notes.EXPECT().CreateNotebook(gomock.Any(), testToken, nb).
		Return(models.Notebook{GUID: "nb1", Name: "Inbox", UpdateSequenceNum: 101}, nil)

	got, err := mut.UploadNotebook(context.Background(), nb)
	require.NoError(t, err)
	assert.Equal(t, "nb1", got.GUID)
	assert.Equal(t, int32(101), got.UpdateSequenceNum)
}

func TestMutations_UploadNotebook_UpdatesExisting(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mut, fx := newTestMutations(t, ctrl)
	nb := models.Notebook{GUID: "nb1", Name: "Renamed", UpdateSequenceNum: 101}
	fx.notes.EXPECT().UpdateNotebook(gomock.Any(), testToken, nb).Return(int32(140), nil)

	got, err := mut.UploadNotebook(context.Background(), nb)
	require.NoError(t, err)
	assert.Equal(t, "Renamed", got.Name)
	assert.Equal(t, int32(140), got.UpdateSequenceNum)
}

func TestMutations_UploadTag(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mut, fx := newTestMutations(t, ctrl)
	fx.notes.EXPECT().CreateTag(gomock.Any(), testToken, models.Tag{Name: "work"}).
		Return(models.Tag{GUID: "t1", Name: "work", UpdateSequenceNum: 7}, nil)
	fx.notes.EXPECT().UpdateTag(gomock.Any(), testToken, models.Tag{GUID: "t1", Name: "job", UpdateSequenceNum: 7}).
		Return(int32(8), nil)

	created, err := mut.UploadTag(context.Background(), models.Tag{Name: "work"})
	require.NoError(t, err)

	created.Name = "job"
	updated, err := mut.UploadTag(context.Background(), created)
	require.NoError(t, err)
	assert.Equal(t, int32(8), updated.UpdateSequenceNum)
}

func TestMutations_UploadSearch_UserErrorNotRetried(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mut, fx := newTestMutations(t, ctrl)
	fx.notes.EXPECT().CreateSearch(gomock.Any(), testToken, gomock.Any()).
		Return(models.SavedSearch{}, &adapter.UserException{Code: adapter.ErrorCodeDataConflict, Parameter: "SavedSearch.name"})

	_, err := mut.UploadSearch(context.Background(), models.SavedSearch{Name: "todo", Query: "tag:todo"})

	var ce *CommunicationError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, KindUser, ce.Kind)
	assert.Equal(t, adapter.ErrorCodeDataConflict, ce.Code)
	assert.Equal(t, "uploadSearch", ce.Op)
}

func TestMutations_UploadNote_CreateOrUpdate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mut, fx := newTestMutations(t, ctrl)
	draft := models.Note{Title: "draft", Content: "<en-note/>"}
	fx.notes.EXPECT().CreateNote(gomock.Any(), testToken, draft).
		Return(models.Note{GUID: "n1", Title: "draft", UpdateSequenceNum: 3}, nil)

	created, err := mut.UploadNote(context.Background(), draft)
	require.NoError(t, err)
	assert.Equal(t, "n1", created.GUID)

	fx.notes.EXPECT().UpdateNote(gomock.Any(), testToken, created).
		Return(models.Note{GUID: "n1", Title: "draft", UpdateSequenceNum: 4}, nil)
	updated, err := mut.UploadNote(context.Background(), created)
	require.NoError(t, err)
	assert.Equal(t, int32(4), updated.UpdateSequenceNum)
}

func TestMutations_UploadLinkedNote_UsesLinkedToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mut, fx := newTestMutations(t, ctrl)
	fx.opener.EXPECT().Open(gomock.Any(), gomock.Any()).Return(fx.linkedConn, nil)
	fx.linkedNotes.EXPECT().AuthenticateToSharedNotebook(gomock.Any(), "share-key", testToken).
		Return(models.AuthenticationResult{AuthenticationToken: "linked-token"}, nil)
	require.NoError(t, fx.m.AuthenticateLinked(context.Background(), privateNotebook))

	note := models.Note{Title: "shared draft", NotebookGUID: "nb-shared"}
	fx.linkedNotes.EXPECT().CreateNote(gomock.Any(), "linked-token", note).
		Return(models.Note{GUID: "n9", UpdateSequenceNum: 12}, nil)

	got, err := mut.UploadLinkedNote(context.Background(), privateNotebook, note)
	require.NoError(t, err)
	assert.Equal(t, "n9", got.GUID)
}

// ── Expunge ──────────────────────────────────────────────────────────────────

func TestMutations_Expunge(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mut, fx := newTestMutations(t, ctrl)
	ctx := context.Background()

	fx.notes.EXPECT().ExpungeNotebook(gomock.Any(), testToken, "nb1").Return(int32(201), nil)
	fx.notes.EXPECT().ExpungeTag(gomock.Any(), testToken, "t1").Return(int32(202), nil)
	fx.notes.EXPECT().ExpungeSearch(gomock.Any(), testToken, "s1").Return(int32(203), nil)
	fx.notes.EXPECT().DeleteNote(gomock.Any(), testToken, "n1").Return(int32(204), nil)
	fx.notes.EXPECT().ExpungeNote(gomock.Any(), testToken, "n1").Return(int32(205), nil)

	usn, err := mut.ExpungeNotebook(ctx, "nb1")
	require.NoError(t, err)
	assert.Equal(t, int32(201), usn)

	usn, err = mut.ExpungeTag(ctx, "t1")
	require.NoError(t, err)
	assert.Equal(t, int32(202), usn)

	usn, err = mut.ExpungeSearch(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, int32(203), usn)

	usn, err = mut.DeleteNote(ctx, "n1")
	require.NoError(t, err)
	assert.Equal(t, int32(204), usn)

	usn, err = mut.ExpungeNote(ctx, "n1")
	require.NoError(t, err)
	assert.Equal(t, int32(205), usn)
}

func TestMutations_ExpungeNote_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mut, fx := newTestMutations(t, ctrl)
	fx.notes.EXPECT().ExpungeNote(gomock.Any(), testToken, "gone").
		Return(int32(0), &adapter.NotFoundException{Identifier: "Note.guid", Key: "gone"})

	usn, err := mut.ExpungeNote(context.Background(), "gone")

	assert.Zero(t, usn)
	assert.Equal(t, KindNotFound, Classify(err))
}

func TestMutations_UploadNotebook_RetriesTransportFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mut, fx := newTestMutations(t, ctrl)
	nb := models.Notebook{Name: "Inbox"}

	fx.notes.EXPECT().CreateNotebook(gomock.Any(), testToken, nb).
		Return(models.Notebook{}, &transport.Error{Op: "createNotebook", Err: errors.New("EOF")})
	fx.noteConn.EXPECT().Close().Return(nil)
	fx.expectConnect()
	fx.notes.EXPECT().CreateNotebook(gomock.Any(), testToken, nb).
		Return(models.Notebook{GUID: "nb1", Name: "Inbox", UpdateSequenceNum: 1}, nil)

	got, err := mut.UploadNotebook(context.Background(), nb)
	require.NoError(t, err)
	assert.Equal(t, "nb1", got.GUID)
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-note-sync/internal/transport"
	"github.com/MKhiriev/go-note-sync/models"
)

// fakeCaller records the last call and answers with a canned JSON result or
// error.
type fakeCaller struct {
	method string
	params string

	result string
	err    error
}

func (f *fakeCaller) Call(_ context.Context, method string, params, result any) error {
	f.method = method
	raw, err := json.Marshal(params)
	if err != nil {
		return err
	}
	f.params = string(raw)
	if f.err != nil {
		return f.err
	}
	if result == nil || f.result == "" {
		return nil
	}
	return json.Unmarshal([]byte(f.result), result)
}

// ── UserStore ────────────────────────────────────────────────────────────────

func TestUserStore_CheckVersion(t *testing.T) {
	c := &fakeCaller{result: `true`}

	ok, err := NewUserStore(c).CheckVersion(context.Background(), "go-note-sync", 1, 28)

	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "checkVersion", c.method)
	assert.JSONEq(t, `{"clientName":"go-note-sync","edamVersionMajor":1,"edamVersionMinor":28}`, c.params)
}

func TestUserStore_GetUser(t *testing.T) {
	c := &fakeCaller{result: `{"id":42,"username":"alice","shardId":"s7"}`}

	u, err := NewUserStore(c).GetUser(context.Background(), "tok")

	require.NoError(t, err)
	assert.Equal(t, models.User{ID: 42, Username: "alice", ShardID: "s7"}, u)
	assert.Equal(t, "getUser", c.method)
	assert.JSONEq(t, `{"authenticationToken":"tok"}`, c.params)
}

// ── NoteStore ────────────────────────────────────────────────────────────────

func TestNoteStore_GetFilteredSyncChunk(t *testing.T) {
	c := &fakeCaller{result: `{"chunkHighUSN":120,"updateCount":300,"notes":[{"guid":"n1","title":"a"}]}`}
	filter := models.SyncChunkFilter{IncludeNotes: true, IncludeExpunged: true}

	chunk, err := NewNoteStore(c).GetFilteredSyncChunk(context.Background(), "tok", 100, 50, filter)

	require.NoError(t, err)
	assert.Equal(t, "getFilteredSyncChunk", c.method)
	assert.Equal(t, int32(120), chunk.ChunkHighUSN)
	assert.Equal(t, int32(300), chunk.UpdateCount)
	require.Len(t, chunk.Notes, 1)
	assert.Equal(t, "n1", chunk.Notes[0].GUID)

	var sent map[string]any
	require.NoError(t, json.Unmarshal([]byte(c.params), &sent))
	assert.Equal(t, float64(100), sent["afterUSN"])
	assert.Equal(t, float64(50), sent["maxEntries"])
	assert.Equal(t, true, sent["filter"].(map[string]any)["includeNotes"])
}

func TestNoteStore_GetNoteFlattensFetchOptions(t *testing.T) {
	c := &fakeCaller{result: `{"guid":"n1","tagGuids":["t1"]}`}

	note, err := NewNoteStore(c).GetNote(context.Background(), "tok", "n1", models.FullNote(true))

	require.NoError(t, err)
	assert.Equal(t, []string{"t1"}, note.TagGUIDs)
	assert.JSONEq(t, `{
		"authenticationToken":"tok","guid":"n1",
		"withContent":true,"withResourcesData":true,
		"withResourcesRecognition":true,"withResourcesAlternateData":true
	}`, c.params)
}

func TestNoteStore_GetLinkedNotebookSyncChunk(t *testing.T) {
	c := &fakeCaller{result: `{"chunkHighUSN":5}`}
	ln := models.LinkedNotebook{GUID: "ln1", ShardID: "s2"}

	_, err := NewNoteStore(c).GetLinkedNotebookSyncChunk(context.Background(), "ltok", ln, 3, 10, true)

	require.NoError(t, err)
	assert.Equal(t, "getLinkedNotebookSyncChunk", c.method)

	var sent linkedChunkParams
	require.NoError(t, json.Unmarshal([]byte(c.params), &sent))
	assert.Equal(t, "ltok", sent.Token)
	assert.Equal(t, "s2", sent.LinkedNotebook.ShardID)
	assert.True(t, sent.FullSyncOnly)
}

func TestNoteStore_MutationsReturnUSN(t *testing.T) {
	tests := []struct {
		name   string
		method string
		do     func(NoteStore) (int32, error)
	}{
		{"update notebook", "updateNotebook", func(s NoteStore) (int32, error) {
			return s.UpdateNotebook(context.Background(), "tok", models.Notebook{GUID: "nb"})
		}},
		{"expunge notebook", "expungeNotebook", func(s NoteStore) (int32, error) {
			return s.ExpungeNotebook(context.Background(), "tok", "nb")
		}},
		{"update tag", "updateTag", func(s NoteStore) (int32, error) {
			return s.UpdateTag(context.Background(), "tok", models.Tag{GUID: "t"})
		}},
		{"expunge tag", "expungeTag", func(s NoteStore) (int32, error) {
			return s.ExpungeTag(context.Background(), "tok", "t")
		}},
		{"update search", "updateSearch", func(s NoteStore) (int32, error) {
			return s.UpdateSearch(context.Background(), "tok", models.SavedSearch{GUID: "s"})
		}},
		{"expunge search", "expungeSearch", func(s NoteStore) (int32, error) {
			return s.ExpungeSearch(context.Background(), "tok", "s")
		}},
		{"delete note", "deleteNote", func(s NoteStore) (int32, error) {
			return s.DeleteNote(context.Background(), "tok", "n")
		}},
		{"expunge note", "expungeNote", func(s NoteStore) (int32, error) {
			return s.ExpungeNote(context.Background(), "tok", "n")
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &fakeCaller{result: `77`}

			usn, err := tt.do(NewNoteStore(c))

			require.NoError(t, err)
			assert.Equal(t, int32(77), usn)
			assert.Equal(t, tt.method, c.method)
		})
	}
}

func TestNoteStore_AuthenticateToSharedNotebook(t *testing.T) {
	c := &fakeCaller{result: `{"authenticationToken":"linked","expiration":99}`}

	res, err := NewNoteStore(c).AuthenticateToSharedNotebook(context.Background(), "key", "primary")

	require.NoError(t, err)
	assert.Equal(t, "linked", res.AuthenticationToken)
	assert.JSONEq(t, `{"shareKeyOrGlobalId":"key","authenticationToken":"primary"}`, c.params)
}

// ── exception mapping ────────────────────────────────────────────────────────

func TestNoteStore_MapsRemoteExceptions(t *testing.T) {
	tests := []struct {
		name  string
		exc   *transport.RemoteException
		check func(t *testing.T, err error)
	}{
		{
			name: "user",
			exc:  &transport.RemoteException{Type: "user", ErrorCode: 8, Parameter: "authenticationToken"},
			check: func(t *testing.T, err error) {
				var ue *UserException
				require.ErrorAs(t, err, &ue)
				assert.Equal(t, ErrorCodeInvalidAuth, ue.Code)
				assert.Equal(t, "authenticationToken", ue.Parameter)
			},
		},
		{
			name: "system rate limit",
			exc:  &transport.RemoteException{Type: "system", ErrorCode: 19, RateLimitDuration: 120},
			check: func(t *testing.T, err error) {
				var se *SystemException
				require.ErrorAs(t, err, &se)
				assert.True(t, se.RateLimited())
				assert.Equal(t, int32(120), se.RateLimitDuration)
			},
		},
		{
			name: "not found",
			exc:  &transport.RemoteException{Type: "notFound", Identifier: "Note.guid", Key: "n1"},
			check: func(t *testing.T, err error) {
				var nf *NotFoundException
				require.ErrorAs(t, err, &nf)
				assert.Equal(t, "Note.guid", nf.Identifier)
				assert.Equal(t, "n1", nf.Key)
			},
		},
		{
			name: "unknown type passes through",
			exc:  &transport.RemoteException{Type: "weird"},
			check: func(t *testing.T, err error) {
				var remote *transport.RemoteException
				require.ErrorAs(t, err, &remote)
				assert.Equal(t, "weird", remote.Type)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &fakeCaller{err: tt.exc}
			_, err := NewNoteStore(c).GetSyncState(context.Background(), "tok")
			require.Error(t, err)
			tt.check(t, err)
		})
	}
}

func TestNoteStore_TransportErrorPassesThrough(t *testing.T) {
	terr := &transport.Error{Op: "getSyncState", Err: errors.New("connection reset")}
	c := &fakeCaller{err: terr}

	_, err := NewNoteStore(c).GetSyncState(context.Background(), "tok")

	assert.Same(t, terr, err)
}

func TestErrorCode_String(t *testing.T) {
	assert.Equal(t, "UNKNOWN", ErrorCodeUnknown.String())
	assert.Equal(t, "RATE_LIMIT_REACHED", ErrorCodeRateLimitReached.String())
	assert.Equal(t, ErrorCode(19), ErrorCodeRateLimitReached)
	assert.Equal(t, "ErrorCode(99)", ErrorCode(99).String())
}

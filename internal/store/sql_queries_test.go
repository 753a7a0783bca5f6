// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"
	"testing"

	sq "github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-note-sync/models"
)

var (
	sqliteBuilder   = sq.StatementBuilder.PlaceholderFormat(sq.Question)
	postgresBuilder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
)

func Test_onConflictUpdate(t *testing.T) {
	got := onConflictUpdate([]string{"guid"}, tagColumns)
	assert.Equal(t, "ON CONFLICT (guid) DO UPDATE SET name = excluded.name, parent_guid = excluded.parent_guid, usn = excluded.usn", got)
}

func Test_onConflictUpdateKeeping(t *testing.T) {
	got := onConflictUpdateKeeping("resources", []string{"guid"}, []string{"guid", "mime", "body"}, []string{"body"})
	assert.Equal(t, "ON CONFLICT (guid) DO UPDATE SET mime = excluded.mime, body = COALESCE(excluded.body, resources.body)", got)
}

func Test_buildUpsertTagsQuery(t *testing.T) {
	tags := []models.Tag{
		{GUID: "t1", Name: "work", UpdateSequenceNum: 3},
		{GUID: "t2", Name: "home", ParentGUID: "t1", UpdateSequenceNum: 4},
	}

	query, args, err := buildUpsertTagsQuery(sqliteBuilder, tags)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(query, "INSERT INTO tags (guid,name,parent_guid,usn) VALUES (?,?,?,?),(?,?,?,?)"), query)
	assert.Contains(t, query, "ON CONFLICT (guid) DO UPDATE SET")
	assert.Equal(t, []any{"t1", "work", "", int32(3), "t2", "home", "t1", int32(4)}, args)
}

func Test_buildDeleteByGUIDsQuery(t *testing.T) {
	tests := []struct {
		name    string
		builder sq.StatementBuilderType
		want    string
	}{
		{name: "sqlite placeholders", builder: sqliteBuilder, want: "DELETE FROM notes WHERE guid IN (?,?)"},
		{name: "postgres placeholders", builder: postgresBuilder, want: "DELETE FROM notes WHERE guid IN ($1,$2)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := buildDeleteByGUIDsQuery(tt.builder, tableNotes, "guid", []string{"n1", "n2"})
			require.NoError(t, err)
			assert.Equal(t, tt.want, query)
			assert.Equal(t, []any{"n1", "n2"}, args)
		})
	}
}

func Test_buildInsertNoteTagsQuery(t *testing.T) {
	t.Run("no tags gives empty query", func(t *testing.T) {
		query, args, err := buildInsertNoteTagsQuery(sqliteBuilder, []models.Note{{GUID: "n1"}})
		require.NoError(t, err)
		assert.Empty(t, query)
		assert.Nil(t, args)
	})

	t.Run("duplicate tags are linked once", func(t *testing.T) {
		notes := []models.Note{
			{GUID: "n1", TagGUIDs: []string{"t1", "t1", "t2"}},
			{GUID: "n2", TagGUIDs: []string{"t1"}},
		}
		query, args, err := buildInsertNoteTagsQuery(sqliteBuilder, notes)
		require.NoError(t, err)
		assert.Contains(t, query, "VALUES (?,?),(?,?),(?,?)")
		assert.Contains(t, query, "ON CONFLICT (note_guid, tag_guid) DO NOTHING")
		assert.Equal(t, []any{"n1", "t1", "n1", "t2", "n2", "t1"}, args)
	})
}

func Test_buildSelectImageQuery(t *testing.T) {
	query, args, err := buildSelectImageQuery(postgresBuilder, "r1", models.ImageKindInk)
	require.NoError(t, err)
	assert.Equal(t, "SELECT guid, kind, png, width, height FROM resource_images WHERE guid = $1 AND kind = $2", query)
	assert.Equal(t, []any{"r1", "ink"}, args)
}

func Test_buildUpsertResourcesQuery_KeepsBodies(t *testing.T) {
	res := models.Resource{GUID: "r1", NoteGUID: "n1", Recognition: &models.Data{Body: []byte("<reco/>")}}

	query, args, err := buildUpsertResourcesQuery(sqliteBuilder, []models.Resource{res})
	require.NoError(t, err)
	assert.Contains(t, query, "body = COALESCE(excluded.body, resources.body)")
	assert.Contains(t, query, "mime = excluded.mime")
	require.Len(t, args, len(resourceColumns))
	assert.Equal(t, []byte("<reco/>"), args[9])
	assert.Nil(t, args[10])
}

func TestDialectOf(t *testing.T) {
	assert.Equal(t, DialectPostgres, DialectOf("postgres://u:p@localhost/notes"))
	assert.Equal(t, DialectPostgres, DialectOf("PostgreSQL://localhost/notes"))
	assert.Equal(t, DialectSQLite, DialectOf("data/notes.db"))
	assert.Equal(t, DialectSQLite, DialectOf(":memory:"))
}

func Test_sqliteDSN(t *testing.T) {
	assert.Equal(t, "notes.db?"+sqliteParams, sqliteDSN("notes.db"))
	assert.Equal(t, "notes.db?_foreign_keys=on", sqliteDSN("notes.db?_foreign_keys=on"))
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-note-sync/models"
)

const (
	tableUsers           = "users"
	tableNotebooks       = "notebooks"
	tableTags            = "tags"
	tableSearches        = "saved_searches"
	tableLinkedNotebooks = "linked_notebooks"
	tableNotes           = "notes"
	tableNoteTags        = "note_tags"
	tableResources       = "resources"
	tableResourceImages  = "resource_images"
	tableSyncState       = "sync_state"
)

var (
	userColumns     = []string{"id", "username", "name", "email", "shard_id"}
	notebookColumns = []string{"guid", "name", "stack", "default_notebook", "usn"}
	tagColumns      = []string{"guid", "name", "parent_guid", "usn"}
	searchColumns   = []string{"guid", "name", "query", "usn"}
	linkedColumns   = []string{"guid", "share_name", "username", "shard_id", "share_key", "uri", "usn"}
	noteColumns     = []string{
		"guid", "title", "content", "content_hash", "content_length",
		"created", "updated", "deleted", "active", "notebook_guid", "usn",
	}
	resourceColumns = []string{
		"guid", "note_guid", "mime", "width", "height", "active",
		"body", "body_hash", "size", "recognition", "alternate_data", "usn",
	}
	imageColumns = []string{"guid", "kind", "png", "width", "height"}
)

// onConflictUpdate renders an upsert suffix that overwrites every non-key
// column with the incoming value. Both SQLite and Postgres accept it.
func onConflictUpdate(keys []string, columns []string) string {
	return onConflictUpdateKeeping("", keys, columns, nil)
}

// onConflictUpdateKeeping is onConflictUpdate except that a NULL incoming
// value for one of the keep columns leaves the stored value in place.
func onConflictUpdateKeeping(table string, keys, columns, keep []string) string {
	skip := make(map[string]bool, len(keys))
	for _, k := range keys {
		skip[k] = true
	}
	preserve := make(map[string]bool, len(keep))
	for _, k := range keep {
		preserve[k] = true
	}

	sets := make([]string, 0, len(columns))
	for _, c := range columns {
		switch {
		case skip[c]:
			continue
		case preserve[c]:
			sets = append(sets, c+" = COALESCE(excluded."+c+", "+table+"."+c+")")
		default:
			sets = append(sets, c+" = excluded."+c)
		}
	}

	return "ON CONFLICT (" + strings.Join(keys, ", ") + ") DO UPDATE SET " + strings.Join(sets, ", ")
}

func buildUpsertUserQuery(b sq.StatementBuilderType, user models.User) (string, []any, error) {
	return b.Insert(tableUsers).
		Columns(userColumns...).
		Values(user.ID, user.Username, user.Name, user.Email, user.ShardID).
		Suffix(onConflictUpdate([]string{"id"}, userColumns)).
		ToSql()
}

func buildSelectUserQuery(b sq.StatementBuilderType, id int32) (string, []any, error) {
	return b.Select(userColumns...).
		From(tableUsers).
		Where(sq.Eq{"id": id}).
		ToSql()
}

func buildUpsertNotebooksQuery(b sq.StatementBuilderType, notebooks []models.Notebook) (string, []any, error) {
	insert := b.Insert(tableNotebooks).Columns(notebookColumns...)
	for _, n := range notebooks {
		insert = insert.Values(n.GUID, n.Name, n.Stack, n.DefaultNotebook, n.UpdateSequenceNum)
	}
	return insert.Suffix(onConflictUpdate([]string{"guid"}, notebookColumns)).ToSql()
}

func buildListNotebooksQuery(b sq.StatementBuilderType) (string, []any, error) {
	return b.Select(notebookColumns...).
		From(tableNotebooks).
		OrderBy("name").
		ToSql()
}

func buildUpsertTagsQuery(b sq.StatementBuilderType, tags []models.Tag) (string, []any, error) {
	insert := b.Insert(tableTags).Columns(tagColumns...)
	for _, t := range tags {
		insert = insert.Values(t.GUID, t.Name, t.ParentGUID, t.UpdateSequenceNum)
	}
	return insert.Suffix(onConflictUpdate([]string{"guid"}, tagColumns)).ToSql()
}

func buildSelectTagQuery(b sq.StatementBuilderType, guid string) (string, []any, error) {
	return b.Select(tagColumns...).
		From(tableTags).
		Where(sq.Eq{"guid": guid}).
		ToSql()
}

func buildUpsertSearchesQuery(b sq.StatementBuilderType, searches []models.SavedSearch) (string, []any, error) {
	insert := b.Insert(tableSearches).Columns(searchColumns...)
	for _, s := range searches {
		insert = insert.Values(s.GUID, s.Name, s.Query, s.UpdateSequenceNum)
	}
	return insert.Suffix(onConflictUpdate([]string{"guid"}, searchColumns)).ToSql()
}

func buildUpsertLinkedNotebooksQuery(b sq.StatementBuilderType, notebooks []models.LinkedNotebook) (string, []any, error) {
	insert := b.Insert(tableLinkedNotebooks).Columns(linkedColumns...)
	for _, l := range notebooks {
		insert = insert.Values(l.GUID, l.ShareName, l.Username, l.ShardID, l.ShareKey, l.URI, l.UpdateSequenceNum)
	}
	return insert.Suffix(onConflictUpdate([]string{"guid"}, linkedColumns)).ToSql()
}

func buildListLinkedNotebooksQuery(b sq.StatementBuilderType) (string, []any, error) {
	return b.Select(linkedColumns...).
		From(tableLinkedNotebooks).
		OrderBy("share_name").
		ToSql()
}

func buildUpsertNotesQuery(b sq.StatementBuilderType, notes []models.Note) (string, []any, error) {
	insert := b.Insert(tableNotes).Columns(noteColumns...)
	for _, n := range notes {
		insert = insert.Values(
			n.GUID, n.Title, n.Content, n.ContentHash, n.ContentLength,
			n.Created, n.Updated, n.Deleted, n.Active, n.NotebookGUID, n.UpdateSequenceNum,
		)
	}
	return insert.Suffix(onConflictUpdate([]string{"guid"}, noteColumns)).ToSql()
}

func buildDeleteNoteTagsQuery(b sq.StatementBuilderType, noteGUIDs []string) (string, []any, error) {
	return b.Delete(tableNoteTags).
		Where(sq.Eq{"note_guid": noteGUIDs}).
		ToSql()
}

// buildInsertNoteTagsQuery returns an empty query when no note carries tags.
func buildInsertNoteTagsQuery(b sq.StatementBuilderType, notes []models.Note) (string, []any, error) {
	insert := b.Insert(tableNoteTags).Columns("note_guid", "tag_guid")
	links := 0
	for _, n := range notes {
		seen := make(map[string]bool, len(n.TagGUIDs))
		for _, tag := range n.TagGUIDs {
			if seen[tag] {
				continue
			}
			seen[tag] = true
			insert = insert.Values(n.GUID, tag)
			links++
		}
	}
	if links == 0 {
		return "", nil, nil
	}
	return insert.Suffix("ON CONFLICT (note_guid, tag_guid) DO NOTHING").ToSql()
}

func buildNoteExistsQuery(b sq.StatementBuilderType, guid string) (string, []any, error) {
	return b.Select("1").
		From(tableNotes).
		Where(sq.Eq{"guid": guid}).
		Limit(1).
		ToSql()
}

func buildUpsertResourcesQuery(b sq.StatementBuilderType, resources []models.Resource) (string, []any, error) {
	insert := b.Insert(tableResources).Columns(resourceColumns...)
	for _, r := range resources {
		insert = insert.Values(
			r.GUID, r.NoteGUID, r.Mime, r.Width, r.Height, r.Active,
			r.Data.Body, r.Data.BodyHash, r.Data.Size,
			dataBody(r.Recognition), dataBody(r.AlternateData), r.UpdateSequenceNum,
		)
	}
	keep := []string{"body", "body_hash", "recognition", "alternate_data"}
	return insert.Suffix(onConflictUpdateKeeping(tableResources, []string{"guid"}, resourceColumns, keep)).ToSql()
}

func buildSelectResourceQuery(b sq.StatementBuilderType, guid string) (string, []any, error) {
	return b.Select(resourceColumns...).
		From(tableResources).
		Where(sq.Eq{"guid": guid}).
		ToSql()
}

func buildUpsertImageQuery(b sq.StatementBuilderType, img models.StoredImage) (string, []any, error) {
	return b.Insert(tableResourceImages).
		Columns(imageColumns...).
		Values(img.GUID, string(img.Kind), img.PNG, img.Width, img.Height).
		Suffix(onConflictUpdate([]string{"guid", "kind"}, imageColumns)).
		ToSql()
}

func buildSelectImageQuery(b sq.StatementBuilderType, guid string, kind models.ImageKind) (string, []any, error) {
	return b.Select(imageColumns...).
		From(tableResourceImages).
		Where(sq.Eq{"guid": guid, "kind": string(kind)}).
		ToSql()
}

func buildDeleteByGUIDsQuery(b sq.StatementBuilderType, table, column string, guids []string) (string, []any, error) {
	return b.Delete(table).
		Where(sq.Eq{column: guids}).
		ToSql()
}

func buildSelectHighUSNQuery(b sq.StatementBuilderType, scope string) (string, []any, error) {
	return b.Select("high_usn").
		From(tableSyncState).
		Where(sq.Eq{"scope": scope}).
		ToSql()
}

func buildUpsertHighUSNQuery(b sq.StatementBuilderType, scope string, usn int32) (string, []any, error) {
	return b.Insert(tableSyncState).
		Columns("scope", "high_usn").
		Values(scope, usn).
		Suffix(onConflictUpdate([]string{"scope"}, []string{"scope", "high_usn"})).
		ToSql()
}

func dataBody(d *models.Data) []byte {
	if d == nil {
		return nil
	}
	return d.Body
}

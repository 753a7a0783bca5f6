// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"strings"
	"time"
)

// SyncState is the account-wide sync position reported by the note store.
type SyncState struct {
	CurrentTime    int64 `json:"currentTime"`
	FullSyncBefore int64 `json:"fullSyncBefore"`
	UpdateCount    int32 `json:"updateCount"`
	Uploaded       int64 `json:"uploaded,omitempty"`
}

// SyncChunk is one delta page returned by getFilteredSyncChunk or
// getLinkedNotebookSyncChunk.
//
// ChunkHighUSN is the highest USN of any object in the chunk; UpdateCount is
// the account-wide USN at the time the chunk was produced.
type SyncChunk struct {
	CurrentTime  int64 `json:"currentTime"`
	ChunkHighUSN int32 `json:"chunkHighUSN"`
	UpdateCount  int32 `json:"updateCount"`

	Notes           []Note           `json:"notes,omitempty"`
	Notebooks       []Notebook       `json:"notebooks,omitempty"`
	Tags            []Tag            `json:"tags,omitempty"`
	Searches        []SavedSearch    `json:"searches,omitempty"`
	Resources       []Resource       `json:"resources,omitempty"`
	LinkedNotebooks []LinkedNotebook `json:"linkedNotebooks,omitempty"`

	ExpungedNotes           []string `json:"expungedNotes,omitempty"`
	ExpungedNotebooks       []string `json:"expungedNotebooks,omitempty"`
	ExpungedTags            []string `json:"expungedTags,omitempty"`
	ExpungedSearches        []string `json:"expungedSearches,omitempty"`
	ExpungedLinkedNotebooks []string `json:"expungedLinkedNotebooks,omitempty"`
}

// IsEmpty reports whether the chunk carries no objects and no expunges.
func (c SyncChunk) IsEmpty() bool {
	return len(c.Notes) == 0 &&
		len(c.Notebooks) == 0 &&
		len(c.Tags) == 0 &&
		len(c.Searches) == 0 &&
		len(c.Resources) == 0 &&
		len(c.LinkedNotebooks) == 0 &&
		len(c.ExpungedNotes) == 0 &&
		len(c.ExpungedNotebooks) == 0 &&
		len(c.ExpungedTags) == 0 &&
		len(c.ExpungedSearches) == 0 &&
		len(c.ExpungedLinkedNotebooks) == 0
}

// SyncChunkFilter is the request filter of getFilteredSyncChunk.
type SyncChunkFilter struct {
	IncludeNotes               bool `json:"includeNotes"`
	IncludeNoteResources       bool `json:"includeNoteResources"`
	IncludeNoteAttributes      bool `json:"includeNoteAttributes"`
	IncludeNotebooks           bool `json:"includeNotebooks"`
	IncludeTags                bool `json:"includeTags"`
	IncludeSearches            bool `json:"includeSearches"`
	IncludeResources           bool `json:"includeResources"`
	IncludeLinkedNotebooks     bool `json:"includeLinkedNotebooks"`
	IncludeExpunged            bool `json:"includeExpunged"`
	IncludeNoteAppData         bool `json:"includeNoteApplicationDataFullMap"`
	IncludeResourceAppData     bool `json:"includeResourceApplicationDataFullMap"`
	IncludeNoteResourceAppData bool `json:"includeNoteResourceApplicationDataFullMap"`
}

// ChunkSelection is a bit set choosing which entity kinds a chunk request
// asks for.
type ChunkSelection uint8

const (
	SyncChunkNotebooks ChunkSelection = 1 << iota
	SyncChunkTags
	SyncChunkSearches
	SyncChunkLinkedNotebooks
	SyncChunkNotes
	SyncChunkResources

	SyncChunkAll = SyncChunkNotebooks | SyncChunkTags | SyncChunkSearches |
		SyncChunkLinkedNotebooks | SyncChunkNotes | SyncChunkResources
)

var chunkSelectionNames = []struct {
	bit  ChunkSelection
	name string
}{
	{SyncChunkNotebooks, "notebooks"},
	{SyncChunkTags, "tags"},
	{SyncChunkSearches, "searches"},
	{SyncChunkLinkedNotebooks, "linked_notebooks"},
	{SyncChunkNotes, "notes"},
	{SyncChunkResources, "resources"},
}

// Has reports whether every bit of other is set in s.
func (s ChunkSelection) Has(other ChunkSelection) bool {
	return s&other == other
}

func (s ChunkSelection) String() string {
	parts := make([]string, 0, len(chunkSelectionNames))
	for _, n := range chunkSelectionNames {
		if s.Has(n.bit) {
			parts = append(parts, n.name)
		}
	}
	return strings.Join(parts, ",")
}

// ParseChunkSelection parses a comma separated list such as
// "notes,resources,tags". "all" selects every kind. Unknown names are
// reported back in the second return value.
func ParseChunkSelection(s string) (ChunkSelection, []string) {
	var (
		sel     ChunkSelection
		unknown []string
	)
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(strings.ToLower(part))
		if part == "" {
			continue
		}
		if part == "all" {
			sel |= SyncChunkAll
			continue
		}
		found := false
		for _, n := range chunkSelectionNames {
			if n.name == part {
				sel |= n.bit
				found = true
				break
			}
		}
		if !found {
			unknown = append(unknown, part)
		}
	}
	return sel, unknown
}

// PassSummary describes one finished sync pass.
type PassSummary struct {
	StartedAt  time.Time `json:"startedAt"`
	FinishedAt time.Time `json:"finishedAt"`
	FullSync   bool      `json:"fullSync"`

	HighUSN     int32 `json:"highUSN"`
	UpdateCount int32 `json:"updateCount"`

	Chunks    int `json:"chunks"`
	Notes     int `json:"notes"`
	Resources int `json:"resources"`
	Images    int `json:"images"`
	Expunged  int `json:"expunged"`

	LinkedNotebooks int      `json:"linkedNotebooks"`
	LinkedFailures  []string `json:"linkedFailures,omitempty"`

	Error string `json:"error,omitempty"`
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-note-sync/internal/logger"
	"github.com/MKhiriev/go-note-sync/internal/metrics"
	"github.com/MKhiriev/go-note-sync/models"
)

// ChunkRequest selects one page of changes.
type ChunkRequest struct {
	AfterUSN   int32
	MaxEntries int
	Selection  models.ChunkSelection
	// FullSync pulls resources with their notes instead of as separate
	// chunk entries.
	FullSync bool
}

// ChunkResult is a hydrated chunk and the images rendered while hydrating
// it, keyed by owner guid.
type ChunkResult struct {
	Chunk  models.SyncChunk
	Images []models.FetchedImage
}

// ChunkFetcher fetches sync chunks and hydrates them: notes are replaced by
// their full version with tag names attached, resources by their full
// version, and ink resources are rendered. Notes are always hydrated before
// resources.
type ChunkFetcher struct {
	sessions *SessionManager
	images   *ImageAssembler
	local    LocalLookup
	logger   *logger.Logger

	// linkedThumbnails downloads a thumbnail for every linked notebook note.
	linkedThumbnails bool
}

func NewChunkFetcher(sessions *SessionManager, images *ImageAssembler, local LocalLookup, linkedThumbnails bool, log *logger.Logger) *ChunkFetcher {
	return &ChunkFetcher{
		sessions:         sessions,
		images:           images,
		local:            local,
		logger:           log,
		linkedThumbnails: linkedThumbnails,
	}
}

// BuildChunkFilter derives the chunk filter from a selection. A full sync
// never includes resources as chunk entries: they arrive with their notes.
func BuildChunkFilter(sel models.ChunkSelection, fullSync bool) models.SyncChunkFilter {
	notes := sel.Has(models.SyncChunkNotes)
	return models.SyncChunkFilter{
		IncludeNotes:           notes,
		IncludeNoteResources:   fullSync,
		IncludeNoteAttributes:  notes,
		IncludeNotebooks:       sel.Has(models.SyncChunkNotebooks),
		IncludeTags:            sel.Has(models.SyncChunkTags),
		IncludeSearches:        sel.Has(models.SyncChunkSearches),
		IncludeResources:       sel.Has(models.SyncChunkResources) && !fullSync,
		IncludeLinkedNotebooks: sel.Has(models.SyncChunkLinkedNotebooks),
		IncludeExpunged:        notes,
	}
}

// Fetch returns the hydrated chunk of the primary store following
// req.AfterUSN. Failures are retried with a reconnect; when retries run out
// no partial chunk is returned.
func (f *ChunkFetcher) Fetch(ctx context.Context, req ChunkRequest) (ChunkResult, error) {
	return retry(ctx, f.sessions.primaryPolicy(), "getSyncChunk", func(ctx context.Context) (ChunkResult, error) {
		return f.fetchPrimary(ctx, req)
	})
}

// FetchLinked is Fetch against the shard of ln. The linked session must have
// been bound with [SessionManager.AuthenticateLinked]; retries re-run the
// linked authentication.
func (f *ChunkFetcher) FetchLinked(ctx context.Context, ln models.LinkedNotebook, req ChunkRequest) (ChunkResult, error) {
	return retry(ctx, f.sessions.linkedPolicy(ln), "getLinkedNotebookSyncChunk", func(ctx context.Context) (ChunkResult, error) {
		return f.fetchLinked(ctx, ln, req)
	})
}

func (f *ChunkFetcher) fetchPrimary(ctx context.Context, req ChunkRequest) (ChunkResult, error) {
	client, err := f.sessions.primary()
	if err != nil {
		return ChunkResult{}, err
	}

	filter := BuildChunkFilter(req.Selection, req.FullSync)
	chunk, err := client.store.GetFilteredSyncChunk(ctx, client.token, req.AfterUSN, req.MaxEntries, filter)
	if err != nil {
		return ChunkResult{}, fmt.Errorf("get filtered sync chunk: %w", err)
	}

	var images []models.FetchedImage
	chunkTags := tagIndex(chunk.Tags)
	withResources := req.Selection.Has(models.SyncChunkResources) || req.FullSync
	for i := range chunk.Notes {
		note, err := client.store.GetNote(ctx, client.token, chunk.Notes[i].GUID, models.FullNote(withResources))
		if err != nil {
			return ChunkResult{}, fmt.Errorf("get note %s: %w", chunk.Notes[i].GUID, err)
		}
		note.TagNames = f.tagNames(ctx, chunkTags, note.TagGUIDs)
		chunk.Notes[i] = note
		images = append(images, f.images.InkImages(ctx, client.shard, client.token, note.Resources)...)
	}

	for i := range chunk.Resources {
		res, err := client.store.GetResource(ctx, client.token, chunk.Resources[i].GUID, models.AllResourceData)
		if err != nil {
			return ChunkResult{}, fmt.Errorf("get resource %s: %w", chunk.Resources[i].GUID, err)
		}
		chunk.Resources[i] = res
	}
	images = append(images, f.images.InkImages(ctx, client.shard, client.token, chunk.Resources)...)

	guardHighWater(&chunk, req.AfterUSN)
	metrics.RecordChunk("primary")
	f.logger.Debug().Str("func", "ChunkFetcher.Fetch").Int32("after", req.AfterUSN).
		Int32("high", chunk.ChunkHighUSN).Int("notes", len(chunk.Notes)).
		Int("resources", len(chunk.Resources)).Msg("chunk fetched")

	return ChunkResult{Chunk: chunk, Images: images}, nil
}

func (f *ChunkFetcher) fetchLinked(ctx context.Context, ln models.LinkedNotebook, req ChunkRequest) (ChunkResult, error) {
	client, err := f.sessions.linkedClient(ln)
	if err != nil {
		return ChunkResult{}, err
	}

	chunk, err := client.store.GetLinkedNotebookSyncChunk(ctx, client.primaryToken, ln, req.AfterUSN, req.MaxEntries, req.FullSync)
	if err != nil {
		return ChunkResult{}, fmt.Errorf("get linked notebook sync chunk: %w", err)
	}

	var images []models.FetchedImage
	chunkTags := tagIndex(chunk.Tags)
	hydrated := make(map[string]struct{}, len(chunk.Notes))
	for i := range chunk.Notes {
		note, err := client.store.GetNote(ctx, client.token, chunk.Notes[i].GUID, models.FullNote(req.FullSync))
		if err != nil {
			return ChunkResult{}, fmt.Errorf("get linked note %s: %w", chunk.Notes[i].GUID, err)
		}
		note.TagNames = f.tagNames(ctx, chunkTags, note.TagGUIDs)
		chunk.Notes[i] = note
		hydrated[note.GUID] = struct{}{}

		images = append(images, f.images.InkImages(ctx, client.shard, client.token, note.Resources)...)
		if f.linkedThumbnails {
			if img, ok := f.images.ThumbnailImage(ctx, client.shard, client.primaryToken, note.GUID); ok {
				images = append(images, img)
			}
		}
	}

	for i := range chunk.Resources {
		res, err := client.store.GetResource(ctx, client.token, chunk.Resources[i].GUID, models.AllResourceData)
		if err != nil {
			return ChunkResult{}, fmt.Errorf("get linked resource %s: %w", chunk.Resources[i].GUID, err)
		}
		chunk.Resources[i] = res

		// A resource may change without its note; the note must exist
		// locally before the resource can be stored.
		if _, ok := hydrated[res.NoteGUID]; ok || res.NoteGUID == "" {
			continue
		}
		exists, err := f.local.NoteExists(ctx, res.NoteGUID)
		if err != nil {
			f.logger.Warn().Err(err).Str("func", "ChunkFetcher.FetchLinked").Str("note", res.NoteGUID).Msg("note lookup failed")
		}
		if exists {
			continue
		}
		note, err := client.store.GetNote(ctx, client.token, res.NoteGUID, models.FullNote(true))
		if err != nil {
			return ChunkResult{}, fmt.Errorf("get owning note %s: %w", res.NoteGUID, err)
		}
		note.TagNames = f.tagNames(ctx, chunkTags, note.TagGUIDs)
		chunk.Notes = append(chunk.Notes, note)
		hydrated[note.GUID] = struct{}{}
	}
	images = append(images, f.images.InkImages(ctx, client.shard, client.token, chunk.Resources)...)

	guardHighWater(&chunk, req.AfterUSN)
	metrics.RecordChunk("linked")
	f.logger.Debug().Str("func", "ChunkFetcher.FetchLinked").Str("notebook", ln.GUID).
		Int32("after", req.AfterUSN).Int32("high", chunk.ChunkHighUSN).
		Int("notes", len(chunk.Notes)).Int("resources", len(chunk.Resources)).Msg("linked chunk fetched")

	return ChunkResult{Chunk: chunk, Images: images}, nil
}

func tagIndex(tags []models.Tag) map[string]string {
	index := make(map[string]string, len(tags))
	for _, t := range tags {
		index[t.GUID] = t.Name
	}
	return index
}

// tagNames resolves tag guids, first against the tags of the chunk being
// fetched (they are not stored yet), then through the local store. Unknown
// tags and lookup failures are skipped.
func (f *ChunkFetcher) tagNames(ctx context.Context, chunkTags map[string]string, guids []string) []string {
	if len(guids) == 0 {
		return nil
	}
	names := make([]string, 0, len(guids))
	for _, guid := range guids {
		if name, ok := chunkTags[guid]; ok {
			names = append(names, name)
			continue
		}
		name, ok, err := f.local.TagName(ctx, guid)
		if err != nil {
			f.logger.Warn().Err(err).Str("func", "ChunkFetcher.tagNames").Str("tag", guid).Msg("tag lookup failed")
			continue
		}
		if ok {
			names = append(names, name)
		}
	}
	return names
}

// guardHighWater keeps the chunk's high-water mark from moving backwards.
// An empty chunk that reports no progress is moved to the account's update
// count so the caller's fetch loop terminates.
func guardHighWater(chunk *models.SyncChunk, afterUSN int32) {
	if chunk.IsEmpty() && chunk.ChunkHighUSN <= afterUSN {
		chunk.ChunkHighUSN = max(chunk.UpdateCount, afterUSN)
		return
	}
	if chunk.ChunkHighUSN < afterUSN {
		chunk.ChunkHighUSN = afterUSN
	}
}

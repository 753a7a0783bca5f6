// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-note-sync/internal/adapter"
	"github.com/MKhiriev/go-note-sync/internal/logger"
	"github.com/MKhiriev/go-note-sync/internal/store"
	"github.com/MKhiriev/go-note-sync/internal/transport"
)

// Services groups the components built on one [SessionManager].
type Services struct {
	Sessions  *SessionManager
	State     *StateService
	Images    *ImageAssembler
	Fetcher   *ChunkFetcher
	Mutations *Mutations
	Syncer    *Syncer
	SyncJob   SyncJob
}

// Options configures [NewServices].
type Options struct {
	Session          SessionConfig
	Sync             SyncOptions
	LinkedThumbnails bool
}

func NewServices(opts Options, opener transport.Opener, tokens TokenSource, downloader adapter.ResourceDownloader, local store.LocalStorage, log *logger.Logger) *Services {
	sessions := NewSessionManager(opts.Session, opener, tokens, log)
	state := NewStateService(sessions, log)
	images := NewImageAssembler(downloader, log)
	fetcher := NewChunkFetcher(sessions, images, local, opts.LinkedThumbnails, log)
	syncer := NewSyncer(sessions, state, fetcher, local, opts.Sync, log)

	return &Services{
		Sessions:  sessions,
		State:     state,
		Images:    images,
		Fetcher:   fetcher,
		Mutations: NewMutations(sessions, log),
		Syncer:    syncer,
		SyncJob:   NewSyncJob(syncer, log),
	}
}

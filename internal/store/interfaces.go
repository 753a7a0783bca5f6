// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/go-note-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

type TagRepository interface {
	UpsertTags(ctx context.Context, tags ...models.Tag) error
	ExpungeTags(ctx context.Context, guids ...string) error
	// GetTag returns ErrTagNotFound when guid is unknown.
	GetTag(ctx context.Context, guid string) (models.Tag, error)
}

type NotebookRepository interface {
	UpsertNotebooks(ctx context.Context, notebooks ...models.Notebook) error
	ExpungeNotebooks(ctx context.Context, guids ...string) error
	ListNotebooks(ctx context.Context) ([]models.Notebook, error)
}

type SearchRepository interface {
	UpsertSearches(ctx context.Context, searches ...models.SavedSearch) error
	ExpungeSearches(ctx context.Context, guids ...string) error
}

type LinkedNotebookRepository interface {
	UpsertLinkedNotebooks(ctx context.Context, notebooks ...models.LinkedNotebook) error
	ExpungeLinkedNotebooks(ctx context.Context, guids ...string) error
	ListLinkedNotebooks(ctx context.Context) ([]models.LinkedNotebook, error)
}

type NoteRepository interface {
	// UpsertNotes stores notes together with their tag links.
	UpsertNotes(ctx context.Context, notes ...models.Note) error
	ExpungeNotes(ctx context.Context, guids ...string) error
	NoteExists(ctx context.Context, guid string) (bool, error)
}

type ResourceRepository interface {
	UpsertResources(ctx context.Context, resources ...models.Resource) error
	// GetResource returns ErrResourceNotFound when guid is unknown.
	GetResource(ctx context.Context, guid string) (models.Resource, error)
}

type ImageRepository interface {
	SaveImage(ctx context.Context, img models.StoredImage) error
	// GetImage returns ErrImageNotFound when no image of kind is stored for
	// guid.
	GetImage(ctx context.Context, guid string, kind models.ImageKind) (models.StoredImage, error)
}

type UserRepository interface {
	UpsertUser(ctx context.Context, user models.User) error
	GetUser(ctx context.Context, id int32) (models.User, error)
}

// SyncStateRepository keeps the high-water mark per sync scope. The primary
// account uses the empty scope, linked notebooks use their guid.
type SyncStateRepository interface {
	GetHighUSN(ctx context.Context, scope string) (int32, error)
	SetHighUSN(ctx context.Context, scope string, usn int32) error
}

// LocalStorage is the local entity store the sync service reads from and
// writes chunks into.
type LocalStorage interface {
	TagRepository
	NotebookRepository
	SearchRepository
	LinkedNotebookRepository
	NoteRepository
	ResourceRepository
	ImageRepository
	UserRepository
	SyncStateRepository

	// TagName resolves a tag guid through the tag cache. ok is false when the
	// tag is not stored locally.
	TagName(ctx context.Context, guid string) (name string, ok bool, err error)

	// ApplyChunk writes every entity and expunge of chunk in one transaction.
	ApplyChunk(ctx context.Context, chunk models.SyncChunk) error

	Close() error
}

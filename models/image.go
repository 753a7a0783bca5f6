// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "image"

// ImageKind tells how a fetched image relates to its owner.
type ImageKind string

const (
	// ImageKindInk is the rendered canvas of an ink resource; the owner guid
	// is the resource guid.
	ImageKindInk ImageKind = "ink"
	// ImageKindThumbnail is a note thumbnail; the owner guid is the note guid.
	ImageKindThumbnail ImageKind = "thumbnail"
)

// FetchedImage is an image assembled during one chunk fetch.
type FetchedImage struct {
	GUID  string
	Kind  ImageKind
	Image image.Image
}

// StoredImage is an encoded image persisted in the local store.
type StoredImage struct {
	GUID   string
	Kind   ImageKind
	PNG    []byte
	Width  int
	Height int
}

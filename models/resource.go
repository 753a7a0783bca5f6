// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Data is a binary payload together with its service-side digest.
type Data struct {
	BodyHash []byte `json:"bodyHash,omitempty"`
	Size     int32  `json:"size,omitempty"`
	Body     []byte `json:"body,omitempty"`
}

// Resource is a binary attachment of a note (image, PDF, ink drawing, ...).
type Resource struct {
	GUID     string `json:"guid"`
	NoteGUID string `json:"noteGuid"`

	Mime   string `json:"mime"`
	Width  int16  `json:"width,omitempty"`
	Height int16  `json:"height,omitempty"`
	Active bool   `json:"active"`

	Data          Data  `json:"data"`
	Recognition   *Data `json:"recognition,omitempty"`
	AlternateData *Data `json:"alternateData,omitempty"`

	UpdateSequenceNum int32 `json:"updateSequenceNum"`
}

// IsInk reports whether the resource is a handwriting drawing.
func (r Resource) IsInk() bool {
	return r.Mime == InkMime
}

// ResourceFetchOptions selects which payloads getResource returns.
type ResourceFetchOptions struct {
	WithData          bool `json:"withData"`
	WithRecognition   bool `json:"withRecognition"`
	WithAttributes    bool `json:"withAttributes"`
	WithAlternateData bool `json:"withAlternateData"`
}

// AllResourceData asks for every payload of a resource.
var AllResourceData = ResourceFetchOptions{
	WithData:          true,
	WithRecognition:   true,
	WithAttributes:    true,
	WithAlternateData: true,
}

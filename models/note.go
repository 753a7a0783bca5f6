// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// InkMime is the mime type of resources that carry a handwriting (ink)
// drawing. The binary body of such a resource is not an image; a rendered
// version has to be fetched from the ink endpoint in slices.
const InkMime = "application/vnd.evernote.ink"

// Note is a single note as exchanged with the remote note store.
//
// Inside a sync chunk notes arrive as summaries: content, resource bodies and
// tag names are missing. They are filled in during hydration.
type Note struct {
	// GUID is the service-assigned note identifier.
	GUID string `json:"guid"`

	Title   string `json:"title"`
	Content string `json:"content,omitempty"`

	// ContentHash is the MD5 digest of Content as reported by the service.
	ContentHash []byte `json:"contentHash,omitempty"`

	ContentLength int32 `json:"contentLength,omitempty"`
	Created       int64 `json:"created,omitempty"`
	Updated       int64 `json:"updated,omitempty"`
	Deleted       int64 `json:"deleted,omitempty"`
	Active        bool  `json:"active"`

	// UpdateSequenceNum is the USN of the last change on the service side.
	// A value of zero means the note was never uploaded.
	UpdateSequenceNum int32 `json:"updateSequenceNum"`

	NotebookGUID string `json:"notebookGuid,omitempty"`

	// TagGUIDs lists the tags attached to the note.
	TagGUIDs []string `json:"tagGuids,omitempty"`

	// TagNames is populated on the client only, from the local tag table.
	// The service never fills it in responses.
	TagNames []string `json:"tagNames,omitempty"`

	Resources []Resource `json:"resources,omitempty"`
}

// HasTag reports whether guid is attached to the note.
func (n Note) HasTag(guid string) bool {
	for _, g := range n.TagGUIDs {
		if g == guid {
			return true
		}
	}
	return false
}

// NoteFetchOptions selects which parts of a note getNote returns.
type NoteFetchOptions struct {
	WithContent                bool `json:"withContent"`
	WithResourcesData          bool `json:"withResourcesData"`
	WithResourcesRecognition   bool `json:"withResourcesRecognition"`
	WithResourcesAlternateData bool `json:"withResourcesAlternateData"`
}

// FullNote returns options asking for content plus every resource payload
// when withResources is set.
func FullNote(withResources bool) NoteFetchOptions {
	return NoteFetchOptions{
		WithContent:                true,
		WithResourcesData:          withResources,
		WithResourcesRecognition:   withResources,
		WithResourcesAlternateData: withResources,
	}
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

type Notebook struct {
	GUID              string `json:"guid"`
	Name              string `json:"name"`
	Stack             string `json:"stack,omitempty"`
	DefaultNotebook   bool   `json:"defaultNotebook"`
	UpdateSequenceNum int32  `json:"updateSequenceNum"`
}

type Tag struct {
	GUID              string `json:"guid"`
	Name              string `json:"name"`
	ParentGUID        string `json:"parentGuid,omitempty"`
	UpdateSequenceNum int32  `json:"updateSequenceNum"`
}

type SavedSearch struct {
	GUID              string `json:"guid"`
	Name              string `json:"name"`
	Query             string `json:"query"`
	UpdateSequenceNum int32  `json:"updateSequenceNum"`
}

// LinkedNotebook is a notebook owned by another account that the current user
// has access to. ShareKey is present for private shares only; a public
// notebook is reached without authentication.
type LinkedNotebook struct {
	GUID              string `json:"guid"`
	ShareName         string `json:"shareName"`
	Username          string `json:"username"`
	ShardID           string `json:"shardId"`
	ShareKey          string `json:"shareKey,omitempty"`
	URI               string `json:"uri,omitempty"`
	UpdateSequenceNum int32  `json:"updateSequenceNum"`
}

// IsPrivate reports whether the linked notebook needs share-key
// authentication.
func (l LinkedNotebook) IsPrivate() bool {
	return l.ShareKey != ""
}

// SharedNotebook describes the share a linked token was issued for.
type SharedNotebook struct {
	ID           int64  `json:"id"`
	UserID       int32  `json:"userId"`
	NotebookGUID string `json:"notebookGuid"`
	Email        string `json:"email,omitempty"`
	ShareKey     string `json:"shareKey,omitempty"`
	Username     string `json:"username,omitempty"`
}

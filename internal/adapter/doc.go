// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter binds the remote note service contract to Go calls.
//
// [UserStore] and [NoteStore] issue the store RPCs over a [transport.Caller]
// and turn remote exceptions carried in reply envelopes into the typed
// [UserException], [SystemException] and [NotFoundException] values.
// Transport failures pass through unchanged so the service layer can tell
// them apart from exceptions raised by the remote side.
//
// [ResourceDownloader] covers the plain HTTP surface used for ink slices and
// note thumbnails. Non-2xx statuses are mapped by mapHTTPError to the
// sentinel values of errors.go.
package adapter

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service implements the sync communication core of the client.
//
// [SessionManager] owns the RPC sessions and the authentication context. It
// connects to the user store for the version handshake and shard lookup,
// opens the note store of that shard, and authenticates to linked notebook
// shards on demand.
//
// Every remote operation is wrapped by a bounded retry policy: transport and
// unclassified failures tear the sessions down, rebuild them and re-issue the
// call at most [MaxRetries] times. Other failures are returned at once as a
// [*CommunicationError].
//
// [ChunkFetcher] requests filtered sync chunks and hydrates their notes and
// resources, [ImageAssembler] stitches ink renders and thumbnails, and
// [Mutations] uploads and expunges entities. [Syncer] drives a full pass into
// the local store and [SyncJob] repeats it on a ticker.
package service

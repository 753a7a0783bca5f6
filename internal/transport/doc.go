// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package transport implements the RPC channel to one logical store of the
// remote note service.
//
// A [Session] owns one endpoint (scheme, host, port, store path). Calls are
// framed as JSON envelopes and POSTed to the store path over a keep-alive
// tuned TCP connection, optionally wrapped in TLS with a configurable trusted
// bundle ([CertPool]).
//
// Failures fall in two families. Socket faults, non-2xx statuses and
// malformed replies are returned as [*Error]; exceptions raised by the remote
// side are returned as [*RemoteException] so the adapter layer can turn them
// into typed service exceptions.
package transport

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package server runs the local status and metrics endpoint.
//
// The server lives as long as the context passed to Run and shuts down
// gracefully once it is cancelled, so it can be run next to the other
// background workers of the watch command.
package server

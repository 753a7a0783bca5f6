// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the command-line client runtime.
//
// It wires the transport, the service stores, the local entity store and the
// sync services into one [App], and renders command output and error
// banners for the terminal.
package client

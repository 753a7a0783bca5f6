// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package config provides configuration loading, merging, and validation
// for the note sync client.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Built-in defaults ([Defaults])
//  2. JSON or YAML config file
//  3. Environment variables
//  4. Command-line overrides
//
// The main entry point is [GetClientConfig], which returns a validated
// [ClientConfig].
package config

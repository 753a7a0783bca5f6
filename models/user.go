// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// User is the account the primary token belongs to.
type User struct {
	ID       int32  `json:"id"`
	Username string `json:"username"`
	Name     string `json:"name,omitempty"`
	Email    string `json:"email,omitempty"`

	// ShardID names the note store partition holding the user's data.
	ShardID string `json:"shardId"`
}

// AuthenticationResult is returned by authenticateToSharedNotebook.
type AuthenticationResult struct {
	CurrentTime         int64  `json:"currentTime"`
	AuthenticationToken string `json:"authenticationToken"`
	Expiration          int64  `json:"expiration"`
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"

	"github.com/MKhiriev/go-note-sync/internal/transport"
	"github.com/MKhiriev/go-note-sync/models"
)

type userStore struct {
	caller transport.Caller
}

// NewUserStore binds a [UserStore] client to an open user store channel.
func NewUserStore(caller transport.Caller) UserStore {
	return &userStore{caller: caller}
}

type checkVersionParams struct {
	ClientName string `json:"clientName"`
	Major      int    `json:"edamVersionMajor"`
	Minor      int    `json:"edamVersionMinor"`
}

func (u *userStore) CheckVersion(ctx context.Context, clientName string, major, minor int) (bool, error) {
	return call[bool](ctx, u.caller, "checkVersion", checkVersionParams{ClientName: clientName, Major: major, Minor: minor})
}

func (u *userStore) GetUser(ctx context.Context, token string) (models.User, error) {
	return call[models.User](ctx, u.caller, "getUser", tokenParams{Token: token})
}

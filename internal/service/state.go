// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-note-sync/internal/logger"
	"github.com/MKhiriev/go-note-sync/models"
)

// StateService issues the read-only account probes.
type StateService struct {
	sessions *SessionManager
	logger   *logger.Logger
}

func NewStateService(sessions *SessionManager, log *logger.Logger) *StateService {
	return &StateService{sessions: sessions, logger: log}
}

func (s *StateService) GetSyncState(ctx context.Context) (models.SyncState, error) {
	return retry(ctx, s.sessions.primaryPolicy(), "getSyncState", func(ctx context.Context) (models.SyncState, error) {
		c, err := s.sessions.primary()
		if err != nil {
			return models.SyncState{}, err
		}
		return c.store.GetSyncState(ctx, c.token)
	})
}

// GetLinkedNotebookSyncState probes the sync state of ln on its own shard.
// The linked session must be bound to ln.
func (s *StateService) GetLinkedNotebookSyncState(ctx context.Context, ln models.LinkedNotebook) (models.SyncState, error) {
	return retry(ctx, s.sessions.linkedPolicy(ln), "getLinkedNotebookSyncState", func(ctx context.Context) (models.SyncState, error) {
		c, err := s.sessions.linkedClient(ln)
		if err != nil {
			return models.SyncState{}, err
		}
		return c.store.GetLinkedNotebookSyncState(ctx, c.token, ln)
	})
}

// GetSharedNotebookByAuth returns the share record the linked token grants
// access to.
func (s *StateService) GetSharedNotebookByAuth(ctx context.Context, ln models.LinkedNotebook) (models.SharedNotebook, error) {
	return retry(ctx, s.sessions.linkedPolicy(ln), "getSharedNotebookByAuth", func(ctx context.Context) (models.SharedNotebook, error) {
		c, err := s.sessions.linkedClient(ln)
		if err != nil {
			return models.SharedNotebook{}, err
		}
		return c.store.GetSharedNotebookByAuth(ctx, c.token)
	})
}

func (s *StateService) ListNotebooks(ctx context.Context) ([]models.Notebook, error) {
	return retry(ctx, s.sessions.primaryPolicy(), "listNotebooks", func(ctx context.Context) ([]models.Notebook, error) {
		c, err := s.sessions.primary()
		if err != nil {
			return nil, err
		}
		return c.store.ListNotebooks(ctx, c.token)
	})
}

func (s *StateService) ListTags(ctx context.Context) ([]models.Tag, error) {
	return retry(ctx, s.sessions.primaryPolicy(), "listTags", func(ctx context.Context) ([]models.Tag, error) {
		c, err := s.sessions.primary()
		if err != nil {
			return nil, err
		}
		return c.store.ListTags(ctx, c.token)
	})
}

// GetUserInfo returns the account resolved at connect time, reconnecting if
// the manager is down.
func (s *StateService) GetUserInfo(ctx context.Context) (models.User, error) {
	return retry(ctx, s.sessions.primaryPolicy(), "getUser", func(ctx context.Context) (models.User, error) {
		user, ok := s.sessions.User()
		if !ok {
			return models.User{}, ErrNotConnected
		}
		return user, nil
	})
}

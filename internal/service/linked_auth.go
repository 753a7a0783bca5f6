// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-note-sync/models"
)

// AuthenticateLinked binds a session to the shard of ln, replacing any
// previous linked session. Privately shared notebooks get a TLS session and
// a shared notebook token; public notebooks get a plaintext session and no
// authentication call, since their state probe is unreliable over TLS.
//
// The primary session must be connected. Failures are not retried here.
func (m *SessionManager) AuthenticateLinked(ctx context.Context, ln models.LinkedNotebook) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.authenticateLinkedLocked(ctx, ln); err != nil {
		return newCommunicationError("authenticateToLinkedNotebook", err, 0)
	}
	return nil
}

// Linked returns the linked notebook the manager is currently bound to.
func (m *SessionManager) Linked() (models.LinkedNotebook, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.linked == nil {
		return models.LinkedNotebook{}, false
	}
	return m.linked.notebook, true
}

func (m *SessionManager) authenticateLinkedLocked(ctx context.Context, ln models.LinkedNotebook) error {
	m.closeLinkedLocked()

	if !m.connected {
		return ErrNotConnected
	}

	private := ln.IsPrivate()
	conn, err := m.opener.Open(ctx, m.noteEndpoint(ln.ShardID, private))
	if err != nil {
		return fmt.Errorf("open linked note store: %w", err)
	}
	store := m.newNoteStore(conn)

	session := &linkedSession{notebook: ln, conn: conn, store: store}
	if private {
		auth, err := store.AuthenticateToSharedNotebook(ctx, ln.ShareKey, m.token)
		if err != nil {
			m.closeConn(conn)
			return fmt.Errorf("authenticate to shared notebook: %w", err)
		}
		session.token = auth.AuthenticationToken
	}
	m.linked = session

	m.logger.Debug().Str("func", "SessionManager.authenticateLinked").
		Str("notebook", ln.GUID).Str("shard", ln.ShardID).Bool("private", private).
		Msg("linked notebook session bound")
	return nil
}

func (m *SessionManager) closeLinkedLocked() {
	if m.linked == nil {
		return
	}
	m.closeConn(m.linked.conn)
	m.linked = nil
}

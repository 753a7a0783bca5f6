// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-note-sync/internal/adapter"
	"github.com/MKhiriev/go-note-sync/internal/transport"
	"github.com/MKhiriev/go-note-sync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var (
	privateNotebook = models.LinkedNotebook{GUID: "ln-private", ShareName: "Team", ShardID: "s9", ShareKey: "share-key"}
	publicNotebook  = models.LinkedNotebook{GUID: "ln-public", ShareName: "Recipes", ShardID: "s7"}
)

// ── AuthenticateLinked ───────────────────────────────────────────────────────

func TestAuthenticateLinked_PrivateUsesTLSAndSharedToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	fx := newSessionFixture(t, ctrl)
	fx.connect(t)

	ep := transport.Endpoint{Host: "notes.test", Port: 8443, Path: "/edam/note/s9", TLS: true}
	gomock.InOrder(
		fx.opener.EXPECT().Open(gomock.Any(), ep).Return(fx.linkedConn, nil),
		fx.linkedNotes.EXPECT().AuthenticateToSharedNotebook(gomock.Any(), "share-key", testToken).
			Return(models.AuthenticationResult{AuthenticationToken: "linked-token"}, nil),
	)

	require.NoError(t, fx.m.AuthenticateLinked(context.Background(), privateNotebook))

	bound, ok := fx.m.Linked()
	require.True(t, ok)
	assert.Equal(t, privateNotebook.GUID, bound.GUID)

	c, err := fx.m.linkedClient(privateNotebook)
	require.NoError(t, err)
	assert.Equal(t, "linked-token", c.token)
	assert.Equal(t, testToken, c.primaryToken)
	assert.Equal(t, "s9", c.shard)
	assert.Same(t, fx.linkedNotes, c.store)
}

func TestAuthenticateLinked_PublicUsesPlaintextWithoutAuth(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	fx := newSessionFixture(t, ctrl)
	fx.connect(t)

	ep := transport.Endpoint{Host: "notes.test", Port: 8080, Path: "/edam/note/s7", TLS: false}
	fx.opener.EXPECT().Open(gomock.Any(), ep).Return(fx.linkedConn, nil)
	// no AuthenticateToSharedNotebook expectation: calling it fails the test

	require.NoError(t, fx.m.AuthenticateLinked(context.Background(), publicNotebook))

	c, err := fx.m.linkedClient(publicNotebook)
	require.NoError(t, err)
	assert.Equal(t, testToken, c.token, "public notebooks fall back to the primary token")
	assert.Equal(t, "s7", c.shard)
}

func TestAuthenticateLinked_RequiresConnection(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	fx := newSessionFixture(t, ctrl)

	err := fx.m.AuthenticateLinked(context.Background(), privateNotebook)

	require.ErrorIs(t, err, ErrNotConnected)
	var ce *CommunicationError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, "authenticateToLinkedNotebook", ce.Op)
}

func TestAuthenticateLinked_AuthFailureClosesSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	fx := newSessionFixture(t, ctrl)
	fx.connect(t)

	fx.opener.EXPECT().Open(gomock.Any(), gomock.Any()).Return(fx.linkedConn, nil)
	fx.linkedNotes.EXPECT().AuthenticateToSharedNotebook(gomock.Any(), "share-key", testToken).
		Return(models.AuthenticationResult{}, &adapter.UserException{Code: adapter.ErrorCodePermissionDenied})
	fx.linkedConn.EXPECT().Close().Return(nil)

	err := fx.m.AuthenticateLinked(context.Background(), privateNotebook)

	assert.Equal(t, KindUser, Classify(err))
	_, ok := fx.m.Linked()
	assert.False(t, ok)
	_, err = fx.m.linkedClient(privateNotebook)
	assert.ErrorIs(t, err, ErrNoLinkedSession)
}

func TestAuthenticateLinked_ReplacesPreviousSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	fx := newSessionFixture(t, ctrl)
	fx.connect(t)

	fx.opener.EXPECT().Open(gomock.Any(), gomock.Any()).Return(fx.linkedConn, nil).Times(2)
	fx.linkedConn.EXPECT().Close().Return(nil)

	require.NoError(t, fx.m.AuthenticateLinked(context.Background(), publicNotebook))
	other := models.LinkedNotebook{GUID: "ln-other", ShardID: "s8"}
	require.NoError(t, fx.m.AuthenticateLinked(context.Background(), other))

	bound, ok := fx.m.Linked()
	require.True(t, ok)
	assert.Equal(t, "ln-other", bound.GUID)

	_, err := fx.m.linkedClient(publicNotebook)
	assert.ErrorIs(t, err, ErrNoLinkedSession)
}

func TestReconnectLinked_RebindsNotebook(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	fx := newSessionFixture(t, ctrl)
	fx.connect(t)

	fx.opener.EXPECT().Open(gomock.Any(), gomock.Any()).Return(fx.linkedConn, nil)
	require.NoError(t, fx.m.AuthenticateLinked(context.Background(), publicNotebook))

	fx.linkedConn.EXPECT().Close().Return(nil)
	fx.noteConn.EXPECT().Close().Return(nil)
	fx.expectConnect()
	fx.opener.EXPECT().Open(gomock.Any(), gomock.Any()).Return(fx.linkedConn, nil)

	require.NoError(t, fx.m.ReconnectLinked(context.Background(), publicNotebook))

	assert.True(t, fx.m.IsConnected())
	bound, ok := fx.m.Linked()
	require.True(t, ok)
	assert.Equal(t, publicNotebook.GUID, bound.GUID)
}

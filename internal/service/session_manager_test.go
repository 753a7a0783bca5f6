// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-note-sync/internal/adapter"
	"github.com/MKhiriev/go-note-sync/internal/logger"
	"github.com/MKhiriev/go-note-sync/internal/mock"
	"github.com/MKhiriev/go-note-sync/internal/transport"
	"github.com/MKhiriev/go-note-sync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testToken = "S=s1:U=2a:E=18b:C=token"

var testUser = models.User{ID: 42, Username: "alice", ShardID: "s1"}

var (
	userEndpoint = transport.Endpoint{Host: "notes.test", Port: 8443, Path: "/edam/user", TLS: true}
	noteEndpoint = transport.Endpoint{Host: "notes.test", Port: 8443, Path: "/edam/note/s1", TLS: true}
)

func testSessionConfig() SessionConfig {
	return SessionConfig{
		ClientName:      "go-note-sync-test",
		APIMajor:        1,
		APIMinor:        28,
		Host:            "notes.test",
		TLSPort:         8443,
		PlainPort:       8080,
		UserStorePath:   "/edam/user",
		NoteStorePrefix: "/edam/note/",
	}
}

// sessionFixture wires a SessionManager to mocked channels and stores. The
// linked note store is handed out for linkedConn, the primary one for every
// other channel.
type sessionFixture struct {
	m *SessionManager

	opener      *mock.MockOpener
	users       *mock.MockUserStore
	notes       *mock.MockNoteStore
	linkedNotes *mock.MockNoteStore

	userConn   *mock.MockConn
	noteConn   *mock.MockConn
	linkedConn *mock.MockConn
}

func newSessionFixture(t *testing.T, ctrl *gomock.Controller) *sessionFixture {
	t.Helper()

	fx := &sessionFixture{
		opener:      mock.NewMockOpener(ctrl),
		users:       mock.NewMockUserStore(ctrl),
		notes:       mock.NewMockNoteStore(ctrl),
		linkedNotes: mock.NewMockNoteStore(ctrl),
		userConn:    mock.NewMockConn(ctrl),
		noteConn:    mock.NewMockConn(ctrl),
		linkedConn:  mock.NewMockConn(ctrl),
	}
	for _, c := range []*mock.MockConn{fx.userConn, fx.noteConn, fx.linkedConn} {
		c.EXPECT().Endpoint().Return(transport.Endpoint{Host: "notes.test"}).AnyTimes()
	}

	fx.m = NewSessionManager(testSessionConfig(), fx.opener, NewStaticTokenSource(testToken), logger.Nop())
	fx.m.newUserStore = func(transport.Caller) adapter.UserStore { return fx.users }
	fx.m.newNoteStore = func(c transport.Caller) adapter.NoteStore {
		if c == fx.linkedConn {
			return fx.linkedNotes
		}
		return fx.notes
	}
	return fx
}

// expectConnect registers one successful connect sequence.
func (fx *sessionFixture) expectConnect() {
	fx.opener.EXPECT().Open(gomock.Any(), userEndpoint).Return(fx.userConn, nil)
	fx.users.EXPECT().CheckVersion(gomock.Any(), "go-note-sync-test", 1, 28).Return(true, nil)
	fx.users.EXPECT().GetUser(gomock.Any(), testToken).Return(testUser, nil)
	fx.userConn.EXPECT().Close().Return(nil)
	fx.opener.EXPECT().Open(gomock.Any(), noteEndpoint).Return(fx.noteConn, nil)
	fx.notes.EXPECT().GetSyncState(gomock.Any(), testToken).Return(models.SyncState{UpdateCount: 100}, nil)
}

func (fx *sessionFixture) connect(t *testing.T) {
	t.Helper()
	fx.expectConnect()
	require.NoError(t, fx.m.Connect(context.Background()))
}

// ── Connect ──────────────────────────────────────────────────────────────────

func TestSessionManager_Connect_Order(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	fx := newSessionFixture(t, ctrl)
	gomock.InOrder(
		fx.opener.EXPECT().Open(gomock.Any(), userEndpoint).Return(fx.userConn, nil),
		fx.users.EXPECT().CheckVersion(gomock.Any(), "go-note-sync-test", 1, 28).Return(true, nil),
		fx.users.EXPECT().GetUser(gomock.Any(), testToken).Return(testUser, nil),
		fx.userConn.EXPECT().Close().Return(nil),
		fx.opener.EXPECT().Open(gomock.Any(), noteEndpoint).Return(fx.noteConn, nil),
		fx.notes.EXPECT().GetSyncState(gomock.Any(), testToken).Return(models.SyncState{}, nil),
	)

	require.NoError(t, fx.m.Connect(context.Background()))

	assert.True(t, fx.m.IsConnected())
	user, ok := fx.m.User()
	require.True(t, ok)
	assert.Equal(t, testUser, user)

	c, err := fx.m.primary()
	require.NoError(t, err)
	assert.Equal(t, testToken, c.token)
	assert.Equal(t, "s1", c.shard)
}

func TestSessionManager_Connect_Idempotent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	fx := newSessionFixture(t, ctrl)
	fx.connect(t)

	// no further expectations: a second Connect must not touch the network
	require.NoError(t, fx.m.Connect(context.Background()))
	assert.True(t, fx.m.IsConnected())
}

func TestSessionManager_Connect_VersionMismatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	fx := newSessionFixture(t, ctrl)
	fx.opener.EXPECT().Open(gomock.Any(), userEndpoint).Return(fx.userConn, nil)
	fx.users.EXPECT().CheckVersion(gomock.Any(), "go-note-sync-test", 1, 28).Return(false, nil)
	fx.userConn.EXPECT().Close().Return(nil)

	err := fx.m.Connect(context.Background())

	require.ErrorIs(t, err, ErrVersionMismatch)
	var ce *CommunicationError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, KindSystem, ce.Kind)
	assert.Equal(t, "connect", ce.Op)
	assert.False(t, fx.m.IsConnected())
}

func TestSessionManager_Connect_NoToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	fx := newSessionFixture(t, ctrl)
	fx.m.tokens = NewStaticTokenSource("  ")

	err := fx.m.Connect(context.Background())

	require.ErrorIs(t, err, ErrNoToken)
	assert.Equal(t, KindSystem, Classify(err))
}

func TestSessionManager_Connect_UserStoreUnreachable(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	fx := newSessionFixture(t, ctrl)
	dialErr := &transport.Error{Op: "open", URL: userEndpoint.URL(), Err: errors.New("connection refused")}
	fx.opener.EXPECT().Open(gomock.Any(), userEndpoint).Return(nil, dialErr)

	err := fx.m.Connect(context.Background())

	assert.Equal(t, KindTransport, Classify(err))
	assert.False(t, fx.m.IsConnected())
}

func TestSessionManager_Connect_ProbeFailureClosesNoteStore(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	fx := newSessionFixture(t, ctrl)
	fx.opener.EXPECT().Open(gomock.Any(), userEndpoint).Return(fx.userConn, nil)
	fx.users.EXPECT().CheckVersion(gomock.Any(), gomock.Any(), 1, 28).Return(true, nil)
	fx.users.EXPECT().GetUser(gomock.Any(), testToken).Return(testUser, nil)
	fx.userConn.EXPECT().Close().Return(nil)
	fx.opener.EXPECT().Open(gomock.Any(), noteEndpoint).Return(fx.noteConn, nil)
	fx.notes.EXPECT().GetSyncState(gomock.Any(), testToken).
		Return(models.SyncState{}, &adapter.SystemException{Code: adapter.ErrorCodeShardUnavailable})
	fx.noteConn.EXPECT().Close().Return(nil)

	err := fx.m.Connect(context.Background())

	assert.Equal(t, KindSystem, Classify(err))
	assert.False(t, fx.m.IsConnected())
	_, err = fx.m.primary()
	assert.ErrorIs(t, err, ErrNotConnected)
}

// ── Disconnect / Reconnect ───────────────────────────────────────────────────

func TestSessionManager_Disconnect_ClosesEverything(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	fx := newSessionFixture(t, ctrl)
	fx.connect(t)

	ln := models.LinkedNotebook{GUID: "ln1", ShardID: "s9"}
	fx.opener.EXPECT().Open(gomock.Any(), gomock.Any()).Return(fx.linkedConn, nil)
	require.NoError(t, fx.m.AuthenticateLinked(context.Background(), ln))

	fx.linkedConn.EXPECT().Close().Return(nil)
	fx.noteConn.EXPECT().Close().Return(nil)
	fx.m.Disconnect()

	assert.False(t, fx.m.IsConnected())
	_, ok := fx.m.Linked()
	assert.False(t, ok)
	_, ok = fx.m.User()
	assert.False(t, ok)
}

func TestSessionManager_Disconnect_CloseFailureIsIgnored(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	fx := newSessionFixture(t, ctrl)
	fx.connect(t)

	fx.noteConn.EXPECT().Close().Return(errors.New("close: broken pipe"))
	assert.NotPanics(t, fx.m.Disconnect)
	assert.False(t, fx.m.IsConnected())
}

func TestSessionManager_Disconnect_WhenIdle(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	fx := newSessionFixture(t, ctrl)
	assert.NotPanics(t, fx.m.Disconnect)
}

func TestSessionManager_Reconnect_RebuildsSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	fx := newSessionFixture(t, ctrl)
	fx.connect(t)

	fx.noteConn.EXPECT().Close().Return(nil)
	fx.expectConnect()

	require.NoError(t, fx.m.Reconnect(context.Background()))
	assert.True(t, fx.m.IsConnected())
}

func TestSessionManager_Reconnect_FailureLeavesDisconnected(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	fx := newSessionFixture(t, ctrl)
	fx.connect(t)

	fx.noteConn.EXPECT().Close().Return(nil)
	fx.opener.EXPECT().Open(gomock.Any(), userEndpoint).
		Return(nil, &transport.Error{Op: "open", Err: errors.New("no route to host")})

	err := fx.m.Reconnect(context.Background())

	var ce *CommunicationError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, "reconnect", ce.Op)
	assert.False(t, fx.m.IsConnected())
}

// ── ImageAuth ────────────────────────────────────────────────────────────────

func TestSessionManager_ImageAuth_ConnectsOnDemand(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	fx := newSessionFixture(t, ctrl)
	fx.expectConnect()

	shard, token, err := fx.m.ImageAuth(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "s1", shard)
	assert.Equal(t, testToken, token)
	assert.True(t, fx.m.IsConnected())
}

func TestSessionManager_ImageAuth_ConnectFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	fx := newSessionFixture(t, ctrl)
	fx.opener.EXPECT().Open(gomock.Any(), userEndpoint).
		Return(nil, &transport.Error{Op: "open", Err: errors.New("no route to host")})

	_, _, err := fx.m.ImageAuth(context.Background())

	var ce *CommunicationError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, "connect", ce.Op)
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-note-sync/internal/adapter"
	"github.com/MKhiriev/go-note-sync/internal/logger"
	"github.com/MKhiriev/go-note-sync/internal/transport"
	"github.com/MKhiriev/go-note-sync/models"
)

// SessionConfig locates the service stores and identifies the client.
type SessionConfig struct {
	ClientName string
	APIMajor   int
	APIMinor   int

	Host            string
	TLSPort         int
	PlainPort       int
	UserStorePath   string
	NoteStorePrefix string
}

// SessionManager owns the note store session, the optional linked notebook
// session and the authentication context. It serializes every change to
// them, so one manager can be shared by several goroutines; managers share
// nothing with each other.
type SessionManager struct {
	cfg    SessionConfig
	opener transport.Opener
	tokens TokenSource
	logger *logger.Logger

	newUserStore func(transport.Caller) adapter.UserStore
	newNoteStore func(transport.Caller) adapter.NoteStore

	mu        sync.Mutex
	connected bool
	token     string
	user      models.User
	noteConn  transport.Conn
	noteStore adapter.NoteStore
	linked    *linkedSession
}

// linkedSession is the session bound to one linked notebook's shard.
type linkedSession struct {
	notebook models.LinkedNotebook
	conn     transport.Conn
	store    adapter.NoteStore
	// token is the shared notebook token, empty for public notebooks.
	token string
}

// storeClient is a snapshot of a bound store and the credentials to use it.
type storeClient struct {
	store adapter.NoteStore
	// token authenticates store calls.
	token string
	// primaryToken is the account token, used by calls that must be made
	// on behalf of the account even against a linked shard.
	primaryToken string
	shard        string
}

func NewSessionManager(cfg SessionConfig, opener transport.Opener, tokens TokenSource, log *logger.Logger) *SessionManager {
	return &SessionManager{
		cfg:          cfg,
		opener:       opener,
		tokens:       tokens,
		logger:       log,
		newUserStore: adapter.NewUserStore,
		newNoteStore: adapter.NewNoteStore,
	}
}

// Connect opens the primary note store session. It is a no-op when the
// manager is already connected. Failures are returned as
// *CommunicationError and leave the manager disconnected.
func (m *SessionManager) Connect(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.connectLocked(ctx); err != nil {
		return newCommunicationError("connect", err, 0)
	}
	return nil
}

// Disconnect closes every open session and resets the authentication
// context. Close failures are logged only.
func (m *SessionManager) Disconnect() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.disconnectLocked()
}

// Reconnect tears down and rebuilds the primary session.
func (m *SessionManager) Reconnect(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.disconnectLocked()
	if err := m.connectLocked(ctx); err != nil {
		return newCommunicationError("reconnect", err, 0)
	}
	return nil
}

// ReconnectLinked rebuilds the primary session and re-authenticates to ln.
func (m *SessionManager) ReconnectLinked(ctx context.Context, ln models.LinkedNotebook) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.disconnectLocked()
	if err := m.connectLocked(ctx); err != nil {
		return newCommunicationError("reconnect", err, 0)
	}
	if err := m.authenticateLinkedLocked(ctx, ln); err != nil {
		return newCommunicationError("authenticateToLinkedNotebook", err, 0)
	}
	return nil
}

// IsConnected reports whether the primary session is up.
func (m *SessionManager) IsConnected() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.connected
}

// User returns the account resolved during Connect.
func (m *SessionManager) User() (models.User, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.user, m.connected
}

// ImageAuth connects when needed and returns the shard and token image
// downloads of the account's own resources are authorized with.
func (m *SessionManager) ImageAuth(ctx context.Context) (shard, token string, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err = m.connectLocked(ctx); err != nil {
		return "", "", newCommunicationError("connect", err, 0)
	}
	return m.user.ShardID, m.token, nil
}

func (m *SessionManager) userEndpoint() transport.Endpoint {
	return transport.Endpoint{Host: m.cfg.Host, Port: m.cfg.TLSPort, Path: m.cfg.UserStorePath, TLS: true}
}

func (m *SessionManager) noteEndpoint(shard string, tls bool) transport.Endpoint {
	port := m.cfg.TLSPort
	if !tls {
		port = m.cfg.PlainPort
	}
	return transport.Endpoint{Host: m.cfg.Host, Port: port, Path: m.cfg.NoteStorePrefix + shard, TLS: tls}
}

func (m *SessionManager) connectLocked(ctx context.Context) error {
	if m.connected {
		return nil
	}

	token, err := m.tokens.Token(ctx)
	if err != nil {
		return err
	}

	user, err := m.resolveUser(ctx, token)
	if err != nil {
		return err
	}

	conn, err := m.opener.Open(ctx, m.noteEndpoint(user.ShardID, true))
	if err != nil {
		return fmt.Errorf("open note store: %w", err)
	}
	store := m.newNoteStore(conn)

	if _, err = store.GetSyncState(ctx, token); err != nil {
		m.closeConn(conn)
		return fmt.Errorf("probe note store: %w", err)
	}

	m.token = token
	m.user = user
	m.noteConn = conn
	m.noteStore = store
	m.connected = true

	m.logger.Info().Str("func", "SessionManager.connect").Str("shard", user.ShardID).Msg("connected to note store")
	return nil
}

// resolveUser runs the version handshake and the user lookup on a user
// store session that is closed before returning.
func (m *SessionManager) resolveUser(ctx context.Context, token string) (models.User, error) {
	conn, err := m.opener.Open(ctx, m.userEndpoint())
	if err != nil {
		return models.User{}, fmt.Errorf("open user store: %w", err)
	}
	defer m.closeConn(conn)

	us := m.newUserStore(conn)
	ok, err := us.CheckVersion(ctx, m.cfg.ClientName, m.cfg.APIMajor, m.cfg.APIMinor)
	if err != nil {
		return models.User{}, fmt.Errorf("check version: %w", err)
	}
	if !ok {
		return models.User{}, fmt.Errorf("%w: %d.%d", ErrVersionMismatch, m.cfg.APIMajor, m.cfg.APIMinor)
	}

	user, err := us.GetUser(ctx, token)
	if err != nil {
		return models.User{}, fmt.Errorf("get user: %w", err)
	}
	return user, nil
}

func (m *SessionManager) disconnectLocked() {
	m.closeLinkedLocked()
	if m.noteConn != nil {
		m.closeConn(m.noteConn)
	}

	m.noteConn = nil
	m.noteStore = nil
	m.token = ""
	m.user = models.User{}
	m.connected = false
}

func (m *SessionManager) closeConn(conn transport.Conn) {
	if err := conn.Close(); err != nil {
		m.logger.Warn().Err(err).Str("func", "SessionManager.closeConn").
			Str("endpoint", conn.Endpoint().String()).Msg("error closing session")
	}
}

// primary returns the primary note store client.
func (m *SessionManager) primary() (storeClient, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.connected {
		return storeClient{}, ErrNotConnected
	}
	return storeClient{store: m.noteStore, token: m.token, primaryToken: m.token, shard: m.user.ShardID}, nil
}

// linkedClient returns the client bound to ln. Calls authenticate with the
// shared notebook token, or the primary token when the notebook is public.
func (m *SessionManager) linkedClient(ln models.LinkedNotebook) (storeClient, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.connected {
		return storeClient{}, ErrNotConnected
	}
	if m.linked == nil || m.linked.notebook.GUID != ln.GUID {
		return storeClient{}, ErrNoLinkedSession
	}

	token := m.linked.token
	if token == "" {
		token = m.token
	}
	return storeClient{store: m.linked.store, token: token, primaryToken: m.token, shard: ln.ShardID}, nil
}

func (m *SessionManager) primaryPolicy() retryPolicy {
	return retryPolicy{max: MaxRetries, reconnect: m.Reconnect, logger: m.logger}
}

func (m *SessionManager) linkedPolicy(ln models.LinkedNotebook) retryPolicy {
	return retryPolicy{
		max:       MaxRetries,
		reconnect: func(ctx context.Context) error { return m.ReconnectLinked(ctx, ln) },
		logger:    m.logger,
	}
}

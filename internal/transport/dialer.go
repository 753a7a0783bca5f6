// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package transport

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"net"
	"sync"
	"time"
)

// KeepAlive holds TCP keep-alive tuning applied to every session socket.
type KeepAlive struct {
	// Idle is the time a connection stays idle before the first probe.
	Idle time.Duration
	// Interval between unanswered probes.
	Interval time.Duration
	// Count of unanswered probes before the connection is dropped.
	Count int
}

// DefaultKeepAlive is 9 probes after 1200s idle, 60s apart.
var DefaultKeepAlive = KeepAlive{
	Idle:     1200 * time.Second,
	Interval: 60 * time.Second,
	Count:    9,
}

func newDialer(ka KeepAlive, timeout time.Duration) *net.Dialer {
	d := &net.Dialer{Timeout: timeout}
	applyKeepAlive(d, ka)
	return d
}

func tlsConfig(host string, roots *x509.CertPool) *tls.Config {
	return &tls.Config{
		ServerName: host,
		RootCAs:    roots,
		MinVersion: tls.VersionTLS12,
	}
}

// connTracker remembers live connections so a closing session can cut them
// after a short receive timeout.
type connTracker struct {
	mu    sync.Mutex
	conns map[*trackedConn]struct{}
}

func newConnTracker() *connTracker {
	return &connTracker{conns: make(map[*trackedConn]struct{})}
}

func (t *connTracker) track(c net.Conn) net.Conn {
	tc := &trackedConn{Conn: c, tracker: t}
	t.mu.Lock()
	t.conns[tc] = struct{}{}
	t.mu.Unlock()
	return tc
}

func (t *connTracker) forget(c *trackedConn) {
	t.mu.Lock()
	delete(t.conns, c)
	t.mu.Unlock()
}

// closeAll sets a read deadline of timeout on every live connection and then
// closes them.
func (t *connTracker) closeAll(timeout time.Duration) {
	t.mu.Lock()
	conns := make([]*trackedConn, 0, len(t.conns))
	for c := range t.conns {
		conns = append(conns, c)
	}
	t.mu.Unlock()

	for _, c := range conns {
		_ = c.SetReadDeadline(time.Now().Add(timeout))
		_ = c.Close()
	}
}

func (t *connTracker) len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.conns)
}

type trackedConn struct {
	net.Conn
	tracker *connTracker
	once    sync.Once
}

func (c *trackedConn) Close() error {
	c.once.Do(func() { c.tracker.forget(c) })
	return c.Conn.Close()
}

// oneShot holds a connection prepared by Open until the first request takes
// it.
type oneShot struct {
	mu   sync.Mutex
	conn net.Conn
}

func (o *oneShot) take() net.Conn {
	o.mu.Lock()
	defer o.mu.Unlock()
	c := o.conn
	o.conn = nil
	return c
}

// dialFunc builds the DialContext/DialTLSContext hook of the session
// transport. The pre-opened connection is handed out first; later dials go
// through the keep-alive tuned dialer and, for TLS endpoints, a handshake
// against roots.
func dialFunc(d *net.Dialer, ep Endpoint, roots func() *x509.CertPool, pre *oneShot, tracker *connTracker) func(ctx context.Context, network, addr string) (net.Conn, error) {
	return func(ctx context.Context, network, addr string) (net.Conn, error) {
		if c := pre.take(); c != nil {
			return c, nil
		}
		c, err := dialEndpoint(ctx, d, ep, roots())
		if err != nil {
			return nil, err
		}
		return tracker.track(c), nil
	}
}

func dialEndpoint(ctx context.Context, d *net.Dialer, ep Endpoint, roots *x509.CertPool) (net.Conn, error) {
	raw, err := d.DialContext(ctx, "tcp", ep.Address())
	if err != nil {
		return nil, err
	}
	if !ep.TLS {
		return raw, nil
	}

	tc := tls.Client(raw, tlsConfig(ep.Host, roots))
	if err = tc.HandshakeContext(ctx); err != nil {
		_ = raw.Close()
		return nil, err
	}
	return tc, nil
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package transport

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-note-sync/internal/logger"
	"github.com/MKhiriev/go-note-sync/internal/metrics"
	"github.com/MKhiriev/go-note-sync/internal/utils"
)

// Options tunes every session opened by a [Factory].
type Options struct {
	KeepAlive      KeepAlive
	DialTimeout    time.Duration
	RequestTimeout time.Duration
	// CloseTimeout is the read deadline given to live connections before
	// they are closed.
	CloseTimeout time.Duration
	// Certs verifies TLS endpoints. Nil means the system roots.
	Certs     *CertPool
	UserAgent string
}

func (o Options) withDefaults() Options {
	if o.KeepAlive.Count == 0 {
		o.KeepAlive = DefaultKeepAlive
	}
	if o.DialTimeout <= 0 {
		o.DialTimeout = 30 * time.Second
	}
	if o.RequestTimeout <= 0 {
		o.RequestTimeout = 60 * time.Second
	}
	if o.CloseTimeout <= 0 {
		o.CloseTimeout = 10 * time.Second
	}
	return o
}

// Factory opens [Session] values with shared options. It implements
// [Opener].
type Factory struct {
	opts   Options
	ids    utils.IDGenerator
	logger *logger.Logger
}

func NewFactory(opts Options, log *logger.Logger) *Factory {
	return &Factory{opts: opts.withDefaults(), ids: utils.NewUUIDGenerator(), logger: log}
}

func (f *Factory) Open(ctx context.Context, endpoint Endpoint) (Conn, error) {
	return Open(ctx, endpoint, f.opts, f.ids, f.logger)
}

// Session is one RPC channel to one store. Calls on a session are safe for
// concurrent use but the channel holds a single connection, so they are
// served one at a time.
type Session struct {
	endpoint Endpoint
	opts     Options

	client    *resty.Client
	transport *http.Transport
	tracker   *connTracker
	pre       *oneShot
	ids       utils.IDGenerator
	logger    *logger.Logger

	mu     sync.RWMutex
	closed bool
}

// Open dials endpoint, performs the TLS handshake when required, and returns
// a session whose first call reuses that connection. A failure to connect is
// reported as [*Error] with Op "open".
func Open(ctx context.Context, endpoint Endpoint, opts Options, ids utils.IDGenerator, log *logger.Logger) (*Session, error) {
	opts = opts.withDefaults()
	d := newDialer(opts.KeepAlive, opts.DialTimeout)
	tracker := newConnTracker()

	conn, err := dialEndpoint(ctx, d, endpoint, opts.Certs.Pool())
	if err != nil {
		log.Err(err).Str("func", "transport.Open").Str("url", endpoint.URL()).Msg("error opening session")
		return nil, &Error{Op: "open", URL: endpoint.URL(), Err: err}
	}
	pre := &oneShot{conn: tracker.track(conn)}

	tr := &http.Transport{
		MaxConnsPerHost:     1,
		MaxIdleConnsPerHost: 1,
		IdleConnTimeout:     opts.KeepAlive.Idle,
	}
	dial := dialFunc(d, endpoint, opts.Certs.Pool, pre, tracker)
	if endpoint.TLS {
		tr.DialTLSContext = dial
	} else {
		tr.DialContext = dial
	}

	client := resty.NewWithClient(&http.Client{Transport: tr}).
		SetTimeout(opts.RequestTimeout)
	if opts.UserAgent != "" {
		client.SetHeader("User-Agent", opts.UserAgent)
	}

	log.Debug().Str("func", "transport.Open").Str("url", endpoint.URL()).Msg("session opened")

	return &Session{
		endpoint:  endpoint,
		opts:      opts,
		client:    client,
		transport: tr,
		tracker:   tracker,
		pre:       pre,
		ids:       ids,
		logger:    log,
	}, nil
}

func (s *Session) Endpoint() Endpoint {
	return s.endpoint
}

// IsOpen reports whether Close has not been called yet.
func (s *Session) IsOpen() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return !s.closed
}

// Call implements [Caller].
func (s *Session) Call(ctx context.Context, method string, params, result any) error {
	if !s.IsOpen() {
		return &Error{Op: method, URL: s.endpoint.URL(), Err: ErrSessionClosed}
	}

	start := time.Now()
	err := s.call(ctx, method, params, result)
	metrics.ObserveRPC(method, callOutcome(err), time.Since(start))

	return err
}

func (s *Session) call(ctx context.Context, method string, params, result any) error {
	req := request{ID: s.ids.Generate(), Method: method, Params: params}

	resp, err := s.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json").
		SetBody(req).
		Post(s.endpoint.URL())
	if err != nil {
		return &Error{Op: method, URL: s.endpoint.URL(), Err: err}
	}
	if err = statusError(resp); err != nil {
		return &Error{Op: method, URL: s.endpoint.URL(), StatusCode: resp.StatusCode(), Err: err}
	}

	var rep reply
	if err = json.Unmarshal(resp.Body(), &rep); err != nil {
		return &Error{Op: method, URL: s.endpoint.URL(), Err: fmt.Errorf("%w: %v", ErrMalformedReply, err)}
	}
	if rep.ID != req.ID {
		return &Error{Op: method, URL: s.endpoint.URL(), Err: fmt.Errorf("%w: reply id %q does not match %q", ErrMalformedReply, rep.ID, req.ID)}
	}
	if rep.Exception != nil {
		return rep.Exception
	}
	if result == nil || len(rep.Result) == 0 {
		return nil
	}
	if err = json.Unmarshal(rep.Result, result); err != nil {
		return &Error{Op: method, URL: s.endpoint.URL(), Err: fmt.Errorf("%w: result: %v", ErrMalformedReply, err)}
	}

	return nil
}

// Close tears the session down. Live connections get a short read deadline
// and are then closed. Calling Close twice is a no-op.
func (s *Session) Close() error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	s.closed = true
	s.mu.Unlock()

	if c := s.pre.take(); c != nil {
		_ = c.Close()
	}
	s.tracker.closeAll(s.opts.CloseTimeout)
	s.transport.CloseIdleConnections()

	s.logger.Debug().Str("func", "Session.Close").Str("url", s.endpoint.URL()).Msg("session closed")
	return nil
}

func statusError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}
	body := strings.TrimSpace(string(resp.Body()))
	if body == "" {
		body = http.StatusText(resp.StatusCode())
	}
	return errors.New(body)
}

func callOutcome(err error) string {
	if err == nil {
		return "ok"
	}
	var remote *RemoteException
	if errors.As(err, &remote) {
		return "exception"
	}
	return "transport"
}

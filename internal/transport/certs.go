// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package transport

import (
	"crypto/tls"
	"crypto/x509"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// CertPool is the trusted certificate bundle used to verify TLS sessions.
// It is safe for concurrent use; Reload swaps the pool atomically so new
// sessions pick it up while open ones keep their verified connection.
type CertPool struct {
	dir string

	mu   sync.RWMutex
	pool *x509.CertPool
}

// LoadCertPool reads every *.pem file of dir. An empty dir yields a pool
// that defers to the system roots.
func LoadCertPool(dir string) (*CertPool, error) {
	c := &CertPool{dir: dir}
	if dir == "" {
		return c, nil
	}
	if err := c.Reload(); err != nil {
		return nil, err
	}
	return c, nil
}

// NewStaticCertPool wraps an already built pool.
func NewStaticCertPool(pool *x509.CertPool) *CertPool {
	return &CertPool{pool: pool}
}

// Dir returns the bundle directory, empty for system or static pools.
func (c *CertPool) Dir() string {
	return c.dir
}

// Pool returns the current pool. A nil pool means the system roots.
func (c *CertPool) Pool() *x509.CertPool {
	if c == nil {
		return nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.pool
}

// Reload re-reads the bundle directory. The old pool stays in place when
// the directory holds no usable certificate.
func (c *CertPool) Reload() error {
	if c.dir == "" {
		return nil
	}
	pool, err := loadPEMDir(c.dir)
	if err != nil {
		return err
	}
	c.mu.Lock()
	c.pool = pool
	c.mu.Unlock()
	return nil
}

// TLSConfig returns a client config that verifies peers against the pool
// current at handshake time, so long-lived HTTP clients follow reloads.
func (c *CertPool) TLSConfig() *tls.Config {
	return &tls.Config{
		MinVersion: tls.VersionTLS12,
		// Verification is done in VerifyConnection against the live pool.
		InsecureSkipVerify: true,
		VerifyConnection: func(cs tls.ConnectionState) error {
			if len(cs.PeerCertificates) == 0 {
				return fmt.Errorf("tls: no peer certificates")
			}
			opts := x509.VerifyOptions{
				DNSName:       cs.ServerName,
				Roots:         c.Pool(),
				Intermediates: x509.NewCertPool(),
			}
			for _, cert := range cs.PeerCertificates[1:] {
				opts.Intermediates.AddCert(cert)
			}
			_, err := cs.PeerCertificates[0].Verify(opts)
			return err
		},
	}
}

func loadPEMDir(dir string) (*x509.CertPool, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read cert dir: %w", err)
	}

	pool := x509.NewCertPool()
	found := 0
	for _, e := range entries {
		if e.IsDir() || !isPEM(e.Name()) {
			continue
		}
		data, err := os.ReadFile(filepath.Join(dir, e.Name()))
		if err != nil {
			return nil, fmt.Errorf("read cert %s: %w", e.Name(), err)
		}
		if pool.AppendCertsFromPEM(data) {
			found++
		}
	}
	if found == 0 {
		return nil, fmt.Errorf("%w in %s", ErrNoCertificates, dir)
	}
	return pool, nil
}

func isPEM(name string) bool {
	return strings.EqualFold(filepath.Ext(name), ".pem")
}

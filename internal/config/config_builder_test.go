// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

// ── build ─────────────────────────────────────────────────────────────────────

func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

func TestBuild_LaterLayersOverrideEarlier(t *testing.T) {
	b := newConfigBuilder().withDefaults().withFlags(&StructuredConfig{
		Service: Service{Host: "sandbox.evernote.com"},
		Sync:    Sync{ChunkSize: 25},
	})

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "sandbox.evernote.com", cfg.Service.Host)
	assert.Equal(t, 25, cfg.Sync.ChunkSize)
	// untouched default survives
	assert.Equal(t, 443, cfg.Service.TLSPort)
}

func TestBuild_FileSitsBelowFlags(t *testing.T) {
	path := writeTempConfig(t, "cfg.yaml", "service:\n  host: file.example.com\n  cert_dir: /etc/certs\n")

	cfg, err := newConfigBuilder().
		withDefaults().
		withFlags(&StructuredConfig{ConfigFilePath: path, Service: Service{Host: "flag.example.com"}}).
		withFile().
		build()

	require.NoError(t, err)
	assert.Equal(t, "flag.example.com", cfg.Service.Host)
	assert.Equal(t, "/etc/certs", cfg.Service.CertDir)
}

func TestWithFile_MissingFileRecordsError(t *testing.T) {
	b := newConfigBuilder().
		withFlags(&StructuredConfig{ConfigFilePath: filepath.Join(t.TempDir(), "absent.json")}).
		withFile()

	_, err := b.build()
	require.Error(t, err)
}

func TestWithFlags_NilIsIgnored(t *testing.T) {
	b := newConfigBuilder().withFlags(nil)
	assert.Empty(t, b.configs)
}

// ── sources ──────────────────────────────────────────────────────────────────

func TestParseEnv_ReadsNestedPrefixes(t *testing.T) {
	t.Setenv("SERVICE_HOST", "env.example.com")
	t.Setenv("SERVICE_TLS_PORT", "8443")
	t.Setenv("TRANSPORT_REQUEST_TIMEOUT", "15s")
	t.Setenv("STORAGE_DB_DSN", "postgres://u:p@localhost/db")
	t.Setenv("SYNC_FULL", "true")
	t.Setenv("WORKERS_SYNC_INTERVAL", "1m")

	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))

	assert.Equal(t, "env.example.com", cfg.Service.Host)
	assert.Equal(t, 8443, cfg.Service.TLSPort)
	assert.Equal(t, 15*time.Second, cfg.Transport.RequestTimeout)
	assert.Equal(t, "postgres://u:p@localhost/db", cfg.Storage.DB.DSN)
	assert.True(t, cfg.Sync.FullSync)
	assert.Equal(t, time.Minute, cfg.Workers.SyncInterval)
}

func TestParseEnv_BadDuration(t *testing.T) {
	t.Setenv("TRANSPORT_CLOSE_TIMEOUT", "soon")

	err := parseEnv(&StructuredConfig{})
	require.Error(t, err)
}

func TestParseFile_JSON(t *testing.T) {
	path := writeTempConfig(t, "cfg.json", `{
		"service": {"host": "json.example.com", "tls_port": 4443},
		"transport": {"request_timeout": "45s", "close_timeout": 1000000000},
		"sync": {"chunk_size": 50, "selection": "notes,resources"}
	}`)

	cfg, err := parseFile(path)
	require.NoError(t, err)

	assert.Equal(t, "json.example.com", cfg.Service.Host)
	assert.Equal(t, 4443, cfg.Service.TLSPort)
	assert.Equal(t, 45*time.Second, cfg.Transport.RequestTimeout)
	assert.Equal(t, time.Second, cfg.Transport.CloseTimeout)
	assert.Equal(t, 50, cfg.Sync.ChunkSize)
	assert.Equal(t, "notes,resources", cfg.Sync.Selection)
}

func TestParseFile_YAMLExpandsEnv(t *testing.T) {
	t.Setenv("NOTE_SYNC_TEST_DSN", "/tmp/notes.db")
	path := writeTempConfig(t, "cfg.yml", "storage:\n  db:\n    dsn: ${NOTE_SYNC_TEST_DSN}\nworkers:\n  sync_interval: 2m\n")

	cfg, err := parseFile(path)
	require.NoError(t, err)

	assert.Equal(t, "/tmp/notes.db", cfg.Storage.DB.DSN)
	assert.Equal(t, 2*time.Minute, cfg.Workers.SyncInterval)
}

func TestParseFile_InvalidJSON(t *testing.T) {
	path := writeTempConfig(t, "cfg.json", `{"service": `)

	_, err := parseFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "json")
}

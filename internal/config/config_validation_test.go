// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validClientConfig() *ClientConfig {
	return Defaults().ClientView()
}

func TestClientConfig_Validate_Defaults(t *testing.T) {
	require.NoError(t, validClientConfig().Validate())
}

func TestClientConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *ClientConfig)
		wantErr error
	}{
		{
			name:    "empty host",
			mutate:  func(c *ClientConfig) { c.Service.Host = "" },
			wantErr: ErrInvalidServiceConfigs,
		},
		{
			name:    "relative user store path",
			mutate:  func(c *ClientConfig) { c.Service.UserStorePath = "edam/user" },
			wantErr: ErrInvalidServiceConfigs,
		},
		{
			name:    "zero keep-alive count",
			mutate:  func(c *ClientConfig) { c.Transport.KeepAliveCount = 0 },
			wantErr: ErrInvalidTransportConfigs,
		},
		{
			name:    "in-memory dsn",
			mutate:  func(c *ClientConfig) { c.Storage.DB.DSN = ":memory:" },
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name:    "unknown selection",
			mutate:  func(c *ClientConfig) { c.Sync.Selection = "notes,widgets" },
			wantErr: ErrInvalidSyncConfigs,
		},
		{
			name:    "zero sync interval",
			mutate:  func(c *ClientConfig) { c.Workers.SyncInterval = 0 },
			wantErr: ErrInvalidWorkerConfigs,
		},
		{
			name: "watch certs without dir",
			mutate: func(c *ClientConfig) {
				c.Workers.WatchCerts = true
				c.Workers.CertDir = ""
			},
			wantErr: ErrInvalidWorkerConfigs,
		},
		{
			name:    "unknown log level",
			mutate:  func(c *ClientConfig) { c.App.LogLevel = "chatty" },
			wantErr: ErrInvalidAppConfigs,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validClientConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestGetClientConfig_FromEnv(t *testing.T) {
	t.Setenv("SERVICE_HOST", "sandbox.evernote.com")
	t.Setenv("STORAGE_DB_DSN", "/tmp/sync.db")

	cfg, err := GetClientConfig(&StructuredConfig{Sync: Sync{FullSync: true}})
	require.NoError(t, err)

	assert.Equal(t, "sandbox.evernote.com", cfg.Service.Host)
	assert.Equal(t, "/tmp/sync.db", cfg.Storage.DB.DSN)
	assert.True(t, cfg.Sync.FullSync)
	assert.Equal(t, 9, cfg.Transport.KeepAliveCount)
}

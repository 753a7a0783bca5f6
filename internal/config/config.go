// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// go-note-sync client. It aggregates all sub-configurations and is populated
// by merging built-in defaults, an optional JSON or YAML file, environment
// variables and command-line overrides.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env      : direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds client identity and logging settings.
	App App `envPrefix:"APP_"`

	// Service describes where the remote note service lives.
	Service Service `envPrefix:"SERVICE_"`

	// Transport holds socket tuning and RPC timeouts.
	Transport Transport `envPrefix:"TRANSPORT_"`

	// Storage holds the local entity store connection settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Sync controls what a sync pass asks the service for.
	Sync Sync `envPrefix:"SYNC_"`

	// Workers holds configuration for background worker processes.
	Workers Workers `envPrefix:"WORKERS_"`

	// Server holds the address of the local status and metrics endpoint.
	Server Server `envPrefix:"SERVER_"`

	// ConfigFilePath is the optional path to a JSON or YAML configuration
	// file. The format is chosen by extension (.yaml/.yml, anything else is
	// JSON).
	// Env: CONFIG
	ConfigFilePath string `env:"CONFIG"`
}

// App holds client identity and logging settings.
type App struct {
	// ClientName is sent with the version handshake.
	// Env: APP_CLIENT_NAME
	ClientName string `env:"CLIENT_NAME"`

	// APIMajor and APIMinor are the protocol version the client speaks.
	// Env: APP_API_MAJOR, APP_API_MINOR
	APIMajor int `env:"API_MAJOR"`
	APIMinor int `env:"API_MINOR"`

	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`

	// LogFile is the rotating log file path. Empty places it next to the
	// executable.
	// Env: APP_LOG_FILE
	LogFile string `env:"LOG_FILE"`

	// Env: APP_LOG_MAX_SIZE_KB
	LogMaxSizeKB int64 `env:"LOG_MAX_SIZE_KB"`

	// Env: APP_LOG_MAX_ROLLS
	LogMaxRolls int `env:"LOG_MAX_ROLLS"`
}

// Service describes the remote note service endpoint and credentials.
type Service struct {
	// Host is the service host name (e.g. "www.evernote.com").
	// Env: SERVICE_HOST
	Host string `env:"HOST"`

	// TLSPort is used for every TLS session (user store, note store, private
	// linked notebooks, image endpoints).
	// Env: SERVICE_TLS_PORT
	TLSPort int `env:"TLS_PORT"`

	// PlainPort is used for public linked notebooks.
	// Env: SERVICE_PLAIN_PORT
	PlainPort int `env:"PLAIN_PORT"`

	// Env: SERVICE_USER_STORE_PATH
	UserStorePath string `env:"USER_STORE_PATH"`

	// NoteStorePrefix is joined with the shard id to form the note store path.
	// Env: SERVICE_NOTE_STORE_PREFIX
	NoteStorePrefix string `env:"NOTE_STORE_PREFIX"`

	// CertDir holds the trusted certificate bundle as *.pem files. Empty
	// means the system pool.
	// Env: SERVICE_CERT_DIR
	CertDir string `env:"CERT_DIR"`

	// Token is the raw OAuth token string or a bare authentication token.
	// Env: SERVICE_TOKEN
	Token string `env:"TOKEN"`

	// TokenFile is read when Token is empty.
	// Env: SERVICE_TOKEN_FILE
	TokenFile string `env:"TOKEN_FILE"`
}

// Transport holds socket tuning and RPC timeouts.
type Transport struct {
	// Env: TRANSPORT_KEEPALIVE_IDLE
	KeepAliveIdle time.Duration `env:"KEEPALIVE_IDLE"`

	// Env: TRANSPORT_KEEPALIVE_INTERVAL
	KeepAliveInterval time.Duration `env:"KEEPALIVE_INTERVAL"`

	// Env: TRANSPORT_KEEPALIVE_COUNT
	KeepAliveCount int `env:"KEEPALIVE_COUNT"`

	// RequestTimeout bounds a single RPC round trip.
	// Env: TRANSPORT_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// CloseTimeout is the receive timeout applied while a session is torn
	// down.
	// Env: TRANSPORT_CLOSE_TIMEOUT
	CloseTimeout time.Duration `env:"CLOSE_TIMEOUT"`
}

// Storage groups the configuration for the local entity store.
type Storage struct {
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the relational database backend.
type DB struct {
	// DSN is a SQLite file path or a "postgres://" connection URL.
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Sync controls chunk requests.
type Sync struct {
	// Env: SYNC_CHUNK_SIZE
	ChunkSize int `env:"CHUNK_SIZE"`

	// Selection is a comma separated list of entity kinds, or "all".
	// Env: SYNC_SELECTION
	Selection string `env:"SELECTION"`

	// Env: SYNC_FULL
	FullSync bool `env:"FULL"`

	// SkipLinkedThumbnails disables thumbnail download for linked notebook
	// notes.
	// Env: SYNC_SKIP_LINKED_THUMBNAILS
	SkipLinkedThumbnails bool `env:"SKIP_LINKED_THUMBNAILS"`
}

// Workers holds configuration for background worker processes.
type Workers struct {
	// Env: WORKERS_SYNC_INTERVAL
	SyncInterval time.Duration `env:"SYNC_INTERVAL"`

	// WatchCerts reloads the trusted bundle when CertDir changes.
	// Env: WORKERS_WATCH_CERTS
	WatchCerts bool `env:"WATCH_CERTS"`
}

// Server holds the local status endpoint settings.
type Server struct {
	// HTTPAddress in "host:port" form. Empty disables the endpoint.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`
}

// Defaults returns the built-in configuration every other source is merged
// on top of.
func Defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			ClientName:   "go-note-sync",
			APIMajor:     1,
			APIMinor:     28,
			LogLevel:     "info",
			LogMaxSizeKB: 10 * 1024,
			LogMaxRolls:  3,
		},
		Service: Service{
			Host:            "www.evernote.com",
			TLSPort:         443,
			PlainPort:       80,
			UserStorePath:   "/edam/user",
			NoteStorePrefix: "/edam/note/",
		},
		Transport: Transport{
			KeepAliveIdle:     1200 * time.Second,
			KeepAliveInterval: 60 * time.Second,
			KeepAliveCount:    9,
			RequestTimeout:    60 * time.Second,
			CloseTimeout:      10 * time.Second,
		},
		Storage: Storage{
			DB: DB{DSN: "note-sync.db"},
		},
		Sync: Sync{
			ChunkSize: 100,
			Selection: "all",
		},
		Workers: Workers{
			SyncInterval: 5 * time.Minute,
		},
	}
}

// GetStructuredConfig loads and merges the configuration from all sources in
// the following priority order (later sources win for non-zero fields):
//  1. Built-in defaults
//  2. Config file (path resolved from sources 3 and 4)
//  3. Environment variables
//  4. Command-line overrides
func GetStructuredConfig(overrides *StructuredConfig) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(overrides).
		withFile().
		build()
}

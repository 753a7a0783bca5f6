// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

// ClientApp holds client identity and logging settings.
type ClientApp struct {
	ClientName   string
	APIMajor     int
	APIMinor     int
	LogLevel     string
	LogFile      string
	LogMaxSizeKB int64
	LogMaxRolls  int
}

// ClientService holds the remote endpoint settings used by the session
// manager, the linked notebook authenticator and the image endpoints.
type ClientService struct {
	Host            string
	TLSPort         int
	PlainPort       int
	UserStorePath   string
	NoteStorePrefix string
	CertDir         string
	Token           string
	TokenFile       string
}

// ClientTransport holds socket tuning for every RPC session.
type ClientTransport struct {
	KeepAliveIdle     time.Duration
	KeepAliveInterval time.Duration
	KeepAliveCount    int
	RequestTimeout    time.Duration
	CloseTimeout      time.Duration
}

// ClientDB contains local database connection settings for the client.
type ClientDB struct {
	// DSN is the SQLite/PostgreSQL connection string used by the client.
	DSN string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	DB ClientDB
}

// ClientSync holds chunk request settings.
type ClientSync struct {
	ChunkSize            int
	Selection            string
	FullSync             bool
	SkipLinkedThumbnails bool
}

// ClientWorkers contains client background worker settings.
type ClientWorkers struct {
	SyncInterval time.Duration
	WatchCerts   bool
	CertDir      string
}

// ClientServer holds the local status endpoint address.
type ClientServer struct {
	HTTPAddress string
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	App       ClientApp
	Service   ClientService
	Transport ClientTransport
	Storage   ClientStorage
	Sync      ClientSync
	Workers   ClientWorkers
	Server    ClientServer
}

// GetClientConfig builds and validates the client config view from the
// merged structured configuration. overrides carries values taken from the
// command line and may be nil.
func GetClientConfig(overrides *StructuredConfig) (*ClientConfig, error) {
	cfg, err := GetStructuredConfig(overrides)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := cfg.ClientView()
	if err = clientCfg.Validate(); err != nil {
		return nil, err
	}

	return clientCfg, nil
}

// ClientView maps the structured config onto [ClientConfig] without
// validating it.
func (cfg *StructuredConfig) ClientView() *ClientConfig {
	return &ClientConfig{
		App: ClientApp{
			ClientName:   cfg.App.ClientName,
			APIMajor:     cfg.App.APIMajor,
			APIMinor:     cfg.App.APIMinor,
			LogLevel:     cfg.App.LogLevel,
			LogFile:      cfg.App.LogFile,
			LogMaxSizeKB: cfg.App.LogMaxSizeKB,
			LogMaxRolls:  cfg.App.LogMaxRolls,
		},
		Service: ClientService{
			Host:            cfg.Service.Host,
			TLSPort:         cfg.Service.TLSPort,
			PlainPort:       cfg.Service.PlainPort,
			UserStorePath:   cfg.Service.UserStorePath,
			NoteStorePrefix: cfg.Service.NoteStorePrefix,
			CertDir:         cfg.Service.CertDir,
			Token:           cfg.Service.Token,
			TokenFile:       cfg.Service.TokenFile,
		},
		Transport: ClientTransport{
			KeepAliveIdle:     cfg.Transport.KeepAliveIdle,
			KeepAliveInterval: cfg.Transport.KeepAliveInterval,
			KeepAliveCount:    cfg.Transport.KeepAliveCount,
			RequestTimeout:    cfg.Transport.RequestTimeout,
			CloseTimeout:      cfg.Transport.CloseTimeout,
		},
		Storage: ClientStorage{
			DB: ClientDB{DSN: cfg.Storage.DB.DSN},
		},
		Sync: ClientSync{
			ChunkSize:            cfg.Sync.ChunkSize,
			Selection:            cfg.Sync.Selection,
			FullSync:             cfg.Sync.FullSync,
			SkipLinkedThumbnails: cfg.Sync.SkipLinkedThumbnails,
		},
		Workers: ClientWorkers{
			SyncInterval: cfg.Workers.SyncInterval,
			WatchCerts:   cfg.Workers.WatchCerts,
			CertDir:      cfg.Service.CertDir,
		},
		Server: ClientServer{HTTPAddress: cfg.Server.HTTPAddress},
	}
}

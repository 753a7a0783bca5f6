// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// parseEnv populates cfg from environment variables using caarlos0/env and
// the `env`/`envPrefix` tags of [StructuredConfig].
func parseEnv(cfg *StructuredConfig) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	return nil
}

// fileConfig mirrors [StructuredConfig] with file-friendly keys. It is
// decoded from JSON or YAML and converted field by field so durations can be
// written as "30s".
type fileConfig struct {
	App struct {
		ClientName   string `json:"client_name" yaml:"client_name"`
		APIMajor     int    `json:"api_major" yaml:"api_major"`
		APIMinor     int    `json:"api_minor" yaml:"api_minor"`
		LogLevel     string `json:"log_level" yaml:"log_level"`
		LogFile      string `json:"log_file" yaml:"log_file"`
		LogMaxSizeKB int64  `json:"log_max_size_kb" yaml:"log_max_size_kb"`
		LogMaxRolls  int    `json:"log_max_rolls" yaml:"log_max_rolls"`
	} `json:"app" yaml:"app"`

	Service struct {
		Host            string `json:"host" yaml:"host"`
		TLSPort         int    `json:"tls_port" yaml:"tls_port"`
		PlainPort       int    `json:"plain_port" yaml:"plain_port"`
		UserStorePath   string `json:"user_store_path" yaml:"user_store_path"`
		NoteStorePrefix string `json:"note_store_prefix" yaml:"note_store_prefix"`
		CertDir         string `json:"cert_dir" yaml:"cert_dir"`
		Token           string `json:"token" yaml:"token"`
		TokenFile       string `json:"token_file" yaml:"token_file"`
	} `json:"service" yaml:"service"`

	Transport struct {
		KeepAliveIdle     Duration `json:"keepalive_idle" yaml:"keepalive_idle"`
		KeepAliveInterval Duration `json:"keepalive_interval" yaml:"keepalive_interval"`
		KeepAliveCount    int      `json:"keepalive_count" yaml:"keepalive_count"`
		RequestTimeout    Duration `json:"request_timeout" yaml:"request_timeout"`
		CloseTimeout      Duration `json:"close_timeout" yaml:"close_timeout"`
	} `json:"transport" yaml:"transport"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn" yaml:"dsn"`
		} `json:"db" yaml:"db"`
	} `json:"storage" yaml:"storage"`

	Sync struct {
		ChunkSize            int    `json:"chunk_size" yaml:"chunk_size"`
		Selection            string `json:"selection" yaml:"selection"`
		FullSync             bool   `json:"full_sync" yaml:"full_sync"`
		SkipLinkedThumbnails bool   `json:"skip_linked_thumbnails" yaml:"skip_linked_thumbnails"`
	} `json:"sync" yaml:"sync"`

	Workers struct {
		SyncInterval Duration `json:"sync_interval" yaml:"sync_interval"`
		WatchCerts   bool     `json:"watch_certs" yaml:"watch_certs"`
	} `json:"workers" yaml:"workers"`

	Server struct {
		HTTPAddress string `json:"http_address" yaml:"http_address"`
	} `json:"server" yaml:"server"`
}

// parseFile reads a JSON or YAML config file. Environment references such as
// ${HOME} are expanded before decoding.
func parseFile(path string) (*StructuredConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}
	expanded := []byte(os.ExpandEnv(string(data)))

	var fc fileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err = yaml.Unmarshal(expanded, &fc); err != nil {
			return nil, fmt.Errorf("error decoding yaml configs: %w", err)
		}
	default:
		if err = json.Unmarshal(expanded, &fc); err != nil {
			return nil, fmt.Errorf("error decoding json configs: %w", err)
		}
	}

	return fc.toStructured(), nil
}

func (fc *fileConfig) toStructured() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			ClientName:   fc.App.ClientName,
			APIMajor:     fc.App.APIMajor,
			APIMinor:     fc.App.APIMinor,
			LogLevel:     fc.App.LogLevel,
			LogFile:      fc.App.LogFile,
			LogMaxSizeKB: fc.App.LogMaxSizeKB,
			LogMaxRolls:  fc.App.LogMaxRolls,
		},
		Service: Service{
			Host:            fc.Service.Host,
			TLSPort:         fc.Service.TLSPort,
			PlainPort:       fc.Service.PlainPort,
			UserStorePath:   fc.Service.UserStorePath,
			NoteStorePrefix: fc.Service.NoteStorePrefix,
			CertDir:         fc.Service.CertDir,
			Token:           fc.Service.Token,
			TokenFile:       fc.Service.TokenFile,
		},
		Transport: Transport{
			KeepAliveIdle:     time.Duration(fc.Transport.KeepAliveIdle),
			KeepAliveInterval: time.Duration(fc.Transport.KeepAliveInterval),
			KeepAliveCount:    fc.Transport.KeepAliveCount,
			RequestTimeout:    time.Duration(fc.Transport.RequestTimeout),
			CloseTimeout:      time.Duration(fc.Transport.CloseTimeout),
		},
		Storage: Storage{
			DB: DB{DSN: fc.Storage.DB.DSN},
		},
		Sync: Sync{
			ChunkSize:            fc.Sync.ChunkSize,
			Selection:            fc.Sync.Selection,
			FullSync:             fc.Sync.FullSync,
			SkipLinkedThumbnails: fc.Sync.SkipLinkedThumbnails,
		},
		Workers: Workers{
			SyncInterval: time.Duration(fc.Workers.SyncInterval),
			WatchCerts:   fc.Workers.WatchCerts,
		},
		Server: Server{
			HTTPAddress: fc.Server.HTTPAddress,
		},
	}
}

// Duration is a time.Duration that decodes from strings like "1h" or "30s"
// in both JSON and YAML. Bare JSON numbers are read as nanoseconds.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		return d.parse(value)
	default:
		return fmt.Errorf("invalid duration %s", string(b))
	}
}

func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	return d.parse(s)
}

func (d *Duration) parse(s string) error {
	tmp, err := time.ParseDuration(s)
	if err != nil {
		return err
	}
	*d = Duration(tmp)
	return nil
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"

	"github.com/MKhiriev/go-note-sync/models"
)

// Validate checks every group of the client configuration and wraps the
// first failure with the matching group sentinel from errors.go.
func (cfg *ClientConfig) Validate() error {
	if err := cfg.App.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidAppConfigs, err)
	}
	if err := cfg.Service.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidServiceConfigs, err)
	}
	if err := cfg.Transport.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidTransportConfigs, err)
	}
	if err := cfg.Storage.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidStorageConfigs, err)
	}
	if err := cfg.Sync.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidSyncConfigs, err)
	}
	if err := cfg.Workers.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidWorkerConfigs, err)
	}

	return nil
}

func (c *ClientApp) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.ClientName, validation.Required),
		validation.Field(&c.APIMajor, validation.Required, validation.Min(1)),
		validation.Field(&c.APIMinor, validation.Min(0)),
		validation.Field(&c.LogLevel, validation.In("trace", "debug", "info", "warn", "error", "fatal", "panic", "disabled")),
	)
}

func (c *ClientService) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Host, validation.Required, is.Host),
		validation.Field(&c.TLSPort, validation.Required, validation.Min(1), validation.Max(65535)),
		validation.Field(&c.PlainPort, validation.Required, validation.Min(1), validation.Max(65535)),
		validation.Field(&c.UserStorePath, validation.Required, validation.By(absolutePath)),
		validation.Field(&c.NoteStorePrefix, validation.Required, validation.By(absolutePath)),
	)
}

func (c *ClientTransport) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.KeepAliveIdle, validation.Required),
		validation.Field(&c.KeepAliveInterval, validation.Required),
		validation.Field(&c.KeepAliveCount, validation.Required, validation.Min(1)),
		validation.Field(&c.RequestTimeout, validation.Required),
		validation.Field(&c.CloseTimeout, validation.Required),
	)
}

func (c *ClientStorage) Validate() error {
	return validation.ValidateStruct(&c.DB,
		validation.Field(&c.DB.DSN, validation.Required, validation.By(notInMemory)),
	)
}

func (c *ClientSync) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.ChunkSize, validation.Required, validation.Min(1)),
		validation.Field(&c.Selection, validation.Required, validation.By(knownSelection)),
	)
}

func (c *ClientWorkers) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.SyncInterval, validation.Required),
		validation.Field(&c.CertDir, validation.When(c.WatchCerts, validation.Required)),
	)
}

func absolutePath(value any) error {
	s, _ := value.(string)
	if !strings.HasPrefix(s, "/") {
		return fmt.Errorf("must start with /")
	}
	return nil
}

func notInMemory(value any) error {
	s, _ := value.(string)
	if strings.Contains(s, "memory") {
		return fmt.Errorf("in-memory databases are not supported")
	}
	return nil
}

func knownSelection(value any) error {
	s, _ := value.(string)
	if _, unknown := models.ParseChunkSelection(s); len(unknown) > 0 {
		return fmt.Errorf("unknown entity kinds: %s", strings.Join(unknown, ","))
	}
	return nil
}

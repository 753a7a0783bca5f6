// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"os"
	"strconv"

	"github.com/MKhiriev/go-note-sync/internal/adapter"
	"github.com/MKhiriev/go-note-sync/internal/config"
	"github.com/MKhiriev/go-note-sync/internal/handler"
	"github.com/MKhiriev/go-note-sync/internal/logger"
	"github.com/MKhiriev/go-note-sync/internal/server"
	"github.com/MKhiriev/go-note-sync/internal/service"
	"github.com/MKhiriev/go-note-sync/internal/store"
	"github.com/MKhiriev/go-note-sync/internal/transport"
	"github.com/MKhiriev/go-note-sync/internal/workers"
	"github.com/MKhiriev/go-note-sync/models"
)

// App holds everything one command needs. Close releases the sessions and
// the local store.
type App struct {
	cfg       *config.ClientConfig
	buildInfo models.AppBuildInfo

	local    store.LocalStorage
	certs    *transport.CertPool
	services *service.Services

	out    io.Writer
	logger *logger.Logger
}

func NewApp(ctx context.Context, cfg *config.ClientConfig, buildInfo models.AppBuildInfo, out io.Writer, logger *logger.Logger) (*App, error) {
	certs, err := transport.LoadCertPool(cfg.Service.CertDir)
	if err != nil {
		return nil, fmt.Errorf("load trusted bundle: %w", err)
	}

	local, err := store.NewLocalStorage(ctx, cfg.Storage.DB.DSN, logger)
	if err != nil {
		return nil, fmt.Errorf("create local storage: %w", err)
	}

	downloader, err := adapter.NewHTTPResourceDownloader(adapter.DownloaderConfig{
		BaseURL: serviceBaseURL(cfg.Service),
		Timeout: cfg.Transport.RequestTimeout,
		Certs:   certs,
	}, logger)
	if err != nil {
		local.Close()
		return nil, fmt.Errorf("create resource downloader: %w", err)
	}

	opener := transport.NewFactory(transport.Options{
		KeepAlive: transport.KeepAlive{
			Idle:     cfg.Transport.KeepAliveIdle,
			Interval: cfg.Transport.KeepAliveInterval,
			Count:    cfg.Transport.KeepAliveCount,
		},
		RequestTimeout: cfg.Transport.RequestTimeout,
		CloseTimeout:   cfg.Transport.CloseTimeout,
		Certs:          certs,
		UserAgent:      cfg.App.ClientName + "/" + buildInfo.BuildVersion(),
	}, logger)

	selection, unknown := models.ParseChunkSelection(cfg.Sync.Selection)
	if len(unknown) > 0 {
		logger.Warn().Strs("unknown", unknown).Msg("ignoring unknown sync selection entries")
	}

	services := service.NewServices(service.Options{
		Session: service.SessionConfig{
			ClientName:      cfg.App.ClientName,
			APIMajor:        cfg.App.APIMajor,
			APIMinor:        cfg.App.APIMinor,
			Host:            cfg.Service.Host,
			TLSPort:         cfg.Service.TLSPort,
			PlainPort:       cfg.Service.PlainPort,
			UserStorePath:   cfg.Service.UserStorePath,
			NoteStorePrefix: cfg.Service.NoteStorePrefix,
		},
		Sync: service.SyncOptions{
			ChunkSize: cfg.Sync.ChunkSize,
			Selection: selection,
			FullSync:  cfg.Sync.FullSync,
		},
		LinkedThumbnails: !cfg.Sync.SkipLinkedThumbnails,
	}, opener, tokenSource(cfg.Service), downloader, local, logger)

	return &App{
		cfg:       cfg,
		buildInfo: buildInfo,
		local:     local,
		certs:     certs,
		services:  services,
		out:       out,
		logger:    logger,
	}, nil
}

// Close disconnects every session and closes the local store.
func (a *App) Close() error {
	a.services.Sessions.Disconnect()
	return a.local.Close()
}

// Sync runs one pass and prints its summary. A failed pass still prints what
// it got through.
func (a *App) Sync(ctx context.Context) error {
	summary, err := a.services.Syncer.Run(ctx)
	fmt.Fprint(a.out, renderSummary(summary))
	return err
}

// State prints the service sync state next to the local high-water mark.
func (a *App) State(ctx context.Context) error {
	state, err := a.services.State.GetSyncState(ctx)
	if err != nil {
		return err
	}
	local, err := a.local.GetHighUSN(ctx, "")
	if err != nil {
		return fmt.Errorf("read local high usn: %w", err)
	}
	fmt.Fprint(a.out, renderState(state, local))
	return nil
}

func (a *App) Notebooks(ctx context.Context) error {
	notebooks, err := a.services.State.ListNotebooks(ctx)
	if err != nil {
		return err
	}
	fmt.Fprint(a.out, renderNotebooks(notebooks))
	return nil
}

func (a *App) Tags(ctx context.Context) error {
	tags, err := a.services.State.ListTags(ctx)
	if err != nil {
		return err
	}
	fmt.Fprint(a.out, renderTags(tags))
	return nil
}

// Thumbnail renders the thumbnail of a note, stores it and writes the PNG
// to path.
func (a *App) Thumbnail(ctx context.Context, noteGUID, path string) error {
	shard, token, err := a.services.Sessions.ImageAuth(ctx)
	if err != nil {
		return err
	}
	img, err := a.services.Images.Thumbnail(ctx, shard, token, noteGUID)
	if err != nil {
		return fmt.Errorf("render thumbnail %s: %w", noteGUID, err)
	}
	return a.saveImage(ctx, models.FetchedImage{GUID: noteGUID, Kind: models.ImageKindThumbnail, Image: img}, path)
}

// Ink renders a synced ink resource, stores it and writes the PNG to path.
func (a *App) Ink(ctx context.Context, resourceGUID, path string) error {
	res, err := a.local.GetResource(ctx, resourceGUID)
	if errors.Is(err, store.ErrResourceNotFound) {
		return fmt.Errorf("resource %s is not synced yet: %w", resourceGUID, err)
	}
	if err != nil {
		return fmt.Errorf("read resource %s: %w", resourceGUID, err)
	}

	shard, token, err := a.services.Sessions.ImageAuth(ctx)
	if err != nil {
		return err
	}
	img, err := a.services.Images.Ink(ctx, shard, token, res)
	if err != nil {
		return fmt.Errorf("render ink %s: %w", resourceGUID, err)
	}
	return a.saveImage(ctx, models.FetchedImage{GUID: resourceGUID, Kind: models.ImageKindInk, Image: img}, path)
}

// Watch syncs periodically and serves the status endpoint until ctx is
// cancelled.
func (a *App) Watch(ctx context.Context) error {
	group := workers.NewWorkers(a.logger).
		Add("sync", workers.SyncJobWorker(a.services.SyncJob, a.cfg.Workers.SyncInterval))

	if a.cfg.Workers.WatchCerts && a.certs.Dir() != "" {
		group.Add("certs", transport.NewCertWatcher(a.certs, a.logger))
	}

	if a.cfg.Server.HTTPAddress != "" {
		handlers, err := handler.NewHandlers(a.services.Syncer, a.buildInfo, a.cfg.Server, a.logger)
		if err != nil {
			return fmt.Errorf("create handlers: %w", err)
		}
		srv, err := server.NewServer(handlers, a.cfg.Server, a.logger)
		if err != nil {
			return fmt.Errorf("create status server: %w", err)
		}
		group.Add("status", srv)
	}

	return group.Run(ctx)
}

func (a *App) saveImage(ctx context.Context, img models.FetchedImage, path string) error {
	stored, err := service.EncodeImage(img)
	if err != nil {
		return err
	}
	if err = a.local.SaveImage(ctx, stored); err != nil {
		return fmt.Errorf("store image: %w", err)
	}
	if path == "" {
		return nil
	}
	if err = os.WriteFile(path, stored.PNG, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	fmt.Fprintf(a.out, "%s %s written to %s (%dx%d)\n", img.Kind, img.GUID, path, stored.Width, stored.Height)
	return nil
}

func tokenSource(cfg config.ClientService) service.TokenSource {
	if cfg.Token != "" {
		return service.NewStaticTokenSource(cfg.Token)
	}
	return service.NewFileTokenSource(cfg.TokenFile)
}

// serviceBaseURL is the https root of the image endpoints. The default TLS
// port is left out of the URL.
func serviceBaseURL(cfg config.ClientService) string {
	if cfg.TLSPort == 0 || cfg.TLSPort == 443 {
		return "https://" + cfg.Host
	}
	return "https://" + net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.TLSPort))
}

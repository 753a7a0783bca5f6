// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"net/http"

	"github.com/MKhiriev/go-note-sync/internal/config"
	"github.com/MKhiriev/go-note-sync/internal/handler"
	"github.com/MKhiriev/go-note-sync/internal/logger"
)

type server struct {
	httpServer *httpServer
	logger     *logger.Logger
}

func NewServer(handlers *handler.Handlers, cfg config.ClientServer, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")

	if handlers == nil || handlers.HTTP == nil || cfg.HTTPAddress == "" {
		return nil, errNoServersAreCreated
	}

	return newServer(handlers.HTTP.Init(), cfg.HTTPAddress, logger), nil
}

func newServer(h http.Handler, address string, logger *logger.Logger) *server {
	return &server{
		httpServer: newHTTPServer(h, address, logger),
		logger:     logger,
	}
}

func (s *server) Run(ctx context.Context) error {
	served := make(chan error, 1)

	s.logger.Info().Msg("Launching HTTP server")
	go func() {
		served <- s.httpServer.RunServer()
	}()

	select {
	case err := <-served:
		// listener failed before any shutdown was requested
		return err
	case <-ctx.Done():
	}

	s.httpServer.Shutdown()
	err := <-served
	s.logger.Info().Msg("server Shutdown gracefully")

	return err
}

func (s *server) Addr() string {
	return s.httpServer.Addr()
}

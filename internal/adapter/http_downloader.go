// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/go-note-sync/internal/logger"
	"github.com/MKhiriev/go-note-sync/internal/transport"
	"github.com/go-resty/resty/v2"
)

// DownloaderConfig configures [NewHTTPResourceDownloader].
type DownloaderConfig struct {
	// BaseURL is the service root, e.g. "https://www.evernote.com". A bare
	// host gets the https scheme.
	BaseURL string
	Timeout time.Duration
	// Certs verifies the service certificate. Nil means the system roots.
	Certs *transport.CertPool
}

type httpResourceDownloader struct {
	client *resty.Client
	logger *logger.Logger
}

// NewHTTPResourceDownloader constructs the resty implementation of
// [ResourceDownloader]. Every request is a POST with the form body
// auth=<token>.
func NewHTTPResourceDownloader(cfg DownloaderConfig, log *logger.Logger) (ResourceDownloader, error) {
	baseURL, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid downloader base url: %w", err)
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 60 * time.Second
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(cfg.Timeout)
	if cfg.Certs != nil {
		client.SetTLSClientConfig(cfg.Certs.TLSConfig())
	}

	return &httpResourceDownloader{client: client, logger: log}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// InkSlice implements [ResourceDownloader]. It POSTs to
// /shard/{shard}/res/{guid}.ink?slice={slice}.
func (h *httpResourceDownloader) InkSlice(ctx context.Context, shard, guid string, slice int, token string) ([]byte, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParams(map[string]string{"shard": shard, "guid": guid}).
		SetQueryParam("slice", strconv.Itoa(slice)).
		SetFormData(map[string]string{"auth": token}).
		Post("/shard/{shard}/res/{guid}.ink")
	if err != nil {
		return nil, fmt.Errorf("ink slice request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		h.logger.Debug().Str("func", "httpResourceDownloader.InkSlice").
			Str("guid", guid).Int("slice", slice).Err(err).Msg("ink slice rejected")
		return nil, err
	}

	return resp.Body(), nil
}

// Thumbnail implements [ResourceDownloader]. It POSTs to
// /shard/{shard}/thm/note/{guid}.
func (h *httpResourceDownloader) Thumbnail(ctx context.Context, shard, guid, token string) ([]byte, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParams(map[string]string{"shard": shard, "guid": guid}).
		SetFormData(map[string]string{"auth": token}).
		Post("/shard/{shard}/thm/note/{guid}")
	if err != nil {
		return nil, fmt.Errorf("thumbnail request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		h.logger.Debug().Str("func", "httpResourceDownloader.Thumbnail").
			Str("guid", guid).Err(err).Msg("thumbnail rejected")
		return nil, err
	}

	return resp.Body(), nil
}

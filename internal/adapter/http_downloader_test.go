// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"crypto/x509"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-note-sync/internal/logger"
	"github.com/MKhiriev/go-note-sync/internal/transport"
)

func newTestDownloader(t *testing.T, srv *httptest.Server) ResourceDownloader {
	t.Helper()
	pool := x509.NewCertPool()
	if srv.Certificate() != nil {
		pool.AddCert(srv.Certificate())
	}
	d, err := NewHTTPResourceDownloader(DownloaderConfig{
		BaseURL: srv.URL,
		Certs:   transport.NewStaticCertPool(pool),
	}, logger.Nop())
	require.NoError(t, err)
	return d
}

// ── InkSlice ─────────────────────────────────────────────────────────────────

func TestInkSlice_Success(t *testing.T) {
	r := chi.NewRouter()
	r.Post("/shard/{shard}/res/{file}", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "s3", chi.URLParam(r, "shard"))
		assert.Equal(t, "res-1.ink", chi.URLParam(r, "file"))
		assert.Equal(t, "2", r.URL.Query().Get("slice"))
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "tok", r.PostForm.Get("auth"))
		_, _ = w.Write([]byte("png-bytes"))
	})
	srv := httptest.NewTLSServer(r)
	defer srv.Close()

	body, err := newTestDownloader(t, srv).InkSlice(context.Background(), "s3", "res-1", 2, "tok")

	require.NoError(t, err)
	assert.Equal(t, []byte("png-bytes"), body)
}

func TestInkSlice_Unauthorized(t *testing.T) {
	srv := httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte("bad auth"))
	}))
	defer srv.Close()

	_, err := newTestDownloader(t, srv).InkSlice(context.Background(), "s1", "r", 1, "tok")

	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestInkSlice_UntrustedServer(t *testing.T) {
	srv := httptest.NewTLSServer(http.NotFoundHandler())
	defer srv.Close()

	d, err := NewHTTPResourceDownloader(DownloaderConfig{
		BaseURL: srv.URL,
		Certs:   transport.NewStaticCertPool(x509.NewCertPool()),
	}, logger.Nop())
	require.NoError(t, err)

	_, err = d.InkSlice(context.Background(), "s1", "r", 1, "tok")
	assert.Error(t, err)
}

// ── Thumbnail ────────────────────────────────────────────────────────────────

func TestThumbnail_Success(t *testing.T) {
	r := chi.NewRouter()
	r.Post("/shard/{shard}/thm/note/{guid}", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "s1", chi.URLParam(r, "shard"))
		assert.Equal(t, "note-1", chi.URLParam(r, "guid"))
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "tok", r.PostForm.Get("auth"))
		_, _ = w.Write([]byte("thumb"))
	})
	srv := httptest.NewTLSServer(r)
	defer srv.Close()

	body, err := newTestDownloader(t, srv).Thumbnail(context.Background(), "s1", "note-1", "tok")

	require.NoError(t, err)
	assert.Equal(t, []byte("thumb"), body)
}

func TestThumbnail_NotFound(t *testing.T) {
	srv := httptest.NewTLSServer(http.NotFoundHandler())
	defer srv.Close()

	_, err := newTestDownloader(t, srv).Thumbnail(context.Background(), "s1", "missing", "tok")

	assert.ErrorIs(t, err, ErrNotFound)
}

// ── construction ─────────────────────────────────────────────────────────────

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "www.evernote.com", want: "https://www.evernote.com"},
		{in: "https://www.evernote.com/", want: "https://www.evernote.com"},
		{in: "http://localhost:8080", want: "http://localhost:8080"},
		{in: "  ", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

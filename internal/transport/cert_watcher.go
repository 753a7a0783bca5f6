// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package transport

import (
	"context"
	"fmt"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/MKhiriev/go-note-sync/internal/logger"
)

const certReloadDebounce = 200 * time.Millisecond

// CertWatcher reloads a [CertPool] whenever a *.pem file in its directory is
// created, written, removed or renamed. Bursts of events are debounced.
type CertWatcher struct {
	certs  *CertPool
	logger *logger.Logger

	// onReload is called after every reload attempt; tests hook into it.
	onReload func(err error)
}

func NewCertWatcher(certs *CertPool, log *logger.Logger) *CertWatcher {
	return &CertWatcher{certs: certs, logger: log}
}

// Run watches until ctx is cancelled. It returns an error only when the
// watcher cannot be set up.
func (w *CertWatcher) Run(ctx context.Context) error {
	if w.certs.Dir() == "" {
		return nil
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create cert watcher: %w", err)
	}
	defer fw.Close()

	if err = fw.Add(w.certs.Dir()); err != nil {
		return fmt.Errorf("watch cert dir: %w", err)
	}
	w.logger.Info().Str("func", "CertWatcher.Run").Str("dir", w.certs.Dir()).Msg("watching trusted bundle")

	var (
		timer  *time.Timer
		timerC <-chan time.Time
	)
	schedule := func() {
		if timer == nil {
			timer = time.NewTimer(certReloadDebounce)
			timerC = timer.C
			return
		}
		timer.Reset(certReloadDebounce)
	}

	for {
		select {
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			return nil

		case <-timerC:
			err := w.certs.Reload()
			if err != nil {
				w.logger.Warn().Err(err).Str("func", "CertWatcher.Run").Msg("trusted bundle reload failed, keeping previous pool")
			} else {
				w.logger.Info().Str("func", "CertWatcher.Run").Msg("trusted bundle reloaded")
			}
			if w.onReload != nil {
				w.onReload(err)
			}

		case ev, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if !isPEM(ev.Name) {
				continue
			}
			if ev.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) != 0 {
				schedule()
			}

		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn().Err(err).Str("func", "CertWatcher.Run").Msg("cert watcher error")
		}
	}
}

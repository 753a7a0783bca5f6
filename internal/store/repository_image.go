// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-note-sync/internal/logger"
	"github.com/MKhiriev/go-note-sync/models"
)

// imageRepository keeps rendered PNGs keyed by owner guid and image kind.
type imageRepository struct {
	repository
}

func NewImageRepository(db *DB, logger *logger.Logger) ImageRepository {
	logger.Debug().Msg("creating image repository")
	return &imageRepository{repository: newRepository(db)}
}

func (r *imageRepository) SaveImage(ctx context.Context, img models.StoredImage) error {
	query, args, err := buildUpsertImageQuery(r.b, img)
	return r.exec(ctx, "imageRepository.SaveImage", query, args, err)
}

func (r *imageRepository) GetImage(ctx context.Context, guid string, kind models.ImageKind) (models.StoredImage, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectImageQuery(r.b, guid, kind)
	if err != nil {
		log.Err(err).Str("func", "imageRepository.GetImage").Msg("error building sql query")
		return models.StoredImage{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var (
		img     models.StoredImage
		rawKind string
	)
	err = r.q.QueryRowContext(ctx, query, args...).Scan(&img.GUID, &rawKind, &img.PNG, &img.Width, &img.Height)
	if errors.Is(err, sql.ErrNoRows) {
		return models.StoredImage{}, ErrImageNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "imageRepository.GetImage").
			Str("guid", guid).
			Str("kind", string(kind)).
			Msg("failed to scan row")
		return models.StoredImage{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}
	img.Kind = models.ImageKind(rawKind)

	return img, nil
}

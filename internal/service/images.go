// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"

	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"

	"github.com/MKhiriev/go-note-sync/internal/adapter"
	"github.com/MKhiriev/go-note-sync/internal/logger"
	"github.com/MKhiriev/go-note-sync/internal/metrics"
	"github.com/MKhiriev/go-note-sync/models"
)

const (
	// InkSliceHeight is the maximum number of rows the service renders per
	// ink slice.
	InkSliceHeight = 600
	// ThumbnailSize is the edge of the square thumbnail canvas.
	ThumbnailSize = 300
)

// ImageAssembler downloads ink slices and thumbnails and draws them on a
// canvas. Slices are fetched one at a time in ascending order.
type ImageAssembler struct {
	downloader adapter.ResourceDownloader
	logger     *logger.Logger
}

func NewImageAssembler(downloader adapter.ResourceDownloader, log *logger.Logger) *ImageAssembler {
	return &ImageAssembler{downloader: downloader, logger: log}
}

// SliceCount returns the number of slices an ink resource of the given
// height is rendered in.
func SliceCount(height int) int {
	if height <= 0 {
		return 0
	}
	return 1 + (height-1)/InkSliceHeight
}

// Ink renders the ink resource r by stitching its slices top to bottom on a
// canvas of the declared size. The first empty or undecodable slice aborts
// the render; later slices are not requested.
func (a *ImageAssembler) Ink(ctx context.Context, shard, token string, r models.Resource) (image.Image, error) {
	width, height := int(r.Width), int(r.Height)
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: ink %s is %dx%d", ErrInvalidImageSize, r.GUID, width, height)
	}

	canvas := image.NewRGBA(image.Rect(0, 0, width, height))
	offset := 0
	for n := 1; n <= SliceCount(height); n++ {
		data, err := a.downloader.InkSlice(ctx, shard, r.GUID, n, token)
		if err != nil {
			return nil, fmt.Errorf("ink %s slice %d: %w", r.GUID, n, err)
		}
		slice, err := decodeImage(data)
		if err != nil {
			return nil, fmt.Errorf("ink %s slice %d: %w", r.GUID, n, err)
		}

		b := slice.Bounds()
		draw.Copy(canvas, image.Pt(0, offset), slice, b, draw.Src, nil)
		offset += b.Dy()
	}

	return canvas, nil
}

// Thumbnail renders the thumbnail of note guid on a transparent
// ThumbnailSize square. Larger images are scaled down keeping their aspect
// ratio.
func (a *ImageAssembler) Thumbnail(ctx context.Context, shard, token, guid string) (image.Image, error) {
	data, err := a.downloader.Thumbnail(ctx, shard, guid, token)
	if err != nil {
		return nil, fmt.Errorf("thumbnail %s: %w", guid, err)
	}
	img, err := decodeImage(data)
	if err != nil {
		return nil, fmt.Errorf("thumbnail %s: %w", guid, err)
	}

	canvas := image.NewRGBA(image.Rect(0, 0, ThumbnailSize, ThumbnailSize))
	b := img.Bounds()
	if b.Dx() <= ThumbnailSize && b.Dy() <= ThumbnailSize {
		draw.Copy(canvas, image.Point{}, img, b, draw.Src, nil)
		return canvas, nil
	}

	w, h := fitWithin(b.Dx(), b.Dy(), ThumbnailSize)
	draw.ApproxBiLinear.Scale(canvas, image.Rect(0, 0, w, h), img, b, draw.Src, nil)
	return canvas, nil
}

// InkImages renders every ink resource of resources. Failures are logged and
// skipped so one broken render does not fail the chunk.
func (a *ImageAssembler) InkImages(ctx context.Context, shard, token string, resources []models.Resource) []models.FetchedImage {
	var out []models.FetchedImage
	for _, r := range resources {
		if !r.IsInk() {
			continue
		}
		img, err := a.Ink(ctx, shard, token, r)
		metrics.RecordImage(string(models.ImageKindInk), err == nil)
		if err != nil {
			a.logger.Warn().Err(err).Str("func", "ImageAssembler.InkImages").Str("guid", r.GUID).Msg("ink render failed")
			continue
		}
		out = append(out, models.FetchedImage{GUID: r.GUID, Kind: models.ImageKindInk, Image: img})
	}
	return out
}

// ThumbnailImage renders the thumbnail of a note, logging failures. ok is
// false when no image was produced.
func (a *ImageAssembler) ThumbnailImage(ctx context.Context, shard, token, guid string) (models.FetchedImage, bool) {
	img, err := a.Thumbnail(ctx, shard, token, guid)
	metrics.RecordImage(string(models.ImageKindThumbnail), err == nil)
	if err != nil {
		a.logger.Warn().Err(err).Str("func", "ImageAssembler.ThumbnailImage").Str("guid", guid).Msg("thumbnail failed")
		return models.FetchedImage{}, false
	}
	return models.FetchedImage{GUID: guid, Kind: models.ImageKindThumbnail, Image: img}, true
}

func decodeImage(data []byte) (image.Image, error) {
	if len(data) == 0 {
		return nil, ErrEmptySlice
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEmptySlice, err)
	}
	if img.Bounds().Empty() {
		return nil, ErrEmptySlice
	}
	return img, nil
}

func fitWithin(w, h, edge int) (int, int) {
	if w >= h {
		return edge, max(1, h*edge/w)
	}
	return max(1, w*edge/h), edge
}

// EncodeImage encodes img as PNG for the local store.
func EncodeImage(img models.FetchedImage) (models.StoredImage, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img.Image); err != nil {
		return models.StoredImage{}, fmt.Errorf("encode %s %s: %w", img.Kind, img.GUID, err)
	}
	b := img.Image.Bounds()
	return models.StoredImage{GUID: img.GUID, Kind: img.Kind, PNG: buf.Bytes(), Width: b.Dx(), Height: b.Dy()}, nil
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/MKhiriev/go-note-sync/internal/logger"
	"github.com/MKhiriev/go-note-sync/internal/mock"
	"github.com/MKhiriev/go-note-sync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var (
	red   = color.RGBA{R: 255, A: 255}
	green = color.RGBA{G: 255, A: 255}
	blue  = color.RGBA{B: 255, A: 255}
)

// pngOf encodes a w x h image filled with c.
func pngOf(t *testing.T, w, h int, c color.RGBA) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, c)
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func rgbaAt(t *testing.T, img image.Image, x, y int) color.RGBA {
	t.Helper()
	rgba, ok := img.(*image.RGBA)
	require.True(t, ok, "canvas must be RGBA")
	return rgba.RGBAAt(x, y)
}

func inkResource(guid string, w, h int16) models.Resource {
	return models.Resource{GUID: guid, NoteGUID: "n1", Mime: models.InkMime, Width: w, Height: h}
}

// ── SliceCount ───────────────────────────────────────────────────────────────

func TestSliceCount(t *testing.T) {
	assert.Equal(t, 0, SliceCount(0))
	assert.Equal(t, 0, SliceCount(-3))
	assert.Equal(t, 1, SliceCount(1))
	assert.Equal(t, 1, SliceCount(600))
	assert.Equal(t, 2, SliceCount(601))
	assert.Equal(t, 3, SliceCount(1240))
}

// ── Ink ──────────────────────────────────────────────────────────────────────

func TestImageAssembler_Ink_StitchesSlicesTopToBottom(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	dl := mock.NewMockResourceDownloader(ctrl)
	a := NewImageAssembler(dl, logger.Nop())

	gomock.InOrder(
		dl.EXPECT().InkSlice(gomock.Any(), "s1", "r1", 1, "tok").Return(pngOf(t, 8, 600, red), nil),
		dl.EXPECT().InkSlice(gomock.Any(), "s1", "r1", 2, "tok").Return(pngOf(t, 8, 600, green), nil),
		dl.EXPECT().InkSlice(gomock.Any(), "s1", "r1", 3, "tok").Return(pngOf(t, 8, 40, blue), nil),
	)

	img, err := a.Ink(context.Background(), "s1", "tok", inkResource("r1", 8, 1240))
	require.NoError(t, err)

	assert.Equal(t, image.Rect(0, 0, 8, 1240), img.Bounds())
	assert.Equal(t, red, rgbaAt(t, img, 0, 0))
	assert.Equal(t, red, rgbaAt(t, img, 7, 599))
	assert.Equal(t, green, rgbaAt(t, img, 0, 600))
	assert.Equal(t, green, rgbaAt(t, img, 3, 1199))
	assert.Equal(t, blue, rgbaAt(t, img, 0, 1200))
	assert.Equal(t, blue, rgbaAt(t, img, 7, 1239))
}

func TestImageAssembler_Ink_AbortsOnEmptySlice(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	dl := mock.NewMockResourceDownloader(ctrl)
	a := NewImageAssembler(dl, logger.Nop())

	dl.EXPECT().InkSlice(gomock.Any(), "s1", "r1", 1, "tok").Return(pngOf(t, 8, 600, red), nil)
	dl.EXPECT().InkSlice(gomock.Any(), "s1", "r1", 2, "tok").Return([]byte{}, nil)
	// slice 3 is never requested

	_, err := a.Ink(context.Background(), "s1", "tok", inkResource("r1", 8, 1240))
	assert.ErrorIs(t, err, ErrEmptySlice)
}

func TestImageAssembler_Ink_AbortsOnGarbage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	dl := mock.NewMockResourceDownloader(ctrl)
	a := NewImageAssembler(dl, logger.Nop())

	dl.EXPECT().InkSlice(gomock.Any(), "s1", "r1", 1, "tok").Return([]byte("<html>oops</html>"), nil)

	_, err := a.Ink(context.Background(), "s1", "tok", inkResource("r1", 8, 700))
	assert.ErrorIs(t, err, ErrEmptySlice)
}

func TestImageAssembler_Ink_DownloadError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	dl := mock.NewMockResourceDownloader(ctrl)
	a := NewImageAssembler(dl, logger.Nop())

	boom := errors.New("http 503")
	dl.EXPECT().InkSlice(gomock.Any(), "s1", "r1", 1, "tok").Return(nil, boom)

	_, err := a.Ink(context.Background(), "s1", "tok", inkResource("r1", 8, 100))
	assert.ErrorIs(t, err, boom)
}

func TestImageAssembler_Ink_InvalidSize(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	a := NewImageAssembler(mock.NewMockResourceDownloader(ctrl), logger.Nop())

	_, err := a.Ink(context.Background(), "s1", "tok", inkResource("r1", 8, 0))
	assert.ErrorIs(t, err, ErrInvalidImageSize)

	_, err = a.Ink(context.Background(), "s1", "tok", inkResource("r1", -1, 10))
	assert.ErrorIs(t, err, ErrInvalidImageSize)
}

// ── Thumbnail ────────────────────────────────────────────────────────────────

func TestImageAssembler_Thumbnail_SmallImageIsCopied(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	dl := mock.NewMockResourceDownloader(ctrl)
	a := NewImageAssembler(dl, logger.Nop())

	dl.EXPECT().Thumbnail(gomock.Any(), "s1", "n1", "tok").Return(pngOf(t, 100, 50, green), nil)

	img, err := a.Thumbnail(context.Background(), "s1", "tok", "n1")
	require.NoError(t, err)

	assert.Equal(t, image.Rect(0, 0, ThumbnailSize, ThumbnailSize), img.Bounds())
	assert.Equal(t, green, rgbaAt(t, img, 0, 0))
	assert.Equal(t, green, rgbaAt(t, img, 99, 49))
	assert.Equal(t, color.RGBA{}, rgbaAt(t, img, 150, 150), "outside the image stays transparent")
}

func TestImageAssembler_Thumbnail_LargeImageIsScaled(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	dl := mock.NewMockResourceDownloader(ctrl)
	a := NewImageAssembler(dl, logger.Nop())

	dl.EXPECT().Thumbnail(gomock.Any(), "s1", "n1", "tok").Return(pngOf(t, 600, 300, red), nil)

	img, err := a.Thumbnail(context.Background(), "s1", "tok", "n1")
	require.NoError(t, err)

	assert.Equal(t, image.Rect(0, 0, ThumbnailSize, ThumbnailSize), img.Bounds())
	assert.NotZero(t, rgbaAt(t, img, 10, 10).A)
	assert.NotZero(t, rgbaAt(t, img, 290, 140).A)
	assert.Zero(t, rgbaAt(t, img, 10, 200).A, "aspect ratio is kept")
}

func TestImageAssembler_Thumbnail_Empty(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	dl := mock.NewMockResourceDownloader(ctrl)
	a := NewImageAssembler(dl, logger.Nop())

	dl.EXPECT().Thumbnail(gomock.Any(), "s1", "n1", "tok").Return(nil, nil)

	_, ok := a.ThumbnailImage(context.Background(), "s1", "tok", "n1")
	assert.False(t, ok)
}

func TestFitWithin(t *testing.T) {
	w, h := fitWithin(600, 300, 300)
	assert.Equal(t, 300, w)
	assert.Equal(t, 150, h)

	w, h = fitWithin(200, 1000, 300)
	assert.Equal(t, 60, w)
	assert.Equal(t, 300, h)

	w, h = fitWithin(10000, 1, 300)
	assert.Equal(t, 300, w)
	assert.Equal(t, 1, h)
}

// ── InkImages ────────────────────────────────────────────────────────────────

func TestImageAssembler_InkImages_SkipsFailures(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	dl := mock.NewMockResourceDownloader(ctrl)
	a := NewImageAssembler(dl, logger.Nop())

	resources := []models.Resource{
		{GUID: "photo", Mime: "image/png", Width: 10, Height: 10},
		inkResource("ink-ok", 4, 20),
		inkResource("ink-broken", 4, 20),
	}
	dl.EXPECT().InkSlice(gomock.Any(), "s1", "ink-ok", 1, "tok").Return(pngOf(t, 4, 20, blue), nil)
	dl.EXPECT().InkSlice(gomock.Any(), "s1", "ink-broken", 1, "tok").Return(nil, errors.New("timeout"))

	images := a.InkImages(context.Background(), "s1", "tok", resources)

	require.Len(t, images, 1)
	assert.Equal(t, "ink-ok", images[0].GUID)
	assert.Equal(t, models.ImageKindInk, images[0].Kind)
}

func TestEncodeImage(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 4, 3))
	img.Set(1, 1, color.RGBA{R: 255, A: 255})

	stored, err := EncodeImage(models.FetchedImage{GUID: "r1", Kind: models.ImageKindInk, Image: img})

	require.NoError(t, err)
	assert.Equal(t, "r1", stored.GUID)
	assert.Equal(t, models.ImageKindInk, stored.Kind)
	assert.Equal(t, 4, stored.Width)
	assert.Equal(t, 3, stored.Height)

	decoded, err := png.Decode(bytes.NewReader(stored.PNG))
	require.NoError(t, err)
	assert.Equal(t, img.Bounds(), decoded.Bounds())
}

package media

import (
	"image/color"
	"testing"

	"docmedia/internal/media/mediatest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractImageMeta(t *testing.T) {
	t.Run("rgba png", func(t *testing.T) {
		data := mediatest.PNG(64, 64, color.NRGBA{R: 10, G: 20, B: 30, A: 128})

		meta, err := ExtractImageMeta(data)
		require.NoError(t, err)
		assert.Equal(t, 64, meta.Width)
		assert.Equal(t, 64, meta.Height)
		assert.Equal(t, 4, meta.Channels)
	})

	t.Run("grayscale png", func(t *testing.T) {
		data := mediatest.GrayPNG(8, 12, 200)

		meta, err := ExtractImageMeta(data)
		require.NoError(t, err)
		assert.Equal(t, 8, meta.Width)
		assert.Equal(t, 12, meta.Height)
		assert.Equal(t, 1, meta.Channels)
	})

	t.Run("not an image", func(t *testing.T) {
		_, err := ExtractImageMeta([]byte("not pixels"))
		assert.ErrorIs(t, err, ErrDecode)
	})

	t.Run("pdf bytes are not an image", func(t *testing.T) {
		_, err := ExtractImageMeta(mediatest.PDF(1))
		assert.ErrorIs(t, err, ErrDecode)
	})
}

func TestExtractPDFMeta(t *testing.T) {
	t.Run("single page", func(t *testing.T) {
		meta, err := ExtractPDFMeta(mediatest.PDF(1))
		require.NoError(t, err)
		assert.Equal(t, 1, meta.PageCount)
		assert.InDelta(t, 612.0, meta.PageWidth, 0.01)
		assert.InDelta(t, 792.0, meta.PageHeight, 0.01)
	})

	t.Run("three pages", func(t *testing.T) {
		meta, err := ExtractPDFMeta(mediatest.PDF(3))
		require.NoError(t, err)
		assert.Equal(t, 3, meta.PageCount)
	})

	t.Run("not a pdf", func(t *testing.T) {
		_, err := ExtractPDFMeta([]byte("definitely not a pdf"))
		assert.ErrorIs(t, err, ErrDecode)
	})

	t.Run("image bytes are not a pdf", func(t *testing.T) {
		_, err := ExtractPDFMeta(mediatest.PNG(4, 4, color.NRGBA{A: 255}))
		assert.ErrorIs(t, err, ErrDecode)
	})
}

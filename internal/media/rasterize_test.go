package media

import (
	"bytes"
	"image/png"
	"testing"

	"docmedia/internal/media/mediatest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRasterizePDF(t *testing.T) {
	t.Run("renders every page in order", func(t *testing.T) {
		pages, err := RasterizePDF(mediatest.PDF(3))
		require.NoError(t, err)
		require.Len(t, pages, 3)

		for i, data := range pages {
			img, err := png.Decode(bytes.NewReader(data))
			require.NoError(t, err, "page %d is not a valid png", i+1)
			assert.Greater(t, img.Bounds().Dx(), 0)
			assert.Greater(t, img.Bounds().Dy(), 0)
		}
	})

	t.Run("single page", func(t *testing.T) {
		pages, err := RasterizePDF(mediatest.PDF(1))
		require.NoError(t, err)
		assert.Len(t, pages, 1)
	})

	t.Run("not a pdf", func(t *testing.T) {
		_, err := RasterizePDF([]byte("not a pdf"))
		assert.ErrorIs(t, err, ErrDecode)
	})
}

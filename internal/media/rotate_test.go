package media

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"docmedia/internal/media/mediatest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRotateImage(t *testing.T) {
	t.Run("output is a png with the source canvas", func(t *testing.T) {
		src := mediatest.PNG(64, 32, color.NRGBA{R: 200, G: 50, B: 50, A: 255})

		out, err := RotateImage(src, 90)
		require.NoError(t, err)

		img, err := png.Decode(bytes.NewReader(out))
		require.NoError(t, err)
		// Canvas is not expanded; out-of-frame corners are clipped.
		assert.Equal(t, 64, img.Bounds().Dx())
		assert.Equal(t, 32, img.Bounds().Dy())
	})

	t.Run("solid fill survives rotation", func(t *testing.T) {
		fill := color.NRGBA{R: 10, G: 120, B: 240, A: 255}
		src := mediatest.PNG(16, 16, fill)

		out, err := RotateImage(src, 45)
		require.NoError(t, err)

		img, err := png.Decode(bytes.NewReader(out))
		require.NoError(t, err)
		// The center pixel is never clipped regardless of angle.
		r, g, b, a := img.At(8, 8).RGBA()
		assert.Equal(t, uint32(fill.R), r>>8)
		assert.Equal(t, uint32(fill.G), g>>8)
		assert.Equal(t, uint32(fill.B), b>>8)
		assert.Equal(t, uint32(fill.A), a>>8)
	})

	t.Run("quarter turn moves the marked corner counter-clockwise", func(t *testing.T) {
		img := image.NewNRGBA(image.Rect(0, 0, 8, 8))
		for y := 0; y < 8; y++ {
			for x := 0; x < 8; x++ {
				img.SetNRGBA(x, y, color.NRGBA{A: 255})
			}
		}
		// Mark the top-left quadrant.
		for y := 0; y < 4; y++ {
			for x := 0; x < 4; x++ {
				img.SetNRGBA(x, y, color.NRGBA{R: 255, A: 255})
			}
		}
		var buf bytes.Buffer
		require.NoError(t, png.Encode(&buf, img))

		out, err := RotateImage(buf.Bytes(), 90)
		require.NoError(t, err)

		rotated, err := png.Decode(bytes.NewReader(out))
		require.NoError(t, err)

		// Counter-clockwise: top-left quadrant ends up bottom-left.
		r, _, _, _ := rotated.At(2, 6).RGBA()
		assert.Greater(t, r>>8, uint32(200))
		r, _, _, _ = rotated.At(2, 2).RGBA()
		assert.Less(t, r>>8, uint32(50))
	})

	t.Run("not an image", func(t *testing.T) {
		_, err := RotateImage([]byte("junk"), 90)
		assert.ErrorIs(t, err, ErrDecode)
	})
}

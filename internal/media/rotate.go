package media

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"math"

	"golang.org/x/image/draw"
	"golang.org/x/image/math/f64"
)

// RotateImage decodes data as a raster image, rotates it by angle degrees
// counter-clockwise about its center, and re-encodes the result as PNG.
// The canvas keeps the source dimensions; corners rotated out of frame are
// clipped rather than the canvas expanding.
func RotateImage(data []byte, angle float64) ([]byte, error) {
	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}

	b := src.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))

	rad := angle * math.Pi / 180
	sin, cos := math.Sin(rad), math.Cos(rad)
	cx := float64(b.Min.X) + float64(b.Dx())/2
	cy := float64(b.Min.Y) + float64(b.Dy())/2

	// Rotation about (cx, cy). Image coordinates grow downward, so a visual
	// counter-clockwise turn uses the transposed sign on the sine terms.
	m := f64.Aff3{
		cos, sin, cx - cos*cx - sin*cy,
		-sin, cos, cy + sin*cx - cos*cy,
	}
	draw.BiLinear.Transform(dst, m, src, b, draw.Src, nil)

	var buf bytes.Buffer
	if err := png.Encode(&buf, dst); err != nil {
		return nil, fmt.Errorf("encode rotated png: %w", err)
	}
	return buf.Bytes(), nil
}

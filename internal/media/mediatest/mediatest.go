// Package mediatest builds tiny in-memory image and PDF fixtures for tests.
package mediatest

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"
)

// PNG encodes a solid-fill RGBA image of the given dimensions.
func PNG(width, height int, fill color.NRGBA) []byte {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.SetNRGBA(x, y, fill)
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		panic(err)
	}
	return buf.Bytes()
}

// GrayPNG encodes a solid-fill grayscale image of the given dimensions.
func GrayPNG(width, height int, fill uint8) []byte {
	img := image.NewGray(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.SetGray(x, y, color.Gray{Y: fill})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		panic(err)
	}
	return buf.Bytes()
}

// PDF assembles a minimal but structurally valid PDF with the given number
// of US-Letter pages (612x792pt media box). The cross-reference table is
// computed from actual byte offsets, so the output parses under strict
// readers.
func PDF(pages int) []byte {
	if pages < 1 {
		panic("pdf fixture needs at least one page")
	}

	var body bytes.Buffer
	offsets := make([]int, 0, pages+3)

	writeObj := func(s string) {
		offsets = append(offsets, body.Len())
		body.WriteString(s)
	}

	body.WriteString("%PDF-1.4\n")

	kids := ""
	for i := 0; i < pages; i++ {
		if i > 0 {
			kids += " "
		}
		kids += fmt.Sprintf("%d 0 R", i+3)
	}

	writeObj("1 0 obj\n<< /Type /Catalog /Pages 2 0 R >>\nendobj\n")
	writeObj(fmt.Sprintf("2 0 obj\n<< /Type /Pages /Kids [%s] /Count %d >>\nendobj\n", kids, pages))
	for i := 0; i < pages; i++ {
		writeObj(fmt.Sprintf("%d 0 obj\n<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] /Resources << >> >>\nendobj\n", i+3))
	}

	xrefStart := body.Len()
	fmt.Fprintf(&body, "xref\n0 %d\n", len(offsets)+1)
	body.WriteString("0000000000 65535 f \n")
	for _, off := range offsets {
		fmt.Fprintf(&body, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&body, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", len(offsets)+1, xrefStart)

	return body.Bytes()
}

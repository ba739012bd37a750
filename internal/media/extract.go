package media

import (
	"bytes"
	"fmt"
	"image"

	// Register the raster codecs recognized at ingest time.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// ImageMeta is the structural metadata extracted from a raster image.
type ImageMeta struct {
	Width    int
	Height   int
	Channels int
}

// PDFMeta is the structural metadata extracted from a PDF document.
// Dimensions are the first page's media box, in PDF points.
type PDFMeta struct {
	PageCount  int
	PageWidth  float64
	PageHeight float64
}

// ExtractImageMeta decodes data as a raster image and reports its pixel
// dimensions and channel count.
func ExtractImageMeta(data []byte) (ImageMeta, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return ImageMeta{}, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	b := img.Bounds()
	return ImageMeta{
		Width:    b.Dx(),
		Height:   b.Dy(),
		Channels: channelCount(img),
	}, nil
}

// channelCount reports the number of color/alpha bands in the decoded pixel
// layout (gray 1, YCbCr 3, RGBA/CMYK 4).
func channelCount(img image.Image) int {
	switch img.(type) {
	case *image.Gray, *image.Gray16, *image.Alpha, *image.Alpha16, *image.Paletted:
		return 1
	case *image.YCbCr:
		return 3
	case *image.NYCbCrA:
		return 4
	default:
		// NRGBA, RGBA and their 16-bit forms, CMYK.
		return 4
	}
}

// ExtractPDFMeta parses data as a PDF and reports the total page count and
// the first page's media-box dimensions. A structurally invalid document or
// one with zero pages fails with ErrDecode.
func ExtractPDFMeta(data []byte) (PDFMeta, error) {
	dims, err := api.PageDims(bytes.NewReader(data), model.NewDefaultConfiguration())
	if err != nil {
		return PDFMeta{}, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	if len(dims) == 0 {
		return PDFMeta{}, fmt.Errorf("%w: document has no pages", ErrDecode)
	}
	return PDFMeta{
		PageCount:  len(dims),
		PageWidth:  dims[0].Width,
		PageHeight: dims[0].Height,
	}, nil
}

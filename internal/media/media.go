// Package media implements the ingest core: payload decoding and
// classification, structural metadata extraction, and the two stateless
// transforms (image rotation and PDF rasterization).
//
// Every function in this package is a pure function of its input bytes; no
// records are read or written here.
package media

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidEncoding indicates the payload is not valid base64.
	ErrInvalidEncoding = errors.New("payload is not valid base64")
	// ErrDecode indicates well-formed bytes that are not a valid image or PDF.
	ErrDecode = errors.New("unable to decode file content")
)

// Kind discriminates the two supported document variants.
type Kind string

const (
	KindImage Kind = "image"
	KindPDF   Kind = "pdf"
)

// dataURIMarker separates a data-URI prefix from the base64 body.
const dataURIMarker = "base64,"

// pdfMagic is the signature every PDF file starts with.
var pdfMagic = []byte("%PDF-")

// ParseKind validates an explicit kind tag supplied by the caller.
func ParseKind(s string) (Kind, error) {
	switch Kind(s) {
	case KindImage, KindPDF:
		return Kind(s), nil
	default:
		return "", fmt.Errorf("unknown kind %q", s)
	}
}

// DecodePayload strips an optional data-URI prefix and base64-decodes the
// remainder. An empty payload or malformed base64 yields ErrInvalidEncoding.
func DecodePayload(payload string) ([]byte, error) {
	if i := strings.Index(payload, dataURIMarker); i >= 0 {
		payload = payload[i+len(dataURIMarker):]
	}
	if payload == "" {
		return nil, ErrInvalidEncoding
	}
	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidEncoding, err)
	}
	return data, nil
}

// DetectKind classifies decoded bytes by signature. Anything that does not
// carry the PDF magic is treated as an image; bytes that are not actually a
// raster image fail later in extraction rather than being misfiled silently.
func DetectKind(data []byte) Kind {
	if bytes.HasPrefix(data, pdfMagic) {
		return KindPDF
	}
	return KindImage
}

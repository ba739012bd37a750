package service

import (
	"context"
	"encoding/base64"
	"fmt"

	"docmedia/internal/media"
)

// Rotate is a read-only transform: it never creates or mutates records.
func (s *documentService) Rotate(ctx context.Context, id string, angle float64) (string, error) {
	img, err := s.GetImage(ctx, id)
	if err != nil {
		return "", err
	}

	data, err := s.store.FetchBytes(ctx, img.StoragePath)
	if err != nil {
		return "", fmt.Errorf("load blob: %w", err)
	}

	rotated, err := media.RotateImage(data, angle)
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(rotated), nil
}

// Rasterize is a read-only transform: every page of the stored PDF is
// rendered to PNG and returned base64-encoded with 1-based page indexes.
func (s *documentService) Rasterize(ctx context.Context, id string) (*RasterizeResult, error) {
	pdf, err := s.GetPDF(ctx, id)
	if err != nil {
		return nil, err
	}

	data, err := s.store.FetchBytes(ctx, pdf.StoragePath)
	if err != nil {
		return nil, fmt.Errorf("load blob: %w", err)
	}

	rendered, err := media.RasterizePDF(data)
	if err != nil {
		return nil, err
	}

	pages := make([]RasterizedPage, 0, len(rendered))
	for i, page := range rendered {
		pages = append(pages, RasterizedPage{
			Page:  i + 1,
			Image: base64.StdEncoding.EncodeToString(page),
		})
	}
	return &RasterizeResult{TotalPages: len(pages), Pages: pages}, nil
}

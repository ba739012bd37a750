package service

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"docmedia/internal/media"
	"docmedia/internal/model"
	"docmedia/internal/repository"
	"docmedia/internal/storage"
)

var (
	ErrIDRequired  = errors.New("id is required")
	ErrNotFound    = errors.New("document not found")
	ErrInvalidKind = errors.New("invalid kind")
)

// ImageListResult is the service-level DTO for paginated image records.
type ImageListResult struct {
	Items []model.ImageDocument `json:"data"`
	Total int                   `json:"total"`
}

// PDFListResult is the service-level DTO for paginated PDF records.
type PDFListResult struct {
	Items []model.PDFDocument `json:"data"`
	Total int                 `json:"total"`
}

// UploadResult holds the record created by an upload; exactly one of Image
// and PDF is set, discriminated by Kind.
type UploadResult struct {
	Kind  media.Kind
	Image *model.ImageDocument
	PDF   *model.PDFDocument
}

// MarshalJSON serializes the created record's fields with a kind discriminator.
func (u UploadResult) MarshalJSON() ([]byte, error) {
	var record any
	switch {
	case u.Image != nil:
		record = u.Image
	case u.PDF != nil:
		record = u.PDF
	default:
		return nil, fmt.Errorf("upload result has no record")
	}
	raw, err := json.Marshal(record)
	if err != nil {
		return nil, err
	}
	var fields map[string]any
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, err
	}
	fields["kind"] = u.Kind
	return json.Marshal(fields)
}

// RasterizedPage is a single rendered PDF page, base64-encoded PNG.
type RasterizedPage struct {
	Page  int    `json:"page"`
	Image string `json:"image"`
}

// RasterizeResult is the full output of rasterizing a stored PDF.
type RasterizeResult struct {
	TotalPages int              `json:"total_pages"`
	Pages      []RasterizedPage `json:"images"`
}

// DocumentService defines the use cases for handling uploaded documents.
type DocumentService interface {
	// Upload decodes a base64 payload (optionally data-URI wrapped),
	// classifies it, extracts structural metadata, writes the blob, and
	// persists the record. kindHint, when non-empty, overrides signature
	// detection.
	Upload(ctx context.Context, payload string, kindHint string) (*UploadResult, error)

	ListImages(ctx context.Context, limit, offset int) (*ImageListResult, error)
	GetImage(ctx context.Context, id string) (*model.ImageDocument, error)
	DeleteImage(ctx context.Context, id string) error

	ListPDFs(ctx context.Context, limit, offset int) (*PDFListResult, error)
	GetPDF(ctx context.Context, id string) (*model.PDFDocument, error)
	DeletePDF(ctx context.Context, id string) error

	// Rotate loads a stored image, rotates it by angle degrees
	// counter-clockwise, and returns the result as a base64 PNG.
	Rotate(ctx context.Context, id string, angle float64) (string, error)

	// Rasterize renders every page of a stored PDF to base64 PNGs,
	// 1-based page indexes in document order.
	Rasterize(ctx context.Context, id string) (*RasterizeResult, error)
}

// documentService is the concrete implementation of DocumentService.
type documentService struct {
	store  storage.Storage
	images repository.ImageRepository
	pdfs   repository.PDFRepository
}

// NewDocumentService constructs a new DocumentService.
func NewDocumentService(store storage.Storage, images repository.ImageRepository, pdfs repository.PDFRepository) DocumentService {
	return &documentService{store: store, images: images, pdfs: pdfs}
}

func (s *documentService) ListImages(ctx context.Context, limit, offset int) (*ImageListResult, error) {
	res, err := s.images.List(ctx, clampPage(limit, offset))
	if err != nil {
		return nil, err
	}
	return &ImageListResult{Items: res.Items, Total: res.Total}, nil
}

func (s *documentService) GetImage(ctx context.Context, id string) (*model.ImageDocument, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	img, err := s.images.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return img, nil
}

// DeleteImage removes the record and cascades to its blob. A blob-delete
// failure is logged as an orphaned blob and does not block row removal.
func (s *documentService) DeleteImage(ctx context.Context, id string) error {
	if id == "" {
		return ErrIDRequired
	}
	img, err := s.images.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}
	if err := s.store.Delete(ctx, img.StoragePath); err != nil {
		logOrphanedBlob(img.StoragePath, err)
	}
	return s.images.Delete(ctx, id)
}

func (s *documentService) ListPDFs(ctx context.Context, limit, offset int) (*PDFListResult, error) {
	res, err := s.pdfs.List(ctx, clampPage(limit, offset))
	if err != nil {
		return nil, err
	}
	return &PDFListResult{Items: res.Items, Total: res.Total}, nil
}

func (s *documentService) GetPDF(ctx context.Context, id string) (*model.PDFDocument, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	pdf, err := s.pdfs.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return pdf, nil
}

// DeletePDF mirrors DeleteImage for the PDF variant.
func (s *documentService) DeletePDF(ctx context.Context, id string) error {
	if id == "" {
		return ErrIDRequired
	}
	pdf, err := s.pdfs.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}
	if err := s.store.Delete(ctx, pdf.StoragePath); err != nil {
		logOrphanedBlob(pdf.StoragePath, err)
	}
	return s.pdfs.Delete(ctx, id)
}

func clampPage(limit, offset int) repository.PageQuery {
	if limit <= 0 {
		limit = 10
	}
	if offset < 0 {
		offset = 0
	}
	return repository.PageQuery{Limit: limit, Offset: offset}
}

// logOrphanedBlob reports a blob left behind by a cascade delete, one JSON
// object per line.
func logOrphanedBlob(key string, err error) {
	entry := map[string]any{
		"ts":        time.Now().UTC().Format(time.RFC3339Nano),
		"level":     "warn",
		"component": "service",
		"event":     "blob_delete_failed",
		"blob_key":  key,
		"error":     err.Error(),
	}
	if b, mErr := json.Marshal(entry); mErr == nil {
		log.SetFlags(0)
		log.Println(string(b))
	}
}

package service

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"docmedia/internal/media"
	"docmedia/internal/model"
	"docmedia/internal/storage"
)

// Upload is the ingest dispatcher. The record's identity is allocated up
// front so the blob key can be derived from it; the blob is written first
// and the fully-populated row is then inserted in a single statement, so no
// partially-initialized record is ever visible. A failed insert rolls the
// blob back.
func (s *documentService) Upload(ctx context.Context, payload string, kindHint string) (*UploadResult, error) {
	data, err := media.DecodePayload(payload)
	if err != nil {
		return nil, err
	}

	kind := media.DetectKind(data)
	if kindHint != "" {
		kind, err = media.ParseKind(kindHint)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidKind, err)
		}
	}

	switch kind {
	case media.KindPDF:
		return s.uploadPDF(ctx, data)
	default:
		return s.uploadImage(ctx, data)
	}
}

func (s *documentService) uploadImage(ctx context.Context, data []byte) (*UploadResult, error) {
	meta, err := media.ExtractImageMeta(data)
	if err != nil {
		return nil, err
	}

	id := uuid.New().String()
	key := fmt.Sprintf("images/%s.png", id)

	img := &model.ImageDocument{
		Document: model.Document{
			ID:          id,
			StoragePath: key,
			FileSize:    int64(len(data)),
			UploadedAt:  time.Now().UTC(),
		},
		Width:    meta.Width,
		Height:   meta.Height,
		Channels: meta.Channels,
	}

	if err := s.putBlob(ctx, key, data, "image/png"); err != nil {
		return nil, err
	}

	stored, err := s.images.Create(ctx, img)
	if err != nil {
		return nil, s.rollbackBlob(ctx, key, err)
	}
	return &UploadResult{Kind: media.KindImage, Image: stored}, nil
}

func (s *documentService) uploadPDF(ctx context.Context, data []byte) (*UploadResult, error) {
	meta, err := media.ExtractPDFMeta(data)
	if err != nil {
		return nil, err
	}

	id := uuid.New().String()
	key := fmt.Sprintf("pdfs/%s.pdf", id)

	pdf := &model.PDFDocument{
		Document: model.Document{
			ID:          id,
			StoragePath: key,
			FileSize:    int64(len(data)),
			UploadedAt:  time.Now().UTC(),
		},
		PageCount:  meta.PageCount,
		PageWidth:  meta.PageWidth,
		PageHeight: meta.PageHeight,
	}

	if err := s.putBlob(ctx, key, data, "application/pdf"); err != nil {
		return nil, err
	}

	stored, err := s.pdfs.Create(ctx, pdf)
	if err != nil {
		return nil, s.rollbackBlob(ctx, key, err)
	}
	return &UploadResult{Kind: media.KindPDF, PDF: stored}, nil
}

func (s *documentService) putBlob(ctx context.Context, key string, data []byte, contentType string) error {
	_, err := s.store.Put(ctx, key, bytes.NewReader(data), storage.PutObjectOptions{
		Size:        int64(len(data)),
		ContentType: contentType,
	})
	if err != nil {
		return fmt.Errorf("upload to storage: %w", err)
	}
	return nil
}

// rollbackBlob deletes a freshly-written blob after a failed record insert.
func (s *documentService) rollbackBlob(ctx context.Context, key string, cause error) error {
	if delErr := s.store.Delete(ctx, key); delErr != nil {
		return fmt.Errorf("db save failed: %v; rollback delete failed: %v", cause, delErr)
	}
	return fmt.Errorf("db save failed: %w", cause)
}

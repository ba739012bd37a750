package mocks

import (
	"context"

	"docmedia/internal/model"
	"docmedia/internal/service"
	"github.com/stretchr/testify/mock"
)

type MockDocumentService struct {
	mock.Mock
}

func (m *MockDocumentService) Upload(ctx context.Context, payload string, kindHint string) (*service.UploadResult, error) {
	args := m.Called(ctx, payload, kindHint)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.UploadResult), args.Error(1)
}

func (m *MockDocumentService) ListImages(ctx context.Context, limit, offset int) (*service.ImageListResult, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ImageListResult), args.Error(1)
}

func (m *MockDocumentService) GetImage(ctx context.Context, id string) (*model.ImageDocument, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ImageDocument), args.Error(1)
}

func (m *MockDocumentService) DeleteImage(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockDocumentService) ListPDFs(ctx context.Context, limit, offset int) (*service.PDFListResult, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.PDFListResult), args.Error(1)
}

func (m *MockDocumentService) GetPDF(ctx context.Context, id string) (*model.PDFDocument, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.PDFDocument), args.Error(1)
}

func (m *MockDocumentService) DeletePDF(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockDocumentService) Rotate(ctx context.Context, id string, angle float64) (string, error) {
	args := m.Called(ctx, id, angle)
	return args.String(0), args.Error(1)
}

func (m *MockDocumentService) Rasterize(ctx context.Context, id string) (*service.RasterizeResult, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.RasterizeResult), args.Error(1)
}

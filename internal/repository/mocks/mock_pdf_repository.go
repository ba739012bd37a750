package mocks

import (
	"context"

	"docmedia/internal/model"
	"docmedia/internal/repository"
	"github.com/stretchr/testify/mock"
)

type MockPDFRepository struct {
	mock.Mock
}

func (m *MockPDFRepository) Create(ctx context.Context, pdf *model.PDFDocument) (*model.PDFDocument, error) {
	args := m.Called(ctx, pdf)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.PDFDocument), args.Error(1)
}

func (m *MockPDFRepository) FindByID(ctx context.Context, id string) (*model.PDFDocument, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.PDFDocument), args.Error(1)
}

func (m *MockPDFRepository) List(ctx context.Context, pq repository.PageQuery) (*repository.PageResult[model.PDFDocument], error) {
	args := m.Called(ctx, pq)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.PageResult[model.PDFDocument]), args.Error(1)
}

func (m *MockPDFRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

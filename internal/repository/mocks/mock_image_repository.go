package mocks

import (
	"context"

	"docmedia/internal/model"
	"docmedia/internal/repository"
	"github.com/stretchr/testify/mock"
)

type MockImageRepository struct {
	mock.Mock
}

func (m *MockImageRepository) Create(ctx context.Context, img *model.ImageDocument) (*model.ImageDocument, error) {
	args := m.Called(ctx, img)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ImageDocument), args.Error(1)
}

func (m *MockImageRepository) FindByID(ctx context.Context, id string) (*model.ImageDocument, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ImageDocument), args.Error(1)
}

func (m *MockImageRepository) List(ctx context.Context, pq repository.PageQuery) (*repository.PageResult[model.ImageDocument], error) {
	args := m.Called(ctx, pq)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.PageResult[model.ImageDocument]), args.Error(1)
}

func (m *MockImageRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

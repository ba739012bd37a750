package service

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"docmedia/internal/model"
	"docmedia/internal/repository"
	repoMocks "docmedia/internal/repository/mocks"
	"docmedia/internal/storage"
	storeMocks "docmedia/internal/storage/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func storageInfo(key string) storage.ObjectInfo {
	return storage.ObjectInfo{Key: key}
}

func TestDocumentService_ListImages(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name       string
		limit      int
		offset     int
		setupMocks func(mImages *repoMocks.MockImageRepository)
		wantErr    bool
		checkRes   func(t *testing.T, res *ImageListResult)
	}{
		{
			name:   "happy path",
			limit:  10,
			offset: 0,
			setupMocks: func(mImages *repoMocks.MockImageRepository) {
				mImages.On("List", ctx, repository.PageQuery{Limit: 10, Offset: 0}).
					Return(&repository.PageResult[model.ImageDocument]{
						Items: []model.ImageDocument{{Document: model.Document{ID: "1"}}, {Document: model.Document{ID: "2"}}},
						Total: 2,
					}, nil)
			},
			checkRes: func(t *testing.T, res *ImageListResult) {
				assert.Len(t, res.Items, 2)
				assert.Equal(t, 2, res.Total)
			},
		},
		{
			name:   "pagination boundary - zero limit uses default",
			limit:  0,
			offset: -1,
			setupMocks: func(mImages *repoMocks.MockImageRepository) {
				mImages.On("List", ctx, repository.PageQuery{Limit: 10, Offset: 0}).
					Return(&repository.PageResult[model.ImageDocument]{Items: []model.ImageDocument{}, Total: 0}, nil)
			},
		},
		{
			name:  "repository error",
			limit: 10,
			setupMocks: func(mImages *repoMocks.MockImageRepository) {
				mImages.On("List", ctx, mock.Anything).Return(nil, errors.New("db fail"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mImages := new(repoMocks.MockImageRepository)
			svc := NewDocumentService(nil, mImages, nil)

			tt.setupMocks(mImages)

			res, err := svc.ListImages(ctx, tt.limit, tt.offset)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				if tt.checkRes != nil {
					tt.checkRes(t, res)
				}
			}
			mImages.AssertExpectations(t)
		})
	}
}

func TestDocumentService_GetImage(t *testing.T) {
	ctx := context.Background()

	t.Run("happy path", func(t *testing.T) {
		mImages := new(repoMocks.MockImageRepository)
		mImages.On("FindByID", ctx, "valid-id").
			Return(&model.ImageDocument{Document: model.Document{ID: "valid-id"}}, nil)
		svc := NewDocumentService(nil, mImages, nil)

		img, err := svc.GetImage(ctx, "valid-id")
		assert.NoError(t, err)
		assert.Equal(t, "valid-id", img.ID)
		mImages.AssertExpectations(t)
	})

	t.Run("empty id", func(t *testing.T) {
		svc := NewDocumentService(nil, new(repoMocks.MockImageRepository), nil)
		_, err := svc.GetImage(ctx, "")
		assert.ErrorIs(t, err, ErrIDRequired)
	})

	t.Run("not found maps sql.ErrNoRows", func(t *testing.T) {
		mImages := new(repoMocks.MockImageRepository)
		mImages.On("FindByID", ctx, "missing").Return(nil, sql.ErrNoRows)
		svc := NewDocumentService(nil, mImages, nil)

		_, err := svc.GetImage(ctx, "missing")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("idempotent read returns identical metadata", func(t *testing.T) {
		stored := &model.ImageDocument{
			Document: model.Document{ID: "valid-id", FileSize: 99},
			Width:    64, Height: 64, Channels: 4,
		}
		mImages := new(repoMocks.MockImageRepository)
		mImages.On("FindByID", ctx, "valid-id").Return(stored, nil).Twice()
		svc := NewDocumentService(nil, mImages, nil)

		first, err := svc.GetImage(ctx, "valid-id")
		assert.NoError(t, err)
		second, err := svc.GetImage(ctx, "valid-id")
		assert.NoError(t, err)
		assert.Equal(t, first, second)
		mImages.AssertExpectations(t)
	})
}

func TestDocumentService_GetPDF(t *testing.T) {
	ctx := context.Background()

	t.Run("happy path", func(t *testing.T) {
		mPDFs := new(repoMocks.MockPDFRepository)
		mPDFs.On("FindByID", ctx, "valid-id").
			Return(&model.PDFDocument{Document: model.Document{ID: "valid-id"}, PageCount: 3}, nil)
		svc := NewDocumentService(nil, nil, mPDFs)

		pdf, err := svc.GetPDF(ctx, "valid-id")
		assert.NoError(t, err)
		assert.Equal(t, 3, pdf.PageCount)
	})

	t.Run("not found", func(t *testing.T) {
		mPDFs := new(repoMocks.MockPDFRepository)
		mPDFs.On("FindByID", ctx, "missing").Return(nil, sql.ErrNoRows)
		svc := NewDocumentService(nil, nil, mPDFs)

		_, err := svc.GetPDF(ctx, "missing")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestDocumentService_DeleteImage(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name       string
		id         string
		setupMocks func(mStore *storeMocks.MockStorage, mImages *repoMocks.MockImageRepository)
		wantErr    error
	}{
		{
			name: "happy path",
			id:   "valid-id",
			setupMocks: func(mStore *storeMocks.MockStorage, mImages *repoMocks.MockImageRepository) {
				mImages.On("FindByID", ctx, "valid-id").
					Return(&model.ImageDocument{Document: model.Document{ID: "valid-id", StoragePath: "images/valid-id.png"}}, nil)
				mStore.On("Delete", ctx, "images/valid-id.png").Return(nil)
				mImages.On("Delete", ctx, "valid-id").Return(nil)
			},
		},
		{
			name: "blob already missing - record is still removed",
			id:   "orphan-id",
			setupMocks: func(mStore *storeMocks.MockStorage, mImages *repoMocks.MockImageRepository) {
				mImages.On("FindByID", ctx, "orphan-id").
					Return(&model.ImageDocument{Document: model.Document{ID: "orphan-id", StoragePath: "images/orphan-id.png"}}, nil)
				mStore.On("Delete", ctx, "images/orphan-id.png").Return(errors.New("object does not exist"))
				mImages.On("Delete", ctx, "orphan-id").Return(nil)
			},
		},
		{
			name:       "empty id",
			id:         "",
			setupMocks: func(mStore *storeMocks.MockStorage, mImages *repoMocks.MockImageRepository) {},
			wantErr:    ErrIDRequired,
		},
		{
			name: "not found",
			id:   "missing-id",
			setupMocks: func(mStore *storeMocks.MockStorage, mImages *repoMocks.MockImageRepository) {
				mImages.On("FindByID", ctx, "missing-id").Return(nil, sql.ErrNoRows)
			},
			wantErr: ErrNotFound,
		},
		{
			name: "repository delete error",
			id:   "repo-fail-id",
			setupMocks: func(mStore *storeMocks.MockStorage, mImages *repoMocks.MockImageRepository) {
				mImages.On("FindByID", ctx, "repo-fail-id").
					Return(&model.ImageDocument{Document: model.Document{ID: "repo-fail-id", StoragePath: "p"}}, nil)
				mStore.On("Delete", ctx, "p").Return(nil)
				mImages.On("Delete", ctx, "repo-fail-id").Return(errors.New("db fail"))
			},
			wantErr: errors.New("db fail"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mStore := new(storeMocks.MockStorage)
			mImages := new(repoMocks.MockImageRepository)
			svc := NewDocumentService(mStore, mImages, nil)

			tt.setupMocks(mStore, mImages)

			err := svc.DeleteImage(ctx, tt.id)

			if tt.wantErr != nil {
				if errors.Is(tt.wantErr, ErrIDRequired) || errors.Is(tt.wantErr, ErrNotFound) {
					assert.ErrorIs(t, err, tt.wantErr)
				} else {
					assert.Error(t, err)
					assert.Contains(t, err.Error(), tt.wantErr.Error())
				}
			} else {
				assert.NoError(t, err)
			}
			mStore.AssertExpectations(t)
			mImages.AssertExpectations(t)
		})
	}
}

func TestDocumentService_DeletePDF(t *testing.T) {
	ctx := context.Background()

	t.Run("cascade proceeds past blob delete failure", func(t *testing.T) {
		mStore := new(storeMocks.MockStorage)
		mPDFs := new(repoMocks.MockPDFRepository)
		mPDFs.On("FindByID", ctx, "pdf-id").
			Return(&model.PDFDocument{Document: model.Document{ID: "pdf-id", StoragePath: "pdfs/pdf-id.pdf"}}, nil)
		mStore.On("Delete", ctx, "pdfs/pdf-id.pdf").Return(errors.New("gone"))
		mPDFs.On("Delete", ctx, "pdf-id").Return(nil)
		svc := NewDocumentService(mStore, nil, mPDFs)

		assert.NoError(t, svc.DeletePDF(ctx, "pdf-id"))
		mStore.AssertExpectations(t)
		mPDFs.AssertExpectations(t)
	})

	t.Run("not found", func(t *testing.T) {
		mPDFs := new(repoMocks.MockPDFRepository)
		mPDFs.On("FindByID", ctx, "missing").Return(nil, sql.ErrNoRows)
		svc := NewDocumentService(new(storeMocks.MockStorage), nil, mPDFs)

		assert.ErrorIs(t, svc.DeletePDF(ctx, "missing"), ErrNotFound)
	})
}

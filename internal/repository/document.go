package repository

import (
	"context"

	"docmedia/internal/model"
)

// ImageRepository defines data access for image records using SQL only.
// No business logic here — strictly persistence operations.
type ImageRepository interface {
	// Create inserts a fully-populated image row and returns the stored record.
	Create(ctx context.Context, img *model.ImageDocument) (*model.ImageDocument, error)

	// FindByID returns an image record by its ID.
	FindByID(ctx context.Context, id string) (*model.ImageDocument, error)

	// List returns a page of image records plus the total row count.
	List(ctx context.Context, pq PageQuery) (*PageResult[model.ImageDocument], error)

	// Delete removes an image row by ID. Returns nil if the row did not exist.
	Delete(ctx context.Context, id string) error
}

// PDFRepository defines data access for PDF records using SQL only.
type PDFRepository interface {
	Create(ctx context.Context, pdf *model.PDFDocument) (*model.PDFDocument, error)
	FindByID(ctx context.Context, id string) (*model.PDFDocument, error)
	List(ctx context.Context, pq PageQuery) (*PageResult[model.PDFDocument], error)
	Delete(ctx context.Context, id string) error
}

// PageQuery holds limit/offset pagination parameters.
type PageQuery struct {
	Limit  int
	Offset int
}

// PageResult is a generic pagination result wrapper.
type PageResult[T any] struct {
	Items []T
	Total int
}

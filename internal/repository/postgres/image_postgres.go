package postgres

import (
	"context"
	"database/sql"

	"docmedia/internal/model"
	"docmedia/internal/repository"
)

// ImagePostgres is a PostgreSQL implementation of repository.ImageRepository.
// It uses database/sql with parameterized queries and contains no business logic.
type ImagePostgres struct {
	db *sql.DB
}

// NewImagePostgres creates a new ImagePostgres repository.
func NewImagePostgres(db *sql.DB) *ImagePostgres {
	return &ImagePostgres{db: db}
}

var _ repository.ImageRepository = (*ImagePostgres)(nil)

const imageColumns = "id, storage_path, file_size, uploaded_at, width, height, channels"

func scanImage(row interface{ Scan(...any) error }) (*model.ImageDocument, error) {
	var img model.ImageDocument
	if err := row.Scan(
		&img.ID,
		&img.StoragePath,
		&img.FileSize,
		&img.UploadedAt,
		&img.Width,
		&img.Height,
		&img.Channels,
	); err != nil {
		return nil, err
	}
	return &img, nil
}

// Create inserts a new image row and returns the stored record.
func (r *ImagePostgres) Create(ctx context.Context, img *model.ImageDocument) (*model.ImageDocument, error) {
	const q = `
		INSERT INTO images (id, storage_path, file_size, uploaded_at, width, height, channels)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + imageColumns
	row := r.db.QueryRowContext(ctx, q,
		img.ID,
		img.StoragePath,
		img.FileSize,
		img.UploadedAt,
		img.Width,
		img.Height,
		img.Channels,
	)
	return scanImage(row)
}

// FindByID fetches a single image record by its ID.
func (r *ImagePostgres) FindByID(ctx context.Context, id string) (*model.ImageDocument, error) {
	const q = `SELECT ` + imageColumns + ` FROM images WHERE id = $1`
	return scanImage(r.db.QueryRowContext(ctx, q, id))
}

// List returns image records using LIMIT/OFFSET pagination and a total count.
func (r *ImagePostgres) List(ctx context.Context, pq repository.PageQuery) (*repository.PageResult[model.ImageDocument], error) {
	const qCount = `SELECT COUNT(*) FROM images`
	var total int
	if err := r.db.QueryRowContext(ctx, qCount).Scan(&total); err != nil {
		return nil, err
	}

	const qList = `
		SELECT ` + imageColumns + `
		FROM images
		ORDER BY uploaded_at DESC, id DESC
		LIMIT $1 OFFSET $2
	`
	rows, err := r.db.QueryContext(ctx, qList, pq.Limit, pq.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.ImageDocument, 0)
	for rows.Next() {
		img, err := scanImage(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *img)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &repository.PageResult[model.ImageDocument]{Items: items, Total: total}, nil
}

// Delete removes an image row by ID. A missing row is not an error.
func (r *ImagePostgres) Delete(ctx context.Context, id string) error {
	const q = `DELETE FROM images WHERE id = $1`
	res, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
		return err
	}
	_, _ = res.RowsAffected()
	return nil
}

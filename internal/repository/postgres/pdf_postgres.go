package postgres

import (
	"context"
	"database/sql"

	"docmedia/internal/model"
	"docmedia/internal/repository"
)

// PDFPostgres is a PostgreSQL implementation of repository.PDFRepository.
type PDFPostgres struct {
	db *sql.DB
}

// NewPDFPostgres creates a new PDFPostgres repository.
func NewPDFPostgres(db *sql.DB) *PDFPostgres {
	return &PDFPostgres{db: db}
}

var _ repository.PDFRepository = (*PDFPostgres)(nil)

const pdfColumns = "id, storage_path, file_size, uploaded_at, num_pages, page_width, page_height"

func scanPDF(row interface{ Scan(...any) error }) (*model.PDFDocument, error) {
	var pdf model.PDFDocument
	if err := row.Scan(
		&pdf.ID,
		&pdf.StoragePath,
		&pdf.FileSize,
		&pdf.UploadedAt,
		&pdf.PageCount,
		&pdf.PageWidth,
		&pdf.PageHeight,
	); err != nil {
		return nil, err
	}
	return &pdf, nil
}

// Create inserts a new PDF row and returns the stored record.
func (r *PDFPostgres) Create(ctx context.Context, pdf *model.PDFDocument) (*model.PDFDocument, error) {
	const q = `
		INSERT INTO pdfs (id, storage_path, file_size, uploaded_at, num_pages, page_width, page_height)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + pdfColumns
	row := r.db.QueryRowContext(ctx, q,
		pdf.ID,
		pdf.StoragePath,
		pdf.FileSize,
		pdf.UploadedAt,
		pdf.PageCount,
		pdf.PageWidth,
		pdf.PageHeight,
	)
	return scanPDF(row)
}

// FindByID fetches a single PDF record by its ID.
func (r *PDFPostgres) FindByID(ctx context.Context, id string) (*model.PDFDocument, error) {
	const q = `SELECT ` + pdfColumns + ` FROM pdfs WHERE id = $1`
	return scanPDF(r.db.QueryRowContext(ctx, q, id))
}

// List returns PDF records using LIMIT/OFFSET pagination and a total count.
func (r *PDFPostgres) List(ctx context.Context, pq repository.PageQuery) (*repository.PageResult[model.PDFDocument], error) {
	const qCount = `SELECT COUNT(*) FROM pdfs`
	var total int
	if err := r.db.QueryRowContext(ctx, qCount).Scan(&total); err != nil {
		return nil, err
	}

	const qList = `
		SELECT ` + pdfColumns + `
		FROM pdfs
		ORDER BY uploaded_at DESC, id DESC
		LIMIT $1 OFFSET $2
	`
	rows, err := r.db.QueryContext(ctx, qList, pq.Limit, pq.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.PDFDocument, 0)
	for rows.Next() {
		pdf, err := scanPDF(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *pdf)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &repository.PageResult[model.PDFDocument]{Items: items, Total: total}, nil
}

// Delete removes a PDF row by ID. A missing row is not an error.
func (r *PDFPostgres) Delete(ctx context.Context, id string) error {
	const q = `DELETE FROM pdfs WHERE id = $1`
	res, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
		return err
	}
	_, _ = res.RowsAffected()
	return nil
}

package postgres

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"docmedia/internal/model"
	"docmedia/internal/repository"
	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

var pdfCols = []string{"id", "storage_path", "file_size", "uploaded_at", "num_pages", "page_width", "page_height"}

func TestPDFPostgres_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewPDFPostgres(db)
	ctx := context.Background()

	now := time.Now().UTC()
	pdf := &model.PDFDocument{
		Document: model.Document{
			ID:          "test-uuid",
			StoragePath: "pdfs/test-uuid.pdf",
			FileSize:    4096,
			UploadedAt:  now,
		},
		PageCount:  3,
		PageWidth:  612,
		PageHeight: 792,
	}

	rows := sqlmock.NewRows(pdfCols).
		AddRow(pdf.ID, pdf.StoragePath, pdf.FileSize, pdf.UploadedAt, pdf.PageCount, pdf.PageWidth, pdf.PageHeight)

	mock.ExpectQuery("INSERT INTO pdfs").
		WithArgs(pdf.ID, pdf.StoragePath, pdf.FileSize, pdf.UploadedAt, pdf.PageCount, pdf.PageWidth, pdf.PageHeight).
		WillReturnRows(rows)

	result, err := repo.Create(ctx, pdf)

	assert.NoError(t, err)
	assert.NotNil(t, result)
	assert.Equal(t, 3, result.PageCount)
	assert.Equal(t, 612.0, result.PageWidth)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPDFPostgres_FindByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewPDFPostgres(db)
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		rows := sqlmock.NewRows(pdfCols).
			AddRow("test-id", "pdfs/test-id.pdf", 2048, time.Now(), 1, 595.28, 841.89)

		mock.ExpectQuery("SELECT (.+) FROM pdfs WHERE id = ?").
			WithArgs("test-id").
			WillReturnRows(rows)

		pdf, err := repo.FindByID(ctx, "test-id")

		assert.NoError(t, err)
		assert.NotNil(t, pdf)
		assert.Equal(t, 1, pdf.PageCount)
		assert.InDelta(t, 595.28, pdf.PageWidth, 0.001)
	})

	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM pdfs WHERE id = ?").
			WithArgs("missing").
			WillReturnError(sql.ErrNoRows)

		pdf, err := repo.FindByID(ctx, "missing")

		assert.Error(t, err)
		assert.True(t, errors.Is(err, sql.ErrNoRows))
		assert.Nil(t, pdf)
	})
}

func TestPDFPostgres_List(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewPDFPostgres(db)
	ctx := context.Background()

	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM pdfs").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))

	rows := sqlmock.NewRows(pdfCols).
		AddRow("id-1", "pdfs/id-1.pdf", 100, time.Now(), 1, 612.0, 792.0).
		AddRow("id-2", "pdfs/id-2.pdf", 200, time.Now(), 5, 612.0, 792.0)

	mock.ExpectQuery("SELECT (.+) FROM pdfs ORDER BY").
		WithArgs(10, 0).
		WillReturnRows(rows)

	res, err := repo.List(ctx, repository.PageQuery{Limit: 10, Offset: 0})

	assert.NoError(t, err)
	assert.Equal(t, 2, res.Total)
	assert.Len(t, res.Items, 2)
}

func TestPDFPostgres_Delete(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewPDFPostgres(db)
	ctx := context.Background()

	mock.ExpectExec("DELETE FROM pdfs WHERE id = ?").
		WithArgs("test-id").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err = repo.Delete(ctx, "test-id")

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

package model

import "time"

// Document holds the fields shared by every stored file variant.
// It is a pure domain value with no database-specific dependencies or tags;
// variants embed it by composition rather than inheriting behavior.
type Document struct {
	ID          string    `json:"id"`
	StoragePath string    `json:"file"`
	FileSize    int64     `json:"file_size"`
	UploadedAt  time.Time `json:"uploaded_at"`
}

// ImageDocument is a stored raster image together with the structural
// metadata extracted from its pixel data at ingest time.
type ImageDocument struct {
	Document
	Width    int `json:"width"`
	Height   int `json:"height"`
	Channels int `json:"channels"`
}

// PDFDocument is a stored PDF together with its page count and the first
// page's media-box dimensions in PDF points.
type PDFDocument struct {
	Document
	PageCount  int     `json:"num_pages"`
	PageWidth  float64 `json:"page_width"`
	PageHeight float64 `json:"page_height"`
}

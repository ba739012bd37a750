package storage

import (
	"context"
	"io"
	"time"
)

// Package storage contains the blob store abstraction backing document
// payloads. Implementations are S3-compatible object stores using streaming
// I/O; blob keys are derived from record identity ({id}.png / {id}.pdf under
// a per-variant prefix).

// PutObjectOptions define optional parameters for uploading blobs.
// Size should be the exact byte count if known; -1 lets the implementation
// buffer/chunk as the backend supports.
type PutObjectOptions struct {
	Size        int64
	ContentType string
	Metadata    map[string]string
}

// ObjectInfo contains basic information about a stored blob.
type ObjectInfo struct {
	Key          string
	Size         int64
	ETag         string
	ContentType  string
	LastModified time.Time
	Metadata     map[string]string
}

// Storage is the blob store interface. Methods take context and use
// streaming readers; nothing touches local disk.
type Storage interface {
	// Put uploads a blob under the given key.
	Put(ctx context.Context, key string, r io.Reader, opt PutObjectOptions) (ObjectInfo, error)
	// Get retrieves a blob's content as a streaming reader alongside its info.
	Get(ctx context.Context, key string) (io.ReadCloser, ObjectInfo, error)
	// FetchBytes reads a blob fully into memory. The transforms decode whole
	// payloads, so they use this rather than streaming.
	FetchBytes(ctx context.Context, key string) ([]byte, error)
	// Delete removes a blob by key.
	Delete(ctx context.Context, key string) error
	// PresignGet returns a time-limited URL for downloading the blob without
	// credentials.
	PresignGet(ctx context.Context, key string, expiry time.Duration) (string, error)
}

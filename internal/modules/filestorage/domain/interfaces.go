package domain

import (
	"context"
	"io"
)

// FileStorage is implemented by the S3/MinIO and local filesystem backends.
type FileStorage interface {
	// UploadFile stores file under key and returns its public URL.
	UploadFile(ctx context.Context, key string, file io.Reader, contentType string) (string, error)

	// OpenFile returns a reader over the object and its metadata. The caller
	// closes the reader. Missing objects yield ErrFileNotFound.
	OpenFile(ctx context.Context, key string) (io.ReadCloser, *File, error)

	DeleteFile(ctx context.Context, key string) error

	// GetKeyFromURL maps a URL returned by UploadFile back to its key.
	GetKeyFromURL(url string) (string, error)
}

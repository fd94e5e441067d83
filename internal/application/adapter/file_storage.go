package adapter

import (
	"context"
	"io"
)

// FileStorage stores attachment content outside the database.
type FileStorage interface {
	// Save writes the content and returns its storage path and size in bytes.
	Save(ctx context.Context, originalName string, content io.Reader) (path string, size int64, err error)

	// Delete removes stored content. Deleting a missing path is not an error.
	Delete(ctx context.Context, path string) error

	// URL returns the public URL of stored content.
	URL(path string) string
}

// Package storage implements file storage for transaction attachments.
package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/finance-tracker/bookkeeping/internal/application/adapter"
)

// localStorage implements the adapter.FileStorage interface on the local filesystem.
// Files are laid out as YYYY/MM/<uuid><ext> under the root directory.
type localStorage struct {
	root    string
	baseURL string
}

// NewLocalStorage creates the root directory if needed and returns a storage rooted there.
func NewLocalStorage(root, baseURL string) (adapter.FileStorage, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve storage dir: %w", err)
	}
	if err := os.MkdirAll(abs, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create storage dir: %w", err)
	}
	return &localStorage{
		root:    abs,
		baseURL: strings.TrimRight(baseURL, "/"),
	}, nil
}

// Save writes content to a fresh file and returns its relative path.
func (s *localStorage) Save(ctx context.Context, originalName string, content io.Reader) (string, int64, error) {
	if err := ctx.Err(); err != nil {
		return "", 0, err
	}

	ext := strings.ToLower(filepath.Ext(filepath.Base(originalName)))
	rel := path.Join(time.Now().UTC().Format("2006/01"), uuid.NewString()+ext)
	full := filepath.Join(s.root, filepath.FromSlash(rel))

	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return "", 0, fmt.Errorf("failed to create attachment dir: %w", err)
	}

	f, err := os.OpenFile(full, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return "", 0, fmt.Errorf("failed to create attachment file: %w", err)
	}

	size, err := io.Copy(f, content)
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		_ = os.Remove(full)
		return "", 0, fmt.Errorf("failed to write attachment: %w", err)
	}

	return rel, size, nil
}

// Delete removes the file at the relative path.
func (s *localStorage) Delete(_ context.Context, rel string) error {
	full, err := s.resolve(rel)
	if err != nil {
		return err
	}
	if err := os.Remove(full); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete attachment: %w", err)
	}
	return nil
}

// URL returns the public URL of the relative path.
func (s *localStorage) URL(rel string) string {
	return s.baseURL + "/" + strings.TrimLeft(rel, "/")
}

// resolve maps a relative path to a file under root, refusing anything that escapes it.
func (s *localStorage) resolve(rel string) (string, error) {
	full := filepath.Join(s.root, filepath.FromSlash(rel))
	if full != s.root && strings.HasPrefix(full, s.root+string(filepath.Separator)) {
		return full, nil
	}
	return "", fmt.Errorf("attachment path %q is outside storage", rel)
}

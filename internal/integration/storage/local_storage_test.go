package storage_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finance-tracker/bookkeeping/internal/integration/storage"
)

func TestLocalStorage(t *testing.T) {
	root := t.TempDir()
	store, err := storage.NewLocalStorage(root, "http://localhost:8080/files/")
	require.NoError(t, err)
	ctx := context.Background()

	rel, size, err := store.Save(ctx, "Receipt.PDF", strings.NewReader("%PDF-1.4 fake"))
	require.NoError(t, err)
	assert.Equal(t, int64(13), size)
	assert.True(t, strings.HasSuffix(rel, ".pdf"))
	assert.Equal(t, "http://localhost:8080/files/"+rel, store.URL(rel))

	body, err := os.ReadFile(filepath.Join(root, filepath.FromSlash(rel)))
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.4 fake", string(body))

	require.NoError(t, store.Delete(ctx, rel))
	_, err = os.Stat(filepath.Join(root, filepath.FromSlash(rel)))
	assert.True(t, os.IsNotExist(err))

	// Deleting twice is fine; escaping the root is not.
	require.NoError(t, store.Delete(ctx, rel))
	assert.Error(t, store.Delete(ctx, "../outside.txt"))
}

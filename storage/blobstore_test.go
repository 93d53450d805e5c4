package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiskStorePut(t *testing.T) {
	root := t.TempDir()
	store := NewDiskStore(root, "/files/")
	ctx := context.Background()

	ref, err := store.Put(ctx, "scan_results/abc123.png", []byte("image-bytes"))
	require.NoError(t, err)
	assert.Equal(t, "/files/scan_results/abc123.png", ref)

	data, err := os.ReadFile(filepath.Join(root, "scan_results", "abc123.png"))
	require.NoError(t, err)
	assert.Equal(t, []byte("image-bytes"), data)
}

func TestDiskStoreRejectsTraversal(t *testing.T) {
	root := t.TempDir()
	store := NewDiskStore(root, "/files")
	ctx := context.Background()

	// Traversal segments are cleaned away, never escaping the root
	ref, err := store.Put(ctx, "../../etc/passwd", []byte("nope"))
	require.NoError(t, err)
	assert.Equal(t, "/files/etc/passwd", ref)

	_, err = os.Stat(filepath.Join(root, "etc", "passwd"))
	assert.NoError(t, err)

	// An empty path is rejected outright
	_, err = store.Put(ctx, "", []byte("nope"))
	assert.Error(t, err)
}

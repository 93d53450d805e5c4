package storage

import (
	"context"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// BlobStore is the boundary to the external image store. Put writes the
// bytes under a caller-supplied path and returns a retrievable
// reference that is embedded in the scan record.
type BlobStore interface {
	Put(ctx context.Context, blobPath string, data []byte) (string, error)
	URL(blobPath string) string
}

// DiskStore keeps blobs on the local filesystem under a root directory
// and serves them under a URL prefix (mounted as a static route).
type DiskStore struct {
	rootDir   string
	urlPrefix string
}

// NewDiskStore creates a disk-backed blob store
func NewDiskStore(rootDir, urlPrefix string) *DiskStore {
	return &DiskStore{
		rootDir:   rootDir,
		urlPrefix: strings.TrimSuffix(urlPrefix, "/"),
	}
}

// Put writes the blob and returns its reference
func (s *DiskStore) Put(ctx context.Context, blobPath string, data []byte) (string, error) {
	cleaned, err := s.cleanPath(blobPath)
	if err != nil {
		return "", err
	}

	fullPath := filepath.Join(s.rootDir, filepath.FromSlash(cleaned))
	if err := os.MkdirAll(filepath.Dir(fullPath), 0o755); err != nil {
		return "", fmt.Errorf("failed to create blob directory: %w", err)
	}

	if err := os.WriteFile(fullPath, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write blob %s: %w", cleaned, err)
	}

	return s.URL(cleaned), nil
}

// URL returns the retrievable reference for a blob path
func (s *DiskStore) URL(blobPath string) string {
	return s.urlPrefix + "/" + strings.TrimPrefix(blobPath, "/")
}

// Root returns the directory blobs are stored under, for static serving
func (s *DiskStore) Root() string {
	return s.rootDir
}

// cleanPath rejects traversal outside the store root
func (s *DiskStore) cleanPath(blobPath string) (string, error) {
	cleaned := path.Clean("/" + blobPath)
	if cleaned == "/" {
		return "", fmt.Errorf("empty blob path")
	}
	return strings.TrimPrefix(cleaned, "/"), nil
}

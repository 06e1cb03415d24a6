package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// LocalStore keeps media on the local filesystem under
// <uploadDir>/<listingID>/<kind>/<filename>. Suitable for a single-node
// deployment; a cloud bucket implementation would satisfy the same interface.
type LocalStore struct {
	baseURL     string
	uploadDir   string
	maxFileSize int64
}

func NewLocalStore(baseURL, uploadDir string, maxFileSize int64) (*LocalStore, error) {
	if err := os.MkdirAll(uploadDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}
	return &LocalStore{
		baseURL:     strings.TrimRight(baseURL, "/"),
		uploadDir:   uploadDir,
		maxFileSize: maxFileSize,
	}, nil
}

func (s *LocalStore) Save(ctx context.Context, listingID string, kind MediaKind, filename string, reader io.Reader) (string, error) {
	path, err := s.path(listingID, kind, filename)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("failed to create media directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}
	defer f.Close()

	limit := s.maxFileSize
	if limit <= 0 {
		limit = 25 << 20
	}
	written, err := io.Copy(f, io.LimitReader(reader, limit+1))
	if err != nil {
		os.Remove(path)
		return "", fmt.Errorf("failed to write file: %w", err)
	}
	if written > limit {
		os.Remove(path)
		return "", ErrFileTooLarge
	}

	return s.URL(listingID, kind, filename), nil
}

func (s *LocalStore) Open(ctx context.Context, listingID string, kind MediaKind, filename string) (io.ReadCloser, error) {
	path, err := s.path(listingID, kind, filename)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrFileNotFound
		}
		return nil, err
	}
	return f, nil
}

func (s *LocalStore) Exists(ctx context.Context, listingID string, kind MediaKind, filename string) (bool, int64, error) {
	path, err := s.path(listingID, kind, filename)
	if err != nil {
		return false, 0, err
	}
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, 0, nil
		}
		return false, 0, err
	}
	return true, info.Size(), nil
}

func (s *LocalStore) Delete(ctx context.Context, listingID string, kind MediaKind, filename string) error {
	path, err := s.path(listingID, kind, filename)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil {
		if os.IsNotExist(err) {
			return ErrFileNotFound
		}
		return err
	}
	return nil
}

func (s *LocalStore) URL(listingID string, kind MediaKind, filename string) string {
	return fmt.Sprintf("%s/api/v1/listings/%s/media/%s/%s", s.baseURL, listingID, kind, filename)
}

// path validates the filename and builds the on-disk location. Rejecting
// separators keeps requests from escaping the upload directory.
func (s *LocalStore) path(listingID string, kind MediaKind, filename string) (string, error) {
	if filename == "" || strings.ContainsAny(filename, `/\`) || filename != filepath.Base(filename) {
		return "", ErrBadFilename
	}
	if listingID == "" || listingID != filepath.Base(listingID) {
		return "", ErrBadFilename
	}
	return filepath.Join(s.uploadDir, listingID, string(kind), filename), nil
}

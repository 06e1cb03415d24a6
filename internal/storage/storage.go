package storage

import (
	"context"
	"errors"
	"io"
)

// MediaKind separates listing photos from legal documents on disk and in URLs.
type MediaKind string

const (
	MediaKindPhoto    MediaKind = "photos"
	MediaKindDocument MediaKind = "docs"
)

var (
	ErrFileNotFound = errors.New("file not found")
	ErrFileTooLarge = errors.New("file exceeds the configured size limit")
	ErrBadFilename  = errors.New("filename contains path separators")
)

// FileStore holds media content for listings. Only the reference (listing ID,
// kind, filename) is persisted with the listing record; the bytes live here.
type FileStore interface {
	// Save writes the file and returns its public download URL.
	Save(ctx context.Context, listingID string, kind MediaKind, filename string, reader io.Reader) (string, error)
	Open(ctx context.Context, listingID string, kind MediaKind, filename string) (io.ReadCloser, error)
	Exists(ctx context.Context, listingID string, kind MediaKind, filename string) (bool, int64, error)
	Delete(ctx context.Context, listingID string, kind MediaKind, filename string) error
	// URL returns the public download URL for an already stored file.
	URL(listingID string, kind MediaKind, filename string) string
}

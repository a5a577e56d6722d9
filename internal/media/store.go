// Package media talks to the remote store that holds image binaries.
// Records only keep the public URL; every backend can map that URL back to
// the identifier its delete call needs.
package media

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNoFileID means the URL does not point into this store.
	ErrNoFileID = errors.New("no remote file id for url")
	// ErrFileNotFound is returned when the store has no file for an id.
	ErrFileNotFound = errors.New("remote file not found")
)

type UploadInput struct {
	FileName    string
	Folder      string
	ContentType string
	Data        []byte
}

type UploadResult struct {
	URL    string
	FileID string
}

// Store is the Remote Media Store.
type Store interface {
	Upload(ctx context.Context, in UploadInput) (*UploadResult, error)
	Delete(ctx context.Context, fileID string) error
	// FileID is the single way a stored URL is turned into a deletable
	// identifier. It returns ErrNoFileID for empty or foreign URLs.
	FileID(ctx context.Context, url string) (string, error)
}

// objectPath returns the "folder/name" part of rawURL below base.
func objectPath(base, rawURL string) (string, error) {
	rawURL = strings.TrimSpace(rawURL)
	if rawURL == "" || base == "" {
		return "", ErrNoFileID
	}
	if i := strings.IndexAny(rawURL, "?#"); i >= 0 {
		rawURL = rawURL[:i]
	}
	prefix := strings.TrimRight(base, "/") + "/"
	if !strings.HasPrefix(rawURL, prefix) {
		return "", ErrNoFileID
	}
	p := strings.Trim(strings.TrimPrefix(rawURL, prefix), "/")
	if p == "" {
		return "", ErrNoFileID
	}
	return p, nil
}

func joinKey(folder, name string) string {
	folder = strings.Trim(folder, "/")
	if folder == "" {
		return name
	}
	return folder + "/" + name
}

func validateInput(in UploadInput) error {
	if in.FileName == "" {
		return fmt.Errorf("upload: file name is required")
	}
	if len(in.Data) == 0 {
		return fmt.Errorf("upload: empty file")
	}
	return nil
}

package asset

import (
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
)

const DefaultMaxFileSize = 10 * 1024 * 1024

// AllowedMimeTypes lists the image types accepted for an asset.
var AllowedMimeTypes = map[string]bool{
	"image/jpeg":    true,
	"image/png":     true,
	"image/gif":     true,
	"image/webp":    true,
	"image/svg+xml": true,
}

// File is an inbound image payload.
type File struct {
	Name        string
	ContentType string
	Data        []byte
}

// ReadFormFile loads and validates a multipart file. A nil header yields a
// nil File so callers can treat "no file" uniformly.
func ReadFormFile(fh *multipart.FileHeader, maxSize int64) (*File, error) {
	if fh == nil {
		return nil, nil
	}
	if maxSize <= 0 {
		maxSize = DefaultMaxFileSize
	}
	if fh.Size == 0 {
		return nil, ErrFileRequired
	}
	if fh.Size > maxSize {
		return nil, ErrFileTooLarge
	}

	f, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, maxSize+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	if int64(len(data)) > maxSize {
		return nil, ErrFileTooLarge
	}
	if len(data) == 0 {
		return nil, ErrFileRequired
	}

	mimeType := detectMimeType(data, fh.Header.Get("Content-Type"))
	if !AllowedMimeTypes[mimeType] {
		return nil, ErrInvalidMimeType
	}

	return &File{Name: fh.Filename, ContentType: mimeType, Data: data}, nil
}

func detectMimeType(data []byte, declared string) string {
	mimeType := strings.Split(http.DetectContentType(data), ";")[0]
	// DetectContentType has no SVG signature; trust the declared type for XML text.
	if mimeType == "text/xml" || mimeType == "text/plain" {
		if strings.HasPrefix(strings.ToLower(declared), "image/svg+xml") {
			return "image/svg+xml"
		}
	}
	return mimeType
}

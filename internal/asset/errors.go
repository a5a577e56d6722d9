package asset

import "errors"

var (
	ErrNotFound        = errors.New("record not found")
	ErrFileRequired    = errors.New("image file is required")
	ErrFileTooLarge    = errors.New("file exceeds maximum allowed size")
	ErrInvalidMimeType = errors.New("file type is not allowed")
	ErrUpload          = errors.New("failed to upload image")
)

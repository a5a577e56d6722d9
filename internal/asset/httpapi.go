package asset

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"companyprofile/internal/pkg/response"
)

// FormImage reads the optional multipart image field. Requests that are not
// multipart, or lack the field, yield a nil File.
func FormImage(c *gin.Context, field string, maxSize int64) (*File, error) {
	fh, err := c.FormFile(field)
	if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return ReadFormFile(fh, maxSize)
}

// ParamID parses the :id route parameter.
func ParamID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// Messages are the user-facing texts of one resource.
type Messages struct {
	NotFound string // "Security mitra logo not found"
	Failed   string // "Failed to update security mitra logo"
}

// WriteError maps lifecycle errors onto the JSON error shape.
func WriteError(c *gin.Context, err error, msg Messages) {
	switch {
	case errors.Is(err, ErrFileRequired):
		response.Error(c, http.StatusBadRequest, "Image file is required")
	case errors.Is(err, ErrInvalidMimeType):
		response.ErrorWithDetails(c, http.StatusBadRequest, "Invalid image file", err)
	case errors.Is(err, ErrFileTooLarge):
		response.ErrorWithDetails(c, http.StatusRequestEntityTooLarge, "Image file is too large", err)
	case errors.Is(err, ErrNotFound):
		response.Error(c, http.StatusNotFound, msg.NotFound)
	case errors.Is(err, ErrUpload):
		response.ErrorWithDetails(c, http.StatusInternalServerError, "Failed to upload new image", err)
	default:
		response.ErrorWithDetails(c, http.StatusInternalServerError, msg.Failed, err)
	}
}

// IsClientError reports whether err is caused by the request rather than a
// dependency.
func IsClientError(err error) bool {
	return errors.Is(err, ErrFileRequired) ||
		errors.Is(err, ErrInvalidMimeType) ||
		errors.Is(err, ErrFileTooLarge) ||
		errors.Is(err, ErrNotFound)
}

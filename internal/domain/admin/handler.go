package admin

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"companyprofile/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// List handles GET /admins
func (h *Handler) List(c *gin.Context) {
	admins, err := h.service.List(c.Request.Context())
	if err != nil {
		log.Error().Err(err).Msg("Failed to list admins")
		response.Error(c, http.StatusInternalServerError, "Something went wrong")
		return
	}
	if len(admins) == 0 {
		response.Error(c, http.StatusNotFound, "No admins found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"admins": admins})
}

// UpdateEmail handles PUT /admins/email/:id
func (h *Handler) UpdateEmail(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req UpdateEmailRequest
	if !bindBody(c, &req) {
		return
	}

	a, err := h.service.UpdateEmail(c.Request.Context(), id, req.NewEmail)
	switch {
	case errors.Is(err, ErrEmailRequired):
		response.Error(c, http.StatusBadRequest, "New email is required")
	case errors.Is(err, ErrEmailInUse):
		response.Error(c, http.StatusBadRequest, "Email already in use")
	case errors.Is(err, ErrAdminNotFound):
		response.Error(c, http.StatusNotFound, "Admin not found")
	case err != nil:
		log.Error().Err(err).Int64("admin_id", id).Msg("Error updating email")
		response.Error(c, http.StatusInternalServerError, "Failed to update email")
	default:
		c.JSON(http.StatusOK, gin.H{
			"message": "Email updated successfully",
			"admin":   a,
		})
	}
}

// UpdatePassword handles PUT /admins/password/:id
func (h *Handler) UpdatePassword(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req UpdatePasswordRequest
	if !bindBody(c, &req) {
		return
	}

	err := h.service.UpdatePassword(c.Request.Context(), id, req.NewPassword)
	switch {
	case errors.Is(err, ErrPasswordRequired):
		response.Error(c, http.StatusBadRequest, "New password is required")
	case errors.Is(err, ErrAdminNotFound):
		response.Error(c, http.StatusNotFound, "Admin not found")
	case err != nil:
		log.Error().Err(err).Int64("admin_id", id).Msg("Error updating password")
		response.Error(c, http.StatusInternalServerError, "Failed to update password")
	default:
		response.Message(c, http.StatusOK, "Password updated successfully")
	}
}

// bindBody decodes an optional JSON body. An empty body leaves req zero so
// the required-field checks answer; anything unparsable is a 400.
func bindBody(c *gin.Context, req any) bool {
	err := c.ShouldBindJSON(req)
	if err == nil || errors.Is(err, io.EOF) {
		return true
	}
	response.ErrorWithDetails(c, http.StatusBadRequest, "Invalid request body", err)
	return false
}

// parseID treats a malformed id like an unknown one.
func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusNotFound, "Admin not found")
		return 0, false
	}
	return id, true
}

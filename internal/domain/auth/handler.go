package auth

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"companyprofile/internal/middleware"
	"companyprofile/internal/pkg/response"
	"companyprofile/internal/pkg/validator"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Login handles POST /login
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Message(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if errs := validator.Validate(req); errs != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Email and password are required",
			"details": errs,
		})
		return
	}

	res, err := h.service.Login(c.Request.Context(), req, c.ClientIP())
	switch {
	case errors.Is(err, ErrRecaptchaFailed):
		log.Warn().Err(err).Str("client_ip", c.ClientIP()).Msg("reCAPTCHA verification failed")
		response.Message(c, http.StatusBadRequest, "reCAPTCHA verification failed")
		return
	case errors.Is(err, ErrInvalidCredentials):
		response.Message(c, http.StatusUnauthorized, "Invalid credentials")
		return
	case err != nil:
		log.Error().Err(err).Msg("Login error")
		response.Message(c, http.StatusInternalServerError, "Server error")
		return
	}

	c.JSON(http.StatusOK, LoginResponse{
		Message: "Login successful",
		Token:   res.Token,
		Admin: AdminSummary{
			ID:    res.Admin.ID,
			Email: res.Admin.Email,
		},
	})
}

// Logout handles POST /logout; runs behind the JWT gate.
func (h *Handler) Logout(c *gin.Context) {
	claims, ok := middleware.ClaimsFrom(c)
	if !ok {
		response.Message(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	if claims.ExpiresAt == nil {
		response.Message(c, http.StatusOK, "Logout successful")
		return
	}

	if err := h.service.Logout(c.Request.Context(), claims.ID, claims.ExpiresAt.Time); err != nil {
		log.Error().Err(err).Int64("admin_id", claims.AdminID).Msg("Failed to revoke token")
		response.Message(c, http.StatusInternalServerError, "Server error")
		return
	}

	response.Message(c, http.StatusOK, "Logout successful")
}

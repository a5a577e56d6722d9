package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"companyprofile/internal/pkg/jwt"
	"companyprofile/internal/pkg/response"
	"companyprofile/internal/pkg/revocation"
)

const claimsKey = "admin_claims"

type tokenValidator interface {
	ValidateToken(token string) (*jwt.Claims, error)
}

// JWTAuth gates admin routes. The token is read from the authorization
// header as is; a "Bearer " prefix is tolerated.
func JWTAuth(tokens tokenValidator, revoked revocation.List) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := strings.TrimSpace(c.GetHeader("Authorization"))
		if header == "" {
			response.AbortMessage(c, http.StatusUnauthorized, "Unauthorized")
			return
		}

		raw := header
		if len(raw) > 7 && strings.EqualFold(raw[:7], "bearer ") {
			raw = strings.TrimSpace(raw[7:])
		}

		claims, err := tokens.ValidateToken(raw)
		if err != nil {
			response.AbortMessage(c, http.StatusUnauthorized, "Token Invalid")
			return
		}

		if revoked != nil && claims.ID != "" {
			isRevoked, err := revoked.IsRevoked(c.Request.Context(), claims.ID)
			if err != nil {
				log.Error().Err(err).Msg("Revocation lookup failed")
				response.AbortMessage(c, http.StatusUnauthorized, "Token Invalid")
				return
			}
			if isRevoked {
				response.AbortMessage(c, http.StatusUnauthorized, "Token Invalid")
				return
			}
		}

		c.Set(claimsKey, claims)
		c.Set("admin_id", claims.AdminID)
		c.Set("admin_email", claims.Email)
		c.Next()
	}
}

// ClaimsFrom returns the claims JWTAuth stored on the context.
func ClaimsFrom(c *gin.Context) (*jwt.Claims, bool) {
	v, ok := c.Get(claimsKey)
	if !ok {
		return nil, false
	}
	claims, ok := v.(*jwt.Claims)
	return claims, ok
}

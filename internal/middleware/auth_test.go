package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"companyprofile/internal/pkg/jwt"
	"companyprofile/internal/pkg/revocation"
)

// countingValidator records whether verification was attempted.
type countingValidator struct {
	inner *jwt.Service
	calls int
}

func (v *countingValidator) ValidateToken(tok string) (*jwt.Claims, error) {
	v.calls++
	return v.inner.ValidateToken(tok)
}

func protectedRouter(t *testing.T, tokens tokenValidator, revoked revocation.List) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(JWTAuth(tokens, revoked))
	router.GET("/protected", func(c *gin.Context) {
		claims, ok := ClaimsFrom(c)
		require.True(t, ok)
		c.JSON(http.StatusOK, gin.H{
			"admin_id":    c.GetInt64("admin_id"),
			"admin_email": c.GetString("admin_email"),
			"jti":         claims.ID,
		})
	})
	return router
}

func get(router http.Handler, authorization string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	router.ServeHTTP(w, req)
	return w
}

func TestJWTAuth_ValidToken(t *testing.T) {
	jwtService := jwt.New("test-secret-123", time.Hour)
	validToken, err := jwtService.GenerateToken(42, "admin@example.com")
	require.NoError(t, err)

	router := protectedRouter(t, jwtService, nil)

	for _, header := range []string{validToken, "Bearer " + validToken} {
		w := get(router, header)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"admin_id":42`)
		assert.Contains(t, w.Body.String(), "admin@example.com")
	}
}

func TestJWTAuth_InvalidToken(t *testing.T) {
	issuer := jwt.New("other-secret", time.Hour)
	foreign, _ := issuer.GenerateToken(1, "x@example.com")

	router := protectedRouter(t, jwt.New("secret", time.Hour), nil)

	for _, header := range []string{"invalid-jwt-here", "Basic dGVzdA==", foreign} {
		w := get(router, header)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.JSONEq(t, `{"message":"Token Invalid"}`, w.Body.String())
	}
}

func TestJWTAuth_ExpiredToken(t *testing.T) {
	jwtService := jwt.New("secret", -time.Minute)
	expired, _ := jwtService.GenerateToken(1, "x@example.com")

	w := get(protectedRouter(t, jwtService, nil), expired)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"message":"Token Invalid"}`, w.Body.String())
}

func TestJWTAuth_NoTokenSkipsVerification(t *testing.T) {
	v := &countingValidator{inner: jwt.New("secret", time.Hour)}

	w := get(protectedRouter(t, v, nil), "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"message":"Unauthorized"}`, w.Body.String())
	assert.Zero(t, v.calls)
}

func TestJWTAuth_RevokedToken(t *testing.T) {
	jwtService := jwt.New("secret", time.Hour)
	tok, _ := jwtService.GenerateToken(7, "admin@example.com")
	claims, err := jwtService.ValidateToken(tok)
	require.NoError(t, err)

	revoked := revocation.NewMemory()
	router := protectedRouter(t, jwtService, revoked)
	assert.Equal(t, http.StatusOK, get(router, tok).Code)

	require.NoError(t, revoked.Revoke(context.Background(), claims.ID, claims.ExpiresAt.Time))

	w := get(router, tok)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"message":"Token Invalid"}`, w.Body.String())
}

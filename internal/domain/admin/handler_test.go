package admin

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"companyprofile/internal/database"
)

func setupTestRouter(t *testing.T) (*gin.Engine, Repository) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := database.Connect(fmt.Sprintf("file:admin_handler_test_%s?mode=memory&cache=shared", t.Name()))
	require.NoError(t, err)
	require.NoError(t, Migrate(db))

	repo := NewRepository(db)
	h := NewHandler(NewService(repo))

	r := gin.New()
	h.RegisterRoutes(r.Group("/api"))
	return r, repo
}

func jsonRequest(method, path, body string) *http.Request {
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func serve(r http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

func TestList(t *testing.T) {
	r, repo := setupTestRouter(t)

	rr := serve(r, httptest.NewRequest(http.MethodGet, "/api/admins", nil))
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.JSONEq(t, `{"error":"No admins found"}`, rr.Body.String())

	require.NoError(t, repo.Create(context.Background(), &Admin{Email: "a@example.com", Password: "hash"}))

	rr = serve(r, httptest.NewRequest(http.MethodGet, "/api/admins", nil))
	require.Equal(t, http.StatusOK, rr.Code)
	assert.NotContains(t, rr.Body.String(), "hash")

	var body struct {
		Admins []Admin `json:"admins"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	require.Len(t, body.Admins, 1)
	assert.Equal(t, "a@example.com", body.Admins[0].Email)
}

func TestUpdateEmail(t *testing.T) {
	r, repo := setupTestRouter(t)
	ctx := context.Background()

	first := &Admin{Email: "a@example.com", Password: "hash"}
	second := &Admin{Email: "b@example.com", Password: "hash"}
	require.NoError(t, repo.Create(ctx, first))
	require.NoError(t, repo.Create(ctx, second))

	path := fmt.Sprintf("/api/admins/email/%d", first.ID)

	rr := serve(r, jsonRequest(http.MethodPut, path, `{}`))
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.JSONEq(t, `{"error":"New email is required"}`, rr.Body.String())

	rr = serve(r, jsonRequest(http.MethodPut, path, `{"newEmail":"b@example.com"}`))
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.JSONEq(t, `{"error":"Email already in use"}`, rr.Body.String())

	rr = serve(r, jsonRequest(http.MethodPut, "/api/admins/email/999", `{"newEmail":"z@example.com"}`))
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.JSONEq(t, `{"error":"Admin not found"}`, rr.Body.String())

	rr = serve(r, jsonRequest(http.MethodPut, path, `{"newEmail":"c@example.com"}`))
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	var body struct {
		Message string `json:"message"`
		Admin   Admin  `json:"admin"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, "Email updated successfully", body.Message)
	assert.Equal(t, "c@example.com", body.Admin.Email)

	// keeping the current address is not a conflict
	rr = serve(r, jsonRequest(http.MethodPut, path, `{"newEmail":"c@example.com"}`))
	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestUpdate_MalformedBody(t *testing.T) {
	r, repo := setupTestRouter(t)

	a := &Admin{Email: "a@example.com", Password: "hash"}
	require.NoError(t, repo.Create(context.Background(), a))

	for _, path := range []string{
		fmt.Sprintf("/api/admins/email/%d", a.ID),
		fmt.Sprintf("/api/admins/password/%d", a.ID),
	} {
		rr := serve(r, jsonRequest(http.MethodPut, path, `{"newEmail":`))
		assert.Equal(t, http.StatusBadRequest, rr.Code, path)
		assert.Contains(t, rr.Body.String(), `"error":"Invalid request body"`, path)
	}

	// an empty body still reaches the required-field check
	rr := serve(r, jsonRequest(http.MethodPut, fmt.Sprintf("/api/admins/email/%d", a.ID), ""))
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.JSONEq(t, `{"error":"New email is required"}`, rr.Body.String())

	stored, err := repo.GetByID(context.Background(), a.ID)
	require.NoError(t, err)
	assert.Equal(t, "a@example.com", stored.Email)
}

func TestUpdatePassword(t *testing.T) {
	r, repo := setupTestRouter(t)
	ctx := context.Background()

	a := &Admin{Email: "a@example.com", Password: "old"}
	require.NoError(t, repo.Create(ctx, a))
	path := fmt.Sprintf("/api/admins/password/%d", a.ID)

	rr := serve(r, jsonRequest(http.MethodPut, path, `{"newPassword":""}`))
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.JSONEq(t, `{"error":"New password is required"}`, rr.Body.String())

	rr = serve(r, jsonRequest(http.MethodPut, "/api/admins/password/abc", `{"newPassword":"x"}`))
	assert.Equal(t, http.StatusNotFound, rr.Code)

	rr = serve(r, jsonRequest(http.MethodPut, path, `{"newPassword":"n3w"}`))
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"message":"Password updated successfully"}`, rr.Body.String())

	stored, err := repo.GetByID(ctx, a.ID)
	require.NoError(t, err)
	assert.NotEqual(t, "old", stored.Password)
	assert.NotEqual(t, "n3w", stored.Password)
}

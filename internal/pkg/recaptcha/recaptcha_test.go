package recaptcha

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSiteVerify(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "shh", r.PostForm.Get("secret"))

		w.Header().Set("Content-Type", "application/json")
		switch r.PostForm.Get("response") {
		case "good":
			_, _ = w.Write([]byte(`{"success":true,"hostname":"example.com"}`))
		case "broken":
			w.WriteHeader(http.StatusBadGateway)
		default:
			_, _ = w.Write([]byte(`{"success":false,"error-codes":["invalid-input-response"]}`))
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestVerify(t *testing.T) {
	srv := newSiteVerify(t)
	c := New("shh", srv.URL, srv.Client())
	ctx := context.Background()

	assert.NoError(t, c.Verify(ctx, "good", "127.0.0.1"))

	err := c.Verify(ctx, "bad", "")
	assert.ErrorIs(t, err, ErrVerificationFailed)
	assert.Contains(t, err.Error(), "invalid-input-response")

	err = c.Verify(ctx, "broken", "")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrVerificationFailed)
}

func TestVerify_MissingTokenSkipsRequest(t *testing.T) {
	c := New("shh", "http://127.0.0.1:0", nil)
	assert.ErrorIs(t, c.Verify(context.Background(), "", ""), ErrVerificationFailed)
}

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func envOf(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func TestFromEnv_Defaults(t *testing.T) {
	cfg, err := FromEnv(envOf(map[string]string{"MEDIA_DRIVER": "memory"}))
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, "companyprofile.db", cfg.DatabaseURL)
	assert.Equal(t, time.Hour, cfg.JWTTTL)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.CORSOrigins)
	assert.Equal(t, int64(10<<20), cfg.MaxUploadSize)
	assert.Empty(t, cfg.Recaptcha.Secret)
	assert.Empty(t, cfg.Redis.Addr)
}

func TestFromEnv_PortFallback(t *testing.T) {
	cfg, err := FromEnv(envOf(map[string]string{"MEDIA_DRIVER": "memory", "PORT": "3001"}))
	require.NoError(t, err)
	assert.Equal(t, ":3001", cfg.HTTPAddr)
}

func TestFromEnv_ImageKitRequiresKeys(t *testing.T) {
	_, err := FromEnv(envOf(map[string]string{}))
	assert.ErrorContains(t, err, "IMAGEKIT_PRIVATE_KEY")

	cfg, err := FromEnv(envOf(map[string]string{
		"IMAGEKIT_PRIVATE_KEY":  "private_x",
		"IMAGEKIT_URL_ENDPOINT": "https://ik.imagekit.io/demo/",
	}))
	require.NoError(t, err)
	assert.Equal(t, "https://ik.imagekit.io/demo", cfg.Media.ImageKit.URLEndpoint)
}

func TestFromEnv_ProdRejectsDefaultSecret(t *testing.T) {
	_, err := FromEnv(envOf(map[string]string{
		"APP_ENV":            "production",
		"MEDIA_DRIVER":       "s3",
		"S3_BUCKET":          "assets",
		"S3_PUBLIC_BASE_URL": "https://cdn.example.com",
	}))
	assert.ErrorContains(t, err, "JWT_SECRET")
}

func TestFromEnv_InvalidValues(t *testing.T) {
	cases := map[string]map[string]string{
		"ttl":    {"MEDIA_DRIVER": "memory", "JWT_TTL": "soon"},
		"size":   {"MEDIA_DRIVER": "memory", "MAX_UPLOAD_SIZE": "big"},
		"driver": {"MEDIA_DRIVER": "ftp"},
		"redis":  {"MEDIA_DRIVER": "memory", "REDIS_DB": "x"},
	}
	for name, env := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := FromEnv(envOf(env))
			assert.Error(t, err)
		})
	}
}

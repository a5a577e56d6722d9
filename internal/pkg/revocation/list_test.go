package revocation

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"companyprofile/internal/config"
)

func TestMemory_RevokeUntilExpiry(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	m := NewMemory()
	m.now = func() time.Time { return now }

	require.NoError(t, m.Revoke(ctx, "a", now.Add(time.Hour)))

	revoked, err := m.IsRevoked(ctx, "a")
	require.NoError(t, err)
	assert.True(t, revoked)

	revoked, _ = m.IsRevoked(ctx, "b")
	assert.False(t, revoked)

	now = now.Add(2 * time.Hour)
	revoked, _ = m.IsRevoked(ctx, "a")
	assert.False(t, revoked, "entry should lapse with the token")
}

func TestMemory_PrunesExpired(t *testing.T) {
	ctx := context.Background()
	now := time.Now()
	m := NewMemory()
	m.now = func() time.Time { return now }

	require.NoError(t, m.Revoke(ctx, "old", now.Add(time.Minute)))
	require.NoError(t, m.Revoke(ctx, "past", now.Add(-time.Minute)))
	assert.Len(t, m.entries, 1)

	now = now.Add(time.Hour)
	require.NoError(t, m.Revoke(ctx, "new", now.Add(time.Minute)))
	assert.Len(t, m.entries, 1)
	assert.Contains(t, m.entries, "new")
}

func TestNewClient_Disabled(t *testing.T) {
	client, err := NewClient(context.Background(), config.RedisConfig{})
	require.NoError(t, err)
	assert.Nil(t, client)
}

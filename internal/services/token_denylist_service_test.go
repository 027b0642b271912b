package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDenylist(t *testing.T) {
	mr := setupTestRedis(t)
	ctx := context.Background()

	listed, err := IsDenylisted(ctx, "token-a")
	require.NoError(t, err)
	assert.False(t, listed)

	require.NoError(t, AddToDenylist(ctx, "token-a", time.Minute))
	listed, err = IsDenylisted(ctx, "token-a")
	require.NoError(t, err)
	assert.True(t, listed)

	mr.FastForward(2 * time.Minute)
	listed, err = IsDenylisted(ctx, "token-a")
	require.NoError(t, err)
	assert.False(t, listed)
}

func TestDenylistSkipsExpiredTokens(t *testing.T) {
	mr := setupTestRedis(t)

	require.NoError(t, AddToDenylist(context.Background(), "old", -time.Second))
	assert.False(t, mr.Exists(denylistPrefix+"old"))
}

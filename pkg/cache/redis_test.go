package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestRedis creates a test Redis client using miniredis
func setupTestRedis(t *testing.T) (*Client, *miniredis.Miniredis) {
	mr, err := miniredis.Run()
	require.NoError(t, err)

	redisClient := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})

	return &Client{Redis: redisClient}, mr
}

func TestClient_SetGet(t *testing.T) {
	client, mr := setupTestRedis(t)
	defer mr.Close()
	defer client.Close()

	ctx := context.Background()

	err := client.Set(ctx, "test:key1", "value1", 1*time.Hour)
	require.NoError(t, err)

	val, err := client.Get(ctx, "test:key1")
	require.NoError(t, err)
	assert.Equal(t, "value1", val)
}

func TestClient_SetNX(t *testing.T) {
	client, mr := setupTestRedis(t)
	defer mr.Close()
	defer client.Close()

	ctx := context.Background()

	// First set wins
	ok, err := client.SetNX(ctx, "send:1:2:3", "1", 1*time.Hour)
	require.NoError(t, err)
	assert.True(t, ok)

	// Second set is a no-op
	ok, err = client.SetNX(ctx, "send:1:2:3", "1", 1*time.Hour)
	require.NoError(t, err)
	assert.False(t, ok)

	// Different key is independent
	ok, err = client.SetNX(ctx, "send:1:2:4", "1", 1*time.Hour)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestClient_Delete(t *testing.T) {
	client, mr := setupTestRedis(t)
	defer mr.Close()
	defer client.Close()

	ctx := context.Background()

	_ = client.Set(ctx, "test:key1", "value1", 1*time.Hour)
	_ = client.Set(ctx, "test:key2", "value2", 1*time.Hour)

	err := client.Delete(ctx, "test:key1")
	require.NoError(t, err)

	_, err = client.Get(ctx, "test:key1")
	assert.Error(t, err) // redis.Nil

	val, err := client.Get(ctx, "test:key2")
	require.NoError(t, err)
	assert.Equal(t, "value2", val)
}

func TestClient_DeletePattern(t *testing.T) {
	client, mr := setupTestRedis(t)
	defer mr.Close()
	defer client.Close()

	ctx := context.Background()

	_ = client.Set(ctx, "campaigns:1:targets", "data1", 1*time.Hour)
	_ = client.Set(ctx, "campaigns:2:targets", "data2", 1*time.Hour)
	_ = client.Set(ctx, "leads:counts:1", "data3", 1*time.Hour)

	err := client.DeletePattern(ctx, "campaigns:*")
	require.NoError(t, err)

	_, err = client.Get(ctx, "campaigns:1:targets")
	assert.Error(t, err)
	_, err = client.Get(ctx, "campaigns:2:targets")
	assert.Error(t, err)

	val, err := client.Get(ctx, "leads:counts:1")
	require.NoError(t, err)
	assert.Equal(t, "data3", val)
}

func TestClient_Exists(t *testing.T) {
	client, mr := setupTestRedis(t)
	defer mr.Close()
	defer client.Close()

	ctx := context.Background()

	exists, err := client.Exists(ctx, "test:nonexistent")
	require.NoError(t, err)
	assert.False(t, exists)

	_ = client.Set(ctx, "test:key", "v", 1*time.Hour)

	exists, err = client.Exists(ctx, "test:key")
	require.NoError(t, err)
	assert.True(t, exists)
}

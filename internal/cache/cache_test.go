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

func newTestCache(t *testing.T) (*Client, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	client := NewWithClient(rdb, 300*time.Second)
	t.Cleanup(func() { client.Close() })

	return client, mr
}

func TestClient_SetGet(t *testing.T) {
	client, _ := newTestCache(t)
	ctx := context.Background()

	_, ok := client.Get(ctx, "job:1")
	assert.False(t, ok)

	client.Set(ctx, "job:1", `{"id":"1"}`)

	val, ok := client.Get(ctx, "job:1")
	require.True(t, ok)
	assert.Equal(t, `{"id":"1"}`, val)
}

func TestClient_EntriesExpire(t *testing.T) {
	client, mr := newTestCache(t)
	ctx := context.Background()

	client.Set(ctx, "job:1", "payload")

	ttl := mr.TTL("job:1")
	assert.Equal(t, 300*time.Second, ttl)

	mr.FastForward(301 * time.Second)

	_, ok := client.Get(ctx, "job:1")
	assert.False(t, ok)
}

func TestClient_Invalidate(t *testing.T) {
	client, _ := newTestCache(t)
	ctx := context.Background()

	client.Set(ctx, "job:1", "a")
	client.Set(ctx, "job:2", "b")

	client.Invalidate(ctx, "job:1")

	_, ok := client.Get(ctx, "job:1")
	assert.False(t, ok)
	_, ok = client.Get(ctx, "job:2")
	assert.True(t, ok)
}

func TestClient_InvalidatePattern(t *testing.T) {
	client, _ := newTestCache(t)
	ctx := context.Background()

	client.Set(ctx, "jobs:list:q=go&page=1", "a")
	client.Set(ctx, "jobs:list:q=rust&page=1", "b")
	client.Set(ctx, "job:1", "c")

	client.InvalidatePattern(ctx, "jobs:list:*")

	_, ok := client.Get(ctx, "jobs:list:q=go&page=1")
	assert.False(t, ok)
	_, ok = client.Get(ctx, "jobs:list:q=rust&page=1")
	assert.False(t, ok)
	_, ok = client.Get(ctx, "job:1")
	assert.True(t, ok)
}

// Падение backend'а не должно выходить наружу: Get превращается в промах,
// Set молча проглатывается
func TestClient_BackendDownDegradesToMiss(t *testing.T) {
	client, mr := newTestCache(t)
	ctx := context.Background()

	client.Set(ctx, "job:1", "payload")
	mr.Close()

	_, ok := client.Get(ctx, "job:1")
	assert.False(t, ok)

	// Не должно паниковать или возвращать ошибку
	client.Set(ctx, "job:2", "payload")
	client.Invalidate(ctx, "job:1")
}

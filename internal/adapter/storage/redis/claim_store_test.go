package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T) (*miniredis.Miniredis, *goredis.Client) {
	s := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: s.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return s, client
}

func TestClaimStore_Claim(t *testing.T) {
	_, client := newTestClient(t)
	store := NewClaimStore(client)
	ctx := context.Background()

	token, ok, err := store.Claim(ctx, "tx-1", 30*time.Second)
	require.NoError(t, err)
	assert.True(t, ok, "first claim wins")
	assert.NotEmpty(t, token)

	_, ok, err = store.Claim(ctx, "tx-1", 30*time.Second)
	require.NoError(t, err)
	assert.False(t, ok, "second claim loses")

	_, ok, err = store.Claim(ctx, "tx-2", 30*time.Second)
	require.NoError(t, err)
	assert.True(t, ok, "claims are per transaction")
}

func TestClaimStore_Release(t *testing.T) {
	s, client := newTestClient(t)
	store := NewClaimStore(client)
	ctx := context.Background()

	token, ok, err := store.Claim(ctx, "tx-1", time.Minute)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, time.Minute, s.TTL("reward:claim:tx-1"))

	require.NoError(t, store.Release(ctx, "tx-1", token))
	assert.False(t, s.Exists("reward:claim:tx-1"))

	_, ok, err = store.Claim(ctx, "tx-1", time.Minute)
	require.NoError(t, err)
	assert.True(t, ok, "released claim can be taken again")

	assert.NoError(t, store.Release(ctx, "never-claimed", "any-token"))
}

func TestClaimStore_ReleaseByFormerOwnerIsNoOp(t *testing.T) {
	s, client := newTestClient(t)
	store := NewClaimStore(client)
	ctx := context.Background()

	stale, ok, err := store.Claim(ctx, "tx-1", time.Second)
	require.NoError(t, err)
	require.True(t, ok)

	s.FastForward(2 * time.Second)
	current, ok, err := store.Claim(ctx, "tx-1", time.Minute)
	require.NoError(t, err)
	require.True(t, ok)

	require.NoError(t, store.Release(ctx, "tx-1", stale))
	held, err := s.Get("reward:claim:tx-1")
	require.NoError(t, err)
	assert.Equal(t, current, held, "the current holder keeps its claim")

	_, ok, err = store.Claim(ctx, "tx-1", time.Minute)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestClaimStore_Expiry(t *testing.T) {
	s, client := newTestClient(t)
	store := NewClaimStore(client)
	ctx := context.Background()

	_, ok, err := store.Claim(ctx, "tx-1", time.Second)
	require.NoError(t, err)
	require.True(t, ok)

	s.FastForward(2 * time.Second)

	_, ok, err = store.Claim(ctx, "tx-1", time.Second)
	require.NoError(t, err)
	assert.True(t, ok, "expired claim is free again")
}

func TestClaimStore_Unavailable(t *testing.T) {
	s, client := newTestClient(t)
	store := NewClaimStore(client)
	s.Close()

	_, _, err := store.Claim(context.Background(), "tx-1", time.Second)
	assert.ErrorContains(t, err, "redis claim")
	assert.ErrorContains(t, store.Release(context.Background(), "tx-1", "token"), "redis claim release")
}

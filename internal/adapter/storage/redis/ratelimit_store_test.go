package redis_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"cashback-rewards/internal/adapter/storage/redis"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRateLimitStore_Allow(t *testing.T) {
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	defer client.Close()

	store := redis.NewRateLimitStore(client)
	ctx := context.Background()

	t.Run("allows requests within limit", func(t *testing.T) {
		for i := int64(1); i <= 3; i++ {
			result, err := store.Allow(ctx, "valid-api-key-123:rewards", 3, time.Minute)
			require.NoError(t, err)
			assert.True(t, result.Allowed, "request %d should be allowed", i)
			assert.Equal(t, int64(3), result.Limit)
			assert.Equal(t, 3-i, result.Remaining)
		}
	})

	t.Run("blocks requests over limit", func(t *testing.T) {
		result, err := store.Allow(ctx, "valid-api-key-123:rewards", 3, time.Minute)
		require.NoError(t, err)
		assert.False(t, result.Allowed)
		assert.Equal(t, int64(0), result.Remaining)
	})

	t.Run("keys are independent", func(t *testing.T) {
		result, err := store.Allow(ctx, "10.0.0.1:rewards", 5, time.Minute)
		require.NoError(t, err)
		assert.True(t, result.Allowed)
		assert.Equal(t, int64(4), result.Remaining)
	})

	t.Run("first hit arms the window expiry", func(t *testing.T) {
		_, err := store.Allow(ctx, "expiring:rewards", 1, time.Minute)
		require.NoError(t, err)

		var key string
		for _, k := range mr.Keys() {
			if strings.HasPrefix(k, "ratelimit:expiring:rewards:") {
				key = k
			}
		}
		require.NotEmpty(t, key)
		assert.Equal(t, 61*time.Second, mr.TTL(key))

		mr.FastForward(30 * time.Second)
		_, err = store.Allow(ctx, "expiring:rewards", 1, time.Minute)
		require.NoError(t, err)
		assert.Equal(t, 31*time.Second, mr.TTL(key), "later hits do not extend the window")
	})

	t.Run("reset lies in the future", func(t *testing.T) {
		result, err := store.Allow(ctx, "reset:rewards", 10, time.Minute)
		require.NoError(t, err)
		assert.Greater(t, result.ResetAt, time.Now().Unix()-1)
	})
}

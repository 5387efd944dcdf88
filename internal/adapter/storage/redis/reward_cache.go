package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"cashback-rewards/internal/core/domain"

	goredis "github.com/redis/go-redis/v9"
)

// RewardCache implements ports.RewardCache using Redis.
// Only terminal rewards are cached since they never change.
type RewardCache struct {
	client *goredis.Client
	prefix string
}

// NewRewardCache creates a new Redis-backed reward cache.
func NewRewardCache(client *goredis.Client) *RewardCache {
	return &RewardCache{
		client: client,
		prefix: "reward:tx:",
	}
}

// Get returns the cached reward of a transaction, or nil, nil on a miss.
func (c *RewardCache) Get(ctx context.Context, transactionID string) (*domain.Reward, error) {
	val, err := c.client.Get(ctx, c.prefix+transactionID).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("redis reward get: %w", err)
	}

	var reward domain.Reward
	if err := json.Unmarshal(val, &reward); err != nil {
		return nil, fmt.Errorf("decode cached reward: %w", err)
	}
	return &reward, nil
}

// Set caches a terminal reward with TTL. Pending rewards are ignored.
func (c *RewardCache) Set(ctx context.Context, reward *domain.Reward, ttl time.Duration) error {
	if !reward.IsTerminal() {
		return nil
	}

	val, err := json.Marshal(reward)
	if err != nil {
		return fmt.Errorf("encode reward: %w", err)
	}
	if err := c.client.Set(ctx, c.prefix+reward.TransactionID, val, ttl).Err(); err != nil {
		return fmt.Errorf("redis reward set: %w", err)
	}
	return nil
}

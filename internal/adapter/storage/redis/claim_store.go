package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
)

// releaseIfOwner deletes the claim only while it still holds the caller's token.
var releaseIfOwner = goredis.NewScript(`
if redis.call('GET', KEYS[1]) == ARGV[1] then
	return redis.call('DEL', KEYS[1])
end
return 0
`)

// ClaimStore implements ports.ClaimStore using Redis SET NX. Each claim stores
// a random owner token; the TTL frees claims left behind by a crashed process.
type ClaimStore struct {
	client goredis.Cmdable
	prefix string
}

// NewClaimStore creates a new Redis-backed claim store.
func NewClaimStore(client goredis.Cmdable) *ClaimStore {
	return &ClaimStore{
		client: client,
		prefix: "reward:claim:",
	}
}

// Claim atomically takes the claim on a transaction.
// ok is false if another caller already holds it.
func (s *ClaimStore) Claim(ctx context.Context, transactionID string, ttl time.Duration) (string, bool, error) {
	token := uuid.NewString()
	result, err := s.client.SetArgs(ctx, s.prefix+transactionID, token, goredis.SetArgs{
		Mode: "NX",
		TTL:  ttl,
	}).Result()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("redis claim: %w", err)
	}
	if result != "OK" {
		return "", false, nil
	}
	return token, true, nil
}

// Release drops the claim on a transaction if token still owns it.
func (s *ClaimStore) Release(ctx context.Context, transactionID, token string) error {
	if err := releaseIfOwner.Run(ctx, s.client, []string{s.prefix + transactionID}, token).Err(); err != nil {
		return fmt.Errorf("redis claim release: %w", err)
	}
	return nil
}

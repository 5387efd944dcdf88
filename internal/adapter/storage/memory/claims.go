package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

type claim struct {
	token  string
	expiry time.Time
}

// ClaimStore implements ports.ClaimStore for a single process.
type ClaimStore struct {
	mu     sync.Mutex
	claims map[string]claim // transaction id -> holder
	now    func() time.Time
}

func NewClaimStore() *ClaimStore {
	return &ClaimStore{claims: make(map[string]claim), now: time.Now}
}

func (s *ClaimStore) Claim(_ context.Context, transactionID string, ttl time.Duration) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	if held, ok := s.claims[transactionID]; ok && now.Before(held.expiry) {
		return "", false, nil
	}
	token := uuid.NewString()
	s.claims[transactionID] = claim{token: token, expiry: now.Add(ttl)}
	return token, true, nil
}

// Release is a no-op when token no longer owns the claim.
func (s *ClaimStore) Release(_ context.Context, transactionID, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if held, ok := s.claims[transactionID]; ok && held.token == token {
		delete(s.claims, transactionID)
	}
	return nil
}

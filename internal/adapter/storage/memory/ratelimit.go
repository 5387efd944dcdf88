package memory

import (
	"context"
	"sync"
	"time"

	"cashback-rewards/internal/core/ports"
)

// RateLimiter implements ports.RateLimiter with fixed windows in process memory.
type RateLimiter struct {
	mu      sync.Mutex
	windows map[string]*window
	now     func() time.Time
}

type window struct {
	id    int64
	count int64
}

func NewRateLimiter() *RateLimiter {
	return &RateLimiter{windows: make(map[string]*window), now: time.Now}
}

func (l *RateLimiter) Allow(_ context.Context, key string, limit int64, size time.Duration) (*ports.RateLimitResult, error) {
	secs := int64(size.Seconds())
	if secs < 1 {
		secs = 1
	}
	id := l.now().Unix() / secs

	l.mu.Lock()
	w, ok := l.windows[key]
	if !ok || w.id != id {
		w = &window{id: id}
		l.windows[key] = w
	}
	w.count++
	count := w.count
	l.mu.Unlock()

	remaining := limit - count
	if remaining < 0 {
		remaining = 0
	}
	return &ports.RateLimitResult{
		Allowed:   count <= limit,
		Limit:     limit,
		Remaining: remaining,
		ResetAt:   (id + 1) * secs,
	}, nil
}

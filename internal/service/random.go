package service

import (
	"math/rand/v2"
	"sync"
	"time"
)

// PCGRandomSource implements ports.RandomSource with a seeded PCG generator.
// Safe for concurrent use.
type PCGRandomSource struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewPCGRandomSource creates a random source. A zero seed is replaced by the current time.
func NewPCGRandomSource(seed uint64) *PCGRandomSource {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return &PCGRandomSource{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// Float64 returns a uniform draw in [0,1).
func (s *PCGRandomSource) Float64() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Float64()
}

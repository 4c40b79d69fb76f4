package brace

import (
	"sync"

	"golang.org/x/time/rate"
)

// RateLimiterStore keeps one token bucket per brace: brace_id -> limiter.
type RateLimiterStore struct {
	limiters     map[string]*rate.Limiter
	mu           sync.Mutex
	defaultRate  rate.Limit
	defaultBurst int
}

func NewRateLimiterStore(defaultRate rate.Limit, defaultBurst int) *RateLimiterStore {
	return &RateLimiterStore{
		limiters:     make(map[string]*rate.Limiter),
		defaultRate:  defaultRate,
		defaultBurst: defaultBurst,
	}
}

func (s *RateLimiterStore) GetLimiter(braceID string) *rate.Limiter {
	s.mu.Lock()
	defer s.mu.Unlock()

	limiter, exists := s.limiters[braceID]
	if !exists {
		limiter = rate.NewLimiter(s.defaultRate, s.defaultBurst)
		s.limiters[braceID] = limiter
	}
	return limiter
}

// SetLimiter replaces the brace's bucket, tokens start full.
func (s *RateLimiterStore) SetLimiter(braceID string, braceRate rate.Limit, braceBurst int) error {
	if braceRate <= 0 || braceBurst <= 0 {
		return validationError("rate and burst must be positive")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.limiters[braceID] = rate.NewLimiter(braceRate, braceBurst)
	return nil
}

// Allow takes one token from the brace's bucket.
func (s *RateLimiterStore) Allow(braceID string) bool {
	return s.GetLimiter(braceID).Allow()
}

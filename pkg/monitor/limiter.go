package monitor

import (
	"sync"

	"golang.org/x/time/rate"
)

// RateLimiterStore throttles user-triggered actions per patient:
// patient_id -> rate limiter.
//
// Once WithPatients restricts the store to a known set, ids outside it share a
// single fallback limiter instead of growing the map.
type RateLimiterStore struct {
	limiters     map[string]*rate.Limiter
	mu           sync.Mutex
	defaultRate  rate.Limit
	defaultBurst int

	known    map[string]struct{}
	fallback *rate.Limiter
}

func NewRateLimiterStore(defaultRate rate.Limit, defaultBurst int) *RateLimiterStore {
	return &RateLimiterStore{
		limiters:     make(map[string]*rate.Limiter),
		defaultRate:  defaultRate,
		defaultBurst: defaultBurst,
	}
}

func (s *RateLimiterStore) WithPatients(patientIDs ...string) *RateLimiterStore {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.known = make(map[string]struct{}, len(patientIDs))
	for _, id := range patientIDs {
		s.known[id] = struct{}{}
	}
	s.fallback = rate.NewLimiter(s.defaultRate, s.defaultBurst)
	return s
}

func (s *RateLimiterStore) isKnownLocked(patientID string) bool {
	if s.known == nil {
		return true
	}
	_, ok := s.known[patientID]
	return ok
}

func (s *RateLimiterStore) GetLimiter(patientID string) *rate.Limiter {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.isKnownLocked(patientID) {
		return s.fallback
	}

	limiter, exists := s.limiters[patientID]
	if !exists {
		limiter = rate.NewLimiter(s.defaultRate, s.defaultBurst)
		s.limiters[patientID] = limiter
	}
	return limiter
}

// SetLimiter reports false when patientID is outside the known set.
func (s *RateLimiterStore) SetLimiter(patientID string, patientRate rate.Limit, patientBurst int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.isKnownLocked(patientID) {
		return false
	}
	s.limiters[patientID] = rate.NewLimiter(patientRate, patientBurst)
	return true
}

// Tracked is the number of patients holding their own limiter.
func (s *RateLimiterStore) Tracked() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.limiters)
}

// Allow is true when the store is nil, so callers can leave limiting unset.
func (s *RateLimiterStore) Allow(patientID string) bool {
	if s == nil {
		return true
	}
	return s.GetLimiter(patientID).Allow()
}

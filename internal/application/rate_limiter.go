package application

import (
	"fmt"
	"sync"
	"time"
)

type rateLimitEntry struct {
	count     int
	resetTime time.Time
}

// RateLimiter is a fixed-window limiter keyed by an arbitrary identifier
// (the public contact endpoint keys it by client IP).
type RateLimiter struct {
	limits map[string]*rateLimitEntry
	mu     sync.RWMutex
	window time.Duration
	limit  int
}

func NewRateLimiter(window time.Duration, limit int) *RateLimiter {
	rl := &RateLimiter{
		limits: make(map[string]*rateLimitEntry),
		window: window,
		limit:  limit,
	}
	go rl.cleanupLoop()
	return rl
}

// Allow reports whether one more request fits in the identifier's current
// window.
func (rl *RateLimiter) Allow(identifier string) (bool, error) {
	if identifier == "" {
		identifier = "anonymous"
	}

	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	entry, exists := rl.limits[identifier]

	if !exists || now.After(entry.resetTime) {
		rl.limits[identifier] = &rateLimitEntry{count: 1, resetTime: now.Add(rl.window)}
		return true, nil
	}

	if entry.count >= rl.limit {
		wait := entry.resetTime.Sub(now)
		return false, fmt.Errorf("rate limit exceeded, retry in %v", wait.Round(time.Second))
	}

	entry.count++
	return true, nil
}

// Remaining returns how many requests are left in the identifier's window.
func (rl *RateLimiter) Remaining(identifier string) int {
	if identifier == "" {
		identifier = "anonymous"
	}

	rl.mu.RLock()
	defer rl.mu.RUnlock()

	entry, exists := rl.limits[identifier]
	if !exists || time.Now().After(entry.resetTime) {
		return rl.limit
	}
	remaining := rl.limit - entry.count
	if remaining < 0 {
		return 0
	}
	return remaining
}

func (rl *RateLimiter) Reset(identifier string) {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	delete(rl.limits, identifier)
}

func (rl *RateLimiter) cleanupLoop() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		rl.cleanup()
	}
}

func (rl *RateLimiter) cleanup() {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	for key, entry := range rl.limits {
		if now.After(entry.resetTime) {
			delete(rl.limits, key)
		}
	}
}

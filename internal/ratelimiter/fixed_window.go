package ratelimiter

import (
	"sync"
	"time"
)

type Config struct {
	RequestsPerTimeFrame int
	TimeFrame            time.Duration
	Enabled              bool
}

// FixedWindowRateLimiter counts requests per client IP inside a fixed
// window. Counters reset when the window rolls over.
type FixedWindowRateLimiter struct {
	mu     sync.Mutex
	hits   map[string]int
	limit  int
	window time.Duration
	reset  time.Time
}

func NewFixedWindowLimiter(limit int, window time.Duration) *FixedWindowRateLimiter {
	return &FixedWindowRateLimiter{
		hits:   make(map[string]int),
		limit:  limit,
		window: window,
		reset:  time.Now().Add(window),
	}
}

// Allow reports whether the request may proceed; when it may not, it also
// returns how long the caller should wait before retrying.
func (rl *FixedWindowRateLimiter) Allow(ip string) (bool, time.Duration) {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	if now.After(rl.reset) {
		rl.hits = make(map[string]int)
		rl.reset = now.Add(rl.window)
	}

	if rl.hits[ip] >= rl.limit {
		return false, time.Until(rl.reset)
	}

	rl.hits[ip]++
	return true, 0
}

package http

import (
	"sync"

	"golang.org/x/time/rate"
)

// ClientLimiter provides per-client rate limiting using token buckets.
// Each client key (usually the remote IP) gets its own limiter so one busy
// client cannot starve the others.
type ClientLimiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	rps      float64
	burst    int
	max      int
}

// DefaultMaxClients bounds the number of tracked clients. When the bound is
// reached the table is reset.
const DefaultMaxClients = 10000

// NewClientLimiter creates a new ClientLimiter allowing rps requests per
// second per client with the given burst. A burst below 1 is treated as 1.
func NewClientLimiter(rps float64, burst int) *ClientLimiter {
	if burst < 1 {
		burst = 1
	}
	return &ClientLimiter{
		limiters: make(map[string]*rate.Limiter),
		rps:      rps,
		burst:    burst,
		max:      DefaultMaxClients,
	}
}

// Allow reports whether a request from the client may proceed now.
func (l *ClientLimiter) Allow(client string) bool {
	l.mu.Lock()
	limiter, ok := l.limiters[client]
	if !ok {
		if len(l.limiters) >= l.max {
			clear(l.limiters)
		}
		limiter = rate.NewLimiter(rate.Limit(l.rps), l.burst)
		l.limiters[client] = limiter
	}
	l.mu.Unlock()

	return limiter.Allow()
}

package signal

import (
	"sync"

	"github.com/dkeye/rooms/internal/domain"
	"golang.org/x/time/rate"
)

// RateLimiter throttles requests per participant with a token bucket.
type RateLimiter struct {
	mu       sync.Mutex
	limiters map[domain.ParticipantID]*rate.Limiter
	limit    rate.Limit
	burst    int
}

// NewRateLimiter allows perSecond requests with the given burst. A
// non-positive perSecond disables limiting.
func NewRateLimiter(perSecond float64, burst int) *RateLimiter {
	limit := rate.Limit(perSecond)
	if perSecond <= 0 {
		limit = rate.Inf
	}
	if burst <= 0 {
		burst = 1
	}
	return &RateLimiter{
		limiters: make(map[domain.ParticipantID]*rate.Limiter),
		limit:    limit,
		burst:    burst,
	}
}

func (rl *RateLimiter) Allow(pid domain.ParticipantID) bool {
	rl.mu.Lock()
	l, ok := rl.limiters[pid]
	if !ok {
		l = rate.NewLimiter(rl.limit, rl.burst)
		rl.limiters[pid] = l
	}
	rl.mu.Unlock()
	return l.Allow()
}

func (rl *RateLimiter) Forget(pid domain.ParticipantID) {
	rl.mu.Lock()
	delete(rl.limiters, pid)
	rl.mu.Unlock()
}

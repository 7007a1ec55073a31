package api

import (
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/time/rate"
)

const visitorIdleTimeout = 3 * time.Minute

// ipRateLimiter keeps one token bucket per client IP.
type ipRateLimiter struct {
	mu       sync.Mutex
	visitors map[string]*visitor
	limit    rate.Limit
	burst    int
}

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

func newIPRateLimiter(limit rate.Limit, burst int) *ipRateLimiter {
	return &ipRateLimiter{
		visitors: make(map[string]*visitor),
		limit:    limit,
		burst:    burst,
	}
}

func (limiter *ipRateLimiter) limiterFor(key string, now time.Time) *rate.Limiter {
	limiter.mu.Lock()
	defer limiter.mu.Unlock()

	current, ok := limiter.visitors[key]
	if !ok {
		current = &visitor{limiter: rate.NewLimiter(limiter.limit, limiter.burst)}
		limiter.visitors[key] = current
	}
	current.lastSeen = now
	return current.limiter
}

func (limiter *ipRateLimiter) cleanup(now time.Time) {
	limiter.mu.Lock()
	defer limiter.mu.Unlock()

	for key, current := range limiter.visitors {
		if now.Sub(current.lastSeen) > visitorIdleTimeout {
			delete(limiter.visitors, key)
		}
	}
}

func (limiter *ipRateLimiter) run(stop <-chan struct{}) {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()
	for {
		select {
		case <-stop:
			return
		case now := <-ticker.C:
			limiter.cleanup(now)
		}
	}
}

// RateLimit returns middleware allowing perSecond requests per client IP with the given burst.
// Idle visitors are dropped until stop is closed.
func RateLimit(perSecond float64, burst int, stop <-chan struct{}) fiber.Handler {
	limiter := newIPRateLimiter(rate.Limit(perSecond), burst)
	if stop != nil {
		go limiter.run(stop)
	}
	return func(c *fiber.Ctx) error {
		if !limiter.limiterFor(requestLimiterKey(c), time.Now()).Allow() {
			return apiError(c, fiber.StatusTooManyRequests, "too many requests")
		}
		return c.Next()
	}
}

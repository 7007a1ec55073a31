package api

import (
	"strings"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
)

// attemptPolicy caps failed attempts per key within a sliding window.
type attemptPolicy struct {
	limit  int
	window time.Duration
}

var (
	loginAttemptPolicy           = attemptPolicy{limit: 8, window: 15 * time.Minute}
	clinicianUnlockAttemptPolicy = attemptPolicy{limit: 5, window: 15 * time.Minute}
)

// attemptLimiter counts failures against every key a request is known by,
// so a patient ID under attack stays locked when the client switches address.
type attemptLimiter struct {
	policy attemptPolicy

	mu       sync.Mutex
	failures map[string][]time.Time
}

func newAttemptLimiter(policy attemptPolicy) *attemptLimiter {
	return &attemptLimiter{
		policy:   policy,
		failures: make(map[string][]time.Time),
	}
}

// blocked reports whether any of the keys has used up its failures.
func (limiter *attemptLimiter) blocked(now time.Time, keys ...string) bool {
	limiter.mu.Lock()
	defer limiter.mu.Unlock()

	for _, key := range keys {
		if len(limiter.recentLocked(key, now)) >= limiter.policy.limit {
			return true
		}
	}
	return false
}

func (limiter *attemptLimiter) recordFailure(now time.Time, keys ...string) {
	limiter.mu.Lock()
	defer limiter.mu.Unlock()

	for _, key := range keys {
		limiter.failures[key] = append(limiter.recentLocked(key, now), now)
	}
}

func (limiter *attemptLimiter) clear(keys ...string) {
	limiter.mu.Lock()
	defer limiter.mu.Unlock()

	for _, key := range keys {
		delete(limiter.failures, key)
	}
}

func (limiter *attemptLimiter) recentLocked(key string, now time.Time) []time.Time {
	threshold := now.Add(-limiter.policy.window)
	recent := limiter.failures[key][:0]
	for _, failedAt := range limiter.failures[key] {
		if failedAt.After(threshold) {
			recent = append(recent, failedAt)
		}
	}
	if len(recent) == 0 {
		delete(limiter.failures, key)
		return nil
	}
	limiter.failures[key] = recent
	return recent
}

// attemptKeys names a request by client address and, when known, by patient ID.
func attemptKeys(c *fiber.Ctx, userID string) []string {
	keys := []string{"ip:" + requestLimiterKey(c)}
	if userID = strings.TrimSpace(userID); userID != "" {
		keys = append(keys, "user:"+userID)
	}
	return keys
}

func requestLimiterKey(c *fiber.Ctx) string {
	key := strings.TrimSpace(c.IP())
	if key == "" {
		return "unknown"
	}
	return key
}

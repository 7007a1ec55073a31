package api

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
)

func TestRateLimitRejectsBurst(t *testing.T) {
	t.Parallel()

	app := fiber.New()
	app.Use(RateLimit(0.001, 2, nil))
	app.Get("/ping", func(c *fiber.Ctx) error {
		return c.SendString("pong")
	})

	statuses := make([]int, 0, 3)
	for range 3 {
		response, err := app.Test(httptest.NewRequest(http.MethodGet, "/ping", nil), -1)
		if err != nil {
			t.Fatalf("request failed: %v", err)
		}
		statuses = append(statuses, response.StatusCode)
		_ = response.Body.Close()
	}

	if statuses[0] != http.StatusOK || statuses[1] != http.StatusOK || statuses[2] != http.StatusTooManyRequests {
		t.Fatalf("unexpected statuses %v", statuses)
	}
}

func TestIPRateLimiterCleanupDropsIdleVisitors(t *testing.T) {
	t.Parallel()

	limiter := newIPRateLimiter(1, 1)
	now := time.Now()
	limiter.limiterFor("10.0.0.1", now.Add(-10*time.Minute))
	limiter.limiterFor("10.0.0.2", now)

	limiter.cleanup(now)

	if _, ok := limiter.visitors["10.0.0.1"]; ok {
		t.Fatal("expected idle visitor to be removed")
	}
	if _, ok := limiter.visitors["10.0.0.2"]; !ok {
		t.Fatal("expected active visitor to remain")
	}
}

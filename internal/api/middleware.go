// internal/api/middleware.go
package api

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

// The API runs three rate-limit tiers: posting chat messages and swiping
// the matching deck get their own budgets, everything else shares the
// default tier. Limiting is fixed-window per client key.
type rateTier struct {
	name   string
	limit  int
	window time.Duration
}

var (
	defaultTier = rateTier{name: "default", limit: 100, window: time.Minute}
	// each post triggers a simulated reply, so chat is the tightest tier
	chatTier = rateTier{name: "chat", limit: 30, window: time.Minute}
	// swiping is bursty by nature
	swipeTier = rateTier{name: "swipe", limit: 60, window: time.Minute}
)

// quota tracks one client key inside its current window.
type quota struct {
	remaining int
	reset     time.Time
}

// RateLimiter is a fixed-window limiter shared by all tiers. Keys are
// prefixed with the tier name so the budgets stay independent.
type RateLimiter struct {
	mu     sync.Mutex
	quotas map[string]*quota
}

// NewRateLimiter creates a limiter and starts its hourly sweep of
// expired windows.
func NewRateLimiter() *RateLimiter {
	rl := &RateLimiter{quotas: make(map[string]*quota)}
	go rl.sweep()
	return rl
}

func (rl *RateLimiter) sweep() {
	ticker := time.NewTicker(time.Hour)
	defer ticker.Stop()

	for range ticker.C {
		rl.mu.Lock()
		now := time.Now()
		for key, q := range rl.quotas {
			if now.After(q.reset) {
				delete(rl.quotas, key)
			}
		}
		rl.mu.Unlock()
	}
}

// Take consumes one request from the key's window. It reports whether
// the request is allowed, how much budget remains and when the window
// resets.
func (rl *RateLimiter) Take(key string, limit int, window time.Duration) (bool, int, time.Time) {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	q, ok := rl.quotas[key]
	if !ok || now.After(q.reset) {
		q = &quota{remaining: limit, reset: now.Add(window)}
		rl.quotas[key] = q
	}

	if q.remaining <= 0 {
		return false, 0, q.reset
	}
	q.remaining--
	return true, q.remaining, q.reset
}

var rateLimiter = NewRateLimiter()

// clientKey identifies the caller. The demo ships without auth, so an
// X-User-ID header wins and the client IP is the fallback.
func clientKey(c *gin.Context) string {
	if userID := c.GetHeader("X-User-ID"); userID != "" {
		return userID
	}
	return c.ClientIP()
}

// rateLimit enforces one tier and exposes the usual X-RateLimit headers.
func rateLimit(tier rateTier) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := tier.name + ":" + clientKey(c)
		allowed, remaining, reset := rateLimiter.Take(key, tier.limit, tier.window)

		c.Header("X-RateLimit-Limit", strconv.Itoa(tier.limit))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(remaining))
		c.Header("X-RateLimit-Reset", strconv.FormatInt(reset.Unix(), 10))

		if !allowed {
			c.JSON(http.StatusTooManyRequests, gin.H{
				"success":   false,
				"error":     "Rate limit exceeded",
				"code":      ErrorRateLimited,
				"timestamp": time.Now().Format(time.RFC3339),
			})
			c.Abort()
			return
		}

		c.Next()
	}
}

// DefaultRateLimit covers the bulk of the API.
func DefaultRateLimit() gin.HandlerFunc {
	return rateLimit(defaultTier)
}

// ChatRateLimit covers message posting.
func ChatRateLimit() gin.HandlerFunc {
	return rateLimit(chatTier)
}

// SwipeRateLimit covers the matching deck.
func SwipeRateLimit() gin.HandlerFunc {
	return rateLimit(swipeTier)
}

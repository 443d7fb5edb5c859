package middleware

import (
	"net/http"
	"sync"
	"time"

	apperrors "crm-backend/internal/errors"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

const (
	limiterIdleTTL       = 5 * time.Minute
	limiterSweepInterval = time.Minute
)

type bucket struct {
	lim  *rate.Limiter
	seen time.Time
}

// RateLimiter is a token bucket per client IP
type RateLimiter struct {
	perSecond rate.Limit
	burst     int
	now       func() time.Time

	mu        sync.Mutex
	buckets   map[string]*bucket
	lastSweep time.Time
}

// NewRateLimiter allows perSecond requests per client with bursts of burst
func NewRateLimiter(perSecond float64, burst int) *RateLimiter {
	return &RateLimiter{
		perSecond: rate.Limit(perSecond),
		burst:     burst,
		now:       time.Now,
		buckets:   make(map[string]*bucket),
	}
}

// Allow consumes a token for key
func (l *RateLimiter) Allow(key string) bool {
	now := l.now()
	l.mu.Lock()
	defer l.mu.Unlock()

	if now.Sub(l.lastSweep) > limiterSweepInterval {
		for k, b := range l.buckets {
			if now.Sub(b.seen) > limiterIdleTTL {
				delete(l.buckets, k)
			}
		}
		l.lastSweep = now
	}

	b, ok := l.buckets[key]
	if !ok {
		b = &bucket{lim: rate.NewLimiter(l.perSecond, l.burst)}
		l.buckets[key] = b
	}
	b.seen = now
	return b.lim.AllowN(now, 1)
}

// Middleware rejects clients that exceed their budget with 429
func (l *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := c.ClientIP()
		if ip == "" {
			ip = "unknown"
		}
		if !l.Allow(ip) {
			c.Header("Retry-After", "1")
			abortWithError(c, http.StatusTooManyRequests, apperrors.KindRateLimited, "Too many requests. Try again shortly.")
			return
		}
		c.Next()
	}
}

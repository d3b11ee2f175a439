package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"venue-deals/internal/handler/httperr"
	"venue-deals/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

var errRateLimited = errors.New("rate limit exceeded")

type sourceLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter keeps one token bucket per client source. Buckets idle for
// longer than the eviction window are dropped on the next sweep.
type RateLimiter struct {
	mu        sync.Mutex
	sources   map[string]*sourceLimiter
	limit     rate.Limit
	burst     int
	idleAfter time.Duration
	lastSweep time.Time
	now       func() time.Time
}

func NewRateLimiter(cfg config.RateLimitConfig) *RateLimiter {
	limit := rate.Limit(cfg.RatePerMinute / 60)
	if cfg.RatePerMinute <= 0 {
		limit = rate.Inf
	}
	burst := cfg.Burst
	if burst <= 0 {
		burst = 1
	}
	idle := cfg.IdleEvictAfter
	if idle <= 0 {
		idle = 10 * time.Minute
	}
	return &RateLimiter{
		sources:   make(map[string]*sourceLimiter),
		limit:     limit,
		burst:     burst,
		idleAfter: idle,
		now:       time.Now,
	}
}

func (r *RateLimiter) Allow(source string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	r.sweep(now)

	s, ok := r.sources[source]
	if !ok {
		s = &sourceLimiter{limiter: rate.NewLimiter(r.limit, r.burst)}
		r.sources[source] = s
	}
	s.lastSeen = now
	return s.limiter.AllowN(now, 1)
}

// Len reports the number of tracked sources.
func (r *RateLimiter) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sources)
}

func (r *RateLimiter) sweep(now time.Time) {
	if now.Sub(r.lastSweep) < r.idleAfter {
		return
	}
	for key, s := range r.sources {
		if now.Sub(s.lastSeen) >= r.idleAfter {
			delete(r.sources, key)
		}
	}
	r.lastSweep = now
}

// Middleware rejects requests from sources that exhausted their bucket.
func (r *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		source := c.ClientIP()
		if !r.Allow(source) {
			slog.Warn("engagement rate limit exceeded", "source", source, "path", c.Request.URL.Path)
			c.Header("Retry-After", "60")
			httperr.AbortWithError(c, http.StatusTooManyRequests, errRateLimited, "Too many requests", nil)
			return
		}
		c.Next()
	}
}

package utility

import (
	"net/http"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"
)

const (
	maxTrackedIPs = 10000
	limiterIdle   = 15 * time.Minute
)

// IPRateLimiter hands out one token bucket per client IP. Buckets of IPs that
// stay idle are dropped.
type IPRateLimiter struct {
	mu       sync.Mutex
	limiters *expirable.LRU[string, *rate.Limiter]
	limit    rate.Limit
	burst    int
}

// NewIPRateLimiter allows perMinute requests per IP, with bursts of the same size.
// perMinute <= 0 disables limiting.
func NewIPRateLimiter(perMinute int) *IPRateLimiter {
	limit := rate.Inf
	burst := 0
	if perMinute > 0 {
		limit = rate.Every(time.Minute / time.Duration(perMinute))
		burst = perMinute
	}
	return &IPRateLimiter{
		limiters: expirable.NewLRU[string, *rate.Limiter](maxTrackedIPs, nil, limiterIdle),
		limit:    limit,
		burst:    burst,
	}
}

// Allow reports whether ip may make a request now.
func (l *IPRateLimiter) Allow(ip string) bool {
	if l.limit == rate.Inf {
		return true
	}

	l.mu.Lock()
	lim, ok := l.limiters.Get(ip)
	if !ok {
		lim = rate.NewLimiter(l.limit, l.burst)
	}
	l.limiters.Add(ip, lim)
	l.mu.Unlock()

	return lim.Allow()
}

// Middleware rejects requests over the limit with 429. The client address is
// c.RealIP, so the echo IPExtractor decides which proxy headers are trusted.
func (l *IPRateLimiter) Middleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		ip := c.RealIP()
		if !l.Allow(ip) {
			log.Warn().Str("ip", ip).Str("path", c.Path()).Msg("Rate limit exceeded")
			return c.JSON(http.StatusTooManyRequests, map[string]string{"error": "too many attempts, please try again later"})
		}
		return next(c)
	}
}

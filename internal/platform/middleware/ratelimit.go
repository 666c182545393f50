package middleware

import (
	"math"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/labstack/echo/v4"
)

// RateLimitConfig sets the sustained rate and burst headroom applied per
// client IP. Search fan-out is the expensive path here, so the defaults are
// generous enough for a browsing session but cap scripted scraping.
type RateLimitConfig struct {
	RequestsPerSecond float64
	BurstSize         int
}

func DefaultRateLimitConfig() RateLimitConfig {
	return RateLimitConfig{
		RequestsPerSecond: 100,
		BurstSize:         200,
	}
}

// tokenBucket refills continuously from the elapsed wall-clock time instead
// of on a ticker, so idle buckets cost nothing.
type tokenBucket struct {
	mu         sync.Mutex
	tokens     float64
	capacity   float64
	perSecond  float64
	lastRefill time.Time
}

func newTokenBucket(cfg RateLimitConfig) *tokenBucket {
	return &tokenBucket{
		tokens:     float64(cfg.BurstSize),
		capacity:   float64(cfg.BurstSize),
		perSecond:  cfg.RequestsPerSecond,
		lastRefill: time.Now(),
	}
}

// take spends one token if available and otherwise reports how many whole
// seconds until the next token accrues, for the Retry-After header.
func (b *tokenBucket) take() (ok bool, retryAfter int) {
	b.mu.Lock()
	defer b.mu.Unlock()

	now := time.Now()
	b.tokens += now.Sub(b.lastRefill).Seconds() * b.perSecond
	if b.tokens > b.capacity {
		b.tokens = b.capacity
	}
	b.lastRefill = now

	if b.tokens >= 1 {
		b.tokens--
		return true, 0
	}
	if b.perSecond <= 0 {
		return false, 1
	}
	return false, int(math.Ceil((1 - b.tokens) / b.perSecond))
}

// bucketPool lazily creates one bucket per client IP.
type bucketPool struct {
	mu      sync.RWMutex
	buckets map[string]*tokenBucket
	cfg     RateLimitConfig
}

func newBucketPool(cfg RateLimitConfig) *bucketPool {
	return &bucketPool{
		buckets: make(map[string]*tokenBucket),
		cfg:     cfg,
	}
}

func (p *bucketPool) bucketFor(key string) *tokenBucket {
	p.mu.RLock()
	b, ok := p.buckets[key]
	p.mu.RUnlock()
	if ok {
		return b
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if b, ok := p.buckets[key]; ok {
		return b
	}
	b = newTokenBucket(p.cfg)
	p.buckets[key] = b
	return b
}

// RateLimit throttles requests per client IP, answering 429 with a
// Retry-After when a bucket runs dry.
func RateLimit(cfg RateLimitConfig) echo.MiddlewareFunc {
	pool := newBucketPool(cfg)
	limit := strconv.FormatFloat(cfg.RequestsPerSecond, 'f', 0, 64)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ok, retryAfter := pool.bucketFor(c.RealIP()).take()
			c.Response().Header().Set("X-RateLimit-Limit", limit)
			if !ok {
				c.Response().Header().Set("Retry-After", strconv.Itoa(retryAfter))
				c.Response().Header().Set("X-RateLimit-Remaining", "0")
				return echo.NewHTTPError(http.StatusTooManyRequests, "rate limit exceeded")
			}
			return next(c)
		}
	}
}

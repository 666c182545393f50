package middleware

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/labstack/echo/v4"
)

func rateLimitedHandler(cfg RateLimitConfig) (*echo.Echo, echo.HandlerFunc) {
	e := echo.New()
	h := RateLimit(cfg)(func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})
	return e, h
}

func TestRateLimit_WithinBurst(t *testing.T) {
	e, handler := rateLimitedHandler(RateLimitConfig{RequestsPerSecond: 10, BurstSize: 5})

	for i := 0; i < 5; i++ {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		if err := handler(c); err != nil {
			t.Fatalf("request %d: unexpected error: %v", i+1, err)
		}
		if rec.Code != http.StatusOK {
			t.Fatalf("request %d: expected 200, got %d", i+1, rec.Code)
		}
		if got := rec.Header().Get("X-RateLimit-Limit"); got != "10" {
			t.Errorf("request %d: expected X-RateLimit-Limit 10, got %q", i+1, got)
		}
	}
}

func TestRateLimit_ExhaustedBucket(t *testing.T) {
	e, handler := rateLimitedHandler(RateLimitConfig{RequestsPerSecond: 1, BurstSize: 2})

	for i := 0; i < 2; i++ {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		if err := handler(c); err != nil {
			t.Fatalf("request %d: unexpected error: %v", i+1, err)
		}
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429 HTTPError, got %v", err)
	}

	retryAfter, parseErr := strconv.Atoi(rec.Header().Get("Retry-After"))
	if parseErr != nil {
		t.Fatalf("Retry-After is not an integer: %q", rec.Header().Get("Retry-After"))
	}
	if retryAfter < 1 {
		t.Errorf("expected Retry-After >= 1, got %d", retryAfter)
	}
	if got := rec.Header().Get("X-RateLimit-Remaining"); got != "0" {
		t.Errorf("expected X-RateLimit-Remaining 0, got %q", got)
	}
}

func TestRateLimit_PerClientIsolation(t *testing.T) {
	e, handler := rateLimitedHandler(RateLimitConfig{RequestsPerSecond: 1, BurstSize: 1})

	do := func(ip string) error {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("X-Real-IP", ip)
		rec := httptest.NewRecorder()
		return handler(e.NewContext(req, rec))
	}

	if err := do("10.0.0.1"); err != nil {
		t.Fatalf("client A first request: unexpected error: %v", err)
	}
	if err := do("10.0.0.1"); err == nil {
		t.Fatal("client A second request: expected rate limit error")
	}
	// A different client gets its own bucket.
	if err := do("10.0.0.2"); err != nil {
		t.Fatalf("client B first request: unexpected error: %v", err)
	}
}

func TestTokenBucket_ZeroRate(t *testing.T) {
	b := newTokenBucket(RateLimitConfig{RequestsPerSecond: 0, BurstSize: 1})

	if ok, _ := b.take(); !ok {
		t.Fatal("expected the single burst token to be granted")
	}
	ok, retryAfter := b.take()
	if ok {
		t.Fatal("expected empty bucket with zero refill to refuse")
	}
	if retryAfter != 1 {
		t.Errorf("expected retry-after 1 for zero rate, got %d", retryAfter)
	}
}

func TestBucketPool_ReusesBuckets(t *testing.T) {
	pool := newBucketPool(RateLimitConfig{RequestsPerSecond: 10, BurstSize: 5})

	a := pool.bucketFor("10.0.0.1")
	if a == nil {
		t.Fatal("expected a bucket")
	}
	if pool.bucketFor("10.0.0.1") != a {
		t.Error("expected the same bucket for the same client")
	}
	if pool.bucketFor("10.0.0.2") == a {
		t.Error("expected a separate bucket for a different client")
	}
}

func TestDefaultRateLimitConfig(t *testing.T) {
	cfg := DefaultRateLimitConfig()
	if cfg.RequestsPerSecond != 100 {
		t.Errorf("expected RequestsPerSecond 100, got %f", cfg.RequestsPerSecond)
	}
	if cfg.BurstSize != 200 {
		t.Errorf("expected BurstSize 200, got %d", cfg.BurstSize)
	}
}

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

func TestRateLimiterAllowRefills(t *testing.T) {
	now := time.Unix(0, 0)
	limiter := NewRateLimiter(func() time.Time { return now })
	rule := RateLimitRule{Rate: 1, Burst: 2}

	for i := 0; i < 2; i++ {
		if ok, _ := limiter.Allow("k", rule); !ok {
			t.Fatalf("burst request %d denied", i)
		}
	}
	if ok, retry := limiter.Allow("k", rule); ok || retry <= 0 {
		t.Fatalf("expected denial with retry hint, got ok=%v retry=%v", ok, retry)
	}

	now = now.Add(time.Second)
	if ok, _ := limiter.Allow("k", rule); !ok {
		t.Fatal("token should refill after a second")
	}
}

func TestRateLimitMiddlewareThrottlesGroup(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Identity())
	r.Use(RateLimit(RateLimitConfig{
		Rules: map[string]RateLimitRule{
			"AI": {Rate: 0.001, Burst: 1},
		},
		GroupFor: func(c *gin.Context) string {
			if c.FullPath() == "/analyze" {
				return "AI"
			}
			return ""
		},
	}))
	r.POST("/analyze", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/history", func(c *gin.Context) { c.Status(http.StatusOK) })

	do := func(method, path string) int {
		req := httptest.NewRequest(method, path, nil)
		req.Header.Set("X-User-Id", "u1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w.Code
	}

	if code := do(http.MethodPost, "/analyze"); code != http.StatusOK {
		t.Fatalf("first call = %d", code)
	}
	if code := do(http.MethodPost, "/analyze"); code != http.StatusTooManyRequests {
		t.Fatalf("second call = %d, want 429", code)
	}
	// Unmetered route is unaffected.
	if code := do(http.MethodGet, "/history"); code != http.StatusOK {
		t.Fatalf("history call = %d", code)
	}
}

func TestRateLimitKeysByUser(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Identity())
	r.Use(RateLimit(RateLimitConfig{
		Rules:        map[string]RateLimitRule{"DEFAULT": {Rate: 0.001, Burst: 1}},
		DefaultGroup: "DEFAULT",
	}))
	r.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

	do := func(user string) int {
		req := httptest.NewRequest(http.MethodGet, "/x", nil)
		req.Header.Set("X-User-Id", user)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w.Code
	}

	if code := do("u1"); code != http.StatusOK {
		t.Fatalf("u1 first = %d", code)
	}
	if code := do("u1"); code != http.StatusTooManyRequests {
		t.Fatalf("u1 second = %d", code)
	}
	if code := do("u2"); code != http.StatusOK {
		t.Fatalf("u2 should have its own bucket, got %d", code)
	}
}

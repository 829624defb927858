//go:build unit
// +build unit

package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/openmerch/commerce-api/internal/pkg/config"
	"github.com/openmerch/commerce-api/internal/pkg/testutil"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeCounter counts in memory and can be forced to fail.
type fakeCounter struct {
	counts map[string]int64
	window time.Duration
	fail   bool
}

func newFakeCounter() *fakeCounter {
	return &fakeCounter{counts: map[string]int64{}, window: 30 * time.Second}
}

func (c *fakeCounter) Increment(_ context.Context, key string, _ time.Duration) (int64, time.Duration, error) {
	if c.fail {
		return 0, 0, errors.New("connection refused")
	}
	c.counts[key]++
	return c.counts[key], c.window, nil
}

func setupRouter(handler gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(handler)
	r.GET("/ping", func(ctx *gin.Context) {
		ctx.String(http.StatusOK, "pong")
	})
	return r
}

func TestRequestID_MintsID(t *testing.T) {
	r := setupRouter(RequestID())

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/ping", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get(RequestIDHeader))
}

func TestRequestID_PropagatesIncomingID(t *testing.T) {
	r := setupRouter(RequestID())

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/ping", nil)
	req.Header.Set(RequestIDHeader, "req-42")
	r.ServeHTTP(w, req)

	assert.Equal(t, "req-42", w.Header().Get(RequestIDHeader))
}

func TestRateLimit_UnderLimit(t *testing.T) {
	log := testutil.SetupTestLogger(t)
	settings := config.RateLimitSettings{Enabled: true, Requests: 3, WindowSeconds: 30}
	r := setupRouter(RateLimit(newFakeCounter(), settings, log))

	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/ping", nil)
		r.ServeHTTP(w, req)
		require.Equal(t, http.StatusOK, w.Code)
	}
}

func TestRateLimit_OverLimit(t *testing.T) {
	log := testutil.SetupTestLogger(t)
	settings := config.RateLimitSettings{Enabled: true, Requests: 2, WindowSeconds: 30}
	r := setupRouter(RateLimit(newFakeCounter(), settings, log))

	var w *httptest.ResponseRecorder
	for i := 0; i < 3; i++ {
		w = httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/ping", nil)
		r.ServeHTTP(w, req)
	}

	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "30", w.Header().Get("Retry-After"))
	assert.Contains(t, w.Body.String(), "rate limit exceeded")
}

func TestRateLimit_FailsOpenOnCounterError(t *testing.T) {
	log := testutil.SetupTestLogger(t)
	counter := newFakeCounter()
	counter.fail = true
	settings := config.RateLimitSettings{Enabled: true, Requests: 1, WindowSeconds: 30}
	r := setupRouter(RateLimit(counter, settings, log))

	for i := 0; i < 5; i++ {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/ping", nil)
		r.ServeHTTP(w, req)
		require.Equal(t, http.StatusOK, w.Code)
	}
}

func TestRateLimit_DisabledPassesThrough(t *testing.T) {
	log := testutil.SetupTestLogger(t)
	counter := newFakeCounter()
	settings := config.RateLimitSettings{Enabled: false, Requests: 1, WindowSeconds: 30}
	r := setupRouter(RateLimit(counter, settings, log))

	for i := 0; i < 5; i++ {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/ping", nil)
		r.ServeHTTP(w, req)
		require.Equal(t, http.StatusOK, w.Code)
	}

	assert.Empty(t, counter.counts)
}

func TestRateLimit_NilCounterPassesThrough(t *testing.T) {
	log := testutil.SetupTestLogger(t)
	settings := config.RateLimitSettings{Enabled: true, Requests: 1, WindowSeconds: 30}
	r := setupRouter(RateLimit(nil, settings, log))

	for i := 0; i < 5; i++ {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/ping", nil)
		r.ServeHTTP(w, req)
		require.Equal(t, http.StatusOK, w.Code)
	}
}

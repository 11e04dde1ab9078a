package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"salesledger_server/structs"
	"testing"
	"time"

	"github.com/MonkyMars/gecho"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCounter struct {
	count int
	err   error
	calls int
}

func (f *fakeCounter) IncrementRateLimit(ctx context.Context, ip, endpoint string, ttl time.Duration) (int, error) {
	f.calls++
	return f.count, f.err
}

func newLimitedHandler(counter *fakeCounter, enabled bool) http.Handler {
	cfg := &structs.Config{
		RateLimit: &structs.RateLimitConfig{
			Enabled: enabled,
			Limit:   1,
			Window:  time.Minute,
		},
	}
	mw := NewMiddleware(cfg, gecho.NewDefaultLogger(), counter)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	return mw.RateLimitMiddleware()(next)
}

func TestRateLimit_UnderLimitPassesWithHeaders(t *testing.T) {
	handler := newLimitedHandler(&fakeCounter{count: 1}, true)

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/sales", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "1", w.Header().Get("X-RateLimit-Limit"))
	assert.Equal(t, "0", w.Header().Get("X-RateLimit-Remaining"))
}

func TestRateLimit_ExceededIsJSON429(t *testing.T) {
	handler := newLimitedHandler(&fakeCounter{count: 2}, true)

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/sales", nil))

	require.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "application/json")
	assert.Equal(t, "60", w.Header().Get("Retry-After"))

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "rate limit exceeded, please try again later", body["error"])
}

func TestRateLimit_CacheErrorFailsOpen(t *testing.T) {
	handler := newLimitedHandler(&fakeCounter{err: errors.New("redis down")}, true)

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/sales", nil))

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRateLimit_ExemptAndDisabledPathsSkipCounter(t *testing.T) {
	t.Run("health endpoints are never limited", func(t *testing.T) {
		counter := &fakeCounter{count: 99}
		handler := newLimitedHandler(counter, true)

		w := httptest.NewRecorder()
		handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health/server", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Zero(t, counter.calls)
	})

	t.Run("disabled limiter touches nothing", func(t *testing.T) {
		counter := &fakeCounter{count: 99}
		handler := newLimitedHandler(counter, false)

		w := httptest.NewRecorder()
		handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/sales", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Zero(t, counter.calls)
	})
}

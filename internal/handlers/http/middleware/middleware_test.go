package middleware_test

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/rpg-tale/internal/handlers/http/middleware"
)

var ok = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
})

func TestRateLimiterPerClient(t *testing.T) {
	rl := middleware.NewRateLimiter(middleware.RateLimiterConfig{RequestsPerSecond: 1, Burst: 2})
	h := rl.Middleware(ok)

	call := func(addr string) int {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = addr
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		return rec.Code
	}

	assert.Equal(t, http.StatusOK, call("10.0.0.1:1000"))
	assert.Equal(t, http.StatusOK, call("10.0.0.1:1001"))
	assert.Equal(t, http.StatusTooManyRequests, call("10.0.0.1:1002"))

	// other clients have their own bucket
	assert.Equal(t, http.StatusOK, call("10.0.0.2:1000"))
}

func TestRateLimiterDefaults(t *testing.T) {
	rl := middleware.NewRateLimiter(middleware.RateLimiterConfig{})
	for i := 0; i < middleware.DefaultRequestsPerSecond; i++ {
		require.True(t, rl.Allow("10.0.0.1"), "request %d", i)
	}
	assert.False(t, rl.Allow("10.0.0.1"))
}

func TestRequestLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	h := middleware.RequestLogger(logger)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/api/v1/sessions", nil))

	out := buf.String()
	assert.Contains(t, out, `"msg":"HTTP request"`)
	assert.Contains(t, out, `"status":418`)
	assert.Contains(t, out, `"path":"/api/v1/sessions"`)
}

func TestMaxBodySize(t *testing.T) {
	var readErr error
	h := middleware.MaxBodySize(4)(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		_, readErr = r.Body.Read(make([]byte, 16))
		if readErr == nil {
			_, readErr = r.Body.Read(make([]byte, 16))
		}
	}))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString("too long")))
	require.Error(t, readErr)
}

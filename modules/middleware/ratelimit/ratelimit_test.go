package ratelimit

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	rl "studentapi/modules/ratelimit"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeLimiter struct {
	result rl.Result
	err    error
}

func (f *fakeLimiter) Allow(ctx context.Context, key rl.Key) (rl.Result, error) {
	return f.result, f.err
}

func fakeFactory(limiter rl.RateLimiter) rl.LimiterFactory {
	return func(limit int64, window time.Duration) rl.RateLimiter {
		return limiter
	}
}

func routeFn(r *http.Request) RouteInfo {
	return RouteInfo{ID: Pattern(r.URL.Path), Method: r.Method, Path: r.URL.Path}
}

func testConfig() *RestHTTPConfig {
	return &RestHTTPConfig{
		Routes: []Route{{
			Pattern: "/api/profile/",
			EndpointRules: []EndpointRule{{
				Method:      "GET",
				Limit:       10,
				Window:      time.Minute,
				KeyStrategy: RemoteIpKeyStrategy,
			}},
		}},
		AllowIfNoMatch: true,
	}
}

func TestParsePolicy(t *testing.T) {
	t.Run("known key strategy compiles", func(t *testing.T) {
		p, err := ParsePolicy(
			fakeFactory(&fakeLimiter{}),
			testConfig(),
			routeFn,
			map[KeyStrategyId]KeyFunc{RemoteIpKeyStrategy: RemoteIpKeyFunc},
		)
		require.NoError(t, err)
		assert.True(t, p.AllowIfNoMatch)
	})

	t.Run("unknown key strategy fails", func(t *testing.T) {
		_, err := ParsePolicy(
			fakeFactory(&fakeLimiter{}),
			testConfig(),
			routeFn,
			map[KeyStrategyId]KeyFunc{},
		)
		assert.Error(t, err)
	})

	t.Run("duplicate method on the same pattern fails", func(t *testing.T) {
		cfg := testConfig()
		cfg.Routes[0].EndpointRules = append(cfg.Routes[0].EndpointRules, EndpointRule{
			Method:      "get",
			Limit:       1,
			Window:      time.Minute,
			KeyStrategy: RemoteIpKeyStrategy,
		})
		_, err := ParsePolicy(
			fakeFactory(&fakeLimiter{}),
			cfg,
			routeFn,
			map[KeyStrategyId]KeyFunc{RemoteIpKeyStrategy: RemoteIpKeyFunc},
		)
		assert.Error(t, err)
	})
}

func newMiddlewareUnderTest(t *testing.T, limiter rl.RateLimiter) http.Handler {
	t.Helper()
	p, err := ParsePolicy(
		fakeFactory(limiter),
		testConfig(),
		routeFn,
		map[KeyStrategyId]KeyFunc{RemoteIpKeyStrategy: RemoteIpKeyFunc},
	)
	require.NoError(t, err)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	return NewRateLimitMiddleware(p)(next)
}

func TestRateLimitMiddleware(t *testing.T) {
	t.Run("allowed requests pass with headers", func(t *testing.T) {
		h := newMiddlewareUnderTest(t, &fakeLimiter{result: rl.Result{
			Allowed:       true,
			Remaining:     9,
			Limit:         10,
			Window:        time.Minute,
			WindowResetIn: 30 * time.Second,
		}})

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/profile/", nil)
		req.Header.Set("X-Forwarded-For", "203.0.113.7")
		h.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "10", rec.Header().Get("X-RateLimit-Limit"))
		assert.Equal(t, "9", rec.Header().Get("X-RateLimit-Remaining"))
		assert.Equal(t, "30", rec.Header().Get("X-RateLimit-Reset-Seconds"))
	})

	t.Run("blocked requests get 429 envelope", func(t *testing.T) {
		h := newMiddlewareUnderTest(t, &fakeLimiter{result: rl.Result{
			Allowed:       false,
			Limit:         10,
			Window:        time.Minute,
			RetryAfter:    30 * time.Second,
			WindowResetIn: 30 * time.Second,
		}})

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/profile/", nil)
		req.Header.Set("X-Forwarded-For", "203.0.113.7")
		h.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusTooManyRequests, rec.Code)
		assert.JSONEq(t, `{"status":429,"data":null,"error":"Too Many Requests"}`, rec.Body.String())
	})

	t.Run("unmatched route passes when AllowIfNoMatch", func(t *testing.T) {
		h := newMiddlewareUnderTest(t, &fakeLimiter{result: rl.Result{Allowed: false}})

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
		h.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

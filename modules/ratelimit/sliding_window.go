// Copyright 2025 Nhat-Nguyen Nguyen
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package ratelimit

import (
	"context"
	"fmt"
	"math"
	"time"

	"studentapi/modules/clock"
)

var _ RateLimiter = (*SlidingWindowRateLimiter)(nil)

// Time-based 2-window sliding counter implementation of the rate limiter.
// It uses a time-based sliding window implemented as two adjacent fixed
// windows (current + previous) and interpolates between them.
type SlidingWindowRateLimiter struct {
	clock     clock.Clock
	counter   CounterStore
	keyPrefix string

	limit  int64
	window time.Duration
}

func SlidingWindowFactory(clock clock.Clock, counter CounterStore, keyPrefix string) LimiterFactory {
	return func(l int64, w time.Duration) RateLimiter {
		return &SlidingWindowRateLimiter{
			clock:     clock,
			counter:   counter,
			keyPrefix: keyPrefix,
			limit:     l,
			window:    w,
		}
	}
}

// Allow implements RateLimiter.
//
// The weighted usage is
//
//	usage = current_count + prev_count * (1 - elapsed/window)
//
// which approximates a true sliding log at a fraction of the storage cost.
func (s *SlidingWindowRateLimiter) Allow(ctx context.Context, key Key) (Result, error) {
	now := s.clock.Now()
	nowNs := now.UnixNano()
	windowNs := s.window.Nanoseconds()
	// the current window we are in
	currentWindowIdx := nowNs / windowNs

	currentWindowCount, err := s.incrementWindow(ctx, key, currentWindowIdx)
	if err != nil {
		return Result{}, err
	}

	prevWindowCount, err := s.counter.Get(ctx, s.buildKey(key, currentWindowIdx-1))
	if err != nil {
		return Result{}, err
	}

	currentWindowCount = max(currentWindowCount, 0)
	prevWindowCount = max(prevWindowCount, 0)

	elapsedNs := nowNs - currentWindowIdx*windowNs
	elapsedNs = min(max(elapsedNs, 0), windowNs)
	prevWeight := 1 - float64(elapsedNs)/float64(windowNs)

	windowResetIn := max(s.window-time.Duration(elapsedNs), 0)

	usage := float64(currentWindowCount) + float64(prevWindowCount)*prevWeight
	allowed := usage <= float64(s.limit)

	used := int64(math.Ceil(usage))
	remaining := max(s.limit-used, 0)

	result := Result{
		Allowed:       allowed,
		Remaining:     remaining,
		RetryAfter:    windowResetIn,
		Limit:         s.limit,
		Window:        s.window,
		WindowResetIn: windowResetIn,
	}

	if result.Allowed {
		result.RetryAfter = 0
	}

	return result, nil
}

func (s *SlidingWindowRateLimiter) buildKey(key Key, windowIdx int64) string {
	return fmt.Sprintf("%s:%s:%d", s.keyPrefix, key, windowIdx)
}

func (s *SlidingWindowRateLimiter) incrementWindow(ctx context.Context, key Key, windowIdx int64) (int64, error) {
	k := s.buildKey(key, windowIdx)
	// keep both adjacent windows alive
	return s.counter.Incr(ctx, k, s.window*2)
}

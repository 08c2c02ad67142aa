package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"golang.org/x/time/rate"
)

func TestIPRateLimiter(t *testing.T) {
	limiter := NewIPRateLimiter(rate.Limit(1), 2, testLogger())

	t.Run("Same IP Gets Same Limiter", func(t *testing.T) {
		l1 := limiter.GetLimiter("1.2.3.4")
		l2 := limiter.GetLimiter("1.2.3.4")
		assert.Same(t, l1, l2)
	})

	t.Run("Different IPs Get Different Limiters", func(t *testing.T) {
		l1 := limiter.GetLimiter("1.2.3.4")
		l2 := limiter.GetLimiter("5.6.7.8")
		assert.NotSame(t, l1, l2)
	})

	t.Run("Burst Then Block", func(t *testing.T) {
		l := limiter.GetLimiter("9.9.9.9")
		assert.True(t, l.Allow())
		assert.True(t, l.Allow())
		assert.False(t, l.Allow())
	})
}

func TestIPRateLimiter_Cleanup(t *testing.T) {
	limiter := NewIPRateLimiter(rate.Limit(1), 1, testLogger())

	ctx, cancel := context.WithCancel(context.Background())
	limiter.StartCleanup(ctx, 10*time.Millisecond)

	limiter.GetLimiter("1.2.3.4")
	time.Sleep(50 * time.Millisecond)
	cancel()

	// Map stays small, nothing should have been reset
	assert.NotNil(t, limiter.GetLimiter("1.2.3.4"))
}

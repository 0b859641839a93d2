package retry

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDelayGrowsExponentiallyAndCaps(t *testing.T) {
	s := &scheduler{cfg: Config{
		BaseDelay:         time.Second,
		MaxDelay:          10 * time.Minute,
		BackoffMultiplier: 2.0,
	}}

	testCases := []struct {
		attempt  int32
		expected time.Duration
	}{
		{attempt: 1, expected: time.Second},
		{attempt: 2, expected: 2 * time.Second},
		{attempt: 3, expected: 4 * time.Second},
		{attempt: 6, expected: 32 * time.Second},
		{attempt: 10, expected: 512 * time.Second},
		{attempt: 11, expected: 10 * time.Minute},
		{attempt: 100, expected: 10 * time.Minute},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.expected, s.delay(tc.attempt), "attempt %d", tc.attempt)
	}
}

func TestDelayIsMonotonicWithoutJitter(t *testing.T) {
	s := &scheduler{cfg: Config{
		BaseDelay:         time.Second,
		MaxDelay:          10 * time.Minute,
		BackoffMultiplier: 2.0,
	}}

	prev := time.Duration(0)
	for attempt := int32(1); attempt <= 30; attempt++ {
		d := s.delay(attempt)
		assert.GreaterOrEqual(t, d, prev, "attempt %d", attempt)
		prev = d
	}
}

func TestDelayJitterStaysWithinHalfToFull(t *testing.T) {
	base := &scheduler{cfg: Config{
		BaseDelay:         time.Second,
		MaxDelay:          10 * time.Minute,
		BackoffMultiplier: 2.0,
	}}
	full := base.delay(5)

	t.Run("lower_bound", func(t *testing.T) {
		s := &scheduler{cfg: Config{
			BaseDelay:         time.Second,
			MaxDelay:          10 * time.Minute,
			BackoffMultiplier: 2.0,
			Jitter:            true,
		}, randFloat: func() float64 { return 0 }}
		assert.Equal(t, full/2, s.delay(5))
	})

	t.Run("upper_bound_exclusive", func(t *testing.T) {
		s := &scheduler{cfg: Config{
			BaseDelay:         time.Second,
			MaxDelay:          10 * time.Minute,
			BackoffMultiplier: 2.0,
			Jitter:            true,
		}, randFloat: func() float64 { return 0.999999 }}
		d := s.delay(5)
		assert.Less(t, d, full)
		assert.Greater(t, d, full/2)
	})
}

func TestDelayClampsNonPositiveAttempt(t *testing.T) {
	s := &scheduler{cfg: Config{
		BaseDelay:         time.Second,
		MaxDelay:          10 * time.Minute,
		BackoffMultiplier: 2.0,
	}}

	assert.Equal(t, time.Second, s.delay(0))
	assert.Equal(t, time.Second, s.delay(-5))
}

package retry

import (
	"math"
	"time"
)

// delay computes the backoff before the attempt after `attempt` failed:
// min(maxDelay, baseDelay * multiplier^(attempt-1)), optionally scaled by a
// jitter factor in [0.5, 1.0).
func (s *scheduler) delay(attempt int32) time.Duration {
	if attempt < 1 {
		attempt = 1
	}

	d := float64(s.cfg.BaseDelay) * math.Pow(s.cfg.BackoffMultiplier, float64(attempt-1))
	if d > float64(s.cfg.MaxDelay) || math.IsInf(d, 1) {
		d = float64(s.cfg.MaxDelay)
	}

	if s.cfg.Jitter {
		d *= 0.5 + 0.5*s.randFloat()
	}

	return time.Duration(d)
}

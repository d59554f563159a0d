package session

import "time"

const (
	DefaultInitialDelay = 100 * time.Millisecond
	DefaultMaxDelay     = time.Second
	DefaultMaxAttempts  = 8
)

// Backoff bounds the retries made while the terminal surface is not ready
// to show an auth transition.
type Backoff struct {
	Initial     time.Duration
	Max         time.Duration
	MaxAttempts int
}

func DefaultBackoff() Backoff {
	return Backoff{
		Initial:     DefaultInitialDelay,
		Max:         DefaultMaxDelay,
		MaxAttempts: DefaultMaxAttempts,
	}
}

// Delay returns the wait before retry attempt (zero-based). ok is false once
// attempts are exhausted.
func (b Backoff) Delay(attempt int) (d time.Duration, ok bool) {
	if attempt < 0 || attempt >= b.MaxAttempts {
		return 0, false
	}

	d = b.Initial
	for range attempt {
		d *= 2
		if d >= b.Max {
			return b.Max, true
		}
	}
	return min(d, b.Max), true
}

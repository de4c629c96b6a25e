package retry

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// Policy handles bounded retries with backoff
type Policy struct {
	maxAttempts  int
	initialDelay time.Duration
	multiplier   float64
	maxDelay     time.Duration
}

// NewPolicy creates a policy that grows the delay by 1.5x per attempt
func NewPolicy(maxAttempts int, initialDelay time.Duration) *Policy {
	if maxAttempts < 1 {
		maxAttempts = 1
	}
	return &Policy{
		maxAttempts:  maxAttempts,
		initialDelay: initialDelay,
		multiplier:   1.5,
		maxDelay:     30 * time.Second, // Cap at 30 seconds
	}
}

// Fixed creates a policy that waits the same delay between attempts
func Fixed(maxAttempts int, delay time.Duration) *Policy {
	p := NewPolicy(maxAttempts, delay)
	p.multiplier = 1
	return p
}

// Attempts returns the configured number of attempts
func (p *Policy) Attempts() int {
	return p.maxAttempts
}

// Do runs fn until it succeeds, returns a permanent error, the attempts are
// exhausted, or ctx is done.
func (p *Policy) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	var lastErr error
	delay := p.initialDelay

	for attempt := 1; attempt <= p.maxAttempts; attempt++ {
		err := fn(ctx)
		if err == nil {
			return nil
		}

		var perm *permanentError
		if errors.As(err, &perm) {
			return perm.err
		}
		lastErr = err

		// Don't sleep after last attempt
		if attempt == p.maxAttempts {
			break
		}

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return fmt.Errorf("retry aborted after %d attempts: %w", attempt, errors.Join(ctx.Err(), lastErr))
		case <-timer.C:
		}

		delay = time.Duration(float64(delay) * p.multiplier)
		if delay > p.maxDelay {
			delay = p.maxDelay
		}
	}

	if p.maxAttempts == 1 {
		return lastErr
	}
	return fmt.Errorf("failed after %d attempts: %w", p.maxAttempts, lastErr)
}

type permanentError struct {
	err error
}

func (e *permanentError) Error() string { return e.err.Error() }
func (e *permanentError) Unwrap() error { return e.err }

// Permanent marks err as not worth retrying. Do returns the wrapped error
// unchanged.
func Permanent(err error) error {
	if err == nil {
		return nil
	}
	return &permanentError{err: err}
}

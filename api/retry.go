package api

import (
	"context"
	"errors"
	"time"
)

// Backoff returns the delay to wait after the given failed attempt (1-indexed)
// before the next one is sent.
type Backoff func(attempt int) time.Duration

// SleepFunc waits for d or until ctx is done.
type SleepFunc func(ctx context.Context, d time.Duration) error

// FixedBackoff waits the same delay between every attempt.
func FixedBackoff(delay time.Duration) Backoff {
	return func(int) time.Duration {
		return delay
	}
}

// LinearBackoff waits delay, 2*delay, 3*delay, ... between attempts.
func LinearBackoff(delay time.Duration) Backoff {
	return func(attempt int) time.Duration {
		return delay * time.Duration(attempt)
	}
}

// ExponentialBackoff multiplies the delay by factor after each attempt and caps
// it at max.
func ExponentialBackoff(initial, max time.Duration, factor float64) Backoff {
	if factor <= 0 {
		factor = 2.0
	}
	return func(attempt int) time.Duration {
		d := float64(initial)
		for i := 1; i < attempt; i++ {
			d *= factor
			if max > 0 && time.Duration(d) >= max {
				return max
			}
		}
		if max > 0 && time.Duration(d) > max {
			return max
		}
		return time.Duration(d)
	}
}

func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// retryPolicy is a bounded attempt loop. maxAttempts counts the first request.
type retryPolicy struct {
	maxAttempts int
	backoff     Backoff
	sleep       SleepFunc
	onRetry     func(attempt int, err error, delay time.Duration)
}

// do calls fn until it succeeds, fails with a non-retryable error, the context
// is done, or maxAttempts is reached. It reports how many attempts ran.
func (p retryPolicy) do(ctx context.Context, fn func() error) (int, error) {
	maxAttempts := p.maxAttempts
	if maxAttempts < 1 {
		maxAttempts = 1
	}

	for attempt := 1; ; attempt++ {
		err := fn()
		if err == nil {
			return attempt, nil
		}
		if !isRetryable(err) || ctx.Err() != nil || attempt >= maxAttempts {
			return attempt, err
		}

		delay := p.backoff(attempt)
		if p.onRetry != nil {
			p.onRetry(attempt, err, delay)
		}
		if sleepErr := p.sleep(ctx, delay); sleepErr != nil {
			return attempt, err
		}
	}
}

func isRetryable(err error) bool {
	var nonRetryable *nonRetryableError
	return !errors.As(err, &nonRetryable)
}

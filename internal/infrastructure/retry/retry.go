package retry

import (
	"context"
	"fmt"
	"time"
)

// Retrier runs an operation up to MaxAttempts times, sleeping between
// attempts according to Backoff. Retryable decides which errors are worth
// another attempt; a nil predicate retries everything. Sleep is injectable
// so tests run without real delays.
type Retrier struct {
	MaxAttempts int
	Backoff     func(attempt int) time.Duration
	Retryable   func(err error) bool
	OnRetry     func(attempt int, err error)
	Sleep       func(ctx context.Context, delay time.Duration) error
}

// New builds a retrier with linearly increasing backoff: baseDelay times
// the attempt number.
func New(maxAttempts int, baseDelay time.Duration, retryable func(err error) bool) *Retrier {
	return &Retrier{
		MaxAttempts: maxAttempts,
		Backoff: func(attempt int) time.Duration {
			return baseDelay * time.Duration(attempt)
		},
		Retryable: retryable,
	}
}

func (r *Retrier) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	var lastErr error

	for attempt := 1; attempt <= r.MaxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		err := fn(ctx)
		if err == nil {
			return nil
		}
		lastErr = err

		if r.Retryable != nil && !r.Retryable(err) {
			return err
		}
		if attempt == r.MaxAttempts {
			break
		}

		if r.OnRetry != nil {
			r.OnRetry(attempt, err)
		}
		if err := r.sleep(ctx, r.Backoff(attempt)); err != nil {
			return err
		}
	}

	return fmt.Errorf("max retry attempts (%d) exceeded: %w", r.MaxAttempts, lastErr)
}

func (r *Retrier) sleep(ctx context.Context, delay time.Duration) error {
	if r.Sleep != nil {
		return r.Sleep(ctx, delay)
	}
	timer := time.NewTimer(delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

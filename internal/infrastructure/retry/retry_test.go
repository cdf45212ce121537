package retry

import (
	"context"
	"errors"
	"testing"
	"time"
)

func noSleep(ctx context.Context, delay time.Duration) error {
	return nil
}

func TestDoSucceedsFirstAttempt(t *testing.T) {
	r := New(4, time.Second, nil)
	r.Sleep = noSleep

	attempts := 0
	err := r.Do(context.Background(), func(ctx context.Context) error {
		attempts++
		return nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if attempts != 1 {
		t.Errorf("attempts = %d, want 1", attempts)
	}
}

func TestDoRetriesUntilSuccess(t *testing.T) {
	r := New(4, time.Second, nil)
	r.Sleep = noSleep

	attempts := 0
	err := r.Do(context.Background(), func(ctx context.Context) error {
		attempts++
		if attempts < 3 {
			return errors.New("boom")
		}
		return nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if attempts != 3 {
		t.Errorf("attempts = %d, want 3", attempts)
	}
}

func TestDoExhaustsAttempts(t *testing.T) {
	r := New(4, time.Second, nil)
	r.Sleep = noSleep

	lastErr := errors.New("still down")
	attempts := 0
	retries := 0
	r.OnRetry = func(attempt int, err error) {
		retries++
	}

	err := r.Do(context.Background(), func(ctx context.Context) error {
		attempts++
		return lastErr
	})
	if !errors.Is(err, lastErr) {
		t.Fatalf("exhaustion must wrap the last error, got %v", err)
	}
	if attempts != 4 {
		t.Errorf("attempts = %d, want 4", attempts)
	}
	if retries != 3 {
		t.Errorf("retries = %d, want 3", retries)
	}
}

func TestDoStopsOnNonRetryable(t *testing.T) {
	permanent := errors.New("bad request")
	r := New(4, time.Second, func(err error) bool {
		return !errors.Is(err, permanent)
	})
	r.Sleep = noSleep

	attempts := 0
	err := r.Do(context.Background(), func(ctx context.Context) error {
		attempts++
		return permanent
	})
	if !errors.Is(err, permanent) {
		t.Fatalf("got %v, want the permanent error", err)
	}
	if attempts != 1 {
		t.Errorf("attempts = %d, want 1", attempts)
	}
}

func TestDoLinearBackoff(t *testing.T) {
	r := New(4, 100*time.Millisecond, nil)

	var delays []time.Duration
	r.Sleep = func(ctx context.Context, delay time.Duration) error {
		delays = append(delays, delay)
		return nil
	}

	r.Do(context.Background(), func(ctx context.Context) error {
		return errors.New("boom")
	})

	want := []time.Duration{100 * time.Millisecond, 200 * time.Millisecond, 300 * time.Millisecond}
	if len(delays) != len(want) {
		t.Fatalf("delays = %v, want %v", delays, want)
	}
	for i := range want {
		if delays[i] != want[i] {
			t.Errorf("delay[%d] = %s, want %s", i, delays[i], want[i])
		}
	}
}

func TestDoHonorsCancelledContext(t *testing.T) {
	r := New(4, time.Second, nil)
	r.Sleep = noSleep

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	attempts := 0
	err := r.Do(ctx, func(ctx context.Context) error {
		attempts++
		return nil
	})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("got %v, want context.Canceled", err)
	}
	if attempts != 0 {
		t.Errorf("attempts = %d, want 0", attempts)
	}
}

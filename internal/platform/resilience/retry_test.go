package resilience

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestRetry_SucceedsAfterFailures(t *testing.T) {
	t.Parallel()

	attempts := 0
	var retryCalls []int
	var retryErrs []error

	out, err := Retry(context.Background(), RetryConfig{
		Retries: 2,
		Delay:   time.Millisecond,
		OnRetry: func(attempt int, err error) {
			retryCalls = append(retryCalls, attempt)
			retryErrs = append(retryErrs, err)
		},
	}, func(context.Context) (string, error) {
		attempts++
		if attempts <= 2 {
			return "", errors.New("transient")
		}
		return "ok", nil
	})
	if err != nil {
		t.Fatalf("Retry error: %v", err)
	}
	if out != "ok" {
		t.Fatalf("unexpected value: %q", out)
	}
	if attempts != 3 {
		t.Fatalf("expected 3 attempts, got=%d", attempts)
	}
	if len(retryCalls) != 2 || retryCalls[0] != 1 || retryCalls[1] != 2 {
		t.Fatalf("unexpected onRetry calls: %v", retryCalls)
	}
	for _, e := range retryErrs {
		if e == nil {
			t.Fatal("onRetry received nil error")
		}
	}
}

func TestRetry_BackoffGrowsLinearly(t *testing.T) {
	t.Parallel()

	cfg := NormalizeRetryConfig(RetryConfig{Retries: 2, Delay: 10 * time.Millisecond})
	first := cfg.Delay * time.Duration(1)
	second := cfg.Delay * time.Duration(2)
	if second <= first {
		t.Fatalf("second delay %v must be strictly greater than first %v", second, first)
	}

	attempts := 0
	start := time.Now()
	_, err := Retry(context.Background(), cfg, func(context.Context) (int, error) {
		attempts++
		return 0, errors.New("always fails")
	})
	elapsed := time.Since(start)
	if err == nil {
		t.Fatal("expected terminal error")
	}
	if attempts != 3 {
		t.Fatalf("expected 3 attempts, got=%d", attempts)
	}
	// Two waits: 10ms then 20ms.
	if elapsed < 30*time.Millisecond {
		t.Fatalf("expected at least 30ms of backoff, got=%v", elapsed)
	}
}

func TestRetry_ReturnsLastErrorUnchanged(t *testing.T) {
	t.Parallel()

	terminal := errors.New("store is gone")
	_, err := Retry(context.Background(), RetryConfig{Retries: 1, Delay: time.Millisecond}, func(context.Context) (int, error) {
		return 0, terminal
	})
	if !errors.Is(err, terminal) {
		t.Fatalf("expected last error to surface, got=%v", err)
	}
}

func TestRetry_ContextCancelledDuringBackoff(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	attempts := 0
	go func() {
		time.Sleep(5 * time.Millisecond)
		cancel()
	}()

	_, err := Retry(ctx, RetryConfig{Retries: 5, Delay: time.Second}, func(context.Context) (int, error) {
		attempts++
		return 0, errors.New("transient")
	})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got=%v", err)
	}
	if attempts != 1 {
		t.Fatalf("expected a single attempt before cancellation, got=%d", attempts)
	}
}

func TestRetryNoResult(t *testing.T) {
	t.Parallel()

	calls := 0
	err := RetryNoResult(context.Background(), RetryConfig{Retries: 1, Delay: time.Millisecond}, func(context.Context) error {
		calls++
		if calls == 1 {
			return errors.New("first fails")
		}
		return nil
	})
	if err != nil {
		t.Fatalf("RetryNoResult error: %v", err)
	}
	if calls != 2 {
		t.Fatalf("expected 2 calls, got=%d", calls)
	}
}

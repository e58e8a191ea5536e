package resilience

import (
	"context"
	"time"
)

const (
	DefaultRetryCount = 3
	DefaultRetryDelay = 500 * time.Millisecond
)

// RetryConfig bounds a retry loop. Retries is the number of attempts after
// the first one, so an operation runs at most Retries+1 times. The wait
// before attempt n+1 is Delay*n (linear backoff).
type RetryConfig struct {
	Retries int
	Delay   time.Duration
	// OnRetry is invoked after each failed attempt that will be retried,
	// before the backoff wait. Attempt numbering starts at 1.
	OnRetry func(attempt int, err error)
}

func NormalizeRetryConfig(cfg RetryConfig) RetryConfig {
	if cfg.Retries < 0 {
		cfg.Retries = DefaultRetryCount
	}
	if cfg.Delay <= 0 {
		cfg.Delay = DefaultRetryDelay
	}
	return cfg
}

// Retry runs op until it succeeds or the attempt budget is exhausted, then
// returns the last error unchanged. It never swallows a terminal failure;
// fallback policy belongs to the caller. Each invocation is independent and
// safe for concurrent use.
func Retry[T any](ctx context.Context, cfg RetryConfig, op func(context.Context) (T, error)) (T, error) {
	cfg = NormalizeRetryConfig(cfg)

	var zero T
	var lastErr error
	for attempt := 0; attempt <= cfg.Retries; attempt++ {
		out, err := op(ctx)
		if err == nil {
			return out, nil
		}
		lastErr = err

		if attempt == cfg.Retries {
			break
		}
		if cfg.OnRetry != nil {
			cfg.OnRetry(attempt+1, err)
		}

		backoff := cfg.Delay * time.Duration(attempt+1)
		timer := time.NewTimer(backoff)
		select {
		case <-ctx.Done():
			timer.Stop()
			return zero, ctx.Err()
		case <-timer.C:
		}
	}

	return zero, lastErr
}

// RetryNoResult is Retry for operations without a return value.
func RetryNoResult(ctx context.Context, cfg RetryConfig, op func(context.Context) error) error {
	_, err := Retry(ctx, cfg, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, op(ctx)
	})
	return err
}

package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/pitchside/matchsight/internal/platform/logging"
	"github.com/pitchside/matchsight/internal/platform/resilience"
)

func testRetry() resilience.RetryConfig {
	return resilience.RetryConfig{Retries: 1, Delay: time.Millisecond}
}

func TestFetchWithFallback_PrimarySuccess(t *testing.T) {
	t.Parallel()

	result := fetchWithFallback(context.Background(), fallbackSpec[[]string]{
		label:         "things",
		primarySource: SourceDatabase,
		retry:         testRetry(),
		logger:        logging.NewNop(),
		primary: func(context.Context) ([]string, error) {
			return []string{"a", "b"}, nil
		},
		fallback: func() []string { return []string{"ref"} },
		empty:    func(items []string) bool { return len(items) == 0 },
	})

	if !result.Success || result.Source != SourceDatabase {
		t.Fatalf("expected database result, got %+v", result)
	}
	if len(result.Data) != 2 {
		t.Fatalf("expected primary data, got %v", result.Data)
	}
}

func TestFetchWithFallback_PrimaryErrorServesFallback(t *testing.T) {
	t.Parallel()

	calls := 0
	result := fetchWithFallback(context.Background(), fallbackSpec[[]string]{
		label:  "things",
		retry:  testRetry(),
		logger: logging.NewNop(),
		primary: func(context.Context) ([]string, error) {
			calls++
			return nil, errors.New("store down")
		},
		fallback: func() []string { return []string{"ref"} },
	})

	if calls != 2 {
		t.Fatalf("expected 2 attempts (1 retry), got %d", calls)
	}
	if result.Source != SourceFallback || !result.Success {
		t.Fatalf("expected successful fallback result, got %+v", result)
	}
	if len(result.Data) != 1 || result.Data[0] != "ref" {
		t.Fatalf("expected fallback data, got %v", result.Data)
	}
}

func TestFetchWithFallback_EmptyPrimaryServesMock(t *testing.T) {
	t.Parallel()

	result := fetchWithFallback(context.Background(), fallbackSpec[[]string]{
		label:         "things",
		primarySource: SourceDatabase,
		retry:         testRetry(),
		logger:        logging.NewNop(),
		primary: func(context.Context) ([]string, error) {
			return []string{}, nil
		},
		fallback: func() []string { return []string{"ref"} },
		empty:    func(items []string) bool { return len(items) == 0 },
	})

	if result.Source != SourceMock {
		t.Fatalf("empty store must read as mock, got %+v", result)
	}
}

func TestFetchWithFallback_NoPrimaryServesMock(t *testing.T) {
	t.Parallel()

	result := fetchWithFallback(context.Background(), fallbackSpec[[]string]{
		label:    "things",
		retry:    testRetry(),
		logger:   logging.NewNop(),
		fallback: func() []string { return []string{"ref"} },
	})

	if result.Source != SourceMock || !result.Success {
		t.Fatalf("missing primary must read as mock, got %+v", result)
	}
}

func TestFetchResult_Degraded(t *testing.T) {
	t.Parallel()

	if resultFrom("x", SourceDatabase, "").Degraded() {
		t.Fatalf("database source must not read as degraded")
	}
	for _, source := range []Source{SourceMock, SourceFallback, SourceError} {
		if !resultFrom("x", source, "").Degraded() {
			t.Fatalf("source %s must read as degraded", source)
		}
	}
	if resultFrom("x", SourceError, "").Success {
		t.Fatalf("error source must not be marked successful")
	}
}

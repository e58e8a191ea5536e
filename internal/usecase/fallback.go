package usecase

import (
	"context"

	"github.com/pitchside/matchsight/internal/platform/logging"
	"github.com/pitchside/matchsight/internal/platform/resilience"
)

// fallbackSpec describes one guarded fetch: a primary supplier backed by the
// store and a static fallback supplier that cannot fail.
type fallbackSpec[T any] struct {
	// label appears in log lines and result messages.
	label string
	// primarySource is the tag used when the primary supplier succeeds,
	// SourceDatabase for a configured store, SourceMock otherwise.
	primarySource Source
	retry         resilience.RetryConfig
	logger        *logging.Logger

	primary  func(context.Context) (T, error)
	fallback func() T
	// empty reports whether a successful primary result carries no rows;
	// empty results fall through to the fallback supplier tagged as mock.
	empty func(T) bool
}

// fetchWithFallback runs the primary supplier under retry and degrades to
// the fallback supplier instead of surfacing store errors. The returned
// envelope always carries usable data.
func fetchWithFallback[T any](ctx context.Context, spec fallbackSpec[T]) FetchResult[T] {
	log := spec.logger
	if log == nil {
		log = logging.Default()
	}

	if spec.primary == nil {
		return resultFrom(spec.fallback(), SourceMock, spec.label+": store not configured")
	}

	retryCfg := spec.retry
	if retryCfg.OnRetry == nil {
		retryCfg.OnRetry = func(attempt int, err error) {
			log.WarnContext(ctx, spec.label+": retrying after failure",
				"attempt", attempt,
				"error", err.Error(),
			)
		}
	}

	data, err := resilience.Retry(ctx, retryCfg, spec.primary)
	if err != nil {
		log.ErrorContext(ctx, spec.label+": primary exhausted, serving fallback data",
			"error", err.Error(),
		)
		return resultFrom(spec.fallback(), SourceFallback, spec.label+": served fallback after store failure")
	}

	if spec.empty != nil && spec.empty(data) {
		return resultFrom(spec.fallback(), SourceMock, spec.label+": store empty, served reference data")
	}

	source := spec.primarySource
	if source == "" {
		source = SourceDatabase
	}
	return resultFrom(data, source, "")
}

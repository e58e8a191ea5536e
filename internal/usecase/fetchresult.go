package usecase

import "time"

// Source labels where a fetch result actually came from, so the dashboard
// can flag anything that did not come from the authoritative store.
type Source string

const (
	SourceDatabase Source = "database"
	SourceMock     Source = "mock"
	SourceFallback Source = "fallback"
	SourceError    Source = "error"
)

// FetchResult is the transient envelope returned by every resolution/fetch
// operation. It is never persisted.
type FetchResult[T any] struct {
	Success   bool      `json:"success"`
	Data      T         `json:"data"`
	Source    Source    `json:"source"`
	Message   string    `json:"message,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// Degraded reports whether the data did not come from the authoritative
// store.
func (r FetchResult[T]) Degraded() bool {
	return r.Source != SourceDatabase
}

func resultFrom[T any](data T, source Source, message string) FetchResult[T] {
	return FetchResult[T]{
		Success:   source != SourceError,
		Data:      data,
		Source:    source,
		Message:   message,
		Timestamp: time.Now().UTC(),
	}
}

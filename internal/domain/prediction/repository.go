package prediction

import "context"

// Repository persists predictions keyed by match. Upsert must be
// insert-or-update on the match_id unique constraint.
type Repository interface {
	GetByMatch(ctx context.Context, matchID string) (Prediction, bool, error)
	Upsert(ctx context.Context, item Prediction) error
}

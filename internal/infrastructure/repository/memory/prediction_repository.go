package memory

import (
	"context"
	"sync"

	"github.com/pitchside/matchsight/internal/domain/prediction"
)

type PredictionRepository struct {
	mu      sync.RWMutex
	byMatch map[string]prediction.Prediction
}

func NewPredictionRepository() *PredictionRepository {
	return &PredictionRepository{byMatch: make(map[string]prediction.Prediction)}
}

func (r *PredictionRepository) GetByMatch(_ context.Context, matchID string) (prediction.Prediction, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.byMatch[matchID]
	return item, ok, nil
}

// Upsert keeps one row per match, updating in place like the database
// unique constraint on match_id would.
func (r *PredictionRepository) Upsert(_ context.Context, item prediction.Prediction) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, ok := r.byMatch[item.MatchID]; ok {
		item.ID = existing.ID
		item.GeneratedAt = existing.GeneratedAt
	}
	r.byMatch[item.MatchID] = item

	return nil
}

package postgres

import (
	"context"
	"fmt"
	"time"

	sonic "github.com/bytedance/sonic"

	"github.com/pitchside/matchsight/internal/domain/prediction"
	qb "github.com/pitchside/matchsight/internal/platform/querybuilder"
)

type PredictionRepository struct {
	store *Store
}

func NewPredictionRepository(store *Store) *PredictionRepository {
	return &PredictionRepository{store: store}
}

func (r *PredictionRepository) GetByMatch(ctx context.Context, matchID string) (prediction.Prediction, bool, error) {
	query, args, err := qb.Select("*").From("predictions").
		Where(qb.Eq("match_id", matchID)).
		Limit(1).
		ToSQL()
	if err != nil {
		return prediction.Prediction{}, false, fmt.Errorf("build select prediction query: %w", err)
	}

	var row predictionTableModel
	found, err := r.store.Get(ctx, &row, query, args...)
	if err != nil {
		return prediction.Prediction{}, false, fmt.Errorf("select prediction for match %s: %w", matchID, err)
	}
	if !found {
		return prediction.Prediction{}, false, nil
	}

	return predictionFromRow(row)
}

// Upsert leans on the match_id unique constraint, which is what makes
// concurrent live refreshes safe: the database, not application logic,
// prevents a second row.
func (r *PredictionRepository) Upsert(ctx context.Context, item prediction.Prediction) error {
	insightsJSON, err := sonic.MarshalString(item.Insights)
	if err != nil {
		return fmt.Errorf("encode insights: %w", err)
	}
	pitchJSON, err := sonic.MarshalString(item.PitchReport)
	if err != nil {
		return fmt.Errorf("encode pitch report: %w", err)
	}

	now := time.Now().UTC()
	query, args, err := qb.InsertInto("predictions").
		Columns(
			"id", "match_id",
			"team1_win_probability", "team2_win_probability", "tie_probability",
			"insights_json", "pitch_report_json",
			"generated_at", "updated_at",
		).
		Values(
			item.ID, item.MatchID,
			item.Team1WinProbability, item.Team2WinProbability, item.TieProbability,
			insightsJSON, pitchJSON,
			now, now,
		).
		Suffix("ON CONFLICT (match_id) DO UPDATE SET " +
			"team1_win_probability = EXCLUDED.team1_win_probability, " +
			"team2_win_probability = EXCLUDED.team2_win_probability, " +
			"tie_probability = EXCLUDED.tie_probability, " +
			"insights_json = EXCLUDED.insights_json, " +
			"pitch_report_json = EXCLUDED.pitch_report_json, " +
			"updated_at = EXCLUDED.updated_at").
		ToSQL()
	if err != nil {
		return fmt.Errorf("build upsert prediction query: %w", err)
	}

	if err := r.store.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("upsert prediction for match %s: %w", item.MatchID, err)
	}

	return nil
}

func predictionFromRow(row predictionTableModel) (prediction.Prediction, bool, error) {
	out := prediction.Prediction{
		ID:                  row.ID,
		MatchID:             row.MatchID,
		Team1WinProbability: row.Team1WinProbability,
		Team2WinProbability: row.Team2WinProbability,
		TieProbability:      row.TieProbability,
		GeneratedAt:         row.GeneratedAt,
		UpdatedAt:           row.UpdatedAt,
	}

	if row.InsightsJSON != "" {
		if err := sonic.UnmarshalString(row.InsightsJSON, &out.Insights); err != nil {
			return prediction.Prediction{}, false, fmt.Errorf("decode insights: %w", err)
		}
	}
	if row.PitchReportJSON != "" {
		if err := sonic.UnmarshalString(row.PitchReportJSON, &out.PitchReport); err != nil {
			return prediction.Prediction{}, false, fmt.Errorf("decode pitch report: %w", err)
		}
	}

	return out, true, nil
}

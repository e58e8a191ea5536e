package postgres

import (
	"context"
	"fmt"

	"github.com/pitchside/matchsight/internal/domain/player"
	qb "github.com/pitchside/matchsight/internal/platform/querybuilder"
)

type PlayerRepository struct {
	store *Store
}

func NewPlayerRepository(store *Store) *PlayerRepository {
	return &PlayerRepository{store: store}
}

func (r *PlayerRepository) ListByTeam(ctx context.Context, teamID string) ([]player.Player, error) {
	query, args, err := qb.Select("*").From("players").
		Where(qb.Eq("team_id", teamID)).
		OrderBy("role", "name").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select players by team query: %w", err)
	}

	return r.selectPlayers(ctx, query, args)
}

func (r *PlayerRepository) ListByTeams(ctx context.Context, teamIDs []string) ([]player.Player, error) {
	ids := make([]any, 0, len(teamIDs))
	for _, teamID := range teamIDs {
		ids = append(ids, teamID)
	}

	query, args, err := qb.Select("*").From("players").
		Where(qb.In("team_id", ids)).
		OrderBy("team_id", "role", "name").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select players by teams query: %w", err)
	}

	return r.selectPlayers(ctx, query, args)
}

func (r *PlayerRepository) selectPlayers(ctx context.Context, query string, args []any) ([]player.Player, error) {
	var rows []playerTableModel
	if err := r.store.Select(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select players: %w", err)
	}

	out := make([]player.Player, 0, len(rows))
	for _, row := range rows {
		out = append(out, player.Player{
			ID:           row.ID,
			TeamID:       row.TeamID,
			Name:         row.Name,
			Role:         row.Role,
			BattingStyle: fromNullString(row.BattingStyle),
			BowlingStyle: fromNullString(row.BowlingStyle),
		})
	}

	return out, nil
}

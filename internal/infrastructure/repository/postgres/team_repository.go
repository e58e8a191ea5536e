package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/pitchside/matchsight/internal/domain/team"
	qb "github.com/pitchside/matchsight/internal/platform/querybuilder"
)

type TeamRepository struct {
	store *Store
}

func NewTeamRepository(store *Store) *TeamRepository {
	return &TeamRepository{store: store}
}

func (r *TeamRepository) List(ctx context.Context) ([]team.Team, error) {
	query, args, err := qb.Select("*").From("teams").
		OrderBy("id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select teams query: %w", err)
	}

	var rows []teamTableModel
	if err := r.store.Select(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select teams: %w", err)
	}

	out := make([]team.Team, 0, len(rows))
	for _, row := range rows {
		out = append(out, teamFromRow(row))
	}

	return out, nil
}

func (r *TeamRepository) GetByID(ctx context.Context, teamID string) (team.Team, bool, error) {
	query, args, err := qb.Select("*").From("teams").
		Where(qb.Eq("id", teamID)).
		Limit(1).
		ToSQL()
	if err != nil {
		return team.Team{}, false, fmt.Errorf("build select team query: %w", err)
	}

	var row teamTableModel
	found, err := r.store.Get(ctx, &row, query, args...)
	if err != nil {
		return team.Team{}, false, fmt.Errorf("select team %s: %w", teamID, err)
	}
	if !found {
		return team.Team{}, false, nil
	}

	return teamFromRow(row), true, nil
}

func (r *TeamRepository) Upsert(ctx context.Context, item team.Team) error {
	now := time.Now().UTC()
	query, args, err := qb.InsertInto("teams").
		Columns("id", "name", "short_name", "primary_color", "secondary_color", "created_at", "updated_at").
		Values(item.ID, item.Name, item.Short, nullString(item.PrimaryColor), nullString(item.SecondaryColor), now, now).
		Suffix("ON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name, short_name = EXCLUDED.short_name, updated_at = EXCLUDED.updated_at").
		ToSQL()
	if err != nil {
		return fmt.Errorf("build upsert team query: %w", err)
	}

	if err := r.store.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("upsert team %s: %w", item.ID, err)
	}

	return nil
}

func teamFromRow(row teamTableModel) team.Team {
	return team.Team{
		ID:             row.ID,
		Name:           row.Name,
		Short:          row.ShortName,
		PrimaryColor:   fromNullString(row.PrimaryColor),
		SecondaryColor: fromNullString(row.SecondaryColor),
	}
}

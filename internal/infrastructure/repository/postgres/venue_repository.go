package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/pitchside/matchsight/internal/domain/venue"
	qb "github.com/pitchside/matchsight/internal/platform/querybuilder"
)

type VenueRepository struct {
	store *Store
}

func NewVenueRepository(store *Store) *VenueRepository {
	return &VenueRepository{store: store}
}

func (r *VenueRepository) List(ctx context.Context) ([]venue.Venue, error) {
	query, args, err := qb.Select("*").From("venues").
		OrderBy("name").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select venues query: %w", err)
	}

	var rows []venueTableModel
	if err := r.store.Select(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select venues: %w", err)
	}

	out := make([]venue.Venue, 0, len(rows))
	for _, row := range rows {
		out = append(out, venueFromRow(row))
	}

	return out, nil
}

func (r *VenueRepository) GetByID(ctx context.Context, venueID string) (venue.Venue, bool, error) {
	query, args, err := qb.Select("*").From("venues").
		Where(qb.Eq("id", venueID)).
		Limit(1).
		ToSQL()
	if err != nil {
		return venue.Venue{}, false, fmt.Errorf("build select venue query: %w", err)
	}

	var row venueTableModel
	found, err := r.store.Get(ctx, &row, query, args...)
	if err != nil {
		return venue.Venue{}, false, fmt.Errorf("select venue %s: %w", venueID, err)
	}
	if !found {
		return venue.Venue{}, false, nil
	}

	return venueFromRow(row), true, nil
}

// Insert keeps the first writer's row when two synthesized venues race on
// the same id.
func (r *VenueRepository) Insert(ctx context.Context, item venue.Venue) error {
	now := time.Now().UTC()
	query, args, err := qb.InsertInto("venues").
		Columns("id", "name", "city", "country", "created_at", "updated_at").
		Values(item.ID, item.Name, item.City, item.Country, now, now).
		Suffix("ON CONFLICT (id) DO NOTHING").
		ToSQL()
	if err != nil {
		return fmt.Errorf("build insert venue query: %w", err)
	}

	if err := r.store.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("insert venue %s: %w", item.ID, err)
	}

	return nil
}

func venueFromRow(row venueTableModel) venue.Venue {
	return venue.Venue{
		ID:      row.ID,
		Name:    row.Name,
		City:    row.City,
		Country: row.Country,
	}
}

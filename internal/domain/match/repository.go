package match

import "context"

// Repository exposes the two operations the coordinator needs. InsertOrFetch
// must behave as insert-or-fetch-on-conflict keyed by (team1, team2, venue):
// when a row for the logical key already exists it returns that row with
// created=false instead of failing or duplicating.
type Repository interface {
	FindByTeamsAndVenue(ctx context.Context, team1ID, team2ID, venueID string) (Match, bool, error)
	InsertOrFetch(ctx context.Context, item Match) (Match, bool, error)
	GetByID(ctx context.Context, matchID string) (Match, bool, error)
}

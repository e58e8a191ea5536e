package venue

import "context"

// Repository exposes venue reads plus the single write the resolver needs.
type Repository interface {
	List(ctx context.Context) ([]Venue, error)
	GetByID(ctx context.Context, venueID string) (Venue, bool, error)
	Insert(ctx context.Context, item Venue) error
}

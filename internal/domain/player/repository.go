package player

import "context"

// Repository exposes player read operations.
type Repository interface {
	ListByTeam(ctx context.Context, teamID string) ([]Player, error)
	ListByTeams(ctx context.Context, teamIDs []string) ([]Player, error)
}

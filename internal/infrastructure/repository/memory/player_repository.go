package memory

import (
	"context"
	"sync"

	"github.com/pitchside/matchsight/internal/domain/player"
)

type PlayerRepository struct {
	mu            sync.RWMutex
	playersByTeam map[string][]player.Player
}

func NewPlayerRepository(players []player.Player) *PlayerRepository {
	byTeam := make(map[string][]player.Player)
	for _, item := range players {
		byTeam[item.TeamID] = append(byTeam[item.TeamID], item)
	}

	return &PlayerRepository{playersByTeam: byTeam}
}

func (r *PlayerRepository) ListByTeam(_ context.Context, teamID string) ([]player.Player, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	players := r.playersByTeam[teamID]
	out := make([]player.Player, 0, len(players))
	out = append(out, players...)

	return out, nil
}

func (r *PlayerRepository) ListByTeams(ctx context.Context, teamIDs []string) ([]player.Player, error) {
	out := make([]player.Player, 0)
	for _, teamID := range teamIDs {
		players, err := r.ListByTeam(ctx, teamID)
		if err != nil {
			return nil, err
		}
		out = append(out, players...)
	}

	return out, nil
}

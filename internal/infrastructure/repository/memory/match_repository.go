package memory

import (
	"context"
	"sync"

	"github.com/pitchside/matchsight/internal/domain/match"
)

type MatchRepository struct {
	mu      sync.Mutex
	matches []match.Match
}

func NewMatchRepository() *MatchRepository {
	return &MatchRepository{}
}

func (r *MatchRepository) FindByTeamsAndVenue(_ context.Context, team1ID, team2ID, venueID string) (match.Match, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.findLocked(team1ID, team2ID, venueID)
}

// InsertOrFetch mirrors the ON CONFLICT semantics of the postgres
// repository: a second insert for the same logical key returns the row that
// won, with created=false.
func (r *MatchRepository) InsertOrFetch(_ context.Context, item match.Match) (match.Match, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, ok, _ := r.findLocked(item.Team1ID, item.Team2ID, item.VenueID); ok {
		return existing, false, nil
	}

	r.matches = append(r.matches, item)
	return item, true, nil
}

func (r *MatchRepository) GetByID(_ context.Context, matchID string) (match.Match, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, item := range r.matches {
		if item.ID == matchID {
			return item, true, nil
		}
	}

	return match.Match{}, false, nil
}

func (r *MatchRepository) findLocked(team1ID, team2ID, venueID string) (match.Match, bool, error) {
	best := -1
	for idx, item := range r.matches {
		if item.Team1ID != team1ID || item.Team2ID != team2ID || item.VenueID != venueID {
			continue
		}
		if best == -1 || item.MatchDate.After(r.matches[best].MatchDate) {
			best = idx
		}
	}
	if best == -1 {
		return match.Match{}, false, nil
	}

	return r.matches[best], true, nil
}

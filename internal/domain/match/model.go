package match

import (
	"fmt"
	"strings"
	"time"
)

const (
	StatusUpcoming  = "upcoming"
	StatusLive      = "live"
	StatusCompleted = "completed"
	StatusAbandoned = "abandoned"
)

// Match references an ordered team pair and one venue. The resolution layer
// guarantees at most one row per (Team1ID, Team2ID, VenueID); the store backs
// that up with a unique constraint so concurrent creates collapse to one row.
type Match struct {
	ID        string
	Team1ID   string
	Team2ID   string
	VenueID   string
	MatchDate time.Time
	Status    string
}

func (m Match) Validate() error {
	if m.Team1ID == "" {
		return fmt.Errorf("match team1 id is required")
	}
	if m.Team2ID == "" {
		return fmt.Errorf("match team2 id is required")
	}
	if m.VenueID == "" {
		return fmt.Errorf("match venue id is required")
	}

	return nil
}

func NormalizeStatus(value string) string {
	status := strings.ToLower(strings.TrimSpace(value))
	if status == "" {
		return StatusUpcoming
	}
	return status
}

func IsLiveStatus(status string) bool {
	switch NormalizeStatus(status) {
	case StatusLive, "in_progress", "innings_break":
		return true
	default:
		return false
	}
}

package player

import "fmt"

const (
	RoleBatter       = "batter"
	RoleBowler       = "bowler"
	RoleAllRounder   = "all-rounder"
	RoleWicketKeeper = "wicket-keeper"
)

// Player belongs to exactly one team. Read-mostly: rows are seeded or created
// lazily and never deleted by the resolution layer.
type Player struct {
	ID           string
	TeamID       string
	Name         string
	Role         string
	BattingStyle string
	BowlingStyle string
}

func (p Player) Validate() error {
	if p.ID == "" {
		return fmt.Errorf("player id is required")
	}
	if p.Name == "" {
		return fmt.Errorf("player name is required")
	}
	if p.Role == "" {
		return fmt.Errorf("player role is required")
	}

	return nil
}

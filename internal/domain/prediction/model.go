package prediction

import (
	"fmt"
	"time"
)

// Prediction is owned 1:1 by a match. The store enforces uniqueness on
// MatchID, which is what makes live refreshes safe under concurrency.
// The three probabilities are integer percentages and must sum to 100.
type Prediction struct {
	ID                  string
	MatchID             string
	Team1WinProbability int
	Team2WinProbability int
	TieProbability      int
	Insights            []string
	PitchReport         []string
	GeneratedAt         time.Time
	UpdatedAt           time.Time
}

func (p Prediction) Validate() error {
	if p.MatchID == "" {
		return fmt.Errorf("prediction match id is required")
	}
	if sum := p.Team1WinProbability + p.Team2WinProbability + p.TieProbability; sum != 100 {
		return fmt.Errorf("prediction probabilities must sum to 100, got %d", sum)
	}

	return nil
}

package team

import "fmt"

// Team is a canonical side that can appear in a match. The ID is a stable
// short code ("csk", "mi") and must not change once a match references it.
type Team struct {
	ID             string
	Name           string
	Short          string
	PrimaryColor   string
	SecondaryColor string
}

func (t Team) Validate() error {
	if t.ID == "" {
		return fmt.Errorf("team id is required")
	}
	if t.Name == "" {
		return fmt.Errorf("team name is required")
	}
	if t.Short == "" {
		return fmt.Errorf("team short name is required")
	}

	return nil
}

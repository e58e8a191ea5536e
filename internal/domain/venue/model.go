package venue

import "fmt"

// Placeholder values used when a venue is synthesized from a bare name.
const (
	UnknownCity    = "Unknown"
	DefaultCountry = "India"
)

// Venue is a canonical ground. Name is free text supplied by users and is the
// only identity proxy we have: several spellings may refer to the same ground,
// and no external registry exists to disambiguate them.
type Venue struct {
	ID      string
	Name    string
	City    string
	Country string
}

func (v Venue) Validate() error {
	if v.ID == "" {
		return fmt.Errorf("venue id is required")
	}
	if v.Name == "" {
		return fmt.Errorf("venue name is required")
	}
	if v.City == "" {
		return fmt.Errorf("venue city is required")
	}

	return nil
}

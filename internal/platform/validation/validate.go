package validation

import (
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/pitchside/matchsight/internal/domain/match"
	"github.com/pitchside/matchsight/internal/domain/player"
	"github.com/pitchside/matchsight/internal/domain/team"
	"github.com/pitchside/matchsight/internal/domain/venue"
)

// Report is an advisory pass/fail. Callers log the reasons and continue with
// best-effort data; validation never aborts a request.
type Report struct {
	Valid  bool
	Errors []string
}

func ok() Report {
	return Report{Valid: true}
}

func invalid(reasons ...string) Report {
	return Report{Valid: false, Errors: reasons}
}

var check = validator.New(validator.WithRequiredStructEnabled())

type teamRules struct {
	ID    string `validate:"required"`
	Name  string `validate:"required"`
	Short string `validate:"required"`
}

type venueRules struct {
	ID   string `validate:"required"`
	Name string `validate:"required"`
	City string `validate:"required"`
}

type playerRules struct {
	ID   string `validate:"required"`
	Name string `validate:"required"`
	Role string `validate:"required"`
}

// matchRules needs both team ids and at least one venue reference: either a
// resolved venue id or a raw venue name the resolver can work with.
type matchRules struct {
	Team1ID   string `validate:"required"`
	Team2ID   string `validate:"required"`
	VenueID   string `validate:"required_without=VenueName"`
	VenueName string `validate:"required_without=VenueID"`
}

func Team(item team.Team) Report {
	return run("team", teamRules{ID: item.ID, Name: item.Name, Short: item.Short})
}

func Venue(item venue.Venue) Report {
	return run("venue", venueRules{ID: item.ID, Name: item.Name, City: item.City})
}

func Player(item player.Player) Report {
	return run("player", playerRules{ID: item.ID, Name: item.Name, Role: item.Role})
}

func Match(item match.Match, venueName string) Report {
	return run("match", matchRules{
		Team1ID:   item.Team1ID,
		Team2ID:   item.Team2ID,
		VenueID:   item.VenueID,
		VenueName: venueName,
	})
}

// ForKind validates an untyped candidate. A nil or unrecognized candidate is
// reported as invalid rather than raising an error, mirroring the advisory
// contract of the typed helpers.
func ForKind(kind string, candidate any) Report {
	if candidate == nil {
		return invalid(strings.ToLower(strings.TrimSpace(kind)) + " candidate is missing")
	}

	switch item := candidate.(type) {
	case team.Team:
		return Team(item)
	case *team.Team:
		return Team(*item)
	case venue.Venue:
		return Venue(item)
	case *venue.Venue:
		return Venue(*item)
	case player.Player:
		return Player(item)
	case *player.Player:
		return Player(*item)
	case match.Match:
		return Match(item, "")
	case *match.Match:
		return Match(*item, "")
	default:
		return invalid("unsupported candidate kind " + kind)
	}
}

func run(kind string, rules any) Report {
	err := check.Struct(rules)
	if err == nil {
		return ok()
	}

	fieldErrs, isFieldErrs := err.(validator.ValidationErrors)
	if !isFieldErrs {
		return invalid(kind + " candidate could not be validated")
	}

	reasons := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		reasons = append(reasons, kind+" "+fieldLabel(fe.Field())+" is required")
	}
	return invalid(reasons...)
}

func fieldLabel(field string) string {
	switch field {
	case "ID":
		return "id"
	case "Short":
		return "short name"
	case "Team1ID":
		return "team1 id"
	case "Team2ID":
		return "team2 id"
	case "VenueID":
		return "venue id"
	case "VenueName":
		return "venue name"
	default:
		return strings.ToLower(field)
	}
}

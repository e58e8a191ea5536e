package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pitchside/matchsight/internal/domain/match"
	"github.com/pitchside/matchsight/internal/domain/team"
	"github.com/pitchside/matchsight/internal/domain/venue"
)

func TestTeam_EmptyCandidateListsAllMissingFields(t *testing.T) {
	t.Parallel()

	report := Team(team.Team{})
	require.False(t, report.Valid)
	require.Len(t, report.Errors, 3)
	assert.Contains(t, report.Errors, "team id is required")
	assert.Contains(t, report.Errors, "team name is required")
	assert.Contains(t, report.Errors, "team short name is required")
}

func TestTeam_CompleteCandidatePasses(t *testing.T) {
	t.Parallel()

	report := Team(team.Team{ID: "csk", Name: "Chennai Super Kings", Short: "CSK"})
	assert.True(t, report.Valid)
	assert.Empty(t, report.Errors)
}

func TestVenue(t *testing.T) {
	t.Parallel()

	report := Venue(venue.Venue{Name: "Wankhede Stadium"})
	require.False(t, report.Valid)
	assert.Contains(t, report.Errors, "venue id is required")
	assert.Contains(t, report.Errors, "venue city is required")
}

func TestMatch_VenueNameSatisfiesVenueReference(t *testing.T) {
	t.Parallel()

	report := Match(match.Match{Team1ID: "csk", Team2ID: "mi"}, "wankhede stadium")
	assert.True(t, report.Valid)

	report = Match(match.Match{Team1ID: "csk", Team2ID: "mi"}, "")
	require.False(t, report.Valid)
	assert.Contains(t, report.Errors, "match venue id is required")
}

func TestForKind_NilCandidate(t *testing.T) {
	t.Parallel()

	report := ForKind("team", nil)
	require.False(t, report.Valid)
	require.Len(t, report.Errors, 1)
	assert.Equal(t, "team candidate is missing", report.Errors[0])
}

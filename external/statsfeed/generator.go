// Package statsfeed fabricates the statistical content of a match analysis.
// The numbers carry no predictive value; the only hard contract is that the
// three win probabilities always sum to exactly 100 and that output for a
// given match is stable until a live refresh asks for a new roll.
package statsfeed

import (
	"fmt"
	"hash/fnv"
	"math/rand"

	"github.com/valyala/bytebufferpool"
)

type MatchOdds struct {
	Team1Win    int
	Team2Win    int
	Tie         int
	Insights    []string
	PitchReport []string
}

type Generator struct{}

func NewGenerator() *Generator {
	return &Generator{}
}

// MatchOdds derives odds from the match identity. The same (matchID, roll)
// pair always yields the same numbers; live refreshes pass an incremented
// roll to get fresh values.
func (g *Generator) MatchOdds(matchID, team1Name, team2Name, venueName string, roll int64) MatchOdds {
	rng := rand.New(rand.NewSource(seedFor(matchID, roll)))

	team1Win := 30 + rng.Intn(31) // 30..60
	tie := 3 + rng.Intn(8)        // 3..10
	team2Win := 100 - team1Win - tie

	return MatchOdds{
		Team1Win:    team1Win,
		Team2Win:    team2Win,
		Tie:         tie,
		Insights:    buildInsights(rng, team1Name, team2Name, venueName, team1Win, team2Win),
		PitchReport: buildPitchReport(rng, venueName),
	}
}

func seedFor(matchID string, roll int64) int64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(matchID))
	return int64(h.Sum64()) ^ roll
}

var pitchTypes = []string{"batting-friendly", "balanced", "spin-friendly", "seam-friendly"}
var weatherNotes = []string{"clear evening", "light dew expected", "humid conditions", "overcast with a breeze"}

func buildInsights(rng *rand.Rand, team1, team2, venueName string, team1Win, team2Win int) []string {
	favourite, other := team1, team2
	if team2Win > team1Win {
		favourite, other = team2, team1
	}

	recentWins := 2 + rng.Intn(3)
	chaseRate := 52 + rng.Intn(18)

	out := make([]string, 0, 3)
	out = append(out, renderInsight("%s have won %d of their last 5 meetings with %s", favourite, recentWins, other))
	out = append(out, renderInsight("Teams chasing at %s have won %d%% of recent matches", venueName, chaseRate))
	out = append(out, renderInsight("%s's top order averages %d runs in the powerplay this season", favourite, 42+rng.Intn(14)))

	return out
}

func buildPitchReport(rng *rand.Rand, venueName string) []string {
	pitch := pitchTypes[rng.Intn(len(pitchTypes))]
	weather := weatherNotes[rng.Intn(len(weatherNotes))]
	firstInningsPar := 155 + rng.Intn(40)

	return []string{
		renderInsight("Surface at %s reads %s", venueName, pitch),
		renderInsight("Forecast: %s", weather),
		renderInsight("Par first-innings score around %d", firstInningsPar),
	}
}

// renderInsight formats through a pooled buffer; insight lines are built on
// every analysis request and this keeps the per-request garbage flat.
func renderInsight(format string, args ...any) string {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	_, _ = fmt.Fprintf(buf, format, args...)
	return buf.String()
}

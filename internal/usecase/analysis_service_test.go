package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/pitchside/matchsight/external/statsfeed"
	"github.com/pitchside/matchsight/internal/infrastructure/repository/memory"
	"github.com/pitchside/matchsight/internal/platform/id"
	"github.com/pitchside/matchsight/internal/platform/logging"
)

func newTestAnalysisService() *AnalysisService {
	resolver := seededResolver()
	idGen := id.NewRandomGenerator()
	logger := logging.NewNop()

	matches := NewMatchService(memory.NewMatchRepository(), resolver, idGen, testRetry(), logger)
	players := NewPlayerService(memory.NewPlayerRepository(memory.SeedPlayers()), resolver, memory.SeedPlayers(), SourceDatabase, testRetry(), logger)
	predictions := NewPredictionService(memory.NewPredictionRepository(), matches, resolver, statsfeed.NewGenerator(), idGen, SourceDatabase, testRetry(), logger)

	return NewAnalysisService(matches, players, predictions, resolver, logger)
}

func TestBuildAnalysis_FullBundle(t *testing.T) {
	t.Parallel()

	svc := newTestAnalysisService()
	got, err := svc.BuildAnalysis(context.Background(), MatchRequest{
		Team1ID:   "csk",
		Team2ID:   "mi",
		VenueName: "wankhede stadium",
	})
	if err != nil {
		t.Fatalf("build: %v", err)
	}

	if got.Match.Match.ID == "" || got.Match.Venue.Venue.ID != "wankhede" {
		t.Fatalf("unexpected match record: %+v", got.Match)
	}
	if len(got.Teams) != 2 || got.Teams[0].ID != "csk" || got.Teams[1].ID != "mi" {
		t.Fatalf("expected both teams in request order, got %+v", got.Teams)
	}
	if len(got.Players.Data) == 0 {
		t.Fatalf("expected squad data, got %+v", got.Players)
	}

	p := got.Prediction.Data
	if sum := p.Team1WinProbability + p.Team2WinProbability + p.TieProbability; sum != 100 {
		t.Fatalf("prediction must sum to 100, got %d", sum)
	}
	if p.MatchID != got.Match.Match.ID {
		t.Fatalf("prediction must target the resolved match")
	}

	if len(got.Touched[TouchTeams]) != 2 {
		t.Fatalf("expected both teams touched, got %v", got.Touched)
	}
	if len(got.Touched[TouchVenues]) == 0 || len(got.Touched[TouchPlayers]) == 0 {
		t.Fatalf("expected venue and player touches, got %v", got.Touched)
	}
}

func TestBuildAnalysis_InvalidInput(t *testing.T) {
	t.Parallel()

	svc := newTestAnalysisService()
	if _, err := svc.BuildAnalysis(context.Background(), MatchRequest{Team1ID: "csk"}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestBuildAnalysis_ReusesCallerTouchSet(t *testing.T) {
	t.Parallel()

	svc := newTestAnalysisService()
	ctx, ts := WithTouchSet(context.Background())

	got, err := svc.BuildAnalysis(ctx, MatchRequest{Team1ID: "kkr", Team2ID: "rcb", VenueName: "Eden Gardens"})
	if err != nil {
		t.Fatalf("build: %v", err)
	}

	if len(ts.IDs(TouchTeams)) != 2 {
		t.Fatalf("caller touch set must receive the touches, got %v", ts.Summary())
	}
	if len(got.Touched) == 0 {
		t.Fatalf("bundle must echo the touch summary")
	}
}

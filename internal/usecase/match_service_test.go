package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/pitchside/matchsight/internal/domain/match"
	"github.com/pitchside/matchsight/internal/infrastructure/repository/memory"
	"github.com/pitchside/matchsight/internal/platform/id"
	"github.com/pitchside/matchsight/internal/platform/logging"
)

type failingMatchRepo struct{}

func (failingMatchRepo) FindByTeamsAndVenue(context.Context, string, string, string) (match.Match, bool, error) {
	return match.Match{}, false, errStoreDown
}
func (failingMatchRepo) InsertOrFetch(context.Context, match.Match) (match.Match, bool, error) {
	return match.Match{}, false, errStoreDown
}
func (failingMatchRepo) GetByID(context.Context, string) (match.Match, bool, error) {
	return match.Match{}, false, errStoreDown
}

func newTestMatchService(matches match.Repository) *MatchService {
	return NewMatchService(matches, seededResolver(), id.NewRandomGenerator(), testRetry(), logging.NewNop())
}

func TestFindOrCreateMatch_CreatesThenReuses(t *testing.T) {
	t.Parallel()

	svc := newTestMatchService(memory.NewMatchRepository())
	ctx := context.Background()
	req := MatchRequest{
		Team1ID:   "csk",
		Team2ID:   "mi",
		VenueName: "Wankhede Stadium",
		MatchDate: time.Date(2026, 4, 12, 19, 30, 0, 0, time.UTC),
	}

	first, err := svc.FindOrCreateMatch(ctx, req)
	if err != nil {
		t.Fatalf("first call: %v", err)
	}
	if !first.IsNew || !first.Persisted {
		t.Fatalf("expected a persisted new match, got %+v", first)
	}
	if first.Match.Status != match.StatusUpcoming {
		t.Fatalf("blank status must normalize to upcoming, got %q", first.Match.Status)
	}

	second, err := svc.FindOrCreateMatch(ctx, req)
	if err != nil {
		t.Fatalf("second call: %v", err)
	}
	if second.IsNew || second.Match.ID != first.Match.ID {
		t.Fatalf("same logical key must reuse the row: %+v vs %+v", first.Match, second.Match)
	}
}

func TestFindOrCreateMatch_VenueSpellingConverges(t *testing.T) {
	t.Parallel()

	svc := newTestMatchService(memory.NewMatchRepository())
	ctx := context.Background()

	first, err := svc.FindOrCreateMatch(ctx, MatchRequest{Team1ID: "csk", Team2ID: "mi", VenueName: "Wankhede Stadium"})
	if err != nil {
		t.Fatalf("first call: %v", err)
	}
	second, err := svc.FindOrCreateMatch(ctx, MatchRequest{Team1ID: "csk", Team2ID: "mi", VenueName: "wankhede stadium"})
	if err != nil {
		t.Fatalf("second call: %v", err)
	}

	if second.Match.ID != first.Match.ID {
		t.Fatalf("different spellings of one venue must converge on one match")
	}
}

func TestFindOrCreateMatch_InvalidInput(t *testing.T) {
	t.Parallel()

	svc := newTestMatchService(memory.NewMatchRepository())
	ctx := context.Background()

	if _, err := svc.FindOrCreateMatch(ctx, MatchRequest{Team2ID: "mi", VenueName: "Wankhede Stadium"}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("missing team1 must fail, got %v", err)
	}
	if _, err := svc.FindOrCreateMatch(ctx, MatchRequest{Team1ID: "csk", Team2ID: "csk", VenueName: "Wankhede Stadium"}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("identical teams must fail, got %v", err)
	}
	if _, err := svc.FindOrCreateMatch(ctx, MatchRequest{Team1ID: "csk", Team2ID: "mi"}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("missing venue name must fail, got %v", err)
	}
}

func TestFindOrCreateMatch_StoreDownServesUnpersistedRecord(t *testing.T) {
	t.Parallel()

	svc := newTestMatchService(failingMatchRepo{})
	got, err := svc.FindOrCreateMatch(context.Background(), MatchRequest{
		Team1ID:   "csk",
		Team2ID:   "mi",
		VenueName: "Wankhede Stadium",
	})
	if err != nil {
		t.Fatalf("store failure must not surface: %v", err)
	}
	if !got.IsNew || got.Persisted {
		t.Fatalf("expected unpersisted best-effort record, got %+v", got)
	}
	if got.Match.ID == "" || got.Match.VenueID == "" {
		t.Fatalf("best-effort record must be structurally complete, got %+v", got.Match)
	}
}

func TestFindOrCreateMatch_TracksTouches(t *testing.T) {
	t.Parallel()

	svc := newTestMatchService(memory.NewMatchRepository())
	ctx, ts := WithTouchSet(context.Background())

	if _, err := svc.FindOrCreateMatch(ctx, MatchRequest{Team1ID: "csk", Team2ID: "mi", VenueName: "Wankhede Stadium"}); err != nil {
		t.Fatalf("resolve: %v", err)
	}

	teams := ts.IDs(TouchTeams)
	if len(teams) != 2 || teams[0] != "csk" || teams[1] != "mi" {
		t.Fatalf("expected both teams touched, got %v", teams)
	}
	if venues := ts.IDs(TouchVenues); len(venues) != 1 {
		t.Fatalf("expected venue touched, got %v", venues)
	}
}

func TestGetMatch(t *testing.T) {
	t.Parallel()

	repo := memory.NewMatchRepository()
	svc := newTestMatchService(repo)
	ctx := context.Background()

	record, err := svc.FindOrCreateMatch(ctx, MatchRequest{Team1ID: "kkr", Team2ID: "rcb", VenueName: "Eden Gardens"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	got, found, err := svc.GetMatch(ctx, record.Match.ID)
	if err != nil || !found {
		t.Fatalf("get: found=%v err=%v", found, err)
	}
	if got.ID != record.Match.ID {
		t.Fatalf("expected %s, got %s", record.Match.ID, got.ID)
	}

	if _, found, err := svc.GetMatch(ctx, "missing"); err != nil || found {
		t.Fatalf("missing id: found=%v err=%v", found, err)
	}
	if _, _, err := svc.GetMatch(ctx, " "); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("blank id must fail, got %v", err)
	}
}

package usecase

import (
	"context"

	"github.com/sourcegraph/conc/pool"

	"github.com/pitchside/matchsight/internal/domain/player"
	"github.com/pitchside/matchsight/internal/domain/prediction"
	"github.com/pitchside/matchsight/internal/domain/team"
	"github.com/pitchside/matchsight/internal/platform/logging"
)

// Analysis is the full dashboard bundle for one match: the resolved match,
// both squads, the prediction envelope, and the reference rows the request
// touched along the way.
type Analysis struct {
	Match      MatchRecord
	Teams      []team.Team
	Players    FetchResult[[]player.Player]
	Prediction FetchResult[prediction.Prediction]
	Touched    map[TouchKind][]string
}

// AnalysisService assembles the bundle. The sub-fetches are independent once
// the match is resolved, so they run concurrently.
type AnalysisService struct {
	matches     *MatchService
	players     *PlayerService
	predictions *PredictionService
	resolver    *ResolverService
	logger      *logging.Logger
}

func NewAnalysisService(
	matches *MatchService,
	players *PlayerService,
	predictions *PredictionService,
	resolver *ResolverService,
	logger *logging.Logger,
) *AnalysisService {
	if logger == nil {
		logger = logging.Default()
	}
	return &AnalysisService{
		matches:     matches,
		players:     players,
		predictions: predictions,
		resolver:    resolver,
		logger:      logger,
	}
}

// BuildAnalysis resolves the match first, then fans out for squads, team
// details, and the prediction. Sub-fetches degrade internally, so the only
// errors surfaced are invalid input and context cancellation.
func (s *AnalysisService) BuildAnalysis(ctx context.Context, req MatchRequest) (Analysis, error) {
	ctx, span := startUsecaseSpan(ctx, "analysis.BuildAnalysis")
	defer span.End()

	ts := TouchSetFrom(ctx)
	if ts == nil {
		ctx, ts = WithTouchSet(ctx)
	}

	record, err := s.matches.FindOrCreateMatch(ctx, req)
	if err != nil {
		return Analysis{}, err
	}

	out := Analysis{Match: record}

	p := pool.New().WithContext(ctx)
	p.Go(func(ctx context.Context) error {
		out.Teams = s.lookupTeams(ctx, record.Match.Team1ID, record.Match.Team2ID)
		return nil
	})
	p.Go(func(ctx context.Context) error {
		out.Players = s.players.FetchPlayersEnhanced(ctx, []string{record.Match.Team1ID, record.Match.Team2ID})
		return nil
	})
	p.Go(func(ctx context.Context) error {
		out.Prediction = s.predictions.GeneratePredictions(ctx, PredictionRequest{
			MatchID:   record.Match.ID,
			Team1ID:   record.Match.Team1ID,
			Team2ID:   record.Match.Team2ID,
			VenueName: record.Venue.Venue.Name,
			MatchDate: record.Match.MatchDate,
			Status:    record.Match.Status,
		}, false)
		return nil
	})
	if waitErr := p.Wait(); waitErr != nil {
		return Analysis{}, waitErr
	}

	out.Touched = ts.Summary()
	return out, nil
}

func (s *AnalysisService) lookupTeams(ctx context.Context, teamIDs ...string) []team.Team {
	out := make([]team.Team, 0, len(teamIDs))
	for _, teamID := range teamIDs {
		if item, ok := s.resolver.LookupTeam(ctx, teamID); ok {
			out = append(out, item)
			continue
		}
		s.logger.WarnContext(ctx, "team missing from store and reference data",
			"team_id", teamID,
		)
		out = append(out, team.Team{ID: teamID, Name: teamID})
	}
	return out
}

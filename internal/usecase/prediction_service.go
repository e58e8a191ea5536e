package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/pitchside/matchsight/external/statsfeed"
	"github.com/pitchside/matchsight/internal/domain/match"
	"github.com/pitchside/matchsight/internal/domain/prediction"
	"github.com/pitchside/matchsight/internal/platform/id"
	"github.com/pitchside/matchsight/internal/platform/logging"
	"github.com/pitchside/matchsight/internal/platform/resilience"
)

// PredictionRequest identifies the match to predict. Either MatchID or the
// full logical key (team ids plus venue name) must be present.
type PredictionRequest struct {
	MatchID   string
	Team1ID   string
	Team2ID   string
	VenueName string
	MatchDate time.Time
	Status    string
}

// PredictionService owns the one-prediction-per-match lifecycle. A stored
// prediction is served as-is for upcoming matches; live matches and explicit
// live refreshes regenerate and upsert in place.
type PredictionService struct {
	predictions prediction.Repository
	matches     *MatchService
	resolver    *ResolverService
	stats       *statsfeed.Generator
	idGen       id.Generator

	primarySource Source
	retry         resilience.RetryConfig
	logger        *logging.Logger
}

func NewPredictionService(
	predictions prediction.Repository,
	matches *MatchService,
	resolver *ResolverService,
	stats *statsfeed.Generator,
	idGen id.Generator,
	primarySource Source,
	retry resilience.RetryConfig,
	logger *logging.Logger,
) *PredictionService {
	if logger == nil {
		logger = logging.Default()
	}
	if primarySource == "" {
		primarySource = SourceDatabase
	}
	return &PredictionService{
		predictions:   predictions,
		matches:       matches,
		resolver:      resolver,
		stats:         stats,
		idGen:         idGen,
		primarySource: primarySource,
		retry:         retry,
		logger:        logger,
	}
}

// GeneratePredictions returns the prediction for the requested match,
// generating and persisting one when none exists. isLiveUpdate forces a
// regeneration even when a stored prediction exists. The envelope is always
// populated: a broken pipeline yields neutral odds tagged SourceError.
func (s *PredictionService) GeneratePredictions(ctx context.Context, req PredictionRequest, isLiveUpdate bool) FetchResult[prediction.Prediction] {
	ctx, span := startUsecaseSpan(ctx, "predictions.GeneratePredictions")
	defer span.End()

	resolved, venueName, err := s.ensureMatch(ctx, req)
	if err != nil {
		s.logger.ErrorContext(ctx, "prediction match resolution failed, serving neutral odds",
			"match_id", req.MatchID,
			"error", err.Error(),
		)
		return resultFrom(neutralPrediction(req.MatchID), SourceError, "match resolution failed: "+err.Error())
	}

	existing, found, getErr := s.getStored(ctx, resolved.ID)
	if getErr != nil {
		s.logger.ErrorContext(ctx, "prediction lookup failed, serving neutral odds",
			"match_id", resolved.ID,
			"error", getErr.Error(),
		)
		return resultFrom(neutralPrediction(resolved.ID), SourceError, "prediction lookup failed")
	}

	refresh := isLiveUpdate || match.IsLiveStatus(resolved.Status)
	if found && !refresh {
		return resultFrom(existing, s.primarySource, "")
	}

	computed, buildErr := s.buildPrediction(ctx, resolved, venueName, existing, found, refresh)
	if buildErr != nil {
		s.logger.ErrorContext(ctx, "prediction generation failed, serving neutral odds",
			"match_id", resolved.ID,
			"error", buildErr.Error(),
		)
		return resultFrom(neutralPrediction(resolved.ID), SourceError, "prediction generation failed")
	}

	upsertErr := resilience.RetryNoResult(ctx, s.retryWithLog(ctx, "prediction upsert"), func(ctx context.Context) error {
		return s.predictions.Upsert(ctx, computed)
	})
	if upsertErr != nil {
		s.logger.ErrorContext(ctx, "prediction upsert failed, serving unpersisted odds",
			"match_id", resolved.ID,
			"error", upsertErr.Error(),
		)
		return resultFrom(computed, SourceFallback, "prediction computed but not persisted")
	}

	s.logger.InfoContext(ctx, "prediction stored",
		"match_id", resolved.ID,
		"refreshed", found,
		"live", refresh,
	)
	return resultFrom(computed, s.primarySource, "")
}

// ensureMatch turns the request into a concrete match row. A bare MatchID is
// looked up directly; otherwise the request goes through find-or-create.
func (s *PredictionService) ensureMatch(ctx context.Context, req PredictionRequest) (match.Match, string, error) {
	req.MatchID = strings.TrimSpace(req.MatchID)

	if req.MatchID != "" {
		item, found, err := s.matches.GetMatch(ctx, req.MatchID)
		if err == nil && found {
			return item, s.venueNameFor(ctx, item.VenueID, req.VenueName), nil
		}
		if err != nil {
			s.logger.WarnContext(ctx, "match id lookup failed, falling back to logical key",
				"match_id", req.MatchID,
				"error", err.Error(),
			)
		}
		if req.Team1ID == "" || req.Team2ID == "" {
			return match.Match{}, "", fmt.Errorf("%w: match %s", ErrNotFound, req.MatchID)
		}
	}

	record, err := s.matches.FindOrCreateMatch(ctx, MatchRequest{
		Team1ID:   req.Team1ID,
		Team2ID:   req.Team2ID,
		VenueName: req.VenueName,
		MatchDate: req.MatchDate,
		Status:    req.Status,
	})
	if err != nil {
		return match.Match{}, "", err
	}
	return record.Match, record.Venue.Venue.Name, nil
}

func (s *PredictionService) getStored(ctx context.Context, matchID string) (prediction.Prediction, bool, error) {
	type lookup struct {
		item  prediction.Prediction
		found bool
	}
	out, err := resilience.Retry(ctx, s.retryWithLog(ctx, "prediction lookup"), func(ctx context.Context) (lookup, error) {
		item, found, getErr := s.predictions.GetByMatch(ctx, matchID)
		if getErr != nil {
			return lookup{}, getErr
		}
		return lookup{item: item, found: found}, nil
	})
	return out.item, out.found, err
}

func (s *PredictionService) buildPrediction(
	ctx context.Context,
	resolved match.Match,
	venueName string,
	existing prediction.Prediction,
	found bool,
	refresh bool,
) (prediction.Prediction, error) {
	team1Name := s.teamLabel(ctx, resolved.Team1ID)
	team2Name := s.teamLabel(ctx, resolved.Team2ID)

	// roll 0 is the stable pre-match prediction; refreshes get a new roll so
	// live odds actually move.
	var roll int64
	if refresh && found {
		roll = time.Now().UnixNano()
	}

	odds := s.stats.MatchOdds(resolved.ID, team1Name, team2Name, venueName, roll)

	now := time.Now().UTC()
	computed := prediction.Prediction{
		MatchID:             resolved.ID,
		Team1WinProbability: odds.Team1Win,
		Team2WinProbability: odds.Team2Win,
		TieProbability:      odds.Tie,
		Insights:            odds.Insights,
		PitchReport:         odds.PitchReport,
		GeneratedAt:         now,
		UpdatedAt:           now,
	}
	if found {
		computed.ID = existing.ID
		computed.GeneratedAt = existing.GeneratedAt
	} else {
		predictionID, err := s.idGen.NewID()
		if err != nil {
			return prediction.Prediction{}, fmt.Errorf("generate prediction id: %w", err)
		}
		computed.ID = predictionID
	}

	if err := computed.Validate(); err != nil {
		return prediction.Prediction{}, fmt.Errorf("computed prediction invalid: %w", err)
	}
	return computed, nil
}

func (s *PredictionService) teamLabel(ctx context.Context, teamID string) string {
	if item, ok := s.resolver.LookupTeam(ctx, teamID); ok {
		return item.Name
	}
	return teamID
}

func (s *PredictionService) venueNameFor(ctx context.Context, venueID, fallbackName string) string {
	venues := s.resolver.GetVenuesEnhanced(ctx)
	for _, item := range venues.Data {
		if item.ID == venueID {
			return item.Name
		}
	}
	if name := strings.TrimSpace(fallbackName); name != "" {
		return name
	}
	return venueID
}

func (s *PredictionService) retryWithLog(ctx context.Context, label string) resilience.RetryConfig {
	cfg := s.retry
	if cfg.OnRetry == nil {
		cfg.OnRetry = func(attempt int, err error) {
			s.logger.WarnContext(ctx, label+": retrying after failure",
				"attempt", attempt,
				"error", err.Error(),
			)
		}
	}
	return cfg
}

// neutralPrediction is the hard floor of the degradation ladder: the numbers
// still sum to 100 so downstream widgets render, but the envelope marks the
// data as error-sourced and nothing here is persisted.
func neutralPrediction(matchID string) prediction.Prediction {
	now := time.Now().UTC()
	return prediction.Prediction{
		MatchID:             matchID,
		Team1WinProbability: 50,
		Team2WinProbability: 45,
		TieProbability:      5,
		Insights:            []string{"Prediction service temporarily unavailable"},
		PitchReport:         []string{"Pitch report unavailable"},
		GeneratedAt:         now,
		UpdatedAt:           now,
	}
}

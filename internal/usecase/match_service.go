package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/pitchside/matchsight/internal/domain/match"
	"github.com/pitchside/matchsight/internal/platform/id"
	"github.com/pitchside/matchsight/internal/platform/logging"
	"github.com/pitchside/matchsight/internal/platform/resilience"
	"github.com/pitchside/matchsight/internal/platform/validation"
)

// MatchRequest identifies a match by its logical key. VenueName is raw user
// text and goes through venue resolution.
type MatchRequest struct {
	Team1ID   string
	Team2ID   string
	VenueName string
	MatchDate time.Time
	Status    string
}

// MatchRecord is a resolved match plus how its venue resolved. Persisted is
// false when the store could not hold the row and the caller got a
// best-effort record instead.
type MatchRecord struct {
	Match     match.Match
	Venue     VenueResolution
	IsNew     bool
	Persisted bool
}

// MatchService coordinates find-or-create for matches. Repeat calls with the
// same logical key converge on one row; the store's unique constraint on
// (team1, team2, venue) collapses concurrent creates.
type MatchService struct {
	matches  match.Repository
	resolver *ResolverService
	idGen    id.Generator

	retry  resilience.RetryConfig
	logger *logging.Logger
}

func NewMatchService(
	matches match.Repository,
	resolver *ResolverService,
	idGen id.Generator,
	retry resilience.RetryConfig,
	logger *logging.Logger,
) *MatchService {
	if logger == nil {
		logger = logging.Default()
	}
	return &MatchService{
		matches:  matches,
		resolver: resolver,
		idGen:    idGen,
		retry:    retry,
		logger:   logger,
	}
}

// FindOrCreateMatch resolves the venue, reuses an existing match for the
// logical key, and creates one otherwise. Store failures after venue
// resolution degrade to an unpersisted record rather than an error; only
// invalid input fails.
func (s *MatchService) FindOrCreateMatch(ctx context.Context, req MatchRequest) (MatchRecord, error) {
	ctx, span := startUsecaseSpan(ctx, "matches.FindOrCreateMatch")
	defer span.End()

	req.Team1ID = strings.TrimSpace(req.Team1ID)
	req.Team2ID = strings.TrimSpace(req.Team2ID)
	if req.Team1ID == "" || req.Team2ID == "" {
		return MatchRecord{}, fmt.Errorf("%w: both team ids are required", ErrInvalidInput)
	}
	if req.Team1ID == req.Team2ID {
		return MatchRecord{}, fmt.Errorf("%w: a team cannot play itself", ErrInvalidInput)
	}

	if report := validation.Match(match.Match{Team1ID: req.Team1ID, Team2ID: req.Team2ID}, req.VenueName); !report.Valid {
		s.logger.WarnContext(ctx, "match request failed validation, continuing",
			"reasons", report.Errors,
		)
	}

	resolution, err := s.resolver.FindOrCreateVenue(ctx, req.VenueName)
	if err != nil {
		return MatchRecord{}, err
	}
	touch(ctx, TouchTeams, req.Team1ID, req.Team2ID)

	existing, found, findErr := s.findExisting(ctx, req, resolution.Venue.ID)
	if findErr == nil && found {
		s.logger.DebugContext(ctx, "match reused",
			"match_id", existing.ID,
			"team1_id", req.Team1ID,
			"team2_id", req.Team2ID,
			"venue_id", resolution.Venue.ID,
		)
		return MatchRecord{Match: existing, Venue: resolution, Persisted: true}, nil
	}
	if findErr != nil {
		s.logger.ErrorContext(ctx, "match lookup failed, attempting create",
			"error", findErr.Error(),
		)
	}

	return s.createMatch(ctx, req, resolution)
}

// GetMatch fetches a match by id.
func (s *MatchService) GetMatch(ctx context.Context, matchID string) (match.Match, bool, error) {
	matchID = strings.TrimSpace(matchID)
	if matchID == "" {
		return match.Match{}, false, fmt.Errorf("%w: match id is required", ErrInvalidInput)
	}

	type lookup struct {
		item  match.Match
		found bool
	}
	out, err := resilience.Retry(ctx, s.retryWithLog(ctx, "match by id"), func(ctx context.Context) (lookup, error) {
		item, found, getErr := s.matches.GetByID(ctx, matchID)
		if getErr != nil {
			return lookup{}, getErr
		}
		return lookup{item: item, found: found}, nil
	})
	if err != nil {
		return match.Match{}, false, fmt.Errorf("get match %s: %w", matchID, err)
	}
	return out.item, out.found, nil
}

func (s *MatchService) findExisting(ctx context.Context, req MatchRequest, venueID string) (match.Match, bool, error) {
	type lookup struct {
		item  match.Match
		found bool
	}
	out, err := resilience.Retry(ctx, s.retryWithLog(ctx, "match lookup"), func(ctx context.Context) (lookup, error) {
		item, found, findErr := s.matches.FindByTeamsAndVenue(ctx, req.Team1ID, req.Team2ID, venueID)
		if findErr != nil {
			return lookup{}, findErr
		}
		return lookup{item: item, found: found}, nil
	})
	return out.item, out.found, err
}

func (s *MatchService) createMatch(ctx context.Context, req MatchRequest, resolution VenueResolution) (MatchRecord, error) {
	matchID, err := s.idGen.NewID()
	if err != nil {
		return MatchRecord{}, fmt.Errorf("generate match id: %w", err)
	}

	matchDate := req.MatchDate
	if matchDate.IsZero() {
		matchDate = time.Now().UTC()
	}

	candidate := match.Match{
		ID:        matchID,
		Team1ID:   req.Team1ID,
		Team2ID:   req.Team2ID,
		VenueID:   resolution.Venue.ID,
		MatchDate: matchDate,
		Status:    match.NormalizeStatus(req.Status),
	}
	if validateErr := candidate.Validate(); validateErr != nil {
		return MatchRecord{}, fmt.Errorf("%w: %v", ErrInvalidInput, validateErr)
	}

	type insertion struct {
		item    match.Match
		created bool
	}
	out, insertErr := resilience.Retry(ctx, s.retryWithLog(ctx, "match create"), func(ctx context.Context) (insertion, error) {
		stored, created, repoErr := s.matches.InsertOrFetch(ctx, candidate)
		if repoErr != nil {
			return insertion{}, repoErr
		}
		return insertion{item: stored, created: created}, nil
	})
	if insertErr != nil {
		s.logger.ErrorContext(ctx, "match create failed, serving unpersisted record",
			"match_id", matchID,
			"error", insertErr.Error(),
		)
		return MatchRecord{Match: candidate, Venue: resolution, IsNew: true}, nil
	}

	s.logger.InfoContext(ctx, "match resolved",
		"match_id", out.item.ID,
		"created", out.created,
		"venue_id", resolution.Venue.ID,
		"venue_tier", resolution.Tier,
	)
	return MatchRecord{Match: out.item, Venue: resolution, IsNew: out.created, Persisted: true}, nil
}

func (s *MatchService) retryWithLog(ctx context.Context, label string) resilience.RetryConfig {
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

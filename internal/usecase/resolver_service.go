package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/pitchside/matchsight/internal/domain/team"
	"github.com/pitchside/matchsight/internal/domain/venue"
	"github.com/pitchside/matchsight/internal/platform/cache"
	"github.com/pitchside/matchsight/internal/platform/id"
	"github.com/pitchside/matchsight/internal/platform/logging"
	"github.com/pitchside/matchsight/internal/platform/namematch"
	"github.com/pitchside/matchsight/internal/platform/resilience"
	"github.com/pitchside/matchsight/internal/platform/validation"
)

const (
	teamsCacheKey  = "teams:list"
	venuesCacheKey = "venues:list"
)

// TierCreated marks a resolution that minted a new canonical row because no
// existing name matched.
const TierCreated = "created"

// VenueResolution is the outcome of resolving a raw venue name. Persisted is
// false when the row was synthesized but the store write failed; the caller
// still gets a usable venue.
type VenueResolution struct {
	Venue     venue.Venue
	Tier      string
	IsNew     bool
	Persisted bool
}

// ReferenceData is the static dataset served when the store is unconfigured,
// empty, or failing.
type ReferenceData struct {
	Teams  []team.Team
	Venues []venue.Venue
}

// ResolverConfig tunes the resolver. PrimarySource tags successful reads:
// SourceDatabase when repos are store-backed, SourceMock when the process
// runs on in-memory repositories.
type ResolverConfig struct {
	PrimarySource Source
	Retry         resilience.RetryConfig
	Cache         *cache.Store
	Logger        *logging.Logger
}

// ResolverService owns entity resolution for teams and venues. Venue names
// arrive as free text; resolution walks the matcher chain and synthesizes a
// canonical row only when nothing matches.
type ResolverService struct {
	teams  team.Repository
	venues venue.Repository
	ref    ReferenceData
	idGen  id.Generator

	chain         []namematch.Matcher
	primarySource Source
	retry         resilience.RetryConfig
	cache         *cache.Store
	logger        *logging.Logger
}

func NewResolverService(
	teams team.Repository,
	venues venue.Repository,
	ref ReferenceData,
	idGen id.Generator,
	cfg ResolverConfig,
) *ResolverService {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}
	primarySource := cfg.PrimarySource
	if primarySource == "" {
		primarySource = SourceDatabase
	}

	return &ResolverService{
		teams:         teams,
		venues:        venues,
		ref:           ref,
		idGen:         idGen,
		chain:         namematch.DefaultChain(),
		primarySource: primarySource,
		retry:         cfg.Retry,
		cache:         cfg.Cache,
		logger:        logger,
	}
}

// FindOrCreateVenue resolves a raw venue name to a canonical row. It only
// fails on empty input; store trouble degrades to reference data and, for
// brand-new names, to a non-persisted synthesized row.
func (s *ResolverService) FindOrCreateVenue(ctx context.Context, rawName string) (VenueResolution, error) {
	ctx, span := startUsecaseSpan(ctx, "resolver.FindOrCreateVenue")
	defer span.End()

	name := strings.TrimSpace(rawName)
	if name == "" {
		return VenueResolution{}, fmt.Errorf("%w: venue name is required", ErrInvalidInput)
	}

	candidates, _ := s.listVenues(ctx)

	names := make([]string, len(candidates))
	for i, c := range candidates {
		names[i] = c.Name
	}

	if hit, ok := namematch.BestMatch(name, names, s.chain); ok {
		resolved := candidates[hit.Index]
		touch(ctx, TouchVenues, resolved.ID)
		s.logger.DebugContext(ctx, "venue resolved",
			"input", name,
			"venue_id", resolved.ID,
			"tier", hit.Tier,
		)
		return VenueResolution{Venue: resolved, Tier: hit.Tier, Persisted: true}, nil
	}

	return s.createVenue(ctx, name)
}

func (s *ResolverService) createVenue(ctx context.Context, name string) (VenueResolution, error) {
	venueID, err := s.idGen.NewID()
	if err != nil {
		return VenueResolution{}, fmt.Errorf("generate venue id: %w", err)
	}

	created := venue.Venue{
		ID:      venueID,
		Name:    name,
		City:    venue.UnknownCity,
		Country: venue.DefaultCountry,
	}

	if report := validation.Venue(created); !report.Valid {
		s.logger.WarnContext(ctx, "synthesized venue failed validation, continuing",
			"venue_id", venueID,
			"reasons", report.Errors,
		)
	}

	persisted := true
	insertErr := resilience.RetryNoResult(ctx, s.withRetryLog(ctx, "venue insert"), func(ctx context.Context) error {
		return s.venues.Insert(ctx, created)
	})
	if insertErr != nil {
		persisted = false
		s.logger.ErrorContext(ctx, "venue insert failed, serving unpersisted row",
			"venue_id", venueID,
			"error", insertErr.Error(),
		)
	} else {
		s.cacheDelete(ctx, venuesCacheKey)
	}

	touch(ctx, TouchVenues, venueID)
	s.logger.InfoContext(ctx, "venue created",
		"venue_id", venueID,
		"name", name,
		"persisted", persisted,
	)

	return VenueResolution{Venue: created, Tier: TierCreated, IsNew: true, Persisted: persisted}, nil
}

// GetTeamsEnhanced lists teams with the full degradation ladder: store, then
// reference data, never an error.
func (s *ResolverService) GetTeamsEnhanced(ctx context.Context) FetchResult[[]team.Team] {
	ctx, span := startUsecaseSpan(ctx, "resolver.GetTeamsEnhanced")
	defer span.End()

	if cached, ok := s.cacheGet(ctx, teamsCacheKey); ok {
		if result, isResult := cached.(FetchResult[[]team.Team]); isResult {
			return result
		}
	}

	result := fetchWithFallback(ctx, fallbackSpec[[]team.Team]{
		label:         "teams list",
		primarySource: s.primarySource,
		retry:         s.retry,
		logger:        s.logger,
		primary: func(ctx context.Context) ([]team.Team, error) {
			return s.teams.List(ctx)
		},
		fallback: func() []team.Team { return cloneSlice(s.ref.Teams) },
		empty:    func(items []team.Team) bool { return len(items) == 0 },
	})

	for _, item := range result.Data {
		touch(ctx, TouchTeams, item.ID)
	}
	if !result.Degraded() {
		s.cacheSet(ctx, teamsCacheKey, result)
	}
	return result
}

// GetVenuesEnhanced mirrors GetTeamsEnhanced for venues.
func (s *ResolverService) GetVenuesEnhanced(ctx context.Context) FetchResult[[]venue.Venue] {
	ctx, span := startUsecaseSpan(ctx, "resolver.GetVenuesEnhanced")
	defer span.End()

	if cached, ok := s.cacheGet(ctx, venuesCacheKey); ok {
		if result, isResult := cached.(FetchResult[[]venue.Venue]); isResult {
			return result
		}
	}

	result := fetchWithFallback(ctx, fallbackSpec[[]venue.Venue]{
		label:         "venues list",
		primarySource: s.primarySource,
		retry:         s.retry,
		logger:        s.logger,
		primary: func(ctx context.Context) ([]venue.Venue, error) {
			return s.venues.List(ctx)
		},
		fallback: func() []venue.Venue { return cloneSlice(s.ref.Venues) },
		empty:    func(items []venue.Venue) bool { return len(items) == 0 },
	})

	for _, item := range result.Data {
		touch(ctx, TouchVenues, item.ID)
	}
	if !result.Degraded() {
		s.cacheSet(ctx, venuesCacheKey, result)
	}
	return result
}

// LookupTeam fetches one team, degrading to reference data on store failure.
// The second return is false when the id is unknown everywhere.
func (s *ResolverService) LookupTeam(ctx context.Context, teamID string) (team.Team, bool) {
	teamID = strings.TrimSpace(teamID)
	if teamID == "" {
		return team.Team{}, false
	}

	found, err := resilience.Retry(ctx, s.withRetryLog(ctx, "team lookup"), func(ctx context.Context) (team.Team, error) {
		item, ok, getErr := s.teams.GetByID(ctx, teamID)
		if getErr != nil {
			return team.Team{}, getErr
		}
		if !ok {
			return team.Team{}, ErrNotFound
		}
		return item, nil
	})
	if err == nil {
		touch(ctx, TouchTeams, teamID)
		return found, true
	}

	for _, item := range s.ref.Teams {
		if item.ID == teamID {
			touch(ctx, TouchTeams, teamID)
			return item, true
		}
	}
	return team.Team{}, false
}

// listVenues returns the candidate set for name matching. Store failures and
// an empty store both fall through to reference data, so matching behaves
// the same with or without a database.
func (s *ResolverService) listVenues(ctx context.Context) ([]venue.Venue, Source) {
	items, err := resilience.Retry(ctx, s.withRetryLog(ctx, "venues list"), func(ctx context.Context) ([]venue.Venue, error) {
		return s.venues.List(ctx)
	})
	if err != nil {
		s.logger.ErrorContext(ctx, "venue listing failed, matching against reference data",
			"error", err.Error(),
		)
		return cloneSlice(s.ref.Venues), SourceFallback
	}
	if len(items) == 0 {
		return cloneSlice(s.ref.Venues), SourceMock
	}
	return items, s.primarySource
}

func (s *ResolverService) withRetryLog(ctx context.Context, label string) resilience.RetryConfig {
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

func (s *ResolverService) cacheGet(ctx context.Context, key string) (any, bool) {
	if s.cache == nil {
		return nil, false
	}
	return s.cache.Get(ctx, key)
}

func (s *ResolverService) cacheSet(ctx context.Context, key string, value any) {
	if s.cache != nil {
		s.cache.Set(ctx, key, value)
	}
}

func (s *ResolverService) cacheDelete(ctx context.Context, key string) {
	if s.cache != nil {
		s.cache.Delete(ctx, key)
	}
}

func cloneSlice[T any](items []T) []T {
	if items == nil {
		return nil
	}
	out := make([]T, len(items))
	copy(out, items)
	return out
}

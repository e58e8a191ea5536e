package app

import (
	"fmt"
	"net/http"

	"github.com/pitchside/matchsight/external/statsfeed"
	"github.com/pitchside/matchsight/internal/config"
	"github.com/pitchside/matchsight/internal/domain/match"
	"github.com/pitchside/matchsight/internal/domain/player"
	"github.com/pitchside/matchsight/internal/domain/prediction"
	"github.com/pitchside/matchsight/internal/domain/team"
	"github.com/pitchside/matchsight/internal/domain/venue"
	"github.com/pitchside/matchsight/internal/infrastructure/repository/memory"
	"github.com/pitchside/matchsight/internal/infrastructure/repository/postgres"
	"github.com/pitchside/matchsight/internal/interfaces/httpapi"
	"github.com/pitchside/matchsight/internal/platform/cache"
	idgen "github.com/pitchside/matchsight/internal/platform/id"
	"github.com/pitchside/matchsight/internal/platform/logging"
	"github.com/pitchside/matchsight/internal/platform/resilience"
	"github.com/pitchside/matchsight/internal/usecase"
)

// NewHTTPServer wires the full service. With DATABASE_URL set the postgres
// store backs every repository; without it the service runs on seeded
// in-memory repositories and tags responses as mock data.
func NewHTTPServer(cfg config.Config, logger *logging.Logger) (*http.Server, error) {
	if logger == nil {
		logger = logging.Default()
	}

	retry := resilience.RetryConfig{Retries: cfg.RetryCount, Delay: cfg.RetryDelay}
	ref := usecase.ReferenceData{Teams: memory.SeedTeams(), Venues: memory.SeedVenues()}

	var (
		store          *postgres.Store
		teamRepo       team.Repository
		venueRepo      venue.Repository
		playerRepo     player.Repository
		matchRepo      match.Repository
		predictionRepo prediction.Repository
		primarySource  = usecase.SourceMock
	)

	if cfg.StoreConfigured() {
		db, err := openDB(cfg)
		if err != nil {
			return nil, fmt.Errorf("open database: %w", err)
		}
		store = postgres.NewStore(db, resilience.CircuitBreakerConfig{
			Enabled:          cfg.DBCircuitEnabled,
			FailureThreshold: cfg.DBCircuitFailures,
			OpenTimeout:      cfg.DBCircuitOpenTimeout,
		}, logger)

		teamRepo = postgres.NewTeamRepository(store)
		venueRepo = postgres.NewVenueRepository(store)
		playerRepo = postgres.NewPlayerRepository(store)
		matchRepo = postgres.NewMatchRepository(store)
		predictionRepo = postgres.NewPredictionRepository(store)
		primarySource = usecase.SourceDatabase
	} else {
		logger.Warn("DATABASE_URL not set, serving static reference data only")
		teamRepo = memory.NewTeamRepository(memory.SeedTeams())
		venueRepo = memory.NewVenueRepository(memory.SeedVenues())
		playerRepo = memory.NewPlayerRepository(memory.SeedPlayers())
		matchRepo = memory.NewMatchRepository()
		predictionRepo = memory.NewPredictionRepository()
	}

	var cacheStore *cache.Store
	if cfg.CacheEnabled {
		cacheStore = cache.NewStore(cfg.CacheTTL)
	}

	idGen := idgen.NewRandomGenerator()

	resolverSvc := usecase.NewResolverService(teamRepo, venueRepo, ref, idGen, usecase.ResolverConfig{
		PrimarySource: primarySource,
		Retry:         retry,
		Cache:         cacheStore,
		Logger:        logger,
	})
	playerSvc := usecase.NewPlayerService(playerRepo, resolverSvc, memory.SeedPlayers(), primarySource, retry, logger)
	matchSvc := usecase.NewMatchService(matchRepo, resolverSvc, idGen, retry, logger)
	predictionSvc := usecase.NewPredictionService(
		predictionRepo,
		matchSvc,
		resolverSvc,
		statsfeed.NewGenerator(),
		idGen,
		primarySource,
		retry,
		logger,
	)
	analysisSvc := usecase.NewAnalysisService(matchSvc, playerSvc, predictionSvc, resolverSvc, logger)

	handler := httpapi.NewHandler(resolverSvc, playerSvc, matchSvc, predictionSvc, analysisSvc, store, logger)
	router := httpapi.NewRouter(handler, logger, cfg.CORSAllowedOrigins)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	if server.Addr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	return server, nil
}

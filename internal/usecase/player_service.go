package usecase

import (
	"context"
	"strings"
	"sync"

	"github.com/panjf2000/ants/v2"

	"github.com/pitchside/matchsight/internal/domain/player"
	"github.com/pitchside/matchsight/internal/platform/logging"
	"github.com/pitchside/matchsight/internal/platform/resilience"
)

const maxPlayerFetchWorkers = 4

// PlayerService serves squad listings. Per-team fetches fan out on a worker
// pool; a failing team degrades to reference players for that team instead
// of failing the whole request.
type PlayerService struct {
	players  player.Repository
	resolver *ResolverService
	ref      []player.Player

	primarySource Source
	retry         resilience.RetryConfig
	logger        *logging.Logger
}

func NewPlayerService(
	players player.Repository,
	resolver *ResolverService,
	refPlayers []player.Player,
	primarySource Source,
	retry resilience.RetryConfig,
	logger *logging.Logger,
) *PlayerService {
	if logger == nil {
		logger = logging.Default()
	}
	if primarySource == "" {
		primarySource = SourceDatabase
	}
	return &PlayerService{
		players:       players,
		resolver:      resolver,
		ref:           refPlayers,
		primarySource: primarySource,
		retry:         retry,
		logger:        logger,
	}
}

// FetchPlayersEnhanced lists players for the given teams, or for every known
// team when teamIDs is empty. Output order follows the team id order, so the
// worker pool never influences what the caller sees.
func (s *PlayerService) FetchPlayersEnhanced(ctx context.Context, teamIDs []string) FetchResult[[]player.Player] {
	ctx, span := startUsecaseSpan(ctx, "players.FetchPlayersEnhanced")
	defer span.End()

	ids := dedupeIDs(teamIDs)
	if len(ids) == 0 {
		teams := s.resolver.GetTeamsEnhanced(ctx)
		for _, item := range teams.Data {
			ids = append(ids, item.ID)
		}
	}
	if len(ids) == 0 {
		return resultFrom([]player.Player{}, SourceError, "no teams available for player listing")
	}

	var mu sync.Mutex
	squads := make(map[string]teamSquad, len(ids))

	fetchOne := func(teamID string) {
		squad := s.fetchTeamSquad(ctx, teamID)
		mu.Lock()
		squads[teamID] = squad
		mu.Unlock()
	}

	workers := len(ids)
	if workers > maxPlayerFetchWorkers {
		workers = maxPlayerFetchWorkers
	}

	pool, poolErr := ants.NewPool(workers)
	if poolErr != nil {
		s.logger.WarnContext(ctx, "player fetch pool unavailable, fetching sequentially",
			"error", poolErr.Error(),
		)
		for _, teamID := range ids {
			fetchOne(teamID)
		}
	} else {
		defer pool.Release()

		var wg sync.WaitGroup
		for _, teamID := range ids {
			teamID := teamID
			wg.Add(1)
			if submitErr := pool.Submit(func() {
				defer wg.Done()
				fetchOne(teamID)
			}); submitErr != nil {
				wg.Done()
				fetchOne(teamID)
			}
		}
		wg.Wait()
	}

	out := make([]player.Player, 0, len(ids)*4)
	degraded := false
	for _, teamID := range ids {
		squad := squads[teamID]
		degraded = degraded || squad.degraded
		out = append(out, squad.players...)
	}

	for _, item := range out {
		touch(ctx, TouchPlayers, item.ID)
	}
	touch(ctx, TouchTeams, ids...)

	if degraded {
		return resultFrom(out, SourceFallback, "player listing served partly from reference data")
	}
	return resultFrom(out, s.primarySource, "")
}

type teamSquad struct {
	players  []player.Player
	degraded bool
}

func (s *PlayerService) fetchTeamSquad(ctx context.Context, teamID string) teamSquad {
	items, err := resilience.Retry(ctx, s.retryWithLog(ctx, "players for "+teamID), func(ctx context.Context) ([]player.Player, error) {
		return s.players.ListByTeam(ctx, teamID)
	})
	if err != nil {
		s.logger.ErrorContext(ctx, "player fetch failed, serving reference squad",
			"team_id", teamID,
			"error", err.Error(),
		)
		return teamSquad{players: s.refSquad(teamID), degraded: true}
	}
	if len(items) == 0 {
		return teamSquad{players: s.refSquad(teamID)}
	}
	return teamSquad{players: items}
}

func (s *PlayerService) refSquad(teamID string) []player.Player {
	out := make([]player.Player, 0, 4)
	for _, item := range s.ref {
		if item.TeamID == teamID {
			out = append(out, item)
		}
	}
	return out
}

func (s *PlayerService) retryWithLog(ctx context.Context, label string) resilience.RetryConfig {
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

func dedupeIDs(ids []string) []string {
	if len(ids) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

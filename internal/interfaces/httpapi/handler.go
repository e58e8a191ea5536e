package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"

	"github.com/pitchside/matchsight/internal/platform/logging"
	"github.com/pitchside/matchsight/internal/usecase"
)

// StoreHealth reports the availability of the backing store for /healthz.
type StoreHealth interface {
	Configured() bool
	Ping(ctx context.Context) error
	TableExists(ctx context.Context, table string) (bool, error)
	RowCount(ctx context.Context, table string) (int64, error)
}

type Handler struct {
	resolverService   *usecase.ResolverService
	playerService     *usecase.PlayerService
	matchService      *usecase.MatchService
	predictionService *usecase.PredictionService
	analysisService   *usecase.AnalysisService
	storeHealth       StoreHealth
	logger            *logging.Logger
	validator         *validator.Validate
}

func NewHandler(
	resolverService *usecase.ResolverService,
	playerService *usecase.PlayerService,
	matchService *usecase.MatchService,
	predictionService *usecase.PredictionService,
	analysisService *usecase.AnalysisService,
	storeHealth StoreHealth,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		resolverService:   resolverService,
		playerService:     playerService,
		matchService:      matchService,
		predictionService: predictionService,
		analysisService:   analysisService,
		storeHealth:       storeHealth,
		logger:            logger,
		validator:         validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	detail := map[string]string{
		"status": "ok",
		"store":  "unconfigured",
	}
	if h.storeHealth != nil && h.storeHealth.Configured() {
		detail["store"] = "ok"
		if err := h.storeHealth.Ping(ctx); err != nil {
			detail["store"] = "unreachable"
		} else {
			h.reportSchema(ctx, detail)
		}
	}

	writeSuccess(ctx, w, http.StatusOK, detail)
}

// reportSchema annotates the health payload with whether the reference
// schema is present and how many teams it holds, so an operator can tell a
// reachable-but-unmigrated database from a seeded one.
func (h *Handler) reportSchema(ctx context.Context, detail map[string]string) {
	exists, err := h.storeHealth.TableExists(ctx, "teams")
	if err != nil {
		h.logger.WarnContext(ctx, "health schema check failed", "error", err)
		return
	}
	if !exists {
		detail["schema"] = "missing"
		return
	}

	detail["schema"] = "ok"
	count, err := h.storeHealth.RowCount(ctx, "teams")
	if err != nil {
		h.logger.WarnContext(ctx, "health row count failed", "error", err)
		return
	}
	detail["seededTeams"] = strconv.FormatInt(count, 10)
}

// decodeBody parses a JSON request body into dst and applies its validate
// tags. Failures surface as ErrInvalidInput so mapError turns them into 400s.
func (h *Handler) decodeBody(r *http.Request, dst any) error {
	if err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(dst); err != nil {
		return fmt.Errorf("%w: malformed request body", usecase.ErrInvalidInput)
	}
	if err := h.validator.Struct(dst); err != nil {
		return fmt.Errorf("%w: %v", usecase.ErrInvalidInput, err)
	}
	return nil
}

func parseMatchDate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, nil
	}
	if parsed, err := time.Parse(time.RFC3339, raw); err == nil {
		return parsed, nil
	}
	if parsed, err := time.Parse("2006-01-02", raw); err == nil {
		return parsed, nil
	}
	return time.Time{}, fmt.Errorf("%w: matchDate must be RFC3339 or YYYY-MM-DD", usecase.ErrInvalidInput)
}

func liveQuery(r *http.Request) bool {
	switch strings.ToLower(strings.TrimSpace(r.URL.Query().Get("live"))) {
	case "1", "true", "yes":
		return true
	default:
		return false
	}
}

func splitCSVParam(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

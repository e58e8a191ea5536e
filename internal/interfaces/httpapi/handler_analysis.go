package httpapi

import (
	"net/http"

	"github.com/pitchside/matchsight/internal/domain/player"
	"github.com/pitchside/matchsight/internal/domain/prediction"
	"github.com/pitchside/matchsight/internal/usecase"
)

func (h *Handler) BuildAnalysis(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.BuildAnalysis")
	defer span.End()

	var body matchRequestDTO
	if err := h.decodeBody(r, &body); err != nil {
		writeError(ctx, w, err)
		return
	}
	matchDate, err := parseMatchDate(body.MatchDate)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	bundle, err := h.analysisService.BuildAnalysis(ctx, usecase.MatchRequest{
		Team1ID:   body.Team1ID,
		Team2ID:   body.Team2ID,
		VenueName: body.VenueName,
		MatchDate: matchDate,
		Status:    body.Status,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "build analysis failed",
			"team1_id", body.Team1ID,
			"team2_id", body.Team2ID,
			"error", err,
		)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, analysisDTO{
		Match: matchRecordToDTO(bundle.Match),
		Teams: teamsToDTO(bundle.Teams),
		Players: envelopeToDTO(bundle.Players, func(items []player.Player) []playerDTO {
			return playersToDTO(items)
		}),
		Prediction: envelopeToDTO(bundle.Prediction, func(item prediction.Prediction) predictionDTO {
			return predictionToDTO(item)
		}),
		Touched: bundle.Touched,
	})
}

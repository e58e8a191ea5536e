package httpapi

import (
	"net/http"
	"strings"

	"github.com/pitchside/matchsight/internal/domain/prediction"
	"github.com/pitchside/matchsight/internal/usecase"
)

func (h *Handler) GeneratePredictions(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GeneratePredictions")
	defer span.End()

	var body predictionRequestDTO
	if err := h.decodeBody(r, &body); err != nil {
		writeError(ctx, w, err)
		return
	}
	matchDate, err := parseMatchDate(body.MatchDate)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	result := h.predictionService.GeneratePredictions(ctx, usecase.PredictionRequest{
		MatchID:   body.MatchID,
		Team1ID:   body.Team1ID,
		Team2ID:   body.Team2ID,
		VenueName: body.VenueName,
		MatchDate: matchDate,
		Status:    body.Status,
	}, liveQuery(r))

	writeSuccess(ctx, w, http.StatusOK, envelopeToDTO(result, func(item prediction.Prediction) predictionDTO {
		return predictionToDTO(item)
	}))
}

func (h *Handler) GetMatchPrediction(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetMatchPrediction")
	defer span.End()

	matchID := strings.TrimSpace(r.PathValue("matchID"))
	result := h.predictionService.GeneratePredictions(ctx, usecase.PredictionRequest{MatchID: matchID}, liveQuery(r))

	writeSuccess(ctx, w, http.StatusOK, envelopeToDTO(result, func(item prediction.Prediction) predictionDTO {
		return predictionToDTO(item)
	}))
}

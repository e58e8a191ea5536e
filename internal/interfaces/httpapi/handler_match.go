package httpapi

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/pitchside/matchsight/internal/usecase"
)

func (h *Handler) FindOrCreateMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.FindOrCreateMatch")
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

	record, err := h.matchService.FindOrCreateMatch(ctx, usecase.MatchRequest{
		Team1ID:   body.Team1ID,
		Team2ID:   body.Team2ID,
		VenueName: body.VenueName,
		MatchDate: matchDate,
		Status:    body.Status,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "find-or-create match failed",
			"team1_id", body.Team1ID,
			"team2_id", body.Team2ID,
			"error", err,
		)
		writeError(ctx, w, err)
		return
	}

	status := http.StatusOK
	if record.IsNew {
		status = http.StatusCreated
	}
	writeSuccess(ctx, w, status, matchRecordToDTO(record))
}

func (h *Handler) GetMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetMatch")
	defer span.End()

	matchID := strings.TrimSpace(r.PathValue("matchID"))
	item, found, err := h.matchService.GetMatch(ctx, matchID)
	if err != nil {
		h.logger.WarnContext(ctx, "get match failed", "match_id", matchID, "error", err)
		writeError(ctx, w, err)
		return
	}
	if !found {
		writeError(ctx, w, fmt.Errorf("%w: match %s", usecase.ErrNotFound, matchID))
		return
	}

	writeSuccess(ctx, w, http.StatusOK, matchToDTO(item))
}

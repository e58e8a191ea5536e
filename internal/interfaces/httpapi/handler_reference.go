package httpapi

import (
	"net/http"

	"github.com/pitchside/matchsight/internal/domain/player"
	"github.com/pitchside/matchsight/internal/domain/team"
	"github.com/pitchside/matchsight/internal/domain/venue"
)

func (h *Handler) ListTeams(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTeams")
	defer span.End()

	result := h.resolverService.GetTeamsEnhanced(ctx)
	writeSuccess(ctx, w, http.StatusOK, envelopeToDTO(result, func(items []team.Team) []teamDTO {
		return teamsToDTO(items)
	}))
}

func (h *Handler) ListVenues(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListVenues")
	defer span.End()

	result := h.resolverService.GetVenuesEnhanced(ctx)
	writeSuccess(ctx, w, http.StatusOK, envelopeToDTO(result, func(items []venue.Venue) []venueDTO {
		return venuesToDTO(items)
	}))
}

func (h *Handler) ListPlayers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListPlayers")
	defer span.End()

	teamIDs := splitCSVParam(r.URL.Query().Get("teamIds"))
	result := h.playerService.FetchPlayersEnhanced(ctx, teamIDs)
	writeSuccess(ctx, w, http.StatusOK, envelopeToDTO(result, func(items []player.Player) []playerDTO {
		return playersToDTO(items)
	}))
}

func (h *Handler) ResolveVenue(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ResolveVenue")
	defer span.End()

	var body resolveVenueRequestDTO
	if err := h.decodeBody(r, &body); err != nil {
		writeError(ctx, w, err)
		return
	}

	resolution, err := h.resolverService.FindOrCreateVenue(ctx, body.VenueName)
	if err != nil {
		h.logger.WarnContext(ctx, "venue resolution failed", "venue_name", body.VenueName, "error", err)
		writeError(ctx, w, err)
		return
	}

	status := http.StatusOK
	if resolution.IsNew {
		status = http.StatusCreated
	}
	writeSuccess(ctx, w, status, venueResolutionToDTO(resolution))
}

package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

func registerDomainRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/teams", handler.ListTeams)
	mux.HandleFunc("GET /v1/venues", handler.ListVenues)
	mux.HandleFunc("POST /v1/venues/resolve", handler.ResolveVenue)
	mux.HandleFunc("GET /v1/players", handler.ListPlayers)

	mux.HandleFunc("POST /v1/matches", handler.FindOrCreateMatch)
	mux.HandleFunc("GET /v1/matches/{matchID}", handler.GetMatch)
	mux.HandleFunc("GET /v1/matches/{matchID}/prediction", handler.GetMatchPrediction)
	mux.HandleFunc("POST /v1/predictions", handler.GeneratePredictions)

	mux.HandleFunc("POST /v1/analysis", handler.BuildAnalysis)
}

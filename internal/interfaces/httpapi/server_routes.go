package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

func registerLeagueRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/leagues/{leagueID}/odds", handler.GetLeagueOdds)
	mux.HandleFunc("GET /v1/leagues/{leagueID}/standings", handler.GetLeagueStandings)
	mux.HandleFunc("GET /v1/leagues/{leagueID}/members/{memberID}/schedule", handler.GetMemberSchedule)
	mux.HandleFunc("GET /v1/leagues/{leagueID}/members/{memberID}/picks", handler.ListMemberPicks)
	mux.HandleFunc("POST /v1/leagues/{leagueID}/members/{memberID}/picks", handler.SubmitPicks)
}

func registerInternalJobRoutes(mux *http.ServeMux, handler *Handler, internalJobToken string) {
	mux.Handle("POST /v1/internal/jobs/refresh-projections", RequireInternalJobToken(internalJobToken, http.HandlerFunc(handler.RunRefreshProjectionsJob)))
}

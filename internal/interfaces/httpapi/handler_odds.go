package httpapi

import (
	"net/http"
	"strings"
	"time"

	"github.com/sirbenjaminG88/playoff-picks/internal/usecase"
)

type leagueOddsDTO struct {
	LeagueID         string       `json:"leagueId"`
	CurrentWeekIndex int          `json:"currentWeekIndex"`
	WeeksRemaining   int          `json:"weeksRemaining"`
	Trials           int          `json:"trials"`
	EliminatedTeams  []string     `json:"eliminatedTeams"`
	PlayerPoolSize   int          `json:"playerPoolSize"`
	ComputedAt       string       `json:"computedAt"`
	Rows             []oddsRowDTO `json:"rows"`
}

type oddsRowDTO struct {
	MemberID           string  `json:"memberId"`
	DisplayName        string  `json:"displayName"`
	AvatarURL          string  `json:"avatarUrl"`
	CurrentPoints      float64 `json:"currentPoints"`
	WinProbability     float64 `json:"winProbability"`
	DisplayProbability string  `json:"displayProbability"`
}

type standingRowDTO struct {
	MemberID    string  `json:"memberId"`
	DisplayName string  `json:"displayName"`
	TotalPoints float64 `json:"totalPoints"`
	Rank        int     `json:"rank"`
}

func (h *Handler) GetLeagueOdds(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetLeagueOdds")
	defer span.End()

	leagueID := strings.TrimSpace(r.PathValue("leagueID"))
	odds, err := h.simulationService.LeagueOdds(ctx, leagueID)
	if err != nil {
		h.logger.WarnContext(ctx, "league odds failed", "league_id", leagueID, "error", err)
		writeError(ctx, w, err)
		return
	}

	rows := make([]oddsRowDTO, 0, len(odds.Rows))
	for _, row := range odds.Rows {
		rows = append(rows, oddsRowDTO{
			MemberID:           row.MemberID,
			DisplayName:        row.DisplayName,
			AvatarURL:          row.AvatarURL,
			CurrentPoints:      row.CurrentPoints,
			WinProbability:     row.WinProbability,
			DisplayProbability: row.DisplayProbability,
		})
	}

	writeSuccess(ctx, w, http.StatusOK, leagueOddsDTO{
		LeagueID:         odds.LeagueID,
		CurrentWeekIndex: odds.CurrentWeekIndex,
		WeeksRemaining:   odds.WeeksRemaining,
		Trials:           odds.Trials,
		EliminatedTeams:  odds.EliminatedTeams,
		PlayerPoolSize:   odds.PlayerPoolSize,
		ComputedAt:       odds.ComputedAt.UTC().Format(time.RFC3339),
		Rows:             rows,
	})
}

func (h *Handler) GetLeagueStandings(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetLeagueStandings")
	defer span.End()

	leagueID := strings.TrimSpace(r.PathValue("leagueID"))
	rows, err := h.standingsService.LeagueStandings(ctx, leagueID)
	if err != nil {
		h.logger.WarnContext(ctx, "league standings failed", "league_id", leagueID, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]standingRowDTO, 0, len(rows))
	for _, row := range rows {
		items = append(items, standingRowToDTO(row))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func standingRowToDTO(row usecase.StandingRow) standingRowDTO {
	return standingRowDTO{
		MemberID:    row.MemberID,
		DisplayName: row.DisplayName,
		TotalPoints: row.TotalPoints,
		Rank:        row.Rank,
	}
}

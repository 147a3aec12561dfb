package httpapi

import (
	"net/http"
	"strings"
	"time"

	"github.com/sirbenjaminG88/playoff-picks/internal/usecase"
)

type scheduleViewDTO struct {
	CurrentWeekIndex int             `json:"currentWeekIndex"`
	WeeksRemaining   int             `json:"weeksRemaining"`
	Weeks            []weekStatusDTO `json:"weeks"`
}

type weekStatusDTO struct {
	Index      int       `json:"index"`
	OpenAt     string    `json:"openAt"`
	DeadlineAt string    `json:"deadlineAt"`
	State      string    `json:"state"`
	Picks      []pickDTO `json:"picks"`
}

func (h *Handler) GetMemberSchedule(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetMemberSchedule")
	defer span.End()

	leagueID := strings.TrimSpace(r.PathValue("leagueID"))
	memberID := strings.TrimSpace(r.PathValue("memberID"))

	view, err := h.scheduleService.MemberView(ctx, leagueID, memberID)
	if err != nil {
		h.logger.WarnContext(ctx, "member schedule failed", "league_id", leagueID, "member_id", memberID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, scheduleViewToDTO(view))
}

func scheduleViewToDTO(view usecase.ScheduleView) scheduleViewDTO {
	weeks := make([]weekStatusDTO, 0, len(view.Weeks))
	for _, week := range view.Weeks {
		weeks = append(weeks, weekStatusDTO{
			Index:      week.Index,
			OpenAt:     week.OpenAt.UTC().Format(time.RFC3339),
			DeadlineAt: week.DeadlineAt.UTC().Format(time.RFC3339),
			State:      string(week.State),
			Picks:      picksToDTO(week.Picks),
		})
	}

	return scheduleViewDTO{
		CurrentWeekIndex: view.CurrentWeekIndex,
		WeeksRemaining:   view.WeeksRemaining,
		Weeks:            weeks,
	}
}

package httpapi

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"

	"github.com/sirbenjaminG88/playoff-picks/internal/domain/pick"
	"github.com/sirbenjaminG88/playoff-picks/internal/usecase"
)

type submitPicksRequest struct {
	Week          int    `json:"week" validate:"required,gt=0"`
	QuarterbackID string `json:"quarterbackId" validate:"required"`
	RunningBackID string `json:"runningBackId" validate:"required"`
	FlexID        string `json:"flexId" validate:"required"`
}

type pickDTO struct {
	ID          string `json:"id"`
	Week        int    `json:"week"`
	Slot        string `json:"slot"`
	PlayerID    string `json:"playerId"`
	SubmittedAt string `json:"submittedAt"`
}

func (h *Handler) SubmitPicks(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SubmitPicks")
	defer span.End()

	leagueID := strings.TrimSpace(r.PathValue("leagueID"))
	memberID := strings.TrimSpace(r.PathValue("memberID"))

	var req submitPicksRequest
	decoder := jsoniter.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err))
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	picks, err := h.pickService.Submit(ctx, usecase.SubmitPicksInput{
		LeagueID:      leagueID,
		MemberID:      memberID,
		Week:          req.Week,
		QuarterbackID: req.QuarterbackID,
		RunningBackID: req.RunningBackID,
		FlexID:        req.FlexID,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "submit picks failed", "league_id", leagueID, "member_id", memberID, "week", req.Week, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, picksToDTO(picks))
}

func (h *Handler) ListMemberPicks(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListMemberPicks")
	defer span.End()

	leagueID := strings.TrimSpace(r.PathValue("leagueID"))
	memberID := strings.TrimSpace(r.PathValue("memberID"))

	picks, err := h.pickService.ListByMember(ctx, leagueID, memberID)
	if err != nil {
		h.logger.WarnContext(ctx, "list picks failed", "league_id", leagueID, "member_id", memberID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, picksToDTO(picks))
}

func picksToDTO(picks []pick.Pick) []pickDTO {
	items := make([]pickDTO, 0, len(picks))
	for _, p := range picks {
		items = append(items, pickDTO{
			ID:          p.ID,
			Week:        p.Week,
			Slot:        string(p.Slot),
			PlayerID:    p.PlayerID,
			SubmittedAt: p.SubmittedAt.UTC().Format(time.RFC3339),
		})
	}
	return items
}

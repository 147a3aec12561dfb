package httpapi

import (
	"fmt"
	"net/http"
	"time"

	jsoniter "github.com/json-iterator/go"

	"github.com/sirbenjaminG88/playoff-picks/internal/usecase"
)

type refreshProjectionsRequest struct {
	Week int `json:"week" validate:"required,gt=0"`
}

type refreshProjectionsResponse struct {
	Players         int    `json:"players"`
	EliminatedTeams int    `json:"eliminatedTeams"`
	StatLines       int    `json:"statLines"`
	TakenAt         string `json:"takenAt"`
}

func (h *Handler) RunRefreshProjectionsJob(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RunRefreshProjectionsJob")
	defer span.End()

	if h.projectionSync == nil {
		writeError(ctx, w, fmt.Errorf("%w: projection sync is not configured", usecase.ErrDependencyUnavailable))
		return
	}

	var req refreshProjectionsRequest
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

	result, err := h.projectionSync.Refresh(ctx, req.Week)
	if err != nil {
		h.logger.WarnContext(ctx, "refresh projections job failed", "week", req.Week, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, refreshProjectionsResponse{
		Players:         result.PlayerCount,
		EliminatedTeams: result.EliminatedTeams,
		StatLines:       result.StatLineCount,
		TakenAt:         result.TakenAt.UTC().Format(time.RFC3339),
	})
}

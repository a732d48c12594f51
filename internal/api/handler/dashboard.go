package handler

import (
	"net/http"

	"github.com/albapepper/scoracle-hockey/internal/api/respond"
	"github.com/albapepper/scoracle-hockey/internal/dashboard"
)

// PostDashboard returns the full dashboard view. Until the caller sends
// run=true (or echoes calculated=true from a previous response) only the
// data preview is returned.
// @Summary Dashboard view
// @Tags dashboard
// @Accept json
// @Produce json
// @Param body body scoringRequest false "Dashboard request"
// @Success 200 {object} dashboard.View
// @Failure 400 {object} respond.ErrorResponse
// @Router /api/v1/dashboard [post]
func (h *Handler) PostDashboard(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeScoringRequest(w, r)
	if !ok {
		return
	}

	view, err := dashboard.Build(h.snap, h.scorer, dashboard.Request{
		Weights:    req.Weights,
		Run:        req.Run,
		Calculated: req.Calculated,
		Positions:  req.Positions,
		ShowTop:    req.Top,
	})
	if err != nil {
		h.logger.Error("build dashboard", "error", err)
		respond.WriteError(w, http.StatusInternalServerError, respond.CodeInternal, "Failed to build dashboard")
		return
	}
	respond.WriteJSONObject(w, http.StatusOK, view)
}

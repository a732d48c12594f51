package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/albapepper/scoracle-hockey/internal/api/respond"
	"github.com/albapepper/scoracle-hockey/internal/cache"
	"github.com/albapepper/scoracle-hockey/internal/export"
	"github.com/albapepper/scoracle-hockey/internal/scoring"
)

// rankingsResponse is the body of POST /api/v1/rankings.
type rankingsResponse struct {
	Total    int                      `json:"total"`
	Count    int                      `json:"count"`
	Rounding string                   `json:"rounding"`
	Weights  scoring.Weights          `json:"weights"`
	Players  scoring.RankedCollection `json:"players"`
}

// GetWeights returns every scorable stat with its default and bounds.
// @Summary Scoring weight definitions
// @Tags scoring
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /api/v1/weights [get]
func (h *Handler) GetWeights(w http.ResponseWriter, r *http.Request) {
	respond.WriteJSONObject(w, http.StatusOK, map[string]interface{}{
		"definitions": scoring.Definitions,
		"defaults":    scoring.DefaultWeights(),
	})
}

// PostRankings scores the snapshot and returns the ranked leaderboard.
// Unfiltered results are cached per weight configuration.
// @Summary Ranked leaderboard
// @Description Scores every skater and goalie with the given weights. Omitting the weights object uses the league defaults; omitted stats inside it score 0.
// @Tags scoring
// @Accept json
// @Produce json
// @Param body body scoringRequest false "Scoring request"
// @Param position query []string false "Position filter (repeatable or comma-separated)"
// @Param top query string false "Limit to the first N players, or 'all'"
// @Success 200 {object} rankingsResponse
// @Success 304 "Not modified (ETag match)"
// @Failure 400 {object} respond.ErrorResponse
// @Router /api/v1/rankings [post]
func (h *Handler) PostRankings(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeScoringRequest(w, r)
	if !ok {
		return
	}

	if len(req.Positions) > 0 || req.Top > 0 {
		ranked := h.scorer.Score(h.snap, req.Weights)
		players := ranked.ByPosition(req.Positions...).Head(req.Top)
		respond.WriteJSONObject(w, http.StatusOK, rankingsResponse{
			Total:    ranked.Len(),
			Count:    players.Len(),
			Rounding: h.scorer.Rounding.String(),
			Weights:  req.Weights,
			Players:  players,
		})
		return
	}

	ttl := cache.TTLRankings
	data, etag, hit, err := h.cache.GetOrCompute(rankingsCacheKey(h.scorer, req.Weights), ttl, func() ([]byte, error) {
		ranked := h.scorer.Score(h.snap, req.Weights)
		return json.Marshal(rankingsResponse{
			Total:    ranked.Len(),
			Count:    ranked.Len(),
			Rounding: h.scorer.Rounding.String(),
			Weights:  req.Weights,
			Players:  ranked,
		})
	})
	if err != nil {
		h.logger.Error("encode rankings", "error", err)
		respond.WriteError(w, http.StatusInternalServerError, respond.CodeInternal, "Failed to encode rankings")
		return
	}
	if cache.CheckETagMatch(r.Header.Get("If-None-Match"), etag) {
		respond.WriteNotModified(w, etag)
		return
	}
	respond.WriteJSON(w, data, etag, ttl, hit)
}

// PostExportRankings returns the full leaderboard as a CSV download.
// @Summary Export leaderboard as CSV
// @Tags scoring
// @Accept json
// @Produce text/csv
// @Param body body scoringRequest false "Scoring request"
// @Success 200 {file} file
// @Failure 400 {object} respond.ErrorResponse
// @Router /api/v1/rankings/export [post]
func (h *Handler) PostExportRankings(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeScoringRequest(w, r)
	if !ok {
		return
	}

	ranked := h.scorer.Score(h.snap, req.Weights)
	var buf bytes.Buffer
	if err := export.WriteCSV(&buf, ranked); err != nil {
		h.logger.Error("export rankings", "error", err)
		respond.WriteError(w, http.StatusInternalServerError, respond.CodeInternal, "Failed to export rankings")
		return
	}
	respond.WriteAttachment(w, "text/csv; charset=utf-8", export.FileName(ranked), buf.Bytes())
}

// PostAggregate summarizes the leaderboard by position or team.
// Optional query: order=mean|sum|max|group, limit=N.
// @Summary Aggregate fantasy points
// @Tags scoring
// @Accept json
// @Produce json
// @Param key path string true "Group key" Enums(position, team)
// @Param order query string false "Sort order" Enums(mean, sum, max, group)
// @Param limit query int false "Maximum number of groups"
// @Param body body scoringRequest false "Scoring request"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} respond.ErrorResponse
// @Router /api/v1/aggregates/{key} [post]
func (h *Handler) PostAggregate(w http.ResponseWriter, r *http.Request) {
	key, err := scoring.ParseGroupKey(chi.URLParam(r, "key"))
	if err != nil {
		respond.WriteError(w, http.StatusBadRequest, respond.CodeInvalidGroup, "Group key must be 'position' or 'team'")
		return
	}

	order, err := scoring.ParseGroupOrder(r.URL.Query().Get("order"))
	if err != nil {
		respond.WriteError(w, http.StatusBadRequest, respond.CodeInvalidOrder, "order must be one of mean, sum, max, group")
		return
	}
	limit := 0
	if l := r.URL.Query().Get("limit"); l != "" {
		limit, err = strconv.Atoi(l)
		if err != nil || limit < 0 {
			respond.WriteError(w, http.StatusBadRequest, respond.CodeInvalidLimit, "limit must be a non-negative integer")
			return
		}
	}

	req, ok := decodeScoringRequest(w, r)
	if !ok {
		return
	}

	groups, err := scoring.Aggregate(h.scorer.Score(h.snap, req.Weights), key, order)
	if err != nil {
		respond.WriteError(w, http.StatusBadRequest, respond.CodeInvalidGroup, err.Error())
		return
	}
	if limit > 0 && len(groups) > limit {
		groups = groups[:limit]
	}

	respond.WriteJSONObject(w, http.StatusOK, map[string]interface{}{
		"key":    key,
		"count":  len(groups),
		"groups": groups,
	})
}

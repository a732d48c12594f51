package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/albapepper/scoracle-hockey/internal/api/respond"
	"github.com/albapepper/scoracle-hockey/internal/scoring"
)

const maxBodyBytes = 1 << 16

// scoringRequest is the body shared by every scoring endpoint. A missing
// weights object means the league defaults; a present one is taken as-is,
// with omitted stats worth 0.
type scoringRequest struct {
	Weights    scoring.Weights `json:"weights"`
	Run        bool            `json:"run"`
	Calculated bool            `json:"calculated"`
	Positions  []string        `json:"positions"`
	Top        int             `json:"top"`
}

// decodeScoringRequest reads and validates the body. On failure it has
// already written the error response.
func decodeScoringRequest(w http.ResponseWriter, r *http.Request) (scoringRequest, bool) {
	var req scoringRequest
	if r.Body != nil {
		dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&req); err != nil && !errors.Is(err, io.EOF) {
			respond.WriteErrorDetail(w, http.StatusBadRequest, respond.CodeInvalidBody, "Request body must be a JSON object", err.Error())
			return req, false
		}
	}

	if req.Weights == nil {
		req.Weights = scoring.DefaultWeights()
	}
	if err := req.Weights.Validate(); err != nil {
		respond.WriteErrorDetail(w, http.StatusBadRequest, respond.CodeInvalidWeights, "Scoring weights are invalid", err.Error())
		return req, false
	}

	// Query parameters override the body for the list endpoints.
	q := r.URL.Query()
	if positions := q["position"]; len(positions) > 0 {
		req.Positions = splitList(positions)
	}
	if top := q.Get("top"); top != "" {
		if strings.EqualFold(top, "all") {
			req.Top = -1
		} else {
			n, err := strconv.Atoi(top)
			if err != nil || n < 0 {
				respond.WriteError(w, http.StatusBadRequest, respond.CodeInvalidTop, "top must be a non-negative integer or 'all'")
				return req, false
			}
			req.Top = n
		}
	}
	return req, true
}

// splitList accepts both ?position=D&position=LW and ?position=D,LW.
func splitList(values []string) []string {
	var out []string
	for _, v := range values {
		for _, p := range strings.Split(v, ",") {
			if p = strings.ToUpper(strings.TrimSpace(p)); p != "" {
				out = append(out, p)
			}
		}
	}
	return out
}

func rankingsCacheKey(s scoring.Scorer, w scoring.Weights) string {
	return fmt.Sprintf("rankings:%s:%s", s.Rounding, w.Key())
}

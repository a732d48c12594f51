// Package respond provides shared response utilities for API handlers.
package respond

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Error codes carried in the error envelope.
const (
	CodeInvalidBody    = "INVALID_BODY"
	CodeInvalidWeights = "INVALID_WEIGHTS"
	CodeInvalidTop     = "INVALID_TOP"
	CodeInvalidGroup   = "INVALID_GROUP"
	CodeInvalidOrder   = "INVALID_ORDER"
	CodeInvalidLimit   = "INVALID_LIMIT"
	CodeRateLimited    = "RATE_LIMITED"
	CodeInternal       = "INTERNAL"
)

// ErrorBody is the inner object of ErrorResponse.
type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Detail  string `json:"detail,omitempty"`
}

// ErrorResponse is the standard error shape for all API errors.
type ErrorResponse struct {
	Error ErrorBody `json:"error"`
}

// WriteJSON writes pre-encoded ranking JSON with cache and ETag headers.
func WriteJSON(w http.ResponseWriter, data []byte, etag string, ttl time.Duration, cacheHit bool) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("ETag", etag)
	w.Header().Set("Vary", "Accept-Encoding")
	setCacheHeaders(w, ttl, cacheHit)
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

// WriteNotModified sends a 304 with the matching ETag.
func WriteNotModified(w http.ResponseWriter, etag string) {
	w.Header().Set("ETag", etag)
	w.WriteHeader(http.StatusNotModified)
}

// WriteError sends a structured JSON error response.
func WriteError(w http.ResponseWriter, status int, code, message string) {
	WriteErrorDetail(w, status, code, message, "")
}

// WriteErrorDetail sends a structured error with additional detail, usually
// the wrapped validation error.
func WriteErrorDetail(w http.ResponseWriter, status int, code, message, detail string) {
	w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
	WriteJSONObject(w, status, ErrorResponse{Error: ErrorBody{Code: code, Message: message, Detail: detail}})
}

// WriteJSONObject marshals a Go value to JSON and writes it. Used for
// uncached payloads: health, weights, filtered rankings, aggregates,
// dashboard views.
func WriteJSONObject(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// WriteAttachment sends data as a downloadable file.
func WriteAttachment(w http.ResponseWriter, contentType, filename string, data []byte) {
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.Header().Set("Cache-Control", "no-cache")
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

func setCacheHeaders(w http.ResponseWriter, ttl time.Duration, cacheHit bool) {
	status := "MISS"
	if cacheHit {
		status = "HIT"
	}
	w.Header().Set("X-Cache", status)
	// Responses are keyed by the POST body, so shared caches must not reuse them.
	w.Header().Set("Cache-Control", fmt.Sprintf("private, max-age=%d", int(ttl.Seconds())))
}

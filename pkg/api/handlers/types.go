package handlers

import (
	"encoding/json"
	"net/http"

	"warden-hq/warden/pkg/api/types"
	"warden-hq/warden/pkg/moderation"
	"warden-hq/warden/pkg/telemetry/metrics"
)

// maxBodyBytes caps the request body size accepted by the JSON handlers.
const maxBodyBytes = 1 << 20

// Recorder receives every decision for asynchronous persistence. Implemented
// by audit.Recorder; a nil Recorder disables auditing.
type Recorder interface {
	Record(content *moderation.ContentItem, resp *moderation.FlagResponse)
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// writeError writes an error envelope with the given status code.
func writeError(w http.ResponseWriter, status int, errResp *types.ErrorResponse) {
	writeJSON(w, status, errResp)
}

// NotFoundHandler returns the JSON NOT_FOUND envelope for unknown routes.
func NotFoundHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, types.NewNotFoundError())
	})
}

// recordDecision reports one decision to the metrics collector. mm may be nil
// when metrics are disabled.
func recordDecision(mm *metrics.ModerationMetrics, resp *moderation.FlagResponse) {
	if mm == nil {
		return
	}
	reasons := make([]string, len(resp.Result.Reasons))
	for i, c := range resp.Result.Reasons {
		reasons[i] = string(c)
	}
	mm.RecordDecision(resp.Result.IsFlagged, reasons,
		string(resp.Result.Severity), resp.ProcessingTimeMs/1000)
}

package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"warden-hq/warden/pkg/api/types"
	"warden-hq/warden/pkg/moderation"
	"warden-hq/warden/pkg/telemetry/metrics"
)

// FlagHandler handles POST /v1/moderation/flag.
type FlagHandler struct {
	engine   *moderation.Engine
	recorder Recorder
	metrics  *metrics.ModerationMetrics
}

// NewFlagHandler creates the single-item moderation handler. recorder and mm
// may be nil to disable auditing and metrics.
func NewFlagHandler(engine *moderation.Engine, recorder Recorder, mm *metrics.ModerationMetrics) *FlagHandler {
	return &FlagHandler{
		engine:   engine,
		recorder: recorder,
		metrics:  mm,
	}
}

// ServeHTTP validates the request, runs the engine, and returns the flag
// response envelope.
func (h *FlagHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	status := h.serve(w, r)
	if h.metrics != nil {
		h.metrics.RecordRequest("flag", strconv.Itoa(status))
	}
}

func (h *FlagHandler) serve(w http.ResponseWriter, r *http.Request) int {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed,
			types.NewErrorResponse(types.CodeNotFound, "Method not allowed."))
		return http.StatusMethodNotAllowed
	}

	var req types.FlagRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest,
			types.NewErrorResponse(types.CodeInvalidContentFormat, "Request body must be valid JSON."))
		return http.StatusBadRequest
	}

	if errResp := req.Validate(); errResp != nil {
		writeError(w, http.StatusBadRequest, errResp)
		return http.StatusBadRequest
	}

	resp := h.engine.Process(req.Content, req.Context)

	if h.recorder != nil {
		h.recorder.Record(req.Content, &resp)
	}
	recordDecision(h.metrics, &resp)

	writeJSON(w, http.StatusOK, resp)
	return http.StatusOK
}

package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"sync"

	"warden-hq/warden/pkg/api/types"
	"warden-hq/warden/pkg/moderation"
	"warden-hq/warden/pkg/telemetry/metrics"
)

// BatchFlagHandler handles POST /v1/moderation/flag/batch.
type BatchFlagHandler struct {
	engine   *moderation.Engine
	recorder Recorder
	metrics  *metrics.ModerationMetrics
	maxBatch int
}

// NewBatchFlagHandler creates the batch moderation handler. recorder and mm
// may be nil to disable auditing and metrics; maxBatch of zero falls back to
// types.MaxBatchSize.
func NewBatchFlagHandler(engine *moderation.Engine, recorder Recorder, mm *metrics.ModerationMetrics, maxBatch int) *BatchFlagHandler {
	return &BatchFlagHandler{
		engine:   engine,
		recorder: recorder,
		metrics:  mm,
		maxBatch: maxBatch,
	}
}

// ServeHTTP validates the batch and processes items concurrently. The engine
// is a pure function of its input, so items run in parallel without locking;
// results land in a slice slot per item, preserving input order.
func (h *BatchFlagHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	status := h.serve(w, r)
	if h.metrics != nil {
		h.metrics.RecordRequest("flag_batch", strconv.Itoa(status))
	}
}

func (h *BatchFlagHandler) serve(w http.ResponseWriter, r *http.Request) int {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed,
			types.NewErrorResponse(types.CodeNotFound, "Method not allowed."))
		return http.StatusMethodNotAllowed
	}

	var req types.BatchFlagRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest,
			types.NewErrorResponse(types.CodeInvalidBatchFormat, "Request body must be valid JSON with an items array."))
		return http.StatusBadRequest
	}

	if errResp := req.Validate(h.maxBatch); errResp != nil {
		writeError(w, http.StatusBadRequest, errResp)
		return http.StatusBadRequest
	}

	results := make([]moderation.FlagResponse, len(req.Items))
	var wg sync.WaitGroup
	for i := range req.Items {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			item := &req.Items[i]
			results[i] = h.engine.Process(item.Content, item.Context)
		}(i)
	}
	wg.Wait()

	if h.recorder != nil {
		for i := range req.Items {
			h.recorder.Record(req.Items[i].Content, &results[i])
		}
	}
	if h.metrics != nil {
		h.metrics.RecordBatch(len(req.Items))
	}
	for i := range results {
		recordDecision(h.metrics, &results[i])
	}

	writeJSON(w, http.StatusOK, types.BatchFlagResponse{
		Results: results,
		Count:   len(results),
	})
	return http.StatusOK
}

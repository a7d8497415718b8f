package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"warden-hq/warden/pkg/api/types"
	"warden-hq/warden/pkg/moderation"
)

func newTestEngine(t *testing.T) *moderation.Engine {
	t.Helper()
	catalog, err := moderation.BuildCatalog(nil)
	if err != nil {
		t.Fatalf("BuildCatalog failed: %v", err)
	}
	return moderation.NewEngine(catalog)
}

// fakeRecorder counts recorded decisions.
type fakeRecorder struct {
	mu      sync.Mutex
	records int
}

func (f *fakeRecorder) Record(content *moderation.ContentItem, resp *moderation.FlagResponse) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.records++
}

func (f *fakeRecorder) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.records
}

func postJSON(t *testing.T, handler http.Handler, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) types.ErrorResponse {
	t.Helper()
	var errResp types.ErrorResponse
	if err := json.NewDecoder(rec.Body).Decode(&errResp); err != nil {
		t.Fatalf("failed to decode error response: %v", err)
	}
	return errResp
}

func TestFlagHandler_FlagsSpam(t *testing.T) {
	recorder := &fakeRecorder{}
	handler := NewFlagHandler(newTestEngine(t), recorder, nil)

	rec := postJSON(t, handler, "/v1/moderation/flag", `{
		"content": {
			"id": "c1",
			"userId": "u1",
			"type": "text",
			"text": "CLICK HERE FOR FREE MONEY!!!"
		}
	}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body: %s", rec.Code, rec.Body.String())
	}

	var resp moderation.FlagResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if !resp.Result.IsFlagged {
		t.Error("expected spam content to be flagged")
	}
	if resp.RequestID == "" {
		t.Error("expected a request id")
	}
	if resp.ProcessingTimeMs <= 0 {
		t.Errorf("processingTimeMs = %v, want > 0", resp.ProcessingTimeMs)
	}
	if recorder.count() != 1 {
		t.Errorf("audit records = %d, want 1", recorder.count())
	}
}

func TestFlagHandler_CleanContent(t *testing.T) {
	handler := NewFlagHandler(newTestEngine(t), nil, nil)

	rec := postJSON(t, handler, "/v1/moderation/flag", `{
		"content": {
			"id": "c1",
			"userId": "u1",
			"type": "text",
			"text": "What a lovely morning for a walk in the park."
		}
	}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var resp moderation.FlagResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Result.IsFlagged {
		t.Errorf("clean content flagged: %+v", resp.Result)
	}
	if resp.Result.Details != "Content appears to be clean" {
		t.Errorf("details = %q", resp.Result.Details)
	}
}

func TestFlagHandler_ContextInBody(t *testing.T) {
	handler := NewFlagHandler(newTestEngine(t), nil, nil)

	rec := postJSON(t, handler, "/v1/moderation/flag", `{
		"content": {
			"id": "c1",
			"userId": "u1",
			"type": "text",
			"text": "damn it this thing never works the way it should when I need it"
		},
		"context": {"previousFlags": 5}
	}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var resp moderation.FlagResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Result.Confidence < 0.4 {
		t.Errorf("confidence = %v, want >= 0.4 for repeat offender", resp.Result.Confidence)
	}
}

func TestFlagHandler_ValidationErrors(t *testing.T) {
	handler := NewFlagHandler(newTestEngine(t), nil, nil)

	tests := []struct {
		name     string
		body     string
		wantCode string
	}{
		{
			name:     "missing content",
			body:     `{}`,
			wantCode: types.CodeMissingContent,
		},
		{
			name:     "invalid json",
			body:     `{not json`,
			wantCode: types.CodeInvalidContentFormat,
		},
		{
			name:     "missing id",
			body:     `{"content": {"userId": "u1", "type": "text", "text": "hi"}}`,
			wantCode: types.CodeInvalidContentFormat,
		},
		{
			name:     "missing userId",
			body:     `{"content": {"id": "c1", "type": "text", "text": "hi"}}`,
			wantCode: types.CodeInvalidContentFormat,
		},
		{
			name:     "bad type",
			body:     `{"content": {"id": "c1", "userId": "u1", "type": "audio", "text": "hi"}}`,
			wantCode: types.CodeInvalidContentType,
		},
		{
			name:     "no text or url",
			body:     `{"content": {"id": "c1", "userId": "u1", "type": "text"}}`,
			wantCode: types.CodeMissingContentData,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := postJSON(t, handler, "/v1/moderation/flag", tt.body)
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400", rec.Code)
			}
			if errResp := decodeError(t, rec); errResp.Error.Code != tt.wantCode {
				t.Errorf("code = %q, want %q", errResp.Error.Code, tt.wantCode)
			}
		})
	}
}

func TestFlagHandler_MethodNotAllowed(t *testing.T) {
	handler := NewFlagHandler(newTestEngine(t), nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/moderation/flag", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want 405", rec.Code)
	}
}

//go:build integration

package test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"warden-hq/warden/pkg/api/types"
	"warden-hq/warden/pkg/audit"
	"warden-hq/warden/pkg/config"
	"warden-hq/warden/pkg/moderation"
	"warden-hq/warden/pkg/server"
	"warden-hq/warden/pkg/telemetry/metrics"
)

// TestModerationIntegration exercises the full flow: HTTP request through the
// middleware chain and handlers into the engine, with decisions landing in a
// real SQLite audit store.
func TestModerationIntegration(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Audit.Enabled = true
	cfg.Audit.Driver = "sqlite"
	cfg.Audit.Path = filepath.Join(t.TempDir(), "audit.db")

	catalog, err := moderation.BuildCatalog(map[moderation.Category][]string{
		moderation.CategorySpam: {"operator flagged phrase"},
	})
	if err != nil {
		t.Fatalf("BuildCatalog failed: %v", err)
	}

	storage, err := audit.NewSQLiteStorage(&cfg.Audit, nil)
	if err != nil {
		t.Fatalf("NewSQLiteStorage failed: %v", err)
	}
	defer storage.Close()

	recorder := audit.NewRecorder(storage, cfg.Audit.AsyncBuffer, nil)

	srv := server.New(cfg, server.Options{
		Engine:    moderation.NewEngine(catalog),
		Recorder:  recorder,
		Collector: metrics.NewCollector(&cfg.Telemetry.Metrics, nil),
	})

	testServer := httptest.NewServer(srv.Handler())
	defer testServer.Close()

	client := testServer.Client()

	postFlag := func(t *testing.T, body string) moderation.FlagResponse {
		t.Helper()
		resp, err := client.Post(testServer.URL+"/v1/moderation/flag", "application/json",
			bytes.NewReader([]byte(body)))
		if err != nil {
			t.Fatalf("request failed: %v", err)
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("status = %d, want 200", resp.StatusCode)
		}
		var flagResp moderation.FlagResponse
		if err := json.NewDecoder(resp.Body).Decode(&flagResp); err != nil {
			t.Fatalf("decode failed: %v", err)
		}
		return flagResp
	}

	t.Run("spam detection over http", func(t *testing.T) {
		flagResp := postFlag(t, `{
			"content": {"id": "c1", "userId": "u1", "type": "text",
				"text": "CLICK HERE FOR FREE MONEY!!!"}
		}`)
		if !flagResp.Result.IsFlagged {
			t.Error("spam not flagged")
		}
		if flagResp.Result.Severity != moderation.SeverityLow {
			t.Errorf("severity = %q, want low", flagResp.Result.Severity)
		}
	})

	t.Run("custom rule from config", func(t *testing.T) {
		flagResp := postFlag(t, `{
			"content": {"id": "c2", "userId": "u1", "type": "text",
				"text": "this contains the OPERATOR FLAGGED PHRASE verbatim"}
		}`)
		if !flagResp.Result.IsFlagged {
			t.Error("custom rule did not flag")
		}
		found := false
		for _, r := range flagResp.Result.Reasons {
			if r == moderation.CategorySpam {
				found = true
			}
		}
		if !found {
			t.Errorf("reasons = %v, want spam", flagResp.Result.Reasons)
		}
	})

	t.Run("pii yields high severity", func(t *testing.T) {
		flagResp := postFlag(t, `{
			"content": {"id": "c3", "userId": "u2", "type": "text",
				"text": "My SSN is 123-45-6789 and phone is 555-123-4567"}
		}`)
		if !flagResp.Result.IsFlagged {
			t.Fatal("pii not flagged")
		}
		if flagResp.Result.Severity != moderation.SeverityHigh {
			t.Errorf("severity = %q, want high", flagResp.Result.Severity)
		}
		if flagResp.Result.Confidence <= 0.8 {
			t.Errorf("confidence = %v, want > 0.8", flagResp.Result.Confidence)
		}
	})

	t.Run("batch preserves order", func(t *testing.T) {
		resp, err := client.Post(testServer.URL+"/v1/moderation/flag/batch", "application/json",
			bytes.NewReader([]byte(`{
				"items": [
					{"content": {"id": "b1", "userId": "u1", "type": "text", "text": "kill yourself"}},
					{"content": {"id": "b2", "userId": "u1", "type": "text", "text": "have a nice day"}}
				]
			}`)))
		if err != nil {
			t.Fatalf("request failed: %v", err)
		}
		defer resp.Body.Close()
		var batchResp types.BatchFlagResponse
		if err := json.NewDecoder(resp.Body).Decode(&batchResp); err != nil {
			t.Fatalf("decode failed: %v", err)
		}
		if batchResp.Count != 2 {
			t.Fatalf("count = %d, want 2", batchResp.Count)
		}
		if !batchResp.Results[0].Result.IsFlagged || batchResp.Results[1].Result.IsFlagged {
			t.Errorf("order not preserved: %+v", batchResp.Results)
		}
	})

	t.Run("validation error code", func(t *testing.T) {
		resp, err := client.Post(testServer.URL+"/v1/moderation/flag", "application/json",
			bytes.NewReader([]byte(`{"content": {"id": "c4", "userId": "u1", "type": "hologram", "text": "hi"}}`)))
		if err != nil {
			t.Fatalf("request failed: %v", err)
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusBadRequest {
			t.Fatalf("status = %d, want 400", resp.StatusCode)
		}
		var errResp types.ErrorResponse
		if err := json.NewDecoder(resp.Body).Decode(&errResp); err != nil {
			t.Fatalf("decode failed: %v", err)
		}
		if errResp.Error.Code != types.CodeInvalidContentType {
			t.Errorf("code = %q, want %q", errResp.Error.Code, types.CodeInvalidContentType)
		}
	})

	t.Run("decisions reach audit storage", func(t *testing.T) {
		recorder.Close()

		records, err := storage.RecentRecords(context.Background(), 50)
		if err != nil {
			t.Fatalf("RecentRecords failed: %v", err)
		}
		// 3 single flags + 2 batch items; the invalid request never
		// reaches the engine.
		if len(records) != 5 {
			t.Errorf("audit records = %d, want 5", len(records))
		}
	})

	t.Run("metrics exposition", func(t *testing.T) {
		resp, err := client.Get(testServer.URL + "/metrics")
		if err != nil {
			t.Fatalf("request failed: %v", err)
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			t.Errorf("status = %d, want 200", resp.StatusCode)
		}
	})
}

// TestServerLifecycle starts the real listener and shuts it down.
func TestServerLifecycle(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	cfg := config.DefaultConfig()
	cfg.Server.ListenAddress = "127.0.0.1:18462"
	cfg.Server.ShutdownTimeout = 5 * time.Second

	catalog, err := moderation.BuildCatalog(nil)
	if err != nil {
		t.Fatalf("BuildCatalog failed: %v", err)
	}
	srv := server.New(cfg, server.Options{Engine: moderation.NewEngine(catalog)})

	ctx, cancel := context.WithCancel(context.Background())
	errChan := make(chan error, 1)
	go func() {
		errChan <- srv.Start(ctx)
	}()

	// Wait for the listener to come up.
	url := fmt.Sprintf("http://%s/health", cfg.Server.ListenAddress)
	deadline := time.Now().Add(5 * time.Second)
	for {
		resp, err := http.Get(url)
		if err == nil {
			resp.Body.Close()
			break
		}
		if time.Now().After(deadline) {
			t.Fatalf("server did not come up: %v", err)
		}
		time.Sleep(50 * time.Millisecond)
	}

	cancel()
	select {
	case err := <-errChan:
		if err != nil {
			t.Errorf("Start returned error: %v", err)
		}
	case <-time.After(10 * time.Second):
		t.Fatal("server did not shut down")
	}
	if srv.IsRunning() {
		t.Error("IsRunning = true after shutdown")
	}
}

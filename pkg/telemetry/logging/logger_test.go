package logging

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestNew_RejectsBadConfig(t *testing.T) {
	if _, err := New(Config{Level: "loud"}); err == nil {
		t.Error("expected error for bad level")
	}
	if _, err := New(Config{Format: "xml"}); err == nil {
		t.Error("expected error for bad format")
	}
}

func TestLogger_JSONOutput(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Config{Level: "info", Format: "json", Writer: &buf})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	logger.Info("content analyzed", "category", "spam")

	var record map[string]any
	if err := json.Unmarshal(buf.Bytes(), &record); err != nil {
		t.Fatalf("log output is not JSON: %v (%q)", err, buf.String())
	}
	if record["msg"] != "content analyzed" {
		t.Errorf("msg = %v", record["msg"])
	}
	if record["category"] != "spam" {
		t.Errorf("category = %v", record["category"])
	}
}

func TestLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Config{Level: "warn", Format: "json", Writer: &buf})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	logger.Info("should be dropped")
	if buf.Len() != 0 {
		t.Errorf("info record emitted below warn level: %q", buf.String())
	}

	logger.Warn("should be kept")
	if buf.Len() == 0 {
		t.Error("warn record was dropped")
	}
}

func TestLogger_SetLevel(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Config{Level: "warn", Format: "json", Writer: &buf})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	if err := logger.SetLevel("debug"); err != nil {
		t.Fatalf("SetLevel failed: %v", err)
	}
	logger.Debug("now visible")
	if buf.Len() == 0 {
		t.Error("debug record dropped after SetLevel(debug)")
	}

	if err := logger.SetLevel("shouting"); err == nil {
		t.Error("expected error for unknown level")
	}
}

func TestLogger_RedactsContent(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Config{Level: "info", Format: "json", RedactContent: true, Writer: &buf})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	logger.Info("flagged", "text", "my ssn is 123-45-6789, mail me at a@b.com")

	out := buf.String()
	if strings.Contains(out, "123-45-6789") || strings.Contains(out, "a@b.com") {
		t.Errorf("PII leaked into log output: %q", out)
	}
	if !strings.Contains(out, "***-**-****") {
		t.Errorf("expected SSN mask in output: %q", out)
	}
}

func TestRedactor(t *testing.T) {
	r := NewRedactor()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "untouched", in: "nothing sensitive here", want: "nothing sensitive here"},
		{name: "ssn", in: "ssn 123-45-6789 end", want: "ssn ***-**-**** end"},
		{name: "phone", in: "call 555-123-4567", want: "call ***-***-****"},
		{name: "email", in: "hi user@example.com", want: "hi <email>"},
		{name: "card", in: "pay 4111-1111-1111-1111 now", want: "pay ****-****-****-**** now"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Redact(tt.in); got != tt.want {
				t.Errorf("Redact(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestRedactArgs_KeysUntouched(t *testing.T) {
	r := NewRedactor()

	args := r.RedactArgs("user@example.com", "user@example.com")
	if args[0] != "user@example.com" {
		t.Errorf("key was redacted: %v", args[0])
	}
	if args[1] != "<email>" {
		t.Errorf("value was not redacted: %v", args[1])
	}
}

package logging

import "regexp"

// Redactor masks personal-information shapes in log field values. The shapes
// mirror the ones the moderation engine detects: SSN-like, phone-like,
// email-like, and payment-card-like sequences.
type Redactor struct {
	patterns []redactPattern
}

type redactPattern struct {
	regex       *regexp.Regexp
	replacement string
}

// NewRedactor creates a Redactor with the built-in patterns.
func NewRedactor() *Redactor {
	return &Redactor{
		patterns: []redactPattern{
			{regexp.MustCompile(`\b\d{4}[-\s]?\d{4}[-\s]?\d{4}[-\s]?\d{4}\b`), "****-****-****-****"},
			{regexp.MustCompile(`\b\d{3}-\d{2}-\d{4}\b`), "***-**-****"},
			{regexp.MustCompile(`\b\(?\d{3}\)?[-.\s]\d{3}[-.\s]\d{4}\b`), "***-***-****"},
			{regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`), "<email>"},
		},
	}
}

// Redact masks all recognized shapes in s.
func (r *Redactor) Redact(s string) string {
	for _, p := range r.patterns {
		s = p.regex.ReplaceAllString(s, p.replacement)
	}
	return s
}

// RedactArgs applies Redact to every string value in an slog key/value
// argument list. Keys (the even positions) are left alone.
func (r *Redactor) RedactArgs(args ...any) []any {
	out := make([]any, len(args))
	copy(out, args)
	for i := 1; i < len(out); i += 2 {
		if s, ok := out[i].(string); ok {
			out[i] = r.Redact(s)
		}
	}
	return out
}

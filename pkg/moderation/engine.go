package moderation

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
)

// flagThreshold is the aggregate confidence above which content is flagged
// even without a category hit. Any single hit category already flags the
// content on its own; this threshold is kept as an independent trigger so
// future context-only signals can flag without a hit.
const flagThreshold = 0.3

// minProcessingMs is the floor for reported processing time, so it is never
// exactly zero.
const minProcessingMs = 0.001

// cleanDetails is the summary for content with no detected violations.
const cleanDetails = "Content appears to be clean"

// Engine analyzes content items against an immutable pattern catalog. It
// holds no mutable state and is safe for concurrent use without locking.
type Engine struct {
	catalog *Catalog
}

// NewEngine creates an engine backed by the given catalog. The catalog must
// not be modified after this call (BuildCatalog already guarantees that).
func NewEngine(catalog *Catalog) *Engine {
	return &Engine{catalog: catalog}
}

// Catalog returns the engine's pattern catalog.
func (e *Engine) Catalog() *Catalog {
	return e.catalog
}

// Analyze computes the moderation verdict for a content item. It is a pure
// function of its inputs and the catalog: no I/O, no clock, no randomness,
// and no failure modes. actx may be nil.
func (e *Engine) Analyze(content *ContentItem, actx *AnalysisContext) FlagResult {
	combined := content.CombinedText()
	textLen := len(combined)

	reasons := make([]Category, 0, 4)
	confidences := make(map[Category]float64)
	total := 0.0

	for _, cat := range categoryOrder {
		matched := e.catalog.matchRules(cat, combined)
		if len(matched) == 0 {
			continue
		}
		reasons = append(reasons, cat)
		conf := categoryConfidence(len(matched), textLen, actx)
		confidences[cat] = conf
		total += conf
	}

	// The dedicated personal-information rule set bypasses the density
	// formula: a hit contributes a fixed amount to the total and records no
	// per-category confidence, so it never triggers severity escalation on
	// its own. personal_information is last in catalog order, so appending
	// here keeps Reasons in catalog iteration order.
	if kinds := e.catalog.MatchPII(combined); len(kinds) > 0 {
		if !containsCategory(reasons, CategoryPersonalInformation) {
			reasons = append(reasons, CategoryPersonalInformation)
		}
		total += piiConfidence
	}

	// Context never creates a verdict on its own: with no hits the result
	// is clean regardless of platform, audience, or prior flags, and the
	// confidence threshold below stays unreachable as a sole trigger.
	if len(reasons) == 0 {
		return FlagResult{
			IsFlagged:  false,
			Severity:   SeverityLow,
			Reasons:    reasons,
			Confidence: 0,
			Details:    cleanDetails,
		}
	}

	final := adjustConfidence(total, len(reasons), actx)
	severity := overallSeverity(reasons, confidences)
	flagged := final > flagThreshold || len(reasons) > 0

	return FlagResult{
		IsFlagged:  flagged,
		Severity:   severity,
		Reasons:    reasons,
		Confidence: final,
		Details:    buildDetails(reasons, final),
	}
}

// Process runs Analyze and wraps the result with a fresh request ID, a
// timestamp, and the elapsed analysis time. This is the only place wall-clock
// time or randomness enters the engine.
func (e *Engine) Process(content *ContentItem, actx *AnalysisContext) FlagResponse {
	start := time.Now()
	result := e.Analyze(content, actx)

	elapsed := float64(time.Since(start).Nanoseconds()) / float64(time.Millisecond)
	if elapsed <= 0 {
		elapsed = minProcessingMs
	}

	return FlagResponse{
		RequestID:        newRequestID(),
		Result:           result,
		ProcessingTimeMs: elapsed,
		Timestamp:        time.Now().UTC(),
	}
}

// newRequestID generates a request identifier unique with overwhelming
// probability within the process lifetime: a millisecond timestamp prefix
// plus a random suffix.
func newRequestID() string {
	return fmt.Sprintf("req_%d_%s", time.Now().UnixMilli(), uuid.NewString()[:8])
}

// buildDetails renders the human-readable verdict summary.
func buildDetails(reasons []Category, confidence float64) string {
	if len(reasons) == 0 {
		return cleanDetails
	}
	names := make([]string, len(reasons))
	for i, r := range reasons {
		names[i] = string(r)
	}
	return fmt.Sprintf("Detected %s with %d%% confidence",
		strings.Join(names, ", "), int(math.Round(confidence*100)))
}

func containsCategory(list []Category, c Category) bool {
	for _, item := range list {
		if item == c {
			return true
		}
	}
	return false
}

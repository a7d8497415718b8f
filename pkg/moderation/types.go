package moderation

import (
	"strings"
	"time"
)

// ContentID is an opaque identifier for a piece of content. It is a distinct
// type so content and user identifiers cannot be mixed up accidentally; no
// behavior is attached.
type ContentID string

// UserID is an opaque identifier for the submitting user.
type UserID string

// ContentType describes the kind of content being submitted.
type ContentType string

const (
	// ContentTypeText is plain text content.
	ContentTypeText ContentType = "text"
	// ContentTypeImage is image content (analyzed via its text/url fields).
	ContentTypeImage ContentType = "image"
	// ContentTypeVideo is video content (analyzed via its text/url fields).
	ContentTypeVideo ContentType = "video"
	// ContentTypeLink is a bare link submission.
	ContentTypeLink ContentType = "link"
)

// ValidContentType reports whether t is one of the four allowed content types.
func ValidContentType(t ContentType) bool {
	switch t {
	case ContentTypeText, ContentTypeImage, ContentTypeVideo, ContentTypeLink:
		return true
	}
	return false
}

// ContentItem is a unit of user-submitted content. The transport layer
// validates ID, UserID, and Type presence before the engine sees it; the
// engine itself only reads Text and URL.
type ContentItem struct {
	// ID uniquely identifies the content item.
	ID ContentID `json:"id"`

	// UserID identifies the submitting user.
	UserID UserID `json:"userId"`

	// Type is the content type (text, image, video, link).
	Type ContentType `json:"type"`

	// Text is the textual body, if any.
	Text string `json:"text,omitempty"`

	// URL is an associated link, if any.
	URL string `json:"url,omitempty"`

	// Metadata carries caller-defined attributes. The engine ignores it.
	Metadata map[string]any `json:"metadata,omitempty"`
}

// CombinedText returns the unit of text actually scanned by all rules: the
// Text and URL fields joined with a single space and trimmed. If both are
// absent the result is the empty string.
func (c *ContentItem) CombinedText() string {
	return strings.TrimSpace(c.Text + " " + c.URL)
}

// AnalysisContext carries optional situational signals supplied by the caller.
// They adjust, but never solely determine, the verdict.
type AnalysisContext struct {
	// Platform is the publishing platform (e.g. "twitter").
	Platform string `json:"platform,omitempty"`

	// Audience is the target audience (e.g. "children").
	Audience string `json:"audience,omitempty"`

	// PreviousFlags is the number of times this user has been flagged
	// before. Non-negative.
	PreviousFlags int `json:"previousFlags,omitempty"`
}

// FlagResult is the engine's verdict for a single content item.
type FlagResult struct {
	// IsFlagged reports whether the content should be withheld from
	// publication.
	IsFlagged bool `json:"isFlagged"`

	// Severity is the overall harm tier across all detected categories.
	Severity Severity `json:"severity"`

	// Reasons lists the categories that matched, in catalog iteration
	// order, without duplicates. Empty iff no category had a match.
	Reasons []Category `json:"reasons"`

	// Confidence is the aggregate confidence in [0,1] that the content
	// violates policy. Zero iff Reasons is empty and no context boost
	// applied.
	Confidence float64 `json:"confidence"`

	// Details is a human-readable summary of the verdict.
	Details string `json:"details,omitempty"`
}

// FlagResponse wraps a FlagResult with per-call identification and timing.
// It is generated fresh for every Process call.
type FlagResponse struct {
	// RequestID uniquely identifies this call within the process lifetime.
	RequestID string `json:"requestId"`

	// Result is the engine's verdict.
	Result FlagResult `json:"result"`

	// ProcessingTimeMs is the elapsed analysis time in milliseconds.
	// Always strictly positive.
	ProcessingTimeMs float64 `json:"processingTimeMs"`

	// Timestamp is when the analysis completed, in UTC.
	Timestamp time.Time `json:"timestamp"`
}

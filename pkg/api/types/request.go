package types

import (
	"fmt"

	"warden-hq/warden/pkg/moderation"
)

// FlagRequest is the request body for POST /v1/moderation/flag.
type FlagRequest struct {
	// Content is the item to analyze. Required.
	Content *moderation.ContentItem `json:"content"`

	// Context carries optional situational signals (platform, audience,
	// prior offense count).
	Context *moderation.AnalysisContext `json:"context,omitempty"`
}

// BatchFlagRequest is the request body for POST /v1/moderation/flag/batch.
type BatchFlagRequest struct {
	// Items is the list of content items to analyze, at most MaxBatchSize.
	Items []FlagRequest `json:"items"`
}

// MaxBatchSize is the default limit on items in one batch request, used when
// no limit is configured.
const MaxBatchSize = 100

// Validate checks that a flag request satisfies the content contract the
// engine assumes. It returns nil when the request is valid, otherwise an
// error response carrying the matching fixed code.
func (r *FlagRequest) Validate() *ErrorResponse {
	if r.Content == nil {
		return NewErrorResponse(CodeMissingContent, "Request must include a content object.")
	}
	c := r.Content
	if c.ID == "" || c.UserID == "" || c.Type == "" {
		return NewErrorResponse(CodeInvalidContentFormat, "Content must include id, userId, and type.")
	}
	if !moderation.ValidContentType(c.Type) {
		return NewErrorResponse(CodeInvalidContentType, "Content type must be one of: text, image, video, link.")
	}
	if c.Text == "" && c.URL == "" {
		return NewErrorResponse(CodeMissingContentData, "Content must include at least one of text or url.")
	}
	return nil
}

// Validate checks the batch shape and every item in it against the given
// size limit (MaxBatchSize when limit is not positive). Per-item failures
// report the index of the offending item in the message.
func (r *BatchFlagRequest) Validate(limit int) *ErrorResponse {
	if limit <= 0 {
		limit = MaxBatchSize
	}
	if r.Items == nil {
		return NewErrorResponse(CodeInvalidBatchFormat, "Request must include an items array.")
	}
	if len(r.Items) == 0 {
		return NewErrorResponse(CodeEmptyBatch, "Batch must contain at least one item.")
	}
	if len(r.Items) > limit {
		return NewErrorResponse(CodeBatchSizeExceeded,
			fmt.Sprintf("Batch size exceeds the maximum of %d items.", limit))
	}
	for i := range r.Items {
		if errResp := r.Items[i].Validate(); errResp != nil {
			errResp.Error.Message = fmt.Sprintf("Item %d: %s", i, errResp.Error.Message)
			return errResp
		}
	}
	return nil
}

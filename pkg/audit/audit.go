// Package audit records moderation decisions for later review. Recording is
// asynchronous and entirely outside the engine: the engine stays a pure
// function, and a full audit buffer drops records rather than slowing or
// failing a request.
package audit

import (
	"context"
	"time"
)

// Record is one stored moderation decision.
type Record struct {
	// ID uniquely identifies the stored record.
	ID string `json:"id"`

	// RequestID is the per-call identifier from the FlagResponse.
	RequestID string `json:"requestId"`

	// ContentID and UserID identify what was analyzed and for whom.
	ContentID string `json:"contentId"`
	UserID    string `json:"userId"`

	// Flagged is the verdict outcome.
	Flagged bool `json:"flagged"`

	// Severity is the overall severity of the verdict.
	Severity string `json:"severity"`

	// Reasons is the list of flagged categories.
	Reasons []string `json:"reasons"`

	// Confidence is the aggregate confidence of the verdict.
	Confidence float64 `json:"confidence"`

	// ProcessingMs is the reported engine processing time.
	ProcessingMs float64 `json:"processingMs"`

	// CreatedAt is when the decision was recorded, in UTC.
	CreatedAt time.Time `json:"createdAt"`
}

// Storage persists audit records.
type Storage interface {
	// SaveRecord stores one record.
	SaveRecord(ctx context.Context, rec *Record) error

	// RecentRecords returns up to limit records, newest first.
	RecentRecords(ctx context.Context, limit int) ([]Record, error)

	// Prune deletes records created before cutoff and, when maxRecords is
	// positive, trims the table down to at most maxRecords rows. It
	// returns the number of deleted rows.
	Prune(ctx context.Context, cutoff time.Time, maxRecords int64) (int64, error)

	// Ping verifies the storage backend is reachable.
	Ping(ctx context.Context) error

	// Close releases storage resources.
	Close() error
}

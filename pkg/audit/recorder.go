package audit

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"warden-hq/warden/pkg/moderation"
)

// writeTimeout bounds a single storage write from the background worker.
const writeTimeout = 5 * time.Second

// Recorder writes moderation decisions to storage asynchronously. Record
// never blocks the caller: when the buffer is full the record is dropped and
// counted.
type Recorder struct {
	storage Storage
	records chan *Record
	dropped atomic.Int64
	wg      sync.WaitGroup
	done    chan struct{}
	logger  *slog.Logger
}

// NewRecorder creates a recorder draining into storage and starts its
// background worker. bufferSize must be positive.
func NewRecorder(storage Storage, bufferSize int, logger *slog.Logger) *Recorder {
	if logger == nil {
		logger = slog.Default()
	}
	if bufferSize <= 0 {
		bufferSize = 1000
	}

	r := &Recorder{
		storage: storage,
		records: make(chan *Record, bufferSize),
		done:    make(chan struct{}),
		logger:  logger.With("component", "audit.recorder"),
	}

	r.wg.Add(1)
	go r.worker()

	return r
}

// Record enqueues one decision for storage. It never blocks; a full buffer
// drops the record.
func (r *Recorder) Record(content *moderation.ContentItem, resp *moderation.FlagResponse) {
	reasons := make([]string, len(resp.Result.Reasons))
	for i, c := range resp.Result.Reasons {
		reasons[i] = string(c)
	}

	rec := &Record{
		ID:           uuid.NewString(),
		RequestID:    resp.RequestID,
		ContentID:    string(content.ID),
		UserID:       string(content.UserID),
		Flagged:      resp.Result.IsFlagged,
		Severity:     string(resp.Result.Severity),
		Reasons:      reasons,
		Confidence:   resp.Result.Confidence,
		ProcessingMs: resp.ProcessingTimeMs,
		CreatedAt:    resp.Timestamp,
	}

	select {
	case r.records <- rec:
	default:
		if r.dropped.Add(1)%100 == 1 {
			r.logger.Warn("audit buffer full, dropping records",
				"dropped_total", r.dropped.Load())
		}
	}
}

// Dropped returns the number of records dropped due to a full buffer.
func (r *Recorder) Dropped() int64 {
	return r.dropped.Load()
}

// Close stops the worker after draining buffered records.
func (r *Recorder) Close() {
	close(r.done)
	r.wg.Wait()
}

func (r *Recorder) worker() {
	defer r.wg.Done()

	for {
		select {
		case rec := <-r.records:
			r.write(rec)
		case <-r.done:
			// Drain whatever is still buffered.
			for {
				select {
				case rec := <-r.records:
					r.write(rec)
				default:
					return
				}
			}
		}
	}
}

func (r *Recorder) write(rec *Record) {
	ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
	defer cancel()

	if err := r.storage.SaveRecord(ctx, rec); err != nil {
		r.logger.Error("failed to store audit record",
			"error", err,
			"request_id", rec.RequestID,
		)
	}
}

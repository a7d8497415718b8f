package audit

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
)

// Pruner deletes audit records past the configured retention.
type Pruner struct {
	storage       Storage
	retentionDays int
	maxRecords    int64
	logger        *slog.Logger
}

// NewPruner creates a pruner. retentionDays of zero disables age-based
// pruning; maxRecords of zero disables count-based pruning.
func NewPruner(storage Storage, retentionDays int, maxRecords int64, logger *slog.Logger) *Pruner {
	if logger == nil {
		logger = slog.Default()
	}
	return &Pruner{
		storage:       storage,
		retentionDays: retentionDays,
		maxRecords:    maxRecords,
		logger:        logger.With("component", "audit.pruner"),
	}
}

// Prune runs one pruning cycle and returns the number of deleted records.
func (p *Pruner) Prune(ctx context.Context) (int64, error) {
	cutoff := time.Time{}
	if p.retentionDays > 0 {
		cutoff = time.Now().UTC().AddDate(0, 0, -p.retentionDays)
	}
	return p.storage.Prune(ctx, cutoff, p.maxRecords)
}

// Scheduler runs the pruner on a cron schedule (e.g. "0 3 * * *" for daily
// at 3 AM).
type Scheduler struct {
	pruner   *Pruner
	schedule string
	cron     *cron.Cron
	mu       sync.Mutex
	running  bool
	logger   *slog.Logger
}

// NewScheduler creates a retention scheduler. An empty schedule disables it.
func NewScheduler(pruner *Pruner, schedule string, logger *slog.Logger) *Scheduler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Scheduler{
		pruner:   pruner,
		schedule: schedule,
		cron:     cron.New(),
		logger:   logger.With("component", "audit.scheduler"),
	}
}

// Start begins scheduled pruning. It returns immediately; pruning runs on
// the cron goroutine until ctx is cancelled or Stop is called.
func (s *Scheduler) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.schedule == "" {
		s.logger.Info("prune schedule not configured, skipping scheduler")
		return nil
	}
	if _, err := cron.ParseStandard(s.schedule); err != nil {
		return fmt.Errorf("invalid cron schedule %q: %w", s.schedule, err)
	}

	if _, err := s.cron.AddFunc(s.schedule, func() {
		s.runPruning(ctx)
	}); err != nil {
		return fmt.Errorf("scheduling pruning: %w", err)
	}

	s.cron.Start()
	s.running = true

	s.logger.Info("retention scheduler started",
		"schedule", s.schedule,
		"retention_days", s.pruner.retentionDays,
		"max_records", s.pruner.maxRecords,
	)

	go func() {
		<-ctx.Done()
		s.Stop()
	}()

	return nil
}

func (s *Scheduler) runPruning(ctx context.Context) {
	deleted, err := s.pruner.Prune(ctx)
	if err != nil {
		s.logger.Error("scheduled pruning failed", "error", err)
		return
	}
	s.logger.Info("scheduled pruning complete", "deleted", deleted)
}

// Stop halts scheduled pruning and waits for a running cycle to finish.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running {
		return
	}
	s.running = false
	<-s.cron.Stop().Done()
	s.logger.Info("retention scheduler stopped")
}

package audit

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"strings"
	"time"

	// Both SQLite drivers are supported: "sqlite3" (cgo) and "sqlite"
	// (pure Go), selected via AuditConfig.Driver.
	_ "github.com/mattn/go-sqlite3"
	_ "modernc.org/sqlite"

	"warden-hq/warden/pkg/config"
)

// timeLayout is a fixed-width UTC timestamp layout so that lexicographic
// ordering of the stored created_at column matches chronological order.
const timeLayout = "2006-01-02T15:04:05.000000000Z"

// schema is the audit table definition, applied on open.
const schema = `
CREATE TABLE IF NOT EXISTS decisions (
	id            TEXT PRIMARY KEY,
	request_id    TEXT NOT NULL,
	content_id    TEXT NOT NULL,
	user_id       TEXT NOT NULL,
	flagged       INTEGER NOT NULL,
	severity      TEXT NOT NULL,
	reasons       TEXT NOT NULL,
	confidence    REAL NOT NULL,
	processing_ms REAL NOT NULL,
	created_at    TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_decisions_created_at ON decisions(created_at);
CREATE INDEX IF NOT EXISTS idx_decisions_user_id ON decisions(user_id);
`

// SQLiteStorage implements Storage on a local SQLite database.
type SQLiteStorage struct {
	db     *sql.DB
	logger *slog.Logger
}

// NewSQLiteStorage opens (or creates) the audit database, enables WAL mode,
// and applies the schema.
func NewSQLiteStorage(cfg *config.AuditConfig, logger *slog.Logger) (*SQLiteStorage, error) {
	if logger == nil {
		logger = slog.Default()
	}

	driver := cfg.Driver
	if driver == "" {
		driver = "sqlite3"
	}

	db, err := sql.Open(driver, cfg.Path)
	if err != nil {
		return nil, fmt.Errorf("opening audit database %q: %w", cfg.Path, err)
	}

	s := &SQLiteStorage{
		db:     db,
		logger: logger.With("component", "audit.storage"),
	}

	if err := s.initialize(cfg); err != nil {
		db.Close()
		return nil, err
	}

	s.logger.Info("audit storage initialized",
		"path", cfg.Path,
		"driver", driver,
	)
	return s, nil
}

func (s *SQLiteStorage) initialize(cfg *config.AuditConfig) error {
	if _, err := s.db.Exec("PRAGMA journal_mode=WAL;"); err != nil {
		return fmt.Errorf("enabling WAL mode: %w", err)
	}
	if cfg.BusyTimeout > 0 {
		stmt := fmt.Sprintf("PRAGMA busy_timeout=%d;", cfg.BusyTimeout.Milliseconds())
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("setting busy timeout: %w", err)
		}
	}
	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("applying audit schema: %w", err)
	}
	return nil
}

// SaveRecord stores one record.
func (s *SQLiteStorage) SaveRecord(ctx context.Context, rec *Record) error {
	flagged := 0
	if rec.Flagged {
		flagged = 1
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO decisions
			(id, request_id, content_id, user_id, flagged, severity,
			 reasons, confidence, processing_ms, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.ID, rec.RequestID, rec.ContentID, rec.UserID, flagged,
		rec.Severity, strings.Join(rec.Reasons, ","), rec.Confidence,
		rec.ProcessingMs, rec.CreatedAt.UTC().Format(timeLayout),
	)
	if err != nil {
		return fmt.Errorf("inserting audit record: %w", err)
	}
	return nil
}

// RecentRecords returns up to limit records, newest first.
func (s *SQLiteStorage) RecentRecords(ctx context.Context, limit int) ([]Record, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, request_id, content_id, user_id, flagged, severity,
		       reasons, confidence, processing_ms, created_at
		FROM decisions
		ORDER BY created_at DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying audit records: %w", err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var (
			rec       Record
			flagged   int
			reasons   string
			createdAt string
		)
		if err := rows.Scan(&rec.ID, &rec.RequestID, &rec.ContentID,
			&rec.UserID, &flagged, &rec.Severity, &reasons,
			&rec.Confidence, &rec.ProcessingMs, &createdAt); err != nil {
			return nil, fmt.Errorf("scanning audit record: %w", err)
		}
		rec.Flagged = flagged != 0
		if reasons != "" {
			rec.Reasons = strings.Split(reasons, ",")
		}
		if ts, err := time.Parse(timeLayout, createdAt); err == nil {
			rec.CreatedAt = ts
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// Prune deletes records created before cutoff and optionally trims the table
// to maxRecords rows (oldest deleted first).
func (s *SQLiteStorage) Prune(ctx context.Context, cutoff time.Time, maxRecords int64) (int64, error) {
	var deleted int64

	res, err := s.db.ExecContext(ctx,
		`DELETE FROM decisions WHERE created_at < ?`,
		cutoff.UTC().Format(timeLayout))
	if err != nil {
		return 0, fmt.Errorf("pruning by age: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil {
		deleted += n
	}

	if maxRecords > 0 {
		res, err := s.db.ExecContext(ctx, `
			DELETE FROM decisions WHERE id IN (
				SELECT id FROM decisions
				ORDER BY created_at DESC
				LIMIT -1 OFFSET ?
			)`, maxRecords)
		if err != nil {
			return deleted, fmt.Errorf("pruning by count: %w", err)
		}
		if n, err := res.RowsAffected(); err == nil {
			deleted += n
		}
	}

	return deleted, nil
}

// Ping verifies the database is reachable.
func (s *SQLiteStorage) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Close closes the database.
func (s *SQLiteStorage) Close() error {
	return s.db.Close()
}

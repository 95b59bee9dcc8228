package adapter

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // registers the "sqlite" driver

	m "testgenie.dev/pkg/testgenie/internal/model"
)

// ReportStore persists finished batch reports for later inspection.
type ReportStore interface {
	SaveReport(ctx context.Context, report m.BatchReport) (string, error)
	LoadReports(ctx context.Context, limit int) ([]m.RunSummary, error)
	LoadResults(ctx context.Context, runID string) ([]m.GenerationResult, error)
}

// SQLiteReportStore stores reports in a local SQLite database. The database
// is opened on first use.
type SQLiteReportStore struct {
	path string

	mu sync.Mutex
	db *sql.DB
}

// NewSQLiteReportStore creates a store backed by the database file at path.
func NewSQLiteReportStore(path m.Path) *SQLiteReportStore {
	return &SQLiteReportStore{path: string(path)}
}

func (s *SQLiteReportStore) open() (*sql.DB, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db != nil {
		return s.db, nil
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create history directory: %w", err)
	}

	dsn := fmt.Sprintf("%s?_journal_mode=WAL&_busy_timeout=10000", s.path)

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open history database: %w", err)
	}

	db.SetMaxOpenConns(1)

	if err := createReportTables(db); err != nil {
		_ = db.Close()
		return nil, err
	}

	s.db = db

	return db, nil
}

func createReportTables(db *sql.DB) error {
	schema := `
	CREATE TABLE IF NOT EXISTS runs (
		id TEXT PRIMARY KEY,
		project_type TEXT NOT NULL,
		roots TEXT NOT NULL,
		total INTEGER NOT NULL,
		succeeded INTEGER NOT NULL,
		failed INTEGER NOT NULL,
		started_at INTEGER NOT NULL,
		finished_at INTEGER NOT NULL
	);

	CREATE TABLE IF NOT EXISTS results (
		run_id TEXT NOT NULL REFERENCES runs(id),
		position INTEGER NOT NULL,
		source TEXT NOT NULL,
		test_path TEXT,
		status TEXT NOT NULL,
		reason TEXT,
		PRIMARY KEY (run_id, position)
	);

	CREATE INDEX IF NOT EXISTS idx_runs_started ON runs(started_at);
	`

	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create history tables: %w", err)
	}

	return nil
}

// SaveReport stores report and its results, assigning a run id when the
// report has none. It returns the run id.
func (s *SQLiteReportStore) SaveReport(ctx context.Context, report m.BatchReport) (string, error) {
	db, err := s.open()
	if err != nil {
		return "", err
	}

	if report.RunID == "" {
		report.RunID = uuid.NewString()
	}

	roots, err := json.Marshal(report.Roots)
	if err != nil {
		return "", fmt.Errorf("failed to encode roots: %w", err)
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() { _ = tx.Rollback() }()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO runs (id, project_type, roots, total, succeeded, failed, started_at, finished_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		report.RunID, report.ProjectType.String(), string(roots),
		len(report.Results), report.Succeeded(), report.Failed(),
		report.StartedAt.UnixNano(), report.FinishedAt.UnixNano(),
	)
	if err != nil {
		return "", fmt.Errorf("failed to insert run: %w", err)
	}

	for i, res := range report.Results {
		_, err = tx.ExecContext(ctx,
			`INSERT INTO results (run_id, position, source, test_path, status, reason) VALUES (?, ?, ?, ?, ?, ?)`,
			report.RunID, i, string(res.Source), string(res.TestFilePath), res.Status.String(), res.Reason,
		)
		if err != nil {
			return "", fmt.Errorf("failed to insert result: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("failed to commit run: %w", err)
	}

	return report.RunID, nil
}

// LoadReports returns the most recent runs first. A limit of zero or less returns all runs.
func (s *SQLiteReportStore) LoadReports(ctx context.Context, limit int) ([]m.RunSummary, error) {
	db, err := s.open()
	if err != nil {
		return nil, err
	}

	if limit <= 0 {
		limit = -1
	}

	rows, err := db.QueryContext(ctx,
		`SELECT id, project_type, roots, total, succeeded, failed, started_at, finished_at
		 FROM runs ORDER BY started_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query runs: %w", err)
	}
	defer rows.Close()

	var summaries []m.RunSummary

	for rows.Next() {
		var (
			summary           m.RunSummary
			roots             string
			started, finished int64
		)

		if err := rows.Scan(&summary.RunID, &summary.ProjectType, &roots, &summary.Total,
			&summary.Succeeded, &summary.Failed, &started, &finished); err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}

		if err := json.Unmarshal([]byte(roots), &summary.Roots); err != nil {
			return nil, fmt.Errorf("failed to decode roots: %w", err)
		}

		summary.StartedAt = time.Unix(0, started)
		summary.FinishedAt = time.Unix(0, finished)
		summaries = append(summaries, summary)
	}

	return summaries, rows.Err()
}

// LoadResults returns the per-file results of a run in their original order.
func (s *SQLiteReportStore) LoadResults(ctx context.Context, runID string) ([]m.GenerationResult, error) {
	db, err := s.open()
	if err != nil {
		return nil, err
	}

	rows, err := db.QueryContext(ctx,
		`SELECT source, test_path, status, reason FROM results WHERE run_id = ? ORDER BY position`, runID)
	if err != nil {
		return nil, fmt.Errorf("failed to query results: %w", err)
	}
	defer rows.Close()

	var results []m.GenerationResult

	for rows.Next() {
		var (
			res                      m.GenerationResult
			source, testPath, status string
			reason                   sql.NullString
		)

		if err := rows.Scan(&source, &testPath, &status, &reason); err != nil {
			return nil, fmt.Errorf("failed to scan result: %w", err)
		}

		res.Source = m.Path(source)
		res.TestFilePath = m.Path(testPath)
		res.Reason = reason.String

		if status != m.Success.String() {
			res.Status = m.Failed
		}

		results = append(results, res)
	}

	return results, rows.Err()
}

// Close releases the database handle, if open.
func (s *SQLiteReportStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db == nil {
		return nil
	}

	err := s.db.Close()
	s.db = nil

	return err
}

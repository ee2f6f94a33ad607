package store

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Run one consolidation run's record
type Run struct {
	ID             string     `json:"id"`
	StartedAt      time.Time  `json:"startedAt"`
	FinishedAt     *time.Time `json:"finishedAt,omitempty"`
	Status         string     `json:"status"`
	ProcessedFiles int        `json:"processedFiles"`
	SkippedFiles   int        `json:"skippedFiles"`
	TotalRows      int        `json:"totalRows"`
	OutputPath     string     `json:"outputPath,omitempty"`
}

// RunFile one file's outcome within a run
type RunFile struct {
	RunID    string `json:"runId"`
	Folder   string `json:"folder"`
	Filename string `json:"filename"`
	Status   string `json:"status"`
	Reason   string `json:"reason,omitempty"`
}

// CreateRun inserts a new running run and returns its id
func (s *Store) CreateRun(startedAt time.Time) (string, error) {
	id := uuid.NewString()
	_, err := s.db.Exec(
		`INSERT INTO runs (id, started_at, status) VALUES (?, ?, 'running')`,
		id, startedAt.UTC(),
	)
	if err != nil {
		return "", fmt.Errorf("failed to create run: %w", err)
	}
	return id, nil
}

// FinishRun records a run's final accounting
func (s *Store) FinishRun(id, status string, processed, skipped, totalRows int, outputPath string) error {
	_, err := s.db.Exec(
		`UPDATE runs SET finished_at = ?, status = ?, processed_files = ?, skipped_files = ?, total_rows = ?, output_path = ? WHERE id = ?`,
		time.Now().UTC(), status, processed, skipped, totalRows, outputPath, id,
	)
	if err != nil {
		return fmt.Errorf("failed to finish run: %w", err)
	}
	return nil
}

// RecordFile appends one file outcome to a run
func (s *Store) RecordFile(runID, folder, filename, status, reason string) error {
	_, err := s.db.Exec(
		`INSERT INTO run_files (run_id, folder, filename, status, reason) VALUES (?, ?, ?, ?, ?)`,
		runID, folder, filename, status, reason,
	)
	if err != nil {
		return fmt.Errorf("failed to record file outcome: %w", err)
	}
	return nil
}

// ListRuns returns the most recent runs, newest first
func (s *Store) ListRuns(limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := s.db.Query(
		`SELECT id, started_at, finished_at, status, processed_files, skipped_files, total_rows, COALESCE(output_path, '')
		 FROM runs ORDER BY started_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	defer rows.Close()

	out := []Run{}
	for rows.Next() {
		var r Run
		var finished sql.NullTime
		if err := rows.Scan(&r.ID, &r.StartedAt, &finished, &r.Status, &r.ProcessedFiles, &r.SkippedFiles, &r.TotalRows, &r.OutputPath); err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		if finished.Valid {
			t := finished.Time
			r.FinishedAt = &t
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// GetRun returns one run by id
func (s *Store) GetRun(id string) (*Run, error) {
	var r Run
	var finished sql.NullTime
	err := s.db.QueryRow(
		`SELECT id, started_at, finished_at, status, processed_files, skipped_files, total_rows, COALESCE(output_path, '')
		 FROM runs WHERE id = ?`, id).
		Scan(&r.ID, &r.StartedAt, &finished, &r.Status, &r.ProcessedFiles, &r.SkippedFiles, &r.TotalRows, &r.OutputPath)
	if err != nil {
		return nil, err
	}
	if finished.Valid {
		t := finished.Time
		r.FinishedAt = &t
	}
	return &r, nil
}

// ListRunFiles returns the per-file outcomes of a run
func (s *Store) ListRunFiles(runID string) ([]RunFile, error) {
	rows, err := s.db.Query(
		`SELECT run_id, folder, filename, status, COALESCE(reason, '') FROM run_files WHERE run_id = ? ORDER BY id`, runID)
	if err != nil {
		return nil, fmt.Errorf("failed to list run files: %w", err)
	}
	defer rows.Close()

	out := []RunFile{}
	for rows.Next() {
		var f RunFile
		if err := rows.Scan(&f.RunID, &f.Folder, &f.Filename, &f.Status, &f.Reason); err != nil {
			return nil, fmt.Errorf("failed to scan run file: %w", err)
		}
		out = append(out, f)
	}
	return out, rows.Err()
}

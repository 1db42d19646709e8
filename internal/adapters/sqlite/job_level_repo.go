// Package sqlite contains SQLite implementations of repository interfaces.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sqlite3 "github.com/mattn/go-sqlite3"

	"github.com/example/ladder/internal/ports/secondary"
)

// JobLevelRepository implements secondary.JobLevelRepository with SQLite.
type JobLevelRepository struct {
	db *sql.DB
}

// NewJobLevelRepository creates a new SQLite job level repository.
func NewJobLevelRepository(db *sql.DB) *JobLevelRepository {
	return &JobLevelRepository{db: db}
}

// Create persists a new job level.
func (r *JobLevelRepository) Create(ctx context.Context, level *secondary.JobLevelRecord) error {
	var trajectoryNote sql.NullString
	if level.TrajectoryNote != "" {
		trajectoryNote = sql.NullString{String: level.TrajectoryNote, Valid: true}
	}

	_, err := r.db.ExecContext(ctx,
		"INSERT INTO job_levels (id, name, primary_title, description_summary, trajectory_note) VALUES (?, ?, ?, ?, ?)",
		level.ID, level.Name, level.PrimaryTitle, level.DescriptionSummary, trajectoryNote,
	)
	if isConstraintErr(err) {
		return fmt.Errorf("job level %s: %w", level.ID, secondary.ErrDuplicateID)
	}
	if err != nil {
		return fmt.Errorf("failed to create job level: %w", err)
	}

	return nil
}

// GetByID retrieves a job level by its ID.
func (r *JobLevelRepository) GetByID(ctx context.Context, id string) (*secondary.JobLevelRecord, error) {
	var (
		trajectoryNote sql.NullString
		createdAt      time.Time
	)

	record := &secondary.JobLevelRecord{}
	err := r.db.QueryRowContext(ctx,
		"SELECT id, name, primary_title, description_summary, trajectory_note, created_at FROM job_levels WHERE id = ?",
		id,
	).Scan(&record.ID, &record.Name, &record.PrimaryTitle, &record.DescriptionSummary, &trajectoryNote, &createdAt)

	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("job level %s: %w", id, secondary.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get job level: %w", err)
	}

	record.TrajectoryNote = trajectoryNote.String
	record.CreatedAt = createdAt.Format(time.RFC3339)

	return record, nil
}

// ListAll retrieves every job level.
func (r *JobLevelRepository) ListAll(ctx context.Context) ([]*secondary.JobLevelRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT id, name, primary_title, description_summary, trajectory_note, created_at FROM job_levels ORDER BY created_at, id",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list job levels: %w", err)
	}
	defer rows.Close()

	var levels []*secondary.JobLevelRecord
	for rows.Next() {
		var (
			trajectoryNote sql.NullString
			createdAt      time.Time
		)

		record := &secondary.JobLevelRecord{}
		if err := rows.Scan(&record.ID, &record.Name, &record.PrimaryTitle, &record.DescriptionSummary, &trajectoryNote, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan job level: %w", err)
		}

		record.TrajectoryNote = trajectoryNote.String
		record.CreatedAt = createdAt.Format(time.RFC3339)
		levels = append(levels, record)
	}

	return levels, rows.Err()
}

// Exists checks whether a job level with the given id exists.
func (r *JobLevelRepository) Exists(ctx context.Context, id string) (bool, error) {
	var count int
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM job_levels WHERE id = ?", id).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("failed to check job level existence: %w", err)
	}
	return count > 0, nil
}

// isConstraintErr reports whether err is a SQLite constraint violation
// (duplicate primary key or unique index).
func isConstraintErr(err error) bool {
	var sqliteErr sqlite3.Error
	return errors.As(err, &sqliteErr) && sqliteErr.Code == sqlite3.ErrConstraint
}

// Ensure JobLevelRepository implements the interface
var _ secondary.JobLevelRepository = (*JobLevelRepository)(nil)

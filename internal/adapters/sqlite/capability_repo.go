package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/example/ladder/internal/ports/secondary"
)

// CapabilityRepository implements secondary.CapabilityRepository with SQLite.
type CapabilityRepository struct {
	db *sql.DB
}

// NewCapabilityRepository creates a new SQLite capability repository.
func NewCapabilityRepository(db *sql.DB) *CapabilityRepository {
	return &CapabilityRepository{db: db}
}

// Create persists a new capability and fills in its generated ID.
func (r *CapabilityRepository) Create(ctx context.Context, capability *secondary.CapabilityRecord) error {
	result, err := r.db.ExecContext(ctx,
		"INSERT INTO capabilities (job_level_id, criterion_id, description) VALUES (?, ?, ?)",
		capability.JobLevelID, capability.CriterionID, capability.Description,
	)
	if err != nil {
		return fmt.Errorf("failed to create capability: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read capability id: %w", err)
	}
	capability.ID = id

	return nil
}

// GetByID retrieves a capability by its generated ID.
func (r *CapabilityRepository) GetByID(ctx context.Context, id int64) (*secondary.CapabilityRecord, error) {
	var createdAt time.Time

	record := &secondary.CapabilityRecord{}
	err := r.db.QueryRowContext(ctx,
		"SELECT id, job_level_id, criterion_id, description, created_at FROM capabilities WHERE id = ?",
		id,
	).Scan(&record.ID, &record.JobLevelID, &record.CriterionID, &record.Description, &createdAt)

	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("capability %d: %w", id, secondary.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get capability: %w", err)
	}

	record.CreatedAt = createdAt.Format(time.RFC3339)

	return record, nil
}

// ListAll retrieves every capability.
func (r *CapabilityRepository) ListAll(ctx context.Context) ([]*secondary.CapabilityRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT id, job_level_id, criterion_id, description, created_at FROM capabilities ORDER BY id",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list capabilities: %w", err)
	}
	defer rows.Close()

	var capabilities []*secondary.CapabilityRecord
	for rows.Next() {
		var createdAt time.Time

		record := &secondary.CapabilityRecord{}
		if err := rows.Scan(&record.ID, &record.JobLevelID, &record.CriterionID, &record.Description, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan capability: %w", err)
		}

		record.CreatedAt = createdAt.Format(time.RFC3339)
		capabilities = append(capabilities, record)
	}

	return capabilities, rows.Err()
}

// Ensure CapabilityRepository implements the interface
var _ secondary.CapabilityRepository = (*CapabilityRepository)(nil)

package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/example/ladder/internal/ports/secondary"
)

// CriterionRepository implements secondary.CriterionRepository with SQLite.
type CriterionRepository struct {
	db *sql.DB
}

// NewCriterionRepository creates a new SQLite criterion repository.
func NewCriterionRepository(db *sql.DB) *CriterionRepository {
	return &CriterionRepository{db: db}
}

// Create persists a new criterion.
func (r *CriterionRepository) Create(ctx context.Context, criterion *secondary.CriterionRecord) error {
	_, err := r.db.ExecContext(ctx,
		"INSERT INTO criteria (id, category, sub_category) VALUES (?, ?, ?)",
		criterion.ID, criterion.Category, criterion.SubCategory,
	)
	if isConstraintErr(err) {
		return fmt.Errorf("criterion %s: %w", criterion.ID, secondary.ErrDuplicateID)
	}
	if err != nil {
		return fmt.Errorf("failed to create criterion: %w", err)
	}

	return nil
}

// GetByID retrieves a criterion by its ID.
func (r *CriterionRepository) GetByID(ctx context.Context, id string) (*secondary.CriterionRecord, error) {
	var createdAt time.Time

	record := &secondary.CriterionRecord{}
	err := r.db.QueryRowContext(ctx,
		"SELECT id, category, sub_category, created_at FROM criteria WHERE id = ?",
		id,
	).Scan(&record.ID, &record.Category, &record.SubCategory, &createdAt)

	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("criterion %s: %w", id, secondary.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get criterion: %w", err)
	}

	record.CreatedAt = createdAt.Format(time.RFC3339)

	return record, nil
}

// ListAll retrieves every criterion.
func (r *CriterionRepository) ListAll(ctx context.Context) ([]*secondary.CriterionRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT id, category, sub_category, created_at FROM criteria ORDER BY created_at, id",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list criteria: %w", err)
	}
	defer rows.Close()

	var criteria []*secondary.CriterionRecord
	for rows.Next() {
		var createdAt time.Time

		record := &secondary.CriterionRecord{}
		if err := rows.Scan(&record.ID, &record.Category, &record.SubCategory, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan criterion: %w", err)
		}

		record.CreatedAt = createdAt.Format(time.RFC3339)
		criteria = append(criteria, record)
	}

	return criteria, rows.Err()
}

// Exists checks whether a criterion with the given id exists.
func (r *CriterionRepository) Exists(ctx context.Context, id string) (bool, error) {
	var count int
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM criteria WHERE id = ?", id).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("failed to check criterion existence: %w", err)
	}
	return count > 0, nil
}

// Ensure CriterionRepository implements the interface
var _ secondary.CriterionRepository = (*CriterionRepository)(nil)

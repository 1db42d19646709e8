package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/example/ladder/internal/ports/secondary"
)

// OverviewRepository implements secondary.OverviewRepository with SQLite.
type OverviewRepository struct {
	db *sql.DB
}

// NewOverviewRepository creates a new SQLite overview content repository.
func NewOverviewRepository(db *sql.DB) *OverviewRepository {
	return &OverviewRepository{db: db}
}

// Create persists a new overview row and fills in its generated ID.
func (r *OverviewRepository) Create(ctx context.Context, content *secondary.OverviewRecord) error {
	result, err := r.db.ExecContext(ctx,
		"INSERT INTO overview_content (type, content, display_order) VALUES (?, ?, ?)",
		content.Type, content.Content, content.Order,
	)
	if err != nil {
		return fmt.Errorf("failed to create overview content: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read overview content id: %w", err)
	}
	content.ID = id

	return nil
}

// ListAll retrieves all rows sorted by display order; id breaks ties so
// the order is stable and deterministic per call.
func (r *OverviewRepository) ListAll(ctx context.Context) ([]*secondary.OverviewRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT id, type, content, display_order, created_at FROM overview_content ORDER BY display_order, id",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list overview content: %w", err)
	}
	defer rows.Close()

	var contents []*secondary.OverviewRecord
	for rows.Next() {
		var createdAt time.Time

		record := &secondary.OverviewRecord{}
		if err := rows.Scan(&record.ID, &record.Type, &record.Content, &record.Order, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan overview content: %w", err)
		}

		record.CreatedAt = createdAt.Format(time.RFC3339)
		contents = append(contents, record)
	}

	return contents, rows.Err()
}

// Ensure OverviewRepository implements the interface
var _ secondary.OverviewRepository = (*OverviewRepository)(nil)

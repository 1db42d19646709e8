package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/example/ladder/internal/ports/secondary"
)

// EditHistoryRepository implements secondary.EditHistoryRepository with SQLite.
type EditHistoryRepository struct {
	db *sql.DB
}

// NewEditHistoryRepository creates a new SQLite edit history repository.
func NewEditHistoryRepository(db *sql.DB) *EditHistoryRepository {
	return &EditHistoryRepository{db: db}
}

// Create appends a new entry to the edit log and fills in its generated ID.
func (r *EditHistoryRepository) Create(ctx context.Context, entry *secondary.EditHistoryRecord) error {
	result, err := r.db.ExecContext(ctx,
		"INSERT INTO edit_history (date, description) VALUES (?, ?)",
		entry.Date, entry.Description,
	)
	if err != nil {
		return fmt.Errorf("failed to create edit history entry: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read edit history id: %w", err)
	}
	entry.ID = id

	return nil
}

// ListAll retrieves all entries newest first. ISO dates sort
// lexicographically, so date DESC is newest-first; created_at DESC breaks
// ties, id DESC keeps the order deterministic within one timestamp.
func (r *EditHistoryRepository) ListAll(ctx context.Context) ([]*secondary.EditHistoryRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT id, date, description, created_at FROM edit_history ORDER BY date DESC, created_at DESC, id DESC",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list edit history: %w", err)
	}
	defer rows.Close()

	var entries []*secondary.EditHistoryRecord
	for rows.Next() {
		var createdAt time.Time

		record := &secondary.EditHistoryRecord{}
		if err := rows.Scan(&record.ID, &record.Date, &record.Description, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan edit history entry: %w", err)
		}

		record.CreatedAt = createdAt.Format(time.RFC3339)
		entries = append(entries, record)
	}

	return entries, rows.Err()
}

// Ensure EditHistoryRepository implements the interface
var _ secondary.EditHistoryRepository = (*EditHistoryRepository)(nil)

// Package secondary defines the secondary ports (driven adapters) for the application.
// These are the interfaces through which the application drives external systems.
package secondary

import "context"

// JobLevelRecord represents a job level as stored in persistence.
// Job levels are the column dimension of the matrix and carry no ordering
// field; display order is derived by callers.
type JobLevelRecord struct {
	ID                 string
	Name               string
	PrimaryTitle       string
	DescriptionSummary string
	TrajectoryNote     string // empty means no trajectory guidance given
	CreatedAt          string
}

// CriterionRecord represents an evaluation criterion as stored in persistence.
type CriterionRecord struct {
	ID          string
	Category    string
	SubCategory string
	CreatedAt   string
}

// CapabilityRecord represents a capability description for one
// (job level, criterion) pair as stored in persistence.
type CapabilityRecord struct {
	ID          int64
	JobLevelID  string
	CriterionID string
	Description string
	CreatedAt   string
}

// EditHistoryRecord represents one entry of the append-only edit log.
type EditHistoryRecord struct {
	ID          int64
	Date        string // ISO 8601 calendar date, sorts lexicographically
	Description string
	CreatedAt   string
}

// OverviewRecord represents one goal or principle row of the overview.
type OverviewRecord struct {
	ID        int64
	Type      string // "goal" or "principle"
	Content   string
	Order     int
	CreatedAt string
}

// Overview content types.
const (
	OverviewTypeGoal      = "goal"
	OverviewTypePrinciple = "principle"
)

// JobLevelRepository defines the secondary port for job level persistence.
type JobLevelRepository interface {
	// Create persists a new job level. Returns ErrDuplicateID if the id
	// already exists.
	Create(ctx context.Context, level *JobLevelRecord) error

	// GetByID retrieves a job level by its ID.
	GetByID(ctx context.Context, id string) (*JobLevelRecord, error)

	// ListAll retrieves every job level.
	ListAll(ctx context.Context) ([]*JobLevelRecord, error)

	// Exists checks whether a job level with the given id exists.
	Exists(ctx context.Context, id string) (bool, error)
}

// CriterionRepository defines the secondary port for criterion persistence.
type CriterionRepository interface {
	// Create persists a new criterion. Returns ErrDuplicateID if the id
	// already exists.
	Create(ctx context.Context, criterion *CriterionRecord) error

	// GetByID retrieves a criterion by its ID.
	GetByID(ctx context.Context, id string) (*CriterionRecord, error)

	// ListAll retrieves every criterion.
	ListAll(ctx context.Context) ([]*CriterionRecord, error)

	// Exists checks whether a criterion with the given id exists.
	Exists(ctx context.Context, id string) (bool, error)
}

// CapabilityRepository defines the secondary port for capability persistence.
type CapabilityRepository interface {
	// Create persists a new capability and fills in its generated ID.
	Create(ctx context.Context, capability *CapabilityRecord) error

	// GetByID retrieves a capability by its generated ID.
	GetByID(ctx context.Context, id int64) (*CapabilityRecord, error)

	// ListAll retrieves every capability.
	ListAll(ctx context.Context) ([]*CapabilityRecord, error)
}

// EditHistoryRepository defines the secondary port for the edit log.
type EditHistoryRepository interface {
	// Create appends a new entry to the edit log and fills in its
	// generated ID.
	Create(ctx context.Context, entry *EditHistoryRecord) error

	// ListAll retrieves all entries, newest first (date descending,
	// ties broken by created_at descending).
	ListAll(ctx context.Context) ([]*EditHistoryRecord, error)
}

// OverviewRepository defines the secondary port for overview content.
type OverviewRepository interface {
	// Create persists a new overview row and fills in its generated ID.
	Create(ctx context.Context, content *OverviewRecord) error

	// ListAll retrieves all rows sorted ascending by display order,
	// ties broken by ID so the order is deterministic per call.
	ListAll(ctx context.Context) ([]*OverviewRecord, error)
}

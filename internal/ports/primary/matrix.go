// Package primary defines the primary ports (driving adapters) for the application.
// These are the interfaces external callers invoke.
package primary

import "context"

// MatrixService defines the primary port for read-side matrix operations.
type MatrixService interface {
	// GetMatrixData returns the full matrix payload. Filters restrict the
	// capabilities collection only; job levels, criteria, edit history and
	// overview are always returned in full.
	GetMatrixData(ctx context.Context, filters *MatrixFilters) (*MatrixData, error)

	// GetMatrixView returns the assembled display grid for the given
	// filters, along with the visible level columns.
	GetMatrixView(ctx context.Context, filters *MatrixFilters) (*MatrixView, error)

	// SearchCapabilities returns flat capability results matching the
	// query and optional filters, for incremental search use cases.
	SearchCapabilities(ctx context.Context, query string, filters *SearchFilters) ([]*Capability, error)

	// GetJobLevels retrieves every job level.
	GetJobLevels(ctx context.Context) ([]*JobLevel, error)

	// GetCriteria retrieves every criterion.
	GetCriteria(ctx context.Context) ([]*Criterion, error)

	// GetEditHistory retrieves the edit log, newest first.
	GetEditHistory(ctx context.Context) ([]*EditHistoryEntry, error)

	// GetOverview retrieves the overview goals and principles.
	GetOverview(ctx context.Context) (*Overview, error)
}

// AdminService defines the primary port for administrative writes.
type AdminService interface {
	// CreateJobLevel creates a new job level.
	CreateJobLevel(ctx context.Context, req CreateJobLevelRequest) (*JobLevel, error)

	// CreateCriterion creates a new criterion.
	CreateCriterion(ctx context.Context, req CreateCriterionRequest) (*Criterion, error)

	// CreateCapability creates a new capability. Fails if the referenced
	// job level or criterion does not exist.
	CreateCapability(ctx context.Context, req CreateCapabilityRequest) (*Capability, error)

	// CreateEditHistoryEntry appends an entry to the edit log.
	CreateEditHistoryEntry(ctx context.Context, req CreateEditHistoryEntryRequest) (*EditHistoryEntry, error)

	// CreateOverviewContent creates a new overview goal or principle.
	CreateOverviewContent(ctx context.Context, req CreateOverviewContentRequest) (*OverviewContent, error)
}

// SeedService defines the primary port for bulk loading a full dataset.
type SeedService interface {
	// Seed loads a complete matrix payload: capability cross-references
	// are resolved first, then job levels, criteria, capabilities, edit
	// history and overview content are persisted in dependency order.
	Seed(ctx context.Context, data *MatrixData) error
}

// JobLevel is a named rung in the career ladder.
type JobLevel struct {
	ID                 string
	Name               string
	PrimaryTitle       string
	DescriptionSummary string
	TrajectoryNote     string
	CreatedAt          string
}

// Criterion is an evaluation axis identified by (category, sub-category).
type Criterion struct {
	ID          string
	Category    string
	SubCategory string
	CreatedAt   string
}

// Capability is the expected behavior text for one (job level, criterion) pair.
type Capability struct {
	ID          int64
	JobLevelID  string
	CriterionID string
	Description string
	CreatedAt   string
}

// EditHistoryEntry is one entry of the append-only edit log.
type EditHistoryEntry struct {
	ID          int64
	Date        string
	Description string
	CreatedAt   string
}

// OverviewContent is one goal or principle row with its display rank.
type OverviewContent struct {
	ID        int64
	Type      string
	Content   string
	Order     int
	CreatedAt string
}

// Overview groups the overview rows by type, each sorted by display rank.
type Overview struct {
	Goals      []string
	Principles []string
}

// MatrixData is the full matrix payload. It doubles as the bulk-load input
// for SeedService.
type MatrixData struct {
	JobLevels    []*JobLevel
	Criteria     []*Criterion
	Capabilities []*Capability
	EditHistory  []*EditHistoryEntry
	Overview     Overview
}

// MatrixFilters narrows the capability set. All fields are optional;
// an absent or empty field means no restriction from that predicate.
type MatrixFilters struct {
	Levels        []string
	Categories    []string
	SubCategories []string
	Search        string
}

// SearchFilters narrows search results; the query itself is passed
// separately to SearchCapabilities.
type SearchFilters struct {
	Levels        []string
	Categories    []string
	SubCategories []string
}

// MatrixView is the assembled display grid: category groups in first-seen
// order, sub-categories sorted lexicographically, cells keyed by job level id.
type MatrixView struct {
	Levels     []*JobLevel // visible columns for this query
	Categories []MatrixCategory
}

// MatrixCategory is one category row group of the grid.
type MatrixCategory struct {
	Name          string
	SubCategories []MatrixSubCategory
}

// MatrixSubCategory is one sub-category row of the grid. A job level id
// missing from Cells means no description is available for that cell.
type MatrixSubCategory struct {
	Name  string
	Cells map[string]string
}

// CreateJobLevelRequest contains parameters for creating a job level.
type CreateJobLevelRequest struct {
	ID                 string
	Name               string
	PrimaryTitle       string
	DescriptionSummary string
	TrajectoryNote     string
}

// CreateCriterionRequest contains parameters for creating a criterion.
type CreateCriterionRequest struct {
	ID          string
	Category    string
	SubCategory string
}

// CreateCapabilityRequest contains parameters for creating a capability.
type CreateCapabilityRequest struct {
	JobLevelID  string
	CriterionID string
	Description string
}

// CreateEditHistoryEntryRequest contains parameters for an edit log entry.
type CreateEditHistoryEntryRequest struct {
	Date        string
	Description string
}

// CreateOverviewContentRequest contains parameters for an overview row.
type CreateOverviewContentRequest struct {
	Type    string
	Content string
	Order   int
}

// FallbackProvider supplies a complete matrix payload when the primary
// store read fails. It is an explicit collaborator the matrix service may
// be configured with, never implicit global state.
type FallbackProvider interface {
	// MatrixData returns the fallback payload.
	MatrixData(ctx context.Context) (*MatrixData, error)
}

package app

import (
	"context"
	"fmt"
	"io"
	"sort"

	"github.com/charmbracelet/log"

	"github.com/example/ladder/internal/ports/primary"
	"github.com/example/ladder/internal/ports/secondary"
)

// ============================================================================
// Mock Implementations
// ============================================================================

func testLogger() *log.Logger {
	return log.New(io.Discard)
}

// mockStore implements every secondary repository over in-memory slices.
// Error fields let tests simulate store failures per collection.
type mockStore struct {
	jobLevels    []*secondary.JobLevelRecord
	criteria     []*secondary.CriterionRecord
	capabilities []*secondary.CapabilityRecord
	history      []*secondary.EditHistoryRecord
	overview     []*secondary.OverviewRecord

	nextCapabilityID int64
	nextHistoryID    int64
	nextOverviewID   int64

	// insertLog records the order of Create calls across collections.
	insertLog []string

	jobLevelErr   error
	criterionErr  error
	capabilityErr error
	historyErr    error
	overviewErr   error
}

func newMockStore() *mockStore {
	return &mockStore{}
}

// --- JobLevelRepository

type mockJobLevelRepo struct{ store *mockStore }

func (m *mockJobLevelRepo) Create(ctx context.Context, level *secondary.JobLevelRecord) error {
	if m.store.jobLevelErr != nil {
		return m.store.jobLevelErr
	}
	for _, l := range m.store.jobLevels {
		if l.ID == level.ID {
			return fmt.Errorf("job level %s: %w", level.ID, secondary.ErrDuplicateID)
		}
	}
	m.store.jobLevels = append(m.store.jobLevels, level)
	m.store.insertLog = append(m.store.insertLog, "job_level:"+level.ID)
	return nil
}

func (m *mockJobLevelRepo) GetByID(ctx context.Context, id string) (*secondary.JobLevelRecord, error) {
	for _, l := range m.store.jobLevels {
		if l.ID == id {
			return l, nil
		}
	}
	return nil, fmt.Errorf("job level %s: %w", id, secondary.ErrNotFound)
}

func (m *mockJobLevelRepo) ListAll(ctx context.Context) ([]*secondary.JobLevelRecord, error) {
	if m.store.jobLevelErr != nil {
		return nil, m.store.jobLevelErr
	}
	return m.store.jobLevels, nil
}

func (m *mockJobLevelRepo) Exists(ctx context.Context, id string) (bool, error) {
	if m.store.jobLevelErr != nil {
		return false, m.store.jobLevelErr
	}
	for _, l := range m.store.jobLevels {
		if l.ID == id {
			return true, nil
		}
	}
	return false, nil
}

// --- CriterionRepository

type mockCriterionRepo struct{ store *mockStore }

func (m *mockCriterionRepo) Create(ctx context.Context, criterion *secondary.CriterionRecord) error {
	if m.store.criterionErr != nil {
		return m.store.criterionErr
	}
	for _, c := range m.store.criteria {
		if c.ID == criterion.ID {
			return fmt.Errorf("criterion %s: %w", criterion.ID, secondary.ErrDuplicateID)
		}
	}
	m.store.criteria = append(m.store.criteria, criterion)
	m.store.insertLog = append(m.store.insertLog, "criterion:"+criterion.ID)
	return nil
}

func (m *mockCriterionRepo) GetByID(ctx context.Context, id string) (*secondary.CriterionRecord, error) {
	for _, c := range m.store.criteria {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, fmt.Errorf("criterion %s: %w", id, secondary.ErrNotFound)
}

func (m *mockCriterionRepo) ListAll(ctx context.Context) ([]*secondary.CriterionRecord, error) {
	if m.store.criterionErr != nil {
		return nil, m.store.criterionErr
	}
	return m.store.criteria, nil
}

func (m *mockCriterionRepo) Exists(ctx context.Context, id string) (bool, error) {
	if m.store.criterionErr != nil {
		return false, m.store.criterionErr
	}
	for _, c := range m.store.criteria {
		if c.ID == id {
			return true, nil
		}
	}
	return false, nil
}

// --- CapabilityRepository

type mockCapabilityRepo struct{ store *mockStore }

func (m *mockCapabilityRepo) Create(ctx context.Context, capability *secondary.CapabilityRecord) error {
	if m.store.capabilityErr != nil {
		return m.store.capabilityErr
	}
	m.store.nextCapabilityID++
	capability.ID = m.store.nextCapabilityID
	m.store.capabilities = append(m.store.capabilities, capability)
	m.store.insertLog = append(m.store.insertLog, fmt.Sprintf("capability:%s/%s", capability.JobLevelID, capability.CriterionID))
	return nil
}

func (m *mockCapabilityRepo) GetByID(ctx context.Context, id int64) (*secondary.CapabilityRecord, error) {
	for _, c := range m.store.capabilities {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, fmt.Errorf("capability %d: %w", id, secondary.ErrNotFound)
}

func (m *mockCapabilityRepo) ListAll(ctx context.Context) ([]*secondary.CapabilityRecord, error) {
	if m.store.capabilityErr != nil {
		return nil, m.store.capabilityErr
	}
	return m.store.capabilities, nil
}

// --- EditHistoryRepository

type mockHistoryRepo struct{ store *mockStore }

func (m *mockHistoryRepo) Create(ctx context.Context, entry *secondary.EditHistoryRecord) error {
	if m.store.historyErr != nil {
		return m.store.historyErr
	}
	m.store.nextHistoryID++
	entry.ID = m.store.nextHistoryID
	m.store.history = append(m.store.history, entry)
	m.store.insertLog = append(m.store.insertLog, "history:"+entry.Date)
	return nil
}

func (m *mockHistoryRepo) ListAll(ctx context.Context) ([]*secondary.EditHistoryRecord, error) {
	if m.store.historyErr != nil {
		return nil, m.store.historyErr
	}
	// Newest first, like the SQLite adapter.
	sorted := append([]*secondary.EditHistoryRecord(nil), m.store.history...)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Date != sorted[j].Date {
			return sorted[i].Date > sorted[j].Date
		}
		return sorted[i].ID > sorted[j].ID
	})
	return sorted, nil
}

// --- OverviewRepository

type mockOverviewRepo struct{ store *mockStore }

func (m *mockOverviewRepo) Create(ctx context.Context, content *secondary.OverviewRecord) error {
	if m.store.overviewErr != nil {
		return m.store.overviewErr
	}
	m.store.nextOverviewID++
	content.ID = m.store.nextOverviewID
	m.store.overview = append(m.store.overview, content)
	m.store.insertLog = append(m.store.insertLog, fmt.Sprintf("overview:%s:%d", content.Type, content.Order))
	return nil
}

func (m *mockOverviewRepo) ListAll(ctx context.Context) ([]*secondary.OverviewRecord, error) {
	if m.store.overviewErr != nil {
		return nil, m.store.overviewErr
	}
	sorted := append([]*secondary.OverviewRecord(nil), m.store.overview...)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Order != sorted[j].Order {
			return sorted[i].Order < sorted[j].Order
		}
		return sorted[i].ID < sorted[j].ID
	})
	return sorted, nil
}

// --- FallbackProvider

type mockFallbackProvider struct {
	data *primary.MatrixData
	err  error
	hits int
}

func (m *mockFallbackProvider) MatrixData(ctx context.Context) (*primary.MatrixData, error) {
	m.hits++
	if m.err != nil {
		return nil, m.err
	}
	return m.data, nil
}

// newTestServices wires the services over a shared mock store.
func newTestServices(store *mockStore, fallback primary.FallbackProvider) (*MatrixServiceImpl, *AdminServiceImpl, *SeedServiceImpl) {
	jobLevels := &mockJobLevelRepo{store: store}
	criteria := &mockCriterionRepo{store: store}
	capabilities := &mockCapabilityRepo{store: store}
	history := &mockHistoryRepo{store: store}
	overview := &mockOverviewRepo{store: store}

	matrixService := NewMatrixService(jobLevels, criteria, capabilities, history, overview, fallback, testLogger())
	adminService := NewAdminService(jobLevels, criteria, capabilities, history, overview)
	seedService := NewSeedService(jobLevels, criteria, capabilities, history, overview, testLogger())
	return matrixService, adminService, seedService
}

// seedStore fills the store with the standard test fixture.
func seedStore(store *mockStore) {
	store.jobLevels = []*secondary.JobLevelRecord{
		{ID: "l1-l2", Name: "L1 / L2", PrimaryTitle: "Engineer", DescriptionSummary: "Entry levels"},
		{ID: "l3", Name: "L3", PrimaryTitle: "Engineer", DescriptionSummary: "Experienced engineer"},
		{ID: "tl1", Name: "TL1", PrimaryTitle: "Lead Engineer", DescriptionSummary: "Technical lead"},
	}
	store.criteria = []*secondary.CriterionRecord{
		{ID: "craft-technical-expertise", Category: "Craft", SubCategory: "Technical Expertise"},
		{ID: "craft-quality", Category: "Craft", SubCategory: "Quality"},
		{ID: "impact-scope", Category: "Impact", SubCategory: "Scope"},
	}
	store.capabilities = []*secondary.CapabilityRecord{
		{ID: 1, JobLevelID: "l1-l2", CriterionID: "craft-technical-expertise", Description: "Learns the technical fundamentals"},
		{ID: 2, JobLevelID: "l3", CriterionID: "craft-technical-expertise", Description: "Strong technical skills"},
		{ID: 3, JobLevelID: "tl1", CriterionID: "craft-technical-expertise", Description: "Sets technical direction"},
		{ID: 4, JobLevelID: "l3", CriterionID: "craft-quality", Description: "Tests thoroughly before shipping"},
		{ID: 5, JobLevelID: "tl1", CriterionID: "impact-scope", Description: "Owns outcomes across projects"},
	}
	store.nextCapabilityID = 5
	store.history = []*secondary.EditHistoryRecord{
		{ID: 1, Date: "2024-03-20", Description: "Added TL track"},
		{ID: 2, Date: "2024-01-15", Description: "Initial version"},
		{ID: 3, Date: "2024-03-05", Description: "Clarified Craft criteria"},
	}
	store.nextHistoryID = 3
	store.overview = []*secondary.OverviewRecord{
		{ID: 1, Type: secondary.OverviewTypeGoal, Content: "B", Order: 2},
		{ID: 2, Type: secondary.OverviewTypeGoal, Content: "A", Order: 1},
		{ID: 3, Type: secondary.OverviewTypePrinciple, Content: "Trust by default", Order: 3},
	}
	store.nextOverviewID = 3
}

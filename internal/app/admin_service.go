package app

import (
	"context"
	"fmt"

	"github.com/example/ladder/internal/ports/primary"
	"github.com/example/ladder/internal/ports/secondary"
)

// AdminServiceImpl implements the AdminService interface. Writes validate
// referential integrity before any row is inserted; a failed validation
// rejects the single write with no partial insert.
type AdminServiceImpl struct {
	jobLevelRepo   secondary.JobLevelRepository
	criterionRepo  secondary.CriterionRepository
	capabilityRepo secondary.CapabilityRepository
	historyRepo    secondary.EditHistoryRepository
	overviewRepo   secondary.OverviewRepository
}

// NewAdminService creates a new AdminService with injected dependencies.
func NewAdminService(
	jobLevelRepo secondary.JobLevelRepository,
	criterionRepo secondary.CriterionRepository,
	capabilityRepo secondary.CapabilityRepository,
	historyRepo secondary.EditHistoryRepository,
	overviewRepo secondary.OverviewRepository,
) *AdminServiceImpl {
	return &AdminServiceImpl{
		jobLevelRepo:   jobLevelRepo,
		criterionRepo:  criterionRepo,
		capabilityRepo: capabilityRepo,
		historyRepo:    historyRepo,
		overviewRepo:   overviewRepo,
	}
}

// CreateJobLevel creates a new job level.
func (s *AdminServiceImpl) CreateJobLevel(ctx context.Context, req primary.CreateJobLevelRequest) (*primary.JobLevel, error) {
	exists, err := s.jobLevelRepo.Exists(ctx, req.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to validate job level id: %w", err)
	}
	if exists {
		return nil, fmt.Errorf("job level %s: %w", req.ID, secondary.ErrDuplicateID)
	}

	record := &secondary.JobLevelRecord{
		ID:                 req.ID,
		Name:               req.Name,
		PrimaryTitle:       req.PrimaryTitle,
		DescriptionSummary: req.DescriptionSummary,
		TrajectoryNote:     req.TrajectoryNote,
	}
	if err := s.jobLevelRepo.Create(ctx, record); err != nil {
		return nil, err
	}

	created, err := s.jobLevelRepo.GetByID(ctx, req.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch created job level: %w", err)
	}
	return jobLevelRecordToDTO(created), nil
}

// CreateCriterion creates a new criterion.
func (s *AdminServiceImpl) CreateCriterion(ctx context.Context, req primary.CreateCriterionRequest) (*primary.Criterion, error) {
	exists, err := s.criterionRepo.Exists(ctx, req.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to validate criterion id: %w", err)
	}
	if exists {
		return nil, fmt.Errorf("criterion %s: %w", req.ID, secondary.ErrDuplicateID)
	}

	record := &secondary.CriterionRecord{
		ID:          req.ID,
		Category:    req.Category,
		SubCategory: req.SubCategory,
	}
	if err := s.criterionRepo.Create(ctx, record); err != nil {
		return nil, err
	}

	created, err := s.criterionRepo.GetByID(ctx, req.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch created criterion: %w", err)
	}
	return criterionRecordToDTO(created), nil
}

// CreateCapability creates a new capability. Both referenced entities are
// validated before the insert.
func (s *AdminServiceImpl) CreateCapability(ctx context.Context, req primary.CreateCapabilityRequest) (*primary.Capability, error) {
	exists, err := s.jobLevelRepo.Exists(ctx, req.JobLevelID)
	if err != nil {
		return nil, fmt.Errorf("failed to validate job level: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("job level %s: %w", req.JobLevelID, secondary.ErrNotFound)
	}

	exists, err = s.criterionRepo.Exists(ctx, req.CriterionID)
	if err != nil {
		return nil, fmt.Errorf("failed to validate criterion: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("criterion %s: %w", req.CriterionID, secondary.ErrNotFound)
	}

	record := &secondary.CapabilityRecord{
		JobLevelID:  req.JobLevelID,
		CriterionID: req.CriterionID,
		Description: req.Description,
	}
	if err := s.capabilityRepo.Create(ctx, record); err != nil {
		return nil, err
	}

	created, err := s.capabilityRepo.GetByID(ctx, record.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch created capability: %w", err)
	}
	return capabilityRecordToDTO(created), nil
}

// CreateEditHistoryEntry appends an entry to the edit log.
func (s *AdminServiceImpl) CreateEditHistoryEntry(ctx context.Context, req primary.CreateEditHistoryEntryRequest) (*primary.EditHistoryEntry, error) {
	record := &secondary.EditHistoryRecord{
		Date:        req.Date,
		Description: req.Description,
	}
	if err := s.historyRepo.Create(ctx, record); err != nil {
		return nil, err
	}

	return &primary.EditHistoryEntry{
		ID:          record.ID,
		Date:        record.Date,
		Description: record.Description,
		CreatedAt:   record.CreatedAt,
	}, nil
}

// CreateOverviewContent creates a new overview goal or principle.
func (s *AdminServiceImpl) CreateOverviewContent(ctx context.Context, req primary.CreateOverviewContentRequest) (*primary.OverviewContent, error) {
	if req.Type != secondary.OverviewTypeGoal && req.Type != secondary.OverviewTypePrinciple {
		return nil, fmt.Errorf("invalid overview content type: %s", req.Type)
	}

	record := &secondary.OverviewRecord{
		Type:    req.Type,
		Content: req.Content,
		Order:   req.Order,
	}
	if err := s.overviewRepo.Create(ctx, record); err != nil {
		return nil, err
	}

	return &primary.OverviewContent{
		ID:        record.ID,
		Type:      record.Type,
		Content:   record.Content,
		Order:     record.Order,
		CreatedAt: record.CreatedAt,
	}, nil
}

// Ensure AdminServiceImpl implements the interface
var _ primary.AdminService = (*AdminServiceImpl)(nil)

package app

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/example/ladder/internal/core/matrix"
	"github.com/example/ladder/internal/ports/primary"
	"github.com/example/ladder/internal/ports/secondary"
)

// SeedServiceImpl implements the SeedService interface: bulk loading of a
// complete matrix payload. Capability cross-references are resolved once
// here, at load time; the expanded text is what gets persisted.
type SeedServiceImpl struct {
	jobLevelRepo   secondary.JobLevelRepository
	criterionRepo  secondary.CriterionRepository
	capabilityRepo secondary.CapabilityRepository
	historyRepo    secondary.EditHistoryRepository
	overviewRepo   secondary.OverviewRepository
	logger         *log.Logger
}

// NewSeedService creates a new SeedService with injected dependencies.
func NewSeedService(
	jobLevelRepo secondary.JobLevelRepository,
	criterionRepo secondary.CriterionRepository,
	capabilityRepo secondary.CapabilityRepository,
	historyRepo secondary.EditHistoryRepository,
	overviewRepo secondary.OverviewRepository,
	logger *log.Logger,
) *SeedServiceImpl {
	return &SeedServiceImpl{
		jobLevelRepo:   jobLevelRepo,
		criterionRepo:  criterionRepo,
		capabilityRepo: capabilityRepo,
		historyRepo:    historyRepo,
		overviewRepo:   overviewRepo,
		logger:         logger,
	}
}

// Seed persists a full dataset in dependency order: job levels and
// criteria first (capabilities reference them), then resolved
// capabilities, edit history and overview content. Unresolvable
// capability cross-references are logged and the load proceeds with the
// literal text retained.
func (s *SeedServiceImpl) Seed(ctx context.Context, data *primary.MatrixData) error {
	for _, level := range data.JobLevels {
		record := &secondary.JobLevelRecord{
			ID:                 level.ID,
			Name:               level.Name,
			PrimaryTitle:       level.PrimaryTitle,
			DescriptionSummary: level.DescriptionSummary,
			TrajectoryNote:     level.TrajectoryNote,
		}
		if err := s.jobLevelRepo.Create(ctx, record); err != nil {
			return fmt.Errorf("failed to seed job level %s: %w", level.ID, err)
		}
	}

	for _, criterion := range data.Criteria {
		record := &secondary.CriterionRecord{
			ID:          criterion.ID,
			Category:    criterion.Category,
			SubCategory: criterion.SubCategory,
		}
		if err := s.criterionRepo.Create(ctx, record); err != nil {
			return fmt.Errorf("failed to seed criterion %s: %w", criterion.ID, err)
		}
	}

	resolved, unresolved := matrix.ResolveReferences(toCoreCapabilities(data.Capabilities))
	for _, u := range unresolved {
		s.logger.Warn("unresolved capability cross-reference",
			"job_level", u.JobLevelID,
			"criterion", u.CriterionID,
			"token", u.Token,
		)
	}

	for _, capability := range resolved {
		record := &secondary.CapabilityRecord{
			JobLevelID:  capability.JobLevelID,
			CriterionID: capability.CriterionID,
			Description: capability.Description,
		}
		if err := s.capabilityRepo.Create(ctx, record); err != nil {
			return fmt.Errorf("failed to seed capability for %s/%s: %w", capability.JobLevelID, capability.CriterionID, err)
		}
	}

	for _, entry := range data.EditHistory {
		record := &secondary.EditHistoryRecord{
			Date:        entry.Date,
			Description: entry.Description,
		}
		if err := s.historyRepo.Create(ctx, record); err != nil {
			return fmt.Errorf("failed to seed edit history entry: %w", err)
		}
	}

	// Goals first, then principles, with display rank continuing across
	// the two groups.
	order := 0
	for _, goal := range data.Overview.Goals {
		order++
		record := &secondary.OverviewRecord{
			Type:    secondary.OverviewTypeGoal,
			Content: goal,
			Order:   order,
		}
		if err := s.overviewRepo.Create(ctx, record); err != nil {
			return fmt.Errorf("failed to seed overview goal: %w", err)
		}
	}
	for _, principle := range data.Overview.Principles {
		order++
		record := &secondary.OverviewRecord{
			Type:    secondary.OverviewTypePrinciple,
			Content: principle,
			Order:   order,
		}
		if err := s.overviewRepo.Create(ctx, record); err != nil {
			return fmt.Errorf("failed to seed overview principle: %w", err)
		}
	}

	return nil
}

// Ensure SeedServiceImpl implements the interface
var _ primary.SeedService = (*SeedServiceImpl)(nil)

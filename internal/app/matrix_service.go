// Package app contains the application services implementing the primary
// ports. Services compose repositories with the functional core and
// enforce referential rules; they hold no state of their own.
package app

import (
	"context"
	"fmt"
	"sort"

	"github.com/charmbracelet/log"

	"github.com/example/ladder/internal/core/matrix"
	"github.com/example/ladder/internal/ports/primary"
	"github.com/example/ladder/internal/ports/secondary"
)

// MatrixServiceImpl implements the MatrixService interface. It is the
// read-side facade: filtering happens in the functional core over full
// collection snapshots, so each query is a pure function of its inputs.
type MatrixServiceImpl struct {
	jobLevelRepo   secondary.JobLevelRepository
	criterionRepo  secondary.CriterionRepository
	capabilityRepo secondary.CapabilityRepository
	historyRepo    secondary.EditHistoryRepository
	overviewRepo   secondary.OverviewRepository
	fallback       primary.FallbackProvider // optional; nil means no fallback
	logger         *log.Logger
}

// NewMatrixService creates a new MatrixService with injected dependencies.
// fallback may be nil, in which case store read failures propagate to the
// caller unchanged.
func NewMatrixService(
	jobLevelRepo secondary.JobLevelRepository,
	criterionRepo secondary.CriterionRepository,
	capabilityRepo secondary.CapabilityRepository,
	historyRepo secondary.EditHistoryRepository,
	overviewRepo secondary.OverviewRepository,
	fallback primary.FallbackProvider,
	logger *log.Logger,
) *MatrixServiceImpl {
	return &MatrixServiceImpl{
		jobLevelRepo:   jobLevelRepo,
		criterionRepo:  criterionRepo,
		capabilityRepo: capabilityRepo,
		historyRepo:    historyRepo,
		overviewRepo:   overviewRepo,
		fallback:       fallback,
		logger:         logger,
	}
}

// GetMatrixData returns the full matrix payload. Filters restrict the
// capabilities collection only; every other collection is returned whole
// so callers can render an empty-but-labeled grid.
func (s *MatrixServiceImpl) GetMatrixData(ctx context.Context, filters *primary.MatrixFilters) (*primary.MatrixData, error) {
	data, err := s.snapshot(ctx)
	if err != nil {
		if s.fallback == nil {
			return nil, err
		}
		s.logger.Warn("store read failed, serving fallback data", "err", err)
		data, err = s.fallback.MatrixData(ctx)
		if err != nil {
			return nil, fmt.Errorf("fallback provider failed: %w", err)
		}
		// The store orders the edit log; provider payloads carry no such
		// guarantee.
		sortHistoryNewestFirst(data.EditHistory)
	}

	data.Capabilities = filterCapabilities(data.Capabilities, data.Criteria, filters)
	return data, nil
}

// GetMatrixView returns the assembled display grid for the given filters.
func (s *MatrixServiceImpl) GetMatrixView(ctx context.Context, filters *primary.MatrixFilters) (*primary.MatrixView, error) {
	data, err := s.GetMatrixData(ctx, filters)
	if err != nil {
		return nil, err
	}

	levelIDs := make([]string, len(data.JobLevels))
	levelsByID := make(map[string]*primary.JobLevel, len(data.JobLevels))
	for i, l := range data.JobLevels {
		levelIDs[i] = l.ID
		levelsByID[l.ID] = l
	}

	var levelsPredicate []string
	if filters != nil {
		levelsPredicate = filters.Levels
	}

	grid := matrix.AssembleGrid(
		toCoreCapabilities(data.Capabilities),
		toCoreCriteria(data.Criteria),
		levelIDs,
		levelsPredicate,
	)

	view := &primary.MatrixView{}
	for _, id := range grid.Levels {
		view.Levels = append(view.Levels, levelsByID[id])
	}
	for _, category := range grid.Categories {
		group := primary.MatrixCategory{Name: category.Name}
		for _, sub := range category.SubCategories {
			group.SubCategories = append(group.SubCategories, primary.MatrixSubCategory{
				Name:  sub.Name,
				Cells: sub.Cells,
			})
		}
		view.Categories = append(view.Categories, group)
	}

	return view, nil
}

// SearchCapabilities returns flat filtered results for incremental search.
func (s *MatrixServiceImpl) SearchCapabilities(ctx context.Context, query string, filters *primary.SearchFilters) ([]*primary.Capability, error) {
	capabilities, err := s.capabilityRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	criteria, err := s.criterionRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	matrixFilters := &primary.MatrixFilters{Search: query}
	if filters != nil {
		matrixFilters.Levels = filters.Levels
		matrixFilters.Categories = filters.Categories
		matrixFilters.SubCategories = filters.SubCategories
	}

	return filterCapabilities(recordsToCapabilities(capabilities), criterionRecordsToDTOs(criteria), matrixFilters), nil
}

// GetJobLevels retrieves every job level.
func (s *MatrixServiceImpl) GetJobLevels(ctx context.Context) ([]*primary.JobLevel, error) {
	records, err := s.jobLevelRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return jobLevelRecordsToDTOs(records), nil
}

// GetCriteria retrieves every criterion.
func (s *MatrixServiceImpl) GetCriteria(ctx context.Context) ([]*primary.Criterion, error) {
	records, err := s.criterionRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return criterionRecordsToDTOs(records), nil
}

// GetEditHistory retrieves the edit log, newest first.
func (s *MatrixServiceImpl) GetEditHistory(ctx context.Context) ([]*primary.EditHistoryEntry, error) {
	records, err := s.historyRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return historyRecordsToDTOs(records), nil
}

// GetOverview retrieves the overview goals and principles, each sorted by
// display rank.
func (s *MatrixServiceImpl) GetOverview(ctx context.Context) (*primary.Overview, error) {
	records, err := s.overviewRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return overviewRecordsToDTO(records), nil
}

// snapshot fetches every collection in full from the primary store.
func (s *MatrixServiceImpl) snapshot(ctx context.Context) (*primary.MatrixData, error) {
	jobLevels, err := s.jobLevelRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	criteria, err := s.criterionRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	capabilities, err := s.capabilityRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	history, err := s.historyRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	overview, err := s.overviewRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	return &primary.MatrixData{
		JobLevels:    jobLevelRecordsToDTOs(jobLevels),
		Criteria:     criterionRecordsToDTOs(criteria),
		Capabilities: recordsToCapabilities(capabilities),
		EditHistory:  historyRecordsToDTOs(history),
		Overview:     *overviewRecordsToDTO(overview),
	}, nil
}

// sortHistoryNewestFirst sorts an edit log newest first, matching the
// store's date DESC, created_at DESC read order.
func sortHistoryNewestFirst(entries []*primary.EditHistoryEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].Date != entries[j].Date {
			return entries[i].Date > entries[j].Date
		}
		return entries[i].CreatedAt > entries[j].CreatedAt
	})
}

// filterCapabilities runs the functional-core filter over DTO collections.
func filterCapabilities(capabilities []*primary.Capability, criteria []*primary.Criterion, filters *primary.MatrixFilters) []*primary.Capability {
	if filters == nil {
		return capabilities
	}

	filtered := matrix.FilterCapabilities(
		toCoreCapabilities(capabilities),
		toCoreCriteria(criteria),
		matrix.Filters{
			Levels:        filters.Levels,
			Categories:    filters.Categories,
			SubCategories: filters.SubCategories,
			Search:        filters.Search,
		},
	)

	byID := make(map[int64]*primary.Capability, len(capabilities))
	for _, c := range capabilities {
		byID[c.ID] = c
	}
	out := make([]*primary.Capability, 0, len(filtered))
	for _, c := range filtered {
		out = append(out, byID[c.ID])
	}
	return out
}

// Ensure MatrixServiceImpl implements the interface
var _ primary.MatrixService = (*MatrixServiceImpl)(nil)

package app

import (
	"github.com/example/ladder/internal/core/matrix"
	"github.com/example/ladder/internal/ports/primary"
	"github.com/example/ladder/internal/ports/secondary"
)

// Conversion helpers between persistence records, primary-port DTOs and
// the functional core's value types.

func jobLevelRecordToDTO(r *secondary.JobLevelRecord) *primary.JobLevel {
	return &primary.JobLevel{
		ID:                 r.ID,
		Name:               r.Name,
		PrimaryTitle:       r.PrimaryTitle,
		DescriptionSummary: r.DescriptionSummary,
		TrajectoryNote:     r.TrajectoryNote,
		CreatedAt:          r.CreatedAt,
	}
}

func jobLevelRecordsToDTOs(records []*secondary.JobLevelRecord) []*primary.JobLevel {
	levels := make([]*primary.JobLevel, len(records))
	for i, r := range records {
		levels[i] = jobLevelRecordToDTO(r)
	}
	return levels
}

func criterionRecordToDTO(r *secondary.CriterionRecord) *primary.Criterion {
	return &primary.Criterion{
		ID:          r.ID,
		Category:    r.Category,
		SubCategory: r.SubCategory,
		CreatedAt:   r.CreatedAt,
	}
}

func criterionRecordsToDTOs(records []*secondary.CriterionRecord) []*primary.Criterion {
	criteria := make([]*primary.Criterion, len(records))
	for i, r := range records {
		criteria[i] = criterionRecordToDTO(r)
	}
	return criteria
}

func capabilityRecordToDTO(r *secondary.CapabilityRecord) *primary.Capability {
	return &primary.Capability{
		ID:          r.ID,
		JobLevelID:  r.JobLevelID,
		CriterionID: r.CriterionID,
		Description: r.Description,
		CreatedAt:   r.CreatedAt,
	}
}

func recordsToCapabilities(records []*secondary.CapabilityRecord) []*primary.Capability {
	capabilities := make([]*primary.Capability, len(records))
	for i, r := range records {
		capabilities[i] = capabilityRecordToDTO(r)
	}
	return capabilities
}

func historyRecordsToDTOs(records []*secondary.EditHistoryRecord) []*primary.EditHistoryEntry {
	entries := make([]*primary.EditHistoryEntry, len(records))
	for i, r := range records {
		entries[i] = &primary.EditHistoryEntry{
			ID:          r.ID,
			Date:        r.Date,
			Description: r.Description,
			CreatedAt:   r.CreatedAt,
		}
	}
	return entries
}

// overviewRecordsToDTO groups sorted overview rows by type. The input is
// already sorted by display rank, so appending preserves it.
func overviewRecordsToDTO(records []*secondary.OverviewRecord) *primary.Overview {
	overview := &primary.Overview{}
	for _, r := range records {
		switch r.Type {
		case secondary.OverviewTypeGoal:
			overview.Goals = append(overview.Goals, r.Content)
		case secondary.OverviewTypePrinciple:
			overview.Principles = append(overview.Principles, r.Content)
		}
	}
	return overview
}

func toCoreCapabilities(capabilities []*primary.Capability) []matrix.Capability {
	out := make([]matrix.Capability, len(capabilities))
	for i, c := range capabilities {
		out[i] = matrix.Capability{
			ID:          c.ID,
			JobLevelID:  c.JobLevelID,
			CriterionID: c.CriterionID,
			Description: c.Description,
		}
	}
	return out
}

func toCoreCriteria(criteria []*primary.Criterion) []matrix.Criterion {
	out := make([]matrix.Criterion, len(criteria))
	for i, c := range criteria {
		out[i] = matrix.Criterion{
			ID:          c.ID,
			Category:    c.Category,
			SubCategory: c.SubCategory,
		}
	}
	return out
}

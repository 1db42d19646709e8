package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/example/ladder/internal/ports/primary"
)

// AdminAdapter is a thin adapter that translates CLI write operations to
// AdminService calls.
type AdminAdapter struct {
	service primary.AdminService
	out     io.Writer
}

// NewAdminAdapter creates a new AdminAdapter with the given service.
func NewAdminAdapter(service primary.AdminService, out io.Writer) *AdminAdapter {
	return &AdminAdapter{
		service: service,
		out:     out,
	}
}

// AddJobLevel creates a new job level.
func (a *AdminAdapter) AddJobLevel(ctx context.Context, req primary.CreateJobLevelRequest) error {
	level, err := a.service.CreateJobLevel(ctx, req)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "✓ Created job level %s: %s\n", level.ID, level.Name)
	return nil
}

// AddCriterion creates a new criterion.
func (a *AdminAdapter) AddCriterion(ctx context.Context, req primary.CreateCriterionRequest) error {
	criterion, err := a.service.CreateCriterion(ctx, req)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "✓ Created criterion %s (%s / %s)\n", criterion.ID, criterion.Category, criterion.SubCategory)
	return nil
}

// AddCapability creates a new capability cell.
func (a *AdminAdapter) AddCapability(ctx context.Context, req primary.CreateCapabilityRequest) error {
	capability, err := a.service.CreateCapability(ctx, req)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "✓ Created capability #%d for %s / %s\n", capability.ID, capability.JobLevelID, capability.CriterionID)
	return nil
}

// AddHistoryEntry appends an entry to the edit log.
func (a *AdminAdapter) AddHistoryEntry(ctx context.Context, req primary.CreateEditHistoryEntryRequest) error {
	entry, err := a.service.CreateEditHistoryEntry(ctx, req)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "✓ Recorded edit on %s\n", entry.Date)
	return nil
}

// AddOverviewContent creates a new overview goal or principle.
func (a *AdminAdapter) AddOverviewContent(ctx context.Context, req primary.CreateOverviewContentRequest) error {
	content, err := a.service.CreateOverviewContent(ctx, req)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "✓ Added %s #%d\n", content.Type, content.Order)
	return nil
}

// Package cli provides thin CLI adapters that translate between CLI concerns
// and application services. Adapters handle argument parsing, output formatting,
// but delegate business logic to services.
package cli

import (
	"context"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"

	"github.com/example/ladder/internal/ports/primary"
)

// MatrixAdapter is a thin adapter that translates CLI operations to
// MatrixService calls. It depends only on the MatrixService interface,
// enabling easy testing with mocks.
type MatrixAdapter struct {
	service primary.MatrixService
	out     io.Writer
}

// NewMatrixAdapter creates a new MatrixAdapter with the given service.
func NewMatrixAdapter(service primary.MatrixService, out io.Writer) *MatrixAdapter {
	return &MatrixAdapter{
		service: service,
		out:     out,
	}
}

// cellWidth caps grid cell text so a full matrix stays readable in a
// terminal. Full descriptions are available through search.
const cellWidth = 40

// ShowMatrix renders the assembled grid for the given filters.
func (a *MatrixAdapter) ShowMatrix(ctx context.Context, filters *primary.MatrixFilters) error {
	view, err := a.service.GetMatrixView(ctx, filters)
	if err != nil {
		return fmt.Errorf("failed to load matrix: %w", err)
	}

	if len(view.Categories) == 0 {
		fmt.Fprintln(a.out, "No capabilities match the given filters")
		return nil
	}

	w := tabwriter.NewWriter(a.out, 2, 4, 2, ' ', 0)

	fmt.Fprint(w, "CATEGORY\tSUB-CATEGORY")
	for _, level := range view.Levels {
		fmt.Fprintf(w, "\t%s", level.Name)
	}
	fmt.Fprintln(w)

	categoryColor := color.New(color.FgCyan, color.Bold)
	for _, category := range view.Categories {
		for i, sub := range category.SubCategories {
			name := ""
			if i == 0 {
				name = categoryColor.Sprint(category.Name)
			}
			fmt.Fprintf(w, "%s\t%s", name, sub.Name)
			for _, level := range view.Levels {
				fmt.Fprintf(w, "\t%s", truncate(sub.Cells[level.ID], cellWidth))
			}
			fmt.Fprintln(w)
		}
	}

	return w.Flush()
}

// Search prints flat filtered capability results.
func (a *MatrixAdapter) Search(ctx context.Context, query string, filters *primary.SearchFilters) error {
	results, err := a.service.SearchCapabilities(ctx, query, filters)
	if err != nil {
		return fmt.Errorf("failed to search capabilities: %w", err)
	}

	if len(results) == 0 {
		fmt.Fprintln(a.out, "No capabilities found")
		return nil
	}

	fmt.Fprintf(a.out, "\n%-10s %-28s %s\n", "LEVEL", "CRITERION", "DESCRIPTION")
	fmt.Fprintln(a.out, strings.Repeat("─", 72))
	for _, c := range results {
		fmt.Fprintf(a.out, "%-10s %-28s %s\n", c.JobLevelID, c.CriterionID, c.Description)
	}
	fmt.Fprintln(a.out)

	return nil
}

// ListLevels prints every job level.
func (a *MatrixAdapter) ListLevels(ctx context.Context) error {
	levels, err := a.service.GetJobLevels(ctx)
	if err != nil {
		return fmt.Errorf("failed to list job levels: %w", err)
	}

	if len(levels) == 0 {
		fmt.Fprintln(a.out, "No job levels found")
		return nil
	}

	fmt.Fprintf(a.out, "\n%-10s %-12s %-26s %s\n", "ID", "NAME", "TITLE", "SUMMARY")
	fmt.Fprintln(a.out, strings.Repeat("─", 84))
	for _, l := range levels {
		fmt.Fprintf(a.out, "%-10s %-12s %-26s %s\n", l.ID, l.Name, l.PrimaryTitle, l.DescriptionSummary)
		if l.TrajectoryNote != "" {
			fmt.Fprintf(a.out, "%-10s %-12s %-26s note: %s\n", "", "", "", l.TrajectoryNote)
		}
	}
	fmt.Fprintln(a.out)

	return nil
}

// ListCriteria prints every criterion grouped under its category.
func (a *MatrixAdapter) ListCriteria(ctx context.Context) error {
	criteria, err := a.service.GetCriteria(ctx)
	if err != nil {
		return fmt.Errorf("failed to list criteria: %w", err)
	}

	if len(criteria) == 0 {
		fmt.Fprintln(a.out, "No criteria found")
		return nil
	}

	categoryColor := color.New(color.FgCyan, color.Bold)
	lastCategory := ""
	for _, c := range criteria {
		if c.Category != lastCategory {
			fmt.Fprintf(a.out, "\n%s\n", categoryColor.Sprint(c.Category))
			lastCategory = c.Category
		}
		fmt.Fprintf(a.out, "  %-26s %s\n", c.ID, c.SubCategory)
	}
	fmt.Fprintln(a.out)

	return nil
}

// ShowHistory prints the edit log, newest first.
func (a *MatrixAdapter) ShowHistory(ctx context.Context) error {
	entries, err := a.service.GetEditHistory(ctx)
	if err != nil {
		return fmt.Errorf("failed to load edit history: %w", err)
	}

	if len(entries) == 0 {
		fmt.Fprintln(a.out, "No edit history")
		return nil
	}

	for _, e := range entries {
		fmt.Fprintf(a.out, "%s  %s\n", e.Date, e.Description)
	}

	return nil
}

// ShowOverview prints the matrix goals and principles.
func (a *MatrixAdapter) ShowOverview(ctx context.Context) error {
	overview, err := a.service.GetOverview(ctx)
	if err != nil {
		return fmt.Errorf("failed to load overview: %w", err)
	}

	heading := color.New(color.Bold)
	fmt.Fprintf(a.out, "%s\n", heading.Sprint("Goals"))
	for i, goal := range overview.Goals {
		fmt.Fprintf(a.out, "  %d. %s\n", i+1, goal)
	}
	fmt.Fprintf(a.out, "\n%s\n", heading.Sprint("Principles"))
	for i, principle := range overview.Principles {
		fmt.Fprintf(a.out, "  %d. %s\n", i+1, principle)
	}

	return nil
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-1]) + "…"
}

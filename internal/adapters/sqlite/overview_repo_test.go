package sqlite_test

import (
	"context"
	"testing"

	"github.com/example/ladder/internal/adapters/sqlite"
	"github.com/example/ladder/internal/ports/secondary"
)

func TestOverviewRepository_ListAllSortedByDisplayOrder(t *testing.T) {
	db := setupTestDB(t)
	repo := sqlite.NewOverviewRepository(db)
	ctx := context.Background()

	for _, row := range []struct {
		typ     string
		content string
		order   int
	}{
		{secondary.OverviewTypeGoal, "B", 2},
		{secondary.OverviewTypeGoal, "A", 1},
		{secondary.OverviewTypePrinciple, "P", 3},
	} {
		err := repo.Create(ctx, &secondary.OverviewRecord{
			Type:    row.typ,
			Content: row.content,
			Order:   row.order,
		})
		if err != nil {
			t.Fatalf("Create failed: %v", err)
		}
	}

	contents, err := repo.ListAll(ctx)
	if err != nil {
		t.Fatalf("ListAll failed: %v", err)
	}
	if len(contents) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(contents))
	}
	if contents[0].Content != "A" || contents[1].Content != "B" || contents[2].Content != "P" {
		t.Errorf("unexpected order: %+v", contents)
	}
}

func TestOverviewRepository_TiedOrderIsStable(t *testing.T) {
	db := setupTestDB(t)
	repo := sqlite.NewOverviewRepository(db)
	ctx := context.Background()

	for _, content := range []string{"first", "second"} {
		err := repo.Create(ctx, &secondary.OverviewRecord{
			Type:    secondary.OverviewTypeGoal,
			Content: content,
			Order:   1,
		})
		if err != nil {
			t.Fatalf("Create failed: %v", err)
		}
	}

	// Ties in display order fall back to insertion id: deterministic per call.
	contents, err := repo.ListAll(ctx)
	if err != nil {
		t.Fatalf("ListAll failed: %v", err)
	}
	if contents[0].Content != "first" || contents[1].Content != "second" {
		t.Errorf("unexpected tie order: %+v", contents)
	}
}

package matrix

import "sort"

// Grid is the assembled display structure: category -> sub-category ->
// job level id -> description. Categories appear in first-seen order of
// the capability set; sub-categories are sorted lexicographically.
// Groups with no surviving capability are pruned, not shown as empty rows.
type Grid struct {
	// Levels is the visible column set: the level ids named by the levels
	// predicate (all known levels when unrestricted), in collection order.
	// A column may be visible even when no row has data for it.
	Levels []string

	Categories []CategoryGroup
}

// CategoryGroup is one category of the grid.
type CategoryGroup struct {
	Name          string
	SubCategories []SubCategoryGroup
}

// SubCategoryGroup is one sub-category row. A job level id absent from
// Cells means no description is available, not an error.
type SubCategoryGroup struct {
	Name  string
	Cells map[string]string
}

// AssembleGrid reshapes a filtered capability set into the nested display
// grid. levelIDs is the full known level collection in display order;
// levelsPredicate is the levels filter that produced the set (nil when
// unrestricted). Duplicate (level, criterion) pairs are tolerated: the
// last one wins in the cell.
func AssembleGrid(filtered []Capability, criteria []Criterion, levelIDs []string, levelsPredicate []string) Grid {
	grid := Grid{Levels: visibleLevels(levelIDs, levelsPredicate)}

	byID := indexCriteria(criteria)
	cells := make(map[string]map[string]map[string]string)
	var categoryOrder []string

	for _, c := range filtered {
		crit, ok := byID[c.CriterionID]
		if !ok {
			continue
		}

		if _, seen := cells[crit.Category]; !seen {
			cells[crit.Category] = make(map[string]map[string]string)
			categoryOrder = append(categoryOrder, crit.Category)
		}
		if _, seen := cells[crit.Category][crit.SubCategory]; !seen {
			cells[crit.Category][crit.SubCategory] = make(map[string]string)
		}
		cells[crit.Category][crit.SubCategory][c.JobLevelID] = c.Description
	}

	for _, category := range categoryOrder {
		group := CategoryGroup{Name: category}

		subNames := make([]string, 0, len(cells[category]))
		for sub := range cells[category] {
			subNames = append(subNames, sub)
		}
		sort.Strings(subNames)

		for _, sub := range subNames {
			group.SubCategories = append(group.SubCategories, SubCategoryGroup{
				Name:  sub,
				Cells: cells[category][sub],
			})
		}
		grid.Categories = append(grid.Categories, group)
	}

	return grid
}

// visibleLevels returns the level ids named by the predicate, restricted
// to known levels and preserving collection order. An empty predicate
// means every level is visible.
func visibleLevels(levelIDs, levelsPredicate []string) []string {
	if len(levelsPredicate) == 0 {
		return levelIDs
	}
	var visible []string
	for _, id := range levelIDs {
		if containsString(levelsPredicate, id) {
			visible = append(visible, id)
		}
	}
	return visible
}

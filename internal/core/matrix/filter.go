// Package matrix contains the pure business logic for matrix queries:
// capability filtering, grid assembly and cross-reference resolution.
// This is part of the Functional Core - no I/O, only pure functions.
package matrix

import "strings"

// Capability is the core view of a capability row.
type Capability struct {
	ID          int64
	JobLevelID  string
	CriterionID string
	Description string
}

// Criterion is the core view of a criterion row.
type Criterion struct {
	ID          string
	Category    string
	SubCategory string
}

// Filters is a filter specification with four independent, optional
// predicates. A nil or empty predicate means no restriction from that
// predicate. Predicates combine with AND; values within a predicate
// combine with OR (set membership).
type Filters struct {
	Levels        []string
	Categories    []string
	SubCategories []string
	Search        string
}

// SearchTerm returns the normalized search predicate: trimmed and
// lower-cased. An empty or all-whitespace search is absent.
func (f Filters) SearchTerm() string {
	return strings.ToLower(strings.TrimSpace(f.Search))
}

// FilterCapabilities returns the subset of capabilities satisfying every
// supplied predicate. Category and sub-category predicates resolve each
// capability's criterion; a capability whose criterion is unknown is
// excluded by those predicates rather than causing an error.
func FilterCapabilities(capabilities []Capability, criteria []Criterion, f Filters) []Capability {
	byID := indexCriteria(criteria)
	search := f.SearchTerm()

	var out []Capability
	for _, c := range capabilities {
		if len(f.Levels) > 0 && !containsString(f.Levels, c.JobLevelID) {
			continue
		}

		if len(f.Categories) > 0 || len(f.SubCategories) > 0 {
			crit, ok := byID[c.CriterionID]
			if !ok {
				// Dangling criterion reference: should not occur given
				// referential integrity, but must not panic.
				continue
			}
			if len(f.Categories) > 0 && !containsString(f.Categories, crit.Category) {
				continue
			}
			if len(f.SubCategories) > 0 && !containsString(f.SubCategories, crit.SubCategory) {
				continue
			}
		}

		if search != "" && !strings.Contains(strings.ToLower(c.Description), search) {
			continue
		}

		out = append(out, c)
	}
	return out
}

func indexCriteria(criteria []Criterion) map[string]Criterion {
	byID := make(map[string]Criterion, len(criteria))
	for _, crit := range criteria {
		byID[crit.ID] = crit
	}
	return byID
}

func containsString(values []string, v string) bool {
	for _, s := range values {
		if s == v {
			return true
		}
	}
	return false
}

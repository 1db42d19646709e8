// Package persistence contains non-database secondary adapters: static
// data providers backing the query layer when the store is unavailable.
package persistence

import (
	"context"

	"github.com/example/ladder/internal/core/matrix"
	"github.com/example/ladder/internal/ports/primary"
)

// StaticFallbackProvider serves the embedded demo dataset. The matrix
// service consults it only after a store read has already failed, so the
// CLI stays usable on a fresh machine with no database.
type StaticFallbackProvider struct{}

// NewStaticFallbackProvider creates a new StaticFallbackProvider.
func NewStaticFallbackProvider() *StaticFallbackProvider {
	return &StaticFallbackProvider{}
}

// MatrixData returns a copy of the embedded dataset with capability
// cross-references expanded, so fallback-served text matches what a seeded
// store would hold. Callers may filter the returned slices in place.
func (p *StaticFallbackProvider) MatrixData(ctx context.Context) (*primary.MatrixData, error) {
	data := DemoData()

	capabilities := make([]matrix.Capability, len(data.Capabilities))
	for i, c := range data.Capabilities {
		capabilities[i] = matrix.Capability{
			JobLevelID:  c.JobLevelID,
			CriterionID: c.CriterionID,
			Description: c.Description,
		}
	}
	resolved, _ := matrix.ResolveReferences(capabilities)
	for i, c := range resolved {
		data.Capabilities[i].Description = c.Description
	}

	return data, nil
}

// Ensure StaticFallbackProvider implements the interface
var _ primary.FallbackProvider = (*StaticFallbackProvider)(nil)

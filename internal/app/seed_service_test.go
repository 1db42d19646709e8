package app

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/ladder/internal/ports/primary"
	"github.com/example/ladder/internal/ports/secondary"
)

func seedPayload() *primary.MatrixData {
	return &primary.MatrixData{
		JobLevels: []*primary.JobLevel{
			{ID: "l3", Name: "L3", PrimaryTitle: "Engineer"},
			{ID: "l4", Name: "L4", PrimaryTitle: "Senior Engineer"},
		},
		Criteria: []*primary.Criterion{
			{ID: "craft-quality", Category: "Craft", SubCategory: "Quality"},
		},
		Capabilities: []*primary.Capability{
			{JobLevelID: "l3", CriterionID: "craft-quality", Description: "Tests thoroughly"},
			{JobLevelID: "l4", CriterionID: "craft-quality", Description: "As L3, plus raises the bar for the team"},
		},
		EditHistory: []*primary.EditHistoryEntry{
			{Date: "2024-01-15", Description: "Initial version"},
		},
		Overview: primary.Overview{
			Goals:      []string{"Clear growth paths", "Fair evaluation"},
			Principles: []string{"Trust by default"},
		},
	}
}

func TestSeed_DependencyOrder(t *testing.T) {
	store := newMockStore()
	_, _, svc := newTestServices(store, nil)

	require.NoError(t, svc.Seed(context.Background(), seedPayload()))

	assert.Equal(t, []string{
		"job_level:l3",
		"job_level:l4",
		"criterion:craft-quality",
		"capability:l3/craft-quality",
		"capability:l4/craft-quality",
		"history:2024-01-15",
		"overview:goal:1",
		"overview:goal:2",
		"overview:principle:3",
	}, store.insertLog)
}

func TestSeed_ResolvesReferencesAtLoadTime(t *testing.T) {
	store := newMockStore()
	_, _, svc := newTestServices(store, nil)

	require.NoError(t, svc.Seed(context.Background(), seedPayload()))

	require.Len(t, store.capabilities, 2)
	assert.Equal(t, "Tests thoroughly", store.capabilities[0].Description)
	assert.Equal(t, "Tests thoroughly, plus raises the bar for the team", store.capabilities[1].Description)
}

func TestSeed_UnresolvableReferenceKeptLiteral(t *testing.T) {
	store := newMockStore()
	_, _, svc := newTestServices(store, nil)

	payload := seedPayload()
	payload.Capabilities = append(payload.Capabilities, &primary.Capability{
		JobLevelID:  "l4",
		CriterionID: "craft-quality",
		Description: "As L7 but part time",
	})

	require.NoError(t, svc.Seed(context.Background(), payload))

	require.Len(t, store.capabilities, 3)
	assert.Equal(t, "As L7 but part time", store.capabilities[2].Description)
}

func TestSeed_OverviewDisplayOrderContinues(t *testing.T) {
	store := newMockStore()
	_, _, svc := newTestServices(store, nil)

	require.NoError(t, svc.Seed(context.Background(), seedPayload()))

	require.Len(t, store.overview, 3)
	assert.Equal(t, secondary.OverviewTypeGoal, store.overview[0].Type)
	assert.Equal(t, 1, store.overview[0].Order)
	assert.Equal(t, 2, store.overview[1].Order)
	assert.Equal(t, secondary.OverviewTypePrinciple, store.overview[2].Type)
	assert.Equal(t, 3, store.overview[2].Order)
}

func TestSeed_DuplicateJobLevelAborts(t *testing.T) {
	store := newMockStore()
	seedStore(store)
	_, _, svc := newTestServices(store, nil)

	err := svc.Seed(context.Background(), seedPayload())
	require.Error(t, err)
	assert.ErrorIs(t, err, secondary.ErrDuplicateID)
}

func TestSeed_RoundTripThroughMatrixService(t *testing.T) {
	store := newMockStore()
	matrixSvc, _, seedSvc := newTestServices(store, nil)

	require.NoError(t, seedSvc.Seed(context.Background(), seedPayload()))

	data, err := matrixSvc.GetMatrixData(context.Background(), nil)
	require.NoError(t, err)
	assert.Len(t, data.JobLevels, 2)
	assert.Len(t, data.Capabilities, 2)
	assert.Equal(t, []string{"Clear growth paths", "Fair evaluation"}, data.Overview.Goals)
}

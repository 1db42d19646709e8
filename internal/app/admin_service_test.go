package app

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/ladder/internal/ports/primary"
	"github.com/example/ladder/internal/ports/secondary"
)

func TestCreateJobLevel(t *testing.T) {
	store := newMockStore()
	_, svc, _ := newTestServices(store, nil)

	level, err := svc.CreateJobLevel(context.Background(), primary.CreateJobLevelRequest{
		ID:                 "l4",
		Name:               "L4",
		PrimaryTitle:       "Senior Engineer",
		DescriptionSummary: "Owns complex projects",
	})
	require.NoError(t, err)
	assert.Equal(t, "l4", level.ID)
	assert.Equal(t, "Senior Engineer", level.PrimaryTitle)
}

func TestCreateJobLevel_DuplicateID(t *testing.T) {
	store := newMockStore()
	seedStore(store)
	_, svc, _ := newTestServices(store, nil)

	_, err := svc.CreateJobLevel(context.Background(), primary.CreateJobLevelRequest{
		ID:   "l3",
		Name: "L3 again",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, secondary.ErrDuplicateID)

	// The rejected write must not have touched the store.
	assert.Len(t, store.jobLevels, 3)
}

func TestCreateCriterion_DuplicateID(t *testing.T) {
	store := newMockStore()
	seedStore(store)
	_, svc, _ := newTestServices(store, nil)

	_, err := svc.CreateCriterion(context.Background(), primary.CreateCriterionRequest{
		ID:          "craft-quality",
		Category:    "Craft",
		SubCategory: "Quality",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, secondary.ErrDuplicateID)
	assert.Len(t, store.criteria, 3)
}

func TestCreateCapability(t *testing.T) {
	store := newMockStore()
	seedStore(store)
	_, svc, _ := newTestServices(store, nil)

	capability, err := svc.CreateCapability(context.Background(), primary.CreateCapabilityRequest{
		JobLevelID:  "l3",
		CriterionID: "impact-scope",
		Description: "Owns a project end to end",
	})
	require.NoError(t, err)
	assert.NotZero(t, capability.ID)
	assert.Equal(t, "l3", capability.JobLevelID)
}

func TestCreateCapability_UnknownJobLevel(t *testing.T) {
	store := newMockStore()
	seedStore(store)
	_, svc, _ := newTestServices(store, nil)

	_, err := svc.CreateCapability(context.Background(), primary.CreateCapabilityRequest{
		JobLevelID:  "l9",
		CriterionID: "craft-quality",
		Description: "whatever",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, secondary.ErrNotFound)
	assert.Contains(t, err.Error(), "l9")
	assert.Len(t, store.capabilities, 5)
}

func TestCreateCapability_UnknownCriterion(t *testing.T) {
	store := newMockStore()
	seedStore(store)
	_, svc, _ := newTestServices(store, nil)

	_, err := svc.CreateCapability(context.Background(), primary.CreateCapabilityRequest{
		JobLevelID:  "l3",
		CriterionID: "nope",
		Description: "whatever",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, secondary.ErrNotFound)
	assert.Contains(t, err.Error(), "nope")
	assert.Len(t, store.capabilities, 5)
}

func TestCreateCapability_DuplicatePairAllowed(t *testing.T) {
	store := newMockStore()
	seedStore(store)
	_, svc, _ := newTestServices(store, nil)

	capability, err := svc.CreateCapability(context.Background(), primary.CreateCapabilityRequest{
		JobLevelID:  "l3",
		CriterionID: "craft-quality",
		Description: "Also pairs on reviews",
	})
	require.NoError(t, err)
	assert.NotZero(t, capability.ID)
	assert.Len(t, store.capabilities, 6)
}

func TestCreateEditHistoryEntry(t *testing.T) {
	store := newMockStore()
	_, svc, _ := newTestServices(store, nil)

	entry, err := svc.CreateEditHistoryEntry(context.Background(), primary.CreateEditHistoryEntryRequest{
		Date:        "2024-06-01",
		Description: "Reworked Impact column",
	})
	require.NoError(t, err)
	assert.NotZero(t, entry.ID)
	assert.Equal(t, "2024-06-01", entry.Date)
}

func TestCreateOverviewContent_InvalidType(t *testing.T) {
	store := newMockStore()
	_, svc, _ := newTestServices(store, nil)

	_, err := svc.CreateOverviewContent(context.Background(), primary.CreateOverviewContentRequest{
		Type:    "slogan",
		Content: "just ship it",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid overview content type")
	assert.Empty(t, store.overview)
}

func TestCreateOverviewContent(t *testing.T) {
	store := newMockStore()
	_, svc, _ := newTestServices(store, nil)

	content, err := svc.CreateOverviewContent(context.Background(), primary.CreateOverviewContentRequest{
		Type:    secondary.OverviewTypePrinciple,
		Content: "Default to transparency",
		Order:   1,
	})
	require.NoError(t, err)
	assert.NotZero(t, content.ID)
	assert.Equal(t, secondary.OverviewTypePrinciple, content.Type)
}

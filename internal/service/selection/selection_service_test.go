package selection

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sustainage/sdg-engine/internal/domain"
	"github.com/sustainage/sdg-engine/internal/pkg/store/storetest"
)

func TestSetAndGetSelections(t *testing.T) {
	svc := NewService(storetest.New())
	ctx := context.Background()

	require.NoError(t, svc.SetSelections(ctx, "acme", []domain.GoalNo{13, 7, 13, 3}))

	goals, err := svc.GetSelections(ctx, "acme")
	require.NoError(t, err)
	assert.Equal(t, []domain.GoalNo{3, 7, 13}, goals)

	// Replacement, not merge.
	require.NoError(t, svc.SetSelections(ctx, "acme", []domain.GoalNo{5}))
	goals, err = svc.GetSelections(ctx, "acme")
	require.NoError(t, err)
	assert.Equal(t, []domain.GoalNo{5}, goals)

	// Empty set clears everything.
	require.NoError(t, svc.SetSelections(ctx, "acme", nil))
	goals, err = svc.GetSelections(ctx, "acme")
	require.NoError(t, err)
	assert.Empty(t, goals)
}

func TestSelectionsAreTenantScoped(t *testing.T) {
	svc := NewService(storetest.New())
	ctx := context.Background()

	require.NoError(t, svc.SetSelections(ctx, "acme", []domain.GoalNo{13}))
	require.NoError(t, svc.SetSelections(ctx, "globex", []domain.GoalNo{7}))

	goals, err := svc.GetSelections(ctx, "acme")
	require.NoError(t, err)
	assert.Equal(t, []domain.GoalNo{13}, goals)

	goals, err = svc.GetSelections(ctx, "globex")
	require.NoError(t, err)
	assert.Equal(t, []domain.GoalNo{7}, goals)
}

// Goal numbers outside the current taxonomy are stored as given; selections
// are a tracking hint, not validated against the snapshot.
func TestSelectionsAcceptUnknownGoals(t *testing.T) {
	svc := NewService(storetest.New())
	ctx := context.Background()

	require.NoError(t, svc.SetSelections(ctx, "acme", []domain.GoalNo{99}))

	goals, err := svc.GetSelections(ctx, "acme")
	require.NoError(t, err)
	assert.Equal(t, []domain.GoalNo{99}, goals)
}

func TestDedupe(t *testing.T) {
	assert.Equal(t, []domain.GoalNo{13, 7, 3}, dedupe([]domain.GoalNo{13, 7, 13, 3, 7}))
	assert.Empty(t, dedupe(nil))
}

package taxonomy

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sustainage/sdg-engine/internal/pkg/store/storetest"
)

const csvBank = "goal_no,goal_title,target_code,indicator_code,indicator_title,question_1\n" +
	"13,Climate Action,13.2,13.2.1,Countries with NDCs,Is a reduction plan in place?\n" +
	"7,Affordable and Clean Energy,7.1,7.1.1,Electricity access,Is renewable share reported?\n"

func TestIngest(t *testing.T) {
	st := storetest.New()
	svc := NewService(st)
	path := writeTemp(t, "bank.csv", csvBank)

	require.NoError(t, svc.Ingest(context.Background(), path, ""))

	idx := svc.Index()
	require.False(t, idx.Empty())
	assert.NotEmpty(t, idx.Snapshot())
	require.Len(t, idx.Goals(), 2)

	indicator, ok := idx.IndicatorByCode("13.2.1")
	require.True(t, ok)
	assert.Len(t, indicator.Questions, 1)

	goals, err := svc.ListGoals(context.Background())
	require.NoError(t, err)
	require.Len(t, goals, 2)
	assert.Equal(t, 7, goals[0].Code)
}

func TestIngestFailureKeepsPublishedIndex(t *testing.T) {
	st := storetest.New()
	svc := NewService(st)

	good := writeTemp(t, "good.csv", csvBank)
	require.NoError(t, svc.Ingest(context.Background(), good, ""))
	published := svc.Index()

	// Missing every required column.
	bad := writeTemp(t, "bad.csv", "irrelevant,columns\na,b\n")
	require.Error(t, svc.Ingest(context.Background(), bad, ""))
	assert.Same(t, published, svc.Index())

	missing := writeTemp(t, "gone.csv", csvBank) + ".nope"
	require.Error(t, svc.Ingest(context.Background(), missing, ""))
	assert.Same(t, published, svc.Index())
}

func TestIngestSnapshotChangesPerLoad(t *testing.T) {
	svc := NewService(storetest.New())
	path := writeTemp(t, "bank.csv", csvBank)

	require.NoError(t, svc.Ingest(context.Background(), path, ""))
	first := svc.Index().Snapshot()

	require.NoError(t, svc.Ingest(context.Background(), path, ""))
	assert.NotEqual(t, first, svc.Index().Snapshot())
}

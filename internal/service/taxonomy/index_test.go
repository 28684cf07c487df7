package taxonomy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sustainage/sdg-engine/internal/domain/dto"
)

func bankRows() []dto.Row {
	return []dto.Row{
		{
			ColGoalNo: "13", ColGoalTitle: "Climate Action",
			ColTargetCode: "13.2", ColTargetTitle: "Integrate climate measures",
			ColIndicatorCode: "13.2.1", ColIndicatorTitle: "Countries with NDCs",
			ColQuestion1: "Is a reduction plan in place?",
			ColQuestion2: "Is progress tracked?",
			ColQuestion3: "Is the plan reviewed yearly?",
			ColGRICodes:  "GRI 305", ColTSRSCodes: "TSRS E1",
			ColResponsibleUnit: "Sustainability Office", ColDataSource: "Annual report",
		},
		{
			ColGoalNo: "13", ColGoalTitle: "Climate Action",
			ColTargetCode: "13.2", ColTargetTitle: "Integrate climate measures",
			ColIndicatorCode: "13.2.2", ColIndicatorTitle: "GHG emissions per year",
			ColQuestion1: "Are scope 1 emissions measured?",
			ColGRICodes:  "GRI 305-1",
		},
		{
			ColGoalNo: "7", ColGoalTitle: "Affordable and Clean Energy",
			ColTargetCode: "7.1", ColTargetTitle: "Universal energy access",
			ColIndicatorCode: "7.1.1", ColIndicatorTitle: "Population with electricity access",
			ColQuestion1: "Is renewable share reported?",
			ColQuestion2: "   ", // blank after trimming, must not materialize
		},
	}
}

func TestBuildTreeHierarchy(t *testing.T) {
	tree := BuildTree("snap-1", bankRows())

	assert.Equal(t, "snap-1", tree.SnapshotID)
	require.Len(t, tree.Goals, 2)

	// Goals sorted numerically, not by source order.
	assert.Equal(t, 7, tree.Goals[0].Code)
	assert.Equal(t, 13, tree.Goals[1].Code)

	climate := tree.Goals[1]
	require.Len(t, climate.Targets, 1)
	require.Len(t, climate.Targets[0].Indicators, 2)

	first := climate.Targets[0].Indicators[0]
	assert.Equal(t, "13.2.1", first.Code)
	assert.Equal(t, 13, first.GoalNo)
	assert.Equal(t, "13.2", first.TargetCode)
	assert.Equal(t, "GRI 305", first.GRICodes)
	require.Len(t, first.Questions, 3)
	assert.Equal(t, []int{1, 2, 3}, []int{first.Questions[0].Number, first.Questions[1].Number, first.Questions[2].Number})
	assert.Equal(t, "Sustainability Office", first.Questions[0].ResponsibleUnit)

	energy := tree.Goals[0].Targets[0].Indicators[0]
	require.Len(t, energy.Questions, 1)
	assert.Equal(t, 1, energy.Questions[0].Number)
}

func TestBuildTreeSkipsUnusableRows(t *testing.T) {
	rows := append(bankRows(),
		dto.Row{ColGoalNo: "13", ColIndicatorCode: ""},
		dto.Row{ColGoalNo: "n/a", ColIndicatorCode: "99.1.1", ColIndicatorTitle: "orphan"},
	)

	tree := BuildTree("snap-2", rows)

	require.Len(t, tree.Goals, 2)
	for _, goal := range tree.Goals {
		for _, target := range goal.Targets {
			for _, indicator := range target.Indicators {
				assert.NotEqual(t, "99.1.1", indicator.Code)
			}
		}
	}
}

func TestBuildTreeMergesDuplicateIndicatorRows(t *testing.T) {
	rows := []dto.Row{
		{ColGoalNo: "5", ColIndicatorCode: "5.1.1", ColIndicatorTitle: "Legal frameworks", ColQuestion1: "q1"},
		{ColGoalNo: "5", ColIndicatorCode: "5.1.1", ColIndicatorTitle: "Legal frameworks", ColQuestion1: "q1", ColQuestion2: "q2"},
	}

	tree := BuildTree("snap-3", rows)

	require.Len(t, tree.Goals, 1)
	require.Len(t, tree.Goals[0].Targets, 1)
	require.Len(t, tree.Goals[0].Targets[0].Indicators, 1)
	assert.Len(t, tree.Goals[0].Targets[0].Indicators[0].Questions, 2)
}

func TestIndexLookups(t *testing.T) {
	idx := NewIndex(BuildTree("snap-4", bankRows()))

	assert.False(t, idx.Empty())
	assert.Equal(t, "snap-4", idx.Snapshot())

	goal, ok := idx.GoalByNo(13)
	require.True(t, ok)
	assert.Equal(t, "Climate Action", goal.Title)

	_, ok = idx.GoalByNo(4)
	assert.False(t, ok)

	assert.Len(t, idx.TargetsOf(13), 1)
	assert.Nil(t, idx.TargetsOf(4))

	assert.Len(t, idx.IndicatorsOf(13, "13.2"), 2)
	assert.Nil(t, idx.IndicatorsOf(13, "13.9"))

	indicator, ok := idx.IndicatorByCode("7.1.1")
	require.True(t, ok)
	assert.Equal(t, 7, indicator.GoalNo)

	assert.Len(t, idx.QuestionsOf("13.2.1"), 3)
	assert.Nil(t, idx.QuestionsOf("0.0.0"))
}

// Every indicator reachable by code lookup must sit under the goal and
// target it names, so tree walks and code lookups never disagree.
func TestIndexNoDanglingReferences(t *testing.T) {
	idx := NewIndex(BuildTree("snap-5", bankRows()))

	for _, goal := range idx.Goals() {
		for _, target := range goal.Targets {
			for _, indicator := range target.Indicators {
				byCode, ok := idx.IndicatorByCode(indicator.Code)
				require.True(t, ok)
				assert.Same(t, indicator, byCode)
				assert.Equal(t, goal.Code, indicator.GoalNo)
				assert.Equal(t, target.Code, indicator.TargetCode)
			}
		}
	}
}

func TestEmptyIndex(t *testing.T) {
	idx := EmptyIndex()

	assert.True(t, idx.Empty())
	assert.Empty(t, idx.Goals())
	_, ok := idx.IndicatorByCode("13.2.1")
	assert.False(t, ok)
	assert.Nil(t, idx.QuestionsOf("13.2.1"))
}

func TestHolderSwap(t *testing.T) {
	h := NewHolder()
	assert.True(t, h.Load().Empty())

	idx := NewIndex(BuildTree("snap-6", bankRows()))
	h.Swap(idx)

	assert.Same(t, idx, h.Load())
	assert.False(t, h.Load().Empty())
}

package taxonomy

import (
	"sort"
	"strconv"
	"strings"
	"sync/atomic"

	"github.com/sustainage/sdg-engine/internal/domain"
	"github.com/sustainage/sdg-engine/internal/domain/dto"
)

// BuildTree groups normalized rows into the Goal → Target → Indicator →
// Question hierarchy. Rows without an indicator code or a parseable goal
// number are skipped; questions materialize only when their text is
// non-empty after trimming. Goals come out sorted by numeric code, targets
// and indicators keep source order within their parent.
func BuildTree(snapshotID string, rows []dto.Row) *dto.TaxonomyTree {
	tree := &dto.TaxonomyTree{SnapshotID: snapshotID}

	goalsByNo := make(map[domain.GoalNo]*dto.GoalNode)
	targetsByKey := make(map[string]*dto.TargetNode)
	indicatorsByCode := make(map[string]*dto.IndicatorNode)

	for _, row := range rows {
		indicatorCode := strings.TrimSpace(row.Get(ColIndicatorCode))
		goalNo, err := strconv.Atoi(strings.TrimSpace(row.Get(ColGoalNo)))
		if indicatorCode == "" || err != nil {
			continue
		}

		goal, ok := goalsByNo[goalNo]
		if !ok {
			goal = &dto.GoalNode{Code: goalNo, Title: strings.TrimSpace(row.Get(ColGoalTitle))}
			goalsByNo[goalNo] = goal
			tree.Goals = append(tree.Goals, goal)
		}

		targetCode := strings.TrimSpace(row.Get(ColTargetCode))
		targetKey := strconv.Itoa(goalNo) + "|" + targetCode
		target, ok := targetsByKey[targetKey]
		if !ok {
			target = &dto.TargetNode{Code: targetCode, Title: strings.TrimSpace(row.Get(ColTargetTitle))}
			targetsByKey[targetKey] = target
			goal.Targets = append(goal.Targets, target)
		}

		indicator, ok := indicatorsByCode[indicatorCode]
		if !ok {
			indicator = &dto.IndicatorNode{
				Code:       indicatorCode,
				Title:      strings.TrimSpace(row.Get(ColIndicatorTitle)),
				Unit:       strings.TrimSpace(row.Get(ColUnit)),
				Frequency:  strings.TrimSpace(row.Get(ColFrequency)),
				GRICodes:   strings.TrimSpace(row.Get(ColGRICodes)),
				TSRSCodes:  strings.TrimSpace(row.Get(ColTSRSCodes)),
				TargetCode: targetCode,
				GoalNo:     goalNo,
			}
			indicatorsByCode[indicatorCode] = indicator
			target.Indicators = append(target.Indicators, indicator)
		}

		for i, col := range []string{ColQuestion1, ColQuestion2, ColQuestion3} {
			number := i + 1
			text := strings.TrimSpace(row.Get(col))
			if text == "" || hasQuestion(indicator, number) {
				continue
			}
			indicator.Questions = append(indicator.Questions, domain.Question{
				Number:          number,
				Text:            text,
				ResponsibleUnit: strings.TrimSpace(row.Get(ColResponsibleUnit)),
				DataSource:      strings.TrimSpace(row.Get(ColDataSource)),
				DataMethod:      strings.TrimSpace(row.Get(ColDataMethod)),
				Frequency:       strings.TrimSpace(row.Get(ColFrequency)),
			})
		}
	}

	sort.Slice(tree.Goals, func(i, j int) bool { return tree.Goals[i].Code < tree.Goals[j].Code })

	return tree
}

func hasQuestion(ind *dto.IndicatorNode, number int) bool {
	for _, q := range ind.Questions {
		if q.Number == number {
			return true
		}
	}
	return false
}

// Index is the immutable lookup structure over one taxonomy snapshot. It is
// safe to share across callers without synchronization; reloads swap a whole
// new Index through a Holder.
type Index struct {
	tree             *dto.TaxonomyTree
	goalsByNo        map[domain.GoalNo]*dto.GoalNode
	targetsByKey     map[string]*dto.TargetNode
	indicatorsByCode map[string]*dto.IndicatorNode
}

func NewIndex(tree *dto.TaxonomyTree) *Index {
	idx := &Index{
		tree:             tree,
		goalsByNo:        make(map[domain.GoalNo]*dto.GoalNode),
		targetsByKey:     make(map[string]*dto.TargetNode),
		indicatorsByCode: make(map[string]*dto.IndicatorNode),
	}

	for _, goal := range tree.Goals {
		idx.goalsByNo[goal.Code] = goal
		for _, target := range goal.Targets {
			idx.targetsByKey[strconv.Itoa(goal.Code)+"|"+target.Code] = target
			for _, indicator := range target.Indicators {
				idx.indicatorsByCode[indicator.Code] = indicator
			}
		}
	}

	return idx
}

// EmptyIndex is what callers see before the first successful ingest; every
// lookup degrades to empty results.
func EmptyIndex() *Index {
	return NewIndex(&dto.TaxonomyTree{})
}

func (idx *Index) Snapshot() string { return idx.tree.SnapshotID }

func (idx *Index) Empty() bool { return len(idx.tree.Goals) == 0 }

func (idx *Index) Goals() []*dto.GoalNode { return idx.tree.Goals }

func (idx *Index) GoalByNo(goalNo domain.GoalNo) (*dto.GoalNode, bool) {
	goal, ok := idx.goalsByNo[goalNo]
	return goal, ok
}

func (idx *Index) TargetsOf(goalNo domain.GoalNo) []*dto.TargetNode {
	goal, ok := idx.goalsByNo[goalNo]
	if !ok {
		return nil
	}
	return goal.Targets
}

func (idx *Index) IndicatorsOf(goalNo domain.GoalNo, targetCode string) []*dto.IndicatorNode {
	target, ok := idx.targetsByKey[strconv.Itoa(goalNo)+"|"+targetCode]
	if !ok {
		return nil
	}
	return target.Indicators
}

func (idx *Index) IndicatorByCode(code string) (*dto.IndicatorNode, bool) {
	indicator, ok := idx.indicatorsByCode[code]
	return indicator, ok
}

func (idx *Index) QuestionsOf(indicatorCode string) []domain.Question {
	indicator, ok := idx.indicatorsByCode[indicatorCode]
	if !ok {
		return nil
	}
	return indicator.Questions
}

// Holder publishes the current Index and lets a reload swap it atomically so
// in-flight reads finish against a consistent snapshot.
type Holder struct {
	current atomic.Pointer[Index]
}

func NewHolder() *Holder {
	h := &Holder{}
	h.current.Store(EmptyIndex())
	return h
}

func (h *Holder) Load() *Index { return h.current.Load() }

func (h *Holder) Swap(idx *Index) { h.current.Store(idx) }

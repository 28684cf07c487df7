package mapping

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/sustainage/sdg-engine/internal/domain"
	"github.com/sustainage/sdg-engine/internal/domain/dto"
	"github.com/sustainage/sdg-engine/internal/pkg/store"
	"github.com/sustainage/sdg-engine/internal/service/taxonomy"
)

// Service projects selected goals onto external standard codes (GRI, TSRS)
// for gap reporting. Pure reads: the index supplies structure, the store only
// supplies answered counts.
type Service struct {
	store  store.Store
	holder *taxonomy.Holder
}

func NewService(store store.Store, holder *taxonomy.Holder) *Service {
	return &Service{store: store, holder: holder}
}

// GoalMapping is one goal's slice of the cross-standard report.
type GoalMapping struct {
	Title      string               `json:"title"`
	Indicators []*dto.IndicatorNode `json:"indicators"`
	GRICodes   []string             `json:"gri_codes"`
	TSRSCodes  []string             `json:"tsrs_codes"`
}

// MapSelectedGoals returns every indicator whose goal is in goalNos, in
// taxonomy order. Unknown goal numbers contribute nothing.
func (s *Service) MapSelectedGoals(goalNos []domain.GoalNo) []*dto.IndicatorNode {
	idx := s.holder.Load()

	wanted := make(map[domain.GoalNo]struct{}, len(goalNos))
	for _, goalNo := range goalNos {
		wanted[goalNo] = struct{}{}
	}

	var indicators []*dto.IndicatorNode
	for _, goal := range idx.Goals() {
		if _, ok := wanted[goal.Code]; !ok {
			continue
		}
		for _, target := range goal.Targets {
			indicators = append(indicators, target.Indicators...)
		}
	}

	return indicators
}

// GroupByStandard groups the filtered indicators per goal, collecting the
// distinct standard codes each goal touches.
func (s *Service) GroupByStandard(goalNos []domain.GoalNo) map[domain.GoalNo]*GoalMapping {
	idx := s.holder.Load()

	grouped := make(map[domain.GoalNo]*GoalMapping)
	for _, indicator := range s.MapSelectedGoals(goalNos) {
		entry, ok := grouped[indicator.GoalNo]
		if !ok {
			entry = &GoalMapping{}
			if goal, found := idx.GoalByNo(indicator.GoalNo); found {
				entry.Title = goal.Title
			}
			grouped[indicator.GoalNo] = entry
		}

		entry.Indicators = append(entry.Indicators, indicator)
		entry.GRICodes = appendCode(entry.GRICodes, indicator.GRICodes)
		entry.TSRSCodes = appendCode(entry.TSRSCodes, indicator.TSRSCodes)
	}

	for _, entry := range grouped {
		sort.Strings(entry.GRICodes)
		sort.Strings(entry.TSRSCodes)
	}

	return grouped
}

// appendCode adds a non-empty code to the set. Codes are free-text labels
// from the source; stored verbatim, deduplicated only on exact match.
func appendCode(codes []string, code string) []string {
	code = strings.TrimSpace(code)
	if code == "" {
		return codes
	}
	for _, existing := range codes {
		if existing == code {
			return codes
		}
	}
	return append(codes, code)
}

// CountQuestions is the denominator of the answer-percentage widgets: all
// materialized questions across the filtered indicators.
func (s *Service) CountQuestions(goalNos []domain.GoalNo) int {
	total := 0
	for _, indicator := range s.MapSelectedGoals(goalNos) {
		total += len(indicator.Questions)
	}
	return total
}

func (s *Service) CountAnswered(ctx context.Context, tenantID string, goalNos []domain.GoalNo) (int, error) {
	count, err := s.store.CountAnsweredForGoals(ctx, tenantID, goalNos)
	if err != nil {
		return 0, fmt.Errorf("store.CountAnsweredForGoals: %w", err)
	}

	return count, nil
}

func (s *Service) AnswerPercentage(ctx context.Context, tenantID string, goalNos []domain.GoalNo) (float64, error) {
	totalQuestions := s.CountQuestions(goalNos)
	if totalQuestions == 0 {
		return 0, nil
	}

	answered, err := s.CountAnswered(ctx, tenantID, goalNos)
	if err != nil {
		return 0, err
	}

	return decimal.NewFromInt(int64(answered * 100)).
		Div(decimal.NewFromInt(int64(totalQuestions))).
		Round(2).
		InexactFloat64(), nil
}

package collection

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/sustainage/sdg-engine/internal/domain"
	"github.com/sustainage/sdg-engine/internal/pkg/constants"
)

// completionPercentage is the per-indicator rollup: round(100*answered/total),
// 0 when the indicator has no questions.
func completionPercentage(answered, total int) float64 {
	if total <= 0 {
		return 0
	}
	return decimal.NewFromInt(int64(answered * 100)).
		Div(decimal.NewFromInt(int64(total))).
		Round(0).
		InexactFloat64()
}

// meanCompletion is the goal/company rollup: the plain arithmetic mean of
// per-indicator percentages. Every indicator counts equally regardless of how
// many of its questions exist; this is the defined rule, not an option.
func meanCompletion(statuses []*domain.IndicatorStatus) float64 {
	if len(statuses) == 0 {
		return 0
	}

	sum := decimal.Zero
	for _, st := range statuses {
		sum = sum.Add(decimal.NewFromFloat(st.CompletionPercentage))
	}
	return sum.Div(decimal.NewFromInt(int64(len(statuses)))).Round(2).InexactFloat64()
}

func summarize(statuses []*domain.IndicatorStatus) *domain.Progress {
	progress := &domain.Progress{TotalIndicators: len(statuses)}
	for _, st := range statuses {
		progress.TotalQuestions += st.TotalQuestions
		progress.AnsweredQuestions += st.AnsweredQuestions
	}

	progress.CompletionPercentage = meanCompletion(statuses)
	if remaining := progress.TotalQuestions - progress.AnsweredQuestions; remaining > 0 {
		progress.RemainingQuestions = remaining
	}

	return progress
}

// RecomputeIndicator rewrites one indicator's status row from the response
// rows and the current taxonomy snapshot. Idempotent; safe to call at any
// time.
func (s *Service) RecomputeIndicator(ctx context.Context, tenantID, indicatorCode string) error {
	indicator, ok := s.holder.Load().IndicatorByCode(indicatorCode)
	if !ok {
		return fmt.Errorf("%w: %s", constants.ErrIndicatorNotFound, indicatorCode)
	}

	answered, err := s.store.CountAnsweredForIndicator(ctx, tenantID, indicatorCode)
	if err != nil {
		return fmt.Errorf("store.CountAnsweredForIndicator: %w", err)
	}

	total := len(indicator.Questions)
	if answered > total {
		answered = total
	}

	status := &domain.IndicatorStatus{
		TenantID:             tenantID,
		GoalNo:               indicator.GoalNo,
		IndicatorCode:        indicatorCode,
		AnsweredQuestions:    answered,
		TotalQuestions:       total,
		CompletionPercentage: completionPercentage(answered, total),
	}

	if err = s.store.UpsertIndicatorStatus(ctx, status); err != nil {
		return fmt.Errorf("store.UpsertIndicatorStatus: %w", err)
	}

	return nil
}

// GetCompanyProgress aggregates the tenant's statuses, optionally scoped to
// one goal. A tenant with no statuses gets the zero progress, not an error.
func (s *Service) GetCompanyProgress(ctx context.Context, tenantID string, goalNo *domain.GoalNo) (*domain.Progress, error) {
	statuses, err := s.store.ListIndicatorStatuses(ctx, tenantID, goalNo)
	if err != nil {
		return nil, fmt.Errorf("store.ListIndicatorStatuses: %w", err)
	}

	return summarize(statuses), nil
}

func (s *Service) GetStatistics(ctx context.Context, tenantID string) (*domain.Statistics, error) {
	count, err := s.store.CountResponses(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("store.CountResponses: %w", err)
	}

	statuses, err := s.store.ListIndicatorStatuses(ctx, tenantID, nil)
	if err != nil {
		return nil, fmt.Errorf("store.ListIndicatorStatuses: %w", err)
	}

	return &domain.Statistics{
		TotalGoals:       len(s.holder.Load().Goals()),
		CompletedActions: count,
		AvgProgress:      meanCompletion(statuses),
	}, nil
}

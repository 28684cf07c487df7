package store

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/sustainage/sdg-engine/internal/domain"
)

var statusColumns = []string{
	"tenant_id", "goal_no", "indicator_code",
	"answered_questions", "total_questions", "completion_percentage", "last_updated",
}

func (s *store) UpsertIndicatorStatus(ctx context.Context, status *domain.IndicatorStatus) error {
	query := builder().Insert(tableIndicatorStatus).
		Columns("tenant_id", "goal_no", "indicator_code", "answered_questions", "total_questions", "completion_percentage").
		Values(status.TenantID, status.GoalNo, status.IndicatorCode, status.AnsweredQuestions, status.TotalQuestions, status.CompletionPercentage).
		Suffix(`
on conflict (tenant_id, indicator_code)
do update
set
	goal_no = excluded.goal_no,
	answered_questions = excluded.answered_questions,
	total_questions = excluded.total_questions,
	completion_percentage = excluded.completion_percentage,
	last_updated = now()`)

	if _, err := s.pool.Execx(ctx, query); err != nil {
		return wrapErr(err)
	}
	return nil
}

func (s *store) ListIndicatorStatuses(ctx context.Context, tenantID string, goalNo *domain.GoalNo) ([]*domain.IndicatorStatus, error) {
	query := builder().Select(statusColumns...).
		From(tableIndicatorStatus).
		Where(sq.Eq{"tenant_id": tenantID}).
		OrderBy("indicator_code")

	if goalNo != nil {
		query = query.Where(sq.Eq{"goal_no": *goalNo})
	}

	var selected []*domain.IndicatorStatus
	if err := s.pool.Selectx(ctx, &selected, query); err != nil {
		return nil, wrapErr(err)
	}

	return selected, nil
}

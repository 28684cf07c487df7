package store

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/sustainage/sdg-engine/internal/domain"
)

var responsesColumns = []string{
	"tenant_id", "goal_no", "indicator_code", "question_number", "question_text",
	"answer_text", "answer_value", "answer_boolean",
	"responsible_unit", "data_source", "data_method", "frequency",
	"gri_codes", "tsrs_codes", "data_quality", "notes",
	"created_at", "updated_at",
}

// answeredPred matches rows carrying a non-empty answer in any of the three
// typed columns.
var answeredPred = sq.Or{
	sq.NotEq{"answer_text": nil},
	sq.NotEq{"answer_value": nil},
	sq.NotEq{"answer_boolean": nil},
}

// UpsertResponse writes the latest answer for the (tenant, indicator,
// question) key. The conflict target is the storage-level unique key, so
// concurrent writers serialize there and retries never duplicate rows;
// created_at is kept from the first write.
func (s *store) UpsertResponse(ctx context.Context, response *domain.Response) error {
	var answerText interface{}
	if response.AnswerText != nil {
		answerText = *response.AnswerText
	}
	var answerBoolean interface{}
	if response.AnswerBoolean != nil {
		answerBoolean = *response.AnswerBoolean
	}

	query := builder().Insert(tableResponses).
		Columns(
			"tenant_id", "goal_no", "indicator_code", "question_number", "question_text",
			"answer_text", "answer_value", "answer_boolean",
			"responsible_unit", "data_source", "data_method", "frequency",
			"gri_codes", "tsrs_codes", "data_quality", "notes",
		).
		Values(
			response.TenantID, response.GoalNo, response.IndicatorCode, response.QuestionNumber, response.QuestionText,
			answerText, response.AnswerValue, answerBoolean,
			response.ResponsibleUnit, response.DataSource, response.DataMethod, response.Frequency,
			response.GRICodes, response.TSRSCodes, response.DataQuality, response.Notes,
		).
		Suffix(`
on conflict (tenant_id, indicator_code, question_number)
do update
set
	question_text = excluded.question_text,
	answer_text = excluded.answer_text,
	answer_value = excluded.answer_value,
	answer_boolean = excluded.answer_boolean,
	responsible_unit = excluded.responsible_unit,
	data_source = excluded.data_source,
	data_method = excluded.data_method,
	frequency = excluded.frequency,
	gri_codes = excluded.gri_codes,
	tsrs_codes = excluded.tsrs_codes,
	data_quality = excluded.data_quality,
	notes = excluded.notes,
	updated_at = now()`)

	if _, err := s.pool.Execx(ctx, query); err != nil {
		return wrapErr(err)
	}
	return nil
}

func (s *store) ListIndicatorResponses(ctx context.Context, tenantID, indicatorCode string) ([]*domain.Response, error) {
	query := builder().Select(responsesColumns...).
		From(tableResponses).
		Where(sq.And{
			sq.Eq{"tenant_id": tenantID},
			sq.Eq{"indicator_code": indicatorCode},
		}).
		OrderBy("question_number")

	var selected []*domain.Response
	if err := s.pool.Selectx(ctx, &selected, query); err != nil {
		return nil, wrapErr(err)
	}

	return selected, nil
}

func (s *store) ListRecentResponses(ctx context.Context, tenantID string, limit int) ([]*domain.Response, error) {
	query := builder().Select(responsesColumns...).
		From(tableResponses).
		Where(sq.Eq{"tenant_id": tenantID}).
		OrderBy("updated_at desc").
		Limit(uint64(limit))

	var selected []*domain.Response
	if err := s.pool.Selectx(ctx, &selected, query); err != nil {
		return nil, wrapErr(err)
	}

	return selected, nil
}

func (s *store) CountAnsweredForIndicator(ctx context.Context, tenantID, indicatorCode string) (int, error) {
	query := builder().Select("count(*)").
		From(tableResponses).
		Where(sq.And{
			sq.Eq{"tenant_id": tenantID},
			sq.Eq{"indicator_code": indicatorCode},
			answeredPred,
		})

	var count int
	if err := s.pool.Getx(ctx, &count, query); err != nil {
		return 0, wrapErr(err)
	}

	return count, nil
}

func (s *store) CountAnsweredForGoals(ctx context.Context, tenantID string, goalNos []domain.GoalNo) (int, error) {
	if len(goalNos) == 0 {
		return 0, nil
	}

	query := builder().Select("count(*)").
		From(tableResponses).
		Where(sq.And{
			sq.Eq{"tenant_id": tenantID},
			sq.Eq{"goal_no": goalNos},
			answeredPred,
		})

	var count int
	if err := s.pool.Getx(ctx, &count, query); err != nil {
		return 0, wrapErr(err)
	}

	return count, nil
}

func (s *store) CountResponses(ctx context.Context, tenantID string) (int, error) {
	query := builder().Select("count(*)").
		From(tableResponses).
		Where(sq.Eq{"tenant_id": tenantID})

	var count int
	if err := s.pool.Getx(ctx, &count, query); err != nil {
		return 0, wrapErr(err)
	}

	return count, nil
}

func (s *store) ListAnsweredIndicatorCodes(ctx context.Context, tenantID string) ([]string, error) {
	query := builder().Select("distinct indicator_code").
		From(tableResponses).
		Where(sq.And{
			sq.Eq{"tenant_id": tenantID},
			answeredPred,
		})

	var codes []string
	if err := s.pool.Selectx(ctx, &codes, query); err != nil {
		return nil, wrapErr(err)
	}

	return codes, nil
}

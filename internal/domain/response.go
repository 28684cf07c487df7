package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type Selection struct {
	TenantID   string    `db:"tenant_id"`
	GoalNo     GoalNo    `db:"goal_no"`
	SelectedAt time.Time `db:"selected_at"`
}

// Response is the persisted answer to one question of one indicator. Exactly
// one of AnswerText/AnswerValue/AnswerBoolean is non-null; the question text
// and provenance hints are denormalized at write time so historical answers
// stay legible after a taxonomy snapshot swap.
type Response struct {
	TenantID        string              `db:"tenant_id"`
	GoalNo          GoalNo              `db:"goal_no"`
	IndicatorCode   string              `db:"indicator_code"`
	QuestionNumber  int                 `db:"question_number"`
	QuestionText    string              `db:"question_text"`
	AnswerText      *string             `db:"answer_text"`
	AnswerValue     decimal.NullDecimal `db:"answer_value"`
	AnswerBoolean   *bool               `db:"answer_boolean"`
	ResponsibleUnit string              `db:"responsible_unit"`
	DataSource      string              `db:"data_source"`
	DataMethod      string              `db:"data_method"`
	Frequency       string              `db:"frequency"`
	GRICodes        string              `db:"gri_codes"`
	TSRSCodes       string              `db:"tsrs_codes"`
	DataQuality     string              `db:"data_quality"`
	Notes           string              `db:"notes"`
	CreatedAt       time.Time           `db:"created_at"`
	UpdatedAt       time.Time           `db:"updated_at"`
}

// Answer reconstructs the typed answer from the three nullable columns.
func (r *Response) Answer() Answer {
	switch {
	case r.AnswerText != nil:
		return TextAnswer(*r.AnswerText)
	case r.AnswerValue.Valid:
		return NumericAnswer(r.AnswerValue.Decimal)
	case r.AnswerBoolean != nil:
		return BooleanAnswer(*r.AnswerBoolean)
	}
	return Answer{}
}

// IndicatorStatus is the derived per-tenant rollup for one indicator. It is a
// cache over responses, never a second source of truth.
type IndicatorStatus struct {
	TenantID             string    `db:"tenant_id"`
	GoalNo               GoalNo    `db:"goal_no"`
	IndicatorCode        string    `db:"indicator_code"`
	AnsweredQuestions    int       `db:"answered_questions"`
	TotalQuestions       int       `db:"total_questions"`
	CompletionPercentage float64   `db:"completion_percentage"`
	LastUpdated          time.Time `db:"last_updated"`
}

type Progress struct {
	TotalIndicators      int     `json:"total_indicators"`
	TotalQuestions       int     `json:"total_questions"`
	AnsweredQuestions    int     `json:"answered_questions"`
	CompletionPercentage float64 `json:"completion_percentage"`
	RemainingQuestions   int     `json:"remaining_questions"`
}

type Statistics struct {
	TotalGoals       int     `json:"total_goals"`
	CompletedActions int     `json:"completed_actions"`
	AvgProgress      float64 `json:"avg_progress"`
}

package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

type ErrorResponse struct {
	Message string `json:"message"`
	Code    int    `json:"code"`
}

// Provenance carries the who/where/how metadata stored alongside an answer.
type Provenance struct {
	ResponsibleUnit string `json:"responsible_unit"`
	DataSource      string `json:"data_source"`
	DataMethod      string `json:"data_method"`
	Frequency       string `json:"frequency"`
	DataQuality     string `json:"data_quality"`
	Notes           string `json:"notes"`
}

// AnswerPayload is the wire form of the answer union. Kind selects the
// variant; the matching field must be set. Numeric values travel as strings
// so malformed numbers are rejected at the boundary instead of being coerced.
type AnswerPayload struct {
	Kind    AnswerKind `json:"kind" validate:"required,oneof=text numeric boolean"`
	Text    string     `json:"text,omitempty"`
	Value   string     `json:"value,omitempty"`
	Boolean *bool      `json:"boolean,omitempty"`
}

func (p AnswerPayload) ToAnswer() (Answer, error) {
	switch p.Kind {
	case AnswerKindText:
		return TextAnswer(p.Text), nil
	case AnswerKindNumeric:
		value, err := decimal.NewFromString(p.Value)
		if err != nil {
			return Answer{}, fmt.Errorf("invalid numeric answer %q: %w", p.Value, err)
		}
		return NumericAnswer(value), nil
	case AnswerKindBoolean:
		if p.Boolean == nil {
			return Answer{}, fmt.Errorf("boolean answer requires the boolean field")
		}
		return BooleanAnswer(*p.Boolean), nil
	}
	return Answer{}, fmt.Errorf("unknown answer kind %q", p.Kind)
}

type SaveAnswerRequest struct {
	IndicatorCode  string        `json:"indicator_code" validate:"required"`
	QuestionNumber int           `json:"question_number" validate:"required,min=1,max=3"`
	Answer         AnswerPayload `json:"answer" validate:"required"`
	Provenance     Provenance    `json:"provenance"`
}

type SaveAnswersRequest struct {
	Answers []SaveAnswerRequest `json:"answers" validate:"required,min=1,dive"`
}

// SaveAnswersResult reports a batch submission item by item; one rejected
// answer never aborts the rest of the batch.
type SaveAnswersResult struct {
	Saved  int               `json:"saved"`
	Errors []SaveAnswerError `json:"errors,omitempty"`
}

type SaveAnswerError struct {
	IndicatorCode  string `json:"indicator_code"`
	QuestionNumber int    `json:"question_number"`
	Message        string `json:"message"`
}

type SetSelectionsRequest struct {
	GoalIDs []GoalNo `json:"goal_ids" validate:"required"`
}

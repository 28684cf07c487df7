package domain

import "github.com/shopspring/decimal"

type AnswerKind string

const (
	AnswerKindText    AnswerKind = "text"
	AnswerKindNumeric AnswerKind = "numeric"
	AnswerKindBoolean AnswerKind = "boolean"
)

// Answer holds exactly one of the three answer variants. The zero value is
// empty and reports false from all accessors; stores persist the populated
// variant and null out the other two columns.
type Answer struct {
	kind    AnswerKind
	text    string
	value   decimal.Decimal
	boolean bool
}

func TextAnswer(text string) Answer {
	return Answer{kind: AnswerKindText, text: text}
}

func NumericAnswer(value decimal.Decimal) Answer {
	return Answer{kind: AnswerKindNumeric, value: value}
}

func BooleanAnswer(b bool) Answer {
	return Answer{kind: AnswerKindBoolean, boolean: b}
}

func (a Answer) Kind() AnswerKind { return a.kind }

func (a Answer) IsEmpty() bool { return a.kind == "" }

func (a Answer) Text() (string, bool) {
	return a.text, a.kind == AnswerKindText
}

func (a Answer) Value() (decimal.Decimal, bool) {
	return a.value, a.kind == AnswerKindNumeric
}

func (a Answer) Boolean() (bool, bool) {
	return a.boolean, a.kind == AnswerKindBoolean
}

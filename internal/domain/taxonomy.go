package domain

import "time"

// GoalNo is the numeric code of a top-level SDG goal (1..17 in the official
// taxonomy, but nothing here assumes an upper bound).
type GoalNo = int

type Goal struct {
	ID        int64     `db:"id"`
	Code      GoalNo    `db:"code"`
	Title     string    `db:"title"`
	Snapshot  string    `db:"snapshot_id"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

type Target struct {
	ID        int64     `db:"id"`
	Code      string    `db:"code"`
	Title     string    `db:"title"`
	GoalID    int64     `db:"goal_id"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

type Indicator struct {
	ID        int64     `db:"id"`
	Code      string    `db:"code"`
	Title     string    `db:"title"`
	Unit      string    `db:"unit"`
	Frequency string    `db:"frequency"`
	TargetID  int64     `db:"target_id"`
	GRICodes  string    `db:"gri_codes"`
	TSRSCodes string    `db:"tsrs_codes"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// Question is one of up to three prompts attached to an indicator. The hint
// fields come verbatim from the question bank and are denormalized into
// responses at answer time.
type Question struct {
	Number          int    `json:"question_number"`
	Text            string `json:"question_text"`
	ResponsibleUnit string `json:"responsible_unit,omitempty"`
	DataSource      string `json:"data_source,omitempty"`
	DataMethod      string `json:"data_method,omitempty"`
	Frequency       string `json:"frequency,omitempty"`
}

package dto

import "github.com/sustainage/sdg-engine/internal/domain"

// TaxonomyTree is the grouped form of a normalized snapshot, built once per
// ingest and consumed both by the in-memory index and by the store when it
// replaces the persisted hierarchy.
type TaxonomyTree struct {
	SnapshotID string
	Goals      []*GoalNode
}

type GoalNode struct {
	Code    domain.GoalNo `json:"code"`
	Title   string        `json:"title"`
	Targets []*TargetNode `json:"targets,omitempty"`
}

type TargetNode struct {
	Code       string           `json:"code"`
	Title      string           `json:"title"`
	Indicators []*IndicatorNode `json:"indicators,omitempty"`
}

type IndicatorNode struct {
	Code       string            `json:"code"`
	Title      string            `json:"title"`
	Unit       string            `json:"unit,omitempty"`
	Frequency  string            `json:"frequency,omitempty"`
	GRICodes   string            `json:"gri_codes,omitempty"`
	TSRSCodes  string            `json:"tsrs_codes,omitempty"`
	TargetCode string            `json:"target_code"`
	GoalNo     domain.GoalNo     `json:"goal_no"`
	Questions  []domain.Question `json:"questions,omitempty"`
}

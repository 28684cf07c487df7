package store

import (
	"errors"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/sustainage/sdg-engine/internal/pkg/constants"
)

const (
	tableGoals           = "goals"
	tableTargets         = "targets"
	tableIndicators      = "indicators"
	tableSelections      = "selections"
	tableResponses       = "responses"
	tableIndicatorStatus = "indicator_status"
)

var mapping = map[error]error{pgx.ErrNoRows: constants.ErrDBNotFound}

func wrapErr(err error) error {
	for k, v := range mapping {
		if errors.Is(err, k) {
			return v
		}
	}
	return err
}

func builder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}

package store

import (
	"context"
	"fmt"

	"github.com/sustainage/sdg-engine/internal/domain"
	"github.com/sustainage/sdg-engine/internal/domain/dto"
	"github.com/sustainage/sdg-engine/internal/pkg/store/xpgx"
)

var goalsColumns = []string{"id", "code", "title", "snapshot_id", "created_at", "updated_at"}

// ReplaceTaxonomy swaps the persisted hierarchy for a new snapshot in one
// transaction: readers see either the old snapshot or the new one, never a
// mix. Tenant data (selections, responses, statuses) is keyed by goal number
// and indicator code, so it survives the swap untouched.
func (s *store) ReplaceTaxonomy(ctx context.Context, tree *dto.TaxonomyTree) error {
	return s.pool.WithTx(ctx, func(ctx context.Context, tx xpgx.Pool) error {
		for _, table := range []string{tableIndicators, tableTargets, tableGoals} {
			if _, err := tx.Execx(ctx, builder().Delete(table)); err != nil {
				return fmt.Errorf("delete %s: %w", table, err)
			}
		}

		for _, goal := range tree.Goals {
			goalID, err := insertGoal(ctx, tx, tree.SnapshotID, goal)
			if err != nil {
				return fmt.Errorf("insertGoal, goal_no-%d: %w", goal.Code, err)
			}

			for _, target := range goal.Targets {
				targetID, err := insertTarget(ctx, tx, goalID, target)
				if err != nil {
					return fmt.Errorf("insertTarget, target_code-%s: %w", target.Code, err)
				}

				if err = insertIndicators(ctx, tx, targetID, target.Indicators); err != nil {
					return fmt.Errorf("insertIndicators, target_code-%s: %w", target.Code, err)
				}
			}
		}

		return nil
	})
}

func insertGoal(ctx context.Context, tx xpgx.Pool, snapshotID string, goal *dto.GoalNode) (int64, error) {
	query := builder().Insert(tableGoals).
		Columns("code", "title", "snapshot_id").
		Values(goal.Code, goal.Title, snapshotID).
		Suffix("RETURNING id")

	var id int64
	if err := tx.Getx(ctx, &id, query); err != nil {
		return 0, wrapErr(err)
	}
	return id, nil
}

func insertTarget(ctx context.Context, tx xpgx.Pool, goalID int64, target *dto.TargetNode) (int64, error) {
	query := builder().Insert(tableTargets).
		Columns("code", "title", "goal_id").
		Values(target.Code, target.Title, goalID).
		Suffix("RETURNING id")

	var id int64
	if err := tx.Getx(ctx, &id, query); err != nil {
		return 0, wrapErr(err)
	}
	return id, nil
}

func insertIndicators(ctx context.Context, tx xpgx.Pool, targetID int64, indicators []*dto.IndicatorNode) error {
	if len(indicators) == 0 {
		return nil
	}

	query := builder().Insert(tableIndicators).
		Columns("code", "title", "unit", "frequency", "target_id", "gri_codes", "tsrs_codes")
	for _, ind := range indicators {
		query = query.Values(ind.Code, ind.Title, ind.Unit, ind.Frequency, targetID, ind.GRICodes, ind.TSRSCodes)
	}

	if _, err := tx.Execx(ctx, query); err != nil {
		return wrapErr(err)
	}
	return nil
}

func (s *store) ListGoals(ctx context.Context) ([]*domain.Goal, error) {
	query := builder().Select(goalsColumns...).
		From(tableGoals).
		OrderBy("code")

	var selected []*domain.Goal
	if err := s.pool.Selectx(ctx, &selected, query); err != nil {
		return nil, wrapErr(err)
	}

	return selected, nil
}

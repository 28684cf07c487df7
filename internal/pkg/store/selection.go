package store

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/sustainage/sdg-engine/internal/domain"
	"github.com/sustainage/sdg-engine/internal/pkg/store/xpgx"
)

func (s *store) GetSelections(ctx context.Context, tenantID string) ([]domain.GoalNo, error) {
	query := builder().Select("goal_no").
		From(tableSelections).
		Where(sq.Eq{"tenant_id": tenantID}).
		OrderBy("goal_no")

	var selected []domain.GoalNo
	if err := s.pool.Selectx(ctx, &selected, query); err != nil {
		return nil, wrapErr(err)
	}

	return selected, nil
}

// SetSelections replaces the tenant's tracked-goal set. Delete-then-insert
// inside one transaction, so concurrent readers never observe a partially
// replaced set. Goal numbers are not validated against the taxonomy here.
func (s *store) SetSelections(ctx context.Context, tenantID string, goalNos []domain.GoalNo) error {
	return s.pool.WithTx(ctx, func(ctx context.Context, tx xpgx.Pool) error {
		deleteQuery := builder().Delete(tableSelections).
			Where(sq.Eq{"tenant_id": tenantID})
		if _, err := tx.Execx(ctx, deleteQuery); err != nil {
			return fmt.Errorf("delete selections: %w", wrapErr(err))
		}

		if len(goalNos) == 0 {
			return nil
		}

		insertQuery := builder().Insert(tableSelections).
			Columns("tenant_id", "goal_no")
		for _, goalNo := range goalNos {
			insertQuery = insertQuery.Values(tenantID, goalNo)
		}
		insertQuery = insertQuery.Suffix("on conflict (tenant_id, goal_no) do nothing")

		if _, err := tx.Execx(ctx, insertQuery); err != nil {
			return fmt.Errorf("insert selections: %w", wrapErr(err))
		}
		return nil
	})
}

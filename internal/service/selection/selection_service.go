package selection

import (
	"context"
	"fmt"

	"github.com/sustainage/sdg-engine/internal/domain"
	"github.com/sustainage/sdg-engine/internal/pkg/store"
)

type Service struct {
	store store.Store
}

func NewService(store store.Store) *Service {
	return &Service{store: store}
}

func (s *Service) GetSelections(ctx context.Context, tenantID string) ([]domain.GoalNo, error) {
	goalNos, err := s.store.GetSelections(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("store.GetSelections: %w", err)
	}

	return goalNos, nil
}

// SetSelections replaces the tenant's tracked-goal set. Unknown goal numbers
// pass through untouched; selections are a tracking hint, not a gate.
func (s *Service) SetSelections(ctx context.Context, tenantID string, goalNos []domain.GoalNo) error {
	if err := s.store.SetSelections(ctx, tenantID, dedupe(goalNos)); err != nil {
		return fmt.Errorf("store.SetSelections: %w", err)
	}

	return nil
}

func dedupe(goalNos []domain.GoalNo) []domain.GoalNo {
	seen := make(map[domain.GoalNo]struct{}, len(goalNos))
	out := make([]domain.GoalNo, 0, len(goalNos))
	for _, goalNo := range goalNos {
		if _, ok := seen[goalNo]; ok {
			continue
		}
		seen[goalNo] = struct{}{}
		out = append(out, goalNo)
	}
	return out
}

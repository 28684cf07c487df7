package store

import (
	"context"

	"github.com/sustainage/sdg-engine/internal/domain"
	"github.com/sustainage/sdg-engine/internal/domain/dto"
	"github.com/sustainage/sdg-engine/internal/pkg/store/xpgx"
)

type Pool = xpgx.Pool

type Store interface {
	// taxonomy
	ReplaceTaxonomy(ctx context.Context, tree *dto.TaxonomyTree) error
	ListGoals(ctx context.Context) ([]*domain.Goal, error)

	// selections
	GetSelections(ctx context.Context, tenantID string) ([]domain.GoalNo, error)
	SetSelections(ctx context.Context, tenantID string, goalNos []domain.GoalNo) error

	// responses
	UpsertResponse(ctx context.Context, response *domain.Response) error
	ListIndicatorResponses(ctx context.Context, tenantID, indicatorCode string) ([]*domain.Response, error)
	ListRecentResponses(ctx context.Context, tenantID string, limit int) ([]*domain.Response, error)
	CountAnsweredForIndicator(ctx context.Context, tenantID, indicatorCode string) (int, error)
	CountAnsweredForGoals(ctx context.Context, tenantID string, goalNos []domain.GoalNo) (int, error)
	CountResponses(ctx context.Context, tenantID string) (int, error)
	ListAnsweredIndicatorCodes(ctx context.Context, tenantID string) ([]string, error)

	// indicator status
	UpsertIndicatorStatus(ctx context.Context, status *domain.IndicatorStatus) error
	ListIndicatorStatuses(ctx context.Context, tenantID string, goalNo *domain.GoalNo) ([]*domain.IndicatorStatus, error)
}

type store struct {
	pool Pool
}

func NewStore(pool Pool) Store {
	return &store{pool}
}

package taxonomy

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/sustainage/sdg-engine/internal/domain"
	"github.com/sustainage/sdg-engine/internal/pkg/logger"
	"github.com/sustainage/sdg-engine/internal/pkg/store"
)

type Service struct {
	store  store.Store
	holder *Holder
}

func NewService(store store.Store) *Service {
	return &Service{store: store, holder: NewHolder()}
}

// Ingest loads a taxonomy source, normalizes it, persists the hierarchy and
// swaps the in-memory index. On failure the previous index stays published,
// so a bad re-ingest never degrades running readers; a failed first ingest
// leaves the empty index in place and the engine serves empty collections.
func (s *Service) Ingest(ctx context.Context, path, sheet string) error {
	table, err := LoadTable(path, sheet)
	if err != nil {
		logger.Errorf(ctx, "taxonomy load failed, path-%s: %s", path, err.Error())
		return fmt.Errorf("LoadTable: %w", err)
	}

	rows, err := Normalize(table)
	if err != nil {
		logger.Errorf(ctx, "taxonomy normalization failed, path-%s: %s", path, err.Error())
		return fmt.Errorf("Normalize: %w", err)
	}

	tree := BuildTree(uuid.NewString(), rows)

	if s.store != nil {
		if err = s.store.ReplaceTaxonomy(ctx, tree); err != nil {
			logger.Errorf(ctx, "ReplaceTaxonomy: %s", err.Error())
			return fmt.Errorf("store.ReplaceTaxonomy: %w", err)
		}
	}

	s.holder.Swap(NewIndex(tree))
	logger.Infof(ctx, "taxonomy snapshot %s loaded: %d goals, %d rows", tree.SnapshotID, len(tree.Goals), len(rows))

	return nil
}

// Index returns the current snapshot. The returned value is immutable; hold
// it for the duration of one logical operation.
func (s *Service) Index() *Index {
	return s.holder.Load()
}

// Holder exposes the swap point for other services that need to follow
// snapshot reloads.
func (s *Service) Holder() *Holder {
	return s.holder
}

func (s *Service) ListGoals(ctx context.Context) ([]*domain.Goal, error) {
	goals, err := s.store.ListGoals(ctx)
	if err != nil {
		return nil, fmt.Errorf("store.ListGoals: %w", err)
	}

	return goals, nil
}

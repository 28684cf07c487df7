// Package storetest provides an in-memory store.Store for service tests.
// It mirrors the SQL store's observable semantics: code-keyed upserts,
// answered means any answer column set, recency by update time.
package storetest

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/sustainage/sdg-engine/internal/domain"
	"github.com/sustainage/sdg-engine/internal/domain/dto"
	"github.com/sustainage/sdg-engine/internal/pkg/constants"
)

type Store struct {
	mu sync.Mutex

	goals      []*domain.Goal
	selections map[string][]domain.GoalNo
	responses  map[string]*domain.Response
	statuses   map[string]*domain.IndicatorStatus

	clock time.Time
}

func New() *Store {
	return &Store{
		selections: make(map[string][]domain.GoalNo),
		responses:  make(map[string]*domain.Response),
		statuses:   make(map[string]*domain.IndicatorStatus),
		clock:      time.Unix(1_700_000_000, 0).UTC(),
	}
}

// tick hands out strictly increasing timestamps so recency ordering is
// deterministic even when a test writes twice in the same nanosecond.
func (s *Store) tick() time.Time {
	s.clock = s.clock.Add(time.Second)
	return s.clock
}

func responseKey(tenantID, indicatorCode string, questionNumber int) string {
	return fmt.Sprintf("%s|%s|%d", tenantID, indicatorCode, questionNumber)
}

func statusKey(tenantID, indicatorCode string) string {
	return tenantID + "|" + indicatorCode
}

func answered(r *domain.Response) bool {
	return r.AnswerText != nil || r.AnswerValue.Valid || r.AnswerBoolean != nil
}

func (s *Store) ReplaceTaxonomy(_ context.Context, tree *dto.TaxonomyTree) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.goals = s.goals[:0]
	for _, goal := range tree.Goals {
		s.goals = append(s.goals, &domain.Goal{Code: goal.Code, Title: goal.Title})
	}
	return nil
}

func (s *Store) ListGoals(_ context.Context) ([]*domain.Goal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]*domain.Goal(nil), s.goals...), nil
}

func (s *Store) GetSelections(_ context.Context, tenantID string) ([]domain.GoalNo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]domain.GoalNo(nil), s.selections[tenantID]...), nil
}

func (s *Store) SetSelections(_ context.Context, tenantID string, goalNos []domain.GoalNo) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sorted := append([]domain.GoalNo(nil), goalNos...)
	sort.Ints(sorted)
	s.selections[tenantID] = sorted
	return nil
}

func (s *Store) UpsertResponse(_ context.Context, response *domain.Response) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.tick()
	clone := *response
	clone.UpdatedAt = now
	clone.CreatedAt = now

	key := responseKey(response.TenantID, response.IndicatorCode, response.QuestionNumber)
	if existing, ok := s.responses[key]; ok {
		clone.CreatedAt = existing.CreatedAt
	}
	s.responses[key] = &clone
	return nil
}

func (s *Store) ListIndicatorResponses(_ context.Context, tenantID, indicatorCode string) ([]*domain.Response, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []*domain.Response
	for _, r := range s.responses {
		if r.TenantID == tenantID && r.IndicatorCode == indicatorCode {
			out = append(out, r)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].QuestionNumber < out[j].QuestionNumber })
	return out, nil
}

func (s *Store) ListRecentResponses(_ context.Context, tenantID string, limit int) ([]*domain.Response, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []*domain.Response
	for _, r := range s.responses {
		if r.TenantID == tenantID {
			out = append(out, r)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].UpdatedAt.After(out[j].UpdatedAt) })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (s *Store) CountAnsweredForIndicator(_ context.Context, tenantID, indicatorCode string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	count := 0
	for _, r := range s.responses {
		if r.TenantID == tenantID && r.IndicatorCode == indicatorCode && answered(r) {
			count++
		}
	}
	return count, nil
}

func (s *Store) CountAnsweredForGoals(_ context.Context, tenantID string, goalNos []domain.GoalNo) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	wanted := make(map[domain.GoalNo]struct{}, len(goalNos))
	for _, no := range goalNos {
		wanted[no] = struct{}{}
	}

	count := 0
	for _, r := range s.responses {
		if r.TenantID != tenantID || !answered(r) {
			continue
		}
		if _, ok := wanted[r.GoalNo]; ok {
			count++
		}
	}
	return count, nil
}

func (s *Store) CountResponses(_ context.Context, tenantID string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	count := 0
	for _, r := range s.responses {
		if r.TenantID == tenantID {
			count++
		}
	}
	return count, nil
}

func (s *Store) ListAnsweredIndicatorCodes(_ context.Context, tenantID string) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	seen := make(map[string]struct{})
	for _, r := range s.responses {
		if r.TenantID == tenantID && answered(r) {
			seen[r.IndicatorCode] = struct{}{}
		}
	}

	codes := make([]string, 0, len(seen))
	for code := range seen {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes, nil
}

func (s *Store) UpsertIndicatorStatus(_ context.Context, status *domain.IndicatorStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	clone := *status
	clone.LastUpdated = s.tick()
	s.statuses[statusKey(status.TenantID, status.IndicatorCode)] = &clone
	return nil
}

func (s *Store) ListIndicatorStatuses(_ context.Context, tenantID string, goalNo *domain.GoalNo) ([]*domain.IndicatorStatus, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []*domain.IndicatorStatus
	for _, st := range s.statuses {
		if st.TenantID != tenantID {
			continue
		}
		if goalNo != nil && st.GoalNo != *goalNo {
			continue
		}
		out = append(out, st)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].IndicatorCode < out[j].IndicatorCode })
	return out, nil
}

// Status returns the stored rollup for assertions, or ErrDBNotFound.
func (s *Store) Status(tenantID, indicatorCode string) (*domain.IndicatorStatus, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, ok := s.statuses[statusKey(tenantID, indicatorCode)]
	if !ok {
		return nil, constants.ErrDBNotFound
	}
	return st, nil
}

// Response returns the stored row for assertions, or ErrDBNotFound.
func (s *Store) Response(tenantID, indicatorCode string, questionNumber int) (*domain.Response, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.responses[responseKey(tenantID, indicatorCode, questionNumber)]
	if !ok {
		return nil, constants.ErrDBNotFound
	}
	return r, nil
}

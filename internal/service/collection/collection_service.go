package collection

import (
	"context"
	"errors"
	"fmt"

	"github.com/sustainage/sdg-engine/internal/domain"
	"github.com/sustainage/sdg-engine/internal/domain/dto"
	"github.com/sustainage/sdg-engine/internal/pkg/constants"
	"github.com/sustainage/sdg-engine/internal/pkg/logger"
	"github.com/sustainage/sdg-engine/internal/pkg/store"
	"github.com/sustainage/sdg-engine/internal/service/taxonomy"
	"golang.org/x/sync/errgroup"
)

const rebuildConcurrency = 8

type Service struct {
	store  store.Store
	holder *taxonomy.Holder
}

func NewService(store store.Store, holder *taxonomy.Holder) *Service {
	return &Service{store: store, holder: holder}
}

// SaveAnswer validates and upserts one answer, then synchronously recomputes
// the indicator's status so readers never see a stale completion percentage
// for more than one write.
func (s *Service) SaveAnswer(ctx context.Context, tenantID string, req domain.SaveAnswerRequest) error {
	idx := s.holder.Load()

	indicator, ok := idx.IndicatorByCode(req.IndicatorCode)
	if !ok {
		return fmt.Errorf("%w: %s", constants.ErrIndicatorNotFound, req.IndicatorCode)
	}

	var question *domain.Question
	for i := range indicator.Questions {
		if indicator.Questions[i].Number == req.QuestionNumber {
			question = &indicator.Questions[i]
			break
		}
	}
	if question == nil {
		return fmt.Errorf("%w: indicator %s has no question %d",
			constants.ErrInvalidAnswer, req.IndicatorCode, req.QuestionNumber)
	}

	answer, err := req.Answer.ToAnswer()
	if err != nil {
		return fmt.Errorf("%w: %v", constants.ErrInvalidAnswer, err)
	}

	response := buildResponse(tenantID, indicator, question, answer, req.Provenance)
	if err = s.store.UpsertResponse(ctx, response); err != nil {
		logger.Errorf(ctx, "UpsertResponse, indicator_code-%s: %s", req.IndicatorCode, err.Error())
		return fmt.Errorf("store.UpsertResponse: %w", err)
	}

	if err = s.RecomputeIndicator(ctx, tenantID, req.IndicatorCode); err != nil {
		return fmt.Errorf("RecomputeIndicator: %w", err)
	}

	return nil
}

// SaveAnswers applies a batch independently per item: valid answers land even
// when neighbors are rejected, and every rejection is reported by key.
func (s *Service) SaveAnswers(ctx context.Context, tenantID string, req domain.SaveAnswersRequest) (*domain.SaveAnswersResult, error) {
	result := &domain.SaveAnswersResult{}
	for _, item := range req.Answers {
		if err := s.SaveAnswer(ctx, tenantID, item); err != nil {
			result.Errors = append(result.Errors, domain.SaveAnswerError{
				IndicatorCode:  item.IndicatorCode,
				QuestionNumber: item.QuestionNumber,
				Message:        err.Error(),
			})
			continue
		}
		result.Saved++
	}

	return result, nil
}

// buildResponse denormalizes the question wording and the bank's provenance
// hints into the row; caller-supplied provenance wins field by field.
func buildResponse(tenantID string, indicator *dto.IndicatorNode, question *domain.Question, answer domain.Answer, prov domain.Provenance) *domain.Response {
	response := &domain.Response{
		TenantID:        tenantID,
		GoalNo:          indicator.GoalNo,
		IndicatorCode:   indicator.Code,
		QuestionNumber:  question.Number,
		QuestionText:    question.Text,
		ResponsibleUnit: firstNonEmpty(prov.ResponsibleUnit, question.ResponsibleUnit),
		DataSource:      firstNonEmpty(prov.DataSource, question.DataSource),
		DataMethod:      firstNonEmpty(prov.DataMethod, question.DataMethod),
		Frequency:       firstNonEmpty(prov.Frequency, question.Frequency),
		GRICodes:        indicator.GRICodes,
		TSRSCodes:       indicator.TSRSCodes,
		DataQuality:     prov.DataQuality,
		Notes:           prov.Notes,
	}

	if text, ok := answer.Text(); ok {
		response.AnswerText = &text
	}
	if value, ok := answer.Value(); ok {
		response.AnswerValue.Decimal = value
		response.AnswerValue.Valid = true
	}
	if b, ok := answer.Boolean(); ok {
		response.AnswerBoolean = &b
	}

	return response
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func (s *Service) GetIndicatorResponses(ctx context.Context, tenantID, indicatorCode string) ([]*domain.Response, error) {
	responses, err := s.store.ListIndicatorResponses(ctx, tenantID, indicatorCode)
	if err != nil {
		return nil, fmt.Errorf("store.ListIndicatorResponses: %w", err)
	}

	return responses, nil
}

func (s *Service) GetRecentResponses(ctx context.Context, tenantID string, limit int) ([]*domain.Response, error) {
	if limit <= 0 {
		limit = 5
	}

	responses, err := s.store.ListRecentResponses(ctx, tenantID, limit)
	if err != nil {
		return nil, fmt.Errorf("store.ListRecentResponses: %w", err)
	}

	return responses, nil
}

// RebuildStatuses regenerates the whole status table of a tenant from the
// response rows. Indicators that fell out of the taxonomy since their answers
// were written are skipped, not fatal.
func (s *Service) RebuildStatuses(ctx context.Context, tenantID string) error {
	codes, err := s.store.ListAnsweredIndicatorCodes(ctx, tenantID)
	if err != nil {
		return fmt.Errorf("store.ListAnsweredIndicatorCodes: %w", err)
	}

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(rebuildConcurrency)
	for _, code := range codes {
		code := code
		eg.Go(func() error {
			err := s.RecomputeIndicator(egCtx, tenantID, code)
			if errors.Is(err, constants.ErrIndicatorNotFound) {
				logger.Warnf(egCtx, "skipping orphaned indicator %s", code)
				return nil
			}
			return err
		})
	}

	return eg.Wait()
}

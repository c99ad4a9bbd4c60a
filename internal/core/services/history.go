package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/custodia-labs/shellit/internal/core/domain"
	"github.com/custodia-labs/shellit/internal/core/ports/driven"
	"github.com/custodia-labs/shellit/internal/core/ports/driving"
	"github.com/custodia-labs/shellit/internal/logger"
)

// Ensure HistoryService implements the interface.
var _ driving.HistoryService = (*HistoryService)(nil)

// HistoryService records calculator evaluations. The calculator itself stays
// free of side effects; this service adds persistence on top of it.
type HistoryService struct {
	calculator driving.Calculator
	store      driven.HistoryStore
	log        logger.Logger
}

// NewHistoryService creates a history service. store may be nil, in which
// case evaluations are not recorded.
func NewHistoryService(calculator driving.Calculator, store driven.HistoryStore) *HistoryService {
	return &HistoryService{
		calculator: calculator,
		store:      store,
		log:        logger.For("history"),
	}
}

// Evaluate evaluates expr, records the outcome and returns the display text.
// Empty expressions are neither evaluated nor recorded. Failed evaluations
// are recorded too; only storage failures are returned as errors.
func (s *HistoryService) Evaluate(ctx context.Context, expr string, printExpr bool) (string, error) {
	eval, err := s.Record(ctx, expr)
	if eval.Expression == "" {
		return "", err
	}
	return eval.Display(printExpr), err
}

// Record evaluates expr, records the outcome and returns the evaluation.
// The evaluation is returned even when recording fails.
func (s *HistoryService) Record(ctx context.Context, expr string) (domain.Evaluation, error) {
	eval, err := s.calculator.Evaluate(expr)
	if errors.Is(err, domain.ErrEmptyExpression) {
		return domain.Evaluation{}, nil
	}

	if err := s.record(ctx, eval); err != nil {
		return eval, err
	}
	return eval, nil
}

// Recent returns up to limit evaluations, newest first.
func (s *HistoryService) Recent(ctx context.Context, limit int) ([]domain.Evaluation, error) {
	if s.store == nil {
		return nil, nil
	}
	evals, err := s.store.Recent(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("loading history: %w", err)
	}
	return evals, nil
}

// Clear removes all recorded evaluations.
func (s *HistoryService) Clear(ctx context.Context) error {
	if s.store == nil {
		return nil
	}
	if err := s.store.Clear(ctx); err != nil {
		return fmt.Errorf("clearing history: %w", err)
	}
	return nil
}

func (s *HistoryService) record(ctx context.Context, eval domain.Evaluation) error {
	limit := s.calculator.Settings().HistoryLimit
	if s.store == nil || limit == 0 {
		return nil
	}

	eval.ID = uuid.New().String()
	if err := s.store.Append(ctx, eval); err != nil {
		return fmt.Errorf("recording evaluation: %w", err)
	}
	if err := s.store.Trim(ctx, limit); err != nil {
		return fmt.Errorf("trimming history: %w", err)
	}
	s.log.Debug("recorded %q", eval.Expression)
	return nil
}

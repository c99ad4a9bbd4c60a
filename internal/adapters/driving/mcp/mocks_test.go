package mcp

import (
	"context"
	"fmt"

	"github.com/custodia-labs/shellit/internal/core/domain"
)

// mockCalculator is a mock implementation of driving.Calculator.
type mockCalculator struct {
	results  map[string]string
	failures map[string]string
	settings domain.CalculatorSettings
}

func newMockCalculator() *mockCalculator {
	return &mockCalculator{
		results:  map[string]string{"2+2": "4"},
		failures: map[string]string{"1/0": "result is not a finite number"},
		settings: domain.DefaultCalculatorSettings(),
	}
}

func (m *mockCalculator) Eval(expr string, printExpr bool) string {
	eval, _ := m.Evaluate(expr)
	return eval.Display(printExpr)
}

func (m *mockCalculator) Evaluate(expr string) (domain.Evaluation, error) {
	eval := domain.Evaluation{Expression: expr}
	if msg, ok := m.failures[expr]; ok {
		eval.Err = msg
		return eval, fmt.Errorf("%s: %w", msg, domain.ErrEvaluation)
	}
	result, ok := m.results[expr]
	if !ok {
		eval.Err = "unknown name " + expr
		return eval, fmt.Errorf("%s: %w", eval.Err, domain.ErrEvaluation)
	}
	eval.Result = result
	return eval, nil
}

func (m *mockCalculator) Settings() domain.CalculatorSettings {
	return m.settings
}

func (m *mockCalculator) Configure(settings domain.CalculatorSettings) error {
	m.settings = settings
	return nil
}

// mockHistoryService is a mock implementation of driving.HistoryService.
type mockHistoryService struct {
	calc      *mockCalculator
	evals     []domain.Evaluation
	recorded  []string
	recordErr error
	recentErr error
	limit     int
}

func (m *mockHistoryService) Evaluate(ctx context.Context, expr string, printExpr bool) (string, error) {
	eval, err := m.Record(ctx, expr)
	return eval.Display(printExpr), err
}

func (m *mockHistoryService) Record(_ context.Context, expr string) (domain.Evaluation, error) {
	m.recorded = append(m.recorded, expr)
	eval, _ := m.calc.Evaluate(expr)
	return eval, m.recordErr
}

func (m *mockHistoryService) Recent(_ context.Context, limit int) ([]domain.Evaluation, error) {
	m.limit = limit
	return m.evals, m.recentErr
}

func (m *mockHistoryService) Clear(context.Context) error {
	m.evals = nil
	return nil
}

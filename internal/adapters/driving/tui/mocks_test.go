package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/shellit/internal/core/domain"
)

// MockCalculator implements driving.Calculator for testing.
type MockCalculator struct {
	EvaluateFunc   func(expr string) (domain.Evaluation, error)
	SettingsValue  domain.CalculatorSettings
	ConfigureErr   error
	ConfigureCalls []domain.CalculatorSettings
}

func NewMockCalculator() *MockCalculator {
	return &MockCalculator{SettingsValue: domain.DefaultCalculatorSettings()}
}

func (m *MockCalculator) Eval(expr string, printExpr bool) string {
	eval, _ := m.Evaluate(expr)
	return eval.Display(printExpr)
}

func (m *MockCalculator) Evaluate(expr string) (domain.Evaluation, error) {
	if m.EvaluateFunc != nil {
		return m.EvaluateFunc(expr)
	}
	return domain.Evaluation{Expression: expr, Result: "4"}, nil
}

func (m *MockCalculator) Settings() domain.CalculatorSettings {
	return m.SettingsValue
}

func (m *MockCalculator) Configure(settings domain.CalculatorSettings) error {
	m.ConfigureCalls = append(m.ConfigureCalls, settings)
	if m.ConfigureErr != nil {
		return m.ConfigureErr
	}
	m.SettingsValue = settings
	return nil
}

// MockHistoryService implements driving.HistoryService for testing.
type MockHistoryService struct {
	RecordFunc   func(ctx context.Context, expr string) (domain.Evaluation, error)
	RecentFunc   func(ctx context.Context, limit int) ([]domain.Evaluation, error)
	ClearErr     error
	Cleared      int
}

func (m *MockHistoryService) Evaluate(ctx context.Context, expr string, printExpr bool) (string, error) {
	eval, err := m.Record(ctx, expr)
	return eval.Display(printExpr), err
}

func (m *MockHistoryService) Record(ctx context.Context, expr string) (domain.Evaluation, error) {
	if m.RecordFunc != nil {
		return m.RecordFunc(ctx, expr)
	}
	return domain.Evaluation{Expression: expr, Result: expr}, nil
}

func (m *MockHistoryService) Recent(ctx context.Context, limit int) ([]domain.Evaluation, error) {
	if m.RecentFunc != nil {
		return m.RecentFunc(ctx, limit)
	}
	return nil, nil
}

func (m *MockHistoryService) Clear(context.Context) error {
	m.Cleared++
	return m.ClearErr
}

// MockSettingsService implements driving.SettingsService for testing.
type MockSettingsService struct {
	SettingsValue domain.CalculatorSettings
	GetErr        error
}

func (m *MockSettingsService) Get() (domain.CalculatorSettings, error) {
	return m.SettingsValue, m.GetErr
}

func (m *MockSettingsService) Save(settings domain.CalculatorSettings) error {
	m.SettingsValue = settings
	return nil
}

func (m *MockSettingsService) GetDefaults() domain.CalculatorSettings {
	return domain.DefaultCalculatorSettings()
}

// runCmd executes cmd and flattens batches into their messages.
// Only call it with commands that return immediately.
func runCmd(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var msgs []tea.Msg
		for _, c := range batch {
			msgs = append(msgs, runCmd(c)...)
		}
		return msgs
	}
	return []tea.Msg{msg}
}

// Package messages defines Bubbletea message types for the TUI.
package messages

import (
	"github.com/custodia-labs/shellit/internal/core/domain"
)

// ViewChanged is sent when navigating between views.
type ViewChanged struct {
	View ViewType
}

// ViewType identifies which view is currently active.
type ViewType int

const (
	// ViewCalculator is the expression input and result log.
	ViewCalculator ViewType = iota
	// ViewServices lists registry services and the current one.
	ViewServices
	// ViewHistory shows recorded evaluations.
	ViewHistory
	// ViewHelp is the keybindings view.
	ViewHelp
)

// String returns the string representation of the view type.
func (v ViewType) String() string {
	switch v {
	case ViewCalculator:
		return "calculator"
	case ViewServices:
		return "services"
	case ViewHistory:
		return "history"
	case ViewHelp:
		return "help"
	default:
		return "unknown"
	}
}

// Next returns the view after v in tab order. Help is not in the cycle.
func (v ViewType) Next() ViewType {
	switch v {
	case ViewCalculator:
		return ViewServices
	case ViewServices:
		return ViewHistory
	default:
		return ViewCalculator
	}
}

// EvaluationCompleted carries the display text of one evaluation.
// Failed is set when the evaluation itself failed; Err is a storage error.
type EvaluationCompleted struct {
	Expression string
	Output     string
	Failed     bool
	Err        error
}

// HistoryLoaded carries recorded evaluations, newest first.
type HistoryLoaded struct {
	Evaluations []domain.Evaluation
	Err         error
}

// HistoryCleared signals the history store was emptied.
type HistoryCleared struct {
	Err error
}

// ConfigReloaded is sent from outside the program after the config file
// changed on disk. Err is the reload error, if any.
type ConfigReloaded struct {
	Err error
}

// ServiceChanged is emitted when the current service reference changes.
// Service is nil when the reference was cleared.
type ServiceChanged struct {
	Service *domain.Service
}

// ErrorOccurred signals that an error happened.
type ErrorOccurred struct {
	Err error
}

// Quit signals the application should exit.
type Quit struct{}

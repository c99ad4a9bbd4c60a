// Package tui provides the interactive terminal calculator for shellit.
// It is a driving adapter: everything it does goes through driving ports.
package tui

import (
	"github.com/custodia-labs/shellit/internal/core/ports/driving"
)

// Ports aggregates the driving ports the TUI needs.
type Ports struct {
	// Calculator evaluates expressions. Required.
	Calculator driving.Calculator

	// Registry owns the services listed in the services view. Required.
	Registry driving.ServiceRegistry

	// Current is the service the UI is bound to. Required.
	// The TUI observes it but never closes it.
	Current driving.ServiceRef

	// History records evaluations. Optional; without it the
	// calculator evaluates directly and the history view is empty.
	History driving.HistoryService

	// Settings is re-read after the config file changes. Optional.
	Settings driving.SettingsService
}

// NewPorts creates a Ports aggregate with the required ports set.
func NewPorts(
	calculator driving.Calculator,
	registry driving.ServiceRegistry,
	current driving.ServiceRef,
) *Ports {
	return &Ports{
		Calculator: calculator,
		Registry:   registry,
		Current:    current,
	}
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p == nil {
		return ErrInvalidPorts
	}
	if p.Calculator == nil {
		return ErrMissingCalculator
	}
	if p.Registry == nil {
		return ErrMissingRegistry
	}
	if p.Current == nil {
		return ErrMissingServiceRef
	}
	return nil
}

package mcp

import (
	"github.com/custodia-labs/shellit/internal/core/ports/driving"
)

// Ports aggregates the driving ports the MCP server needs.
type Ports struct {
	// Calculator evaluates expressions.
	Calculator driving.Calculator

	// History records evaluations and serves the history tool and
	// resource. Optional.
	History driving.HistoryService
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p.Calculator == nil {
		return ErrMissingCalculator
	}
	return nil
}

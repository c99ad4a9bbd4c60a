package tui

import "errors"

// ErrMissingCalculator is returned when the calculator is not provided.
var ErrMissingCalculator = errors.New("tui: calculator is required")

// ErrMissingRegistry is returned when the service registry is not provided.
var ErrMissingRegistry = errors.New("tui: service registry is required")

// ErrMissingServiceRef is returned when the current service reference is not provided.
var ErrMissingServiceRef = errors.New("tui: service reference is required")

// ErrInvalidPorts is returned when no ports are given at all.
var ErrInvalidPorts = errors.New("tui: invalid ports configuration")

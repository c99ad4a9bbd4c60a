// Package domain defines the core entities for shellit.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Service: An externally owned shell service with identity and a
//     destruction hook
//   - Signal: A callback list used for change and destruction notifications
//   - Evaluation: The outcome of evaluating a calculator expression
//   - CalculatorSettings: Formatting and angle options for the calculator
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain

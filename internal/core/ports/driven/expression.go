package driven

import "github.com/custodia-labs/shellit/internal/core/domain"

// ExpressionEngine computes the value of a textual expression.
// Implementations must be stateless and safe for concurrent use.
type ExpressionEngine interface {
	// Evaluate parses and runs expression. angle selects how
	// trigonometric functions read their arguments.
	// Returns the raw result (int, float64, bool, string, ...) or an error
	// describing why the expression could not be evaluated.
	Evaluate(expression string, angle domain.AngleUnit) (any, error)
}

package driving

import "github.com/custodia-labs/shellit/internal/core/domain"

// Calculator evaluates expressions typed by the user.
type Calculator interface {
	// Eval returns the formatted result of expr. With printExpr, the
	// expression is echoed before the result. Failures are returned as
	// an "error: ..." string, never as a Go error.
	Eval(expr string, printExpr bool) string

	// Evaluate returns the structured evaluation of expr.
	// Failed evaluations return an error wrapping domain.ErrEvaluation
	// alongside an Evaluation whose Err field is set.
	Evaluate(expr string) (domain.Evaluation, error)

	// Settings returns the settings the calculator formats with.
	Settings() domain.CalculatorSettings

	// Configure replaces the settings used by later evaluations.
	// Returns domain.ErrInvalidInput for invalid settings.
	Configure(settings domain.CalculatorSettings) error
}

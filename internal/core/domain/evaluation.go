package domain

import "time"

// Evaluation records the outcome of evaluating one calculator expression.
type Evaluation struct {
	// ID is the unique identifier, assigned when the evaluation is stored.
	ID string

	// Expression is the input as typed, trimmed of surrounding whitespace.
	Expression string

	// Result is the formatted result, without the echoed expression.
	// Empty when Err is set.
	Result string

	// Value is the raw value produced by the engine. Not persisted.
	Value any

	// Err is the error message for failed evaluations.
	Err string

	// EvaluatedAt is when the evaluation ran.
	EvaluatedAt time.Time
}

// Failed reports whether the evaluation produced an error.
func (e Evaluation) Failed() bool {
	return e.Err != ""
}

// Display renders the evaluation the way the calculator presents it.
// With echo, the expression is shown alongside the result.
func (e Evaluation) Display(echo bool) string {
	if e.Failed() {
		return "error: " + e.Err
	}
	if echo {
		return e.Expression + " = " + e.Result
	}
	return e.Result
}

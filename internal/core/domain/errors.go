package domain

import (
	"errors"
	"fmt"
)

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// Calculator Errors.

	// ErrEvaluation indicates an expression could not be evaluated.
	ErrEvaluation = errors.New("evaluation failed")

	// ErrEmptyExpression indicates the expression contained no input.
	ErrEmptyExpression = errors.New("empty expression")

	// ErrNonFinite indicates the result was infinite or not a number,
	// as produced by 1/0 or sqrt(-1).
	ErrNonFinite = errors.New("result is not a finite number")
)

// EvalError describes a failed evaluation of a single expression.
// It unwraps to both ErrEvaluation and the underlying cause.
type EvalError struct {
	Expression string
	Err        error
}

func (e *EvalError) Error() string {
	return fmt.Sprintf("evaluating %q: %v", e.Expression, e.Err)
}

// Unwrap exposes ErrEvaluation and the cause to errors.Is.
func (e *EvalError) Unwrap() []error {
	return []error{ErrEvaluation, e.Err}
}

// Message returns the cause alone, without the expression prefix.
func (e *EvalError) Message() string {
	if e.Err == nil {
		return ErrEvaluation.Error()
	}
	return e.Err.Error()
}

// Package exprlang implements driven.ExpressionEngine with
// github.com/expr-lang/expr.
package exprlang

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/file"

	"github.com/custodia-labs/shellit/internal/core/domain"
	"github.com/custodia-labs/shellit/internal/core/ports/driven"
)

// Ensure Engine implements the interface.
var _ driven.ExpressionEngine = (*Engine)(nil)

// Engine compiles and runs expressions against a math environment.
// Compile options are built once per angle unit; Engine is safe for
// concurrent use.
type Engine struct {
	env     map[string]any
	options map[domain.AngleUnit][]expr.Option
}

// New creates an engine with constants pi and e and the math functions.
func New() *Engine {
	env := map[string]any{
		"pi": math.Pi,
		"e":  math.E,
	}
	e := &Engine{
		env:     env,
		options: make(map[domain.AngleUnit][]expr.Option, 2),
	}
	for _, unit := range []domain.AngleUnit{domain.AngleRadians, domain.AngleDegrees} {
		e.options[unit] = append([]expr.Option{expr.Env(env)}, functions(unit)...)
	}
	return e
}

// Evaluate compiles and runs expression.
func (e *Engine) Evaluate(expression string, angle domain.AngleUnit) (any, error) {
	opts, ok := e.options[angle]
	if !ok {
		return nil, fmt.Errorf("angle unit %q: %w", angle, domain.ErrInvalidInput)
	}

	program, err := expr.Compile(expression, opts...)
	if err != nil {
		return nil, cleanError(err)
	}
	out, err := expr.Run(program, e.env)
	if err != nil {
		return nil, cleanError(err)
	}
	return out, nil
}

// Names returns the constant and function names the engine defines.
func (e *Engine) Names() []string {
	names := make([]string, 0, len(e.env)+len(unary)+len(binary))
	for name := range e.env {
		names = append(names, name)
	}
	for _, fn := range unary {
		names = append(names, fn.name)
	}
	for _, fn := range binary {
		names = append(names, fn.name)
	}
	return names
}

// cleanError drops the source excerpt expr appends to its messages.
func cleanError(err error) error {
	var fileErr *file.Error
	if errors.As(err, &fileErr) && fileErr.Message != "" {
		return errors.New(fileErr.Message)
	}
	msg, _, _ := strings.Cut(err.Error(), "\n")
	return errors.New(msg)
}

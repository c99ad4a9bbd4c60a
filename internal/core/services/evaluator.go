package services

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"sync/atomic"
	"time"

	"github.com/custodia-labs/shellit/internal/core/domain"
	"github.com/custodia-labs/shellit/internal/core/ports/driven"
	"github.com/custodia-labs/shellit/internal/core/ports/driving"
	"github.com/custodia-labs/shellit/internal/logger"
)

// Ensure Evaluator implements the interface.
var _ driving.Calculator = (*Evaluator)(nil)

// Evaluator computes expressions through an ExpressionEngine and formats
// the results for display. It is safe for concurrent use; Configure swaps
// settings atomically between evaluations.
type Evaluator struct {
	engine   driven.ExpressionEngine
	settings atomic.Pointer[domain.CalculatorSettings]
	log      logger.Logger
}

// NewEvaluator creates an evaluator. Invalid settings fall back to defaults.
func NewEvaluator(engine driven.ExpressionEngine, settings domain.CalculatorSettings) *Evaluator {
	if err := settings.Validate(); err != nil {
		settings = domain.DefaultCalculatorSettings()
	}
	e := &Evaluator{
		engine: engine,
		log:    logger.For("calculator"),
	}
	e.settings.Store(&settings)
	return e
}

// WithSettings returns an independent evaluator sharing e's engine.
func (e *Evaluator) WithSettings(settings domain.CalculatorSettings) *Evaluator {
	return NewEvaluator(e.engine, settings)
}

// Settings returns the settings the evaluator formats with.
func (e *Evaluator) Settings() domain.CalculatorSettings {
	return *e.settings.Load()
}

// Configure replaces the settings used by later evaluations.
func (e *Evaluator) Configure(settings domain.CalculatorSettings) error {
	if err := settings.Validate(); err != nil {
		return fmt.Errorf("calculator settings: %w", err)
	}
	e.settings.Store(&settings)
	e.log.Debug("configured precision=%d angle=%s", settings.Precision, settings.AngleUnit)
	return nil
}

// Eval evaluates expr and returns display text. An empty expression yields
// an empty string; failures yield "error: <message>".
func (e *Evaluator) Eval(expr string, printExpr bool) string {
	if strings.TrimSpace(expr) == "" {
		return ""
	}
	eval, _ := e.Evaluate(expr)
	return eval.Display(printExpr)
}

// Evaluate evaluates expr and returns the structured result. On failure the
// returned Evaluation carries the message and the error is a *domain.EvalError.
func (e *Evaluator) Evaluate(expr string) (eval domain.Evaluation, err error) {
	eval = domain.Evaluation{
		Expression:  strings.TrimSpace(expr),
		EvaluatedAt: time.Now().UTC(),
	}
	if eval.Expression == "" {
		return e.fail(eval, domain.ErrEmptyExpression)
	}
	if e.engine == nil {
		return e.fail(eval, fmt.Errorf("no expression engine configured"))
	}

	// Engine panics are reported as evaluation errors.
	defer func() {
		if r := recover(); r != nil {
			eval, err = e.fail(eval, fmt.Errorf("%v", r))
		}
	}()

	settings := e.Settings()
	e.log.Debug("evaluating %q (angle=%s)", eval.Expression, settings.AngleUnit)
	value, err := e.engine.Evaluate(eval.Expression, settings.AngleUnit)
	if err != nil {
		return e.fail(eval, err)
	}

	text, err := FormatValue(value, settings.Precision)
	if err != nil {
		return e.fail(eval, err)
	}

	eval.Value = value
	eval.Result = text
	return eval, nil
}

func (e *Evaluator) fail(eval domain.Evaluation, cause error) (domain.Evaluation, error) {
	evalErr := &domain.EvalError{Expression: eval.Expression, Err: cause}
	eval.Err = evalErr.Message()
	e.log.Debug("%v", evalErr)
	return eval, evalErr
}

// FormatValue renders an engine result as text. Floats use precision
// significant digits (domain.ShortestPrecision for the shortest exact form).
// Infinite and NaN floats are rejected with domain.ErrNonFinite.
func FormatValue(value any, precision int) (string, error) {
	switch v := value.(type) {
	case nil:
		return "nil", nil
	case float64:
		return formatFloat(v, precision)
	case float32:
		return formatFloat(float64(v), precision)
	case int:
		return strconv.Itoa(v), nil
	case int64:
		return strconv.FormatInt(v, 10), nil
	case int32:
		return strconv.FormatInt(int64(v), 10), nil
	case uint:
		return strconv.FormatUint(uint64(v), 10), nil
	case uint64:
		return strconv.FormatUint(v, 10), nil
	case bool:
		return strconv.FormatBool(v), nil
	case string:
		return v, nil
	case fmt.Stringer:
		return v.String(), nil
	default:
		return fmt.Sprint(v), nil
	}
}

func formatFloat(v float64, precision int) (string, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return "", domain.ErrNonFinite
	}
	if v == 0 {
		// Avoid printing "-0".
		return "0", nil
	}
	return strconv.FormatFloat(v, 'g', precision, 64), nil
}

package exprlang

import (
	"fmt"
	"math"

	"github.com/expr-lang/expr"

	"github.com/custodia-labs/shellit/internal/core/domain"
)

type unaryFunc struct {
	name string
	fn   func(float64) float64
	// angleIn converts the argument to radians; angleOut converts the
	// result from radians.
	angleIn  bool
	angleOut bool
}

type binaryFunc struct {
	name string
	fn   func(float64, float64) float64
}

var unary = []unaryFunc{
	{name: "sqrt", fn: math.Sqrt},
	{name: "cbrt", fn: math.Cbrt},
	{name: "sin", fn: math.Sin, angleIn: true},
	{name: "cos", fn: math.Cos, angleIn: true},
	{name: "tan", fn: math.Tan, angleIn: true},
	{name: "asin", fn: math.Asin, angleOut: true},
	{name: "acos", fn: math.Acos, angleOut: true},
	{name: "atan", fn: math.Atan, angleOut: true},
	{name: "ln", fn: math.Log},
	{name: "log", fn: math.Log10},
	{name: "log2", fn: math.Log2},
	{name: "exp", fn: math.Exp},
}

var binary = []binaryFunc{
	{name: "pow", fn: math.Pow},
	{name: "hypot", fn: math.Hypot},
}

func functions(unit domain.AngleUnit) []expr.Option {
	opts := make([]expr.Option, 0, len(unary)+len(binary))
	for _, u := range unary {
		opts = append(opts, expr.Function(u.name, unaryAdapter(u, unit)))
	}
	for _, b := range binary {
		opts = append(opts, expr.Function(b.name, binaryAdapter(b)))
	}
	return opts
}

func unaryAdapter(u unaryFunc, unit domain.AngleUnit) func(params ...any) (any, error) {
	degrees := unit == domain.AngleDegrees
	return func(params ...any) (any, error) {
		if len(params) != 1 {
			return nil, fmt.Errorf("%s expects 1 argument, got %d", u.name, len(params))
		}
		x, err := toFloat(u.name, params[0])
		if err != nil {
			return nil, err
		}
		if degrees && u.angleIn {
			x = x * math.Pi / 180
		}
		y := u.fn(x)
		if degrees && u.angleOut {
			y = y * 180 / math.Pi
		}
		return y, nil
	}
}

func binaryAdapter(b binaryFunc) func(params ...any) (any, error) {
	return func(params ...any) (any, error) {
		if len(params) != 2 {
			return nil, fmt.Errorf("%s expects 2 arguments, got %d", b.name, len(params))
		}
		x, err := toFloat(b.name, params[0])
		if err != nil {
			return nil, err
		}
		y, err := toFloat(b.name, params[1])
		if err != nil {
			return nil, err
		}
		return b.fn(x, y), nil
	}
}

func toFloat(name string, v any) (float64, error) {
	switch n := v.(type) {
	case float64:
		return n, nil
	case float32:
		return float64(n), nil
	case int:
		return float64(n), nil
	case int64:
		return float64(n), nil
	case int32:
		return float64(n), nil
	case uint:
		return float64(n), nil
	case uint64:
		return float64(n), nil
	default:
		return 0, fmt.Errorf("%s: expected a number, got %T", name, v)
	}
}

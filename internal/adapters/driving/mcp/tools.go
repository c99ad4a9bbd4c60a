package mcp

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/shellit/internal/core/domain"
)

const defaultHistoryLimit = 20

// EvaluateInput is the input schema for the evaluate tool.
type EvaluateInput struct {
	Expression string `json:"expression" jsonschema:"the expression to evaluate, e.g. sqrt(2) * pi"`
	Echo       *bool  `json:"echo,omitempty" jsonschema:"prefix the result with the expression (defaults to the echo_input setting)"`
}

// EvaluateOutput is the output schema for the evaluate tool.
// Exactly one of Result and Error is set.
type EvaluateOutput struct {
	Result string `json:"result,omitempty"`
	Error  string `json:"error,omitempty"`
}

// HistoryInput is the input schema for the history tool.
type HistoryInput struct {
	Limit int `json:"limit,omitempty" jsonschema:"maximum number of evaluations to return (default 20, 0 for default)"`
}

// HistoryOutput is the output schema for the history tool.
type HistoryOutput struct {
	Evaluations []EvaluationOutput `json:"evaluations"`
	Count       int                `json:"count"`
}

// EvaluationOutput represents one recorded evaluation.
type EvaluationOutput struct {
	Expression  string    `json:"expression"`
	Result      string    `json:"result,omitempty"`
	Error       string    `json:"error,omitempty"`
	EvaluatedAt time.Time `json:"evaluated_at"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name: "evaluate",
		Description: "Evaluate a calculator expression. Supports + - * / % ^, " +
			"pi, e, sqrt, cbrt, sin, cos, tan, asin, acos, atan, ln, log, log2, exp, pow and hypot.",
	}, s.handleEvaluate)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "history",
		Description: "List recent calculations, newest first",
	}, s.handleHistory)
}

// handleEvaluate handles the evaluate tool invocation.
// Evaluation failures are reported in the output, not as tool errors.
func (s *Server) handleEvaluate(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input EvaluateInput,
) (*mcp.CallToolResult, EvaluateOutput, error) {
	expr := strings.TrimSpace(input.Expression)
	if expr == "" {
		return nil, EvaluateOutput{}, fmt.Errorf("expression is required: %w", domain.ErrEmptyExpression)
	}
	if err := s.wait(ctx); err != nil {
		return nil, EvaluateOutput{}, err
	}

	echo := s.ports.Calculator.Settings().EchoInput
	if input.Echo != nil {
		echo = *input.Echo
	}

	eval := s.evaluate(ctx, expr)
	if eval.Failed() {
		return nil, EvaluateOutput{Error: eval.Err}, nil
	}
	return nil, EvaluateOutput{Result: eval.Display(echo)}, nil
}

// evaluate records through history when available. Storage errors are
// logged; the caller still gets the evaluation.
func (s *Server) evaluate(ctx context.Context, expr string) domain.Evaluation {
	if s.ports.History == nil {
		eval, _ := s.ports.Calculator.Evaluate(expr)
		return eval
	}
	eval, err := s.ports.History.Record(ctx, expr)
	if err != nil {
		s.log.Warn("recording %q: %v", expr, err)
	}
	return eval
}

// handleHistory handles the history tool invocation.
func (s *Server) handleHistory(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input HistoryInput,
) (*mcp.CallToolResult, HistoryOutput, error) {
	limit := input.Limit
	if limit <= 0 {
		limit = defaultHistoryLimit
	}

	evals, err := s.recent(ctx, limit)
	if err != nil {
		return nil, HistoryOutput{}, err
	}

	output := HistoryOutput{
		Evaluations: toEvaluationOutputs(evals),
		Count:       len(evals),
	}
	return nil, output, nil
}

func (s *Server) recent(ctx context.Context, limit int) ([]domain.Evaluation, error) {
	if s.ports.History == nil {
		return nil, nil
	}
	evals, err := s.ports.History.Recent(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("loading history: %w", err)
	}
	return evals, nil
}

func toEvaluationOutputs(evals []domain.Evaluation) []EvaluationOutput {
	out := make([]EvaluationOutput, len(evals))
	for i, e := range evals {
		out[i] = EvaluationOutput{
			Expression:  e.Expression,
			Result:      e.Result,
			Error:       e.Err,
			EvaluatedAt: e.EvaluatedAt,
		}
	}
	return out
}

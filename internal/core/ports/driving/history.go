package driving

import (
	"context"

	"github.com/custodia-labs/shellit/internal/core/domain"
)

// HistoryService evaluates expressions and remembers the results.
type HistoryService interface {
	// Evaluate runs expr through the calculator, records it, and returns
	// the display string Calculator.Eval would return.
	Evaluate(ctx context.Context, expr string, printExpr bool) (string, error)

	// Record runs expr through the calculator, records it, and returns the
	// structured evaluation. Its Err field reports evaluation failures; the
	// returned error is only a storage failure. An empty expression yields a
	// zero Evaluation.
	Record(ctx context.Context, expr string) (domain.Evaluation, error)

	// Recent returns up to limit evaluations, newest first.
	Recent(ctx context.Context, limit int) ([]domain.Evaluation, error)

	// Clear removes all recorded evaluations.
	Clear(ctx context.Context) error
}

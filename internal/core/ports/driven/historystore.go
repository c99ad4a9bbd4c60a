package driven

import (
	"context"

	"github.com/custodia-labs/shellit/internal/core/domain"
)

// HistoryStore persists calculator evaluations.
type HistoryStore interface {
	// Append stores an evaluation. The ID must be set.
	Append(ctx context.Context, eval domain.Evaluation) error

	// Recent returns up to limit evaluations, newest first.
	// A limit <= 0 returns all evaluations.
	Recent(ctx context.Context, limit int) ([]domain.Evaluation, error)

	// Trim deletes all but the newest keep evaluations.
	Trim(ctx context.Context, keep int) error

	// Clear deletes every evaluation.
	Clear(ctx context.Context) error

	// Count returns the number of stored evaluations.
	Count(ctx context.Context) (int, error)
}

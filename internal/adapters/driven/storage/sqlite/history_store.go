package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/custodia-labs/shellit/internal/core/domain"
	"github.com/custodia-labs/shellit/internal/core/ports/driven"
)

// historyStore implements driven.HistoryStore.
type historyStore struct {
	store *Store
}

var _ driven.HistoryStore = (*historyStore)(nil)

// Append stores an evaluation.
func (s *historyStore) Append(ctx context.Context, eval domain.Evaluation) error {
	if eval.ID == "" {
		return fmt.Errorf("evaluation id: %w", domain.ErrInvalidInput)
	}
	if eval.EvaluatedAt.IsZero() {
		eval.EvaluatedAt = time.Now()
	}

	_, err := s.store.db.ExecContext(ctx, `
		INSERT INTO evaluations (id, expression, result, error, evaluated_at)
		VALUES (?, ?, ?, ?, ?)
	`, eval.ID, eval.Expression, eval.Result, eval.Err, eval.EvaluatedAt.UTC().Format(time.RFC3339Nano))
	if err != nil {
		return fmt.Errorf("inserting evaluation: %w", err)
	}
	return nil
}

// Recent returns up to limit evaluations, newest first.
func (s *historyStore) Recent(ctx context.Context, limit int) ([]domain.Evaluation, error) {
	// SQLite treats a negative LIMIT as no limit.
	if limit <= 0 {
		limit = -1
	}

	rows, err := s.store.db.QueryContext(ctx, `
		SELECT id, expression, result, error, evaluated_at
		FROM evaluations
		ORDER BY seq DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying evaluations: %w", err)
	}
	defer rows.Close()

	var evals []domain.Evaluation
	for rows.Next() {
		eval, err := scanEvaluation(rows)
		if err != nil {
			return nil, err
		}
		evals = append(evals, eval)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating evaluations: %w", err)
	}
	return evals, nil
}

// Trim deletes all but the newest keep evaluations.
func (s *historyStore) Trim(ctx context.Context, keep int) error {
	if keep < 0 {
		keep = 0
	}

	_, err := s.store.db.ExecContext(ctx, `
		DELETE FROM evaluations
		WHERE seq NOT IN (SELECT seq FROM evaluations ORDER BY seq DESC LIMIT ?)
	`, keep)
	if err != nil {
		return fmt.Errorf("trimming evaluations: %w", err)
	}
	return nil
}

// Clear deletes every evaluation.
func (s *historyStore) Clear(ctx context.Context) error {
	if _, err := s.store.db.ExecContext(ctx, "DELETE FROM evaluations"); err != nil {
		return fmt.Errorf("clearing evaluations: %w", err)
	}
	return nil
}

// Count returns the number of stored evaluations.
func (s *historyStore) Count(ctx context.Context) (int, error) {
	var count int
	row := s.store.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM evaluations")
	if err := row.Scan(&count); err != nil {
		return 0, fmt.Errorf("counting evaluations: %w", err)
	}
	return count, nil
}

func scanEvaluation(rows *sql.Rows) (domain.Evaluation, error) {
	var (
		eval        domain.Evaluation
		evaluatedAt string
	)
	if err := rows.Scan(&eval.ID, &eval.Expression, &eval.Result, &eval.Err, &evaluatedAt); err != nil {
		return domain.Evaluation{}, fmt.Errorf("scanning evaluation: %w", err)
	}

	t, err := time.Parse(time.RFC3339Nano, evaluatedAt)
	if err != nil {
		return domain.Evaluation{}, fmt.Errorf("parsing evaluated_at %q: %w", evaluatedAt, err)
	}
	eval.EvaluatedAt = t
	return eval, nil
}

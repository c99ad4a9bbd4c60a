package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/custodia-labs/shellit/internal/core/domain"
	"github.com/custodia-labs/shellit/internal/core/ports/driven"
)

// Ensure HistoryStore implements the interface.
var _ driven.HistoryStore = (*HistoryStore)(nil)

// HistoryStore is an in-memory implementation of driven.HistoryStore.
// Evaluations are kept oldest first.
type HistoryStore struct {
	mu    sync.RWMutex
	evals []domain.Evaluation
}

// NewHistoryStore creates a new in-memory history store.
func NewHistoryStore() *HistoryStore {
	return &HistoryStore{}
}

// Append stores an evaluation.
func (s *HistoryStore) Append(_ context.Context, eval domain.Evaluation) error {
	if eval.ID == "" {
		return fmt.Errorf("evaluation id: %w", domain.ErrInvalidInput)
	}
	eval.Value = nil

	s.mu.Lock()
	defer s.mu.Unlock()
	s.evals = append(s.evals, eval)
	return nil
}

// Recent returns up to limit evaluations, newest first.
func (s *HistoryStore) Recent(_ context.Context, limit int) ([]domain.Evaluation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	n := len(s.evals)
	if limit > 0 && limit < n {
		n = limit
	}
	result := make([]domain.Evaluation, 0, n)
	for i := len(s.evals) - 1; i >= 0 && len(result) < n; i-- {
		result = append(result, s.evals[i])
	}
	return result, nil
}

// Trim deletes all but the newest keep evaluations.
func (s *HistoryStore) Trim(_ context.Context, keep int) error {
	if keep < 0 {
		keep = 0
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.evals) > keep {
		s.evals = append([]domain.Evaluation(nil), s.evals[len(s.evals)-keep:]...)
	}
	return nil
}

// Clear deletes every evaluation.
func (s *HistoryStore) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.evals = nil
	return nil
}

// Count returns the number of stored evaluations.
func (s *HistoryStore) Count(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.evals), nil
}

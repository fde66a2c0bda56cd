package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/simaogato/wealthflow-dashboard/internal/domain"
)

// transactionRepository implements domain.TransactionRepository in process memory
// The slice is kept newest first; the mutex serialises concurrent RPC handlers.
type transactionRepository struct {
	mu           sync.RWMutex
	transactions []*domain.Transaction
}

// NewTransactionRepository creates an empty in-memory transaction repository
func NewTransactionRepository() domain.TransactionRepository {
	return &transactionRepository{
		transactions: make([]*domain.Transaction, 0),
	}
}

// Prepend inserts the transaction at the front of the collection
func (r *transactionRepository) Prepend(ctx context.Context, tx *domain.Transaction) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	stored := *tx
	r.transactions = append([]*domain.Transaction{&stored}, r.transactions...)

	return nil
}

// Delete removes the transaction with the given ID, reporting whether one was found
func (r *transactionRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for i, tx := range r.transactions {
		if tx.ID == id {
			r.transactions = append(r.transactions[:i:i], r.transactions[i+1:]...)
			return true, nil
		}
	}

	return false, nil
}

// List returns copies of all transactions in collection order
func (r *transactionRepository) List(ctx context.Context) ([]*domain.Transaction, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*domain.Transaction, 0, len(r.transactions))
	for _, tx := range r.transactions {
		copied := *tx
		out = append(out, &copied)
	}

	return out, nil
}

// Count returns the number of stored transactions
func (r *transactionRepository) Count(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.transactions), nil
}

package domain

import (
	"context"

	"github.com/google/uuid"
)

// TransactionRepository defines the interface for the transaction collection.
// The collection is ordered with the most recently added transaction first.
type TransactionRepository interface {
	// Prepend inserts a transaction at the front of the collection
	Prepend(ctx context.Context, tx *Transaction) error

	// Delete removes the transaction with the given ID
	// Returns false (and no error) if no such transaction exists
	Delete(ctx context.Context, id uuid.UUID) (bool, error)

	// List returns every transaction in collection order
	// The returned slice is a copy; reordering it does not affect the collection
	List(ctx context.Context) ([]*Transaction, error)

	// Count returns the number of transactions in the collection
	Count(ctx context.Context) (int, error)
}

package memory

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/simaogato/wealthflow-dashboard/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleTransaction(description string) *domain.Transaction {
	return &domain.Transaction{
		ID:          uuid.New(),
		Type:        domain.TransactionTypeExpense,
		Amount:      decimal.NewFromInt(42),
		Category:    domain.CategoryFood,
		Description: description,
		Date:        time.Date(2024, 12, 3, 0, 0, 0, 0, time.UTC),
	}
}

func TestTransactionRepository_PrependKeepsNewestFirst(t *testing.T) {
	ctx := context.Background()
	repo := NewTransactionRepository()

	first := sampleTransaction("first")
	second := sampleTransaction("second")
	third := sampleTransaction("third")

	require.NoError(t, repo.Prepend(ctx, first))
	require.NoError(t, repo.Prepend(ctx, second))
	require.NoError(t, repo.Prepend(ctx, third))

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "third", list[0].Description)
	assert.Equal(t, "second", list[1].Description)
	assert.Equal(t, "first", list[2].Description)

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, count)
}

func TestTransactionRepository_Delete(t *testing.T) {
	ctx := context.Background()
	repo := NewTransactionRepository()

	a := sampleTransaction("a")
	b := sampleTransaction("b")
	c := sampleTransaction("c")
	for _, tx := range []*domain.Transaction{a, b, c} {
		require.NoError(t, repo.Prepend(ctx, tx))
	}

	found, err := repo.Delete(ctx, b.ID)
	require.NoError(t, err)
	assert.True(t, found)

	found, err = repo.Delete(ctx, b.ID)
	require.NoError(t, err)
	assert.False(t, found, "second delete is a no-op")

	found, err = repo.Delete(ctx, uuid.New())
	require.NoError(t, err)
	assert.False(t, found)

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, c.ID, list[0].ID)
	assert.Equal(t, a.ID, list[1].ID)
}

func TestTransactionRepository_ListReturnsCopies(t *testing.T) {
	ctx := context.Background()
	repo := NewTransactionRepository()

	tx := sampleTransaction("original")
	require.NoError(t, repo.Prepend(ctx, tx))

	// Mutating the caller's value after insert does not leak into the store
	tx.Description = "changed by caller"

	list, err := repo.List(ctx)
	require.NoError(t, err)
	list[0].Description = "changed by reader"
	list[0] = nil

	again, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, again, 1)
	assert.Equal(t, "original", again[0].Description)
}

func TestTransactionRepository_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	repo := NewTransactionRepository()

	assert.ErrorIs(t, repo.Prepend(ctx, sampleTransaction("x")), context.Canceled)

	_, err := repo.List(ctx)
	assert.ErrorIs(t, err, context.Canceled)

	_, err = repo.Delete(ctx, uuid.New())
	assert.ErrorIs(t, err, context.Canceled)

	_, err = repo.Count(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestTransactionRepository_ConcurrentPrepend(t *testing.T) {
	ctx := context.Background()
	repo := NewTransactionRepository()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, repo.Prepend(ctx, sampleTransaction("concurrent")))
		}()
	}
	wg.Wait()

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 50, count)
}

package seeder

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/simaogato/wealthflow-dashboard/internal/adapter/repository/memory"
	"github.com/simaogato/wealthflow-dashboard/internal/domain"
	"github.com/simaogato/wealthflow-dashboard/internal/usecase/aggregate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockTransactionRepository is a mock implementation of TransactionRepository
type MockTransactionRepository struct {
	mock.Mock
}

func (m *MockTransactionRepository) Prepend(ctx context.Context, tx *domain.Transaction) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *MockTransactionRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockTransactionRepository) List(ctx context.Context) ([]*domain.Transaction, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) Count(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func TestSampleSeeder_Seed_EmptyCollection(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewTransactionRepository()
	seeder := NewSampleSeeder(repo)

	inserted, err := seeder.Seed(ctx)

	require.NoError(t, err)
	assert.Equal(t, len(SampleTransactions), inserted)

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, len(SampleTransactions))
	assert.Equal(t, "Monthly Salary", list[0].Description)
	assert.Equal(t, "2024-12-01", domain.FormatDate(list[0].Date))
	assert.Equal(t, "Concert Tickets", list[len(list)-1].Description)

	ids := make(map[uuid.UUID]bool)
	for _, tx := range list {
		assert.NoError(t, tx.Validate())
		assert.False(t, ids[tx.ID])
		ids[tx.ID] = true
	}

	summary := aggregate.Summarize(list)
	assert.True(t, decimal.NewFromInt(20950).Equal(summary.TotalIncome))
	assert.True(t, decimal.NewFromInt(2174).Equal(summary.TotalExpenses))
}

func TestSampleSeeder_Seed_SkipsWhenDataExists(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockTransactionRepository)
	seeder := NewSampleSeeder(mockRepo)

	mockRepo.On("Count", ctx).Return(3, nil)

	inserted, err := seeder.Seed(ctx)

	assert.NoError(t, err)
	assert.Equal(t, 0, inserted)
	mockRepo.AssertNotCalled(t, "Prepend", mock.Anything, mock.Anything)
	mockRepo.AssertExpectations(t)
}

func TestSampleSeeder_Seed_CountError(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockTransactionRepository)
	seeder := NewSampleSeeder(mockRepo)

	mockRepo.On("Count", ctx).Return(0, errors.New("unavailable"))

	_, err := seeder.Seed(ctx)

	assert.Error(t, err)
	mockRepo.AssertExpectations(t)
}

func TestSampleSeeder_Seed_PrependError(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockTransactionRepository)
	seeder := NewSampleSeeder(mockRepo)

	mockRepo.On("Count", ctx).Return(0, nil)
	mockRepo.On("Prepend", ctx, mock.AnythingOfType("*domain.Transaction")).Return(errors.New("write failed")).Once()

	inserted, err := seeder.Seed(ctx)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "0 of 16 inserted")
	assert.Equal(t, 0, inserted)
	mockRepo.AssertExpectations(t)
}

func TestSampleSeeder_Seed_PartialInsertReportsCount(t *testing.T) {
	ctx := context.Background()
	repo := new(MockTransactionRepository)
	seeder := NewSampleSeeder(repo)
	writeErr := errors.New("write failed")

	repo.On("Count", ctx).Return(0, nil)
	repo.On("Prepend", ctx, mock.AnythingOfType("*domain.Transaction")).Return(nil).Times(3)
	repo.On("Prepend", ctx, mock.AnythingOfType("*domain.Transaction")).Return(writeErr).Once()

	inserted, err := seeder.Seed(ctx)

	require.Error(t, err)
	assert.ErrorIs(t, err, writeErr)
	assert.Contains(t, err.Error(), "3 of 16 inserted")
	assert.Equal(t, 3, inserted)
	repo.AssertExpectations(t)
}

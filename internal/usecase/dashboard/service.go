package dashboard

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/simaogato/wealthflow-dashboard/internal/domain"
	"github.com/simaogato/wealthflow-dashboard/internal/usecase/aggregate"
)

// Clock returns the current time; it decides what "current month" means for the monthly views
type Clock func() time.Time

// DashboardService owns the transaction collection and derives every dashboard view from it
type DashboardService struct {
	TransactionRepo domain.TransactionRepository

	clock  Clock
	newID  func() uuid.UUID
	logger *slog.Logger
}

// Option customises a DashboardService
type Option func(*DashboardService)

// WithClock overrides the wall clock used for month-relative views
func WithClock(clock Clock) Option {
	return func(s *DashboardService) {
		s.clock = clock
	}
}

// WithLogger sets the structured logger
func WithLogger(logger *slog.Logger) Option {
	return func(s *DashboardService) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewDashboardService creates a new DashboardService instance
func NewDashboardService(transactionRepo domain.TransactionRepository, opts ...Option) *DashboardService {
	s := &DashboardService{
		TransactionRepo: transactionRepo,
		clock:           time.Now,
		newID:           uuid.New,
		logger:          slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// AddTransaction assigns a fresh ID to the payload and prepends it to the collection
// The payload is stored as given; validating it is the caller's job.
func (s *DashboardService) AddTransaction(ctx context.Context, input domain.NewTransaction) (*domain.Transaction, error) {
	tx := input.Build(s.newID())

	if err := s.TransactionRepo.Prepend(ctx, tx); err != nil {
		return nil, fmt.Errorf("failed to add transaction: %w", err)
	}

	s.logger.InfoContext(ctx, "transaction added",
		slog.String("transaction_id", tx.ID.String()),
		slog.String("type", string(tx.Type)),
		slog.String("category", string(tx.Category)),
		slog.String("amount", tx.Amount.String()),
	)

	return tx, nil
}

// DeleteTransaction removes the transaction with the given ID
// Deleting an unknown ID is a no-op, not an error.
func (s *DashboardService) DeleteTransaction(ctx context.Context, id uuid.UUID) error {
	found, err := s.TransactionRepo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete transaction: %w", err)
	}

	if found {
		s.logger.InfoContext(ctx, "transaction deleted", slog.String("transaction_id", id.String()))
	} else {
		s.logger.DebugContext(ctx, "delete ignored, transaction not found", slog.String("transaction_id", id.String()))
	}

	return nil
}

// ListTransactions returns the whole collection, most recently added first
func (s *DashboardService) ListTransactions(ctx context.Context) ([]*domain.Transaction, error) {
	return s.snapshot(ctx)
}

// Now returns the service's current time, the reference for "today" and the current month
func (s *DashboardService) Now() time.Time {
	return s.clock()
}

// GetSummary calculates income, expenses, balance and savings rate over every transaction
func (s *DashboardService) GetSummary(ctx context.Context) (*domain.Summary, error) {
	txs, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}

	summary := aggregate.Summarize(txs)
	return &summary, nil
}

// GetMonthlySummary is GetSummary restricted to the current calendar month
func (s *DashboardService) GetMonthlySummary(ctx context.Context) (*domain.Summary, error) {
	txs, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}

	summary := aggregate.SummarizeMonth(txs, s.Now())
	return &summary, nil
}

// GetCategoryBreakdown returns expense totals per category, largest first
func (s *DashboardService) GetCategoryBreakdown(ctx context.Context) ([]domain.CategoryBreakdown, error) {
	txs, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}

	return aggregate.BreakdownByCategory(txs), nil
}

// GetMonthlyTrend returns income and expenses for the last six calendar months, oldest first
func (s *DashboardService) GetMonthlyTrend(ctx context.Context) ([]domain.MonthlyData, error) {
	txs, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}

	return aggregate.MonthlyTrend(txs, s.Now()), nil
}

// GetRecentTransactions returns the eight most recent transactions by date
func (s *DashboardService) GetRecentTransactions(ctx context.Context) ([]*domain.Transaction, error) {
	txs, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}

	return aggregate.Recent(txs, aggregate.RecentLimit), nil
}

func (s *DashboardService) snapshot(ctx context.Context) ([]*domain.Transaction, error) {
	txs, err := s.TransactionRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	return txs, nil
}

package seeder

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/simaogato/wealthflow-dashboard/internal/domain"
)

// SampleTransaction defines a transaction to be seeded
type SampleTransaction struct {
	Type        domain.TransactionType
	Amount      int64
	Category    domain.Category
	Description string
	Date        string // YYYY-MM-DD
}

// SampleTransactions is the demo data set shown on a fresh dashboard, newest-added first
var SampleTransactions = []SampleTransaction{
	{domain.TransactionTypeIncome, 5200, domain.CategorySalary, "Monthly Salary", "2024-12-01"},
	{domain.TransactionTypeIncome, 850, domain.CategoryFreelance, "Web Design Project", "2024-12-05"},
	{domain.TransactionTypeExpense, 120, domain.CategoryFood, "Weekly Groceries", "2024-12-03"},
	{domain.TransactionTypeExpense, 65, domain.CategoryTransport, "Fuel", "2024-12-04"},
	{domain.TransactionTypeExpense, 299, domain.CategoryShopping, "New Headphones", "2024-12-06"},
	{domain.TransactionTypeExpense, 45, domain.CategoryEntertainment, "Netflix & Spotify", "2024-12-01"},
	{domain.TransactionTypeExpense, 150, domain.CategoryUtilities, "Electricity Bill", "2024-12-02"},
	{domain.TransactionTypeIncome, 200, domain.CategoryInvestments, "Dividend Payment", "2024-11-28"},
	{domain.TransactionTypeExpense, 85, domain.CategoryHealth, "Gym Membership", "2024-12-01"},
	{domain.TransactionTypeExpense, 230, domain.CategoryFood, "Restaurant Dinners", "2024-11-25"},
	{domain.TransactionTypeIncome, 4800, domain.CategorySalary, "Monthly Salary", "2024-11-01"},
	{domain.TransactionTypeExpense, 180, domain.CategoryShopping, "Clothing", "2024-11-15"},
	{domain.TransactionTypeIncome, 5000, domain.CategorySalary, "Monthly Salary", "2024-10-01"},
	{domain.TransactionTypeExpense, 400, domain.CategoryUtilities, "Bills", "2024-10-05"},
	{domain.TransactionTypeIncome, 4900, domain.CategorySalary, "Monthly Salary", "2024-09-01"},
	{domain.TransactionTypeExpense, 600, domain.CategoryEntertainment, "Concert Tickets", "2024-09-20"},
}

// SampleSeeder fills an empty transaction collection with demo data
type SampleSeeder struct {
	repo domain.TransactionRepository
}

// NewSampleSeeder creates a new SampleSeeder instance
func NewSampleSeeder(repo domain.TransactionRepository) *SampleSeeder {
	return &SampleSeeder{
		repo: repo,
	}
}

// Seed inserts the sample transactions if the collection is empty
// Returns the number of transactions inserted (0 when data already exists).
// Fixtures are validated up front, but inserts are not transactional: if a
// Prepend fails, the samples already inserted stay and their count is returned with the error.
func (s *SampleSeeder) Seed(ctx context.Context) (int, error) {
	count, err := s.repo.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count transactions: %w", err)
	}
	if count > 0 {
		return 0, nil
	}

	// Validate every fixture before the first insert
	txs := make([]*domain.Transaction, 0, len(SampleTransactions))
	for _, sample := range SampleTransactions {
		date, err := domain.ParseDate(sample.Date)
		if err != nil {
			return 0, err
		}

		tx := &domain.Transaction{
			ID:          uuid.New(),
			Type:        sample.Type,
			Amount:      decimal.NewFromInt(sample.Amount),
			Category:    sample.Category,
			Description: sample.Description,
			Date:        date,
		}
		if err := tx.Validate(); err != nil {
			return 0, fmt.Errorf("invalid sample transaction %q: %w", sample.Description, err)
		}
		txs = append(txs, tx)
	}

	// Prepend in reverse so the first sample ends up at the front
	inserted := 0
	for i := len(txs) - 1; i >= 0; i-- {
		if err := s.repo.Prepend(ctx, txs[i]); err != nil {
			return inserted, fmt.Errorf("failed to seed sample transactions, %d of %d inserted: %w", inserted, len(txs), err)
		}
		inserted++
	}

	return len(txs), nil
}

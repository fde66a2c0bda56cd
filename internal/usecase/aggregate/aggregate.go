package aggregate

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"github.com/simaogato/wealthflow-dashboard/internal/domain"
)

const (
	// TrendMonths is the number of calendar months covered by MonthlyTrend, current month included
	TrendMonths = 6

	// RecentLimit is the maximum number of transactions returned by Recent with the dashboard default
	RecentLimit = 8
)

var hundred = decimal.NewFromInt(100)

// Summarize calculates total income, total expenses, balance and savings rate
// Logic:
//   - Balance: Income - Expenses
//   - Savings rate: Balance / Income * 100, or 0 when there is no income (never divides by zero)
func Summarize(txs []*domain.Transaction) domain.Summary {
	income := decimal.Zero
	expenses := decimal.Zero

	for _, tx := range txs {
		switch tx.Type {
		case domain.TransactionTypeIncome:
			income = income.Add(tx.Amount)
		case domain.TransactionTypeExpense:
			expenses = expenses.Add(tx.Amount)
		}
	}

	balance := income.Sub(expenses)

	savingsRate := decimal.Zero
	if income.IsPositive() {
		savingsRate = balance.Div(income).Mul(hundred)
	}

	return domain.Summary{
		TotalIncome:   income,
		TotalExpenses: expenses,
		TotalBalance:  balance,
		SavingsRate:   savingsRate,
	}
}

// SummarizeMonth is Summarize restricted to transactions dated within now's calendar month
func SummarizeMonth(txs []*domain.Transaction, now time.Time) domain.Summary {
	return Summarize(inMonth(txs, now.Year(), now.Month()))
}

// BreakdownByCategory totals expense transactions per category
// Income transactions are ignored. Percentages are shares of total expenses (0 when the total is 0).
// The result is sorted by amount descending; equal amounts keep the order in which the category first appears.
func BreakdownByCategory(txs []*domain.Transaction) []domain.CategoryBreakdown {
	totals := make(map[domain.Category]decimal.Decimal)
	order := make([]domain.Category, 0)
	total := decimal.Zero

	for _, tx := range txs {
		if !tx.IsExpense() {
			continue
		}
		if _, seen := totals[tx.Category]; !seen {
			order = append(order, tx.Category)
		}
		totals[tx.Category] = totals[tx.Category].Add(tx.Amount)
		total = total.Add(tx.Amount)
	}

	breakdown := make([]domain.CategoryBreakdown, 0, len(order))
	for _, category := range order {
		amount := totals[category]

		percentage := decimal.Zero
		if total.IsPositive() {
			percentage = amount.Div(total).Mul(hundred)
		}

		breakdown = append(breakdown, domain.CategoryBreakdown{
			Category:   category,
			Amount:     amount,
			Percentage: percentage,
			Color:      category.Info().Color,
		})
	}

	sort.SliceStable(breakdown, func(i, j int) bool {
		return breakdown[i].Amount.GreaterThan(breakdown[j].Amount)
	})

	return breakdown
}

// MonthlyTrend returns income and expense totals for the TrendMonths calendar months ending with now's month
// Entries are ordered oldest first; a month without transactions reports zeros instead of being omitted.
func MonthlyTrend(txs []*domain.Transaction, now time.Time) []domain.MonthlyData {
	// Anchor on day 1 so stepping back a month never overflows into the next one (31 Mar - 1 month = Feb)
	anchor := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)

	months := make([]domain.MonthlyData, 0, TrendMonths)
	for i := TrendMonths - 1; i >= 0; i-- {
		monthStart := anchor.AddDate(0, -i, 0)
		summary := Summarize(inMonth(txs, monthStart.Year(), monthStart.Month()))

		months = append(months, domain.MonthlyData{
			Month:    monthStart.Format("Jan"),
			Income:   summary.TotalIncome,
			Expenses: summary.TotalExpenses,
		})
	}

	return months
}

// Recent returns up to limit transactions sorted by date, newest first
// The input slice is not modified. Transactions sharing a date keep their collection order.
func Recent(txs []*domain.Transaction, limit int) []*domain.Transaction {
	if limit <= 0 {
		return []*domain.Transaction{}
	}

	sorted := make([]*domain.Transaction, len(txs))
	copy(sorted, txs)

	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.After(sorted[j].Date)
	})

	if len(sorted) > limit {
		sorted = sorted[:limit]
	}

	return sorted
}

// inMonth filters transactions whose calendar date falls in the given year and month
func inMonth(txs []*domain.Transaction, year int, month time.Month) []*domain.Transaction {
	filtered := make([]*domain.Transaction, 0)
	for _, tx := range txs {
		y, m, _ := tx.Date.Date()
		if y == year && m == month {
			filtered = append(filtered, tx)
		}
	}
	return filtered
}

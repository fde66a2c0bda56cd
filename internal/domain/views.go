package domain

import "github.com/shopspring/decimal"

// Summary holds the headline figures of the dashboard.
// TotalBalance is always TotalIncome - TotalExpenses.
type Summary struct {
	TotalIncome   decimal.Decimal
	TotalExpenses decimal.Decimal
	TotalBalance  decimal.Decimal
	SavingsRate   decimal.Decimal // Percentage of income not spent, 0 when there is no income
}

// CategoryBreakdown is the spending total of one expense category
type CategoryBreakdown struct {
	Category   Category
	Amount     decimal.Decimal
	Percentage decimal.Decimal // Share of total expenses (0-100)
	Color      string
}

// MonthlyData holds the income and expense totals of one calendar month
type MonthlyData struct {
	Month    string // Short month name, e.g. "Dec"
	Income   decimal.Decimal
	Expenses decimal.Decimal
}

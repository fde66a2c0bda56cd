package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DateLayout is the ISO-8601 calendar date layout used for transaction dates
const DateLayout = "2006-01-02"

// TransactionType represents the direction of a transaction
type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "income"
	TransactionTypeExpense TransactionType = "expense"
)

var (
	ErrInvalidType       = errors.New("invalid transaction type")
	ErrInvalidCategory   = errors.New("invalid category for transaction type")
	ErrNegativeAmount    = errors.New("amount must be zero or positive")
	ErrEmptyDescription  = errors.New("description cannot be empty")
	ErrMissingDate       = errors.New("transaction date is required")
	ErrInvalidDateFormat = errors.New("invalid date format, expected YYYY-MM-DD")
)

// Transaction represents a recorded income or expense event
type Transaction struct {
	ID          uuid.UUID
	Type        TransactionType
	Amount      decimal.Decimal // Currency-agnostic, never negative
	Category    Category
	Description string
	Date        time.Time // Calendar date, UTC midnight
}

// NewTransaction is the creation payload for a transaction.
// The ID is assigned by the aggregator, never by the caller.
type NewTransaction struct {
	Type        TransactionType
	Amount      decimal.Decimal
	Category    Category
	Description string
	Date        time.Time
}

// Build turns the payload into a Transaction carrying the given ID
func (n NewTransaction) Build(id uuid.UUID) *Transaction {
	return &Transaction{
		ID:          id,
		Type:        n.Type,
		Amount:      n.Amount,
		Category:    n.Category,
		Description: n.Description,
		Date:        NormalizeDate(n.Date),
	}
}

// IsIncome reports whether the transaction adds to income
func (t *Transaction) IsIncome() bool {
	return t.Type == TransactionTypeIncome
}

// IsExpense reports whether the transaction adds to expenses
func (t *Transaction) IsExpense() bool {
	return t.Type == TransactionTypeExpense
}

// Validate ensures the transaction adheres to domain rules.
// The aggregator itself never calls this; it is for callers that own input validation.
func (t *Transaction) Validate() error {
	if t.Type != TransactionTypeIncome && t.Type != TransactionTypeExpense {
		return fmt.Errorf("%w: %q", ErrInvalidType, t.Type)
	}

	if t.Amount.IsNegative() {
		return ErrNegativeAmount
	}

	if strings.TrimSpace(t.Description) == "" {
		return ErrEmptyDescription
	}

	if !t.Category.ValidFor(t.Type) {
		return fmt.Errorf("%w: %q is not a %s category", ErrInvalidCategory, t.Category, t.Type)
	}

	if t.Date.IsZero() {
		return ErrMissingDate
	}

	return nil
}

// ParseDate parses an ISO-8601 calendar date (YYYY-MM-DD)
func ParseDate(value string) (time.Time, error) {
	d, err := time.Parse(DateLayout, strings.TrimSpace(value))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDateFormat, value)
	}
	return d, nil
}

// NormalizeDate drops the time-of-day component, keeping the calendar date as seen in t's location
func NormalizeDate(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// FormatDate renders a transaction date in ISO-8601 form
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

package grpc

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/simaogato/wealthflow-dashboard/internal/domain"
)

// transactionForm is the AddTransaction payload as received from the dashboard form.
// Only amount and description are mandatory; everything else is passed through to the aggregator.
type transactionForm struct {
	Type        string
	Amount      string `validate:"required"`
	Category    string
	Description string `validate:"required"`
	Date        string `validate:"omitempty,datetime=2006-01-02"`
}

// formFromStruct reads the form fields from a protobuf Struct
// Amount may arrive either as a decimal string or as a JSON number.
func formFromStruct(req *structpb.Struct) transactionForm {
	fields := req.GetFields()

	return transactionForm{
		Type:        stringField(fields, "type"),
		Amount:      stringField(fields, "amount"),
		Category:    stringField(fields, "category"),
		Description: stringField(fields, "description"),
		Date:        stringField(fields, "date"),
	}
}

func stringField(fields map[string]*structpb.Value, key string) string {
	v, ok := fields[key]
	if !ok || v == nil {
		return ""
	}

	switch kind := v.GetKind().(type) {
	case *structpb.Value_StringValue:
		return strings.TrimSpace(kind.StringValue)
	case *structpb.Value_NumberValue:
		// NaN and Inf have no decimal form; treat them as missing
		if math.IsNaN(kind.NumberValue) || math.IsInf(kind.NumberValue, 0) {
			return ""
		}
		return decimal.NewFromFloat(kind.NumberValue).String()
	default:
		return ""
	}
}

// toNewTransaction validates the form and converts it into the domain creation payload
// An empty date means "today" according to now.
func (f transactionForm) toNewTransaction(validate *validator.Validate, now time.Time) (domain.NewTransaction, error) {
	if err := validate.Struct(f); err != nil {
		return domain.NewTransaction{}, formError(err)
	}

	amount, err := decimal.NewFromString(f.Amount)
	if err != nil {
		return domain.NewTransaction{}, fmt.Errorf("invalid amount format: %v", err)
	}

	date := now
	if f.Date != "" {
		date, err = domain.ParseDate(f.Date)
		if err != nil {
			return domain.NewTransaction{}, err
		}
	}

	return domain.NewTransaction{
		Type:        domain.TransactionType(strings.ToLower(f.Type)),
		Amount:      amount,
		Category:    domain.Category(strings.ToLower(f.Category)),
		Description: f.Description,
		Date:        date,
	}, nil
}

// formError turns validator output into a readable message, e.g. "amount is required"
func formError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		field := strings.ToLower(fe.Field())
		switch fe.Tag() {
		case "required":
			msgs = append(msgs, field+" is required")
		case "datetime":
			msgs = append(msgs, field+" must be formatted as YYYY-MM-DD")
		default:
			msgs = append(msgs, field+" is invalid")
		}
	}
	return errors.New(strings.Join(msgs, "; "))
}

// transactionToProto converts a domain Transaction to a protobuf Struct
func transactionToProto(tx *domain.Transaction) *structpb.Struct {
	info := tx.Category.Info()
	return &structpb.Struct{
		Fields: map[string]*structpb.Value{
			"id":            structpb.NewStringValue(tx.ID.String()),
			"type":          structpb.NewStringValue(string(tx.Type)),
			"amount":        structpb.NewStringValue(tx.Amount.String()),
			"category":      structpb.NewStringValue(string(tx.Category)),
			"categoryLabel": structpb.NewStringValue(info.Label),
			"categoryIcon":  structpb.NewStringValue(info.Icon),
			"description":   structpb.NewStringValue(tx.Description),
			"date":          structpb.NewStringValue(domain.FormatDate(tx.Date)),
		},
	}
}

// transactionsToProto converts a list of transactions, preserving order
func transactionsToProto(txs []*domain.Transaction) *structpb.ListValue {
	values := make([]*structpb.Value, 0, len(txs))
	for _, tx := range txs {
		values = append(values, structpb.NewStructValue(transactionToProto(tx)))
	}
	return &structpb.ListValue{Values: values}
}

// summaryToProto converts a Summary; money as decimal strings, the rate as a number rounded to 2 places
func summaryToProto(summary *domain.Summary) *structpb.Struct {
	return &structpb.Struct{
		Fields: map[string]*structpb.Value{
			"totalIncome":   structpb.NewStringValue(summary.TotalIncome.String()),
			"totalExpenses": structpb.NewStringValue(summary.TotalExpenses.String()),
			"totalBalance":  structpb.NewStringValue(summary.TotalBalance.String()),
			"savingsRate":   structpb.NewNumberValue(summary.SavingsRate.Round(2).InexactFloat64()),
		},
	}
}

func breakdownToProto(breakdown []domain.CategoryBreakdown) *structpb.ListValue {
	values := make([]*structpb.Value, 0, len(breakdown))
	for _, entry := range breakdown {
		values = append(values, structpb.NewStructValue(&structpb.Struct{
			Fields: map[string]*structpb.Value{
				"category":   structpb.NewStringValue(string(entry.Category)),
				"label":      structpb.NewStringValue(entry.Category.Info().Label),
				"amount":     structpb.NewStringValue(entry.Amount.String()),
				"percentage": structpb.NewNumberValue(entry.Percentage.Round(2).InexactFloat64()),
				"color":      structpb.NewStringValue(entry.Color),
			},
		}))
	}
	return &structpb.ListValue{Values: values}
}

func trendToProto(months []domain.MonthlyData) *structpb.ListValue {
	values := make([]*structpb.Value, 0, len(months))
	for _, m := range months {
		values = append(values, structpb.NewStructValue(&structpb.Struct{
			Fields: map[string]*structpb.Value{
				"month":    structpb.NewStringValue(m.Month),
				"income":   structpb.NewStringValue(m.Income.String()),
				"expenses": structpb.NewStringValue(m.Expenses.String()),
			},
		}))
	}
	return &structpb.ListValue{Values: values}
}

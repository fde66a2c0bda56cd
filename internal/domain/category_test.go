package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCategory_ValidFor(t *testing.T) {
	tests := []struct {
		category Category
		txType   TransactionType
		want     bool
	}{
		{CategorySalary, TransactionTypeIncome, true},
		{CategoryFreelance, TransactionTypeIncome, true},
		{CategoryInvestments, TransactionTypeIncome, true},
		{CategoryOther, TransactionTypeIncome, true},
		{CategoryFood, TransactionTypeIncome, false},
		{CategoryFood, TransactionTypeExpense, true},
		{CategoryHealth, TransactionTypeExpense, true},
		{CategoryOther, TransactionTypeExpense, true},
		{CategorySalary, TransactionTypeExpense, false},
		{Category("rent"), TransactionTypeExpense, false},
		{CategoryOther, TransactionType("transfer"), false},
	}

	for _, tt := range tests {
		t.Run(string(tt.category)+"/"+string(tt.txType), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.category.ValidFor(tt.txType))
		})
	}
}

func TestCategoriesFor(t *testing.T) {
	assert.Equal(t,
		[]Category{CategorySalary, CategoryFreelance, CategoryInvestments, CategoryOther},
		CategoriesFor(TransactionTypeIncome))
	assert.Len(t, CategoriesFor(TransactionTypeExpense), 7)
	assert.Nil(t, CategoriesFor(TransactionType("bogus")))

	// Callers get a copy
	cats := CategoriesFor(TransactionTypeIncome)
	cats[0] = CategoryFood
	assert.Equal(t, CategorySalary, CategoriesFor(TransactionTypeIncome)[0])
}

func TestCategory_Info(t *testing.T) {
	food := CategoryFood.Info()
	assert.Equal(t, "Food & Dining", food.Label)
	assert.Equal(t, "hsl(12, 76%, 61%)", food.Color)
	assert.Equal(t, "🍔", food.Icon)

	assert.Equal(t, "Transportation", CategoryTransport.Info().Label)
	assert.Equal(t, CategoryOther.Info(), Category("unknown").Info())

	for _, c := range append(CategoriesFor(TransactionTypeIncome), CategoriesFor(TransactionTypeExpense)...) {
		info := c.Info()
		assert.NotEmpty(t, info.Label, c)
		assert.NotEmpty(t, info.Color, c)
		assert.NotEmpty(t, info.Icon, c)
	}
}

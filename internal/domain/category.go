package domain

// Category is an enumerated classification tag scoped to a transaction type
type Category string

const (
	CategorySalary        Category = "salary"
	CategoryFreelance     Category = "freelance"
	CategoryInvestments   Category = "investments"
	CategoryFood          Category = "food"
	CategoryTransport     Category = "transport"
	CategoryShopping      Category = "shopping"
	CategoryEntertainment Category = "entertainment"
	CategoryUtilities     Category = "utilities"
	CategoryHealth        Category = "health"
	CategoryOther         Category = "other"
)

// CategoryInfo holds the display metadata for a category
type CategoryInfo struct {
	Label string
	Color string // CSS hsl() colour used by chart segments
	Icon  string
}

var categoryInfo = map[Category]CategoryInfo{
	CategorySalary:        {Label: "Salary", Color: "hsl(160, 84%, 39%)", Icon: "💼"},
	CategoryFreelance:     {Label: "Freelance", Color: "hsl(180, 70%, 45%)", Icon: "💻"},
	CategoryInvestments:   {Label: "Investments", Color: "hsl(200, 80%, 55%)", Icon: "📈"},
	CategoryFood:          {Label: "Food & Dining", Color: "hsl(12, 76%, 61%)", Icon: "🍔"},
	CategoryTransport:     {Label: "Transportation", Color: "hsl(38, 92%, 50%)", Icon: "🚗"},
	CategoryShopping:      {Label: "Shopping", Color: "hsl(280, 65%, 60%)", Icon: "🛍️"},
	CategoryEntertainment: {Label: "Entertainment", Color: "hsl(320, 70%, 55%)", Icon: "🎬"},
	CategoryUtilities:     {Label: "Utilities", Color: "hsl(220, 60%, 55%)", Icon: "💡"},
	CategoryHealth:        {Label: "Health", Color: "hsl(350, 65%, 55%)", Icon: "🏥"},
	CategoryOther:         {Label: "Other", Color: "hsl(240, 30%, 50%)", Icon: "📦"},
}

var (
	incomeCategories = []Category{
		CategorySalary,
		CategoryFreelance,
		CategoryInvestments,
		CategoryOther,
	}
	expenseCategories = []Category{
		CategoryFood,
		CategoryTransport,
		CategoryShopping,
		CategoryEntertainment,
		CategoryUtilities,
		CategoryHealth,
		CategoryOther,
	}
)

// Info returns the display metadata for the category.
// Unknown categories fall back to the "other" entry.
func (c Category) Info() CategoryInfo {
	if info, ok := categoryInfo[c]; ok {
		return info
	}
	return categoryInfo[CategoryOther]
}

// ValidFor reports whether the category may be used with the given transaction type
func (c Category) ValidFor(t TransactionType) bool {
	for _, allowed := range CategoriesFor(t) {
		if allowed == c {
			return true
		}
	}
	return false
}

// CategoriesFor returns the categories valid for a transaction type, in display order.
// Returns nil for an unknown type.
func CategoriesFor(t TransactionType) []Category {
	var src []Category
	switch t {
	case TransactionTypeIncome:
		src = incomeCategories
	case TransactionTypeExpense:
		src = expenseCategories
	default:
		return nil
	}

	out := make([]Category, len(src))
	copy(out, src)
	return out
}

package domain

import "strings"

// Budget is the closed set of spending tiers a query may carry.
// An absent or unrecognized value normalizes to BudgetAny.
type Budget string

const (
	BudgetAny      Budget = "any"
	BudgetLow      Budget = "budget"
	BudgetModerate Budget = "moderate"
	BudgetLuxury   Budget = "luxury"
)

// ParseBudget normalizes free-form budget input to the closed set.
func ParseBudget(s string) Budget {
	switch Budget(strings.ToLower(strings.TrimSpace(s))) {
	case BudgetLow:
		return BudgetLow
	case BudgetModerate:
		return BudgetModerate
	case BudgetLuxury:
		return BudgetLuxury
	default:
		return BudgetAny
	}
}

// Normalized returns the budget with the absent value mapped to BudgetAny.
func (b Budget) Normalized() Budget {
	if b == "" {
		return BudgetAny
	}
	return ParseBudget(string(b))
}

// String implements fmt.Stringer.
func (b Budget) String() string {
	return string(b.Normalized())
}

// CostFactor scales baseline activity costs to the budget tier.
func (b Budget) CostFactor() float64 {
	switch b.Normalized() {
	case BudgetLow:
		return 0.6
	case BudgetLuxury:
		return 1.8
	default:
		return 1.0
	}
}

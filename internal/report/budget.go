package report

import (
	"github.com/meubolso/backend/internal/models"
	"github.com/shopspring/decimal"
)

// BudgetSpending is a budget together with the spending of its month.
type BudgetSpending struct {
	models.Budget
	Spent      decimal.Decimal `json:"spent" example:"450.10"`    // Sum of all transactions matching category and type
	Remaining  decimal.Decimal `json:"remaining" example:"149.90"` // Amount - Spent, negative when over budget
	Percentage decimal.Decimal `json:"percentage" example:"75.02"` // Spent as share of Amount, capped at 100
	OverBudget bool            `json:"overBudget" example:"false"` // True once Spent exceeds Amount
}

// EvaluateBudgets attaches spending metrics to budgets.
//
// The transactions must already be filtered to the budget's month and may
// contain projected occurrences. A transaction counts towards a budget when
// both the type and the category match exactly, the comparison is
// case-sensitive and does no normalization.
//
// Percentage is capped at 100 even when over budget, consumers that need to
// detect overage must use OverBudget instead of comparing to 100.
func EvaluateBudgets(budgets []models.Budget, transactions []models.Transaction) []BudgetSpending {
	result := make([]BudgetSpending, 0, len(budgets))

	for _, budget := range budgets {
		spent := decimal.Zero
		for _, t := range transactions {
			if t.Type == budget.Type && t.Category == budget.Category {
				spent = spent.Add(t.Amount)
			}
		}

		// Budget amounts are validated to be positive on creation. The
		// guard keeps the function total if that invariant is ever violated.
		percentage := decimal.Zero
		if budget.Amount.IsPositive() {
			percentage = decimal.Min(spent.Div(budget.Amount).Mul(hundred), hundred)
		}

		result = append(result, BudgetSpending{
			Budget:     budget,
			Spent:      spent,
			Remaining:  budget.Amount.Sub(spent),
			Percentage: percentage,
			OverBudget: spent.GreaterThan(budget.Amount),
		})
	}

	return result
}

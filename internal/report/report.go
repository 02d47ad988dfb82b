// Package report implements the calculations behind the dashboard: the
// projection of recurring transactions into future months, the aggregation
// of a month into income, expense and balance totals, and the evaluation
// of budgets and goals.
//
// All functions are pure: they operate on in-memory snapshots passed in by
// the caller, perform no I/O and never panic on well-formed input. Callers
// may re-run them on every request, the results are deterministic.
package report

import (
	"github.com/meubolso/backend/internal/models"
	"github.com/meubolso/backend/internal/types"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Summary contains the totals for a set of transactions.
type Summary struct {
	TotalIncome  decimal.Decimal `json:"totalIncome" example:"2317.34"`  // Sum of all income transactions
	TotalExpense decimal.Decimal `json:"totalExpense" example:"1822.79"` // Sum of all expense transactions
	Balance      decimal.Decimal `json:"balance" example:"494.55"`       // TotalIncome - TotalExpense
}

// Summarize reduces a list of transactions to its totals. The list is
// expected to already be filtered to the period of interest and may contain
// projected occurrences.
func Summarize(transactions []models.Transaction) Summary {
	income := decimal.Zero
	expense := decimal.Zero

	for _, t := range transactions {
		switch t.Type {
		case models.TransactionTypeIncome:
			income = income.Add(t.Amount)
		case models.TransactionTypeExpense:
			expense = expense.Add(t.Amount)
		}
	}

	return Summary{
		TotalIncome:  income,
		TotalExpense: expense,
		Balance:      income.Sub(expense),
	}
}

// Comparison relates a month to the immediately preceding calendar month.
type Comparison struct {
	IncomeChangePct    decimal.Decimal `json:"incomeChangePct" example:"12"`    // Income change in percent, rounded to integers
	ExpenseChangePct   decimal.Decimal `json:"expenseChangePct" example:"-50"`  // Expense change in percent, rounded to integers
	IncomeProgressPct  decimal.Decimal `json:"incomeProgressPct" example:"100"` // Income as share of last month, capped at 100
	ExpenseProgressPct decimal.Decimal `json:"expenseProgressPct" example:"50"` // Expense as share of last month, capped at 100
}

// Compare computes the month-over-month comparison for the given month.
//
// The transaction list must contain the full history, it is filtered to the
// previous calendar month here using the same partition rule as everywhere
// else. Only stored transactions count for the previous month.
func Compare(transactions []models.Transaction, current Summary, month types.Month) Comparison {
	previousMonth := month.AddDate(0, -1)

	var previousTransactions []models.Transaction
	for _, t := range transactions {
		if previousMonth.Contains(t.Date) {
			previousTransactions = append(previousTransactions, t)
		}
	}

	previous := Summarize(previousTransactions)

	return Comparison{
		IncomeChangePct:    changePct(current.TotalIncome, previous.TotalIncome),
		ExpenseChangePct:   changePct(current.TotalExpense, previous.TotalExpense),
		IncomeProgressPct:  progressPct(current.TotalIncome, previous.TotalIncome),
		ExpenseProgressPct: progressPct(current.TotalExpense, previous.TotalExpense),
	}
}

// changePct is the relative change from previous to current in percent,
// rounded to integers.
//
// The zero handling is asymmetric on purpose: growing from nothing counts
// as 100%, staying at nothing counts as 0%. This avoids a division by zero
// while keeping the direction of the change visible.
func changePct(current, previous decimal.Decimal) decimal.Decimal {
	if previous.IsPositive() {
		return current.Sub(previous).Div(previous).Mul(hundred).Round(0)
	}

	if current.IsPositive() {
		return hundred
	}

	return decimal.Zero
}

// progressPct is current as a share of previous in percent, capped at 100.
// It is only used for bounded progress bars, overage is reported by
// changePct instead.
func progressPct(current, previous decimal.Decimal) decimal.Decimal {
	if previous.IsPositive() {
		return decimal.Min(current.Div(previous).Mul(hundred), hundred)
	}

	if current.IsPositive() {
		return hundred
	}

	return decimal.Zero
}

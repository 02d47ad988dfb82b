package models

import (
	"strings"

	"github.com/meubolso/backend/internal/types"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Budget is a spending (or income) ceiling for one category in one month.
//
// There is at most one budget per category, type and month, enforced by a
// unique index. The spent amount is not stored, it is calculated by the
// report package from the transactions of the month.
type Budget struct {
	DefaultModel
	Category string          `json:"category" gorm:"uniqueIndex:budget_category_type_month" example:"Groceries"`
	Type     TransactionType `json:"type" gorm:"uniqueIndex:budget_category_type_month" example:"EXPENSE"`
	Amount   decimal.Decimal `json:"amount" gorm:"type:DECIMAL(20,8)" example:"600"` // The ceiling for the month
	Month    types.Month     `json:"month" gorm:"uniqueIndex:budget_category_type_month" example:"2024-07-01T00:00:00.000000Z"`
}

func (b *Budget) BeforeSave(_ *gorm.DB) error {
	b.Category = strings.TrimSpace(b.Category)

	if b.Type != TransactionTypeIncome && b.Type != TransactionTypeExpense {
		return ErrTransactionTypeInvalid
	}

	if !b.Amount.IsPositive() {
		return ErrBudgetAmountNotPositive
	}

	return nil
}

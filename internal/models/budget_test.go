package models_test

import (
	"testing"
	"time"

	"github.com/meubolso/backend/internal/models"
	"github.com/meubolso/backend/internal/types"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestBudgetValidation() {
	tests := []struct {
		name   string
		budget models.Budget
		err    error
	}{
		{
			"Valid budget",
			models.Budget{Category: "Groceries", Type: models.TransactionTypeExpense, Amount: decimal.NewFromFloat(600), Month: types.NewMonth(2024, time.July)},
			nil,
		},
		{
			"Invalid type",
			models.Budget{Category: "Groceries", Type: "TRANSFER", Amount: decimal.NewFromFloat(600), Month: types.NewMonth(2024, time.August)},
			models.ErrTransactionTypeInvalid,
		},
		{
			"Zero amount",
			models.Budget{Category: "Groceries", Type: models.TransactionTypeExpense, Amount: decimal.Zero, Month: types.NewMonth(2024, time.September)},
			models.ErrBudgetAmountNotPositive,
		},
		{
			"Negative amount",
			models.Budget{Category: "Groceries", Type: models.TransactionTypeExpense, Amount: decimal.NewFromFloat(-10), Month: types.NewMonth(2024, time.October)},
			models.ErrBudgetAmountNotPositive,
		},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			budget := tt.budget
			err := models.DB.Create(&budget).Error
			assert.ErrorIs(t, err, tt.err, "Error is: %s", err)
		})
	}
}

func (suite *TestSuiteStandard) TestBudgetUnique() {
	month := types.NewMonth(2024, time.July)

	_ = suite.createTestBudget(models.Budget{
		Category: "Transport",
		Type:     models.TransactionTypeExpense,
		Amount:   decimal.NewFromFloat(300),
		Month:    month,
	})

	// Same category, type and month is rejected
	budget := models.Budget{
		Category: "Transport",
		Type:     models.TransactionTypeExpense,
		Amount:   decimal.NewFromFloat(350),
		Month:    month,
	}
	err := models.DB.Create(&budget).Error
	assert.ErrorIs(suite.T(), err, models.ErrBudgetNotUnique)

	// The next month is fine
	_ = suite.createTestBudget(models.Budget{
		Category: "Transport",
		Type:     models.TransactionTypeExpense,
		Amount:   decimal.NewFromFloat(300),
		Month:    month.AddDate(0, 1),
	})
}

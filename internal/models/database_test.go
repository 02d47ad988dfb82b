package models_test

import (
	"github.com/meubolso/backend/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestResourceNotFoundMessage() {
	var transaction models.Transaction
	err := models.DB.First(&transaction, "id = ?", "7c5d6981-7d45-4de4-a577-71e0b0b0b0b0").Error

	assert.ErrorIs(suite.T(), err, models.ErrResourceNotFound)
	assert.Equal(suite.T(), "there is no transaction matching your query", err.Error())

	var matchRule models.MatchRule
	err = models.DB.First(&matchRule, "id = ?", "7c5d6981-7d45-4de4-a577-71e0b0b0b0b0").Error

	assert.ErrorIs(suite.T(), err, models.ErrResourceNotFound)
	assert.Equal(suite.T(), "there is no match rule matching your query", err.Error())
}

func (suite *TestSuiteStandard) TestGeneralErrorOnClosedDB() {
	suite.CloseDB()

	transaction := models.Transaction{
		Amount: decimal.NewFromFloat(17.23),
		Type:   models.TransactionTypeExpense,
	}
	err := models.DB.Create(&transaction).Error

	assert.ErrorIs(suite.T(), err, models.ErrGeneral)
}

package models_test

import (
	"strings"

	"github.com/meubolso/backend/internal/models"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestAccountTrimWhitespace() {
	name := "  Nubank \t"
	institution := " Nu Pagamentos S.A.  "

	account := suite.createTestAccount(models.Account{
		Name:        name,
		Institution: institution,
	})

	assert.Equal(suite.T(), strings.TrimSpace(name), account.Name)
	assert.Equal(suite.T(), strings.TrimSpace(institution), account.Institution)
}

func (suite *TestSuiteStandard) TestAccountNameUnique() {
	_ = suite.createTestAccount(models.Account{Name: "Itaú"})

	account := models.Account{Name: "Itaú"}
	err := models.DB.Create(&account).Error

	assert.ErrorIs(suite.T(), err, models.ErrAccountNameNotUnique)
}

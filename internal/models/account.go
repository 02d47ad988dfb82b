package models

import (
	"strings"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// AccountType categorizes an account for display purposes.
type AccountType string

const (
	AccountTypeChecking   AccountType = "CHECKING"
	AccountTypeSavings    AccountType = "SAVINGS"
	AccountTypeCredit     AccountType = "CREDIT"
	AccountTypeCash       AccountType = "CASH"
	AccountTypeInvestment AccountType = "INVESTMENT"
)

// Account represents a place money is kept, e.g. a bank account or a wallet.
type Account struct {
	DefaultModel
	Name           string          `json:"name" gorm:"uniqueIndex" example:"Nubank"`
	Type           AccountType     `json:"type" example:"CHECKING"`
	Institution    string          `json:"institution" example:"Nu Pagamentos S.A."`
	InitialBalance decimal.Decimal `json:"initialBalance" gorm:"type:DECIMAL(20,8)" example:"250.37"`
	Archived       bool            `json:"archived" example:"false"`
	External       bool            `json:"external" example:"true"` // True for accounts created by a bank statement import
}

func (a *Account) BeforeSave(_ *gorm.DB) error {
	a.Name = strings.TrimSpace(a.Name)
	a.Institution = strings.TrimSpace(a.Institution)

	return nil
}

package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// TransactionType determines whether a transaction adds to or subtracts
// from the balance. The amount itself is always non-negative.
type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "INCOME"
	TransactionTypeExpense TransactionType = "EXPENSE"
)

// Frequency is the recurrence interval of a recurring transaction.
type Frequency string

const (
	FrequencyMonthly Frequency = "MONTHLY"
	FrequencyYearly  Frequency = "YEARLY"
)

// Transaction represents a single income or expense entry.
//
// A transaction with IsRecurring set acts as a template: future occurrences
// are never written to the database, they are projected at read time by the
// report package.
type Transaction struct {
	DefaultModel
	Description        string          `json:"description" example:"Rent"`
	Amount             decimal.Decimal `json:"amount" gorm:"type:DECIMAL(20,8)" example:"1450.00"`
	Type               TransactionType `json:"type" example:"EXPENSE"`
	Category           string          `json:"category" example:"Housing"`  // Free-text, user-defined
	PaymentMethod      string          `json:"paymentMethod" example:"Pix"` // Free-text, user-defined
	Date               time.Time       `json:"date"`                        // Day precision, partition key for the month
	AccountID          *uuid.UUID      `json:"accountId"`                   // Optional link to a bank account
	Account            Account         `json:"-"`
	IsPaid             bool            `json:"isPaid" example:"true"`
	IsRecurring        bool            `json:"isRecurring" example:"false"`
	Frequency          Frequency       `json:"frequency,omitempty" example:"MONTHLY"`
	Installments       uint            `json:"installments,omitempty" example:"12"` // Total number of installments in the series
	CurrentInstallment uint            `json:"currentInstallment,omitempty" example:"3"`
	ImportHash         string          `json:"importHash,omitempty"` // SHA256 over the raw import line, for duplicate detection
	Tags               []Tag           `json:"tags" gorm:"many2many:transaction_tags"`

	// Fields describing a projected recurring occurrence. These are computed
	// by the report package and never stored.
	Virtual               bool       `json:"virtual" gorm:"-"`
	VirtualID             string     `json:"-" gorm:"-"`
	OriginalTransactionID *uuid.UUID `json:"originalTransactionId,omitempty" gorm:"-"`
}

// BeforeSave normalizes and validates the transaction.
func (t *Transaction) BeforeSave(_ *gorm.DB) error {
	t.Description = strings.TrimSpace(t.Description)
	t.Category = strings.TrimSpace(t.Category)
	t.PaymentMethod = strings.TrimSpace(t.PaymentMethod)

	if t.Date.IsZero() {
		t.Date = time.Now().In(time.UTC)
	} else {
		t.Date = t.Date.In(time.UTC)
	}

	if t.Amount.IsNegative() {
		return ErrTransactionAmountNegative
	}

	if t.Type != TransactionTypeIncome && t.Type != TransactionTypeExpense {
		return ErrTransactionTypeInvalid
	}

	if t.IsRecurring && t.Frequency == "" {
		return ErrTransactionFrequencyRequired
	}

	if !t.IsRecurring && t.Frequency != "" {
		return ErrTransactionNotRecurring
	}

	if t.Frequency != "" && t.Frequency != FrequencyMonthly && t.Frequency != FrequencyYearly {
		return ErrTransactionFrequencyInvalid
	}

	if t.CurrentInstallment > t.Installments {
		return ErrTransactionInstallmentInvalid
	}

	return nil
}

// AfterFind updates the date to use UTC as timezone, not +0000.
// See DefaultModel.AfterFind.
func (t *Transaction) AfterFind(_ *gorm.DB) (err error) {
	t.Date = t.Date.In(time.UTC)
	return nil
}

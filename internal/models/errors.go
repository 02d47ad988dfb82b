package models

import (
	"errors"
)

var (
	ErrGeneral          = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound = errors.New("there is no")
)

// Transaction errors
var (
	ErrTransactionAmountNegative     = errors.New("transaction amounts must not be negative")
	ErrTransactionTypeInvalid        = errors.New("the transaction type must be INCOME or EXPENSE")
	ErrTransactionFrequencyRequired  = errors.New("recurring transactions must have a frequency")
	ErrTransactionFrequencyInvalid   = errors.New("the frequency must be MONTHLY or YEARLY")
	ErrTransactionNotRecurring       = errors.New("a frequency can only be set for recurring transactions")
	ErrTransactionInstallmentInvalid = errors.New("the current installment must not be larger than the number of installments")
)

// Account errors
var ErrAccountNameNotUnique = errors.New("the account name is already in use")

// Budget errors
var (
	ErrBudgetAmountNotPositive = errors.New("budget amounts must be larger than zero")
	ErrBudgetNotUnique         = errors.New("there already is a budget for this category, type and month")
)

// Goal errors
var (
	ErrGoalTargetNotPositive = errors.New("goal target amounts must be larger than zero")
	ErrGoalAmountNotPositive = errors.New("amounts added to a goal must be larger than zero")
	ErrGoalCurrentNegative   = errors.New("the current amount of a goal must not be negative")
	ErrGoalNameNotUnique     = errors.New("the goal name is already in use")
)

// Tag errors
var ErrTagNameNotUnique = errors.New("the tag name is already in use")

package models

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Goal is a savings target, independent of monthly periods.
type Goal struct {
	DefaultModel
	Name          string          `json:"name" gorm:"uniqueIndex" example:"Trip to Fernando de Noronha"`
	Note          string          `json:"note,omitempty"`
	TargetAmount  decimal.Decimal `json:"targetAmount" gorm:"type:DECIMAL(20,8)" example:"5000"`
	CurrentAmount decimal.Decimal `json:"currentAmount" gorm:"type:DECIMAL(20,8)" example:"1250"`
	Deadline      *time.Time      `json:"deadline,omitempty"`
	Completed     bool            `json:"completed" example:"false"`
	Color         string          `json:"color" example:"#2EC4B6"`
	Icon          string          `json:"icon" example:"airplane"`
}

func (g *Goal) BeforeSave(_ *gorm.DB) error {
	g.Name = strings.TrimSpace(g.Name)
	g.Note = strings.TrimSpace(g.Note)

	if !g.TargetAmount.IsPositive() {
		return ErrGoalTargetNotPositive
	}

	if g.CurrentAmount.IsNegative() {
		return ErrGoalCurrentNegative
	}

	return nil
}

// AddAmount adds money to the goal and marks it as completed once the
// target is reached. Completion is one-way: reducing the target later
// does not revert it.
func (g *Goal) AddAmount(tx *gorm.DB, amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return ErrGoalAmountNotPositive
	}

	g.CurrentAmount = g.CurrentAmount.Add(amount)
	if g.CurrentAmount.GreaterThanOrEqual(g.TargetAmount) {
		g.Completed = true
	}

	return tx.Model(g).Select("CurrentAmount", "Completed").Updates(g).Error
}

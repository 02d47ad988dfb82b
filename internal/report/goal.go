package report

import (
	"time"

	"github.com/meubolso/backend/internal/models"
	"github.com/shopspring/decimal"
)

// GoalProgress is a goal together with its progress metrics.
//
// DaysRemaining and Overdue are only set for goals with a deadline.
type GoalProgress struct {
	models.Goal
	Percentage      decimal.Decimal `json:"percentage" example:"25"`        // CurrentAmount as share of TargetAmount, capped at 100
	RemainingAmount decimal.Decimal `json:"remainingAmount" example:"3750"` // TargetAmount - CurrentAmount, never negative
	DaysRemaining   *int            `json:"daysRemaining,omitempty" example:"31"`
	Overdue         *bool           `json:"overdue,omitempty" example:"false"`
}

// EvaluateGoals attaches progress metrics to goals.
//
// The completion flag is read from the stored goal, not recomputed: flipping
// it is the job of the add-amount write path. A completed goal is never
// overdue, no matter its deadline.
//
// The reference time is passed in explicitly so that callers control the
// clock, days are counted between UTC midnights.
func EvaluateGoals(goals []models.Goal, now time.Time) []GoalProgress {
	result := make([]GoalProgress, 0, len(goals))

	for _, goal := range goals {
		// Target amounts are validated to be positive on creation, see
		// EvaluateBudgets for the reasoning behind the guard.
		percentage := decimal.Zero
		if goal.TargetAmount.IsPositive() {
			percentage = decimal.Min(goal.CurrentAmount.Div(goal.TargetAmount).Mul(hundred), hundred)
		}

		progress := GoalProgress{
			Goal:            goal,
			Percentage:      percentage,
			RemainingAmount: decimal.Max(goal.TargetAmount.Sub(goal.CurrentAmount), decimal.Zero),
		}

		if goal.Deadline != nil {
			days := daysBetween(now, *goal.Deadline)
			overdue := days < 0 && !goal.Completed

			progress.DaysRemaining = &days
			progress.Overdue = &overdue
		}

		result = append(result, progress)
	}

	return result
}

// daysBetween counts the full days from the midnight of from to the
// midnight of to. A deadline of yesterday yields -1.
func daysBetween(from, to time.Time) int {
	from = midnight(from)
	to = midnight(to)

	return int(to.Sub(from).Hours() / 24)
}

func midnight(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

package v1

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/meubolso/backend/internal/httputil"
	"github.com/meubolso/backend/internal/models"
	"github.com/meubolso/backend/internal/report"
	"github.com/meubolso/backend/internal/types"
)

// RegisterMonthRoutes registers the routes for months with
// the RouterGroup that is passed.
func RegisterMonthRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", OptionsMonth)
		r.GET("", GetMonth)
	}
}

// Month is the dashboard for one calendar month: the transactions of the
// month including projected recurring occurrences, the totals, the
// comparison to the previous month and the state of all budgets and goals.
type Month struct {
	Month        types.Month             `json:"month" example:"2024-07-01T00:00:00Z"`
	Summary      report.Summary          `json:"summary"`
	Comparison   report.Comparison       `json:"comparison"`
	Transactions []Transaction           `json:"transactions"`
	Budgets      []report.BudgetSpending `json:"budgets"`
	Goals        []report.GoalProgress   `json:"goals"`
}

type MonthResponse struct {
	Data  *Month  `json:"data"`                                             // Data for the month
	Error *string `json:"error" example:"the month query parameter is required"` // The error, if any occurred
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Months
// @Success		204
// @Router			/v1/months [options]
func OptionsMonth(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get month data
// @Description	Returns the dashboard data for the given month: transactions including projected recurring occurrences, totals, the comparison to the previous month and all budgets of the month and goals with their progress
// @Tags			Months
// @Produce		json
// @Success		200		{object}	MonthResponse
// @Failure		400		{object}	MonthResponse
// @Failure		500		{object}	MonthResponse
// @Param			month	query		string	true	"The month in YYYY-MM format"
// @Router			/v1/months [get]
func GetMonth(c *gin.Context) {
	var query QueryMonth
	if err := c.Bind(&query); err != nil {
		s := httputil.ErrInvalidQuery.Error()
		c.JSON(http.StatusBadRequest, MonthResponse{
			Error: &s,
		})
		return
	}

	if query.Month.IsZero() {
		s := errMonthNotSetInQuery.Error()
		c.JSON(http.StatusBadRequest, MonthResponse{
			Error: &s,
		})
		return
	}

	month := types.MonthOf(query.Month)

	// The comparison needs the previous month and the projection needs all
	// recurring templates, so the full history is loaded once.
	var transactions []models.Transaction
	err := models.DB.Preload("Tags").Order("datetime(transactions.date) DESC").Find(&transactions).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), MonthResponse{
			Error: &e,
		})
		return
	}

	var budgets []models.Budget
	err = models.DB.Where("month = ?", month).Order("category ASC").Find(&budgets).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), MonthResponse{
			Error: &e,
		})
		return
	}

	var goals []models.Goal
	err = models.DB.Order("name ASC").Find(&goals).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), MonthResponse{
			Error: &e,
		})
		return
	}

	monthTransactions := report.ForMonth(transactions, month)
	summary := report.Summarize(monthTransactions)

	data := make([]Transaction, 0, len(monthTransactions))
	for _, transaction := range monthTransactions {
		data = append(data, newTransaction(c, transaction))
	}

	c.JSON(http.StatusOK, MonthResponse{
		Data: &Month{
			Month:        month,
			Summary:      summary,
			Comparison:   report.Compare(transactions, summary, month),
			Transactions: data,
			Budgets:      report.EvaluateBudgets(budgets, monthTransactions),
			Goals:        report.EvaluateGoals(goals, time.Now()),
		},
	})
}

package v1

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/meubolso/backend/internal/models"
	"github.com/meubolso/backend/internal/types"
	"github.com/shopspring/decimal"
)

type BudgetEditable struct {
	Category string                 `json:"category" example:"Groceries"`                                    // The category the ceiling applies to
	Type     models.TransactionType `json:"type" example:"EXPENSE" default:"EXPENSE"`                        // Whether the ceiling is for expenses or for expected income
	Amount   decimal.Decimal        `json:"amount" example:"600" minimum:"0.00000001"`                       // The ceiling for the month
	Month    types.Month            `json:"month" example:"2024-07-01T00:00:00.000000Z"`                     // The month the ceiling applies to
}

// model returns the database resource for the API representation of the editable fields
func (editable BudgetEditable) model() models.Budget {
	return models.Budget{
		Category: editable.Category,
		Type:     editable.Type,
		Amount:   editable.Amount,
		Month:    editable.Month,
	}
}

type BudgetLinks struct {
	Self         string `json:"self" example:"https://example.com/api/v1/budgets/eb8ba8e9-4e68-4c0e-b58a-95a374441bb4"`       // The budget itself
	Transactions string `json:"transactions" example:"https://example.com/api/v1/transactions?category=Groceries&month=2024-07"` // The transactions counting towards the budget
}

// Budget is the representation of a Budget in API v1.
type Budget struct {
	models.DefaultModel
	BudgetEditable
	Links BudgetLinks `json:"links"`
}

// newBudget returns the API v1 representation of the resource
func newBudget(c *gin.Context, model models.Budget) Budget {
	url := c.GetString(string(models.DBContextURL))

	return Budget{
		DefaultModel: model.DefaultModel,
		BudgetEditable: BudgetEditable{
			Category: model.Category,
			Type:     model.Type,
			Amount:   model.Amount,
			Month:    model.Month,
		},
		Links: BudgetLinks{
			Self:         fmt.Sprintf("%s/v1/budgets/%s", url, model.ID),
			Transactions: fmt.Sprintf("%s/v1/transactions?category=%s&month=%s", url, model.Category, model.Month),
		},
	}
}

type BudgetListResponse struct {
	Data       []Budget    `json:"data"`                                                          // List of budgets
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type BudgetCreateResponse struct {
	Error *string          `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []BudgetResponse `json:"data"`                                                          // List of created Budgets
}

func (b *BudgetCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	b.Data = append(b.Data, BudgetResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type BudgetResponse struct {
	Error *string `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred for this budget
	Data  *Budget `json:"data"`                                                          // The Budget data, if creation was successful
}

type BudgetQueryFilter struct {
	Category string                 `form:"category"`                                                     // Exact category
	Type     models.TransactionType `form:"type"`                                                         // Type of the budget
	Month    time.Time              `form:"month" time_format:"2006-01" time_utc:"1" filterField:"false"` // Only budgets of this month
	Offset   uint                   `form:"offset" filterField:"false"`                                   // The offset of the first Budget returned. Defaults to 0.
	Limit    int                    `form:"limit" filterField:"false"`                                    // Maximum number of Budgets to return. Defaults to 50.
}

func (f BudgetQueryFilter) model() models.Budget {
	return models.Budget{
		Category: f.Category,
		Type:     f.Type,
	}
}

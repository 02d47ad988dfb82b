package v1

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/meubolso/backend/internal/models"
	"github.com/shopspring/decimal"
)

type GoalEditable struct {
	Name          string          `json:"name" example:"Trip to Fernando de Noronha"`                  // Name of the goal
	Note          string          `json:"note,omitempty" example:"Aim for the low season" default:""`  // A longer description
	TargetAmount  decimal.Decimal `json:"targetAmount" example:"5000" minimum:"0.00000001"`            // The amount to be saved
	CurrentAmount decimal.Decimal `json:"currentAmount" example:"1250" minimum:"0" default:"0"`        // The amount saved so far
	Deadline      *time.Time      `json:"deadline,omitempty" example:"2024-12-01T00:00:00Z"`           // Optional date the goal should be reached by
	Color         string          `json:"color" example:"#2EC4B6" default:""`                          // Display color
	Icon          string          `json:"icon" example:"airplane" default:""`                          // Display icon
}

// model returns the database resource for the API representation of the editable fields
func (editable GoalEditable) model() models.Goal {
	return models.Goal{
		Name:          editable.Name,
		Note:          editable.Note,
		TargetAmount:  editable.TargetAmount,
		CurrentAmount: editable.CurrentAmount,
		Deadline:      editable.Deadline,
		Color:         editable.Color,
		Icon:          editable.Icon,
	}
}

type GoalLinks struct {
	Self      string `json:"self" example:"https://example.com/api/v1/goals/f81566e2-8a20-4c07-9b38-bcd9d72a3f33"`            // The goal itself
	AddAmount string `json:"addAmount" example:"https://example.com/api/v1/goals/f81566e2-8a20-4c07-9b38-bcd9d72a3f33/amount"` // Endpoint to add money to the goal
}

// Goal is the representation of a Goal in API v1.
type Goal struct {
	models.DefaultModel
	GoalEditable
	Completed bool      `json:"completed" example:"false"` // True once the target was reached, never reset automatically
	Links     GoalLinks `json:"links"`
}

// newGoal returns the API v1 representation of the resource
func newGoal(c *gin.Context, model models.Goal) Goal {
	url := c.GetString(string(models.DBContextURL))

	return Goal{
		DefaultModel: model.DefaultModel,
		GoalEditable: GoalEditable{
			Name:          model.Name,
			Note:          model.Note,
			TargetAmount:  model.TargetAmount,
			CurrentAmount: model.CurrentAmount,
			Deadline:      model.Deadline,
			Color:         model.Color,
			Icon:          model.Icon,
		},
		Completed: model.Completed,
		Links: GoalLinks{
			Self:      fmt.Sprintf("%s/v1/goals/%s", url, model.ID),
			AddAmount: fmt.Sprintf("%s/v1/goals/%s/amount", url, model.ID),
		},
	}
}

type GoalListResponse struct {
	Data       []Goal      `json:"data"`                                                          // List of goals
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type GoalCreateResponse struct {
	Error *string        `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []GoalResponse `json:"data"`                                                          // List of created Goals
}

func (g *GoalCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	g.Data = append(g.Data, GoalResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type GoalResponse struct {
	Error *string `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred for this goal
	Data  *Goal   `json:"data"`                                                          // The Goal data, if creation was successful
}

// GoalAmount is the request body for adding money to a goal.
type GoalAmount struct {
	Amount decimal.Decimal `json:"amount" example:"250" minimum:"0.00000001"` // The amount to add. Must be positive
}

type GoalQueryFilter struct {
	Name      string `form:"name" filterField:"false"`      // Fuzzy filter for the goal name
	Completed bool   `form:"completed"`                     // Is the goal completed?
	Offset    uint   `form:"offset" filterField:"false"`    // The offset of the first Goal returned. Defaults to 0.
	Limit     int    `form:"limit" filterField:"false"`     // Maximum number of Goals to return. Defaults to 50.
}

func (f GoalQueryFilter) model() models.Goal {
	return models.Goal{
		Completed: f.Completed,
	}
}

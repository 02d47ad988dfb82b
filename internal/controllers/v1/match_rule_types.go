package v1

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/meubolso/backend/internal/models"
)

type MatchRuleEditable struct {
	Priority      uint   `json:"priority" example:"1"`                            // The priority of the match rule
	Match         string `json:"match" example:"Uber*"`                           // The glob pattern to match the description of imported transactions against
	Category      string `json:"category" example:"Transport"`                    // The category set on matching transactions
	PaymentMethod string `json:"paymentMethod,omitempty" example:"Credit card"`   // The payment method set on matching transactions, optional
}

// model returns the database resource for the API representation of the editable fields
func (editable MatchRuleEditable) model() models.MatchRule {
	return models.MatchRule{
		Priority:      editable.Priority,
		Match:         editable.Match,
		Category:      editable.Category,
		PaymentMethod: editable.PaymentMethod,
	}
}

type MatchRuleLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/match-rules/d1b4a4e6-0b23-4ac2-8b4e-9799f3a0f2bb"` // The match rule itself
}

// MatchRule is the representation of a MatchRule in API v1.
type MatchRule struct {
	models.DefaultModel
	MatchRuleEditable
	Links MatchRuleLinks `json:"links"`
}

// newMatchRule returns the API v1 representation of the resource
func newMatchRule(c *gin.Context, model models.MatchRule) MatchRule {
	url := c.GetString(string(models.DBContextURL))

	return MatchRule{
		DefaultModel: model.DefaultModel,
		MatchRuleEditable: MatchRuleEditable{
			Priority:      model.Priority,
			Match:         model.Match,
			Category:      model.Category,
			PaymentMethod: model.PaymentMethod,
		},
		Links: MatchRuleLinks{
			Self: fmt.Sprintf("%s/v1/match-rules/%s", url, model.ID),
		},
	}
}

type MatchRuleListResponse struct {
	Data       []MatchRule `json:"data"`                                                          // List of match rules
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type MatchRuleCreateResponse struct {
	Error *string             `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []MatchRuleResponse `json:"data"`                                                          // List of created Match Rules
}

func (m *MatchRuleCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	m.Data = append(m.Data, MatchRuleResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type MatchRuleResponse struct {
	Error *string    `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred for this Match Rule
	Data  *MatchRule `json:"data"`                                                          // The Match Rule data, if creation was successful
}

type MatchRuleQueryFilter struct {
	Priority uint   `form:"priority"`                   // Filter by priority
	Match    string `form:"match" filterField:"false"`  // Fuzzy filter for the match pattern
	Category string `form:"category"`                   // Filter by the category that is set
	Offset   uint   `form:"offset" filterField:"false"` // The offset of the first Match Rule returned. Defaults to 0.
	Limit    int    `form:"limit" filterField:"false"`  // Maximum number of Match Rules to return. Defaults to 50.
}

func (f MatchRuleQueryFilter) model() models.MatchRule {
	return models.MatchRule{
		Priority: f.Priority,
		Category: f.Category,
	}
}

package v1

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/meubolso/backend/internal/models"
	"github.com/shopspring/decimal"
)

type AccountEditable struct {
	Name           string             `json:"name" example:"Nubank" default:""`                                                       // Name of the account
	Type           models.AccountType `json:"type" example:"CHECKING" default:"CHECKING"`                                             // Type of the account
	Institution    string             `json:"institution" example:"Nu Pagamentos S.A." default:""`                                    // The institution the account is held at
	InitialBalance decimal.Decimal    `json:"initialBalance" example:"173.12" minimum:"0.00000001" maximum:"999999999999.99999999"`   // Balance of the account before any transaction was recorded
	Archived       bool               `json:"archived" example:"true" default:"false"`                                                // Is the account archived?
	External       bool               `json:"external" example:"false" default:"false"`                                               // Was the account created by a statement import?
}

// model returns the database resource for the API representation of the editable fields
func (editable AccountEditable) model() models.Account {
	return models.Account{
		Name:           editable.Name,
		Type:           editable.Type,
		Institution:    editable.Institution,
		InitialBalance: editable.InitialBalance,
		Archived:       editable.Archived,
		External:       editable.External,
	}
}

type AccountLinks struct {
	Self         string `json:"self" example:"https://example.com/api/v1/accounts/af892e10-7e0a-4fb8-b1bc-4b6d88401ed2"`                     // The account itself
	Transactions string `json:"transactions" example:"https://example.com/api/v1/transactions?account=af892e10-7e0a-4fb8-b1bc-4b6d88401ed2"` // Transactions referencing the account
}

// Account is the representation of an Account in API v1.
type Account struct {
	models.DefaultModel
	AccountEditable
	Links AccountLinks `json:"links"`
}

// newAccount returns the API v1 representation of the resource
func newAccount(c *gin.Context, model models.Account) Account {
	url := c.GetString(string(models.DBContextURL))

	return Account{
		DefaultModel: model.DefaultModel,
		AccountEditable: AccountEditable{
			Name:           model.Name,
			Type:           model.Type,
			Institution:    model.Institution,
			InitialBalance: model.InitialBalance,
			Archived:       model.Archived,
			External:       model.External,
		},
		Links: AccountLinks{
			Self:         fmt.Sprintf("%s/v1/accounts/%s", url, model.ID),
			Transactions: fmt.Sprintf("%s/v1/transactions?account=%s", url, model.ID),
		},
	}
}

type AccountListResponse struct {
	Data       []Account   `json:"data"`                                                          // List of accounts
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type AccountCreateResponse struct {
	Error *string           `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []AccountResponse `json:"data"`                                                          // List of created Accounts
}

func (a *AccountCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	a.Data = append(a.Data, AccountResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type AccountResponse struct {
	Error *string  `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred for this account
	Data  *Account `json:"data"`                                                          // The Account data, if creation was successful
}

type AccountQueryFilter struct {
	Name        string             `form:"name" filterField:"false"`        // Fuzzy filter for the account name
	Type        models.AccountType `form:"type"`                            // Filter by the account type
	Institution string             `form:"institution" filterField:"false"` // Fuzzy filter for the institution
	Archived    bool               `form:"archived"`                        // Is the account archived?
	External    bool               `form:"external"`                        // Was the account created by a statement import?
	Offset      uint               `form:"offset" filterField:"false"`      // The offset of the first Account returned. Defaults to 0.
	Limit       int                `form:"limit" filterField:"false"`       // Maximum number of Accounts to return. Defaults to 50.
}

func (f AccountQueryFilter) model() models.Account {
	return models.Account{
		Type:     f.Type,
		Archived: f.Archived,
		External: f.External,
	}
}

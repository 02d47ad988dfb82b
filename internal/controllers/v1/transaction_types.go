package v1

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/meubolso/backend/internal/models"
	mb_uuid "github.com/meubolso/backend/internal/uuid"
	"github.com/shopspring/decimal"
)

type TransactionEditable struct {
	Date time.Time `json:"date" example:"2024-07-10T00:00:00Z"` // Date of the transaction. Only the day is used for all calculations

	// The maximum value is "999999999999.99999999", swagger unfortunately rounds this.
	Amount decimal.Decimal `json:"amount" example:"14.03" minimum:"0.00000001" maximum:"999999999999.99999999" multipleOf:"0.00000001"` // The amount for the transaction

	Description        string                 `json:"description" example:"Lunch" default:""`                    // A short description
	Type               models.TransactionType `json:"type" example:"EXPENSE"`                                    // Whether the transaction is an income or an expense
	Category           string                 `json:"category" example:"Food" default:""`                        // User-defined category
	PaymentMethod      string                 `json:"paymentMethod" example:"Pix" default:""`                    // User-defined payment method
	AccountID          *uuid.UUID             `json:"accountId" example:"fd81dc45-a3a2-468e-a6fa-b2618f30aa45"`  // ID of the account the transaction belongs to
	IsPaid             bool                   `json:"isPaid" example:"true" default:"false"`                     // Has the money actually moved?
	IsRecurring        bool                   `json:"isRecurring" example:"false" default:"false"`               // Is this a template for recurring occurrences?
	Frequency          models.Frequency       `json:"frequency,omitempty" example:"MONTHLY"`                     // Recurrence interval, required for recurring transactions
	Installments       uint                   `json:"installments,omitempty" example:"12"`                       // Total number of installments. Values above 1 create the whole series
	CurrentInstallment uint                   `json:"currentInstallment,omitempty" example:"3"`                  // Position of this transaction in the installment series
	ImportHash         string                 `json:"importHash,omitempty" default:""`                           // The SHA256 hash of the raw import line, for duplicate detection
	TagIDs             []uuid.UUID            `json:"tagIds"`                                                    // IDs of the tags attached to the transaction
}

// model returns the database resource for the API representation of the editable fields
func (editable TransactionEditable) model() models.Transaction {
	return models.Transaction{
		Date:               editable.Date,
		Amount:             editable.Amount,
		Description:        editable.Description,
		Type:               editable.Type,
		Category:           editable.Category,
		PaymentMethod:      editable.PaymentMethod,
		AccountID:          editable.AccountID,
		IsPaid:             editable.IsPaid,
		IsRecurring:        editable.IsRecurring,
		Frequency:          editable.Frequency,
		Installments:       editable.Installments,
		CurrentInstallment: editable.CurrentInstallment,
		ImportHash:         editable.ImportHash,
	}
}

type TransactionLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/transactions/d430d7c3-d14c-4712-9336-ee56965a6673"` // The transaction itself
}

// Transaction is the representation of a Transaction in API v1.
//
// Projected occurrences of recurring templates share this type. Their ID is
// the template ID suffixed with "_recurring_" and the projected month, they
// carry the template's ID in OriginalTransactionID and are never persisted.
type Transaction struct {
	ID string `json:"id" example:"d430d7c3-d14c-4712-9336-ee56965a6673"` // ID of the transaction. A string, projected occurrences have composite IDs
	models.Timestamps
	TransactionEditable
	Virtual               bool             `json:"virtual" example:"false"` // True for projected occurrences of recurring templates
	OriginalTransactionID *uuid.UUID       `json:"originalTransactionId,omitempty"`
	Links                 TransactionLinks `json:"links"`
}

// newTransaction returns the API v1 representation of the resource
func newTransaction(c *gin.Context, model models.Transaction) Transaction {
	url := c.GetString(string(models.DBContextURL))

	id := model.ID.String()
	if model.Virtual {
		id = model.VirtualID
	}

	tagIDs := make([]uuid.UUID, 0, len(model.Tags))
	for _, tag := range model.Tags {
		tagIDs = append(tagIDs, tag.ID)
	}

	return Transaction{
		ID:         id,
		Timestamps: model.Timestamps,
		TransactionEditable: TransactionEditable{
			Date:               model.Date,
			Amount:             model.Amount,
			Description:        model.Description,
			Type:               model.Type,
			Category:           model.Category,
			PaymentMethod:      model.PaymentMethod,
			AccountID:          model.AccountID,
			IsPaid:             model.IsPaid,
			IsRecurring:        model.IsRecurring,
			Frequency:          model.Frequency,
			Installments:       model.Installments,
			CurrentInstallment: model.CurrentInstallment,
			ImportHash:         model.ImportHash,
			TagIDs:             tagIDs,
		},
		Virtual:               model.Virtual,
		OriginalTransactionID: model.OriginalTransactionID,
		Links: TransactionLinks{
			Self: fmt.Sprintf("%s/v1/transactions/%s", url, model.ID),
		},
	}
}

type TransactionListResponse struct {
	Data       []Transaction `json:"data"`                                                          // List of transactions
	Error      *string       `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination   `json:"pagination"`                                                    // Pagination information
}

type TransactionCreateResponse struct {
	Error *string               `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []TransactionResponse `json:"data"`                                                          // List of created Transactions
}

func (t *TransactionCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	t.Data = append(t.Data, TransactionResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type TransactionResponse struct {
	Error *string      `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred for this transaction
	Data  *Transaction `json:"data"`                                                          // The Transaction data, if creation was successful
}

type TransactionQueryFilter struct {
	Month         time.Time              `form:"month" time_format:"2006-01" time_utc:"1" filterField:"false"` // Only transactions of this month, including projected occurrences
	FromDate      time.Time              `form:"fromDate" filterField:"false"`                                 // Transactions at and after this date. Ignores exact time, matches on the day of the RFC3339 timestamp provided.
	UntilDate     time.Time              `form:"untilDate" filterField:"false"`                                // Transactions before and at this date. Ignores exact time, matches on the day of the RFC3339 timestamp provided.
	Amount        decimal.Decimal        `form:"amount"`                                                       // Exact amount
	Description   string                 `form:"description" filterField:"false"`                              // Description contains this string
	Type          models.TransactionType `form:"type" filterField:"false"`                                     // Type of the transaction
	Category      string                 `form:"category"`                                                     // Exact category
	PaymentMethod string                 `form:"paymentMethod"`                                                // Exact payment method
	AccountID     mb_uuid.UUID           `form:"account" filterField:"false"`                                  // ID of the account
	IsPaid        bool                   `form:"isPaid"`                                                       // Has the money actually moved?
	IsRecurring   bool                   `form:"isRecurring"`                                                  // Only recurring templates
	Offset        uint                   `form:"offset" filterField:"false"`                                   // The offset of the first Transaction returned. Defaults to 0.
	Limit         int                    `form:"limit" filterField:"false"`                                    // Maximum number of Transactions to return. Defaults to 50.
}

func (f TransactionQueryFilter) model() models.Transaction {
	// This does not set the description, date, type and account fields
	// since they are handled in the controller function
	return TransactionEditable{
		Amount:        f.Amount,
		Category:      f.Category,
		PaymentMethod: f.PaymentMethod,
		IsPaid:        f.IsPaid,
		IsRecurring:   f.IsRecurring,
	}.model()
}

package v1

import (
	"fmt"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/meubolso/backend/internal/httputil"
	"github.com/meubolso/backend/internal/importer"
	csvimport "github.com/meubolso/backend/internal/importer/parser/csv"
	"github.com/meubolso/backend/internal/models"
	mb_uuid "github.com/meubolso/backend/internal/uuid"
	"github.com/ryanuber/go-glob"
)

type ImportPreviewQuery struct {
	AccountID mb_uuid.UUID `form:"accountId"` // ID of the account to import the transactions for, optional
}

// getUploadedFile returns the form file and handles potential errors.
func getUploadedFile(c *gin.Context, suffix string) (multipart.File, error) {
	formFile, err := c.FormFile("file")
	if formFile == nil {
		return nil, errNoFilePost
	}

	if err != nil {
		return nil, err
	}

	if !strings.HasSuffix(formFile.Filename, suffix) {
		return nil, fmt.Errorf("%w: %s", errWrongFileSuffix, suffix)
	}

	f, err := formFile.Open()
	if err != nil {
		return nil, err
	}

	return f, nil
}

// duplicateTransactions finds duplicate transactions by their import hash. For all input resources,
// existing resources with the same import hash are searched. If any exist, their IDs are set in the
// DuplicateTransactionIDs field.
func duplicateTransactions(transaction *importer.TransactionPreview) {
	var duplicates []models.Transaction
	models.DB.
		Where(models.Transaction{
			ImportHash: transaction.Transaction.ImportHash,
		}).
		Find(&duplicates)

	// When there are no resources, we want an empty list, not null
	// Therefore, we use make to create a slice with zero elements
	// which will be marshalled to an empty JSON array
	duplicateIDs := make([]uuid.UUID, 0, len(duplicates))
	for _, duplicate := range duplicates {
		duplicateIDs = append(duplicateIDs, duplicate.ID)
	}
	transaction.DuplicateTransactionIDs = duplicateIDs
}

// match applies the match rules to a transaction preview. Rules are passed
// in ascending priority order, the first rule whose glob pattern matches
// the description wins.
func match(transaction *importer.TransactionPreview, rules []models.MatchRule) {
	for _, rule := range rules {
		if !glob.Glob(rule.Match, transaction.Transaction.Description) {
			continue
		}

		transaction.Transaction.Category = rule.Category
		if rule.PaymentMethod != "" {
			transaction.Transaction.PaymentMethod = rule.PaymentMethod
		}
		transaction.MatchRuleID = rule.ID
		return
	}
}

// TransactionPreview is the API representation of a transaction that would
// be created by an import, for review before committing.
type TransactionPreview struct {
	Transaction             TransactionEditable `json:"transaction"`
	MatchRuleID             uuid.UUID           `json:"matchRuleId"`             // ID of the match rule that categorized the transaction, if any
	DuplicateTransactionIDs []uuid.UUID         `json:"duplicateTransactionIds"` // IDs of existing transactions with the same import hash
}

// newTransactionPreview returns the API v1 representation of the resource
func newTransactionPreview(preview importer.TransactionPreview) TransactionPreview {
	return TransactionPreview{
		Transaction: TransactionEditable{
			Date:          preview.Transaction.Date,
			Amount:        preview.Transaction.Amount,
			Description:   preview.Transaction.Description,
			Type:          preview.Transaction.Type,
			Category:      preview.Transaction.Category,
			PaymentMethod: preview.Transaction.PaymentMethod,
			AccountID:     preview.Transaction.AccountID,
			ImportHash:    preview.Transaction.ImportHash,
		},
		MatchRuleID:             preview.MatchRuleID,
		DuplicateTransactionIDs: preview.DuplicateTransactionIDs,
	}
}

type ImportPreviewList struct {
	Data  []TransactionPreview `json:"data"`                                                          // List of transaction previews
	Error *string              `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

// RegisterImportRoutes registers the routes for imports.
func RegisterImportRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("/csv", OptionsImportCsv)
		r.POST("/csv", ImportCsvPreview)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Import
// @Success		204
// @Router			/v1/import/csv [options]
func OptionsImportCsv(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Transaction import preview
// @Description	Parses a CSV file of transactions and returns a preview of the transactions that would be created. Match rules are applied to categorize the transactions and existing transactions with the same import hash are flagged as duplicates. Nothing is persisted.
// @Tags			Import
// @Accept			multipart/form-data
// @Produce		json
// @Success		200			{object}	ImportPreviewList
// @Failure		400			{object}	ImportPreviewList
// @Failure		404			{object}	ImportPreviewList
// @Failure		500			{object}	ImportPreviewList
// @Param			file		formData	file				true	"File to import"
// @Param			accountId	query		ImportPreviewQuery	false	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/import/csv [post]
func ImportCsvPreview(c *gin.Context) {
	var query ImportPreviewQuery
	err := c.BindQuery(&query)
	if err != nil {
		s := fmt.Errorf("accountId: %w", err).Error()
		c.JSON(http.StatusBadRequest, ImportPreviewList{
			Error: &s,
		})
		return
	}

	f, err := getUploadedFile(c, ".csv")
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ImportPreviewList{
			Error: &s,
		})
		return
	}

	// Verify that the account exists when one is given
	var account models.Account
	if query.AccountID != mb_uuid.Nil {
		err = models.DB.First(&account, query.AccountID).Error
		if err != nil {
			s := err.Error()
			c.JSON(status(err), ImportPreviewList{
				Error: &s,
			})
			return
		}
	}

	transactions, err := csvimport.Parse(f, account)
	if err != nil {
		// csvimport.Parse returns a usable error already, no parsing necessary
		s := err.Error()
		c.JSON(http.StatusBadRequest, ImportPreviewList{
			Error: &s,
		})
		return
	}

	// Match rules are applied in ascending priority order
	var matchRules []models.MatchRule
	err = models.DB.Order("priority asc").Find(&matchRules).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ImportPreviewList{
			Error: &s,
		})
		return
	}

	data := make([]TransactionPreview, 0, len(transactions))
	for _, transaction := range transactions {
		if len(matchRules) > 0 {
			match(&transaction, matchRules)
		}

		duplicateTransactions(&transaction)

		data = append(data, newTransactionPreview(transaction))
	}

	c.JSON(http.StatusOK, ImportPreviewList{Data: data})
}

package v1

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/meubolso/backend/internal/httputil"
	"github.com/meubolso/backend/internal/models"
	"github.com/meubolso/backend/internal/report"
	"github.com/meubolso/backend/internal/types"
	mb_uuid "github.com/meubolso/backend/internal/uuid"
	"golang.org/x/exp/slices"
	"gorm.io/gorm"
)

// RegisterTransactionRoutes registers the routes for transactions with
// the RouterGroup that is passed.
func RegisterTransactionRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsTransactionList)
		r.GET("", GetTransactions)
		r.POST("", CreateTransactions)
	}

	// Transaction with ID
	{
		r.OPTIONS("/:id", OptionsTransactionDetail)
		r.GET("/:id", GetTransaction)
		r.PATCH("/:id", UpdateTransaction)
		r.DELETE("/:id", DeleteTransaction)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Transactions
// @Success		204
// @Router			/v1/transactions [options]
func OptionsTransactionList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Transactions
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/transactions/{id} [options]
func OptionsTransactionDetail(c *gin.Context) {
	resourceOptionsDetail(c, models.Transaction{})
}

// tagsByID loads the tags for a list of IDs. All IDs must exist.
func tagsByID(tx *gorm.DB, ids []uuid.UUID) ([]models.Tag, error) {
	if len(ids) == 0 {
		return []models.Tag{}, nil
	}

	var tags []models.Tag
	err := tx.Where("id IN ?", ids).Find(&tags).Error
	if err != nil {
		return nil, err
	}

	if len(tags) != len(ids) {
		return nil, errTagNotFound
	}

	return tags, nil
}

// createInstallmentSeries stores one transaction per installment. The dates
// advance by one calendar month per installment, keeping the day of the
// first one clamped to the length of each target month.
func createInstallmentSeries(tx *gorm.DB, editable TransactionEditable, tags []models.Tag) ([]models.Transaction, error) {
	date := editable.Date
	if date.IsZero() {
		date = time.Now().In(time.UTC)
	}

	day := date.UTC().Day()
	origin := types.MonthOf(date)

	var created []models.Transaction
	for i := uint(1); i <= editable.Installments; i++ {
		transaction := editable.model()
		transaction.Date = origin.AddDate(0, int(i-1)).Date(day)
		transaction.CurrentInstallment = i
		transaction.Tags = tags

		if err := tx.Create(&transaction).Error; err != nil {
			return nil, err
		}

		created = append(created, transaction)
	}

	return created, nil
}

// @Summary		Create transactions
// @Description	Creates transactions from the list of submitted transaction data. A transaction with more than one installment creates the whole series, one stored transaction per month. The response code is the highest response code number that a single transaction creation would have caused. If it is not equal to 201, at least one transaction has an error.
// @Tags			Transactions
// @Produce		json
// @Success		201				{object}	TransactionCreateResponse
// @Failure		400				{object}	TransactionCreateResponse
// @Failure		404				{object}	TransactionCreateResponse
// @Failure		500				{object}	TransactionCreateResponse
// @Param			transactions	body		[]TransactionEditable	true	"Transactions"
// @Router			/v1/transactions [post]
func CreateTransactions(c *gin.Context) {
	var editables []TransactionEditable

	// Bind data and return error if not possible
	err := httputil.BindData(c, &editables)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TransactionCreateResponse{
			Error: &e,
		})
		return
	}

	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := TransactionCreateResponse{}

	for _, editable := range editables {
		tags, err := tagsByID(models.DB, editable.TagIDs)
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		// An installment purchase is stored as one transaction per
		// installment, all created in a single database transaction
		if editable.Installments > 1 {
			var series []models.Transaction
			err := models.DB.Transaction(func(tx *gorm.DB) error {
				var err error
				series, err = createInstallmentSeries(tx, editable, tags)
				return err
			})
			if err != nil {
				status = r.appendError(err, status)
				continue
			}

			for _, transaction := range series {
				data := newTransaction(c, transaction)
				r.Data = append(r.Data, TransactionResponse{Data: &data})
			}
			continue
		}

		transaction := editable.model()
		transaction.Tags = tags
		err = models.DB.Create(&transaction).Error
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		data := newTransaction(c, transaction)
		r.Data = append(r.Data, TransactionResponse{Data: &data})
	}

	c.JSON(status, r)
}

// @Summary		Get transactions
// @Description	Returns a list of transactions. When the month parameter is set, the stored transactions of that month are returned together with the projected occurrences of all recurring templates.
// @Tags			Transactions
// @Produce		json
// @Success		200	{object}	TransactionListResponse
// @Failure		400	{object}	TransactionListResponse
// @Failure		500	{object}	TransactionListResponse
// @Router			/v1/transactions [get]
// @Param			month			query	string	false	"Only transactions of this month in YYYY-MM format, including projected occurrences"
// @Param			fromDate		query	string	false	"Transactions at and after this date. Ignores exact time, matches on the day of the RFC3339 timestamp provided."
// @Param			untilDate		query	string	false	"Transactions before and at this date. Ignores exact time, matches on the day of the RFC3339 timestamp provided."
// @Param			amount			query	string	false	"Filter by amount"
// @Param			description		query	string	false	"Description contains this string"
// @Param			type			query	string	false	"Type of the transaction"
// @Param			category		query	string	false	"Exact category"
// @Param			paymentMethod	query	string	false	"Exact payment method"
// @Param			account			query	string	false	"Filter by account ID"
// @Param			isPaid			query	bool	false	"Has the money actually moved?"
// @Param			isRecurring		query	bool	false	"Only recurring templates"
// @Param			offset			query	uint	false	"The offset of the first Transaction returned. Defaults to 0."
// @Param			limit			query	int		false	"Maximum number of Transactions to return. Defaults to 50."
func GetTransactions(c *gin.Context) {
	var filter TransactionQueryFilter
	if err := c.Bind(&filter); err != nil {
		s := httputil.ErrInvalidQuery.Error()
		c.JSON(http.StatusBadRequest, TransactionListResponse{
			Error: &s,
		})
		return
	}

	// Get the fields set in the filter
	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)

	model := filter.model()
	q := models.DB.Order("datetime(transactions.date) DESC, datetime(transactions.created_at) DESC").Preload("Tags").Where(&model, queryFields...)

	// Filter to the calendar month
	if !filter.Month.IsZero() {
		month := types.MonthOf(filter.Month)
		q = q.Where("transactions.date >= date(?)", time.Time(month)).Where("transactions.date < date(?)", time.Time(month.AddDate(0, 1)))
	}

	if !filter.FromDate.IsZero() {
		q = q.Where("transactions.date >= date(?)", time.Date(filter.FromDate.Year(), filter.FromDate.Month(), filter.FromDate.Day(), 0, 0, 0, 0, time.UTC))
	}

	if !filter.UntilDate.IsZero() {
		q = q.Where("transactions.date < date(?)", time.Date(filter.UntilDate.Year(), filter.UntilDate.Month(), filter.UntilDate.Day()+1, 0, 0, 0, 0, time.UTC))
	}

	if filter.Type != "" {
		if !slices.Contains([]models.TransactionType{models.TransactionTypeIncome, models.TransactionTypeExpense}, filter.Type) {
			s := errTransactionTypeInvalid.Error()
			c.JSON(http.StatusBadRequest, TransactionListResponse{
				Error: &s,
			})
			return
		}

		q = q.Where("transactions.type = ?", filter.Type)
	}

	if filter.AccountID != mb_uuid.Nil {
		q = q.Where("transactions.account_id = ?", filter.AccountID.UUID)
	}

	if filter.Description != "" {
		q = q.Where("transactions.description LIKE ?", fmt.Sprintf("%%%s%%", filter.Description))
	} else if slices.Contains(setFields, "Description") {
		q = q.Where("transactions.description = ''")
	}

	// Set the offset. Does not need checking since the default is 0
	q = q.Offset(int(filter.Offset))

	// Default to 50 transactions and set the limit
	limit := 50
	if slices.Contains(setFields, "Limit") {
		limit = filter.Limit
	}
	q = q.Limit(limit)

	var transactions []models.Transaction
	err := q.Find(&transactions).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TransactionListResponse{
			Error: &e,
		})
		return
	}

	var count int64
	err = q.Limit(-1).Offset(-1).Count(&count).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TransactionListResponse{
			Error: &e,
		})
		return
	}

	// For a month view, append the projected occurrences of all recurring
	// templates. They are computed on the fly and not paginated.
	if !filter.Month.IsZero() {
		var templates []models.Transaction
		err = models.DB.Preload("Tags").Where(&models.Transaction{IsRecurring: true}, "IsRecurring").Find(&templates).Error
		if err != nil {
			e := err.Error()
			c.JSON(status(err), TransactionListResponse{
				Error: &e,
			})
			return
		}

		transactions = append(transactions, report.ProjectRecurring(templates, types.MonthOf(filter.Month))...)
	}

	data := make([]Transaction, 0, len(transactions))
	for _, transaction := range transactions {
		data = append(data, newTransaction(c, transaction))
	}

	c.JSON(http.StatusOK, TransactionListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Get transaction
// @Description	Returns a specific transaction
// @Tags			Transactions
// @Produce		json
// @Success		200	{object}	TransactionResponse
// @Failure		400	{object}	TransactionResponse
// @Failure		404	{object}	TransactionResponse
// @Failure		500	{object}	TransactionResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/transactions/{id} [get]
func GetTransaction(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TransactionResponse{
			Error: &e,
		})
		return
	}

	var transaction models.Transaction
	err = models.DB.Preload("Tags").First(&transaction, uri.ID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TransactionResponse{
			Error: &e,
		})
		return
	}

	data := newTransaction(c, transaction)
	c.JSON(http.StatusOK, TransactionResponse{Data: &data})
}

// @Summary		Update transaction
// @Description	Updates an existing transaction. Only values to be updated need to be specified.
// @Tags			Transactions
// @Accept			json
// @Produce		json
// @Success		200			{object}	TransactionResponse
// @Failure		400			{object}	TransactionResponse
// @Failure		404			{object}	TransactionResponse
// @Failure		500			{object}	TransactionResponse
// @Param			id			path		URIID				true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			transaction	body		TransactionEditable	true	"Transaction"
// @Router			/v1/transactions/{id} [patch]
func UpdateTransaction(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TransactionResponse{
			Error: &e,
		})
		return
	}

	var transaction models.Transaction
	err = models.DB.Preload("Tags").First(&transaction, uri.ID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TransactionResponse{
			Error: &e,
		})
		return
	}

	// Get the fields that are set to be updated
	updateFields, err := httputil.GetBodyFields(c, TransactionEditable{})
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TransactionResponse{
			Error: &e,
		})
		return
	}

	// Bind the update for the patch
	var update TransactionEditable
	err = httputil.BindData(c, &update)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TransactionResponse{
			Error: &e,
		})
		return
	}

	// If the amount set via the API request is not existent or
	// is 0, we use the old amount
	if update.Amount.IsZero() {
		update.Amount = transaction.Amount
	}

	// Tags are a relation, they cannot be updated with the other columns
	if i := slices.Index(updateFields, any("TagIDs")); i >= 0 {
		updateFields = slices.Delete(updateFields, i, i+1)

		tags, err := tagsByID(models.DB, update.TagIDs)
		if err != nil {
			e := err.Error()
			c.JSON(status(err), TransactionResponse{
				Error: &e,
			})
			return
		}

		err = models.DB.Model(&transaction).Association("Tags").Replace(tags)
		if err != nil {
			e := err.Error()
			c.JSON(status(err), TransactionResponse{
				Error: &e,
			})
			return
		}
	}

	err = models.DB.Model(&transaction).Select("", updateFields...).Updates(update.model()).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TransactionResponse{
			Error: &e,
		})
		return
	}

	data := newTransaction(c, transaction)
	c.JSON(http.StatusOK, TransactionResponse{Data: &data})
}

// @Summary		Delete transaction
// @Description	Deletes a transaction
// @Tags			Transactions
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/transactions/{id} [delete]
func DeleteTransaction(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	var transaction models.Transaction
	err = models.DB.First(&transaction, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.Delete(&transaction).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}

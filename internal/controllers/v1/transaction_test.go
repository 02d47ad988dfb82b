package v1_test

import (
	"fmt"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	v1 "github.com/meubolso/backend/internal/controllers/v1"
	"github.com/meubolso/backend/internal/models"
	"github.com/meubolso/backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestTransactionsDBClosed verifies that errors are processed correctly when
// the database is closed.
func (suite *TestSuiteStandard) TestTransactionsDBClosed() {
	tests := []struct {
		name string             // Name of the test
		test func(t *testing.T) // Code to run
	}{
		{
			"Creation fails",
			func(t *testing.T) {
				createTestTransaction(t, v1.TransactionEditable{}, http.StatusInternalServerError)
			},
		},
		{
			"GET fails",
			func(t *testing.T) {
				recorder := test.Request(t, http.MethodGet, "http://example.com/v1/transactions", "")
				test.AssertHTTPStatus(t, &recorder, http.StatusInternalServerError)

				var response v1.TransactionListResponse
				test.DecodeResponse(t, &recorder, &response)
				assert.Contains(t, *response.Error, models.ErrGeneral.Error())
			},
		},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			suite.CloseDB()

			tt.test(t)
		})
	}
}

// TestTransactionsOptions verifies that OPTIONS requests are handled correctly.
func (suite *TestSuiteStandard) TestTransactionsOptions() {
	tests := []struct {
		name   string
		id     string // path at the Transactions endpoint to test
		status int    // Expected HTTP status code
	}{
		{"No Transaction with this ID", uuid.New().String(), http.StatusNotFound},
		{"Not a valid UUID", "NotParseableAsUUID", http.StatusBadRequest},
		{"Transaction exists", createTestTransaction(suite.T(), v1.TransactionEditable{}).Data.ID, http.StatusNoContent},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			path := fmt.Sprintf("%s/%s", "http://example.com/v1/transactions", tt.id)
			r := test.Request(t, http.MethodOptions, path, "")
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}
}

func (suite *TestSuiteStandard) TestTransactionsCreate() {
	account := createTestAccount(suite.T(), v1.AccountEditable{})
	tag := createTestTag(suite.T(), v1.TagEditable{Name: "work"})

	accountID := account.Data.ID
	transaction := createTestTransaction(suite.T(), v1.TransactionEditable{
		Description: "Almoço com clientes",
		Amount:      decimal.NewFromFloat(74.90),
		Type:        models.TransactionTypeExpense,
		Category:    "Food",
		AccountID:   &accountID,
		TagIDs:      []uuid.UUID{tag.Data.ID},
	})

	require.NotNil(suite.T(), transaction.Data)
	assert.Equal(suite.T(), "Almoço com clientes", transaction.Data.Description)
	assert.False(suite.T(), transaction.Data.Virtual)

	if assert.Len(suite.T(), transaction.Data.TagIDs, 1) {
		assert.Equal(suite.T(), tag.Data.ID, transaction.Data.TagIDs[0])
	}
}

func (suite *TestSuiteStandard) TestTransactionsCreateErrors() {
	tests := []struct {
		name     string
		editable v1.TransactionEditable
		err      error
	}{
		{
			"Negative amount",
			v1.TransactionEditable{Amount: decimal.NewFromFloat(-10), Type: models.TransactionTypeExpense},
			models.ErrTransactionAmountNegative,
		},
		{
			"Invalid type",
			v1.TransactionEditable{Amount: decimal.NewFromFloat(10), Type: "TRANSFER"},
			models.ErrTransactionTypeInvalid,
		},
		{
			"Recurring without frequency",
			v1.TransactionEditable{Amount: decimal.NewFromFloat(10), Type: models.TransactionTypeExpense, IsRecurring: true},
			models.ErrTransactionFrequencyRequired,
		},
		{
			"Unknown tag",
			v1.TransactionEditable{Amount: decimal.NewFromFloat(10), Type: models.TransactionTypeExpense, TagIDs: []uuid.UUID{uuid.New()}},
			nil,
		},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPost, "http://example.com/v1/transactions", []v1.TransactionEditable{tt.editable})
			test.AssertHTTPStatus(t, &r, http.StatusBadRequest)

			if tt.err != nil {
				var response v1.TransactionCreateResponse
				test.DecodeResponse(t, &r, &response)
				assert.Equal(t, tt.err.Error(), *response.Data[0].Error)
			}
		})
	}
}

// TestTransactionsCreateInstallments verifies that an installment purchase
// creates the whole series with monthly advancing, clamped dates.
func (suite *TestSuiteStandard) TestTransactionsCreateInstallments() {
	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/transactions", []v1.TransactionEditable{{
		Description:  "Notebook",
		Amount:       decimal.NewFromFloat(350),
		Type:         models.TransactionTypeExpense,
		Date:         time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC),
		Installments: 3,
	}})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	var response v1.TransactionCreateResponse
	test.DecodeResponse(suite.T(), &r, &response)
	require.Len(suite.T(), response.Data, 3)

	// 2024 is a leap year, January 31st clamps to February 29th
	expectedDates := []time.Time{
		time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC),
	}

	for i, transaction := range response.Data {
		require.NotNil(suite.T(), transaction.Data)
		assert.True(suite.T(), expectedDates[i].Equal(transaction.Data.Date), "Date for installment %d is wrong: %s", i+1, transaction.Data.Date)
		assert.Equal(suite.T(), uint(i+1), transaction.Data.CurrentInstallment)
		assert.Equal(suite.T(), uint(3), transaction.Data.Installments)
		assert.True(suite.T(), transaction.Data.Amount.Equal(decimal.NewFromFloat(350)))
	}
}

// TestTransactionsMonthProjection verifies that the month filter includes
// projected occurrences of recurring templates.
func (suite *TestSuiteStandard) TestTransactionsMonthProjection() {
	template := createTestTransaction(suite.T(), v1.TransactionEditable{
		Description: "Rent",
		Amount:      decimal.NewFromFloat(1450),
		Type:        models.TransactionTypeExpense,
		Date:        time.Date(2024, 6, 5, 0, 0, 0, 0, time.UTC),
		IsRecurring: true,
		Frequency:   models.FrequencyMonthly,
	})

	_ = createTestTransaction(suite.T(), v1.TransactionEditable{
		Description: "Salário",
		Amount:      decimal.NewFromFloat(5000),
		Type:        models.TransactionTypeIncome,
		Date:        time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC),
	})

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/transactions?month=2024-07", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.TransactionListResponse
	test.DecodeResponse(suite.T(), &r, &response)
	require.Len(suite.T(), response.Data, 2)

	var virtual *v1.Transaction
	for i := range response.Data {
		if response.Data[i].Virtual {
			virtual = &response.Data[i]
		}
	}

	require.NotNil(suite.T(), virtual, "No projected occurrence in the response")
	assert.Equal(suite.T(), fmt.Sprintf("%s_recurring_2024-07", template.Data.ID), virtual.ID)
	assert.Equal(suite.T(), template.Data.ID, virtual.OriginalTransactionID.String())
	assert.True(suite.T(), virtual.Date.Equal(time.Date(2024, 7, 5, 0, 0, 0, 0, time.UTC)))
	assert.True(suite.T(), virtual.Amount.Equal(decimal.NewFromFloat(1450)))
}

// TestTransactionsNoProjectionIntoOriginMonth verifies that the month the
// template itself was created in only contains the stored row.
func (suite *TestSuiteStandard) TestTransactionsNoProjectionIntoOriginMonth() {
	_ = createTestTransaction(suite.T(), v1.TransactionEditable{
		Description: "Rent",
		Amount:      decimal.NewFromFloat(1450),
		Type:        models.TransactionTypeExpense,
		Date:        time.Date(2024, 6, 5, 0, 0, 0, 0, time.UTC),
		IsRecurring: true,
		Frequency:   models.FrequencyMonthly,
	})

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/transactions?month=2024-06", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.TransactionListResponse
	test.DecodeResponse(suite.T(), &r, &response)
	require.Len(suite.T(), response.Data, 1)
	assert.False(suite.T(), response.Data[0].Virtual)

	// Months before the origin get nothing at all
	r = test.Request(suite.T(), http.MethodGet, "http://example.com/v1/transactions?month=2024-05", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	test.DecodeResponse(suite.T(), &r, &response)
	assert.Len(suite.T(), response.Data, 0)
}

// TestTransactionsYearlyProjection verifies the calendar month gate for
// yearly templates.
func (suite *TestSuiteStandard) TestTransactionsYearlyProjection() {
	_ = createTestTransaction(suite.T(), v1.TransactionEditable{
		Description: "IPVA",
		Amount:      decimal.NewFromFloat(1800),
		Type:        models.TransactionTypeExpense,
		Date:        time.Date(2023, 7, 10, 0, 0, 0, 0, time.UTC),
		IsRecurring: true,
		Frequency:   models.FrequencyYearly,
	})

	tests := []struct {
		month string
		len   int
	}{
		{"2024-07", 1},
		{"2024-08", 0},
		{"2023-07", 0},
		{"2025-07", 1},
	}

	for _, tt := range tests {
		suite.T().Run(tt.month, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/transactions?month=%s", tt.month), "")
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var response v1.TransactionListResponse
			test.DecodeResponse(t, &r, &response)

			virtuals := 0
			for _, transaction := range response.Data {
				if transaction.Virtual {
					virtuals++
				}
			}
			assert.Equal(t, tt.len, virtuals)
		})
	}
}

func (suite *TestSuiteStandard) TestTransactionsGetFilter() {
	account := createTestAccount(suite.T(), v1.AccountEditable{})
	accountID := account.Data.ID

	_ = createTestTransaction(suite.T(), v1.TransactionEditable{
		Description: "Supermercado Pão de Açúcar",
		Amount:      decimal.NewFromFloat(250.40),
		Type:        models.TransactionTypeExpense,
		Category:    "Groceries",
		Date:        time.Date(2024, 7, 5, 0, 0, 0, 0, time.UTC),
		AccountID:   &accountID,
		IsPaid:      true,
	})

	_ = createTestTransaction(suite.T(), v1.TransactionEditable{
		Description: "Salário",
		Amount:      decimal.NewFromFloat(5000),
		Type:        models.TransactionTypeIncome,
		Category:    "Salary",
		Date:        time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC),
	})

	_ = createTestTransaction(suite.T(), v1.TransactionEditable{
		Description: "Uber",
		Amount:      decimal.NewFromFloat(32.90),
		Type:        models.TransactionTypeExpense,
		Category:    "Transport",
		Date:        time.Date(2024, 8, 2, 0, 0, 0, 0, time.UTC),
	})

	tests := []struct {
		name  string
		query string
		len   int
	}{
		{"All transactions", "", 3},
		{"Type expense", "type=EXPENSE", 2},
		{"Type income", "type=INCOME", 1},
		{"Fuzzy description", "description=mercado", 1},
		{"Exact category", "category=Transport", 1},
		{"Account", fmt.Sprintf("account=%s", accountID), 1},
		{"Is paid", "isPaid=true", 1},
		{"Amount", "amount=5000", 1},
		{"From date", "fromDate=2024-07-03T00:00:00Z", 2},
		{"Until date", "untilDate=2024-07-05T00:00:00Z", 2},
		{"Limit 1", "limit=1", 1},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/transactions?%s", tt.query), "")
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var response v1.TransactionListResponse
			test.DecodeResponse(t, &r, &response)
			assert.Len(t, response.Data, tt.len)
		})
	}
}

func (suite *TestSuiteStandard) TestTransactionsGetInvalidType() {
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/transactions?type=TRANSFER", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	var response v1.TransactionListResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Contains(suite.T(), *response.Error, "transaction type is invalid")
}

func (suite *TestSuiteStandard) TestTransactionsUpdate() {
	transaction := createTestTransaction(suite.T(), v1.TransactionEditable{
		Description: "Almoço",
		Amount:      decimal.NewFromFloat(42.17),
	})

	r := test.Request(suite.T(), http.MethodPatch, transaction.Data.Links.Self, map[string]any{
		"description": "Almoço de domingo",
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var updated v1.TransactionResponse
	test.DecodeResponse(suite.T(), &r, &updated)

	assert.Equal(suite.T(), "Almoço de domingo", updated.Data.Description)
	assert.True(suite.T(), updated.Data.Amount.Equal(decimal.NewFromFloat(42.17)), "Amount was changed by an unrelated update")
}

// TestTransactionsUpdateFrequency verifies that the recurrence interval of
// a template can be corrected after creation.
func (suite *TestSuiteStandard) TestTransactionsUpdateFrequency() {
	transaction := createTestTransaction(suite.T(), v1.TransactionEditable{
		Description: "Seguro do carro",
		Amount:      decimal.NewFromFloat(210.90),
		IsRecurring: true,
		Frequency:   models.FrequencyMonthly,
	})

	r := test.Request(suite.T(), http.MethodPatch, transaction.Data.Links.Self, map[string]any{
		"frequency": "YEARLY",
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	r = test.Request(suite.T(), http.MethodGet, transaction.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var updated v1.TransactionResponse
	test.DecodeResponse(suite.T(), &r, &updated)
	assert.Equal(suite.T(), models.FrequencyYearly, updated.Data.Frequency)
}

func (suite *TestSuiteStandard) TestTransactionsUpdateTags() {
	tag := createTestTag(suite.T(), v1.TagEditable{Name: "food"})
	otherTag := createTestTag(suite.T(), v1.TagEditable{Name: "weekend"})

	transaction := createTestTransaction(suite.T(), v1.TransactionEditable{
		Description: "Almoço",
		TagIDs:      []uuid.UUID{tag.Data.ID},
	})

	r := test.Request(suite.T(), http.MethodPatch, transaction.Data.Links.Self, map[string]any{
		"tagIds": []string{otherTag.Data.ID.String()},
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	// Read back to verify the association was replaced
	r = test.Request(suite.T(), http.MethodGet, transaction.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var updated v1.TransactionResponse
	test.DecodeResponse(suite.T(), &r, &updated)

	if assert.Len(suite.T(), updated.Data.TagIDs, 1) {
		assert.Equal(suite.T(), otherTag.Data.ID, updated.Data.TagIDs[0])
	}
}

func (suite *TestSuiteStandard) TestTransactionsUpdateUnknownTag() {
	transaction := createTestTransaction(suite.T(), v1.TransactionEditable{})

	r := test.Request(suite.T(), http.MethodPatch, transaction.Data.Links.Self, map[string]any{
		"tagIds": []string{uuid.NewString()},
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	var response v1.TransactionResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.True(suite.T(), strings.Contains(*response.Error, "tag IDs do not exist"))
}

func (suite *TestSuiteStandard) TestTransactionsDelete() {
	transaction := createTestTransaction(suite.T(), v1.TransactionEditable{})

	r := test.Request(suite.T(), http.MethodDelete, transaction.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = test.Request(suite.T(), http.MethodGet, transaction.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

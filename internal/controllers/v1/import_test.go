package v1_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/google/uuid"
	v1 "github.com/meubolso/backend/internal/controllers/v1"
	"github.com/meubolso/backend/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestImportCsvOptions() {
	r := test.Request(suite.T(), http.MethodOptions, "http://example.com/v1/import/csv", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	assert.Equal(suite.T(), "OPTIONS, POST", r.Header().Get("allow"))
}

func (suite *TestSuiteStandard) TestImportCsvErrors() {
	wrongSuffix, wrongSuffixHeaders := test.LoadTestFile(suite.T(), "importer/wrong-suffix.txt")

	tests := []struct {
		name    string
		url     string
		body    any
		headers map[string]string
		status  int
	}{
		{"No file", "http://example.com/v1/import/csv", "", nil, http.StatusBadRequest},
		{"Wrong file suffix", "http://example.com/v1/import/csv", wrongSuffix, wrongSuffixHeaders, http.StatusBadRequest},
		{"Invalid account ID", "http://example.com/v1/import/csv?accountId=NotAUUID", "", nil, http.StatusBadRequest},
		{"No account with this ID", fmt.Sprintf("http://example.com/v1/import/csv?accountId=%s", uuid.New()), "", nil, http.StatusNotFound},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			body, headers := tt.body, tt.headers

			// The account check needs a file to get past the upload handling
			if tt.status == http.StatusNotFound {
				body, headers = test.LoadTestFile(t, "importer/csv/nubank.csv")
			}

			r := test.Request(t, http.MethodPost, tt.url, body, headers)
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}
}

func (suite *TestSuiteStandard) TestImportCsvPreview() {
	body, headers := test.LoadTestFile(suite.T(), "importer/csv/nubank.csv")

	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/import/csv", body, headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.ImportPreviewList
	test.DecodeResponse(suite.T(), &r, &response)
	require.Len(suite.T(), response.Data, 3)

	for _, preview := range response.Data {
		assert.True(suite.T(), preview.Transaction.Amount.IsPositive(), "Amounts are always positive, got %s", preview.Transaction.Amount)
		assert.NotEmpty(suite.T(), preview.Transaction.ImportHash)
		assert.Nil(suite.T(), preview.Transaction.AccountID)
		assert.Empty(suite.T(), preview.DuplicateTransactionIDs)
	}
}

// TestImportCsvPreviewMatchRules verifies that the highest priority matching
// rule categorizes a transaction.
func (suite *TestSuiteStandard) TestImportCsvPreviewMatchRules() {
	rule := createTestMatchRule(suite.T(), v1.MatchRuleEditable{
		Priority: 1,
		Match:    "Uber*",
		Category: "Transport",
	})

	// A later rule that would also match, but must not win
	_ = createTestMatchRule(suite.T(), v1.MatchRuleEditable{
		Priority:      2,
		Match:         "Uber*",
		Category:      "Other",
		PaymentMethod: "Credit card",
	})

	body, headers := test.LoadTestFile(suite.T(), "importer/csv/nubank.csv")

	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/import/csv", body, headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.ImportPreviewList
	test.DecodeResponse(suite.T(), &r, &response)
	require.Len(suite.T(), response.Data, 3)

	matched := 0
	for _, preview := range response.Data {
		if preview.Transaction.Description == "Uber" {
			assert.Equal(suite.T(), "Transport", preview.Transaction.Category)
			assert.Equal(suite.T(), rule.Data.ID, preview.MatchRuleID)
			matched++
		} else {
			assert.Equal(suite.T(), uuid.Nil, preview.MatchRuleID)
		}
	}

	assert.Equal(suite.T(), 1, matched)
}

// TestImportCsvPreviewAccount verifies that the account is set on all
// previews when one is given.
func (suite *TestSuiteStandard) TestImportCsvPreviewAccount() {
	account := createTestAccount(suite.T(), v1.AccountEditable{})

	body, headers := test.LoadTestFile(suite.T(), "importer/csv/nubank.csv")

	r := test.Request(suite.T(), http.MethodPost, fmt.Sprintf("http://example.com/v1/import/csv?accountId=%s", account.Data.ID), body, headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.ImportPreviewList
	test.DecodeResponse(suite.T(), &r, &response)
	require.Len(suite.T(), response.Data, 3)

	for _, preview := range response.Data {
		require.NotNil(suite.T(), preview.Transaction.AccountID)
		assert.Equal(suite.T(), account.Data.ID, *preview.Transaction.AccountID)
	}
}

// TestImportCsvPreviewDuplicates verifies that previously imported
// transactions are flagged by their import hash.
func (suite *TestSuiteStandard) TestImportCsvPreviewDuplicates() {
	body, headers := test.LoadTestFile(suite.T(), "importer/csv/nubank.csv")

	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/import/csv", body, headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.ImportPreviewList
	test.DecodeResponse(suite.T(), &r, &response)
	require.Len(suite.T(), response.Data, 3)

	// Commit the first preview as a transaction
	transaction := createTestTransaction(suite.T(), response.Data[0].Transaction)

	// A second preview flags it as a duplicate
	body, headers = test.LoadTestFile(suite.T(), "importer/csv/nubank.csv")

	r = test.Request(suite.T(), http.MethodPost, "http://example.com/v1/import/csv", body, headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	test.DecodeResponse(suite.T(), &r, &response)
	require.Len(suite.T(), response.Data, 3)

	if assert.Len(suite.T(), response.Data[0].DuplicateTransactionIDs, 1) {
		assert.Equal(suite.T(), transaction.Data.ID, response.Data[0].DuplicateTransactionIDs[0].String())
	}
}

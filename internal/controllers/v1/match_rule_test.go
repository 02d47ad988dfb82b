package v1_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/google/uuid"
	v1 "github.com/meubolso/backend/internal/controllers/v1"
	"github.com/meubolso/backend/test"
	"github.com/stretchr/testify/assert"
)

// TestMatchRulesOptions verifies that OPTIONS requests are handled correctly.
func (suite *TestSuiteStandard) TestMatchRulesOptions() {
	tests := []struct {
		name   string
		id     string // path at the MatchRules endpoint to test
		status int    // Expected HTTP status code
	}{
		{"No MatchRule with this ID", uuid.New().String(), http.StatusNotFound},
		{"Not a valid UUID", "NotParseableAsUUID", http.StatusBadRequest},
		{"MatchRule exists", createTestMatchRule(suite.T(), v1.MatchRuleEditable{Match: "Uber*", Category: "Transport"}).Data.ID.String(), http.StatusNoContent},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			path := fmt.Sprintf("%s/%s", "http://example.com/v1/match-rules", tt.id)
			r := test.Request(t, http.MethodOptions, path, "")
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}
}

// TestMatchRulesSorting verifies that match rules are returned in priority
// order.
func (suite *TestSuiteStandard) TestMatchRulesSorting() {
	_ = createTestMatchRule(suite.T(), v1.MatchRuleEditable{Priority: 2, Match: "iFood*", Category: "Food"})
	_ = createTestMatchRule(suite.T(), v1.MatchRuleEditable{Priority: 1, Match: "Uber*", Category: "Transport"})
	_ = createTestMatchRule(suite.T(), v1.MatchRuleEditable{Priority: 1, Match: "99*", Category: "Transport"})

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/match-rules", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.MatchRuleListResponse
	test.DecodeResponse(suite.T(), &r, &response)

	if assert.Len(suite.T(), response.Data, 3) {
		assert.Equal(suite.T(), "99*", response.Data[0].Match)
		assert.Equal(suite.T(), "Uber*", response.Data[1].Match)
		assert.Equal(suite.T(), "iFood*", response.Data[2].Match)
	}
}

func (suite *TestSuiteStandard) TestMatchRulesGetFilter() {
	_ = createTestMatchRule(suite.T(), v1.MatchRuleEditable{Priority: 1, Match: "Uber*", Category: "Transport"})
	_ = createTestMatchRule(suite.T(), v1.MatchRuleEditable{Priority: 2, Match: "99*", Category: "Transport"})
	_ = createTestMatchRule(suite.T(), v1.MatchRuleEditable{Priority: 3, Match: "iFood*", Category: "Food", PaymentMethod: "Credit card"})

	tests := []struct {
		name  string
		query string
		len   int
	}{
		{"All match rules", "", 3},
		{"Category", "category=Transport", 2},
		{"Priority", "priority=3", 1},
		{"Fuzzy match", "match=Food", 1},
		{"Limit 2", "limit=2", 2},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/match-rules?%s", tt.query), "")
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var response v1.MatchRuleListResponse
			test.DecodeResponse(t, &r, &response)
			assert.Len(t, response.Data, tt.len)
		})
	}
}

func (suite *TestSuiteStandard) TestMatchRulesUpdate() {
	rule := createTestMatchRule(suite.T(), v1.MatchRuleEditable{Priority: 1, Match: "Uber*", Category: "Transport"})

	r := test.Request(suite.T(), http.MethodPatch, rule.Data.Links.Self, map[string]any{
		"match": "Uber *",
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var updated v1.MatchRuleResponse
	test.DecodeResponse(suite.T(), &r, &updated)

	assert.Equal(suite.T(), "Uber *", updated.Data.Match)
	assert.Equal(suite.T(), "Transport", updated.Data.Category)
}

func (suite *TestSuiteStandard) TestMatchRulesDelete() {
	rule := createTestMatchRule(suite.T(), v1.MatchRuleEditable{Match: "Uber*", Category: "Transport"})

	r := test.Request(suite.T(), http.MethodDelete, rule.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = test.Request(suite.T(), http.MethodGet, rule.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

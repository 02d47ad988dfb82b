package v1_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/google/uuid"
	v1 "github.com/meubolso/backend/internal/controllers/v1"
	"github.com/meubolso/backend/internal/models"
	"github.com/meubolso/backend/test"
	"github.com/stretchr/testify/assert"
)

// TestTagsOptions verifies that OPTIONS requests are handled correctly.
func (suite *TestSuiteStandard) TestTagsOptions() {
	tests := []struct {
		name   string
		id     string // path at the Tags endpoint to test
		status int    // Expected HTTP status code
	}{
		{"No Tag with this ID", uuid.New().String(), http.StatusNotFound},
		{"Not a valid UUID", "NotParseableAsUUID", http.StatusBadRequest},
		{"Tag exists", createTestTag(suite.T(), v1.TagEditable{}).Data.ID.String(), http.StatusNoContent},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			path := fmt.Sprintf("%s/%s", "http://example.com/v1/tags", tt.id)
			r := test.Request(t, http.MethodOptions, path, "")
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}
}

func (suite *TestSuiteStandard) TestTagsCreateDuplicateName() {
	_ = createTestTag(suite.T(), v1.TagEditable{Name: "vacation"})

	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/tags", []v1.TagEditable{{Name: "vacation"}})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	var response v1.TagCreateResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Equal(suite.T(), models.ErrTagNameNotUnique.Error(), *response.Data[0].Error)
}

func (suite *TestSuiteStandard) TestTagsGetFilter() {
	_ = createTestTag(suite.T(), v1.TagEditable{Name: "vacation", Color: "#FF9F1C"})
	_ = createTestTag(suite.T(), v1.TagEditable{Name: "work"})
	_ = createTestTag(suite.T(), v1.TagEditable{Name: "workshop"})

	tests := []struct {
		name  string
		query string
		len   int
	}{
		{"All tags", "", 3},
		{"Fuzzy name", "name=work", 2},
		{"Empty name", "name=", 0},
		{"Limit 1", "limit=1", 1},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/tags?%s", tt.query), "")
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var response v1.TagListResponse
			test.DecodeResponse(t, &r, &response)
			assert.Len(t, response.Data, tt.len)
		})
	}
}

func (suite *TestSuiteStandard) TestTagsUpdate() {
	tag := createTestTag(suite.T(), v1.TagEditable{Name: "vacation"})

	r := test.Request(suite.T(), http.MethodPatch, tag.Data.Links.Self, map[string]any{
		"color": "#2EC4B6",
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var updated v1.TagResponse
	test.DecodeResponse(suite.T(), &r, &updated)

	assert.Equal(suite.T(), "#2EC4B6", updated.Data.Color)
	assert.Equal(suite.T(), "vacation", updated.Data.Name)
}

// TestTagsDelete verifies that deleting a tag does not delete the
// transactions it was attached to.
func (suite *TestSuiteStandard) TestTagsDelete() {
	tag := createTestTag(suite.T(), v1.TagEditable{Name: "food"})
	transaction := createTestTransaction(suite.T(), v1.TransactionEditable{
		TagIDs: []uuid.UUID{tag.Data.ID},
	})

	r := test.Request(suite.T(), http.MethodDelete, tag.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = test.Request(suite.T(), http.MethodGet, tag.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)

	r = test.Request(suite.T(), http.MethodGet, transaction.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
}

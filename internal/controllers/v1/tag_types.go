package v1

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/meubolso/backend/internal/models"
)

type TagEditable struct {
	Name  string `json:"name" example:"vacation"`            // Name of the tag
	Color string `json:"color" example:"#FF9F1C" default:""` // Display color
}

// model returns the database resource for the API representation of the editable fields
func (editable TagEditable) model() models.Tag {
	return models.Tag{
		Name:  editable.Name,
		Color: editable.Color,
	}
}

type TagLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/tags/d1b4a4e6-0b23-4ac2-8b4e-9799f3a0f2bb"` // The tag itself
}

// Tag is the representation of a Tag in API v1.
type Tag struct {
	models.DefaultModel
	TagEditable
	Links TagLinks `json:"links"`
}

// newTag returns the API v1 representation of the resource
func newTag(c *gin.Context, model models.Tag) Tag {
	url := c.GetString(string(models.DBContextURL))

	return Tag{
		DefaultModel: model.DefaultModel,
		TagEditable: TagEditable{
			Name:  model.Name,
			Color: model.Color,
		},
		Links: TagLinks{
			Self: fmt.Sprintf("%s/v1/tags/%s", url, model.ID),
		},
	}
}

type TagListResponse struct {
	Data       []Tag       `json:"data"`                                                          // List of tags
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type TagCreateResponse struct {
	Error *string       `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []TagResponse `json:"data"`                                                          // List of created Tags
}

func (t *TagCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	t.Data = append(t.Data, TagResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type TagResponse struct {
	Error *string `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred for this tag
	Data  *Tag    `json:"data"`                                                          // The Tag data, if creation was successful
}

type TagQueryFilter struct {
	Name   string `form:"name" filterField:"false"`   // Fuzzy filter for the tag name
	Offset uint   `form:"offset" filterField:"false"` // The offset of the first Tag returned. Defaults to 0.
	Limit  int    `form:"limit" filterField:"false"`  // Maximum number of Tags to return. Defaults to 50.
}

package v1

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/meubolso/backend/internal/httputil"
	"github.com/meubolso/backend/internal/models"
	"golang.org/x/exp/slices"
)

// RegisterTagRoutes registers the routes for tags with
// the RouterGroup that is passed.
func RegisterTagRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsTagList)
		r.GET("", GetTags)
		r.POST("", CreateTags)
	}

	// Tag with ID
	{
		r.OPTIONS("/:id", OptionsTagDetail)
		r.GET("/:id", GetTag)
		r.PATCH("/:id", UpdateTag)
		r.DELETE("/:id", DeleteTag)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Tags
// @Success		204
// @Router			/v1/tags [options]
func OptionsTagList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Tags
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/tags/{id} [options]
func OptionsTagDetail(c *gin.Context) {
	resourceOptionsDetail(c, models.Tag{})
}

// @Summary		Create tags
// @Description	Creates new tags
// @Tags			Tags
// @Produce		json
// @Success		201		{object}	TagCreateResponse
// @Failure		400		{object}	TagCreateResponse
// @Failure		500		{object}	TagCreateResponse
// @Param			tags	body		[]TagEditable	true	"Tags"
// @Router			/v1/tags [post]
func CreateTags(c *gin.Context) {
	var editables []TagEditable

	// Bind data and return error if not possible
	err := httputil.BindData(c, &editables)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TagCreateResponse{
			Error: &e,
		})
		return
	}

	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := TagCreateResponse{}

	for _, editable := range editables {
		tag := editable.model()
		err := models.DB.Create(&tag).Error
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		data := newTag(c, tag)
		r.Data = append(r.Data, TagResponse{Data: &data})
	}

	c.JSON(status, r)
}

// @Summary		List tags
// @Description	Returns a list of tags
// @Tags			Tags
// @Produce		json
// @Success		200	{object}	TagListResponse
// @Failure		400	{object}	TagListResponse
// @Failure		500	{object}	TagListResponse
// @Router			/v1/tags [get]
// @Param			name	query	string	false	"Fuzzy filter for the tag name"
// @Param			offset	query	uint	false	"The offset of the first Tag returned. Defaults to 0."
// @Param			limit	query	int		false	"Maximum number of Tags to return. Defaults to 50."
func GetTags(c *gin.Context) {
	var filter TagQueryFilter
	if err := c.Bind(&filter); err != nil {
		s := httputil.ErrInvalidQuery.Error()
		c.JSON(http.StatusBadRequest, TagListResponse{
			Error: &s,
		})
		return
	}

	_, setFields := httputil.GetURLFields(c.Request.URL, filter)

	q := models.DB.Order("name ASC")

	if filter.Name != "" {
		q = q.Where("name LIKE ?", fmt.Sprintf("%%%s%%", filter.Name))
	} else if slices.Contains(setFields, "Name") {
		q = q.Where("name = ''")
	}

	// Set the offset. Does not need checking since the default is 0
	q = q.Offset(int(filter.Offset))

	// Default to 50 tags and set the limit
	limit := 50
	if slices.Contains(setFields, "Limit") {
		limit = filter.Limit
	}
	q = q.Limit(limit)

	var tags []models.Tag
	err := q.Find(&tags).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TagListResponse{
			Error: &e,
		})
		return
	}

	var count int64
	err = q.Limit(-1).Offset(-1).Count(&count).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TagListResponse{
			Error: &e,
		})
		return
	}

	data := make([]Tag, 0, len(tags))
	for _, tag := range tags {
		data = append(data, newTag(c, tag))
	}

	c.JSON(http.StatusOK, TagListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Get tag
// @Description	Returns a specific tag
// @Tags			Tags
// @Produce		json
// @Success		200	{object}	TagResponse
// @Failure		400	{object}	TagResponse
// @Failure		404	{object}	TagResponse
// @Failure		500	{object}	TagResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/tags/{id} [get]
func GetTag(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TagResponse{
			Error: &e,
		})
		return
	}

	var tag models.Tag
	err = models.DB.First(&tag, uri.ID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TagResponse{
			Error: &e,
		})
		return
	}

	data := newTag(c, tag)
	c.JSON(http.StatusOK, TagResponse{Data: &data})
}

// @Summary		Update tag
// @Description	Updates a tag. Only values to be updated need to be specified.
// @Tags			Tags
// @Accept			json
// @Produce		json
// @Success		200	{object}	TagResponse
// @Failure		400	{object}	TagResponse
// @Failure		404	{object}	TagResponse
// @Failure		500	{object}	TagResponse
// @Param			id	path		URIID		true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			tag	body		TagEditable	true	"Tag"
// @Router			/v1/tags/{id} [patch]
func UpdateTag(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TagResponse{
			Error: &e,
		})
		return
	}

	var tag models.Tag
	err = models.DB.First(&tag, uri.ID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TagResponse{
			Error: &e,
		})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, TagEditable{})
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TagResponse{
			Error: &e,
		})
		return
	}

	var update TagEditable
	err = httputil.BindData(c, &update)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TagResponse{
			Error: &e,
		})
		return
	}

	err = models.DB.Model(&tag).Select("", updateFields...).Updates(update.model()).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TagResponse{
			Error: &e,
		})
		return
	}

	data := newTag(c, tag)
	c.JSON(http.StatusOK, TagResponse{Data: &data})
}

// @Summary		Delete tag
// @Description	Deletes a tag. Transactions the tag is attached to are not deleted.
// @Tags			Tags
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/tags/{id} [delete]
func DeleteTag(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	var tag models.Tag
	err = models.DB.First(&tag, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.Delete(&tag).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}

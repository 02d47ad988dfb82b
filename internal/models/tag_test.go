package models_test

import (
	"strings"

	"github.com/meubolso/backend/internal/models"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestTagTrimWhitespace() {
	name := "  vacation \t"

	tag := suite.createTestTag(models.Tag{Name: name})

	assert.Equal(suite.T(), strings.TrimSpace(name), tag.Name)
}

func (suite *TestSuiteStandard) TestTagNameUnique() {
	_ = suite.createTestTag(models.Tag{Name: "vacation"})

	tag := models.Tag{Name: "vacation"}
	err := models.DB.Create(&tag).Error

	assert.ErrorIs(suite.T(), err, models.ErrTagNameNotUnique)
}

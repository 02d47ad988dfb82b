package models

import (
	"strings"

	"gorm.io/gorm"
)

// Tag is a user-defined label that can be attached to transactions.
type Tag struct {
	DefaultModel
	Name  string `json:"name" gorm:"uniqueIndex" example:"vacation"`
	Color string `json:"color" example:"#FF9F1C"`
}

func (t *Tag) BeforeSave(_ *gorm.DB) error {
	t.Name = strings.TrimSpace(t.Name)

	return nil
}

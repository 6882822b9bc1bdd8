package models

import "github.com/google/uuid"

// Category is a catalog category. Categories form a tree through ParentID;
// cycles are not checked.
type Category struct {
	ID       string  `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Name     string  `json:"name" gorm:"type:varchar(100)"`
	Slug     string  `json:"slug" gorm:"uniqueIndex;type:varchar(100)"`
	ParentID *string `json:"parent_id" gorm:"type:varchar(36)"`
}

// NewCategory creates a category with a fresh id.
func NewCategory(name, slug string, parentID *string) *Category {
	return &Category{
		ID:       uuid.New().String(),
		Name:     name,
		Slug:     slug,
		ParentID: parentID,
	}
}

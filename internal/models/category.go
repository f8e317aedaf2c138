package models

import (
	"time"
)

// Category represents a hierarchical grouping of posts within an organization.
// A NULL ParentID marks a top-level category.
type Category struct {
	ID             string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	OrganizationID string    `json:"organization_id" gorm:"not null;index;type:uuid;uniqueIndex:idx_categories_org_slug"`
	ParentID       *string   `json:"parent_id,omitempty" gorm:"index;type:uuid"`
	Name           string    `json:"name" gorm:"type:varchar(255);not null" example:"Engineering"`
	Slug           string    `json:"slug" gorm:"type:varchar(255);not null;uniqueIndex:idx_categories_org_slug" example:"engineering"`
	Description    string    `json:"description" gorm:"type:text" example:"Posts from the engineering team"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`

	// Relationships
	Parent *Category `json:"parent,omitempty" gorm:"foreignKey:ParentID;references:ID"`
	Posts  []Post    `json:"posts,omitempty" gorm:"foreignKey:CategoryID;references:ID"`
}

// TableName specifies the table name for the Category model
func (Category) TableName() string {
	return "categories"
}

// CreateCategoryRequest represents the request to create a new category
type CreateCategoryRequest struct {
	Name        string  `json:"name" binding:"required" example:"Engineering"`
	Slug        string  `json:"slug" example:"engineering"`
	Description string  `json:"description" example:"Posts from the engineering team"`
	ParentID    *string `json:"parent_id,omitempty"`
}

// UpdateCategoryRequest represents the request to update a category
type UpdateCategoryRequest struct {
	Name        *string `json:"name,omitempty" example:"Engineering"`
	Slug        *string `json:"slug,omitempty" example:"engineering"`
	Description *string `json:"description,omitempty"`
	ParentID    *string `json:"parent_id,omitempty"`
}

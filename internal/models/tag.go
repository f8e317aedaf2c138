package models

import (
	"time"
)

// Tag represents a free-form label attached to posts within an organization
type Tag struct {
	ID             string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	OrganizationID string    `json:"organization_id" gorm:"not null;index;type:uuid;uniqueIndex:idx_tags_org_slug"`
	Name           string    `json:"name" gorm:"type:varchar(255);not null" example:"golang"`
	Slug           string    `json:"slug" gorm:"type:varchar(255);not null;uniqueIndex:idx_tags_org_slug" example:"golang"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// TableName specifies the table name for the Tag model
func (Tag) TableName() string {
	return "tags"
}

// CreateTagRequest represents the request to create a new tag
type CreateTagRequest struct {
	Name string `json:"name" binding:"required" example:"golang"`
	Slug string `json:"slug" example:"golang"`
}

// UpdateTagRequest represents the request to update a tag
type UpdateTagRequest struct {
	Name *string `json:"name,omitempty" example:"golang"`
	Slug *string `json:"slug,omitempty" example:"golang"`
}

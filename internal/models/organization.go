package models

import (
	"time"
)

// Organization represents a tenant. Every user, post, category, tag, API key
// and settings row belongs to exactly one organization.
type Organization struct {
	ID        string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	Name      string    `json:"name" gorm:"type:varchar(255);not null" example:"Acme Publishing"`
	Slug      string    `json:"slug" gorm:"type:varchar(255);not null;unique;index" example:"acme-publishing"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relationships
	Settings   *SiteSettings `json:"settings,omitempty" gorm:"foreignKey:OrganizationID;references:ID;constraint:OnDelete:CASCADE"`
	Users      []User        `json:"users,omitempty" gorm:"foreignKey:OrganizationID;references:ID;constraint:OnDelete:CASCADE"`
	Posts      []Post        `json:"posts,omitempty" gorm:"foreignKey:OrganizationID;references:ID;constraint:OnDelete:CASCADE"`
	Categories []Category    `json:"categories,omitempty" gorm:"foreignKey:OrganizationID;references:ID;constraint:OnDelete:CASCADE"`
	Tags       []Tag         `json:"tags,omitempty" gorm:"foreignKey:OrganizationID;references:ID;constraint:OnDelete:CASCADE"`
	APIKeys    []APIKey      `json:"api_keys,omitempty" gorm:"foreignKey:OrganizationID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for the Organization model
func (Organization) TableName() string {
	return "organizations"
}

// CreateOrganizationRequest represents the request to create a new organization
type CreateOrganizationRequest struct {
	Name string `json:"name" binding:"required" example:"Acme Publishing"`
	Slug string `json:"slug" example:"acme-publishing"`
}

// UpdateOrganizationRequest represents the request to update an organization
type UpdateOrganizationRequest struct {
	Name string `json:"name,omitempty" example:"Acme Publishing"`
	Slug string `json:"slug,omitempty" example:"acme-publishing"`
}

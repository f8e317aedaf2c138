package models

import (
	"time"
)

// APIKey represents an opaque bearer credential for the public read API.
// The key value is stored verbatim and compared by exact match; see the
// design notes for the hashing discussion.
type APIKey struct {
	ID             string     `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	OrganizationID string     `json:"organization_id" gorm:"not null;index;type:uuid"`
	Key            string     `json:"key" gorm:"type:varchar(255);not null;unique;index"`
	Name           string     `json:"name" gorm:"type:varchar(255);not null" example:"production-frontend"`
	LastUsedAt     *time.Time `json:"last_used_at"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`

	// Relationships
	Organization *Organization `json:"organization,omitempty" gorm:"foreignKey:OrganizationID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for the APIKey model
func (APIKey) TableName() string {
	return "api_keys"
}

// CreateAPIKeyRequest represents the request to create a new API key
type CreateAPIKeyRequest struct {
	Name string `json:"name" binding:"required" example:"production-frontend"`
}

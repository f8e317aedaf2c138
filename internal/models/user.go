package models

import (
	"time"
)

// User represents a dashboard user belonging to one organization
type User struct {
	ID             string     `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	OrganizationID string     `json:"organization_id" gorm:"not null;index;type:uuid"`
	Email          string     `json:"email" gorm:"type:varchar(255);not null;unique;index" example:"editor@acme.example"`
	PasswordHash   string     `json:"-" gorm:"type:varchar(255);not null"`
	Name           string     `json:"name" gorm:"type:varchar(255)" example:"Jamie Editor"`
	IsActive       bool       `json:"is_active" gorm:"default:true;index"`
	IsAdmin        bool       `json:"is_admin" gorm:"default:false;index"`
	TokenVersion   uint       `json:"token_version" gorm:"default:0"`
	LastLoginAt    *time.Time `json:"last_login_at"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`

	// Relationships
	Organization  *Organization  `json:"organization,omitempty" gorm:"foreignKey:OrganizationID;references:ID"`
	RefreshTokens []RefreshToken `json:"refresh_tokens,omitempty" gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for the User model
func (User) TableName() string {
	return "users"
}

// CreateUserRequest represents the request to create a new dashboard user
type CreateUserRequest struct {
	Email    string `json:"email" binding:"required,email" example:"editor@acme.example"`
	Password string `json:"password" binding:"required,min=8"`
	Name     string `json:"name" example:"Jamie Editor"`
	IsAdmin  bool   `json:"is_admin" example:"false"`
}

// UpdateUserRequest represents the request to update a dashboard user
type UpdateUserRequest struct {
	Name     *string `json:"name,omitempty" example:"Jamie Editor"`
	IsActive *bool   `json:"is_active,omitempty" example:"true"`
	IsAdmin  *bool   `json:"is_admin,omitempty" example:"false"`
}

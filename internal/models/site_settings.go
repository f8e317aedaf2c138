package models

import (
	"time"
)

// SiteSettings holds the per-organization public site configuration.
// AllowedOrigins is a comma-separated list of origins or the literal "*";
// a NULL value means cross-origin requests are denied entirely.
type SiteSettings struct {
	ID              string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	OrganizationID  string    `json:"organization_id" gorm:"not null;uniqueIndex;type:uuid"`
	SiteTitle       string    `json:"site_title" gorm:"type:varchar(255)" example:"Acme Blog"`
	SiteDescription string    `json:"site_description" gorm:"type:text" example:"News and updates from Acme"`
	AllowedOrigins  *string   `json:"allowed_origins,omitempty" gorm:"type:text" example:"example.com, https://app.example.com"`
	ContentTypes    string    `json:"content_types" gorm:"type:varchar(255);default:'post,page'" example:"post,page"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// TableName specifies the table name for the SiteSettings model
func (SiteSettings) TableName() string {
	return "site_settings"
}

// UpdateSiteSettingsRequest represents the request to update site settings
type UpdateSiteSettingsRequest struct {
	SiteTitle       *string `json:"site_title,omitempty" example:"Acme Blog"`
	SiteDescription *string `json:"site_description,omitempty" example:"News and updates from Acme"`
	AllowedOrigins  *string `json:"allowed_origins,omitempty" example:"example.com, https://app.example.com"`
	ContentTypes    *string `json:"content_types,omitempty" example:"post,page"`
}

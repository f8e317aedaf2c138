package repository

import (
	"errors"

	"github.com/inkpresshq/inkpress-cms-backend/internal/models"
	"gorm.io/gorm"
)

// SiteSettingsRepository handles database operations for SiteSettings entities
type SiteSettingsRepository struct {
	db *gorm.DB
}

// NewSiteSettingsRepository creates a new SiteSettingsRepository instance
func NewSiteSettingsRepository(db *gorm.DB) *SiteSettingsRepository {
	return &SiteSettingsRepository{db: db}
}

// GetByOrganizationID retrieves the settings row for an organization
func (r *SiteSettingsRepository) GetByOrganizationID(organizationID string) (*models.SiteSettings, error) {
	var settings models.SiteSettings
	err := r.db.
		Where("organization_id = ?", organizationID).
		First(&settings).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil // Return nil, nil when not found
		}
		return nil, err
	}
	return &settings, nil
}

// Create adds a new settings row
func (r *SiteSettingsRepository) Create(settings *models.SiteSettings) (*models.SiteSettings, error) {
	if err := r.db.Create(settings).Error; err != nil {
		return nil, err
	}
	return settings, nil
}

// Update saves changes to an existing settings row
func (r *SiteSettingsRepository) Update(settings *models.SiteSettings) error {
	return r.db.Save(settings).Error
}

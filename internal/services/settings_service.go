package services

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/inkpresshq/inkpress-cms-backend/internal/database/repository"
	"github.com/inkpresshq/inkpress-cms-backend/internal/models"
	"github.com/inkpresshq/inkpress-cms-backend/internal/services/contenttypes"
)

// SettingsService handles per-organization site settings
type SettingsService struct {
	settingsRepo *repository.SiteSettingsRepository
	typeCache    *contenttypes.Cache
}

// NewSettingsService creates a new settings service
func NewSettingsService(db *gorm.DB, typeCache *contenttypes.Cache) *SettingsService {
	return &SettingsService{
		settingsRepo: repository.NewSiteSettingsRepository(db),
		typeCache:    typeCache,
	}
}

// GetSettings retrieves the settings row for an organization
func (s *SettingsService) GetSettings(organizationID string) (*models.SiteSettings, error) {
	return s.settingsRepo.GetByOrganizationID(organizationID)
}

// UpdateSettings updates the settings row for an organization, creating it if
// the organization never configured one. The content-type cache entry is
// invalidated so the public API sees the change immediately.
func (s *SettingsService) UpdateSettings(organizationID string, req *models.UpdateSiteSettingsRequest) (*models.SiteSettings, error) {
	settings, err := s.settingsRepo.GetByOrganizationID(organizationID)
	if err != nil {
		return nil, fmt.Errorf("failed to get settings: %w", err)
	}

	if settings == nil {
		settings = &models.SiteSettings{
			OrganizationID: organizationID,
			ContentTypes:   "post,page",
		}
		if _, err := s.settingsRepo.Create(settings); err != nil {
			return nil, fmt.Errorf("failed to create settings: %w", err)
		}
	}

	if req.SiteTitle != nil {
		settings.SiteTitle = *req.SiteTitle
	}
	if req.SiteDescription != nil {
		settings.SiteDescription = *req.SiteDescription
	}
	if req.AllowedOrigins != nil {
		settings.AllowedOrigins = req.AllowedOrigins
	}
	if req.ContentTypes != nil {
		settings.ContentTypes = *req.ContentTypes
	}

	if err := s.settingsRepo.Update(settings); err != nil {
		return nil, fmt.Errorf("failed to update settings: %w", err)
	}

	s.typeCache.Invalidate(organizationID)
	return settings, nil
}

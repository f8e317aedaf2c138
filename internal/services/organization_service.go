package services

import (
	"fmt"

	"github.com/gosimple/slug"
	"gorm.io/gorm"

	"github.com/inkpresshq/inkpress-cms-backend/internal/database/repository"
	"github.com/inkpresshq/inkpress-cms-backend/internal/models"
)

// OrganizationService handles tenant management
type OrganizationService struct {
	orgRepo      *repository.OrganizationRepository
	settingsRepo *repository.SiteSettingsRepository
}

// NewOrganizationService creates a new organization service
func NewOrganizationService(db *gorm.DB) *OrganizationService {
	return &OrganizationService{
		orgRepo:      repository.NewOrganizationRepository(db),
		settingsRepo: repository.NewSiteSettingsRepository(db),
	}
}

// CreateOrganization creates a new organization with default site settings
func (s *OrganizationService) CreateOrganization(req *models.CreateOrganizationRequest) (*models.Organization, error) {
	orgSlug := req.Slug
	if orgSlug == "" {
		orgSlug = slug.Make(req.Name)
	} else {
		orgSlug = slug.Make(orgSlug)
	}

	existing, err := s.orgRepo.GetBySlug(orgSlug)
	if err != nil {
		return nil, fmt.Errorf("failed to check organization slug: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("organization slug already exists")
	}

	org, err := s.orgRepo.Create(&models.Organization{
		Name: req.Name,
		Slug: orgSlug,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create organization: %w", err)
	}

	// Every organization gets a settings row; AllowedOrigins stays NULL until
	// the tenant configures CORS, which is the default-deny state
	settings, err := s.settingsRepo.Create(&models.SiteSettings{
		OrganizationID: org.ID,
		SiteTitle:      org.Name,
		ContentTypes:   "post,page",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create default settings: %w", err)
	}
	org.Settings = settings

	return org, nil
}

// UpdateOrganization updates an organization
func (s *OrganizationService) UpdateOrganization(id string, req *models.UpdateOrganizationRequest) (*models.Organization, error) {
	org, err := s.orgRepo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to get organization: %w", err)
	}
	if org == nil {
		return nil, nil
	}

	if req.Name != "" {
		org.Name = req.Name
	}
	if req.Slug != "" {
		org.Slug = slug.Make(req.Slug)
	}

	if err := s.orgRepo.Update(org); err != nil {
		return nil, fmt.Errorf("failed to update organization: %w", err)
	}
	return org, nil
}

// DeleteOrganization deletes an organization and all of its content
func (s *OrganizationService) DeleteOrganization(id string) error {
	deleted, err := s.orgRepo.Delete(id)
	if err != nil {
		return fmt.Errorf("failed to delete organization: %w", err)
	}
	if !deleted {
		return fmt.Errorf("organization not found")
	}
	return nil
}

// GetOrganization retrieves an organization by ID
func (s *OrganizationService) GetOrganization(id string) (*models.Organization, error) {
	return s.orgRepo.GetByID(id)
}

// ListOrganizations lists all organizations
func (s *OrganizationService) ListOrganizations(limit, offset int) ([]models.Organization, int64, error) {
	return s.orgRepo.List(limit, offset)
}

package repository

import (
	"errors"

	"github.com/inkpresshq/inkpress-cms-backend/internal/models"
	"gorm.io/gorm"
)

// OrganizationRepository handles database operations for Organization entities
type OrganizationRepository struct {
	db *gorm.DB
}

// NewOrganizationRepository creates a new OrganizationRepository instance
func NewOrganizationRepository(db *gorm.DB) *OrganizationRepository {
	return &OrganizationRepository{db: db}
}

// GetByID retrieves an organization by its ID with settings preloaded
func (r *OrganizationRepository) GetByID(id string) (*models.Organization, error) {
	var organization models.Organization
	err := r.db.
		Preload("Settings").
		Where("id = ?", id).
		First(&organization).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil // Return nil, nil when not found
		}
		return nil, err
	}
	return &organization, nil
}

// GetBySlug retrieves an organization by its slug
func (r *OrganizationRepository) GetBySlug(slug string) (*models.Organization, error) {
	var organization models.Organization
	err := r.db.
		Preload("Settings").
		Where("slug = ?", slug).
		First(&organization).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil // Return nil, nil when not found
		}
		return nil, err
	}
	return &organization, nil
}

// List retrieves all organizations with the total count
func (r *OrganizationRepository) List(limit, offset int) ([]models.Organization, int64, error) {
	var total int64
	if err := r.db.Model(&models.Organization{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var organizations []models.Organization
	err := r.db.
		Preload("Settings").
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&organizations).Error
	if err != nil {
		return nil, 0, err
	}
	return organizations, total, nil
}

// Count returns the number of organizations
func (r *OrganizationRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Organization{}).Count(&count).Error
	return count, err
}

// Create adds a new organization
func (r *OrganizationRepository) Create(organization *models.Organization) (*models.Organization, error) {
	if err := r.db.Create(organization).Error; err != nil {
		return nil, err
	}
	return organization, nil
}

// Update saves changes to an existing organization
func (r *OrganizationRepository) Update(organization *models.Organization) error {
	return r.db.Save(organization).Error
}

// Delete removes an organization by its ID
func (r *OrganizationRepository) Delete(id string) (bool, error) {
	result := r.db.Delete(&models.Organization{}, "id = ?", id)
	if result.Error != nil {
		return false, result.Error
	}
	// If no rows were affected, the organization was not found
	return result.RowsAffected > 0, nil
}

package repository

import (
	"errors"
	"time"

	"github.com/inkpresshq/inkpress-cms-backend/internal/models"
	"gorm.io/gorm"
)

// APIKeyRepository handles database operations for APIKey entities
type APIKeyRepository struct {
	db *gorm.DB
}

// NewAPIKeyRepository creates a new APIKeyRepository instance
func NewAPIKeyRepository(db *gorm.DB) *APIKeyRepository {
	return &APIKeyRepository{db: db}
}

// GetByKey retrieves an API key by its key value with the owning organization
// and its settings preloaded. The lookup is an exact, case-sensitive match.
func (r *APIKeyRepository) GetByKey(key string) (*models.APIKey, error) {
	var apiKey models.APIKey
	err := r.db.
		Preload("Organization").
		Preload("Organization.Settings").
		Where("key = ?", key).
		First(&apiKey).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil // Return nil, nil when not found
		}
		return nil, err
	}
	return &apiKey, nil
}

// GetByID retrieves an API key by its ID
func (r *APIKeyRepository) GetByID(id string) (*models.APIKey, error) {
	var apiKey models.APIKey
	if err := r.db.Where("id = ?", id).First(&apiKey).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil // Return nil, nil when not found
		}
		return nil, err
	}
	return &apiKey, nil
}

// ListByOrganization retrieves all API keys belonging to an organization
func (r *APIKeyRepository) ListByOrganization(organizationID string) ([]models.APIKey, error) {
	var apiKeys []models.APIKey
	err := r.db.
		Where("organization_id = ?", organizationID).
		Order("created_at DESC").
		Find(&apiKeys).Error
	if err != nil {
		return nil, err
	}
	return apiKeys, nil
}

// Create adds a new API key
func (r *APIKeyRepository) Create(apiKey *models.APIKey) (*models.APIKey, error) {
	if err := r.db.Create(apiKey).Error; err != nil {
		return nil, err
	}
	return apiKey, nil
}

// UpdateLastUsed updates the last used timestamp for an API key
func (r *APIKeyRepository) UpdateLastUsed(id string) error {
	now := time.Now()
	return r.db.Model(&models.APIKey{}).Where("id = ?", id).Update("last_used_at", now).Error
}

// Delete removes an API key scoped to its organization
func (r *APIKeyRepository) Delete(organizationID, id string) (bool, error) {
	result := r.db.Delete(&models.APIKey{}, "id = ? AND organization_id = ?", id, organizationID)
	if result.Error != nil {
		return false, result.Error
	}
	// If no rows were affected, the API key was not found
	return result.RowsAffected > 0, nil
}

package repository

import (
	"errors"

	"github.com/inkpresshq/inkpress-cms-backend/internal/models"
	"gorm.io/gorm"
)

// TagRepository handles database operations for Tag entities
type TagRepository struct {
	db *gorm.DB
}

// NewTagRepository creates a new TagRepository instance
func NewTagRepository(db *gorm.DB) *TagRepository {
	return &TagRepository{db: db}
}

// List retrieves all tags belonging to an organization
func (r *TagRepository) List(organizationID string) ([]models.Tag, error) {
	var tags []models.Tag
	err := r.db.
		Where("organization_id = ?", organizationID).
		Order("name ASC").
		Find(&tags).Error
	if err != nil {
		return nil, err
	}
	return tags, nil
}

// GetByID retrieves a single tag scoped to its organization
func (r *TagRepository) GetByID(organizationID, id string) (*models.Tag, error) {
	var tag models.Tag
	err := r.db.
		Where("organization_id = ? AND id = ?", organizationID, id).
		First(&tag).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil // Return nil, nil when not found
		}
		return nil, err
	}
	return &tag, nil
}

// GetByIDs retrieves the tags matching the given IDs within an organization
func (r *TagRepository) GetByIDs(organizationID string, ids []string) ([]models.Tag, error) {
	var tags []models.Tag
	err := r.db.
		Where("organization_id = ? AND id IN ?", organizationID, ids).
		Find(&tags).Error
	if err != nil {
		return nil, err
	}
	return tags, nil
}

// Create adds a new tag
func (r *TagRepository) Create(tag *models.Tag) (*models.Tag, error) {
	if err := r.db.Create(tag).Error; err != nil {
		return nil, err
	}
	return tag, nil
}

// Update saves changes to an existing tag
func (r *TagRepository) Update(tag *models.Tag) error {
	return r.db.Save(tag).Error
}

// Delete removes a tag scoped to its organization
func (r *TagRepository) Delete(organizationID, id string) (bool, error) {
	result := r.db.Delete(&models.Tag{}, "id = ? AND organization_id = ?", id, organizationID)
	if result.Error != nil {
		return false, result.Error
	}
	// If no rows were affected, the tag was not found
	return result.RowsAffected > 0, nil
}

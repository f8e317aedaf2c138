package repository

import (
	"errors"

	"github.com/inkpresshq/inkpress-cms-backend/internal/models"
	"gorm.io/gorm"
)

// CategoryFilter carries the optional public category listing filters.
// RootOnly restricts to categories without a parent; ParentSlug restricts to
// the children of the category with that slug. Both absent means all
// categories.
type CategoryFilter struct {
	RootOnly   bool
	ParentSlug *string
}

// CategoryRepository handles database operations for Category entities
type CategoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository creates a new CategoryRepository instance
func NewCategoryRepository(db *gorm.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

// List retrieves categories belonging to an organization with the total count
func (r *CategoryRepository) List(organizationID string, filter CategoryFilter, limit, offset int) ([]models.Category, int64, error) {
	query := r.db.Model(&models.Category{}).Where("organization_id = ?", organizationID)

	if filter.RootOnly {
		query = query.Where("parent_id IS NULL")
	} else if filter.ParentSlug != nil {
		parent, err := r.GetBySlug(organizationID, *filter.ParentSlug)
		if err != nil {
			return nil, 0, err
		}
		if parent == nil {
			// Unknown parent slug matches nothing
			return []models.Category{}, 0, nil
		}
		query = query.Where("parent_id = ?", parent.ID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var categories []models.Category
	err := query.
		Order("name ASC").
		Limit(limit).
		Offset(offset).
		Find(&categories).Error
	if err != nil {
		return nil, 0, err
	}
	return categories, total, nil
}

// GetBySlug retrieves a single category scoped by (organization, slug)
func (r *CategoryRepository) GetBySlug(organizationID, slug string) (*models.Category, error) {
	var category models.Category
	err := r.db.
		Where("organization_id = ? AND slug = ?", organizationID, slug).
		First(&category).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil // Return nil, nil when not found
		}
		return nil, err
	}
	return &category, nil
}

// GetByID retrieves a single category scoped to its organization
func (r *CategoryRepository) GetByID(organizationID, id string) (*models.Category, error) {
	var category models.Category
	err := r.db.
		Where("organization_id = ? AND id = ?", organizationID, id).
		First(&category).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil // Return nil, nil when not found
		}
		return nil, err
	}
	return &category, nil
}

// SlugExists reports whether a slug is already taken within an organization
func (r *CategoryRepository) SlugExists(organizationID, slug string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Category{}).
		Where("organization_id = ? AND slug = ?", organizationID, slug).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// Create adds a new category
func (r *CategoryRepository) Create(category *models.Category) (*models.Category, error) {
	if err := r.db.Create(category).Error; err != nil {
		return nil, err
	}
	return category, nil
}

// Update saves changes to an existing category
func (r *CategoryRepository) Update(category *models.Category) error {
	return r.db.Save(category).Error
}

// Delete removes a category scoped to its organization
func (r *CategoryRepository) Delete(organizationID, id string) (bool, error) {
	result := r.db.Delete(&models.Category{}, "id = ? AND organization_id = ?", id, organizationID)
	if result.Error != nil {
		return false, result.Error
	}
	// If no rows were affected, the category was not found
	return result.RowsAffected > 0, nil
}

package repository

import (
	"errors"

	"github.com/inkpresshq/inkpress-cms-backend/internal/models"
	"gorm.io/gorm"
)

// PostFilter carries the optional public listing filters. A nil field means
// "no clause" for that field.
type PostFilter struct {
	Type      *string
	Published *bool
	Search    *string
}

// PostRepository handles database operations for Post entities
type PostRepository struct {
	db *gorm.DB
}

// NewPostRepository creates a new PostRepository instance
func NewPostRepository(db *gorm.DB) *PostRepository {
	return &PostRepository{db: db}
}

// applyFilter translates a PostFilter into WHERE clauses, one per present field
func applyFilter(query *gorm.DB, filter PostFilter) *gorm.DB {
	if filter.Type != nil {
		query = query.Where("type = ?", *filter.Type)
	}
	if filter.Published != nil {
		query = query.Where("published = ?", *filter.Published)
	}
	if filter.Search != nil {
		pattern := "%" + *filter.Search + "%"
		query = query.Where("title ILIKE ? OR content ILIKE ?", pattern, pattern)
	}
	return query
}

// List retrieves posts belonging to an organization ordered by creation time
// descending, with the total count before limit/offset are applied.
func (r *PostRepository) List(organizationID string, filter PostFilter, limit, offset int) ([]models.Post, int64, error) {
	query := applyFilter(r.db.Model(&models.Post{}).Where("organization_id = ?", organizationID), filter)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var posts []models.Post
	err := query.
		Preload("Category").
		Preload("Tags").
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&posts).Error
	if err != nil {
		return nil, 0, err
	}
	return posts, total, nil
}

// GetBySlug retrieves a single post scoped by (organization, slug)
func (r *PostRepository) GetBySlug(organizationID, slug string) (*models.Post, error) {
	var post models.Post
	err := r.db.
		Preload("Category").
		Preload("Tags").
		Where("organization_id = ? AND slug = ?", organizationID, slug).
		First(&post).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil // Return nil, nil when not found
		}
		return nil, err
	}
	return &post, nil
}

// GetByID retrieves a single post scoped to its organization
func (r *PostRepository) GetByID(organizationID, id string) (*models.Post, error) {
	var post models.Post
	err := r.db.
		Preload("Category").
		Preload("Tags").
		Where("organization_id = ? AND id = ?", organizationID, id).
		First(&post).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil // Return nil, nil when not found
		}
		return nil, err
	}
	return &post, nil
}

// ListByCategory retrieves posts of one category within an organization
func (r *PostRepository) ListByCategory(organizationID, categoryID string, publishedOnly bool, limit int) ([]models.Post, error) {
	query := r.db.
		Where("organization_id = ? AND category_id = ?", organizationID, categoryID)
	if publishedOnly {
		query = query.Where("published = ?", true)
	}

	var posts []models.Post
	err := query.
		Order("created_at DESC").
		Limit(limit).
		Find(&posts).Error
	if err != nil {
		return nil, err
	}
	return posts, nil
}

// SlugExists reports whether a slug is already taken within an organization
func (r *PostRepository) SlugExists(organizationID, slug string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Post{}).
		Where("organization_id = ? AND slug = ?", organizationID, slug).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// Create adds a new post
func (r *PostRepository) Create(post *models.Post) (*models.Post, error) {
	if err := r.db.Create(post).Error; err != nil {
		return nil, err
	}
	return post, nil
}

// Update saves changes to an existing post
func (r *PostRepository) Update(post *models.Post) error {
	return r.db.Save(post).Error
}

// ReplaceTags replaces the tag associations of a post
func (r *PostRepository) ReplaceTags(post *models.Post, tags []models.Tag) error {
	return r.db.Model(post).Association("Tags").Replace(tags)
}

// Delete removes a post scoped to its organization
func (r *PostRepository) Delete(organizationID, id string) (bool, error) {
	result := r.db.Delete(&models.Post{}, "id = ? AND organization_id = ?", id, organizationID)
	if result.Error != nil {
		return false, result.Error
	}
	// If no rows were affected, the post was not found
	return result.RowsAffected > 0, nil
}

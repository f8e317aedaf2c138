package services

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"gorm.io/gorm"

	"github.com/inkpresshq/inkpress-cms-backend/internal/database/repository"
	"github.com/inkpresshq/inkpress-cms-backend/internal/models"
)

// CategoryService handles category management for the admin API
type CategoryService struct {
	categoryRepo *repository.CategoryRepository
}

// NewCategoryService creates a new category service
func NewCategoryService(db *gorm.DB) *CategoryService {
	return &CategoryService{
		categoryRepo: repository.NewCategoryRepository(db),
	}
}

// CreateCategory creates a new category for an organization
func (s *CategoryService) CreateCategory(organizationID string, req *models.CreateCategoryRequest) (*models.Category, error) {
	categorySlug := req.Slug
	if categorySlug == "" {
		categorySlug = slug.Make(req.Name)
	}
	categorySlug, err := s.ensureUniqueSlug(organizationID, categorySlug)
	if err != nil {
		return nil, err
	}

	if req.ParentID != nil {
		parent, err := s.categoryRepo.GetByID(organizationID, *req.ParentID)
		if err != nil {
			return nil, fmt.Errorf("failed to get parent category: %w", err)
		}
		if parent == nil {
			return nil, fmt.Errorf("parent category not found")
		}
	}

	category := &models.Category{
		OrganizationID: organizationID,
		ParentID:       req.ParentID,
		Name:           req.Name,
		Slug:           categorySlug,
		Description:    req.Description,
	}

	created, err := s.categoryRepo.Create(category)
	if err != nil {
		return nil, fmt.Errorf("failed to create category: %w", err)
	}
	return created, nil
}

// UpdateCategory updates a category scoped to its organization
func (s *CategoryService) UpdateCategory(organizationID, id string, req *models.UpdateCategoryRequest) (*models.Category, error) {
	category, err := s.categoryRepo.GetByID(organizationID, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get category: %w", err)
	}
	if category == nil {
		return nil, nil
	}

	if req.Name != nil {
		category.Name = *req.Name
	}
	if req.Slug != nil && *req.Slug != category.Slug {
		newSlug, err := s.ensureUniqueSlug(organizationID, *req.Slug)
		if err != nil {
			return nil, err
		}
		category.Slug = newSlug
	}
	if req.Description != nil {
		category.Description = *req.Description
	}
	if req.ParentID != nil {
		if *req.ParentID == category.ID {
			return nil, fmt.Errorf("category cannot be its own parent")
		}
		category.ParentID = req.ParentID
	}

	if err := s.categoryRepo.Update(category); err != nil {
		return nil, fmt.Errorf("failed to update category: %w", err)
	}
	return category, nil
}

// DeleteCategory deletes a category scoped to its organization
func (s *CategoryService) DeleteCategory(organizationID, id string) error {
	deleted, err := s.categoryRepo.Delete(organizationID, id)
	if err != nil {
		return fmt.Errorf("failed to delete category: %w", err)
	}
	if !deleted {
		return fmt.Errorf("category not found")
	}
	return nil
}

// ListCategories lists categories of an organization
func (s *CategoryService) ListCategories(organizationID string, filter repository.CategoryFilter, limit, offset int) ([]models.Category, int64, error) {
	return s.categoryRepo.List(organizationID, filter, limit, offset)
}

// GetCategory retrieves a category scoped to its organization
func (s *CategoryService) GetCategory(organizationID, id string) (*models.Category, error) {
	return s.categoryRepo.GetByID(organizationID, id)
}

// ensureUniqueSlug appends a short random suffix when the slug is taken
func (s *CategoryService) ensureUniqueSlug(organizationID, candidate string) (string, error) {
	candidate = slug.Make(candidate)
	exists, err := s.categoryRepo.SlugExists(organizationID, candidate)
	if err != nil {
		return "", fmt.Errorf("failed to check slug: %w", err)
	}
	if !exists {
		return candidate, nil
	}
	return fmt.Sprintf("%s-%s", candidate, uuid.NewString()[:8]), nil
}

package services

import (
	"fmt"

	"github.com/gosimple/slug"
	"gorm.io/gorm"

	"github.com/inkpresshq/inkpress-cms-backend/internal/database/repository"
	"github.com/inkpresshq/inkpress-cms-backend/internal/models"
)

// TagService handles tag management for the admin API
type TagService struct {
	tagRepo *repository.TagRepository
}

// NewTagService creates a new tag service
func NewTagService(db *gorm.DB) *TagService {
	return &TagService{
		tagRepo: repository.NewTagRepository(db),
	}
}

// CreateTag creates a new tag for an organization
func (s *TagService) CreateTag(organizationID string, req *models.CreateTagRequest) (*models.Tag, error) {
	tagSlug := req.Slug
	if tagSlug == "" {
		tagSlug = slug.Make(req.Name)
	} else {
		tagSlug = slug.Make(tagSlug)
	}

	tag := &models.Tag{
		OrganizationID: organizationID,
		Name:           req.Name,
		Slug:           tagSlug,
	}

	created, err := s.tagRepo.Create(tag)
	if err != nil {
		return nil, fmt.Errorf("failed to create tag: %w", err)
	}
	return created, nil
}

// UpdateTag updates a tag scoped to its organization
func (s *TagService) UpdateTag(organizationID, id string, req *models.UpdateTagRequest) (*models.Tag, error) {
	tag, err := s.tagRepo.GetByID(organizationID, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get tag: %w", err)
	}
	if tag == nil {
		return nil, nil
	}

	if req.Name != nil {
		tag.Name = *req.Name
	}
	if req.Slug != nil {
		tag.Slug = slug.Make(*req.Slug)
	}

	if err := s.tagRepo.Update(tag); err != nil {
		return nil, fmt.Errorf("failed to update tag: %w", err)
	}
	return tag, nil
}

// DeleteTag deletes a tag scoped to its organization
func (s *TagService) DeleteTag(organizationID, id string) error {
	deleted, err := s.tagRepo.Delete(organizationID, id)
	if err != nil {
		return fmt.Errorf("failed to delete tag: %w", err)
	}
	if !deleted {
		return fmt.Errorf("tag not found")
	}
	return nil
}

// ListTags lists all tags of an organization
func (s *TagService) ListTags(organizationID string) ([]models.Tag, error) {
	return s.tagRepo.List(organizationID)
}

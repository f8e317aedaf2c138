package services

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/inkpresshq/inkpress-cms-backend/internal/database/repository"
	"github.com/inkpresshq/inkpress-cms-backend/internal/models"
	"github.com/inkpresshq/inkpress-cms-backend/internal/services/events"
)

// PostService handles post management for the admin API
type PostService struct {
	postRepo  *repository.PostRepository
	tagRepo   *repository.TagRepository
	publisher *events.Publisher
}

// NewPostService creates a new post service. The publisher may be nil when
// RabbitMQ is not configured.
func NewPostService(db *gorm.DB, publisher *events.Publisher) *PostService {
	return &PostService{
		postRepo:  repository.NewPostRepository(db),
		tagRepo:   repository.NewTagRepository(db),
		publisher: publisher,
	}
}

// CreatePost creates a new post for an organization
func (s *PostService) CreatePost(organizationID, authorID string, req *models.CreatePostRequest) (*models.Post, error) {
	postSlug := req.Slug
	if postSlug == "" {
		postSlug = slug.Make(req.Title)
	}
	postSlug, err := s.ensureUniqueSlug(organizationID, postSlug)
	if err != nil {
		return nil, err
	}

	postType := req.Type
	if postType == "" {
		postType = "post"
	}

	post := &models.Post{
		OrganizationID: organizationID,
		AuthorID:       authorID,
		CategoryID:     req.CategoryID,
		Title:          req.Title,
		Slug:           postSlug,
		Content:        req.Content,
		Excerpt:        req.Excerpt,
		Type:           postType,
		Published:      req.Published,
	}
	if req.Published {
		now := time.Now()
		post.PublishedAt = &now
	}

	created, err := s.postRepo.Create(post)
	if err != nil {
		return nil, fmt.Errorf("failed to create post: %w", err)
	}

	if len(req.TagIDs) > 0 {
		if err := s.attachTags(created, req.TagIDs); err != nil {
			return nil, err
		}
	}

	if created.Published {
		s.emit(events.PostPublished, created)
	}
	return created, nil
}

// UpdatePost updates a post scoped to its organization
func (s *PostService) UpdatePost(organizationID, id string, req *models.UpdatePostRequest) (*models.Post, error) {
	post, err := s.postRepo.GetByID(organizationID, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get post: %w", err)
	}
	if post == nil {
		return nil, nil
	}

	wasPublished := post.Published

	if req.Title != nil {
		post.Title = *req.Title
	}
	if req.Slug != nil && *req.Slug != post.Slug {
		newSlug, err := s.ensureUniqueSlug(organizationID, *req.Slug)
		if err != nil {
			return nil, err
		}
		post.Slug = newSlug
	}
	if req.Content != nil {
		post.Content = *req.Content
	}
	if req.Excerpt != nil {
		post.Excerpt = *req.Excerpt
	}
	if req.Type != nil {
		post.Type = *req.Type
	}
	if req.CategoryID != nil {
		post.CategoryID = req.CategoryID
	}
	if req.Published != nil {
		post.Published = *req.Published
		if post.Published && post.PublishedAt == nil {
			now := time.Now()
			post.PublishedAt = &now
		}
	}

	if err := s.postRepo.Update(post); err != nil {
		return nil, fmt.Errorf("failed to update post: %w", err)
	}

	if req.TagIDs != nil {
		if err := s.attachTags(post, *req.TagIDs); err != nil {
			return nil, err
		}
	}

	switch {
	case !wasPublished && post.Published:
		s.emit(events.PostPublished, post)
	case wasPublished && !post.Published:
		s.emit(events.PostUnpublished, post)
	default:
		s.emit(events.PostUpdated, post)
	}
	return post, nil
}

// DeletePost deletes a post scoped to its organization
func (s *PostService) DeletePost(organizationID, id string) error {
	post, err := s.postRepo.GetByID(organizationID, id)
	if err != nil {
		return fmt.Errorf("failed to get post: %w", err)
	}
	if post == nil {
		return fmt.Errorf("post not found")
	}

	deleted, err := s.postRepo.Delete(organizationID, id)
	if err != nil {
		return fmt.Errorf("failed to delete post: %w", err)
	}
	if !deleted {
		return fmt.Errorf("post not found")
	}

	s.emit(events.PostDeleted, post)
	return nil
}

// GetPost retrieves a post scoped to its organization
func (s *PostService) GetPost(organizationID, id string) (*models.Post, error) {
	return s.postRepo.GetByID(organizationID, id)
}

// ListPosts lists posts of an organization with filtering and pagination
func (s *PostService) ListPosts(organizationID string, filter repository.PostFilter, limit, offset int) ([]models.Post, int64, error) {
	return s.postRepo.List(organizationID, filter, limit, offset)
}

// attachTags replaces the post's tags with the given IDs, scoped to the
// post's organization so foreign tags cannot be attached
func (s *PostService) attachTags(post *models.Post, tagIDs []string) error {
	tags := []models.Tag{}
	if len(tagIDs) > 0 {
		found, err := s.tagRepo.GetByIDs(post.OrganizationID, tagIDs)
		if err != nil {
			return fmt.Errorf("failed to load tags: %w", err)
		}
		tags = found
	}
	if err := s.postRepo.ReplaceTags(post, tags); err != nil {
		return fmt.Errorf("failed to set tags: %w", err)
	}
	post.Tags = tags
	return nil
}

// ensureUniqueSlug appends a short random suffix when the slug is taken
func (s *PostService) ensureUniqueSlug(organizationID, candidate string) (string, error) {
	candidate = slug.Make(candidate)
	exists, err := s.postRepo.SlugExists(organizationID, candidate)
	if err != nil {
		return "", fmt.Errorf("failed to check slug: %w", err)
	}
	if !exists {
		return candidate, nil
	}
	return fmt.Sprintf("%s-%s", candidate, uuid.NewString()[:8]), nil
}

// emit publishes a content event, logging instead of failing the request
func (s *PostService) emit(event string, post *models.Post) {
	if err := s.publisher.PublishPostEvent(event, post); err != nil {
		logrus.Warnf("Failed to publish %s event for post %s: %v", event, post.ID, err)
	}
}

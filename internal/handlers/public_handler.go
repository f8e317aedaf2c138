package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/inkpresshq/inkpress-cms-backend/internal/database/repository"
	"github.com/inkpresshq/inkpress-cms-backend/internal/middleware"
	"github.com/inkpresshq/inkpress-cms-backend/internal/models"
	"github.com/inkpresshq/inkpress-cms-backend/internal/services/contenttypes"
	"github.com/inkpresshq/inkpress-cms-backend/internal/utils"
)

const (
	defaultPostsLimit      = 10
	defaultCategoriesLimit = 50
)

// PublicHandler serves the read-only public API. Every request reaching these
// handlers has already been resolved to a tenant by the API key guard, so
// every query is scoped by the organization ID from the context.
type PublicHandler struct {
	postRepo     *repository.PostRepository
	categoryRepo *repository.CategoryRepository
	settingsRepo *repository.SiteSettingsRepository
	orgRepo      *repository.OrganizationRepository
	typeCache    *contenttypes.Cache
}

// NewPublicHandler creates a new public API handler
func NewPublicHandler(db *gorm.DB, typeCache *contenttypes.Cache) *PublicHandler {
	return &PublicHandler{
		postRepo:     repository.NewPostRepository(db),
		categoryRepo: repository.NewCategoryRepository(db),
		settingsRepo: repository.NewSiteSettingsRepository(db),
		orgRepo:      repository.NewOrganizationRepository(db),
		typeCache:    typeCache,
	}
}

// ListPosts godoc
// @Summary List posts
// @Description List the organization's posts, newest first
// @Tags public
// @Produce json
// @Security BearerAuth
// @Param type query string false "Content type filter"
// @Param published query bool false "Published filter"
// @Param limit query int false "Page size (default 10)"
// @Param offset query int false "Page offset (default 0)"
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} map[string]interface{}
// @Router /api/v1/posts [get]
func (h *PublicHandler) ListPosts(c *gin.Context) {
	organizationID := c.MustGet(middleware.ContextOrganizationID).(string)
	limit, offset := utils.ParseLimitOffset(c.Query("limit"), c.Query("offset"), defaultPostsLimit)

	filter := repository.PostFilter{}
	if published := c.Query("published"); published != "" {
		value := utils.ParseBool(published, false)
		filter.Published = &value
	}
	if postType := c.Query("type"); postType != "" {
		enabled, err := h.typeCache.Contains(organizationID, postType)
		if err != nil {
			h.internalError(c, err)
			return
		}
		if !enabled {
			// Unknown content type matches nothing
			c.JSON(http.StatusOK, gin.H{
				"data": []models.Post{},
				"meta": utils.ListMeta{Total: 0, Limit: limit, Offset: offset},
			})
			return
		}
		filter.Type = &postType
	}

	posts, total, err := h.postRepo.List(organizationID, filter, limit, offset)
	if err != nil {
		h.internalError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": posts,
		"meta": utils.ListMeta{Total: total, Limit: limit, Offset: offset},
	})
}

// GetPost godoc
// @Summary Get a post by slug
// @Tags public
// @Produce json
// @Security BearerAuth
// @Param slug path string true "Post slug"
// @Success 200 {object} models.Post
// @Failure 401 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /api/v1/posts/{slug} [get]
func (h *PublicHandler) GetPost(c *gin.Context) {
	organizationID := c.MustGet(middleware.ContextOrganizationID).(string)

	post, err := h.postRepo.GetBySlug(organizationID, c.Param("slug"))
	if err != nil {
		h.internalError(c, err)
		return
	}
	if post == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		return
	}

	c.JSON(http.StatusOK, post)
}

// ListCategories godoc
// @Summary List categories
// @Tags public
// @Produce json
// @Security BearerAuth
// @Param parent query string false "Parent filter: 'root' for top-level categories or a category slug for its children"
// @Param limit query int false "Page size (default 50)"
// @Param offset query int false "Page offset (default 0)"
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} map[string]interface{}
// @Router /api/v1/categories [get]
func (h *PublicHandler) ListCategories(c *gin.Context) {
	organizationID := c.MustGet(middleware.ContextOrganizationID).(string)
	limit, offset := utils.ParseLimitOffset(c.Query("limit"), c.Query("offset"), defaultCategoriesLimit)

	filter := repository.CategoryFilter{}
	if parent := c.Query("parent"); parent != "" {
		if parent == "root" {
			filter.RootOnly = true
		} else {
			filter.ParentSlug = &parent
		}
	}

	categories, total, err := h.categoryRepo.List(organizationID, filter, limit, offset)
	if err != nil {
		h.internalError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": categories,
		"meta": utils.ListMeta{Total: total, Limit: limit, Offset: offset},
	})
}

// GetCategory godoc
// @Summary Get a category by slug
// @Tags public
// @Produce json
// @Security BearerAuth
// @Param slug path string true "Category slug"
// @Param include_posts query bool false "Include the category's posts"
// @Param posts_limit query int false "Post count when include_posts is set (default 10)"
// @Param posts_published query bool false "Only published posts (default true)"
// @Success 200 {object} models.Category
// @Failure 401 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /api/v1/categories/{slug} [get]
func (h *PublicHandler) GetCategory(c *gin.Context) {
	organizationID := c.MustGet(middleware.ContextOrganizationID).(string)

	category, err := h.categoryRepo.GetBySlug(organizationID, c.Param("slug"))
	if err != nil {
		h.internalError(c, err)
		return
	}
	if category == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
		return
	}

	if utils.ParseBool(c.Query("include_posts"), false) {
		postsLimit, _ := utils.ParseLimitOffset(c.Query("posts_limit"), "", defaultPostsLimit)
		publishedOnly := utils.ParseBool(c.Query("posts_published"), true)

		posts, err := h.postRepo.ListByCategory(organizationID, category.ID, publishedOnly, postsLimit)
		if err != nil {
			h.internalError(c, err)
			return
		}
		category.Posts = posts
	}

	c.JSON(http.StatusOK, category)
}

// GetSettings godoc
// @Summary Get the organization's public settings
// @Tags public
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /api/v1/settings [get]
func (h *PublicHandler) GetSettings(c *gin.Context) {
	organizationID := c.MustGet(middleware.ContextOrganizationID).(string)

	organization, err := h.orgRepo.GetByID(organizationID)
	if err != nil {
		h.internalError(c, err)
		return
	}

	settings, err := h.settingsRepo.GetByOrganizationID(organizationID)
	if err != nil {
		h.internalError(c, err)
		return
	}
	if settings == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Settings not found"})
		return
	}

	// Avoid duplicating the settings row inside the organization object
	if organization != nil {
		organization.Settings = nil
	}

	c.JSON(http.StatusOK, gin.H{
		"organization": organization,
		"settings":     settings,
	})
}

func (h *PublicHandler) internalError(c *gin.Context, err error) {
	logrus.Errorf("Public API error: %v", err)
	utils.CaptureError(err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
}

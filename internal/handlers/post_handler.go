package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/inkpresshq/inkpress-cms-backend/internal/database/repository"
	"github.com/inkpresshq/inkpress-cms-backend/internal/models"
	"github.com/inkpresshq/inkpress-cms-backend/internal/services"
	"github.com/inkpresshq/inkpress-cms-backend/internal/utils"
)

type PostHandler struct {
	postService *services.PostService
}

func NewPostHandler(postService *services.PostService) *PostHandler {
	return &PostHandler{
		postService: postService,
	}
}

// CreatePost godoc
// @Summary Create a new post
// @Tags posts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.CreatePostRequest true "Post creation request"
// @Success 201 {object} models.Post
// @Failure 400 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /api/v1/admin/posts [post]
func (h *PostHandler) CreatePost(c *gin.Context) {
	organizationID := c.MustGet("organization_id").(string)
	userID := c.MustGet("user_id").(string)

	var req models.CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data", "details": err.Error()})
		return
	}

	post, err := h.postService.CreatePost(organizationID, userID, &req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create post", "details": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, post)
}

// ListPosts godoc
// @Summary List the organization's posts
// @Tags posts
// @Produce json
// @Security BearerAuth
// @Param type query string false "Content type filter"
// @Param published query bool false "Published filter"
// @Param search query string false "Title/content search"
// @Param limit query int false "Page size (default 20)"
// @Param offset query int false "Page offset"
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /api/v1/admin/posts [get]
func (h *PostHandler) ListPosts(c *gin.Context) {
	organizationID := c.MustGet("organization_id").(string)
	limit, offset := utils.ParseLimitOffset(c.Query("limit"), c.Query("offset"), 20)

	filter := repository.PostFilter{}
	if postType := c.Query("type"); postType != "" {
		filter.Type = &postType
	}
	if published := c.Query("published"); published != "" {
		value := utils.ParseBool(published, false)
		filter.Published = &value
	}
	if search := c.Query("search"); search != "" {
		filter.Search = &search
	}

	posts, total, err := h.postService.ListPosts(organizationID, filter, limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get posts", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": posts,
		"meta": utils.ListMeta{Total: total, Limit: limit, Offset: offset},
	})
}

// GetPost godoc
// @Summary Get a post by ID
// @Tags posts
// @Produce json
// @Security BearerAuth
// @Param id path string true "Post ID"
// @Success 200 {object} models.Post
// @Failure 404 {object} map[string]interface{}
// @Router /api/v1/admin/posts/{id} [get]
func (h *PostHandler) GetPost(c *gin.Context) {
	organizationID := c.MustGet("organization_id").(string)

	post, err := h.postService.GetPost(organizationID, c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get post", "details": err.Error()})
		return
	}
	if post == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		return
	}

	c.JSON(http.StatusOK, post)
}

// UpdatePost godoc
// @Summary Update a post
// @Tags posts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Post ID"
// @Param request body models.UpdatePostRequest true "Post update request"
// @Success 200 {object} models.Post
// @Failure 400 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /api/v1/admin/posts/{id} [put]
func (h *PostHandler) UpdatePost(c *gin.Context) {
	organizationID := c.MustGet("organization_id").(string)

	var req models.UpdatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data", "details": err.Error()})
		return
	}

	post, err := h.postService.UpdatePost(organizationID, c.Param("id"), &req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update post", "details": err.Error()})
		return
	}
	if post == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		return
	}

	c.JSON(http.StatusOK, post)
}

// DeletePost godoc
// @Summary Delete a post
// @Tags posts
// @Produce json
// @Security BearerAuth
// @Param id path string true "Post ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /api/v1/admin/posts/{id} [delete]
func (h *PostHandler) DeletePost(c *gin.Context) {
	organizationID := c.MustGet("organization_id").(string)

	if err := h.postService.DeletePost(organizationID, c.Param("id")); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Post deleted"})
}

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/inkpresshq/inkpress-cms-backend/internal/models"
	"github.com/inkpresshq/inkpress-cms-backend/internal/services"
)

type TagHandler struct {
	tagService *services.TagService
}

func NewTagHandler(tagService *services.TagService) *TagHandler {
	return &TagHandler{
		tagService: tagService,
	}
}

// CreateTag godoc
// @Summary Create a new tag
// @Tags tags
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.CreateTagRequest true "Tag creation request"
// @Success 201 {object} models.Tag
// @Failure 400 {object} map[string]interface{}
// @Router /api/v1/admin/tags [post]
func (h *TagHandler) CreateTag(c *gin.Context) {
	organizationID := c.MustGet("organization_id").(string)

	var req models.CreateTagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data", "details": err.Error()})
		return
	}

	tag, err := h.tagService.CreateTag(organizationID, &req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create tag", "details": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, tag)
}

// ListTags godoc
// @Summary List the organization's tags
// @Tags tags
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.Tag
// @Router /api/v1/admin/tags [get]
func (h *TagHandler) ListTags(c *gin.Context) {
	organizationID := c.MustGet("organization_id").(string)

	tags, err := h.tagService.ListTags(organizationID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get tags", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, tags)
}

// UpdateTag godoc
// @Summary Update a tag
// @Tags tags
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Tag ID"
// @Param request body models.UpdateTagRequest true "Tag update request"
// @Success 200 {object} models.Tag
// @Failure 404 {object} map[string]interface{}
// @Router /api/v1/admin/tags/{id} [put]
func (h *TagHandler) UpdateTag(c *gin.Context) {
	organizationID := c.MustGet("organization_id").(string)

	var req models.UpdateTagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data", "details": err.Error()})
		return
	}

	tag, err := h.tagService.UpdateTag(organizationID, c.Param("id"), &req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update tag", "details": err.Error()})
		return
	}
	if tag == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Tag not found"})
		return
	}

	c.JSON(http.StatusOK, tag)
}

// DeleteTag godoc
// @Summary Delete a tag
// @Tags tags
// @Produce json
// @Security BearerAuth
// @Param id path string true "Tag ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /api/v1/admin/tags/{id} [delete]
func (h *TagHandler) DeleteTag(c *gin.Context) {
	organizationID := c.MustGet("organization_id").(string)

	if err := h.tagService.DeleteTag(organizationID, c.Param("id")); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Tag deleted"})
}

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/inkpresshq/inkpress-cms-backend/internal/database/repository"
	"github.com/inkpresshq/inkpress-cms-backend/internal/models"
	"github.com/inkpresshq/inkpress-cms-backend/internal/services"
	"github.com/inkpresshq/inkpress-cms-backend/internal/utils"
)

type CategoryHandler struct {
	categoryService *services.CategoryService
}

func NewCategoryHandler(categoryService *services.CategoryService) *CategoryHandler {
	return &CategoryHandler{
		categoryService: categoryService,
	}
}

// CreateCategory godoc
// @Summary Create a new category
// @Tags categories
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.CreateCategoryRequest true "Category creation request"
// @Success 201 {object} models.Category
// @Failure 400 {object} map[string]interface{}
// @Router /api/v1/admin/categories [post]
func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	organizationID := c.MustGet("organization_id").(string)

	var req models.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data", "details": err.Error()})
		return
	}

	category, err := h.categoryService.CreateCategory(organizationID, &req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create category", "details": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, category)
}

// ListCategories godoc
// @Summary List the organization's categories
// @Tags categories
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Page size (default 50)"
// @Param offset query int false "Page offset"
// @Success 200 {object} map[string]interface{}
// @Router /api/v1/admin/categories [get]
func (h *CategoryHandler) ListCategories(c *gin.Context) {
	organizationID := c.MustGet("organization_id").(string)
	limit, offset := utils.ParseLimitOffset(c.Query("limit"), c.Query("offset"), 50)

	categories, total, err := h.categoryService.ListCategories(organizationID, repository.CategoryFilter{}, limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get categories", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": categories,
		"meta": utils.ListMeta{Total: total, Limit: limit, Offset: offset},
	})
}

// UpdateCategory godoc
// @Summary Update a category
// @Tags categories
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Category ID"
// @Param request body models.UpdateCategoryRequest true "Category update request"
// @Success 200 {object} models.Category
// @Failure 400 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /api/v1/admin/categories/{id} [put]
func (h *CategoryHandler) UpdateCategory(c *gin.Context) {
	organizationID := c.MustGet("organization_id").(string)

	var req models.UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data", "details": err.Error()})
		return
	}

	category, err := h.categoryService.UpdateCategory(organizationID, c.Param("id"), &req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update category", "details": err.Error()})
		return
	}
	if category == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
		return
	}

	c.JSON(http.StatusOK, category)
}

// DeleteCategory godoc
// @Summary Delete a category
// @Tags categories
// @Produce json
// @Security BearerAuth
// @Param id path string true "Category ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /api/v1/admin/categories/{id} [delete]
func (h *CategoryHandler) DeleteCategory(c *gin.Context) {
	organizationID := c.MustGet("organization_id").(string)

	if err := h.categoryService.DeleteCategory(organizationID, c.Param("id")); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Category deleted"})
}

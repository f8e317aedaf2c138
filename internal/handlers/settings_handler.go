package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/inkpresshq/inkpress-cms-backend/internal/models"
	"github.com/inkpresshq/inkpress-cms-backend/internal/services"
)

type SettingsHandler struct {
	settingsService *services.SettingsService
}

func NewSettingsHandler(settingsService *services.SettingsService) *SettingsHandler {
	return &SettingsHandler{
		settingsService: settingsService,
	}
}

// GetSettings godoc
// @Summary Get the organization's site settings
// @Tags settings
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.SiteSettings
// @Failure 404 {object} map[string]interface{}
// @Router /api/v1/admin/settings [get]
func (h *SettingsHandler) GetSettings(c *gin.Context) {
	organizationID := c.MustGet("organization_id").(string)

	settings, err := h.settingsService.GetSettings(organizationID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get settings", "details": err.Error()})
		return
	}
	if settings == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Settings not found"})
		return
	}

	c.JSON(http.StatusOK, settings)
}

// UpdateSettings godoc
// @Summary Update the organization's site settings
// @Tags settings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.UpdateSiteSettingsRequest true "Settings update request"
// @Success 200 {object} models.SiteSettings
// @Failure 400 {object} map[string]interface{}
// @Router /api/v1/admin/settings [put]
func (h *SettingsHandler) UpdateSettings(c *gin.Context) {
	organizationID := c.MustGet("organization_id").(string)

	var req models.UpdateSiteSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data", "details": err.Error()})
		return
	}

	settings, err := h.settingsService.UpdateSettings(organizationID, &req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update settings", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, settings)
}

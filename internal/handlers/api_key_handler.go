package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/inkpresshq/inkpress-cms-backend/internal/models"
	"github.com/inkpresshq/inkpress-cms-backend/internal/services/api_key"
)

type APIKeyHandler struct {
	apiKeyService *api_key.Service
}

func NewAPIKeyHandler(apiKeyService *api_key.Service) *APIKeyHandler {
	return &APIKeyHandler{
		apiKeyService: apiKeyService,
	}
}

// CreateAPIKey godoc
// @Summary Create a new API key for the caller's organization
// @Description The key value is only returned once, on creation
// @Tags api-keys
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.CreateAPIKeyRequest true "API key creation request"
// @Success 201 {object} models.APIKey
// @Failure 400 {object} map[string]interface{}
// @Router /api/v1/admin/api-keys [post]
func (h *APIKeyHandler) CreateAPIKey(c *gin.Context) {
	organizationID := c.MustGet("organization_id").(string)

	var req models.CreateAPIKeyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data", "details": err.Error()})
		return
	}

	apiKey, err := h.apiKeyService.GenerateAPIKey(organizationID, req.Name)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create API key", "details": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, apiKey)
}

// ListAPIKeys godoc
// @Summary List the organization's API keys
// @Tags api-keys
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.APIKey
// @Router /api/v1/admin/api-keys [get]
func (h *APIKeyHandler) ListAPIKeys(c *gin.Context) {
	organizationID := c.MustGet("organization_id").(string)

	keys, err := h.apiKeyService.ListAPIKeys(organizationID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get API keys", "details": err.Error()})
		return
	}

	// The secret is write-only after creation
	for i := range keys {
		keys[i].Key = ""
	}

	c.JSON(http.StatusOK, keys)
}

// DeleteAPIKey godoc
// @Summary Delete an API key
// @Tags api-keys
// @Produce json
// @Security BearerAuth
// @Param id path string true "API key ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /api/v1/admin/api-keys/{id} [delete]
func (h *APIKeyHandler) DeleteAPIKey(c *gin.Context) {
	organizationID := c.MustGet("organization_id").(string)

	if err := h.apiKeyService.DeleteAPIKey(organizationID, c.Param("id")); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "API key deleted"})
}

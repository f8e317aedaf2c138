package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/inkpresshq/inkpress-cms-backend/internal/models"
)

// Context keys set by the public API guard
const (
	ContextOrganization   = "organization"
	ContextOrganizationID = "organization_id"
	ContextSiteSettings   = "site_settings"
)

// KeyResolver resolves a presented API key to its tenant and records usage.
// Implemented by api_key.Service.
type KeyResolver interface {
	// Resolve returns the matching key with Organization and its Settings
	// preloaded, or (nil, nil) when the key is unknown.
	Resolve(key string) (*models.APIKey, error)
	// TouchLastUsed updates the key's last-used timestamp.
	TouchLastUsed(id string) error
}

// APIKeyMiddleware gates the public read API behind per-organization API keys
type APIKeyMiddleware struct {
	apiKeys KeyResolver
}

// NewAPIKeyMiddleware creates a new API key middleware
func NewAPIKeyMiddleware(apiKeys KeyResolver) *APIKeyMiddleware {
	return &APIKeyMiddleware{
		apiKeys: apiKeys,
	}
}

// Guard validates the bearer API key, attaches the organization and its
// settings to the request context and computes per-tenant CORS headers.
//
// When the key cannot be validated the tenant's origin policy is unknown, so
// failure responses carry wildcard CORS; this keeps auth error bodies
// readable from any origin. OPTIONS requests still resolve the key to pick
// up the tenant policy but never fail the preflight.
func (m *APIKeyMiddleware) Guard() gin.HandlerFunc {
	return func(c *gin.Context) {
		preflight := c.Request.Method == http.MethodOptions

		token, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			setPublicCORSHeaders(c, "*")
			if preflight {
				c.AbortWithStatus(http.StatusNoContent)
				return
			}
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			c.Abort()
			return
		}

		apiKey, err := m.apiKeys.Resolve(token)
		if err != nil {
			setPublicCORSHeaders(c, "*")
			if preflight {
				c.AbortWithStatus(http.StatusNoContent)
				return
			}
			logrus.Errorf("Failed to resolve API key: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			c.Abort()
			return
		}
		if apiKey == nil {
			setPublicCORSHeaders(c, "*")
			if preflight {
				c.AbortWithStatus(http.StatusNoContent)
				return
			}
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid API key"})
			c.Abort()
			return
		}

		// Tenant resolved: answer with the organization's own origin policy
		var settings *models.SiteSettings
		if apiKey.Organization != nil {
			settings = apiKey.Organization.Settings
		}
		var allowedOrigins *string
		if settings != nil {
			allowedOrigins = settings.AllowedOrigins
		}
		setPublicCORSHeaders(c, ResolveAllowOrigin(c.GetHeader("Origin"), allowedOrigins))

		if preflight {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		// Set tenant information in context; every downstream query must be
		// scoped by this organization ID
		c.Set(ContextOrganization, apiKey.Organization)
		c.Set(ContextOrganizationID, apiKey.OrganizationID)
		c.Set(ContextSiteSettings, settings)

		// Best-effort usage bookkeeping, detached from the response path
		go func(id string) {
			if err := m.apiKeys.TouchLastUsed(id); err != nil {
				logrus.Warnf("Failed to update API key last used timestamp: %v", err)
			}
		}(apiKey.ID)

		c.Next()
	}
}

// bearerToken extracts the token from a "Bearer <token>" Authorization header
func bearerToken(header string) (string, bool) {
	if !strings.HasPrefix(header, "Bearer ") {
		return "", false
	}
	token := strings.TrimPrefix(header, "Bearer ")
	if token == "" {
		return "", false
	}
	return token, true
}

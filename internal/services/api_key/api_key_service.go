package api_key

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"

	"github.com/inkpresshq/inkpress-cms-backend/internal/database/repository"
	"github.com/inkpresshq/inkpress-cms-backend/internal/models"
	"gorm.io/gorm"
)

// Service handles API key operations
type Service struct {
	apiKeyRepo *repository.APIKeyRepository
}

// NewService creates a new API key service
func NewService(db *gorm.DB) *Service {
	return &Service{
		apiKeyRepo: repository.NewAPIKeyRepository(db),
	}
}

// GenerateAPIKey creates a new named API key for an organization
func (s *Service) GenerateAPIKey(organizationID, name string) (*models.APIKey, error) {
	key, err := s.generateRandomKey()
	if err != nil {
		return nil, fmt.Errorf("failed to generate API key: %w", err)
	}

	apiKey := &models.APIKey{
		Key:            key,
		Name:           name,
		OrganizationID: organizationID,
	}

	createdAPIKey, err := s.apiKeyRepo.Create(apiKey)
	if err != nil {
		return nil, fmt.Errorf("failed to create API key: %w", err)
	}

	return createdAPIKey, nil
}

// Resolve looks up a presented key by exact match and returns it with the
// owning organization and its settings preloaded. Returns (nil, nil) when the
// key is unknown.
//
// Keys are stored and compared as plaintext. Hashing them at rest would be
// stronger, but it changes the stored credential format, so it stays a
// product decision rather than a silent fix here.
func (s *Service) Resolve(key string) (*models.APIKey, error) {
	apiKey, err := s.apiKeyRepo.GetByKey(key)
	if err != nil {
		return nil, fmt.Errorf("failed to get API key: %w", err)
	}
	return apiKey, nil
}

// TouchLastUsed updates the last used timestamp for an API key. Callers treat
// this as best-effort bookkeeping; concurrent writers race and last write
// wins.
func (s *Service) TouchLastUsed(id string) error {
	return s.apiKeyRepo.UpdateLastUsed(id)
}

// ListAPIKeys returns all API keys of an organization
func (s *Service) ListAPIKeys(organizationID string) ([]models.APIKey, error) {
	keys, err := s.apiKeyRepo.ListByOrganization(organizationID)
	if err != nil {
		return nil, fmt.Errorf("failed to list API keys: %w", err)
	}
	return keys, nil
}

// DeleteAPIKey deletes an API key scoped to its organization
func (s *Service) DeleteAPIKey(organizationID, id string) error {
	deleted, err := s.apiKeyRepo.Delete(organizationID, id)
	if err != nil {
		return fmt.Errorf("failed to delete API key: %w", err)
	}
	if !deleted {
		return fmt.Errorf("API key not found")
	}
	return nil
}

// generateRandomKey generates a random 32-byte hex string
func (s *Service) generateRandomKey() (string, error) {
	bytes := make([]byte, 32)
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}
	return hex.EncodeToString(bytes), nil
}

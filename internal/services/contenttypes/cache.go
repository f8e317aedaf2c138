// Package contenttypes caches each organization's enabled content types, so
// the public API does not hit the settings table on every list request.
package contenttypes

import (
	"fmt"
	"strings"
	"sync"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/inkpresshq/inkpress-cms-backend/internal/database/repository"
	"gorm.io/gorm"
)

const (
	defaultTTL     = time.Minute
	defaultMaxOrgs = 1024
)

// DefaultTypes is used when an organization has no settings row or an empty
// content-types value.
var DefaultTypes = []string{"post", "page"}

type entry struct {
	types  []string
	expiry time.Time
}

// Cache resolves and memoizes the enabled content types per organization.
// Entries expire after a TTL; time is injected so tests control eviction.
type Cache struct {
	settingsRepo *repository.SiteSettingsRepository
	store        *lru.Cache[string, entry]
	ttl          time.Duration
	now          func() time.Time
	mu           sync.Mutex
}

// NewCache creates a cache backed by the settings repository
func NewCache(db *gorm.DB, ttl time.Duration) *Cache {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	store, _ := lru.New[string, entry](defaultMaxOrgs)
	return &Cache{
		settingsRepo: repository.NewSiteSettingsRepository(db),
		store:        store,
		ttl:          ttl,
		now:          time.Now,
	}
}

// SetClock overrides the cache's time source. Used by tests.
func (c *Cache) SetClock(now func() time.Time) {
	c.now = now
}

// Get returns the enabled content types for an organization, loading from the
// settings table when the cached entry is missing or expired.
func (c *Cache) Get(organizationID string) ([]string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if cached, ok := c.store.Get(organizationID); ok && c.now().Before(cached.expiry) {
		return cached.types, nil
	}

	settings, err := c.settingsRepo.GetByOrganizationID(organizationID)
	if err != nil {
		return nil, fmt.Errorf("failed to load site settings: %w", err)
	}

	types := DefaultTypes
	if settings != nil && settings.ContentTypes != "" {
		types = ParseContentTypes(settings.ContentTypes)
	}

	c.store.Add(organizationID, entry{types: types, expiry: c.now().Add(c.ttl)})
	return types, nil
}

// Contains reports whether an organization has the given content type enabled
func (c *Cache) Contains(organizationID, contentType string) (bool, error) {
	types, err := c.Get(organizationID)
	if err != nil {
		return false, err
	}
	for _, t := range types {
		if t == contentType {
			return true, nil
		}
	}
	return false, nil
}

// Invalidate drops the cached entry for an organization. Called when its
// settings are updated.
func (c *Cache) Invalidate(organizationID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.store.Remove(organizationID)
}

// ParseContentTypes splits a comma-separated content-type list, trimming
// whitespace and dropping empty candidates.
func ParseContentTypes(value string) []string {
	parts := strings.Split(value, ",")
	types := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part != "" {
			types = append(types, part)
		}
	}
	return types
}

package contenttypes

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const orgID = "22222222-2222-2222-2222-222222222222"

func newMockGorm(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	return db, mock
}

func expectSettingsQuery(mock sqlmock.Sqlmock, contentTypes string) {
	rows := sqlmock.NewRows([]string{"id", "organization_id", "content_types"}).
		AddRow("33333333-3333-3333-3333-333333333333", orgID, contentTypes)
	mock.ExpectQuery(`SELECT \* FROM "site_settings" WHERE organization_id = \$1`).
		WithArgs(orgID).
		WillReturnRows(rows)
}

func TestCacheGetLoadsAndMemoizes(t *testing.T) {
	db, mock := newMockGorm(t)
	cache := NewCache(db, time.Minute)

	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	cache.SetClock(func() time.Time { return now })

	expectSettingsQuery(mock, "post,article")

	types, err := cache.Get(orgID)
	require.NoError(t, err)
	assert.Equal(t, []string{"post", "article"}, types)

	// Second read within the TTL is served from the cache; no further query
	// expectation is registered.
	types, err = cache.Get(orgID)
	require.NoError(t, err)
	assert.Equal(t, []string{"post", "article"}, types)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCacheGetReloadsAfterTTL(t *testing.T) {
	db, mock := newMockGorm(t)
	cache := NewCache(db, time.Minute)

	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	cache.SetClock(func() time.Time { return now })

	expectSettingsQuery(mock, "post")
	_, err := cache.Get(orgID)
	require.NoError(t, err)

	// Advance past the TTL; the next read goes back to the database
	now = now.Add(2 * time.Minute)
	expectSettingsQuery(mock, "post,page,recipe")

	types, err := cache.Get(orgID)
	require.NoError(t, err)
	assert.Equal(t, []string{"post", "page", "recipe"}, types)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCacheGetDefaultsWhenSettingsMissing(t *testing.T) {
	db, mock := newMockGorm(t)
	cache := NewCache(db, time.Minute)

	mock.ExpectQuery(`SELECT \* FROM "site_settings" WHERE organization_id = \$1`).
		WithArgs(orgID).
		WillReturnRows(sqlmock.NewRows([]string{"id", "organization_id", "content_types"}))

	types, err := cache.Get(orgID)
	require.NoError(t, err)
	assert.Equal(t, DefaultTypes, types)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCacheInvalidateForcesReload(t *testing.T) {
	db, mock := newMockGorm(t)
	cache := NewCache(db, time.Minute)

	expectSettingsQuery(mock, "post")
	_, err := cache.Get(orgID)
	require.NoError(t, err)

	cache.Invalidate(orgID)

	expectSettingsQuery(mock, "post,page")
	types, err := cache.Get(orgID)
	require.NoError(t, err)
	assert.Equal(t, []string{"post", "page"}, types)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCacheContains(t *testing.T) {
	db, mock := newMockGorm(t)
	cache := NewCache(db, time.Minute)

	expectSettingsQuery(mock, "post,page")

	ok, err := cache.Contains(orgID, "page")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = cache.Contains(orgID, "recipe")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestParseContentTypes(t *testing.T) {
	assert.Equal(t, []string{"post", "page"}, ParseContentTypes("post,page"))
	assert.Equal(t, []string{"post", "page"}, ParseContentTypes(" post , page "))
	assert.Equal(t, []string{"post"}, ParseContentTypes("post,,"))
	assert.Empty(t, ParseContentTypes(""))
	assert.Empty(t, ParseContentTypes(" , ,"))
}

package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/inkpresshq/inkpress-cms-backend/internal/middleware"
	"github.com/inkpresshq/inkpress-cms-backend/internal/services/contenttypes"
)

const testOrgID = "22222222-2222-2222-2222-222222222222"

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

// publicRouter mounts the public handlers behind a stub that injects the
// tenant the way the API key guard does.
func publicRouter(h *PublicHandler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set(middleware.ContextOrganizationID, testOrgID)
		c.Next()
	})
	r.GET("/api/v1/posts", h.ListPosts)
	r.GET("/api/v1/posts/:slug", h.GetPost)
	r.GET("/api/v1/categories", h.ListCategories)
	r.GET("/api/v1/categories/:slug", h.GetCategory)
	r.GET("/api/v1/settings", h.GetSettings)
	return r
}

func TestPublicListPostsDefaultPagination(t *testing.T) {
	db, mock := newMockGorm(t)
	h := NewPublicHandler(db, contenttypes.NewCache(db, time.Minute))
	r := publicRouter(h)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "posts" WHERE organization_id = \$1`).
		WithArgs(testOrgID).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(5))
	mock.ExpectQuery(`SELECT \* FROM "posts" WHERE organization_id = \$1 ORDER BY created_at DESC LIMIT 10`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "organization_id", "title", "slug"}))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/posts", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"data":[],"meta":{"total":5,"limit":10,"offset":0}}`, w.Body.String())

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPublicListPostsUnknownTypeReturnsEmpty(t *testing.T) {
	db, mock := newMockGorm(t)
	h := NewPublicHandler(db, contenttypes.NewCache(db, time.Minute))
	r := publicRouter(h)

	// Only the content-type lookup hits the database; the posts table is
	// never queried for a type the tenant has not enabled.
	mock.ExpectQuery(`SELECT \* FROM "site_settings" WHERE organization_id = \$1`).
		WithArgs(testOrgID).
		WillReturnRows(sqlmock.NewRows([]string{"id", "organization_id", "content_types"}).
			AddRow("33333333-3333-3333-3333-333333333333", testOrgID, "post,page"))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/posts?type=recipe", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"data":[],"meta":{"total":0,"limit":10,"offset":0}}`, w.Body.String())

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPublicGetPostNotFound(t *testing.T) {
	db, mock := newMockGorm(t)
	h := NewPublicHandler(db, contenttypes.NewCache(db, time.Minute))
	r := publicRouter(h)

	mock.ExpectQuery(`SELECT \* FROM "posts" WHERE organization_id = \$1 AND slug = \$2`).
		WithArgs(testOrgID, "missing").
		WillReturnRows(sqlmock.NewRows([]string{"id", "organization_id", "slug"}))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/posts/missing", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"Post not found"}`, w.Body.String())
}

func TestPublicGetCategoryNotFound(t *testing.T) {
	db, mock := newMockGorm(t)
	h := NewPublicHandler(db, contenttypes.NewCache(db, time.Minute))
	r := publicRouter(h)

	mock.ExpectQuery(`SELECT \* FROM "categories" WHERE organization_id = \$1 AND slug = \$2`).
		WithArgs(testOrgID, "missing").
		WillReturnRows(sqlmock.NewRows([]string{"id", "organization_id", "slug"}))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/categories/missing", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"Category not found"}`, w.Body.String())
}

func TestPublicGetSettingsMissingRow(t *testing.T) {
	db, mock := newMockGorm(t)
	h := NewPublicHandler(db, contenttypes.NewCache(db, time.Minute))
	r := publicRouter(h)

	mock.ExpectQuery(`SELECT \* FROM "organizations" WHERE id = \$1`).
		WithArgs(testOrgID).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "slug"}).
			AddRow(testOrgID, "Acme Publishing", "acme-publishing"))
	mock.ExpectQuery(`SELECT \* FROM "site_settings" WHERE "site_settings"\."organization_id" = \$1`).
		WithArgs(testOrgID).
		WillReturnRows(sqlmock.NewRows([]string{"id", "organization_id"}))
	mock.ExpectQuery(`SELECT \* FROM "site_settings" WHERE organization_id = \$1`).
		WithArgs(testOrgID).
		WillReturnRows(sqlmock.NewRows([]string{"id", "organization_id"}))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/settings", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"Settings not found"}`, w.Body.String())

	require.NoError(t, mock.ExpectationsWereMet())
}

package repository

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	testOrgID   = "22222222-2222-2222-2222-222222222222"
	otherPostID = "44444444-4444-4444-4444-444444444444"
)

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

func strPtr(s string) *string {
	return &s
}

func boolPtr(b bool) *bool {
	return &b
}

func TestPostListScopesByOrganizationOnly(t *testing.T) {
	db, mock := newMockGorm(t)
	repo := NewPostRepository(db)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "posts" WHERE organization_id = \$1`).
		WithArgs(testOrgID).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(42))
	mock.ExpectQuery(`SELECT \* FROM "posts" WHERE organization_id = \$1 ORDER BY created_at DESC LIMIT 10`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "organization_id", "title", "slug"}))

	posts, total, err := repo.List(testOrgID, PostFilter{}, 10, 0)
	require.NoError(t, err)
	assert.Empty(t, posts)
	assert.Equal(t, int64(42), total)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostListAppliesEachPresentFilter(t *testing.T) {
	db, mock := newMockGorm(t)
	repo := NewPostRepository(db)

	filter := PostFilter{
		Type:      strPtr("post"),
		Published: boolPtr(true),
		Search:    strPtr("hello"),
	}

	mock.ExpectQuery(`SELECT count\(\*\) FROM "posts" WHERE organization_id = \$1 AND type = \$2 AND published = \$3 AND \(title ILIKE \$4 OR content ILIKE \$5\)`).
		WithArgs(testOrgID, "post", true, "%hello%", "%hello%").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery(`SELECT \* FROM "posts" WHERE organization_id = \$1 AND type = \$2 AND published = \$3 AND \(title ILIKE \$4 OR content ILIKE \$5\) ORDER BY created_at DESC LIMIT 10`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "organization_id", "title", "slug"}))

	_, total, err := repo.List(testOrgID, filter, 10, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostGetBySlugNotFound(t *testing.T) {
	db, mock := newMockGorm(t)
	repo := NewPostRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "posts" WHERE organization_id = \$1 AND slug = \$2`).
		WithArgs(testOrgID, "missing").
		WillReturnRows(sqlmock.NewRows([]string{"id", "organization_id", "slug"}))

	post, err := repo.GetBySlug(testOrgID, "missing")
	require.NoError(t, err)
	assert.Nil(t, post)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostGetBySlugFound(t *testing.T) {
	db, mock := newMockGorm(t)
	repo := NewPostRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "posts" WHERE organization_id = \$1 AND slug = \$2`).
		WithArgs(testOrgID, "hello-world").
		WillReturnRows(sqlmock.NewRows([]string{"id", "organization_id", "slug", "title"}).
			AddRow(otherPostID, testOrgID, "hello-world", "Hello World"))
	mock.ExpectQuery(`SELECT \* FROM "post_tags" WHERE "post_tags"\."post_id" = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"post_id", "tag_id"}))

	post, err := repo.GetBySlug(testOrgID, "hello-world")
	require.NoError(t, err)
	require.NotNil(t, post)
	assert.Equal(t, "Hello World", post.Title)
	assert.Equal(t, testOrgID, post.OrganizationID)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostSlugExists(t *testing.T) {
	db, mock := newMockGorm(t)
	repo := NewPostRepository(db)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "posts" WHERE organization_id = \$1 AND slug = \$2`).
		WithArgs(testOrgID, "hello-world").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	exists, err := repo.SlugExists(testOrgID, "hello-world")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestPostDeleteScopedToOrganization(t *testing.T) {
	db, mock := newMockGorm(t)
	repo := NewPostRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "posts" WHERE id = \$1 AND organization_id = \$2`).
		WithArgs(otherPostID, testOrgID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	deleted, err := repo.Delete(testOrgID, otherPostID)
	require.NoError(t, err)
	assert.True(t, deleted)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostDeleteReportsMissingRow(t *testing.T) {
	db, mock := newMockGorm(t)
	repo := NewPostRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "posts" WHERE id = \$1 AND organization_id = \$2`).
		WithArgs(otherPostID, testOrgID).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	deleted, err := repo.Delete(testOrgID, otherPostID)
	require.NoError(t, err)
	assert.False(t, deleted)
}

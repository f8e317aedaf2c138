package repository

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testCategoryID = "55555555-5555-5555-5555-555555555555"

func TestCategoryListRootOnly(t *testing.T) {
	db, mock := newMockGorm(t)
	repo := NewCategoryRepository(db)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "categories" WHERE organization_id = \$1 AND parent_id IS NULL`).
		WithArgs(testOrgID).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))
	mock.ExpectQuery(`SELECT \* FROM "categories" WHERE organization_id = \$1 AND parent_id IS NULL ORDER BY name ASC LIMIT 50`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "organization_id", "name", "slug"}).
			AddRow(testCategoryID, testOrgID, "Engineering", "engineering").
			AddRow("66666666-6666-6666-6666-666666666666", testOrgID, "Product", "product"))

	categories, total, err := repo.List(testOrgID, CategoryFilter{RootOnly: true}, 50, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	require.Len(t, categories, 2)
	assert.Equal(t, "engineering", categories[0].Slug)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCategoryListByParentSlug(t *testing.T) {
	db, mock := newMockGorm(t)
	repo := NewCategoryRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "categories" WHERE organization_id = \$1 AND slug = \$2`).
		WithArgs(testOrgID, "engineering").
		WillReturnRows(sqlmock.NewRows([]string{"id", "organization_id", "name", "slug"}).
			AddRow(testCategoryID, testOrgID, "Engineering", "engineering"))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "categories" WHERE organization_id = \$1 AND parent_id = \$2`).
		WithArgs(testOrgID, testCategoryID).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery(`SELECT \* FROM "categories" WHERE organization_id = \$1 AND parent_id = \$2 ORDER BY name ASC LIMIT 50`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "organization_id", "parent_id", "name", "slug"}).
			AddRow("66666666-6666-6666-6666-666666666666", testOrgID, testCategoryID, "Backend", "backend"))

	categories, total, err := repo.List(testOrgID, CategoryFilter{ParentSlug: strPtr("engineering")}, 50, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, categories, 1)
	assert.Equal(t, "backend", categories[0].Slug)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCategoryListUnknownParentSlug(t *testing.T) {
	db, mock := newMockGorm(t)
	repo := NewCategoryRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "categories" WHERE organization_id = \$1 AND slug = \$2`).
		WithArgs(testOrgID, "missing").
		WillReturnRows(sqlmock.NewRows([]string{"id", "organization_id", "slug"}))

	categories, total, err := repo.List(testOrgID, CategoryFilter{ParentSlug: strPtr("missing")}, 50, 0)
	require.NoError(t, err)
	assert.Empty(t, categories)
	assert.Equal(t, int64(0), total)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCategoryGetBySlugNotFound(t *testing.T) {
	db, mock := newMockGorm(t)
	repo := NewCategoryRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "categories" WHERE organization_id = \$1 AND slug = \$2`).
		WithArgs(testOrgID, "missing").
		WillReturnRows(sqlmock.NewRows([]string{"id", "organization_id", "slug"}))

	category, err := repo.GetBySlug(testOrgID, "missing")
	require.NoError(t, err)
	assert.Nil(t, category)
}

package repository

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testKeyID = "11111111-1111-1111-1111-111111111111"

func TestAPIKeyGetByKeyPreloadsTenant(t *testing.T) {
	db, mock := newMockGorm(t)
	repo := NewAPIKeyRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "api_keys" WHERE key = \$1`).
		WithArgs("secret-key").
		WillReturnRows(sqlmock.NewRows([]string{"id", "organization_id", "key", "name"}).
			AddRow(testKeyID, testOrgID, "secret-key", "production-frontend"))
	mock.ExpectQuery(`SELECT \* FROM "organizations" WHERE "organizations"\."id" = \$1`).
		WithArgs(testOrgID).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "slug"}).
			AddRow(testOrgID, "Acme Publishing", "acme-publishing"))
	mock.ExpectQuery(`SELECT \* FROM "site_settings" WHERE "site_settings"\."organization_id" = \$1`).
		WithArgs(testOrgID).
		WillReturnRows(sqlmock.NewRows([]string{"id", "organization_id", "allowed_origins", "content_types"}).
			AddRow("33333333-3333-3333-3333-333333333333", testOrgID, "example.com", "post,page"))

	apiKey, err := repo.GetByKey("secret-key")
	require.NoError(t, err)
	require.NotNil(t, apiKey)
	assert.Equal(t, testOrgID, apiKey.OrganizationID)
	require.NotNil(t, apiKey.Organization)
	assert.Equal(t, "acme-publishing", apiKey.Organization.Slug)
	require.NotNil(t, apiKey.Organization.Settings)
	require.NotNil(t, apiKey.Organization.Settings.AllowedOrigins)
	assert.Equal(t, "example.com", *apiKey.Organization.Settings.AllowedOrigins)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAPIKeyGetByKeyUnknown(t *testing.T) {
	db, mock := newMockGorm(t)
	repo := NewAPIKeyRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "api_keys" WHERE key = \$1`).
		WithArgs("nope").
		WillReturnRows(sqlmock.NewRows([]string{"id", "organization_id", "key"}))

	apiKey, err := repo.GetByKey("nope")
	require.NoError(t, err)
	assert.Nil(t, apiKey)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAPIKeyUpdateLastUsed(t *testing.T) {
	db, mock := newMockGorm(t)
	repo := NewAPIKeyRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "api_keys" SET "last_used_at"=\$1,"updated_at"=\$2 WHERE id = \$3`).
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), testKeyID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.UpdateLastUsed(testKeyID)
	require.NoError(t, err)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAPIKeyDeleteScopedToOrganization(t *testing.T) {
	db, mock := newMockGorm(t)
	repo := NewAPIKeyRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "api_keys" WHERE id = \$1 AND organization_id = \$2`).
		WithArgs(testKeyID, testOrgID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	deleted, err := repo.Delete(testOrgID, testKeyID)
	require.NoError(t, err)
	assert.True(t, deleted)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAPIKeyDeleteWrongOrganization(t *testing.T) {
	db, mock := newMockGorm(t)
	repo := NewAPIKeyRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "api_keys" WHERE id = \$1 AND organization_id = \$2`).
		WithArgs(testKeyID, "99999999-9999-9999-9999-999999999999").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	deleted, err := repo.Delete("99999999-9999-9999-9999-999999999999", testKeyID)
	require.NoError(t, err)
	assert.False(t, deleted)
}

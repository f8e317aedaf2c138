package api_key

import (
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const testOrgID = "22222222-2222-2222-2222-222222222222"

var hexKeyPattern = regexp.MustCompile(`^[0-9a-f]{64}$`)

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

func TestGenerateAPIKeyProducesHexSecret(t *testing.T) {
	db, mock := newMockGorm(t)
	service := NewService(db)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "api_keys"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).
			AddRow("11111111-1111-1111-1111-111111111111"))
	mock.ExpectCommit()

	apiKey, err := service.GenerateAPIKey(testOrgID, "production-frontend")
	require.NoError(t, err)
	require.NotNil(t, apiKey)

	assert.Equal(t, testOrgID, apiKey.OrganizationID)
	assert.Equal(t, "production-frontend", apiKey.Name)
	assert.Regexp(t, hexKeyPattern, apiKey.Key)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGeneratedKeysAreUnique(t *testing.T) {
	service := &Service{}

	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		key, err := service.generateRandomKey()
		require.NoError(t, err)
		assert.False(t, seen[key], "duplicate key generated")
		seen[key] = true
	}
}

func TestResolveUnknownKey(t *testing.T) {
	db, mock := newMockGorm(t)
	service := NewService(db)

	mock.ExpectQuery(`SELECT \* FROM "api_keys" WHERE key = \$1`).
		WithArgs("nope").
		WillReturnRows(sqlmock.NewRows([]string{"id", "organization_id", "key"}))

	apiKey, err := service.Resolve("nope")
	require.NoError(t, err)
	assert.Nil(t, apiKey)
}

func TestDeleteAPIKeyNotFound(t *testing.T) {
	db, mock := newMockGorm(t)
	service := NewService(db)

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "api_keys" WHERE id = \$1 AND organization_id = \$2`).
		WithArgs("11111111-1111-1111-1111-111111111111", testOrgID).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	err := service.DeleteAPIKey(testOrgID, "11111111-1111-1111-1111-111111111111")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

package auth

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/inkpresshq/inkpress-cms-backend/internal/models"
)

const (
	testUserID = "77777777-7777-7777-7777-777777777777"
	testOrgID  = "22222222-2222-2222-2222-222222222222"
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

func testUser() *models.User {
	return &models.User{
		ID:             testUserID,
		OrganizationID: testOrgID,
		Email:          "editor@acme.example",
		IsActive:       true,
		TokenVersion:   0,
	}
}

func expectUserQuery(mock sqlmock.Sqlmock, isActive bool, tokenVersion uint) {
	mock.ExpectQuery(`SELECT \* FROM "users" WHERE id = \$1`).
		WithArgs(testUserID).
		WillReturnRows(sqlmock.NewRows([]string{"id", "organization_id", "email", "is_active", "token_version"}).
			AddRow(testUserID, testOrgID, "editor@acme.example", isActive, tokenVersion))
}

func TestAccessTokenRoundTrip(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	db, mock := newMockGorm(t)
	service := NewAuthService(db)

	token, err := service.generateAccessToken(testUser())
	require.NoError(t, err)
	require.NotEmpty(t, token)

	expectUserQuery(mock, true, 0)

	info, err := service.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, testUserID, info.UserID)
	assert.Equal(t, testOrgID, info.OrganizationID)
	assert.Equal(t, "editor@acme.example", info.Email)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestValidateTokenRejectsWrongSignature(t *testing.T) {
	db, _ := newMockGorm(t)

	t.Setenv("JWT_SECRET", "other-secret")
	other := NewAuthService(db)
	token, err := other.generateAccessToken(testUser())
	require.NoError(t, err)

	t.Setenv("JWT_SECRET", "test-secret")
	service := NewAuthService(db)

	// Signature check fails before any user lookup happens
	_, err = service.ValidateToken(token)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid token")
}

func TestValidateTokenRejectsStaleTokenVersion(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	db, mock := newMockGorm(t)
	service := NewAuthService(db)

	token, err := service.generateAccessToken(testUser())
	require.NoError(t, err)

	// Password change or logout-everywhere bumped the stored version
	expectUserQuery(mock, true, 1)

	_, err = service.ValidateToken(token)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "token version mismatch")
}

func TestValidateTokenRejectsDeactivatedUser(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	db, mock := newMockGorm(t)
	service := NewAuthService(db)

	token, err := service.generateAccessToken(testUser())
	require.NoError(t, err)

	expectUserQuery(mock, false, 0)

	_, err = service.ValidateToken(token)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "deactivated")
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	db, _ := newMockGorm(t)
	service := NewAuthService(db)

	_, err := service.ValidateToken("not-a-jwt")
	require.Error(t, err)
}

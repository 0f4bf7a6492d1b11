package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/Lizandro-reis/pizzaria-iedita-app/internal/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(&models.User{}, &models.OAuthClient{}, &models.OAuthToken{})
	require.NoError(t, err)

	return db
}

func createStaffClient(t *testing.T, db *gorm.DB, clientID, secret string) *models.User {
	staff := &models.User{
		Email:    "fulfillment@pizzaria.test",
		Name:     "Fulfillment Bot",
		Password: "irrelevant",
		Role:     "staff",
	}
	require.NoError(t, staff.HashPassword())
	require.NoError(t, db.Create(staff).Error)

	hashedSecret, err := bcrypt.GenerateFromPassword([]byte(secret), bcrypt.DefaultCost)
	require.NoError(t, err)

	client := &models.OAuthClient{
		ID:         clientID,
		Secret:     string(hashedSecret),
		Name:       "Fulfillment Integration",
		Domain:     "http://localhost:8080",
		UserID:     staff.ID,
		Scopes:     "orders:write reservations:write",
		GrantTypes: "client_credentials",
	}
	require.NoError(t, db.Create(client).Error)

	return staff
}

func TestOAuthServerInitialization(t *testing.T) {
	db := setupTestDB(t)

	oauthService := NewOAuthService(db, "test-jwt-secret-key-32-characters")
	assert.NotNil(t, oauthService)
	assert.NotNil(t, oauthService.GetServer())
}

func TestStaffTokenClaims(t *testing.T) {
	db := setupTestDB(t)
	oauthService := NewOAuthService(db, "test-jwt-secret-key-32-characters")
	require.NotNil(t, oauthService)

	staff := createStaffClient(t, db, "fulfillment-client", "test_secret")

	gen := NewStaffJWTAccessGenerate([]byte("test-jwt-secret-key-32-characters"), nil, db)
	role, err := gen.getUserRole(staff.ID)
	require.NoError(t, err)
	assert.Equal(t, "staff", role)

	_, err = gen.getUserRole("no-such-user")
	assert.Error(t, err)
}

package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tripdesk/internal/models"
)

func TestJWTRoundTrip(t *testing.T) {
	mgr := NewJWTManager("test-secret", 1, "tripdesk")

	token, err := mgr.GenerateToken(42, "owner@example.com", models.GroupAdmin)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := mgr.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, 42, claims.UserID)
	assert.Equal(t, "owner@example.com", claims.Email)
	assert.Equal(t, models.GroupAdmin, claims.Group)
	assert.Equal(t, "tripdesk", claims.Issuer)
}

func TestJWTWrongSecret(t *testing.T) {
	mgr := NewJWTManager("secret-a", 1, "tripdesk")
	other := NewJWTManager("secret-b", 1, "tripdesk")

	token, err := mgr.GenerateToken(1, "u@example.com", models.GroupUser)
	require.NoError(t, err)

	_, err = other.ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWTGarbageToken(t *testing.T) {
	mgr := NewJWTManager("test-secret", 1, "tripdesk")
	_, err := mgr.ValidateToken("not.a.token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestPasswordHashAndCheck(t *testing.T) {
	hash, err := HashPassword("s3cret-pass")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret-pass", hash)

	assert.True(t, CheckPassword("s3cret-pass", hash))
	assert.False(t, CheckPassword("wrong-pass", hash))
}

func TestAreaFor(t *testing.T) {
	admin := &models.User{Group: models.GroupAdmin}
	user := &models.User{Group: models.GroupUser}

	assert.Equal(t, AreaLogin, AreaFor(nil, false))
	assert.Equal(t, AreaAdmin, AreaFor(admin, false))
	assert.Equal(t, AreaAdmin, AreaFor(admin, true))
	assert.Equal(t, AreaOnboarding, AreaFor(user, false))
	assert.Equal(t, AreaUser, AreaFor(user, true))
}

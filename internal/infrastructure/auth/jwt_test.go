package auth

import (
	"testing"
	"time"

	"github.com/autoexpert/backend/internal/domain/identity"
	"github.com/autoexpert/backend/internal/infrastructure/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testUser(t *testing.T) *identity.User {
	t.Helper()
	user, err := identity.NewUser("manager1", identity.RoleManager)
	require.NoError(t, err)
	user.ID = 1
	return user
}

func TestIssueAndVerify(t *testing.T) {
	manager := NewTokenManager(config.JWTConfig{
		Secret:     "test-secret-key",
		Expiration: time.Hour,
		Issuer:     "autoexpert",
	})

	token, expiresAt, err := manager.Issue(testUser(t))
	require.NoError(t, err)
	assert.True(t, expiresAt.After(time.Now()))

	claims, err := manager.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, uint(1), claims.UserID)
	assert.Equal(t, "manager1", claims.Login)
	assert.Equal(t, "manager", claims.Role)
	assert.Equal(t, "autoexpert", claims.Issuer)
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	issuer := NewTokenManager(config.JWTConfig{Secret: "secret-a", Expiration: time.Hour})
	verifier := NewTokenManager(config.JWTConfig{Secret: "secret-b", Expiration: time.Hour})

	token, _, err := issuer.Issue(testUser(t))
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyRejectsExpiredToken(t *testing.T) {
	manager := NewTokenManager(config.JWTConfig{Secret: "test-secret-key", Expiration: -time.Minute})

	token, _, err := manager.Issue(testUser(t))
	require.NoError(t, err)

	_, err = manager.Verify(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestVerifyRejectsGarbage(t *testing.T) {
	manager := NewTokenManager(config.JWTConfig{Secret: "test-secret-key", Expiration: time.Hour})

	_, err := manager.Verify("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

package auth

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/salesflowhq/salesflow/pkg/cache"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-key-for-jwt"

func TestGenerateAndValidateJWT(t *testing.T) {
	token, err := GenerateJWT(42, 7, "rep@acme.com", testSecret, 24)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ValidateJWT(token, testSecret)
	require.NoError(t, err)
	assert.Equal(t, 42, claims.UserID)
	assert.Equal(t, 7, claims.CompanyID)
	assert.Equal(t, "rep@acme.com", claims.Email)
	assert.True(t, claims.ExpiresAt.After(time.Now()))
}

func TestValidateJWT_WrongSecret(t *testing.T) {
	token, err := GenerateJWT(1, 1, "a@b.com", testSecret, 24)
	require.NoError(t, err)

	_, err = ValidateJWT(token, "some-other-secret")
	assert.Error(t, err)
}

func TestValidateJWT_Garbage(t *testing.T) {
	_, err := ValidateJWT("not.a.token", testSecret)
	assert.Error(t, err)
}

func TestValidateJWTWithBlacklist(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	defer mr.Close()

	cacheClient, err := cache.NewClient("redis://" + mr.Addr())
	require.NoError(t, err)
	defer cacheClient.Close()

	blacklist := NewTokenBlacklist(cacheClient)
	ctx := context.Background()

	token, err := GenerateJWT(1, 1, "a@b.com", testSecret, 24)
	require.NoError(t, err)

	claims, err := ValidateJWTWithBlacklist(ctx, token, testSecret, blacklist)
	require.NoError(t, err)
	assert.Equal(t, 1, claims.UserID)

	require.NoError(t, blacklist.Add(ctx, token, time.Hour))

	_, err = ValidateJWTWithBlacklist(ctx, token, testSecret, blacklist)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "revoked")
}

func TestPassword(t *testing.T) {
	hash, err := HashPassword("correct horse battery staple")
	require.NoError(t, err)
	assert.NotEqual(t, "correct horse battery staple", hash)

	assert.True(t, CheckPassword("correct horse battery staple", hash))
	assert.False(t, CheckPassword("wrong password", hash))
}

func TestHashPassword_TooShort(t *testing.T) {
	_, err := HashPassword("short")
	assert.Error(t, err)
}

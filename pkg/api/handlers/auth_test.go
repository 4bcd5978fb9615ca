package handlers

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/salesflowhq/salesflow/config"
	"github.com/salesflowhq/salesflow/pkg/auth"
	"github.com/salesflowhq/salesflow/pkg/cache"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret:          "test-secret",
		JWTExpirationHours: 24,
	}
}

func TestRegister(t *testing.T) {
	t.Run("Creates company and first user", func(t *testing.T) {
		env, cleanup := setupHandlerEnv(t, "reg-ok")
		defer cleanup()
		handler := NewAuthHandler(env.client, testConfig(), nil, nil)

		c, rec := env.request(http.MethodPost, "/api/v1/auth/register",
			`{"company_name":"Acme Widgets","name":"Jane Doe","email":"jane@acme.com","password":"s3cretpass"}`)

		require.NoError(t, handler.Register(c))
		require.Equal(t, http.StatusCreated, rec.Code)

		body := decode(t, rec)
		assert.NotEmpty(t, body["token"])
		assert.Equal(t, "jane@acme.com", body["email"])

		claims, err := auth.ValidateJWT(body["token"].(string), "test-secret")
		require.NoError(t, err)
		assert.Equal(t, int(body["company_id"].(float64)), claims.CompanyID)
	})

	t.Run("Duplicate email is rejected", func(t *testing.T) {
		env, cleanup := setupHandlerEnv(t, "reg-dup")
		defer cleanup()
		handler := NewAuthHandler(env.client, testConfig(), nil, nil)

		c, rec := env.request(http.MethodPost, "/api/v1/auth/register",
			`{"company_name":"Other Co","name":"Imposter","email":"reg-dup@test.com","password":"s3cretpass"}`)

		require.NoError(t, handler.Register(c))
		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("Short password is rejected", func(t *testing.T) {
		env, cleanup := setupHandlerEnv(t, "reg-pass")
		defer cleanup()
		handler := NewAuthHandler(env.client, testConfig(), nil, nil)

		c, rec := env.request(http.MethodPost, "/api/v1/auth/register",
			`{"company_name":"Acme","name":"Jane","email":"jane2@acme.com","password":"short"}`)

		require.NoError(t, handler.Register(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestLogin(t *testing.T) {
	t.Run("Valid credentials return a token", func(t *testing.T) {
		env, cleanup := setupHandlerEnv(t, "login-ok")
		defer cleanup()

		hashed, err := auth.HashPassword("s3cretpass")
		require.NoError(t, err)
		_, err = env.client.User.Create().
			SetCompanyID(env.company.ID).
			SetEmail("login@acme.com").
			SetPasswordHash(hashed).
			SetName("Login User").
			Save(context.Background())
		require.NoError(t, err)

		handler := NewAuthHandler(env.client, testConfig(), nil, nil)
		c, rec := env.request(http.MethodPost, "/api/v1/auth/login",
			`{"email":"login@acme.com","password":"s3cretpass"}`)

		require.NoError(t, handler.Login(c))
		require.Equal(t, http.StatusOK, rec.Code)
		assert.NotEmpty(t, decode(t, rec)["token"])
	})

	t.Run("Wrong password returns 401", func(t *testing.T) {
		env, cleanup := setupHandlerEnv(t, "login-bad")
		defer cleanup()

		hashed, err := auth.HashPassword("s3cretpass")
		require.NoError(t, err)
		_, err = env.client.User.Create().
			SetCompanyID(env.company.ID).
			SetEmail("bad@acme.com").
			SetPasswordHash(hashed).
			SetName("Bad Login").
			Save(context.Background())
		require.NoError(t, err)

		handler := NewAuthHandler(env.client, testConfig(), nil, nil)
		c, rec := env.request(http.MethodPost, "/api/v1/auth/login",
			`{"email":"bad@acme.com","password":"wrong-password"}`)

		require.NoError(t, handler.Login(c))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("Unknown email returns 401", func(t *testing.T) {
		env, cleanup := setupHandlerEnv(t, "login-unknown")
		defer cleanup()

		handler := NewAuthHandler(env.client, testConfig(), nil, nil)
		c, rec := env.request(http.MethodPost, "/api/v1/auth/login",
			`{"email":"nobody@acme.com","password":"whatever1"}`)

		require.NoError(t, handler.Login(c))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestLogout(t *testing.T) {
	t.Run("Revokes the presented token", func(t *testing.T) {
		env, cleanup := setupHandlerEnv(t, "logout")
		defer cleanup()

		mr, err := miniredis.Run()
		require.NoError(t, err)
		defer mr.Close()
		cacheClient, err := cache.NewClient("redis://" + mr.Addr())
		require.NoError(t, err)
		defer cacheClient.Close()
		blacklist := auth.NewTokenBlacklist(cacheClient)

		token, err := auth.GenerateJWT(env.user.ID, env.company.ID, env.user.Email, "test-secret", 24)
		require.NoError(t, err)

		handler := NewAuthHandler(env.client, testConfig(), blacklist, nil)
		c, rec := env.request(http.MethodPost, "/api/v1/auth/logout", "")
		c.Set("token", token)

		require.NoError(t, handler.Logout(c))
		assert.Equal(t, http.StatusNoContent, rec.Code)

		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		revoked, err := blacklist.IsBlacklisted(ctx, token)
		require.NoError(t, err)
		assert.True(t, revoked)
	})
}

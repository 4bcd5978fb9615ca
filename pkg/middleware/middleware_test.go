package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/salesflowhq/salesflow/pkg/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "middleware-test-secret"

func runJWT(t *testing.T, authHeader string) (*httptest.ResponseRecorder, error) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := JWTAuth(testSecret, nil)(func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]int{
			"user_id":    UserID(c),
			"company_id": CompanyID(c),
		})
	})
	return rec, handler(c)
}

func TestJWTAuth(t *testing.T) {
	t.Run("Valid token loads identity into context", func(t *testing.T) {
		token, err := auth.GenerateJWT(42, 7, "rep@acme.com", testSecret, 1)
		require.NoError(t, err)

		rec, err := runJWT(t, "Bearer "+token)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"user_id":42`)
		assert.Contains(t, rec.Body.String(), `"company_id":7`)
	})

	t.Run("Missing header", func(t *testing.T) {
		rec, err := runJWT(t, "")
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("Malformed header", func(t *testing.T) {
		rec, err := runJWT(t, "Token abc")
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("Wrong secret", func(t *testing.T) {
		token, err := auth.GenerateJWT(1, 1, "a@b.com", "different-secret", 1)
		require.NoError(t, err)

		rec, err := runJWT(t, "Bearer "+token)
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestRateLimiter(t *testing.T) {
	e := echo.New()
	rl := NewRateLimiter(60, 2)
	handler := rl.Middleware()(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		require.NoError(t, handler(c))
		codes = append(codes, rec.Code)
	}

	// Burst of 2, third request in the same instant is rejected.
	assert.Equal(t, http.StatusOK, codes[0])
	assert.Equal(t, http.StatusOK, codes[1])
	assert.Equal(t, http.StatusTooManyRequests, codes[2])

	// A different IP has its own bucket.
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "10.0.0.2:1234"
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	require.NoError(t, handler(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

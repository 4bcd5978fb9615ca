package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/salesflowhq/salesflow/pkg/auth"
	"github.com/salesflowhq/salesflow/pkg/models"
)

// JWTAuth validates the bearer token and loads user_id, company_id, and
// email into the echo context. Every tenant-scoped handler downstream reads
// company_id from here, never from the request body.
func JWTAuth(secret string, blacklist *auth.TokenBlacklist) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get("Authorization")
			if header == "" {
				return c.JSON(http.StatusUnauthorized, models.ErrorResponse{
					Error:   "unauthorized",
					Message: "Authorization header is required",
				})
			}

			parts := strings.SplitN(header, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				return c.JSON(http.StatusUnauthorized, models.ErrorResponse{
					Error:   "unauthorized",
					Message: "Authorization header must be a bearer token",
				})
			}

			claims, err := auth.ValidateJWTWithBlacklist(c.Request().Context(), parts[1], secret, blacklist)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, models.ErrorResponse{
					Error:   "unauthorized",
					Message: "Invalid or expired token",
				})
			}

			c.Set("user_id", claims.UserID)
			c.Set("company_id", claims.CompanyID)
			c.Set("user_email", claims.Email)
			c.Set("token", parts[1])

			return next(c)
		}
	}
}

// UserID reads the authenticated user ID from the context.
func UserID(c echo.Context) int {
	id, _ := c.Get("user_id").(int)
	return id
}

// CompanyID reads the authenticated tenant ID from the context.
func CompanyID(c echo.Context) int {
	id, _ := c.Get("company_id").(int)
	return id
}

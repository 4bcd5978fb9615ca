package handlers

import (
	"context"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/salesflowhq/salesflow/config"
	"github.com/salesflowhq/salesflow/ent"
	"github.com/salesflowhq/salesflow/ent/company"
	"github.com/salesflowhq/salesflow/ent/user"
	apierrors "github.com/salesflowhq/salesflow/pkg/api/errors"
	"github.com/salesflowhq/salesflow/pkg/auth"
	"github.com/salesflowhq/salesflow/pkg/metrics"
	"github.com/salesflowhq/salesflow/pkg/models"
)

// AuthHandler handles registration, login, and logout.
type AuthHandler struct {
	db        *ent.Client
	config    *config.Config
	blacklist *auth.TokenBlacklist
	metrics   *metrics.Metrics
	validator *validator.Validate
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(db *ent.Client, cfg *config.Config, blacklist *auth.TokenBlacklist, m *metrics.Metrics) *AuthHandler {
	return &AuthHandler{
		db:        db,
		config:    cfg,
		blacklist: blacklist,
		metrics:   m,
		validator: validator.New(),
	}
}

// RegisterRequest creates a company together with its first user.
type RegisterRequest struct {
	CompanyName string `json:"company_name" validate:"required,max=200"`
	Name        string `json:"name" validate:"required,max=100"`
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required,min=8"`
}

// LoginRequest authenticates an existing user.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AuthResponse carries the issued token and user identity.
type AuthResponse struct {
	Token     string `json:"token"`
	UserID    int    `json:"user_id"`
	CompanyID int    `json:"company_id"`
	Email     string `json:"email"`
	Name      string `json:"name"`
}

var slugPattern = regexp.MustCompile(`[^a-z0-9]+`)

func slugify(name string) string {
	slug := slugPattern.ReplaceAllString(strings.ToLower(name), "-")
	return strings.Trim(slug, "-")
}

// Register creates a new company and its first user, returning a token.
func (h *AuthHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_request",
			Message: "Invalid request body",
		})
	}
	if err := h.validator.Struct(req); err != nil {
		return apierrors.ValidationError(c, err)
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	exists, err := h.db.User.Query().Where(user.EmailEQ(req.Email)).Exist(ctx)
	if err != nil {
		return apierrors.InternalError(c, err)
	}
	if exists {
		return c.JSON(http.StatusConflict, models.ErrorResponse{
			Error:   "user_exists",
			Message: "User with this email already exists",
		})
	}

	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		return apierrors.ValidationError(c, err)
	}

	slug := slugify(req.CompanyName)
	taken, err := h.db.Company.Query().Where(company.SlugEQ(slug)).Exist(ctx)
	if err != nil {
		return apierrors.InternalError(c, err)
	}
	if taken {
		return c.JSON(http.StatusConflict, models.ErrorResponse{
			Error:   "company_exists",
			Message: "A company with this name already exists",
		})
	}

	tx, err := h.db.Tx(ctx)
	if err != nil {
		return apierrors.InternalError(c, err)
	}

	newCompany, err := tx.Company.Create().
		SetName(req.CompanyName).
		SetSlug(slug).
		Save(ctx)
	if err != nil {
		tx.Rollback()
		return apierrors.InternalError(c, err)
	}

	newUser, err := tx.User.Create().
		SetCompanyID(newCompany.ID).
		SetEmail(req.Email).
		SetPasswordHash(hashedPassword).
		SetName(req.Name).
		Save(ctx)
	if err != nil {
		tx.Rollback()
		return apierrors.InternalError(c, err)
	}

	if err := tx.Commit(); err != nil {
		return apierrors.InternalError(c, err)
	}

	token, err := auth.GenerateJWT(newUser.ID, newCompany.ID, newUser.Email,
		h.config.JWTSecret, h.config.JWTExpirationHours)
	if err != nil {
		return apierrors.InternalError(c, err)
	}

	return c.JSON(http.StatusCreated, AuthResponse{
		Token:     token,
		UserID:    newUser.ID,
		CompanyID: newCompany.ID,
		Email:     newUser.Email,
		Name:      newUser.Name,
	})
}

// Login authenticates a user and returns a token.
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_request",
			Message: "Invalid request body",
		})
	}
	if err := h.validator.Struct(req); err != nil {
		return apierrors.ValidationError(c, err)
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	u, err := h.db.User.Query().Where(user.EmailEQ(req.Email)).Only(ctx)
	if err != nil || !auth.CheckPassword(req.Password, u.PasswordHash) {
		if h.metrics != nil {
			h.metrics.RecordLoginAttempt(false)
		}
		return c.JSON(http.StatusUnauthorized, models.ErrorResponse{
			Error:   "invalid_credentials",
			Message: "Invalid email or password",
		})
	}

	token, err := auth.GenerateJWT(u.ID, u.CompanyID, u.Email,
		h.config.JWTSecret, h.config.JWTExpirationHours)
	if err != nil {
		return apierrors.InternalError(c, err)
	}

	if h.metrics != nil {
		h.metrics.RecordLoginAttempt(true)
	}

	return c.JSON(http.StatusOK, AuthResponse{
		Token:     token,
		UserID:    u.ID,
		CompanyID: u.CompanyID,
		Email:     u.Email,
		Name:      u.Name,
	})
}

// Logout revokes the current token.
func (h *AuthHandler) Logout(c echo.Context) error {
	token, _ := c.Get("token").(string)
	if token == "" || h.blacklist == nil {
		return c.NoContent(http.StatusNoContent)
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.blacklist.Add(ctx, token, time.Duration(h.config.JWTExpirationHours)*time.Hour); err != nil {
		return apierrors.InternalError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

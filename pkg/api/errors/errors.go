// Package errors maps domain errors to HTTP responses.
package errors

import (
	"log"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/salesflowhq/salesflow/pkg/domain"
	"github.com/salesflowhq/salesflow/pkg/models"
)

// OnTenantMismatch, when set, is invoked for every cross-tenant access
// attempt. main wires it to the security metrics counter.
var OnTenantMismatch func()

// Respond translates any error from the service layer into the matching HTTP
// response. Tenant mismatches are deliberately indistinguishable from 404s to
// the caller; they are logged as security events server-side.
func Respond(c echo.Context, err error) error {
	switch {
	case domain.IsNotFound(err):
		return c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error:   "not_found",
			Message: err.Error(),
		})

	case domain.IsTenantMismatch(err):
		log.Printf("[SECURITY] cross-tenant access attempt: path=%s error=%v",
			c.Request().URL.Path, err)
		if OnTenantMismatch != nil {
			OnTenantMismatch()
		}
		return c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error:   "not_found",
			Message: "The requested resource was not found.",
		})

	case domain.IsValidationFailed(err):
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "validation_failed",
			Message: "Validation failed",
			Details: domain.Violations(err),
		})

	case domain.IsInvalidTransition(err):
		return c.JSON(http.StatusUnprocessableEntity, models.ErrorResponse{
			Error:   "invalid_transition",
			Message: err.Error(),
		})

	case domain.IsCampaignLocked(err):
		return c.JSON(http.StatusConflict, models.ErrorResponse{
			Error:   "campaign_locked",
			Message: "Campaign is active; pause it before editing.",
		})

	case domain.IsConflict(err):
		return c.JSON(http.StatusConflict, models.ErrorResponse{
			Error:   "conflict",
			Message: err.Error(),
		})

	default:
		return InternalError(c, err)
	}
}

// ValidationError returns a 400 for malformed request payloads without
// exposing binder internals.
func ValidationError(c echo.Context, err error) error {
	log.Printf("[VALIDATION ERROR] Path: %s, Error: %v", c.Request().URL.Path, err)

	return c.JSON(http.StatusBadRequest, models.ErrorResponse{
		Error:   "validation_error",
		Message: "Invalid request data. Please check your input and try again.",
	})
}

// InternalError returns a generic 500.
func InternalError(c echo.Context, err error) error {
	log.Printf("[INTERNAL ERROR] Path: %s, Error: %v", c.Request().URL.Path, err)

	return c.JSON(http.StatusInternalServerError, models.ErrorResponse{
		Error:   "internal_error",
		Message: "An internal error occurred. Please try again later.",
	})
}

// UnauthorizedError returns a generic 401.
func UnauthorizedError(c echo.Context) error {
	return c.JSON(http.StatusUnauthorized, models.ErrorResponse{
		Error:   "unauthorized",
		Message: "You are not authorized to access this resource.",
	})
}

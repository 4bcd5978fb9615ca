package domain

import (
	"errors"
	"fmt"
	"strings"
)

// DomainError represents a domain-specific error with a code and message
type DomainError struct {
	Code    string
	Message string
	Err     error

	// Violations carries every violated rule for VALIDATION_FAILED errors,
	// so callers can surface all of them at once.
	Violations []string

	// Current and Requested carry the state pair for INVALID_TRANSITION errors.
	Current   string
	Requested string
}

func (e *DomainError) Error() string {
	if len(e.Violations) > 0 {
		return fmt.Sprintf("%s: %s: %s", e.Code, e.Message, strings.Join(e.Violations, "; "))
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// Error codes
const (
	ErrCodeNotFound          = "NOT_FOUND"
	ErrCodeValidationFailed  = "VALIDATION_FAILED"
	ErrCodeInvalidTransition = "INVALID_TRANSITION"
	ErrCodeCampaignLocked    = "CAMPAIGN_LOCKED"
	ErrCodeTenantMismatch    = "TENANT_MISMATCH"
	ErrCodeConflict          = "CONFLICT"
	ErrCodeUnauthorized      = "UNAUTHORIZED"
	ErrCodeInternal          = "INTERNAL_ERROR"
)

// Error constructors

// NewNotFoundError creates a new not found error
func NewNotFoundError(resource string) error {
	return &DomainError{
		Code:    ErrCodeNotFound,
		Message: fmt.Sprintf("%s not found", resource),
	}
}

// NewValidationFailedError creates a validation error carrying every
// violated rule, not just the first one.
func NewValidationFailedError(violations []string) error {
	return &DomainError{
		Code:       ErrCodeValidationFailed,
		Message:    "validation failed",
		Violations: violations,
	}
}

// NewInvalidTransitionError creates an error for a transition that is not
// in the allowed-edges table, carrying the current and requested states.
func NewInvalidTransitionError(current, requested string) error {
	return &DomainError{
		Code:      ErrCodeInvalidTransition,
		Message:   fmt.Sprintf("cannot transition from %q to %q", current, requested),
		Current:   current,
		Requested: requested,
	}
}

// NewCampaignLockedError creates an error for edits attempted while a
// campaign is active.
func NewCampaignLockedError() error {
	return &DomainError{
		Code:    ErrCodeCampaignLocked,
		Message: "campaign is active; pause it before editing",
	}
}

// NewTenantMismatchError creates an error for cross-tenant access. Always
// fatal, never retried; the handler layer logs it as a security event.
func NewTenantMismatchError(resource string) error {
	return &DomainError{
		Code:    ErrCodeTenantMismatch,
		Message: fmt.Sprintf("%s belongs to another company", resource),
	}
}

// NewConflictError creates a new conflict error
func NewConflictError(msg string) error {
	return &DomainError{
		Code:    ErrCodeConflict,
		Message: msg,
	}
}

// NewUnauthorizedError creates a new unauthorized error
func NewUnauthorizedError() error {
	return &DomainError{
		Code:    ErrCodeUnauthorized,
		Message: "Authentication required",
	}
}

// NewInternalError creates a new internal error
func NewInternalError(err error) error {
	return &DomainError{
		Code:    ErrCodeInternal,
		Message: "An internal error occurred",
		Err:     err,
	}
}

// Helper functions to check error types

func asDomainError(err error) (*DomainError, bool) {
	var de *DomainError
	ok := errors.As(err, &de)
	return de, ok
}

// IsNotFound checks if the error is a not found error
func IsNotFound(err error) bool {
	de, ok := asDomainError(err)
	return ok && de.Code == ErrCodeNotFound
}

// IsValidationFailed checks if the error is a validation error
func IsValidationFailed(err error) bool {
	de, ok := asDomainError(err)
	return ok && de.Code == ErrCodeValidationFailed
}

// IsInvalidTransition checks if the error is an invalid transition error
func IsInvalidTransition(err error) bool {
	de, ok := asDomainError(err)
	return ok && de.Code == ErrCodeInvalidTransition
}

// IsCampaignLocked checks if the error is a campaign locked error
func IsCampaignLocked(err error) bool {
	de, ok := asDomainError(err)
	return ok && de.Code == ErrCodeCampaignLocked
}

// IsTenantMismatch checks if the error is a tenant mismatch error
func IsTenantMismatch(err error) bool {
	de, ok := asDomainError(err)
	return ok && de.Code == ErrCodeTenantMismatch
}

// IsConflict checks if the error is a conflict error
func IsConflict(err error) bool {
	de, ok := asDomainError(err)
	return ok && de.Code == ErrCodeConflict
}

// Violations extracts the violation list from a validation error, or nil.
func Violations(err error) []string {
	if de, ok := asDomainError(err); ok {
		return de.Violations
	}
	return nil
}

// GetErrorCode extracts the error code from a domain error
func GetErrorCode(err error) string {
	if de, ok := asDomainError(err); ok {
		return de.Code
	}
	return ErrCodeInternal
}

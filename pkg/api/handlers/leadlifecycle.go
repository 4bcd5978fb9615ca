package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	apierrors "github.com/salesflowhq/salesflow/pkg/api/errors"
	"github.com/salesflowhq/salesflow/pkg/leadlifecycle"
	"github.com/salesflowhq/salesflow/pkg/metrics"
	"github.com/salesflowhq/salesflow/pkg/middleware"
	"github.com/salesflowhq/salesflow/pkg/models"
)

// LeadLifecycleHandler handles lead status transitions and history.
type LeadLifecycleHandler struct {
	lifecycle *leadlifecycle.Service
	metrics   *metrics.Metrics
	validator *validator.Validate
}

// NewLeadLifecycleHandler creates a new lifecycle handler.
func NewLeadLifecycleHandler(lifecycleService *leadlifecycle.Service, m *metrics.Metrics) *LeadLifecycleHandler {
	return &LeadLifecycleHandler{
		lifecycle: lifecycleService,
		metrics:   m,
		validator: validator.New(),
	}
}

// UpdateStatus moves a lead to a new status, recording the transition.
func (h *LeadLifecycleHandler) UpdateStatus(c echo.Context) error {
	leadID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return apierrors.ValidationError(c, err)
	}

	var req leadlifecycle.TransitionRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_request",
			Message: "Invalid request body",
		})
	}
	if err := h.validator.Struct(req); err != nil {
		return apierrors.ValidationError(c, err)
	}

	result, err := h.lifecycle.Transition(c.Request().Context(),
		middleware.CompanyID(c), middleware.UserID(c), leadID, req)
	if err != nil {
		return apierrors.Respond(c, err)
	}

	if h.metrics != nil {
		h.metrics.RecordLeadTransition(req.Status)
	}
	return c.JSON(http.StatusOK, result)
}

// History returns a lead's status transitions, newest first.
func (h *LeadLifecycleHandler) History(c echo.Context) error {
	leadID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return apierrors.ValidationError(c, err)
	}

	history, err := h.lifecycle.GetHistory(c.Request().Context(), middleware.CompanyID(c), leadID)
	if err != nil {
		return apierrors.Respond(c, err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"history": history})
}

// StatusCounts returns the company's lead count per status.
func (h *LeadLifecycleHandler) StatusCounts(c echo.Context) error {
	counts, err := h.lifecycle.StatusCounts(c.Request().Context(), middleware.CompanyID(c))
	if err != nil {
		return apierrors.Respond(c, err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"counts": counts})
}

package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	apierrors "github.com/salesflowhq/salesflow/pkg/api/errors"
	"github.com/salesflowhq/salesflow/pkg/export"
	"github.com/salesflowhq/salesflow/pkg/leads"
	"github.com/salesflowhq/salesflow/pkg/metrics"
	"github.com/salesflowhq/salesflow/pkg/middleware"
	"github.com/salesflowhq/salesflow/pkg/models"
)

// LeadHandler handles lead CRUD and export.
type LeadHandler struct {
	leads     *leads.Service
	export    *export.Service
	metrics   *metrics.Metrics
	validator *validator.Validate
}

// NewLeadHandler creates a new lead handler.
func NewLeadHandler(leadService *leads.Service, exportService *export.Service, m *metrics.Metrics) *LeadHandler {
	return &LeadHandler{
		leads:     leadService,
		export:    exportService,
		metrics:   m,
		validator: validator.New(),
	}
}

// Create creates a new lead (or reactivates a soft-deleted one with the same
// email).
func (h *LeadHandler) Create(c echo.Context) error {
	var req leads.CreateLeadRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_request",
			Message: "Invalid request body",
		})
	}
	if err := h.validator.Struct(req); err != nil {
		return apierrors.ValidationError(c, err)
	}

	lead, err := h.leads.Create(c.Request().Context(),
		middleware.CompanyID(c), middleware.UserID(c), req)
	if err != nil {
		return apierrors.Respond(c, err)
	}

	if h.metrics != nil {
		h.metrics.RecordLeadCreated()
	}
	return c.JSON(http.StatusCreated, lead)
}

// Get returns a single lead.
func (h *LeadHandler) Get(c echo.Context) error {
	leadID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return apierrors.ValidationError(c, err)
	}

	lead, err := h.leads.Get(c.Request().Context(), middleware.CompanyID(c), leadID)
	if err != nil {
		return apierrors.Respond(c, err)
	}
	return c.JSON(http.StatusOK, lead)
}

// List returns a filtered, paginated lead list.
func (h *LeadHandler) List(c echo.Context) error {
	req, err := h.listRequest(c)
	if err != nil {
		return apierrors.ValidationError(c, err)
	}

	result, err := h.leads.List(c.Request().Context(), middleware.CompanyID(c), *req)
	if err != nil {
		return apierrors.Respond(c, err)
	}
	return c.JSON(http.StatusOK, result)
}

// Update applies a partial field update to a lead.
func (h *LeadHandler) Update(c echo.Context) error {
	leadID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return apierrors.ValidationError(c, err)
	}

	var req leads.UpdateLeadRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_request",
			Message: "Invalid request body",
		})
	}
	if err := h.validator.Struct(req); err != nil {
		return apierrors.ValidationError(c, err)
	}

	lead, err := h.leads.Update(c.Request().Context(), middleware.CompanyID(c), leadID, req)
	if err != nil {
		return apierrors.Respond(c, err)
	}
	return c.JSON(http.StatusOK, lead)
}

// Delete soft-deletes a lead.
func (h *LeadHandler) Delete(c echo.Context) error {
	leadID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return apierrors.ValidationError(c, err)
	}

	if err := h.leads.Delete(c.Request().Context(), middleware.CompanyID(c), leadID); err != nil {
		return apierrors.Respond(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// Export streams the company's leads as CSV or Excel, honoring the same
// filters as List.
func (h *LeadHandler) Export(c echo.Context) error {
	req, err := h.listRequest(c)
	if err != nil {
		return apierrors.ValidationError(c, err)
	}

	companyID := middleware.CompanyID(c)
	format := c.QueryParam("format")
	if format == "" {
		format = "csv"
	}

	var (
		data        []byte
		contentType string
		ext         string
	)
	switch format {
	case "csv":
		data, err = h.export.CSV(c.Request().Context(), companyID, *req)
		contentType = "text/csv"
		ext = "csv"
	case "xlsx":
		data, err = h.export.Excel(c.Request().Context(), companyID, *req)
		contentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
		ext = "xlsx"
	default:
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_format",
			Message: "format must be csv or xlsx",
		})
	}
	if err != nil {
		return apierrors.Respond(c, err)
	}

	if h.metrics != nil {
		h.metrics.RecordExportCreated()
	}

	filename := fmt.Sprintf("leads_%s.%s", time.Now().Format("2006-01-02"), ext)
	c.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename="%s"`, filename))
	return c.Blob(http.StatusOK, contentType, data)
}

func (h *LeadHandler) listRequest(c echo.Context) (*leads.ListLeadsRequest, error) {
	req := leads.ListLeadsRequest{
		Status: c.QueryParam("status"),
		Source: c.QueryParam("source"),
		Search: c.QueryParam("search"),
		Page:   1,
		Limit:  20,
	}

	if v := c.QueryParam("page"); v != "" {
		page, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid page: %w", err)
		}
		req.Page = page
	}
	if v := c.QueryParam("limit"); v != "" {
		limit, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid limit: %w", err)
		}
		req.Limit = limit
	}
	if v := c.QueryParam("min_score"); v != "" {
		min, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid min_score: %w", err)
		}
		req.MinScore = &min
	}
	if v := c.QueryParam("max_score"); v != "" {
		max, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid max_score: %w", err)
		}
		req.MaxScore = &max
	}

	if err := h.validator.Struct(req); err != nil {
		return nil, err
	}
	return &req, nil
}

package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	apierrors "github.com/salesflowhq/salesflow/pkg/api/errors"
	"github.com/salesflowhq/salesflow/pkg/campaign"
	"github.com/salesflowhq/salesflow/pkg/draft"
	"github.com/salesflowhq/salesflow/pkg/metrics"
	"github.com/salesflowhq/salesflow/pkg/middleware"
	"github.com/salesflowhq/salesflow/pkg/models"
	"github.com/salesflowhq/salesflow/pkg/scheduler"
)

// CampaignHandler handles campaign CRUD, lifecycle, and the email pipeline
// endpoints (scheduling, drafting, cohort preview).
type CampaignHandler struct {
	campaigns *campaign.Service
	scheduler *scheduler.Service
	drafts    *draft.Service
	metrics   *metrics.Metrics
	validator *validator.Validate
}

// NewCampaignHandler creates a new campaign handler.
func NewCampaignHandler(campaignService *campaign.Service, schedulerService *scheduler.Service, draftService *draft.Service, m *metrics.Metrics) *CampaignHandler {
	return &CampaignHandler{
		campaigns: campaignService,
		scheduler: schedulerService,
		drafts:    draftService,
		metrics:   m,
		validator: validator.New(),
	}
}

// Create creates a new campaign in draft status.
func (h *CampaignHandler) Create(c echo.Context) error {
	var req campaign.CreateCampaignRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_request",
			Message: "Invalid request body",
		})
	}
	if err := h.validator.Struct(req); err != nil {
		return apierrors.ValidationError(c, err)
	}

	result, err := h.campaigns.Create(c.Request().Context(),
		middleware.CompanyID(c), middleware.UserID(c), req)
	if err != nil {
		return apierrors.Respond(c, err)
	}
	return c.JSON(http.StatusCreated, result)
}

// Get returns a single campaign.
func (h *CampaignHandler) Get(c echo.Context) error {
	campaignID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return apierrors.ValidationError(c, err)
	}

	result, err := h.campaigns.Get(c.Request().Context(), middleware.CompanyID(c), campaignID)
	if err != nil {
		return apierrors.Respond(c, err)
	}
	return c.JSON(http.StatusOK, result)
}

// List returns a filtered, paginated campaign list.
func (h *CampaignHandler) List(c echo.Context) error {
	req := campaign.ListCampaignsRequest{
		Status: c.QueryParam("status"),
		Page:   1,
		Limit:  20,
	}
	if v := c.QueryParam("page"); v != "" {
		page, err := strconv.Atoi(v)
		if err != nil {
			return apierrors.ValidationError(c, err)
		}
		req.Page = page
	}
	if v := c.QueryParam("limit"); v != "" {
		limit, err := strconv.Atoi(v)
		if err != nil {
			return apierrors.ValidationError(c, err)
		}
		req.Limit = limit
	}
	if err := h.validator.Struct(req); err != nil {
		return apierrors.ValidationError(c, err)
	}

	result, err := h.campaigns.List(c.Request().Context(), middleware.CompanyID(c), req)
	if err != nil {
		return apierrors.Respond(c, err)
	}
	return c.JSON(http.StatusOK, result)
}

// Update applies a partial edit to a draft or paused campaign.
func (h *CampaignHandler) Update(c echo.Context) error {
	campaignID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return apierrors.ValidationError(c, err)
	}

	var req campaign.UpdateCampaignRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_request",
			Message: "Invalid request body",
		})
	}
	if err := h.validator.Struct(req); err != nil {
		return apierrors.ValidationError(c, err)
	}

	result, err := h.campaigns.Update(c.Request().Context(), middleware.CompanyID(c), campaignID, req)
	if err != nil {
		return apierrors.Respond(c, err)
	}
	return c.JSON(http.StatusOK, result)
}

// UpdateStatus transitions a campaign between draft, active, and inactive.
// Activation runs full campaign validation and reports every violation.
func (h *CampaignHandler) UpdateStatus(c echo.Context) error {
	campaignID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return apierrors.ValidationError(c, err)
	}

	var req campaign.TransitionRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_request",
			Message: "Invalid request body",
		})
	}
	if err := h.validator.Struct(req); err != nil {
		return apierrors.ValidationError(c, err)
	}

	result, err := h.campaigns.Transition(c.Request().Context(), middleware.CompanyID(c), campaignID, req)
	if err != nil {
		return apierrors.Respond(c, err)
	}

	if h.metrics != nil && req.Status == "active" {
		h.metrics.RecordCampaignActivated()
	}
	return c.JSON(http.StatusOK, result)
}

// Delete soft-deletes a campaign, deactivating it if active.
func (h *CampaignHandler) Delete(c echo.Context) error {
	campaignID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return apierrors.ValidationError(c, err)
	}

	if err := h.campaigns.Delete(c.Request().Context(), middleware.CompanyID(c), campaignID); err != nil {
		return apierrors.Respond(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// Schedule materializes the campaign's due-list into email records.
// Idempotent; re-running picks up newly targeted leads.
func (h *CampaignHandler) Schedule(c echo.Context) error {
	campaignID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return apierrors.ValidationError(c, err)
	}

	result, err := h.scheduler.Schedule(c.Request().Context(), middleware.CompanyID(c), campaignID)
	if err != nil {
		return apierrors.Respond(c, err)
	}

	if h.metrics != nil && result.Created > 0 {
		h.metrics.RecordEmailsScheduled(result.Created)
	}
	return c.JSON(http.StatusOK, result)
}

// Targets previews the leads the campaign's filter currently matches.
func (h *CampaignHandler) Targets(c echo.Context) error {
	campaignID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return apierrors.ValidationError(c, err)
	}

	targeted, err := h.scheduler.Targets(c.Request().Context(), middleware.CompanyID(c), campaignID)
	if err != nil {
		return apierrors.Respond(c, err)
	}

	type target struct {
		ID        int    `json:"id"`
		Email     string `json:"email"`
		FirstName string `json:"first_name,omitempty"`
		LastName  string `json:"last_name,omitempty"`
		Status    string `json:"status"`
		Score     int    `json:"score"`
	}
	out := make([]target, len(targeted))
	for i, l := range targeted {
		out[i] = target{
			ID:        l.ID,
			Email:     l.Email,
			FirstName: l.FirstName,
			LastName:  l.LastName,
			Status:    string(l.Status),
			Score:     l.Score,
		}
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"campaign_id": campaignID,
		"count":       len(out),
		"targets":     out,
	})
}

// DraftEmails generates subject and body for the campaign's pending emails.
func (h *CampaignHandler) DraftEmails(c echo.Context) error {
	campaignID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return apierrors.ValidationError(c, err)
	}

	result, err := h.drafts.DraftPending(c.Request().Context(), middleware.CompanyID(c), campaignID)
	if err != nil {
		return apierrors.Respond(c, err)
	}
	return c.JSON(http.StatusOK, result)
}

// campaignEmailView is the API shape of one scheduled email.
type campaignEmailView struct {
	ID               int        `json:"id"`
	LeadID           int        `json:"lead_id"`
	SequencePosition int        `json:"sequence_position"`
	Subject          string     `json:"subject,omitempty"`
	Status           string     `json:"status"`
	ScheduledSendAt  time.Time  `json:"scheduled_send_at"`
	SentAt           *time.Time `json:"sent_at,omitempty"`
	ErrorMessage     string     `json:"error_message,omitempty"`
}

// ListEmails returns the campaign's scheduled emails in send order.
func (h *CampaignHandler) ListEmails(c echo.Context) error {
	campaignID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return apierrors.ValidationError(c, err)
	}

	emails, err := h.scheduler.Emails(c.Request().Context(), middleware.CompanyID(c), campaignID)
	if err != nil {
		return apierrors.Respond(c, err)
	}

	out := make([]campaignEmailView, len(emails))
	for i, e := range emails {
		out[i] = campaignEmailView{
			ID:               e.ID,
			LeadID:           e.LeadID,
			SequencePosition: e.SequencePosition,
			Subject:          e.Subject,
			Status:           string(e.Status),
			ScheduledSendAt:  e.ScheduledSendAt,
			SentAt:           e.SentAt,
			ErrorMessage:     e.ErrorMessage,
		}
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"campaign_id": campaignID,
		"count":       len(out),
		"emails":      out,
	})
}

package campaign

import (
	"context"
	"fmt"
	"time"

	"github.com/salesflowhq/salesflow/ent"
	"github.com/salesflowhq/salesflow/ent/campaign"
	"github.com/salesflowhq/salesflow/ent/schema/schematype"
	"github.com/salesflowhq/salesflow/pkg/domain"
	"github.com/salesflowhq/salesflow/pkg/locks"
	"github.com/salesflowhq/salesflow/pkg/models"
)

// Service handles campaign operations.
type Service struct {
	client *ent.Client
	locks  *locks.KeyedMutex
}

// NewService creates a new campaign service.
func NewService(client *ent.Client, km *locks.KeyedMutex) *Service {
	if km == nil {
		km = locks.New()
	}
	return &Service{client: client, locks: km}
}

// CreateCampaignRequest represents a request to create a campaign. Campaigns
// are always created in draft; the wizard fills in context and delays over
// several steps before activation.
type CreateCampaignRequest struct {
	Name           string                      `json:"name" validate:"required,max=200"`
	Context        *schematype.CampaignContext `json:"context,omitempty"`
	Delays         schematype.Delays           `json:"delays,omitempty"`
	LeadFilter     *schematype.LeadFilter      `json:"lead_filter,omitempty"`
	ScheduledStart *time.Time                  `json:"scheduled_start,omitempty"`
}

// UpdateCampaignRequest represents a partial update. Nil fields are left
// untouched.
type UpdateCampaignRequest struct {
	Name           *string                     `json:"name,omitempty" validate:"omitempty,min=1,max=200"`
	Context        *schematype.CampaignContext `json:"context,omitempty"`
	Delays         *schematype.Delays          `json:"delays,omitempty"`
	LeadFilter     *schematype.LeadFilter      `json:"lead_filter,omitempty"`
	ScheduledStart *time.Time                  `json:"scheduled_start,omitempty"`
}

// TransitionRequest represents a request to move a campaign to a new status.
type TransitionRequest struct {
	Status string `json:"status" validate:"required,oneof=draft active inactive"`
}

// ListCampaignsRequest represents filters for listing campaigns.
type ListCampaignsRequest struct {
	Status string `json:"status,omitempty" validate:"omitempty,oneof=draft active inactive"`
	Page   int    `json:"page" validate:"min=1"`
	Limit  int    `json:"limit" validate:"min=1,max=100"`
}

// CampaignResponse represents a campaign in API responses.
type CampaignResponse struct {
	ID             int                        `json:"id"`
	Name           string                     `json:"name"`
	Status         string                     `json:"status"`
	Context        schematype.CampaignContext `json:"context"`
	Delays         schematype.Delays          `json:"delays"`
	LeadFilter     *schematype.LeadFilter     `json:"lead_filter,omitempty"`
	ScheduledStart time.Time                  `json:"scheduled_start"`
	EmailCount     int                        `json:"email_count"`
	SentCount      int                        `json:"sent_count"`
	FailedCount    int                        `json:"failed_count"`
	Version        int                        `json:"version"`
	CreatedAt      time.Time                  `json:"created_at"`
	UpdatedAt      time.Time                  `json:"updated_at"`
}

// ListCampaignsResponse represents a paginated campaign list.
type ListCampaignsResponse struct {
	Campaigns  []CampaignResponse    `json:"campaigns"`
	Pagination models.PaginationInfo `json:"pagination"`
}

func toResponse(c *ent.Campaign) *CampaignResponse {
	resp := &CampaignResponse{
		ID:             c.ID,
		Name:           c.Name,
		Status:         string(c.Status),
		Context:        c.Context,
		Delays:         c.Delays,
		LeadFilter:     c.LeadFilter,
		ScheduledStart: c.ScheduledStart,
		EmailCount:     c.EmailCount,
		SentCount:      c.SentCount,
		FailedCount:    c.FailedCount,
		Version:        c.Version,
		CreatedAt:      c.CreatedAt,
		UpdatedAt:      c.UpdatedAt,
	}
	if resp.Delays == nil {
		resp.Delays = schematype.Delays{}
	}
	return resp
}

// Create creates a new campaign in draft status.
func (s *Service) Create(ctx context.Context, companyID, userID int, req CreateCampaignRequest) (*CampaignResponse, error) {
	builder := s.client.Campaign.
		Create().
		SetCompanyID(companyID).
		SetUserID(userID).
		SetName(req.Name)

	if req.Context != nil {
		builder.SetContext(*req.Context)
	}
	if req.Delays != nil {
		builder.SetDelays(req.Delays)
	}
	if req.LeadFilter != nil {
		builder.SetLeadFilter(req.LeadFilter)
	}
	if req.ScheduledStart != nil {
		builder.SetScheduledStart(*req.ScheduledStart)
	}

	created, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create campaign: %w", err)
	}

	return toResponse(created), nil
}

// Get retrieves a campaign by ID, scoped to the company.
func (s *Service) Get(ctx context.Context, companyID, campaignID int) (*CampaignResponse, error) {
	c, err := s.fetch(ctx, companyID, campaignID)
	if err != nil {
		return nil, err
	}
	return toResponse(c), nil
}

// List retrieves campaigns for a company with optional status filtering and
// pagination, newest first.
func (s *Service) List(ctx context.Context, companyID int, req ListCampaignsRequest) (*ListCampaignsResponse, error) {
	if req.Page < 1 {
		req.Page = 1
	}
	if req.Limit < 1 {
		req.Limit = 20
	}

	query := s.client.Campaign.
		Query().
		Where(campaign.CompanyID(companyID), campaign.DeletedAtIsNil())

	if req.Status != "" {
		query = query.Where(campaign.StatusEQ(campaign.Status(req.Status)))
	}

	total, err := query.Clone().Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count campaigns: %w", err)
	}

	items, err := query.
		Order(ent.Desc(campaign.FieldCreatedAt)).
		Offset((req.Page - 1) * req.Limit).
		Limit(req.Limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list campaigns: %w", err)
	}

	campaigns := make([]CampaignResponse, len(items))
	for i, c := range items {
		campaigns[i] = *toResponse(c)
	}

	return &ListCampaignsResponse{
		Campaigns:  campaigns,
		Pagination: models.NewPaginationInfo(req.Page, req.Limit, total),
	}, nil
}

// Update applies a partial field update to a campaign. Active campaigns are
// locked: their name, context, delays, targeting, and schedule cannot change
// until the campaign is paused.
func (s *Service) Update(ctx context.Context, companyID, campaignID int, req UpdateCampaignRequest) (*CampaignResponse, error) {
	key := fmt.Sprintf("campaign:%d:%d", companyID, campaignID)
	s.locks.Lock(key)
	defer s.locks.Unlock(key)

	current, err := s.fetch(ctx, companyID, campaignID)
	if err != nil {
		return nil, err
	}

	if current.Status == campaign.StatusActive {
		return nil, domain.NewCampaignLockedError()
	}

	builder := s.client.Campaign.
		UpdateOne(current).
		Where(campaign.Version(current.Version)).
		AddVersion(1)

	if req.Name != nil {
		builder.SetName(*req.Name)
	}
	if req.Context != nil {
		builder.SetContext(*req.Context)
	}
	if req.Delays != nil {
		builder.SetDelays(*req.Delays)
	}
	if req.LeadFilter != nil {
		builder.SetLeadFilter(req.LeadFilter)
	}
	if req.ScheduledStart != nil {
		builder.SetScheduledStart(*req.ScheduledStart)
	}

	updated, err := builder.Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, domain.NewConflictError("campaign was modified concurrently, re-fetch and retry")
		}
		return nil, fmt.Errorf("failed to update campaign: %w", err)
	}

	return toResponse(updated), nil
}

// Transition moves a campaign to a new status. Activation (from draft or
// inactive) re-runs the full validation and reports every violated rule at
// once; a campaign that fails stays in its current status.
func (s *Service) Transition(ctx context.Context, companyID, campaignID int, req TransitionRequest) (*CampaignResponse, error) {
	key := fmt.Sprintf("campaign:%d:%d", companyID, campaignID)
	s.locks.Lock(key)
	defer s.locks.Unlock(key)

	current, err := s.fetch(ctx, companyID, campaignID)
	if err != nil {
		return nil, err
	}

	from := Status(current.Status)
	to := Status(req.Status)
	if err := CheckTransition(from, to); err != nil {
		return nil, err
	}

	if to == StatusActive {
		violations := Validate(ValidationInput{
			Name:       current.Name,
			Context:    current.Context,
			Delays:     current.Delays,
			LeadFilter: current.LeadFilter,
		})
		if len(violations) > 0 {
			return nil, domain.NewValidationFailedError(violations)
		}
	}

	updated, err := s.client.Campaign.
		UpdateOne(current).
		Where(campaign.Version(current.Version)).
		SetStatus(campaign.Status(to)).
		AddVersion(1).
		Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, domain.NewConflictError("campaign was modified concurrently, re-fetch and retry")
		}
		return nil, fmt.Errorf("failed to transition campaign: %w", err)
	}

	return toResponse(updated), nil
}

// Delete soft-deletes a campaign. Deletion is orthogonal to status: an
// active campaign is deactivated and removed in one step.
func (s *Service) Delete(ctx context.Context, companyID, campaignID int) error {
	key := fmt.Sprintf("campaign:%d:%d", companyID, campaignID)
	s.locks.Lock(key)
	defer s.locks.Unlock(key)

	current, err := s.fetch(ctx, companyID, campaignID)
	if err != nil {
		return err
	}

	builder := s.client.Campaign.
		UpdateOne(current).
		Where(campaign.Version(current.Version)).
		SetDeletedAt(time.Now()).
		AddVersion(1)
	if current.Status == campaign.StatusActive {
		builder.SetStatus(campaign.StatusInactive)
	}

	if _, err := builder.Save(ctx); err != nil {
		if ent.IsNotFound(err) {
			return domain.NewConflictError("campaign was modified concurrently, re-fetch and retry")
		}
		return fmt.Errorf("failed to delete campaign: %w", err)
	}

	return nil
}

// fetch loads a live (non-deleted) campaign and enforces tenant scoping.
func (s *Service) fetch(ctx context.Context, companyID, campaignID int) (*ent.Campaign, error) {
	c, err := s.client.Campaign.
		Query().
		Where(campaign.ID(campaignID), campaign.DeletedAtIsNil()).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, domain.NewNotFoundError("campaign")
		}
		return nil, fmt.Errorf("failed to fetch campaign: %w", err)
	}
	if c.CompanyID != companyID {
		return nil, domain.NewTenantMismatchError("campaign")
	}
	return c, nil
}

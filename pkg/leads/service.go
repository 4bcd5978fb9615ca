package leads

import (
	"context"
	"fmt"
	"time"

	"github.com/salesflowhq/salesflow/ent"
	"github.com/salesflowhq/salesflow/ent/lead"
	"github.com/salesflowhq/salesflow/pkg/domain"
	"github.com/salesflowhq/salesflow/pkg/locks"
	"github.com/salesflowhq/salesflow/pkg/models"
	"github.com/salesflowhq/salesflow/pkg/phone"
	"github.com/salesflowhq/salesflow/pkg/scoring"
)

// Service handles lead CRUD operations. Status transitions live in the
// leadlifecycle service; this one owns ingestion, field updates, and the
// scoring that follows them.
type Service struct {
	client *ent.Client
	locks  *locks.KeyedMutex
}

// NewService creates a new lead service.
func NewService(client *ent.Client, km *locks.KeyedMutex) *Service {
	if km == nil {
		km = locks.New()
	}
	return &Service{client: client, locks: km}
}

// CreateLeadRequest represents a request to create a lead.
type CreateLeadRequest struct {
	Email        string                 `json:"email" validate:"required,email"`
	FirstName    string                 `json:"first_name,omitempty" validate:"omitempty,max=100"`
	LastName     string                 `json:"last_name,omitempty" validate:"omitempty,max=100"`
	CompanyName  string                 `json:"company_name,omitempty" validate:"omitempty,max=200"`
	JobTitle     string                 `json:"job_title,omitempty" validate:"omitempty,max=200"`
	Phone        string                 `json:"phone,omitempty" validate:"omitempty,max=50"`
	LinkedinURL  string                 `json:"linkedin_url,omitempty" validate:"omitempty,url"`
	Source       string                 `json:"source,omitempty" validate:"omitempty,oneof=apollo linkedin website referral cold_email event other"`
	CustomFields map[string]interface{} `json:"custom_fields,omitempty"`
	Notes        string                 `json:"notes,omitempty"`
}

// UpdateLeadRequest represents a partial field update. Nil fields are left
// untouched. Status is not updatable here; use the transition endpoint.
type UpdateLeadRequest struct {
	FirstName    *string                 `json:"first_name,omitempty" validate:"omitempty,max=100"`
	LastName     *string                 `json:"last_name,omitempty" validate:"omitempty,max=100"`
	CompanyName  *string                 `json:"company_name,omitempty" validate:"omitempty,max=200"`
	JobTitle     *string                 `json:"job_title,omitempty" validate:"omitempty,max=200"`
	Phone        *string                 `json:"phone,omitempty" validate:"omitempty,max=50"`
	LinkedinURL  *string                 `json:"linkedin_url,omitempty" validate:"omitempty,url"`
	Source       *string                 `json:"source,omitempty" validate:"omitempty,oneof=apollo linkedin website referral cold_email event other"`
	CustomFields *map[string]interface{} `json:"custom_fields,omitempty"`
	Notes        *string                 `json:"notes,omitempty"`
}

// ListLeadsRequest represents filters for listing leads.
type ListLeadsRequest struct {
	Status   string `json:"status,omitempty" validate:"omitempty,oneof=new qualified contacted responded converted closed unqualified"`
	Source   string `json:"source,omitempty" validate:"omitempty,oneof=apollo linkedin website referral cold_email event other"`
	MinScore *int   `json:"min_score,omitempty" validate:"omitempty,min=0,max=100"`
	MaxScore *int   `json:"max_score,omitempty" validate:"omitempty,min=0,max=100"`
	Search   string `json:"search,omitempty" validate:"omitempty,max=200"`
	Page     int    `json:"page" validate:"min=1"`
	Limit    int    `json:"limit" validate:"min=1,max=100"`
}

// LeadResponse represents a lead in API responses.
type LeadResponse struct {
	ID              int                    `json:"id"`
	Email           string                 `json:"email"`
	FirstName       string                 `json:"first_name,omitempty"`
	LastName        string                 `json:"last_name,omitempty"`
	CompanyName     string                 `json:"company_name,omitempty"`
	JobTitle        string                 `json:"job_title,omitempty"`
	Phone           string                 `json:"phone,omitempty"`
	LinkedinURL     string                 `json:"linkedin_url,omitempty"`
	Source          string                 `json:"source"`
	Status          string                 `json:"status"`
	StatusChangedAt time.Time              `json:"status_changed_at"`
	Score           int                    `json:"score"`
	CustomFields    map[string]interface{} `json:"custom_fields,omitempty"`
	Notes           string                 `json:"notes,omitempty"`
	Version         int                    `json:"version"`
	CreatedAt       time.Time              `json:"created_at"`
	UpdatedAt       time.Time              `json:"updated_at"`
}

// ListLeadsResponse represents a paginated lead list.
type ListLeadsResponse struct {
	Leads      []LeadResponse        `json:"leads"`
	Pagination models.PaginationInfo `json:"pagination"`
}

func toResponse(l *ent.Lead) *LeadResponse {
	return &LeadResponse{
		ID:              l.ID,
		Email:           l.Email,
		FirstName:       l.FirstName,
		LastName:        l.LastName,
		CompanyName:     l.CompanyName,
		JobTitle:        l.JobTitle,
		Phone:           l.Phone,
		LinkedinURL:     l.LinkedinURL,
		Source:          string(l.Source),
		Status:          string(l.Status),
		StatusChangedAt: l.StatusChangedAt,
		Score:           l.Score,
		CustomFields:    l.CustomFields,
		Notes:           l.Notes,
		Version:         l.Version,
		CreatedAt:       l.CreatedAt,
		UpdatedAt:       l.UpdatedAt,
	}
}

// Create creates a new lead with its score computed immediately. Emails are
// unique per company: a live duplicate is a conflict, while a soft-deleted
// one is reactivated in place with the new field values.
func (s *Service) Create(ctx context.Context, companyID, userID int, req CreateLeadRequest) (*LeadResponse, error) {
	if req.Source == "" {
		req.Source = "other"
	}
	normalizedPhone := req.Phone
	if req.Phone != "" {
		normalizedPhone = phone.NormalizeOrKeep(req.Phone, "")
	}

	score := scoring.Score(scoring.Input{
		Email:       req.Email,
		CompanyName: req.CompanyName,
		JobTitle:    req.JobTitle,
		Phone:       normalizedPhone,
		Source:      req.Source,
	}).Score

	existing, err := s.client.Lead.
		Query().
		Where(lead.CompanyID(companyID), lead.Email(req.Email)).
		Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return nil, fmt.Errorf("failed to check for existing lead: %w", err)
	}

	if existing != nil {
		if !existing.IsDeleted {
			return nil, domain.NewConflictError(fmt.Sprintf("lead with email %s already exists", req.Email))
		}
		return s.reactivate(ctx, existing, req, normalizedPhone, score)
	}

	builder := s.client.Lead.
		Create().
		SetCompanyID(companyID).
		SetEmail(req.Email).
		SetSource(lead.Source(req.Source)).
		SetScore(score).
		SetCreatedBy(userID)
	if req.FirstName != "" {
		builder.SetFirstName(req.FirstName)
	}
	if req.LastName != "" {
		builder.SetLastName(req.LastName)
	}
	if req.CompanyName != "" {
		builder.SetCompanyName(req.CompanyName)
	}
	if req.JobTitle != "" {
		builder.SetJobTitle(req.JobTitle)
	}
	if normalizedPhone != "" {
		builder.SetPhone(normalizedPhone)
	}
	if req.LinkedinURL != "" {
		builder.SetLinkedinURL(req.LinkedinURL)
	}
	if req.CustomFields != nil {
		builder.SetCustomFields(req.CustomFields)
	}
	if req.Notes != "" {
		builder.SetNotes(req.Notes)
	}

	created, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, domain.NewConflictError(fmt.Sprintf("lead with email %s already exists", req.Email))
		}
		return nil, fmt.Errorf("failed to create lead: %w", err)
	}

	return toResponse(created), nil
}

// reactivate brings a soft-deleted lead back with fresh field values and a
// reset workflow state.
func (s *Service) reactivate(ctx context.Context, existing *ent.Lead, req CreateLeadRequest, normalizedPhone string, score int) (*LeadResponse, error) {
	updated, err := s.client.Lead.
		UpdateOne(existing).
		Where(lead.Version(existing.Version)).
		SetIsDeleted(false).
		SetFirstName(req.FirstName).
		SetLastName(req.LastName).
		SetCompanyName(req.CompanyName).
		SetJobTitle(req.JobTitle).
		SetPhone(normalizedPhone).
		SetLinkedinURL(req.LinkedinURL).
		SetSource(lead.Source(req.Source)).
		SetStatus(lead.StatusNew).
		SetStatusChangedAt(time.Now()).
		SetScore(score).
		SetNotes(req.Notes).
		AddVersion(1).
		Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, domain.NewConflictError("lead was modified concurrently, re-fetch and retry")
		}
		return nil, fmt.Errorf("failed to reactivate lead: %w", err)
	}
	return toResponse(updated), nil
}

// Get retrieves a lead by ID, scoped to the company.
func (s *Service) Get(ctx context.Context, companyID, leadID int) (*LeadResponse, error) {
	l, err := s.fetch(ctx, companyID, leadID)
	if err != nil {
		return nil, err
	}
	return toResponse(l), nil
}

// Update applies a partial field update. When a scored field (company_name,
// job_title, phone, source) changes, the score is recomputed in the same
// write.
func (s *Service) Update(ctx context.Context, companyID, leadID int, req UpdateLeadRequest) (*LeadResponse, error) {
	key := fmt.Sprintf("lead:%d:%d", companyID, leadID)
	s.locks.Lock(key)
	defer s.locks.Unlock(key)

	current, err := s.fetch(ctx, companyID, leadID)
	if err != nil {
		return nil, err
	}

	builder := s.client.Lead.
		UpdateOne(current).
		Where(lead.Version(current.Version)).
		AddVersion(1)

	// Track the post-update values of the scored fields.
	companyName := current.CompanyName
	jobTitle := current.JobTitle
	phoneValue := current.Phone
	source := string(current.Source)
	rescore := false

	if req.FirstName != nil {
		builder.SetFirstName(*req.FirstName)
	}
	if req.LastName != nil {
		builder.SetLastName(*req.LastName)
	}
	if req.CompanyName != nil && *req.CompanyName != current.CompanyName {
		builder.SetCompanyName(*req.CompanyName)
		companyName = *req.CompanyName
		rescore = true
	}
	if req.JobTitle != nil && *req.JobTitle != current.JobTitle {
		builder.SetJobTitle(*req.JobTitle)
		jobTitle = *req.JobTitle
		rescore = true
	}
	if req.Phone != nil {
		normalized := *req.Phone
		if normalized != "" {
			normalized = phone.NormalizeOrKeep(normalized, "")
		}
		if normalized != current.Phone {
			builder.SetPhone(normalized)
			phoneValue = normalized
			rescore = true
		}
	}
	if req.Source != nil && *req.Source != string(current.Source) {
		builder.SetSource(lead.Source(*req.Source))
		source = *req.Source
		rescore = true
	}
	if req.LinkedinURL != nil {
		builder.SetLinkedinURL(*req.LinkedinURL)
	}
	if req.CustomFields != nil {
		builder.SetCustomFields(*req.CustomFields)
	}
	if req.Notes != nil {
		builder.SetNotes(*req.Notes)
	}

	if rescore {
		builder.SetScore(scoring.Score(scoring.Input{
			Email:       current.Email,
			CompanyName: companyName,
			JobTitle:    jobTitle,
			Phone:       phoneValue,
			Source:      source,
		}).Score)
	}

	updated, err := builder.Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, domain.NewConflictError("lead was modified concurrently, re-fetch and retry")
		}
		return nil, fmt.Errorf("failed to update lead: %w", err)
	}

	return toResponse(updated), nil
}

// Delete soft-deletes a lead. The row is kept for history and dedup against
// re-imports.
func (s *Service) Delete(ctx context.Context, companyID, leadID int) error {
	key := fmt.Sprintf("lead:%d:%d", companyID, leadID)
	s.locks.Lock(key)
	defer s.locks.Unlock(key)

	current, err := s.fetch(ctx, companyID, leadID)
	if err != nil {
		return err
	}

	_, err = s.client.Lead.
		UpdateOne(current).
		Where(lead.Version(current.Version)).
		SetIsDeleted(true).
		AddVersion(1).
		Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return domain.NewConflictError("lead was modified concurrently, re-fetch and retry")
		}
		return fmt.Errorf("failed to delete lead: %w", err)
	}

	return nil
}

// List retrieves leads for a company with filtering and pagination, newest
// first.
func (s *Service) List(ctx context.Context, companyID int, req ListLeadsRequest) (*ListLeadsResponse, error) {
	if req.Page < 1 {
		req.Page = 1
	}
	if req.Limit < 1 {
		req.Limit = 20
	}

	query := s.buildQuery(companyID, req)

	total, err := query.Clone().Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count leads: %w", err)
	}

	items, err := query.
		Order(ent.Desc(lead.FieldCreatedAt)).
		Offset((req.Page - 1) * req.Limit).
		Limit(req.Limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list leads: %w", err)
	}

	leads := make([]LeadResponse, len(items))
	for i, l := range items {
		leads[i] = *toResponse(l)
	}

	return &ListLeadsResponse{
		Leads:      leads,
		Pagination: models.NewPaginationInfo(req.Page, req.Limit, total),
	}, nil
}

// ListAll retrieves every live lead matching the filters without pagination,
// in stable ID order. The exporter uses this.
func (s *Service) ListAll(ctx context.Context, companyID int, req ListLeadsRequest) ([]*ent.Lead, error) {
	items, err := s.buildQuery(companyID, req).
		Order(ent.Asc(lead.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list leads: %w", err)
	}
	return items, nil
}

func (s *Service) buildQuery(companyID int, req ListLeadsRequest) *ent.LeadQuery {
	query := s.client.Lead.
		Query().
		Where(lead.CompanyID(companyID), lead.IsDeleted(false))

	if req.Status != "" {
		query = query.Where(lead.StatusEQ(lead.Status(req.Status)))
	}
	if req.Source != "" {
		query = query.Where(lead.SourceEQ(lead.Source(req.Source)))
	}
	if req.MinScore != nil {
		query = query.Where(lead.ScoreGTE(*req.MinScore))
	}
	if req.MaxScore != nil {
		query = query.Where(lead.ScoreLTE(*req.MaxScore))
	}
	if req.Search != "" {
		query = query.Where(lead.Or(
			lead.EmailContainsFold(req.Search),
			lead.FirstNameContainsFold(req.Search),
			lead.LastNameContainsFold(req.Search),
			lead.CompanyNameContainsFold(req.Search),
		))
	}

	return query
}

// fetch loads a live (non-deleted) lead and enforces tenant scoping.
func (s *Service) fetch(ctx context.Context, companyID, leadID int) (*ent.Lead, error) {
	l, err := s.client.Lead.
		Query().
		Where(lead.ID(leadID), lead.IsDeleted(false)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, domain.NewNotFoundError("lead")
		}
		return nil, fmt.Errorf("failed to fetch lead: %w", err)
	}
	if l.CompanyID != companyID {
		return nil, domain.NewTenantMismatchError("lead")
	}
	return l, nil
}

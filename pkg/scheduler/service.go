package scheduler

import (
	"context"
	"fmt"

	"github.com/salesflowhq/salesflow/ent"
	"github.com/salesflowhq/salesflow/ent/campaign"
	"github.com/salesflowhq/salesflow/ent/campaignemail"
	"github.com/salesflowhq/salesflow/ent/lead"
	"github.com/salesflowhq/salesflow/pkg/domain"
	"github.com/salesflowhq/salesflow/pkg/targeting"
)

// Service materializes a campaign's due-list into CampaignEmail records.
type Service struct {
	client *ent.Client
}

// NewService creates a new scheduler service.
func NewService(client *ent.Client) *Service {
	return &Service{client: client}
}

// ScheduleResult summarizes one scheduling run.
type ScheduleResult struct {
	CampaignID    int        `json:"campaign_id"`
	TargetedLeads int        `json:"targeted_leads"`
	Created       int        `json:"created"`
	Skipped       int        `json:"skipped"`
	Due           []DueEmail `json:"due"`
}

// Targets returns the leads a campaign currently targets, in stable ID
// order. Works for any campaign status; the UI uses it to preview the cohort
// before activation.
func (s *Service) Targets(ctx context.Context, companyID, campaignID int) ([]*ent.Lead, error) {
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

	leads, err := s.client.Lead.
		Query().
		Where(lead.CompanyID(companyID), lead.IsDeleted(false)).
		Order(ent.Asc(lead.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch leads: %w", err)
	}

	return targeting.Targets(c.LeadFilter, leads), nil
}

// Emails returns a campaign's email records in send order.
func (s *Service) Emails(ctx context.Context, companyID, campaignID int) ([]*ent.CampaignEmail, error) {
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

	emails, err := s.client.CampaignEmail.
		Query().
		Where(campaignemail.CampaignID(campaignID)).
		Order(
			ent.Asc(campaignemail.FieldScheduledSendAt),
			ent.Asc(campaignemail.FieldLeadID),
			ent.Asc(campaignemail.FieldSequencePosition),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch campaign emails: %w", err)
	}
	return emails, nil
}

// Schedule computes the due-list for a campaign and persists one pending
// CampaignEmail per (lead, step) slot. Re-running is idempotent: slots that
// already have a record are skipped, so newly targeted leads are picked up
// without duplicating existing ones.
func (s *Service) Schedule(ctx context.Context, companyID, campaignID int) (*ScheduleResult, error) {
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
	if c.Status != campaign.StatusActive {
		return nil, domain.NewConflictError("campaign must be active to schedule emails")
	}

	leads, err := s.client.Lead.
		Query().
		Where(lead.CompanyID(companyID), lead.IsDeleted(false)).
		Order(ent.Asc(lead.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch leads: %w", err)
	}

	targeted := targeting.Targets(c.LeadFilter, leads)
	leadIDs := make([]int, len(targeted))
	for i, l := range targeted {
		leadIDs[i] = l.ID
	}

	due := Schedule(c.Delays, c.ScheduledStart, leadIDs)

	result := &ScheduleResult{
		CampaignID:    campaignID,
		TargetedLeads: len(targeted),
		Due:           due,
	}
	if len(due) == 0 {
		return result, nil
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}

	existing, err := tx.CampaignEmail.
		Query().
		Where(campaignemail.CampaignID(campaignID)).
		All(ctx)
	if err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("failed to fetch existing emails: %w", err)
	}

	seen := make(map[[2]int]bool, len(existing))
	for _, e := range existing {
		seen[[2]int{e.LeadID, e.SequencePosition}] = true
	}

	builders := make([]*ent.CampaignEmailCreate, 0, len(due))
	for _, d := range due {
		if seen[[2]int{d.LeadID, d.Position}] {
			result.Skipped++
			continue
		}
		builders = append(builders, tx.CampaignEmail.
			Create().
			SetCampaignID(campaignID).
			SetLeadID(d.LeadID).
			SetSequencePosition(d.Position).
			SetScheduledSendAt(d.DueAt))
	}

	if len(builders) > 0 {
		if _, err := tx.CampaignEmail.CreateBulk(builders...).Save(ctx); err != nil {
			tx.Rollback()
			return nil, fmt.Errorf("failed to create campaign emails: %w", err)
		}

		if _, err := tx.Campaign.
			UpdateOneID(campaignID).
			AddEmailCount(len(builders)).
			Save(ctx); err != nil {
			tx.Rollback()
			return nil, fmt.Errorf("failed to update email count: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	result.Created = len(builders)
	return result, nil
}

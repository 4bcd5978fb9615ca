package draft

import (
	"context"
	"fmt"
	"strings"

	"github.com/salesflowhq/salesflow/ent"
	"github.com/salesflowhq/salesflow/ent/campaign"
	"github.com/salesflowhq/salesflow/ent/campaignemail"
	"github.com/salesflowhq/salesflow/pkg/domain"
)

// Service fills in subject and body for scheduled campaign emails that have
// not been drafted yet.
type Service struct {
	client  *ent.Client
	drafter Drafter
}

// NewService creates a new draft service.
func NewService(client *ent.Client, drafter Drafter) *Service {
	return &Service{client: client, drafter: drafter}
}

// Result summarizes one drafting run.
type Result struct {
	CampaignID int `json:"campaign_id"`
	Drafted    int `json:"drafted"`
	Failed     int `json:"failed"`
}

// DraftPending drafts copy for every pending email of a campaign that still
// has an empty body. Emails move from pending to scheduled once drafted, which
// makes them eligible for dispatch.
func (s *Service) DraftPending(ctx context.Context, companyID, campaignID int) (*Result, error) {
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

	pending, err := s.client.CampaignEmail.
		Query().
		Where(
			campaignemail.CampaignID(campaignID),
			campaignemail.StatusEQ(campaignemail.StatusPending),
			campaignemail.BodyEQ(""),
		).
		WithLead().
		Order(ent.Asc(campaignemail.FieldLeadID), ent.Asc(campaignemail.FieldSequencePosition)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch pending emails: %w", err)
	}

	total := len(c.Delays)
	result := &Result{CampaignID: campaignID}

	for _, e := range pending {
		leadName := ""
		if l := e.Edges.Lead; l != nil {
			leadName = strings.TrimSpace(l.FirstName + " " + l.LastName)
		}

		drafted, err := s.drafter.Draft(ctx, Input{
			Context:  c.Context,
			LeadName: leadName,
			Position: e.SequencePosition,
			Total:    total,
		})
		if err != nil {
			result.Failed++
			continue
		}

		if _, err := s.client.CampaignEmail.
			UpdateOne(e).
			SetSubject(drafted.Subject).
			SetBody(drafted.Body).
			SetStatus(campaignemail.StatusScheduled).
			Save(ctx); err != nil {
			return nil, fmt.Errorf("failed to save drafted email: %w", err)
		}
		result.Drafted++
	}

	return result, nil
}
